package dto

// ProblemResponse is the uniform error body for every failure the API
// returns, loosely following RFC 7807. Only the problem translator
// constructs these; handlers never write error bodies themselves.
//
// Extensions is null in production responses. In development it carries
// diagnostic fields (error type, stack trace) for unclassified failures
// and field-level details for request validation errors.
//
// TraceID is null when no trace or request identifier is available.
type ProblemResponse struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail"`
	TraceID    *string        `json:"traceId"`
	Extensions map[string]any `json:"extensions"`
}
