package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/order-gateway/internal/adapters/http/dto"
	"github.com/jsamuelsen/order-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen/order-gateway/internal/domain"
	"github.com/jsamuelsen/order-gateway/internal/platform/logging"
)

// Problem type URIs, per RFC 7231/7235 section references.
const (
	problemTypeBadRequest     = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	problemTypeUnauthorized   = "https://tools.ietf.org/html/rfc7235#section-3.1"
	problemTypeNotFound       = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	problemTypeInternal       = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	problemTypeBadGateway     = "https://tools.ietf.org/html/rfc7231#section-6.6.3"
	problemTypeGatewayTimeout = "https://tools.ietf.org/html/rfc7231#section-6.6.5"
)

// Fixed detail strings. Production responses never echo internals.
const (
	detailUnauthorized = "You are not authorized to perform this action"
	detailTimeout      = "The request to the upstream service timed out"
	detailInternalProd = "An error occurred while processing your request"
)

// Problems returns the middleware that renders every failure as a
// ProblemResponse. It catches panics and translates errors recorded on
// the gin context, so handlers only ever call c.Error(err) and return.
//
// The status mapping is the single source of truth for how the domain
// error taxonomy appears on the wire:
//
//	ValidationError   -> 400 Validation Error / Bad Request
//	UnauthorizedError -> 401 Unauthorized
//	NotFoundError     -> 404 Not Found
//	UpstreamError     -> 502 Bad Gateway
//	TimeoutError      -> 504 Gateway Timeout
//	anything else     -> 500 Internal Server Error
//
// In production the 500 detail is generic; in development it carries
// the error text plus type and stack trace extensions.
func Problems(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				logging.FromContext(c.Request.Context()).Error("panic recovered",
					"panic", fmt.Sprint(r),
					"stack", string(stack),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)

				renderProblem(c, domain.NewInternalError(fmt.Errorf("panic: %v", r)), production, stack)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		if c.Writer.Written() {
			logging.FromContext(c.Request.Context()).Error("error recorded after response was written",
				"error", err.Error(),
			)

			return
		}

		renderProblem(c, err, production, nil)
	}
}

// renderProblem maps err, attaches the trace id, logs, and writes the
// response.
func renderProblem(c *gin.Context, err error, production bool, stack []byte) {
	if c.Writer.Written() {
		c.Abort()
		return
	}

	problem := mapToProblem(err, production, stack)
	if id := traceID(c); id != "" {
		problem.TraceID = &id
	}

	logger := logging.FromContext(c.Request.Context())
	if problem.Status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"status", problem.Status,
			"title", problem.Title,
			"error", err.Error(),
		)
	} else {
		logger.Info("request rejected",
			"status", problem.Status,
			"title", problem.Title,
			"error", err.Error(),
		)
	}

	c.AbortWithStatusJSON(problem.Status, problem)
}

// mapToProblem translates an error into the problem body.
func mapToProblem(err error, production bool, stack []byte) *dto.ProblemResponse {
	switch {
	case dto.IsValidationError(err):
		return &dto.ProblemResponse{
			Type:       problemTypeBadRequest,
			Title:      "Bad Request",
			Status:     http.StatusBadRequest,
			Detail:     "One or more request fields failed validation",
			Extensions: map[string]any{"errors": dto.ValidationErrors(err)},
		}

	case errors.Is(err, dto.ErrBinding):
		return &dto.ProblemResponse{
			Type:   problemTypeBadRequest,
			Title:  "Bad Request",
			Status: http.StatusBadRequest,
			Detail: "Request body could not be parsed",
		}

	case domain.IsValidation(err):
		return &dto.ProblemResponse{
			Type:   problemTypeBadRequest,
			Title:  "Validation Error",
			Status: http.StatusBadRequest,
			Detail: validationDetail(err),
		}

	case domain.IsUnauthorized(err):
		return &dto.ProblemResponse{
			Type:   problemTypeUnauthorized,
			Title:  "Unauthorized",
			Status: http.StatusUnauthorized,
			Detail: detailUnauthorized,
		}

	case domain.IsNotFound(err):
		return &dto.ProblemResponse{
			Type:   problemTypeNotFound,
			Title:  "Not Found",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		}

	case domain.IsTimeout(err):
		return &dto.ProblemResponse{
			Type:   problemTypeGatewayTimeout,
			Title:  "Gateway Timeout",
			Status: http.StatusGatewayTimeout,
			Detail: detailTimeout,
		}

	case domain.IsUpstream(err):
		return &dto.ProblemResponse{
			Type:   problemTypeBadGateway,
			Title:  "Bad Gateway",
			Status: http.StatusBadGateway,
			Detail: err.Error(),
		}

	default:
		return internalProblem(err, production, stack)
	}
}

// internalProblem builds the 500 body. Diagnostic detail is exposed
// only outside production.
func internalProblem(err error, production bool, stack []byte) *dto.ProblemResponse {
	problem := &dto.ProblemResponse{
		Type:   problemTypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detailInternalProd,
	}

	if production {
		return problem
	}

	if stack == nil {
		stack = debug.Stack()
	}

	problem.Detail = err.Error()
	problem.Extensions = map[string]any{
		"error":      errorTypeName(err),
		"stackTrace": string(stack),
	}

	return problem
}

// validationDetail prefers the bare message over the decorated Error()
// text so clients see "Quantity must be greater than 0" rather than the
// internal prefix.
func validationDetail(err error) string {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && validationErr.Field == "" {
		return validationErr.Message
	}

	return err.Error()
}

// errorTypeName names the concrete failure for the dev extensions,
// unwrapping the internal envelope when there is one.
func errorTypeName(err error) string {
	var internalErr *domain.InternalError
	if errors.As(err, &internalErr) && internalErr.Cause != nil {
		return fmt.Sprintf("%T", internalErr.Cause)
	}

	return fmt.Sprintf("%T", err)
}

// traceID resolves the identifier echoed on problem bodies: the active
// trace id when sampling is on, otherwise the request id.
func traceID(c *gin.Context) string {
	if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return middleware.GetRequestID(c)
}
