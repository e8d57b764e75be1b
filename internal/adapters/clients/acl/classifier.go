package acl

import (
	"strings"

	"github.com/jsamuelsen/order-gateway/internal/adapters/clients/soap"
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

// FaultKind is the outcome of classifying a backend fault message.
type FaultKind int

const (
	// FaultTechnical is an infrastructure-level failure the caller
	// cannot fix. Surfaces as an upstream error.
	FaultTechnical FaultKind = iota

	// FaultBusinessValidation is a rule violation attributable to the
	// caller's input. Surfaces as a validation error.
	FaultBusinessValidation
)

// Rule matches a lowercase substring to a fault kind.
type Rule struct {
	Contains string
	Kind     FaultKind
}

// businessKeywords are the substrings that mark a fault message as a
// business rule violation. The backend does not flag fault causes in a
// machine-readable way, so message text is all there is to go on. The
// match is deliberately broad: a technical message that happens to
// contain one of these words is classified as business.
var businessKeywords = []string{
	"cannot exceed",
	"must be",
	"required",
	"invalid",
	"not found",
	"not allowed",
	"minimum",
	"maximum",
	"range",
	"quantity",
	"price",
	"status",
	"order",
}

// Classifier decides whether a backend fault is a business rule
// violation or a technical failure. Rules are evaluated in order and
// the first match wins; a message matching no rule is technical, as is
// an empty or whitespace-only message.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with an explicit rule list,
// evaluated in the given order.
func NewClassifier(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// DefaultClassifier returns the standard policy: every business keyword
// maps to FaultBusinessValidation.
func DefaultClassifier() *Classifier {
	rules := make([]Rule, 0, len(businessKeywords))
	for _, keyword := range businessKeywords {
		rules = append(rules, Rule{Contains: keyword, Kind: FaultBusinessValidation})
	}

	return NewClassifier(rules...)
}

// Classify applies the rule list to a fault message. Matching is
// case-insensitive.
func (c *Classifier) Classify(message string) FaultKind {
	if strings.TrimSpace(message) == "" {
		return FaultTechnical
	}

	lower := strings.ToLower(message)
	for _, rule := range c.rules {
		if strings.Contains(lower, rule.Contains) {
			return rule.Kind
		}
	}

	return FaultTechnical
}

// FaultToError builds the soap.FaultMapper that applies the
// classification policy: business faults become validation errors owned
// by the caller, everything else is an upstream failure of service.
func FaultToError(classifier *Classifier, service string) soap.FaultMapper {
	return func(fault *soap.Fault) error {
		if classifier.Classify(fault.Message) == FaultBusinessValidation {
			return domain.NewValidationError("", fault.Message)
		}

		return domain.NewUpstreamError(service, "SOAP service error: "+fault.Message)
	}
}
