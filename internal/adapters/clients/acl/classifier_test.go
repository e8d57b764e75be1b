package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/order-gateway/internal/adapters/clients/soap"
	"github.com/jsamuelsen/order-gateway/internal/domain"
)

func TestDefaultClassifier_Classify(t *testing.T) {
	classifier := DefaultClassifier()

	tests := []struct {
		name     string
		message  string
		expected FaultKind
	}{
		{
			name:     "quantity rule violation",
			message:  "Quantity must be greater than 0",
			expected: FaultBusinessValidation,
		},
		{
			name:     "limit violation",
			message:  "Order total cannot exceed 10000",
			expected: FaultBusinessValidation,
		},
		{
			name:     "missing entity",
			message:  "Order 42 not found",
			expected: FaultBusinessValidation,
		},
		{
			name:     "case insensitive",
			message:  "INVALID PRODUCT",
			expected: FaultBusinessValidation,
		},
		{
			name:     "technical failure",
			message:  "connection refused",
			expected: FaultTechnical,
		},
		{
			name:     "database failure",
			message:  "deadlock victim in transaction",
			expected: FaultTechnical,
		},
		{
			name:     "empty message",
			message:  "",
			expected: FaultTechnical,
		},
		{
			name:     "whitespace only",
			message:  "   ",
			expected: FaultTechnical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(tt.message))
		})
	}
}

// The keyword match is intentionally broad: technical messages that
// mention an order or a status read as business faults. The policy
// accepts this to keep the classifier a plain substring scan.
func TestDefaultClassifier_BroadKeywordsMatchTechnicalText(t *testing.T) {
	classifier := DefaultClassifier()

	assert.Equal(t, FaultBusinessValidation,
		classifier.Classify("database timeout while loading order table"))
}

func TestNewClassifier_FirstMatchWins(t *testing.T) {
	classifier := NewClassifier(
		Rule{Contains: "not found", Kind: FaultTechnical},
		Rule{Contains: "order", Kind: FaultBusinessValidation},
	)

	assert.Equal(t, FaultTechnical, classifier.Classify("Order 42 not found"))
	assert.Equal(t, FaultBusinessValidation, classifier.Classify("Order limit reached"))
}

func TestNewClassifier_NoRules(t *testing.T) {
	classifier := NewClassifier()

	assert.Equal(t, FaultTechnical, classifier.Classify("Quantity must be greater than 0"))
}

func TestFaultToError(t *testing.T) {
	mapFault := FaultToError(DefaultClassifier(), "order-service")

	t.Run("business fault becomes validation error", func(t *testing.T) {
		err := mapFault(&soap.Fault{Message: "Quantity must be greater than 0"})

		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), "Quantity must be greater than 0")
	})

	t.Run("technical fault becomes upstream error", func(t *testing.T) {
		err := mapFault(&soap.Fault{Message: "connection reset by peer"})

		require.Error(t, err)
		assert.True(t, domain.IsUpstream(err))
		assert.Contains(t, err.Error(), "SOAP service error: connection reset by peer")
	})

	t.Run("empty fault message becomes upstream error", func(t *testing.T) {
		err := mapFault(&soap.Fault{Message: ""})

		require.Error(t, err)
		assert.True(t, domain.IsUpstream(err))
	})
}
