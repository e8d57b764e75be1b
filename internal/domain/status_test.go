package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected OrderStatus
		wantErr  bool
	}{
		{name: "canonical upper case", input: "SHIPPED", expected: StatusShipped},
		{name: "lower case", input: "shipped", expected: StatusShipped},
		{name: "mixed case", input: "Paid", expected: StatusPaid},
		{name: "surrounding whitespace", input: "  delivered ", expected: StatusDelivered},
		{name: "created", input: "CREATED", expected: StatusCreated},
		{name: "unknown status", input: "CANCELLED", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := ParseOrderStatus(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err), "unknown status must be the caller's error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusCreated, StatusPaid, StatusShipped, StatusDelivered} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}

	assert.False(t, OrderStatus("CANCELLED").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("shipped").Valid(), "only canonical names are valid values")
}

func TestOrderStatus_String(t *testing.T) {
	assert.Equal(t, "SHIPPED", StatusShipped.String())
}
