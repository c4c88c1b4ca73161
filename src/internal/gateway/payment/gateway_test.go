package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		provider string
		expected string
	}{
		{"success", StatusCompleted},
		{"SUCCESSFUL", StatusCompleted},
		{"completed", StatusCompleted},
		{"paid", StatusCompleted},
		{"failed", StatusFailed},
		{"cancelled", StatusFailed},
		{"canceled", StatusFailed},
		{"EXPIRED", StatusFailed},
		{"pending", StatusPending},
		{"processing", StatusPending},
		{"in_review", StatusPending},
		{"", StatusPending},
		{"some-new-status", StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.provider))
		})
	}
}
