package wearController

import (
	"testing"
	"time"
	"wardrobe/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestParseOptionalDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "empty is open",
			value:    "",
			expected: time.Time{},
		},
		{
			name:     "calendar date",
			value:    "2026-10-01",
			expected: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "timestamp rejected",
			value:       "2026-10-01T08:00:00Z",
			expectError: true,
		},
		{
			name:        "not a date",
			value:       "yesterday",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseOptionalDate("since", tt.value)

			if tt.expectError {
				assert.ErrorIs(t, err, services.ErrValidation)
				assert.Contains(t, err.Error(), "since")
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(result))
		})
	}
}
