package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "RFC3339",
			input:    "2024-03-05T08:00:00Z",
			expected: time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC),
		},
		{
			name:     "Local datetime",
			input:    "2024-03-05T22:00:00",
			expected: time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC),
		},
		{
			name:     "Space separated",
			input:    "2024-03-05 08:30:00",
			expected: time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "Date only",
			input:    "2024-03-05",
			expected: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Garbage",
			input:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISOTime(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(*got), "got %v", *got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	morning := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC)

	assert.Equal(t, NormalizeDate(morning), NormalizeDate(evening))
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), NormalizeDate(evening))
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Morning", input: "2024-03-05T08:00:00"},
		{name: "Evening", input: "2024-03-05T22:00:00"},
		{name: "Date only", input: "2024-03-05"},
	}

	expected := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDay(tt.input)
			require.NoError(t, err)
			assert.Equal(t, expected, day)
		})
	}

	_, err := ParseDay("not-a-date")
	assert.Error(t, err)
}
