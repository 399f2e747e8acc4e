package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel tests label selection at the band boundaries.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{name: "top of range", score: 1.0, expected: ExceptionalValue},
		{name: "exceptional boundary", score: 0.8, expected: ExceptionalValue},
		{name: "just below exceptional", score: 0.799, expected: StrongValue},
		{name: "strong boundary", score: 0.6, expected: StrongValue},
		{name: "moderate boundary", score: 0.4, expected: ModerateValue},
		{name: "just below moderate", score: 0.399, expected: LimitedValue},
		{name: "floor", score: 0.0, expected: LimitedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

// TestGetColorLabel verifies the colored label carries the same text.
func TestGetColorLabel(t *testing.T) {
	assert.Contains(t, GetColorLabel(0.9), ExceptionalValue)
	assert.Contains(t, GetColorLabel(0.7), StrongValue)
	assert.Contains(t, GetColorLabel(0.5), ModerateValue)
	assert.Contains(t, GetColorLabel(0.1), LimitedValue)
}

// TestTruncateName tests name truncation with the ellipsis suffix.
func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "short name untouched", input: "alice", maxWidth: 20, expected: "alice"},
		{name: "exact width untouched", input: "alice", maxWidth: 5, expected: "alice"},
		{name: "long name truncated", input: "a-very-long-candidate-name", maxWidth: 12, expected: "a-very-lo..."},
		{name: "width too small to truncate", input: "abcdef", maxWidth: 3, expected: "abcdef"},
		{name: "multibyte name", input: "候補者の長い名前です", maxWidth: 8, expected: "候補者の長..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

// TestParseBoolString tests the accepted boolean spellings.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "No", "false", "0"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
