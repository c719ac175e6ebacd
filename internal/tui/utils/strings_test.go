package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "East", 10, "East"},
		{"exact", "East", 4, "East"},
		{"cut", "Midwest Region", 7, "Midwest"},
		{"zero width", "East", 0, ""},
		{"wide runes are not split", "日本語", 3, "日"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.width))
		})
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "Midwe...", TruncateWithEllipsis("Midwest Region", 8))
	assert.Equal(t, "..", TruncateWithEllipsis("Midwest Region", 2))
}
