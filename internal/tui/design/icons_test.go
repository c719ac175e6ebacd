package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeIcon(t *testing.T) {
	tests := []struct {
		name string
		icon string
		want string
	}{
		{"wide icon gets two spaces", IconTrophy, IconTrophy + "  "},
		{"ascii", ">", "> "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeIcon(tt.icon))
		})
	}
}

func TestCenterHorizontal(t *testing.T) {
	assert.Equal(t, "too wide", CenterHorizontal(3, "too wide"))

	centered := CenterHorizontal(10, "ab")
	assert.Contains(t, centered, "    ab")
}
