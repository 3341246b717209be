package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadTime(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty", "", 0},
		{"one word", "hello", 1},
		{"exactly one minute", strings.TrimSpace(strings.Repeat("word ", 200)), 1},
		{"just over one minute", strings.TrimSpace(strings.Repeat("word ", 201)), 2},
		{"rounds up", strings.TrimSpace(strings.Repeat("word ", 250)), 2},
		{"mixed whitespace", "one\ttwo\nthree  four", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EstimateReadTime(tc.content))
		})
	}
}
