package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationHours(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"01:45", 2},
		{"01:30", 1},
		{"01:31", 2},
		{"01:20", 1},
		{"00:00", 0},
		{"02:00", 2},
		{"10:59", 11},
		{"", 0},
		{"abc", 0},
		{"1", 0},
		{"1:2:3", 0},
		{"-01:00", 0},
		{"01:-30", 0},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDurationHours(tc.raw))
		})
	}
}
