package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"15s", "15s"},
		{"30m15s", "30m 15s"},
		{"2h0m5s", "2h 0m 5s"},
		{"72h30m15s", "3d 0h 30m 15s"},
		{"0s", "0s"},
		{"not-a-duration", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.input))
		})
	}
}

func TestFormatTimeInvalidPassthrough(t *testing.T) {
	assert.Equal(t, "garbage", FormatTime("garbage"))
}

func TestFormatTimeParses(t *testing.T) {
	out := FormatTime("2026-01-15T10:00:00Z")
	assert.NotEqual(t, "2026-01-15T10:00:00Z", out)
	assert.Contains(t, out, "2026")
}

func TestFormatUnix(t *testing.T) {
	out := FormatUnix(1768471200) // 2026-01-15 UTC
	assert.Contains(t, out, "2026")
}
