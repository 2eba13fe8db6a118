package watchdog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

//------------------------------------------------------------------------------

func TestValidateSeverity(t *testing.T) {
	assert.Equal(t, "error", ValidateSeverity("error"))
	assert.Equal(t, "warn", ValidateSeverity("warn"))
	assert.Equal(t, "info", ValidateSeverity("info"))

	// aliases normalize the same way the server does
	assert.Equal(t, "warn", ValidateSeverity("warning"))
	assert.Equal(t, "info", ValidateSeverity("information"))

	// empty selects the default
	assert.Equal(t, "error", ValidateSeverity(""))

	assert.Equal(t, "", ValidateSeverity("bogus"))
	assert.Equal(t, "", ValidateSeverity("debug"))
	assert.Equal(t, "", ValidateSeverity("ERROR"))
}

func TestValidateMemoryAmount(t *testing.T) {
	total := uint64(1024 * 1048576)

	testCases := []struct {
		input    string
		total    *uint64
		expected uint64
		ok       bool
	}{
		{"1024", nil, 1024, true},
		{"512 bytes", nil, 512, true},
		{"2k", nil, 2048, true},
		{"1.5 kb", nil, 1536, true},
		{"512mb", nil, 512 * 1048576, true},
		{"2 Gigabytes", nil, 2 * 1073741824, true},
		{"  64 MB  ", nil, 64 * 1048576, true},
		{"50%", &total, total / 2, true},
		{"50 %", &total, total / 2, true},
		{"", nil, 0, false},
		{"   ", nil, 0, false},
		{"mb", nil, 0, false},
		{"512xb", nil, 0, false},
		{"512 mb extra", nil, 0, false},
		{"50%", nil, 0, false}, //percentage needs a total
		{"101%", &total, 0, false},
	}
	for _, tc := range testCases {
		value, ok := ValidateMemoryAmount(tc.input, tc.total)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, value, "input %q", tc.input)
		}
	}
}
