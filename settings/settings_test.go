package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//------------------------------------------------------------------------------

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))
	return filename
}

//------------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	filename := writeSettings(t, `{
		"host": "watchdog.example.com",
		"port": 8004,
		"useSsl": true,
		"apiKey": "some-key",
		"defaultChannel": "ops",
		"timeout": "45s"
	}`)

	config, err := Load(filename)
	require.NoError(t, err)

	assert.Equal(t, "watchdog.example.com", config.Host)
	assert.Equal(t, uint(8004), config.Port)
	assert.True(t, config.UseSSLX)
	assert.Equal(t, "some-key", config.ApiKey)
	assert.Equal(t, "ops", config.DefaultChannel)
	assert.Equal(t, 45*time.Second, config.TimeoutX)

	opts := config.ToOptions()
	assert.Equal(t, "watchdog.example.com", opts.Host)
	assert.Equal(t, uint(8004), opts.Port)
	assert.True(t, opts.UseSSL)
	assert.Equal(t, 45*time.Second, opts.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	filename := writeSettings(t, `{
		"host": "127.0.0.1",
		"port": 8004,
		"apiKey": "some-key",
		"defaultChannel": "ops"
	}`)

	config, err := Load(filename)
	require.NoError(t, err)

	assert.False(t, config.UseSSLX)
	assert.Equal(t, 30*time.Second, config.TimeoutX)
}

func TestLoadNumericSslFlag(t *testing.T) {
	filename := writeSettings(t, `{
		"host": "127.0.0.1",
		"port": 8004,
		"useSsl": 1,
		"apiKey": "some-key",
		"defaultChannel": "ops"
	}`)

	config, err := Load(filename)
	require.NoError(t, err)
	assert.True(t, config.UseSSLX)

	filename = writeSettings(t, `{
		"host": "127.0.0.1",
		"port": 8004,
		"useSsl": 0,
		"apiKey": "some-key",
		"defaultChannel": "ops"
	}`)

	config, err = Load(filename)
	require.NoError(t, err)
	assert.False(t, config.UseSSLX)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"missing file", ""},
		{"malformed json", `{`},
		{"missing host", `{"port": 8004, "apiKey": "k", "defaultChannel": "ops"}`},
		{"invalid host", `{"host": "not a host", "port": 8004, "apiKey": "k", "defaultChannel": "ops"}`},
		{"port zero", `{"host": "127.0.0.1", "port": 0, "apiKey": "k", "defaultChannel": "ops"}`},
		{"port too large", `{"host": "127.0.0.1", "port": 65536, "apiKey": "k", "defaultChannel": "ops"}`},
		{"ssl flag wrong type", `{"host": "127.0.0.1", "port": 8004, "useSsl": "yes", "apiKey": "k", "defaultChannel": "ops"}`},
		{"missing api key", `{"host": "127.0.0.1", "port": 8004, "defaultChannel": "ops"}`},
		{"missing default channel", `{"host": "127.0.0.1", "port": 8004, "apiKey": "k"}`},
		{"invalid timeout", `{"host": "127.0.0.1", "port": 8004, "apiKey": "k", "defaultChannel": "ops", "timeout": "soon"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var filename string

			if len(tc.content) > 0 {
				filename = writeSettings(t, tc.content)
			} else {
				filename = filepath.Join(t.TempDir(), "does-not-exist.json")
			}

			config, err := Load(filename)
			assert.Nil(t, config)
			assert.Error(t, err)
		})
	}
}

func TestValidateTimeSpan(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
		ok       bool
	}{
		{"30s", 30 * time.Second, true},
		{"500 ms", 500 * time.Millisecond, true},
		{"1 min 30 secs", 90 * time.Second, true},
		{"2h", 2 * time.Hour, true},
		{"1 day", 24 * time.Hour, true},
		{"1w", 7 * 24 * time.Hour, true},
		{"", 0, false},
		{"   ", 0, false},
		{"30", 0, false},
		{"s", 0, false},
		{"30 lightyears", 0, false},
	}
	for _, tc := range testCases {
		d, ok := ValidateTimeSpan(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.expected, d, "input %q", tc.input)
		}
	}
}
