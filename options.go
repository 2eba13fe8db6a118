package watchdog

import (
	"time"
)

//------------------------------------------------------------------------------

// DefaultTimeout is used when Options.Timeout is left at zero.
const DefaultTimeout = 30 * time.Second

//------------------------------------------------------------------------------

// Options holds the connection settings of a client. They are validated once
// by Create and never change afterwards.
type Options struct {
	// Host is the server watchdog's host name or address.
	Host string

	// Port is the server watchdog's port. Must be between 1 and 65535.
	Port uint

	// UseSSL establishes the connection using https when set.
	UseSSL bool

	// ApiKey is sent on each request in the X-Api-Key header.
	ApiKey string

	// DefaultChannel is used when an operation does not specify a channel.
	DefaultChannel string

	// Timeout limits each request. Zero selects DefaultTimeout.
	Timeout time.Duration

	// SelfProcess overrides how the client describes its own process when a
	// watch operation omits the pid or name. Mainly intended for tests.
	SelfProcess SelfProcess
}

//------------------------------------------------------------------------------

func (opts Options) validate() error {
	if len(opts.Host) == 0 {
		return newConfigurationError("Missing or invalid host.")
	}
	if opts.Port < 1 || opts.Port > 65535 {
		return newConfigurationError("Invalid port.")
	}
	if len(opts.ApiKey) == 0 {
		return newConfigurationError("Missing or invalid API key.")
	}
	if len(opts.DefaultChannel) == 0 {
		return newConfigurationError("Missing or invalid default channel.")
	}
	if opts.Timeout < 0 {
		return newConfigurationError("Invalid timeout.")
	}
	return nil
}
