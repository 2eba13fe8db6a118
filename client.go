package watchdog

import (
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
)

//------------------------------------------------------------------------------

const maxProcessId = 0x7FFFFFFF

//------------------------------------------------------------------------------

// Client is a connection to a remote server watchdog. It is safe for
// concurrent use; each operation translates into a single independent HTTP
// request and there is no shared mutable state besides the configuration.
type Client struct {
	baseURL        string
	apiKey         string
	defaultChannel string
	timeout        time.Duration
	selfProc       SelfProcess
	httpClient     *fasthttp.Client
}

// ProcessWatchOptions holds the extended parameters of ProcessWatchEx.
type ProcessWatchOptions struct {
	// Pid is the process to watch. Zero selects the calling process.
	Pid int

	// Name describes the watched process in notifications. Empty selects
	// the calling process' executable path.
	Name string

	// Severity of the notification sent when the process dies. Empty
	// selects "error".
	Severity string

	// Channel the notification is delivered to. Empty selects the
	// configured default channel.
	Channel string

	// MaxMemUsage optionally asks the server to also notify when the
	// process exceeds this memory amount (e.g. "512mb" or "80%").
	MaxMemUsage string
}

//------------------------------------------------------------------------------

// Create validates the passed options and builds a client bound to them.
func Create(opts Options) (*Client, error) {
	var err error

	err = opts.validate()
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	selfProc := opts.SelfProcess
	if selfProc == nil {
		selfProc = currentProcess{}
	}

	protocol := "http"
	if opts.UseSSL {
		protocol = "https"
	}

	c := &Client{
		baseURL:        protocol + "://" + opts.Host + ":" + strconv.FormatUint(uint64(opts.Port), 10) + "/",
		apiKey:         opts.ApiKey,
		defaultChannel: opts.DefaultChannel,
		timeout:        timeout,
		selfProc:       selfProc,
		httpClient:     &fasthttp.Client{},
	}
	return c, nil
}

// BaseURL returns the url all request paths are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

//------------------------------------------------------------------------------

// Error sends an error notification. An empty channel selects the configured
// default channel.
func (c *Client) Error(message string, channel string) error {
	return c.notify(SeverityError, message, channel)
}

// Warn sends a warning notification. An empty channel selects the configured
// default channel.
func (c *Client) Warn(message string, channel string) error {
	return c.notify(SeverityWarn, message, channel)
}

// Info sends an informational notification. An empty channel selects the
// configured default channel.
func (c *Client) Info(message string, channel string) error {
	return c.notify(SeverityInfo, message, channel)
}

// Ping checks connectivity with the server.
func (c *Client) Ping() error {
	return c.sendRequest("GET", "ping", nil, nil)
}

// ProcessWatch asks the server to monitor a process and notify the given
// channel if it crashes or exits with a non-zero code. A zero pid selects
// the calling process and an empty name its executable path.
func (c *Client) ProcessWatch(pid int, name string, severity string, channel string) error {
	return c.ProcessWatchEx(ProcessWatchOptions{
		Pid:      pid,
		Name:     name,
		Severity: severity,
		Channel:  channel,
	})
}

// ProcessWatchEx is ProcessWatch with the complete parameter set the server
// accepts, including the optional maximum memory usage limit.
func (c *Client) ProcessWatchEx(opts ProcessWatchOptions) error {
	pid := opts.Pid
	if pid == 0 {
		pid = c.selfProc.Pid()
	}
	if pid < 1 || pid > maxProcessId {
		return newInvalidArgumentError("Invalid process id.")
	}

	name := opts.Name
	if len(name) == 0 {
		name = c.selfProc.Name()
	}

	severity := ValidateSeverity(opts.Severity)
	if len(severity) == 0 {
		return newInvalidArgumentError("Invalid severity.")
	}

	if len(opts.MaxMemUsage) > 0 {
		_, ok := ValidateMemoryAmount(opts.MaxMemUsage, totalSystemMemory())
		if !ok {
			return newInvalidArgumentError("Invalid maximum memory usage value.")
		}
	}

	return c.sendRequest("POST", "process/watch", &watchProcessRequest{
		Channel:     c.resolveChannel(opts.Channel),
		Pid:         pid,
		MaxMemUsage: opts.MaxMemUsage,
		Name:        name,
		Severity:    severity,
	}, nil)
}

// ProcessUnwatch removes a watch previously established with ProcessWatch.
// A zero pid selects the calling process. Unwatching a pid that was never
// registered is not an error at this layer.
func (c *Client) ProcessUnwatch(pid int, channel string) error {
	if pid == 0 {
		pid = c.selfProc.Pid()
	}
	if pid < 1 || pid > maxProcessId {
		return newInvalidArgumentError("Invalid process id.")
	}

	return c.sendRequest("POST", "process/unwatch", &unwatchProcessRequest{
		Channel: c.resolveChannel(channel),
		Pid:     pid,
	}, nil)
}

//------------------------------------------------------------------------------

func (c *Client) notify(severity string, message string, channel string) error {
	//an empty message is silently dropped instead of rejected, so callers can
	//pass through strings that may be blank without sending empty alerts
	if len(message) == 0 {
		return nil
	}

	return c.sendRequest("POST", "notify", &notifyRequest{
		Channel:  c.resolveChannel(channel),
		Message:  message,
		Severity: severity,
	}, nil)
}

func (c *Client) resolveChannel(channel string) string {
	if len(channel) == 0 {
		return c.defaultChannel
	}
	return channel
}
