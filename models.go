package watchdog

//------------------------------------------------------------------------------

type notifyRequest struct {
	Channel  string `json:"channel"`
	Message  string `json:"message"`
	Severity string `json:"severity,omitempty"`
}

type watchProcessRequest struct {
	Channel     string `json:"channel"`
	Pid         int    `json:"pid"`
	MaxMemUsage string `json:"maxMem,omitempty"`
	Name        string `json:"name,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

type unwatchProcessRequest struct {
	Channel string `json:"channel"`
	Pid     int    `json:"pid"`
}
