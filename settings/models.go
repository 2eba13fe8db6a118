package settings

import (
	"time"
)

//------------------------------------------------------------------------------

type SettingsJSON struct {
	Host           string      `json:"host"`
	Port           uint        `json:"port"`
	UseSSL         interface{} `json:"useSsl,omitempty"`
	UseSSLX        bool
	ApiKey         string `json:"apiKey"`
	DefaultChannel string `json:"defaultChannel"`
	Timeout        string `json:"timeout,omitempty"`
	TimeoutX       time.Duration
}
