package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	valid "github.com/asaskevich/govalidator"

	watchdog "github.com/randlabs/server-watchdog-client"
	"github.com/randlabs/server-watchdog-client/utils/process"
	"github.com/randlabs/server-watchdog-client/utils/stringparser"
)

//------------------------------------------------------------------------------

// Load reads and validates a client settings file. A relative filename is
// resolved against the application folder; an empty filename selects
// "./settings.json".
func Load(filename string) (*SettingsJSON, error) {
	var file *os.File
	var parser *json.Decoder
	var config SettingsJSON
	var ok bool
	var err error

	if len(filename) == 0 {
		filename = "./settings.json"
	}
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(process.AppPath, filename)
	}
	filename = filepath.Clean(filename)

	file, err = os.Open(filename)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("Cannot load settings. [%v]", err))
	}
	defer func() {
		_ = file.Close()
	}()

	parser = json.NewDecoder(file)
	err = parser.Decode(&config)
	if err != nil {
		return nil, errors.New(fmt.Sprintf("Invalid settings file. [%v]", err))
	}

	//validate settings
	if len(config.Host) == 0 || !valid.IsHost(config.Host) {
		return nil, errors.New("Missing or invalid server host.")
	}

	if config.Port < 1 || config.Port > 65535 {
		return nil, errors.New("Invalid server port.")
	}

	//accept numeric values for the ssl flag, coercing truthiness
	switch v := config.UseSSL.(type) {
	case nil:
		config.UseSSLX = false
	case bool:
		config.UseSSLX = v
	case float64:
		config.UseSSLX = v != 0
	default:
		return nil, errors.New("Invalid ssl flag value.")
	}

	if len(config.ApiKey) == 0 {
		return nil, errors.New("Missing or invalid server API key.")
	}

	if len(config.DefaultChannel) == 0 {
		return nil, errors.New("Missing or invalid default channel.")
	}

	if len(config.Timeout) > 0 {
		config.TimeoutX, ok = ValidateTimeSpan(config.Timeout)
		if !ok || config.TimeoutX <= 0 {
			return nil, errors.New("Invalid timeout value.")
		}
	} else {
		config.TimeoutX = watchdog.DefaultTimeout
	}

	return &config, nil
}

// ToOptions maps validated settings to client construction options.
func (config *SettingsJSON) ToOptions() watchdog.Options {
	return watchdog.Options{
		Host:           config.Host,
		Port:           config.Port,
		UseSSL:         config.UseSSLX,
		ApiKey:         config.ApiKey,
		DefaultChannel: config.DefaultChannel,
		Timeout:        config.TimeoutX,
	}
}

// ValidateTimeSpan parses a human readable timespan like "30s", "500 ms" or
// "1 min 30 secs".
func ValidateTimeSpan(t string) (time.Duration, bool) {
	var d time.Duration

	width := stringparser.SkipSpaces(t)
	if width < 0 {
		return 0, false
	}
	if width >= len(t) {
		return 0, false //do not accept empty strings
	}

	for width < len(t) {
		//get value
		value, w := stringparser.GetUint64(t[width:])
		if w <= 0 {
			return 0, false
		}
		width += w

		w = stringparser.SkipSpaces(t[width:])
		if w < 0 {
			return 0, false
		}
		width += w

		//get units
		units, w := stringparser.GetText(t[width:])
		if w <= 0 {
			return 0, false
		}
		width += w

		//increment d
		prevD := d
		switch strings.ToLower(units) {
		case "ms":
			d += time.Duration(value) * time.Millisecond

		case "s":
			fallthrough
		case "sec":
			fallthrough
		case "secs":
			d += time.Duration(value) * time.Second

		case "m":
			fallthrough
		case "min":
			fallthrough
		case "mins":
			d += time.Duration(value) * time.Minute

		case "h":
			fallthrough
		case "hour":
			fallthrough
		case "hours":
			d += time.Duration(value) * time.Hour

		case "d":
			fallthrough
		case "day":
			fallthrough
		case "days":
			d += time.Duration(value) * time.Hour * 24

		case "w":
			fallthrough
		case "week":
			fallthrough
		case "weeks":
			d += time.Duration(value) * time.Hour * 24 * 7

		default:
			return 0, false
		}
		if d < prevD {
			return 0, false //rollover
		}

		w = stringparser.SkipSpaces(t[width:])
		if w < 0 {
			return 0, false
		}
		width += w
	}

	return d, true
}
