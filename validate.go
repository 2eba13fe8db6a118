package watchdog

import (
	"strings"

	"github.com/shirou/gopsutil/mem"

	"github.com/randlabs/server-watchdog-client/utils/stringparser"
)

//------------------------------------------------------------------------------

// Severities understood by the server watchdog.
const (
	SeverityError = "error"
	SeverityWarn  = "warn"
	SeverityInfo  = "info"
)

//------------------------------------------------------------------------------

// ValidateSeverity normalizes a severity name the same way the server does.
// The aliases "warning" and "information" map to their short forms and the
// empty string selects the default severity. An unrecognized severity
// returns the empty string.
func ValidateSeverity(severity string) string {
	switch severity {
	case SeverityError:
		fallthrough
	case SeverityWarn:
		fallthrough
	case SeverityInfo:
		return severity
	case "warning":
		return SeverityWarn
	case "information":
		return SeverityInfo
	case "":
		return SeverityError
	}
	return ""
}

// ValidateMemoryAmount parses a human readable memory amount like "512mb",
// "1.5 gigabytes" or, when totalAvailable is given, "80%". Returns the
// amount in bytes.
func ValidateMemoryAmount(t string, totalAvailable *uint64) (uint64, bool) {
	var siz uint64
	var w int

	width := stringparser.SkipSpaces(t)
	if width < 0 {
		return 0, false
	}
	if width >= len(t) {
		return 0, false //do not accept empty strings
	}

	//get value
	value, w := stringparser.GetFloat64(t[width:])
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
	units := ""
	if width < len(t) {
		if t[width] == '%' {
			units = "%"
			width += 1
		} else {
			units, w = stringparser.GetText(t[width:])
			if w <= 0 {
				return 0, false
			}
			width += w
		}

		w = stringparser.SkipSpaces(t[width:])
		if w < 0 {
			return 0, false
		}
		width += w
	}
	if width < len(t) {
		return 0, false //not the end of the string
	}

	switch strings.ToLower(units) {
	case "":
		fallthrough
	case "b":
		fallthrough
	case "bytes":
		siz = uint64(value)

	case "k":
		fallthrough
	case "kb":
		fallthrough
	case "kilobytes":
		if value*1024.0 < value {
			return 0, false
		}
		siz = uint64(value * 1024.0)

	case "m":
		fallthrough
	case "mb":
		fallthrough
	case "megabytes":
		if value*1048576.0 < value {
			return 0, false
		}
		siz = uint64(value * 1048576.0)

	case "g":
		fallthrough
	case "gb":
		fallthrough
	case "gigabytes":
		if value*1073741824.0 < value {
			return 0, false
		}
		siz = uint64(value * 1073741824.0)

	case "%":
		if totalAvailable == nil {
			return 0, false
		}
		if value < 0 || value > 100.0 {
			return 0, false
		}
		siz = uint64(value / 100.0 * float64(*totalAvailable))

	default:
		return 0, false
	}

	return siz, true
}

//------------------------------------------------------------------------------

func totalSystemMemory() *uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil
	}
	return &vm.Total
}
