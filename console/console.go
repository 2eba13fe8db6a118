package console

import (
	"fmt"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/kardianos/service"
)

//------------------------------------------------------------------------------

var m sync.Mutex

//------------------------------------------------------------------------------

func Print(format string, a ...interface{}) {
	if service.Interactive() {
		color.Print(fmt.Sprintf(format, a...))
	}
}

func Println(format string, a ...interface{}) {
	if service.Interactive() {
		color.Println(fmt.Sprintf(format, a...))
	}
}

func Info(format string, a ...interface{}) {
	if service.Interactive() {
		printCommon(color.Info, "INFO", fmt.Sprintf(format, a...))
	}
}

func Warn(format string, a ...interface{}) {
	if service.Interactive() {
		printCommon(color.Warn, "WARN", fmt.Sprintf(format, a...))
	}
}

func Error(format string, a ...interface{}) {
	if service.Interactive() {
		printCommon(color.Error, "ERROR", fmt.Sprintf(format, a...))
	}
}

func PrintlnSuccess() {
	if service.Interactive() {
		color.LightGreen.Println("OK")
	}
}

func PrintlnError(format string, a ...interface{}) {
	if service.Interactive() {
		color.Error.Println(fmt.Sprintf(format, a...))
	}
}

//------------------------------------------------------------------------------

func printCommon(theme *color.Theme, label string, msg string) {
	m.Lock()
	defer m.Unlock()

	color.Print(getTimestamp() + " ")
	theme.Print("[" + label + "]")
	color.Print(" - " + msg + "\n")
	return
}

func getTimestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
