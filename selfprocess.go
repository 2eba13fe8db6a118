package watchdog

import (
	"os"

	"github.com/shirou/gopsutil/process"
)

//------------------------------------------------------------------------------

// SelfProcess describes the calling process. Watch operations fall back to
// it when the pid or name argument is left empty.
type SelfProcess interface {
	// Pid returns the calling process' id.
	Pid() int

	// Name returns a human readable description of the calling process,
	// usually the executable path. May return an empty string.
	Name() string
}

//------------------------------------------------------------------------------

type currentProcess struct{}

func (currentProcess) Pid() int {
	return os.Getpid()
}

func (currentProcess) Name() string {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err == nil {
		exeName, err := proc.Exe()
		if err == nil && len(exeName) > 0 {
			return exeName
		}
	}

	exeName, err := os.Executable()
	if err != nil {
		return ""
	}
	return exeName
}
