package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared diagnostic logger for the CLI's own messages.
// Timer and message lines never go through it; they belong to steplog.
var Logger = NewLogger(os.Stderr)

// NewLogger returns a timestamped logger prefixed with the tool name.
func NewLogger(w io.Writer) *clog.Logger {
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Prefix:          "steplog",
	})
}

// SetDebug switches Logger between debug and info level.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
