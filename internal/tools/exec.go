package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long output copying may outlive a killed command.
const waitDelay = time.Second

// Logger is the part of *steplog.Logger used to time a command.
type Logger interface {
	Start(name string)
	End(name string)
	LogError(message string)
}

// Label is the timer name used for a command line.
func Label(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}

// Run executes name with args between a Start and an End of its Label,
// streaming output to stdout and stderr. A non-zero exit is reported
// through the exit code with a nil error; failures to run at all are
// logged and returned with exit code -1. The timer is ended either way.
func Run(ctx context.Context, log Logger, name string, args []string, stdout, stderr io.Writer) (int, error) {
	label := Label(name, args)
	log.Start(label)
	defer log.End(label)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		log.LogError(fmt.Sprintf("%s: %v", label, ctx.Err()))
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	log.LogError(fmt.Sprintf("%s: %v", label, err))
	return -1, err
}
