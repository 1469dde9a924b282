// Package steplog prints nested start/done lines for named timers and plain
// "-- " prefixed messages to a pair of output sinks.
//
//	log := steplog.New()
//	log.Start("build")
//	log.Log("compiling")
//	log.End("build")
//
// A Logger is safe for concurrent use, and so are Loggers derived from it
// with Share: they serialize writes to the sinks they alias. Timer identity
// is the name alone: a second Start of the same name replaces the first
// start instant.
package steplog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// indentUnit is written once per nesting level when tabify is enabled.
const indentUnit = "   "

// LineKind classifies a rendered line for styling.
type LineKind int

const (
	KindStart LineKind = iota
	KindDone
	KindMessage
	KindError
)

func (k LineKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindDone:
		return "done"
	case KindMessage:
		return "message"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Styler decorates a rendered line before it is written. Implementations
// must keep the visible text unchanged.
type Styler interface {
	Style(kind LineKind, line string) string
}

// StylerFunc adapts a function to Styler.
type StylerFunc func(kind LineKind, line string) string

func (f StylerFunc) Style(kind LineKind, line string) string { return f(kind, line) }

// DebugLogger receives timer lifecycle traces. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type DebugLogger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nopDebug struct{}

func (nopDebug) Debug(interface{}, ...interface{}) {}

// Logger writes timer and message lines to its out and err sinks.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	err    io.Writer
	tabify bool
	depth  int
	timers *timerSet
	// wmu serializes sink writes across Loggers returned by Share.
	wmu    *sync.Mutex
	clock  Clock
	styler Styler
	debug  DebugLogger
}

// New builds a Logger writing to os.Stdout and os.Stderr with tabify
// enabled, then applies opts in order.
func New(opts ...Option) *Logger {
	l := &Logger{
		out:    os.Stdout,
		err:    os.Stderr,
		tabify: true,
		timers: newTimerSet(),
		wmu:    &sync.Mutex{},
		clock:  SystemClock{},
		debug:  nopDebug{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Share returns a Logger that aliases this one's timers, sinks and sink
// write lock. The tabify flag and current depth are copied, after which
// each Logger keeps its own depth. Timers started through either are visible to both.
func (l *Logger) Share() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		out:    l.out,
		err:    l.err,
		tabify: l.tabify,
		depth:  l.depth,
		timers: l.timers,
		wmu:    l.wmu,
		clock:  l.clock,
		styler: l.styler,
		debug:  l.debug,
	}
}

// Start records the current instant under name, writes the started line
// and nests subsequent timer lines one level deeper.
func (l *Logger) Start(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.timers.put(name, l.clock.Now())
	l.writeLine(l.out, KindStart, l.indent()+name+" - Started ... ")
	l.depth++
	l.debug.Debug("timer started", "name", name, "depth", l.depth)
}

// End stops the named timer and writes the done line with the elapsed
// milliseconds. Ending a name that is not active writes an error line
// and changes nothing else.
func (l *Logger) End(name string) {
	_, _ = l.Stop(name)
}

// Stop behaves like End and also returns the elapsed time, or a
// *NotStartedError when name has no active timer.
func (l *Logger) Stop(name string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	start, ok := l.timers.take(name)
	if !ok {
		err := &NotStartedError{Name: name}
		l.logError(err.Error())
		l.debug.Debug("timer not started", "name", name, "depth", l.depth)
		return 0, err
	}
	elapsed := now.Sub(start)
	l.depth--
	l.writeLine(l.out, KindDone, fmt.Sprintf("%s%s - Done - %d (ms)", l.indent(), name, elapsed.Milliseconds()))
	l.debug.Debug("timer done", "name", name, "depth", l.depth, "elapsed", elapsed)
	return elapsed, nil
}

// Track starts name and returns a func that ends it:
//
//	defer log.Track("load")()
func (l *Logger) Track(name string) func() {
	l.Start(name)
	return func() { l.End(name) }
}

// Log writes "-- message" to the out sink. Messages are never indented.
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeLine(l.out, KindMessage, "-- "+message)
}

// LogError writes "-- message" to the err sink.
func (l *Logger) LogError(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logError(message)
}

// Tabify reports whether timer lines are indented by depth.
func (l *Logger) Tabify() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tabify
}

// SetTabify toggles indentation for subsequent timer lines.
func (l *Logger) SetTabify(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tabify = enabled
}

// Depth returns the current nesting depth. It is not clamped and goes
// negative only if a shared timer is ended on more instances than it was
// started on.
func (l *Logger) Depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.depth
}

// Active returns the names of running timers in sorted order.
func (l *Logger) Active() []string {
	return l.timers.names()
}

func (l *Logger) logError(message string) {
	l.writeLine(l.err, KindError, "-- "+message)
}

func (l *Logger) indent() string {
	if !l.tabify || l.depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, l.depth)
}

// writeLine ignores write errors; sinks are assumed writable.
func (l *Logger) writeLine(w io.Writer, kind LineKind, line string) {
	if l.styler != nil {
		line = l.styler.Style(kind, line)
	}
	l.wmu.Lock()
	defer l.wmu.Unlock()
	_, _ = io.WriteString(w, line+"\n")
}
