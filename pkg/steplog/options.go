package steplog

import "io"

// Option configures a Logger at construction.
type Option func(*Logger)

// WithOutput sends both normal and error lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
		l.err = w
	}
}

// WithSinks sets separate destinations for normal and error lines.
func WithSinks(out, err io.Writer) Option {
	return func(l *Logger) {
		l.out = out
		l.err = err
	}
}

// WithTabify sets the initial indentation flag. The default is true.
func WithTabify(enabled bool) Option {
	return func(l *Logger) { l.tabify = enabled }
}

// WithClock replaces the time source, mainly for tests.
func WithClock(c Clock) Option {
	return func(l *Logger) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithStyler decorates every written line.
func WithStyler(s Styler) Option {
	return func(l *Logger) { l.styler = s }
}

// WithDebug traces timer lifecycle events to d.
func WithDebug(d DebugLogger) Option {
	return func(l *Logger) {
		if d != nil {
			l.debug = d
		}
	}
}
