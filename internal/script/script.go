// Package script parses and replays recorded sequences of steplog
// operations.
//
// Line format, one operation per line:
//
//	# comment
//	start build
//	log compiling
//	end build
//	error something failed
//
// YAML format, a list of single-key maps:
//
//	- start: build
//	- log: compiling
//	- end: build
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Verb names a logger operation.
type Verb string

const (
	VerbStart Verb = "start"
	VerbEnd   Verb = "end"
	VerbLog   Verb = "log"
	VerbError Verb = "error"
)

// Verbs lists every known verb.
var Verbs = []Verb{VerbStart, VerbEnd, VerbLog, VerbError}

func (v Verb) valid() bool {
	for _, k := range Verbs {
		if v == k {
			return true
		}
	}
	return false
}

// Op is one parsed operation. Line is 1-based within its source.
type Op struct {
	Verb Verb
	Arg  string
	Line int
}

// SyntaxError reports an unknown verb or malformed entry.
type SyntaxError struct {
	Line       int
	Verb       string
	Suggestion string
	Msg        string
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d: ", e.Line)
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		fmt.Fprintf(&b, "unknown verb %q", e.Verb)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

func unknownVerb(line int, verb string) *SyntaxError {
	return &SyntaxError{Line: line, Verb: verb, Suggestion: Suggest(verb)}
}

// Parse reads the line format. The argument is everything after the verb
// and its separating whitespace, kept verbatim.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		verb, arg := trimmed, ""
		if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
			verb = trimmed[:i]
			arg = strings.TrimLeft(trimmed[i:], " \t")
		}
		v := Verb(strings.ToLower(verb))
		if !v.valid() {
			return nil, unknownVerb(n, verb)
		}
		ops = append(ops, Op{Verb: v, Arg: arg, Line: n})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

// Load parses the file at path, choosing the YAML parser for .yaml and
// .yml files.
func Load(path string) ([]Op, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("empty script path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return Parse(f)
	}
}

// Target is the subset of *steplog.Logger a replay drives.
type Target interface {
	Start(name string)
	End(name string)
	Log(message string)
	LogError(message string)
}

// Replay applies ops to t in order. It stops between operations once ctx
// is done and returns the context error.
func Replay(ctx context.Context, t Target, ops []Op) error {
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch op.Verb {
		case VerbStart:
			t.Start(op.Arg)
		case VerbEnd:
			t.End(op.Arg)
		case VerbLog:
			t.Log(op.Arg)
		case VerbError:
			t.LogError(op.Arg)
		default:
			return unknownVerb(op.Line, string(op.Verb))
		}
	}
	return nil
}
