package cli

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"steplog/internal/config"
	tu "steplog/internal/testutil"
	appver "steplog/internal/version"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvTabify, config.EnvColor, config.EnvDebug, config.EnvAddr} {
		tu.WithEnv(t, k, "")
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return p
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if strings.TrimSpace(out) != appver.AppVersion {
		t.Fatalf("got %q", out)
	}
}

func TestRun_Script(t *testing.T) {
	clearEnv(t)
	p := writeScript(t, "steps.txt", "start a\nstart b\nlog hi\nerror bad\n")

	out, errOut, err := execute(t, "run", p)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out != "a - Started ... \n   b - Started ... \n-- hi\n" {
		t.Fatalf("stdout: %q", out)
	}
	if errOut != "-- bad\n" {
		t.Fatalf("stderr: %q", errOut)
	}
}

func TestRun_TabifyFlagAndEnv(t *testing.T) {
	clearEnv(t)
	p := writeScript(t, "steps.yaml", "- start: a\n- start: b\n")

	out, _, err := execute(t, "run", "--tabify=false", p)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out != "a - Started ... \nb - Started ... \n" {
		t.Fatalf("flag: %q", out)
	}

	tu.WithEnv(t, config.EnvTabify, "false")
	out, _, err = execute(t, "run", p)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out != "a - Started ... \nb - Started ... \n" {
		t.Fatalf("env: %q", out)
	}

	// an explicit flag wins over the environment
	out, _, err = execute(t, "run", "--tabify", p)
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if out != "a - Started ... \n   b - Started ... \n" {
		t.Fatalf("flag over env: %q", out)
	}
}

func TestRun_BadScript(t *testing.T) {
	clearEnv(t)
	p := writeScript(t, "steps.txt", "strt a\n")

	_, _, err := execute(t, "run", p)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Fatalf("expected syntax error, got %v", err)
	}
}

func TestRun_InvalidEnv(t *testing.T) {
	clearEnv(t)
	tu.WithEnv(t, config.EnvDebug, "maybe")
	p := writeScript(t, "steps.txt", "log x\n")

	if _, _, err := execute(t, "run", p); err == nil {
		t.Fatal("expected error for invalid env boolean")
	}
}

func TestExec_PropagatesExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	clearEnv(t)

	out, _, err := execute(t, "exec", "sh", "-c", "echo inside; exit 4")
	var ee *exitError
	if !errors.As(err, &ee) || ee.Code != 4 {
		t.Fatalf("expected exit code 4, got %v", err)
	}
	lines := tu.Lines(out)
	if len(lines) != 3 || lines[1] != "inside" {
		t.Fatalf("unexpected output: %q", lines)
	}
	if !strings.HasPrefix(lines[0], "sh -c echo inside; exit 4 - Started ... ") {
		t.Fatalf("start line: %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "sh -c echo inside; exit 4 - Done - ") {
		t.Fatalf("done line: %q", lines[2])
	}
}

func TestSchema(t *testing.T) {
	out, _, err := execute(t, "schema", "tabify")
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}
	if !strings.Contains(out, `"enabled"`) {
		t.Fatalf("tabify schema: %s", out)
	}
	if _, _, err := execute(t, "schema", "bogus"); err == nil {
		t.Fatal("expected error for unknown schema")
	}
}

func TestFormats(t *testing.T) {
	out, _, err := execute(t, "formats", "--raw")
	if err != nil {
		t.Fatalf("formats error: %v", err)
	}
	if out != formatsDoc {
		t.Fatalf("raw output should be the markdown source")
	}
	out, _, err = execute(t, "formats")
	if err != nil {
		t.Fatalf("formats error: %v", err)
	}
	if !strings.Contains(out, "verbs") {
		t.Fatalf("rendered output lost content: %q", out)
	}
}
