package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/scrollhead/pkg/errors"
	"github.com/matzehuels/scrollhead/pkg/observability"
	"github.com/matzehuels/scrollhead/pkg/trace"
)

// execute runs the root command with args against isolated config and data
// directories and returns everything written to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{
		"run": false, "eval": false, "curves": false, "replay": false,
		"trace": false, "states": false, "config": false, "completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
	for _, flag := range []string{"config", "trace-dir"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestEvalCommand(t *testing.T) {
	out, err := execute(t, "eval", "--value", "0,100")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	for _, want := range []string{"Property", "search.scaleX", "feature.icon.opacity", "feature.scan.translateX", "-92", "-50"} {
		if !strings.Contains(out, want) {
			t.Errorf("eval output missing %q:\n%s", want, out)
		}
	}
}

func TestEvalRejectsNaN(t *testing.T) {
	_, err := execute(t, "eval", "--value", "NaN")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("eval NaN error = %v, want INVALID_INPUT", err)
	}
}

func TestCurvesCommand(t *testing.T) {
	out, err := execute(t, "curves")
	if err != nil {
		t.Fatalf("curves error: %v", err)
	}
	for _, want := range []string{"search.opacity", "[0, 25]", "[1, 0]", "feature.deposit.translateX", "[0, 36]", "clamp"} {
		if !strings.Contains(out, want) {
			t.Errorf("curves output missing %q:\n%s", want, out)
		}
	}
}

func TestStatesCommand(t *testing.T) {
	out, err := execute(t, "states")
	if err != nil {
		t.Fatalf("states error: %v", err)
	}
	if !strings.Contains(out, "digraph snap {") || !strings.Contains(out, `"DRAGGING" -> "COLLAPSED"`) {
		t.Errorf("states output:\n%s", out)
	}

	if _, err := execute(t, "states", "--format", "png"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("states --format png error = %v, want INVALID_FORMAT", err)
	}
	if _, err := execute(t, "states", "--highlight", "FLYING"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("states --highlight FLYING error = %v, want INVALID_INPUT", err)
	}
}

func TestStatesWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.dot")
	if _, err := execute(t, "states", "-o", path, "--highlight", "collapsed"); err != nil {
		t.Fatalf("states -o error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `fillcolor="#2A00A2"`) {
		t.Errorf("highlight missing from %s", data)
	}
}

func TestTraceWorkflow(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--trace-dir", dir, "trace", "record", "down", "--offsets", "0,10,5,20", "--release", "--ticks", "40")
	if err != nil {
		t.Fatalf("trace record error: %v", err)
	}
	if !strings.Contains(out, "Recorded trace down") {
		t.Errorf("record output:\n%s", out)
	}

	out, err = execute(t, "--trace-dir", dir, "trace", "list")
	if err != nil || !strings.Contains(out, "down") {
		t.Errorf("trace list = %q, %v", out, err)
	}

	out, err = execute(t, "--trace-dir", dir, "trace", "show", "down")
	if err != nil || !strings.Contains(out, "begin_drag") || !strings.Contains(out, "release") {
		t.Errorf("trace show = %q, %v", out, err)
	}

	out, err = execute(t, "--trace-dir", dir, "replay", "down")
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	for _, want := range []string{"COLLAPSED", "DOWN", "[100]"} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "--trace-dir", dir, "trace", "delete", "down"); err != nil {
		t.Fatalf("trace delete error: %v", err)
	}
	if _, err := execute(t, "--trace-dir", dir, "replay", "down"); !errors.Is(err, errors.ErrCodeTraceNotFound) {
		t.Errorf("replay after delete error = %v, want TRACE_NOT_FOUND", err)
	}
}

func TestCompleteTraceNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"fling", "flick", "down"} {
		if _, err := execute(t, "--trace-dir", dir, "trace", "record", name, "--offsets", "0,10"); err != nil {
			t.Fatalf("record %s: %v", name, err)
		}
	}

	out, err := execute(t, "__complete", "--trace-dir", dir, "trace", "show", "fl")
	if err != nil {
		t.Fatalf("__complete error: %v", err)
	}
	if !strings.Contains(out, "fling\t") || !strings.Contains(out, "flick\t") {
		t.Errorf("completions missing fl* traces:\n%s", out)
	}
	if strings.Contains(out, "down") {
		t.Errorf("completions should be filtered by prefix:\n%s", out)
	}
}

func TestCompletionScript(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the command name")
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell should be rejected")
	}
}

func TestTraceRecordRequiresOffsets(t *testing.T) {
	_, err := execute(t, "--trace-dir", t.TempDir(), "trace", "record", "empty")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestReplayFromFile(t *testing.T) {
	tr, err := trace.FromOffsets("up", []float64{80, 60}, true, 2, 16*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := trace.Encode(tr)
	path := filepath.Join(t.TempDir(), "up.json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "replay", path, "--settle")
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	for _, want := range []string{"EXPANDED", "UP", "settled"} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := execute(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error: %v", err)
	}
	if !strings.Contains(out, "Wrote default config") {
		t.Errorf("config init output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	out, _ = execute(t, "--config", path, "config", "init")
	if !strings.Contains(out, "already exists") {
		t.Errorf("second init should refuse to overwrite:\n%s", out)
	}

	out, err = execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show error: %v", err)
	}
	for _, want := range []string{path, "collapsed_height = 100.0", `easing = "cubic"`} {
		if !strings.Contains(out, want) {
			t.Errorf("config show missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowMissingFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "config", "show")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error: %v", err)
	}
	if !strings.HasPrefix(out, appName+" version: ") || !strings.Contains(out, "commit: ") {
		t.Errorf("--version output = %q", out)
	}
}
