package picker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// fakeRofi writes a shell script that records its argv and stdin, prints
// output and exits with code.
func fakeRofi(t *testing.T, output string, code int) (path, argsFile, stdinFile string) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	stdinFile = filepath.Join(dir, "stdin")
	path = filepath.Join(dir, "rofi")
	script := "#!/bin/sh\n" +
		"for a in \"$@\"; do printf '%s\\n' \"$a\" >> '" + argsFile + "'; done\n" +
		"cat > '" + stdinFile + "'\n" +
		"printf '%s' '" + output + "'\n" +
		"exit " + strconv.Itoa(code) + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake rofi: %v", err)
	}
	return path, argsFile, stdinFile
}

func TestRofiArgsWithHints(t *testing.T) {
	r := NewRofi("", nil)
	args := r.Args(Options{Urgent: []int{1, 3}, Low: []int{0}, SelectedRow: 2})
	joined := strings.Join(args, " ")
	for _, want := range []string{"-dmenu", "-markup-rows", "-format i", "-eh 2", "-lines 10", "-u 1,3", "-a 0", "-selected-row 2", "-kb-custom-4 Shift+Delete"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in args %q", want, joined)
		}
	}
	if args[len(args)-2] != "-selected-row" {
		t.Fatalf("expected selected row hint last, got %v", args)
	}
}

func TestRofiArgsWithoutHints(t *testing.T) {
	r := NewRofi("", []string{"-theme", "mine"})
	args := r.Args(Options{SelectedRow: NoSelection})
	joined := strings.Join(args, " ")
	for _, flag := range []string{"-u", "-a", "-selected-row"} {
		for _, a := range args {
			if a == flag {
				t.Fatalf("unexpected %s in %q", flag, joined)
			}
		}
	}
	if !strings.Contains(joined, "-theme mine") {
		t.Fatalf("expected extra args in %q", joined)
	}
}

func TestRofiPickParsesSelectionAndExitCode(t *testing.T) {
	path, argsFile, stdinFile := fakeRofi(t, "1\n", 10)
	r := NewRofi(path, nil)
	out, err := r.Pick(context.Background(), []string{"first", "second"}, Options{Urgent: []int{1}, SelectedRow: NoSelection})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Index != 1 || out.Action != ActionDelete || out.ExitCode != 10 {
		t.Fatalf("unexpected outcome %#v", out)
	}
	stdin, err := os.ReadFile(stdinFile)
	if err != nil {
		t.Fatalf("read stdin capture: %v", err)
	}
	if string(stdin) != "first\x00second\x00" {
		t.Fatalf("unexpected stdin %q", stdin)
	}
	args, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args capture: %v", err)
	}
	if !strings.Contains(string(args), "-u\n1\n") {
		t.Fatalf("expected urgent hint in args, got %q", args)
	}
}

func TestRofiPickEmptyOutputIsNoSelection(t *testing.T) {
	path, _, _ := fakeRofi(t, "", 1)
	out, err := NewRofi(path, nil).Pick(context.Background(), []string{"only"}, Options{SelectedRow: NoSelection})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Selected() {
		t.Fatalf("expected no selection, got %#v", out)
	}
	if out.Action != ActionCancel {
		t.Fatalf("expected cancel, got %v", out.Action)
	}
}

func TestRofiPickMalformedOutputIsNoSelection(t *testing.T) {
	path, _, _ := fakeRofi(t, "abc", 11)
	out, err := NewRofi(path, nil).Pick(context.Background(), []string{"only"}, Options{SelectedRow: NoSelection})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Index != NoSelection {
		t.Fatalf("expected no selection for malformed output, got %d", out.Index)
	}
}

func TestRofiPickMissingExecutable(t *testing.T) {
	r := NewRofi(filepath.Join(t.TempDir(), "does-not-exist"), nil)
	_, err := r.Pick(context.Background(), []string{"x"}, Options{SelectedRow: NoSelection})
	if err == nil {
		t.Fatalf("expected error for missing executable")
	}
	if !errors.Is(err, ErrStart) {
		t.Fatalf("expected ErrStart, got %v", err)
	}
}

func TestRofiPickCancelledContextIsCancel(t *testing.T) {
	path, argsFile, _ := fakeRofi(t, "0", ExitDelete)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := NewRofi(path, nil).Pick(ctx, []string{"only"}, Options{SelectedRow: NoSelection})
	if err != nil {
		t.Fatalf("expected interrupted pick to cancel quietly, got %v", err)
	}
	if out.Selected() || out.Action != ActionCancel {
		t.Fatalf("expected cancel without selection, got %+v", out)
	}
	if _, statErr := os.Stat(argsFile); !os.IsNotExist(statErr) {
		t.Fatalf("expected rofi not to run, stat err %v", statErr)
	}
}

func TestEncodeEntriesDropsEmbeddedNUL(t *testing.T) {
	got := encodeEntries([]string{"a\x00b", ""})
	if string(got) != "ab\x00\x00" {
		t.Fatalf("unexpected encoding %q", got)
	}
}

func TestParseSelection(t *testing.T) {
	cases := map[string]int{
		"":     NoSelection,
		"  ":   NoSelection,
		"0":    0,
		"12\n": 12,
		"-3":   NoSelection,
		"1a":   NoSelection,
	}
	for input, expected := range cases {
		if got := parseSelection(input); got != expected {
			t.Fatalf("parseSelection(%q): expected %d, got %d", input, expected, got)
		}
	}
}
