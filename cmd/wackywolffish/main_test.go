package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	if stdin == nil {
		stdin = strings.NewReader("")
	}
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, _, err := execute(t, nil, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, name := range []string{"bisect", "sort", "script", "manifest", "analyze", "progress", "config"} {
		if !strings.Contains(out, name) {
			t.Fatalf("help missing %q:\n%s", name, out)
		}
	}
}

func TestUnknownCommandFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, _, err := execute(t, nil, "frobnicate"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
