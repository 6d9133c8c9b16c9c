package entry

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestVersionCommandWrites(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand("test")
	cmd.Writer = &out
	if err := cmd.Run(context.Background(), []string{"termweave", "version"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "termweave test") {
		t.Fatalf("stdout=%q", out.String())
	}
}

func TestRunUnknownFlagExitsNonzero(t *testing.T) {
	prevExiter := cli.OsExiter
	prevErrWriter := cli.ErrWriter
	cli.OsExiter = func(int) {}
	cli.ErrWriter = io.Discard
	t.Cleanup(func() {
		cli.OsExiter = prevExiter
		cli.ErrWriter = prevErrWriter
	})

	if exit := Run([]string{"termweave", "--definitely-not-a-flag"}, "test"); exit == 0 {
		t.Fatal("expected nonzero exit for unknown flag")
	}
}

func TestCommandDeclaresFlags(t *testing.T) {
	cmd := newCommand("test")
	names := map[string]bool{}
	for _, f := range cmd.Flags {
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	for _, want := range []string{"config", "command", "log-level"} {
		if !names[want] {
			t.Errorf("missing flag %q", want)
		}
	}
}
