package cli_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yaklabco/md2html/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Name() != "md2html" {
		t.Errorf("expected command name to be 'md2html', got %q", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"batch", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestRootCommandArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil, wantErr: true},
		{name: "one arg", args: []string{"in.md"}, wantErr: true},
		{name: "two args", args: []string{"in.md", "out"}},
		{name: "three args", args: []string{"a", "b", "c"}, wantErr: true},
	}

	for _, tt := range tests {
		err := cmd.Args(cmd, tt.args)
		if tt.wantErr {
			if !errors.Is(err, cli.ErrUsage) {
				t.Errorf("%s: expected ErrUsage, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestBatchCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	batchCmd, _, err := cmd.Find([]string{"batch"})
	if err != nil {
		t.Fatalf("batch command not found: %v", err)
	}

	for _, flagName := range []string{"out-dir", "jobs", "include", "ignore", "ext", "format", "backup", "compact", "verbose"} {
		if batchCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on batch command", flagName)
		}
	}

	if err := batchCmd.Args(batchCmd, []string{"a.md", "docs/", "b.md"}); err != nil {
		t.Errorf("batch command should accept arbitrary args, got error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"md2html", "1.2.3", "abc123", "2024-01-01"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected version output to contain %q, got %q", want, out.String())
		}
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetArgs([]string{"--help"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	for _, want := range []string{"Usage:", "md2html INPUT OUTPUT", "Commands:", "batch", "--debug"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected help output to contain %q", want)
		}
	}
}
