package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRenderCommandOutputDefaults(t *testing.T) {
	// Each subcommand binds --out to its own variable. The bound value
	// must still equal the command's own default after all commands have
	// registered, not whichever default registered last.
	tests := []struct {
		name string
		cmd  *cobra.Command
		want string
	}{
		{"glow", glowCmd, "glow.png"},
		{"icon", iconCmd, "icon.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.cmd.Flags().Lookup("out")
			if f == nil {
				t.Fatal("out flag not registered")
			}
			if f.DefValue != tt.want {
				t.Errorf("expected default %q, got %q", tt.want, f.DefValue)
			}
			if got := f.Value.String(); got != tt.want {
				t.Errorf("expected bound value %q before parsing, got %q", tt.want, got)
			}
		})
	}
}

func writeParams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out.String()
}

func TestGlowCommandWritesOwnDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := writeParams(t, `glow:
  size: 32
  center: {x: 16, y: 16}
  radius: 10
  alpha: 180
  blur: 2
  power: 1.9
`)

	got := execute(t, "glow", "-c", cfg, "--quiet", "--no-color")

	if _, err := os.Stat("glow.png"); err != nil {
		t.Errorf("expected glow.png to be written: %v", err)
	}
	if _, err := os.Stat("icon.png"); err == nil {
		t.Error("glow must not write icon.png")
	}
	if !strings.Contains(got, "wrote glow.png") {
		t.Errorf("expected a report for glow.png, got %q", got)
	}
}

func TestIconCommandWritesOwnDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg := writeParams(t, `icon:
  size: 16
  scale: 2
  strokeWidth: 4
  samples: 50
  foreground: "#ffffff"
  curve:
    - {x: 2, y: 12}
    - {x: 6, y: 12}
    - {x: 10, y: 4}
    - {x: 14, y: 10}
`)

	got := execute(t, "icon", "-c", cfg, "--quiet", "--no-color")

	if _, err := os.Stat("icon.png"); err != nil {
		t.Errorf("expected icon.png to be written: %v", err)
	}
	if _, err := os.Stat("glow.png"); err == nil {
		t.Error("icon must not write glow.png")
	}
	if !strings.Contains(got, "wrote icon.png") {
		t.Errorf("expected a report for icon.png, got %q", got)
	}
}
