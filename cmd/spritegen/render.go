package main

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image/png"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/config"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

// applyColorMode honors the --no-color flag.
func applyColorMode() {
	if noColor {
		color.NoColor = true
	}
}

// assetRenderer renders one asset kind from a loaded config.
type assetRenderer func(cfg *config.Config) (*sprite.Pixmap, error)

// renderJob describes one render invocation of a subcommand.
// Each subcommand binds its flags to its own variables and hands the
// values over here; pflag writes every registered default into its bound
// variable at startup, so commands must not share bindings.
type renderJob struct {
	kind   string
	out    string
	force  bool
	open   bool
	watch  bool
	render assetRenderer
}

// run dispatches a job to a single render or the watch loop.
func run(cmd *cobra.Command, job renderJob) error {
	if job.watch {
		return watchLoop(cmd, job)
	}
	return renderOnce(cmd, job)
}

// renderOnce loads parameters, renders the asset, and writes the output
// file unless the existing file already shows the same asset.
func renderOnce(cmd *cobra.Command, job renderJob) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	var sp *spinner.Spinner
	if !quiet {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond,
			spinner.WithWriter(colorable.NewColorableStderr()),
			spinner.WithSuffix(" rendering "+job.kind))
		sp.Start()
	}
	pm, err := job.render(cfg)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := pm.WritePNG(&buf); err != nil {
		return err
	}

	if !job.force {
		if same, err := unchanged(job.out, pm, buf.Bytes()); err == nil && same {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (unchanged)\n", yellow("skip"), job.out)
			return maybeOpen(job)
		}
	}

	if err := os.WriteFile(job.out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // asset files are world-readable
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", green("wrote"), job.out, buf.Len())
	return maybeOpen(job)
}

// unchanged reports whether the file at path already holds the rendered
// asset: first byte-exact via checksum, then perceptually.
func unchanged(path string, pm *sprite.Pixmap, encoded []byte) (bool, error) {
	existing, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return false, err
	}
	if crc32.ChecksumIEEE(existing) == crc32.ChecksumIEEE(encoded) {
		return true, nil
	}
	img, err := png.Decode(bytes.NewReader(existing))
	if err != nil {
		return false, err
	}
	return pm.Equivalent(img)
}

// maybeOpen shows the output file in the default viewer when requested.
func maybeOpen(job renderJob) error {
	if !job.open {
		return nil
	}
	return browser.OpenFile(job.out)
}
