package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// debounceDelay absorbs the event bursts editors produce on save
// (truncate+write, or write-temp-then-rename).
const debounceDelay = 200 * time.Millisecond

// watchLoop renders once, then re-renders whenever the config file
// changes, until the command context is canceled.
func watchLoop(cmd *cobra.Command, job renderJob) error {
	if cfgPath == "" {
		return errors.New("--watch requires --config")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	// Watch the directory, not the file: atomic-rename saves replace the
	// inode, which would silently detach a file watch.
	if err := w.Add(filepath.Dir(cfgPath)); err != nil {
		return err
	}
	target, err := filepath.Abs(cfgPath)
	if err != nil {
		return err
	}

	// The first render fails the command; later failures only report, so
	// a config typo does not kill the watch session.
	if err := renderOnce(cmd, job); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", cfgPath)

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			p, err := filepath.Abs(ev.Name)
			if err != nil || p != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				debounce.Reset(debounceDelay)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s watch: %v\n", red("error"), err)

		case <-debounce.C:
			if err := renderOnce(cmd, job); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", red("error"), err)
			}
		}
	}
}
