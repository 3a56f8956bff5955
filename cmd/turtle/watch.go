// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"cogentcore.org/turtle/base/errors"
	"cogentcore.org/turtle/turtle/program"
	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

// watcher reruns the programs matching a pattern whenever they change.
type watcher struct {
	opts   *runOptions
	config *Config
	out    io.Writer
	match  glob.Glob
}

func newWatcher(o *runOptions, c *Config, out io.Writer, pattern string) (*watcher, error) {
	g, err := glob.Compile(filepath.Clean(pattern), filepath.Separator)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return &watcher{opts: o, config: c, out: out, match: g}, nil
}

// outputs returns the output files for the program file, with {name}
// replaced by its base name without extension.
func (w *watcher) outputs(file string) []string {
	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	outs := make([]string, len(w.opts.outputs))
	for i, o := range w.opts.outputs {
		outs[i] = strings.ReplaceAll(o, "{name}", name)
	}
	return outs
}

// update runs the program file and writes its outputs. Errors are
// logged so that watching continues.
func (w *watcher) update(file string) {
	errors.Log(w.run(file))
}

func (w *watcher) run(file string) error {
	cmds, err := program.Open(file)
	if err != nil {
		return err
	}
	st, err := w.opts.execute(w.config, cmds)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	o := *w.opts
	o.outputs = w.outputs(file)
	if len(o.outputs) == 0 {
		fmt.Fprintf(w.out, "# %s\n", file)
	}
	return o.write(w.config, st, w.out)
}

// watch runs all current matches, then reruns each matching file that
// is written or created until the context is done.
func (w *watcher) watch(ctx context.Context, pattern string) error {
	dir := filepath.Dir(filepath.Clean(pattern))
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { errors.Log(fw.Close()) }()
	if err := fw.Add(dir); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		file := filepath.Join(dir, e.Name())
		if !e.IsDir() && w.match.Match(file) {
			w.update(file)
		}
	}

	slog.Info("watching", "pattern", pattern)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			file := filepath.Clean(event.Name)
			if w.match.Match(file) {
				slog.Debug("changed", "file", file, "op", event.Op)
				w.update(file)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch error", "err", err)
		}
	}
}

func newWatchCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "watch pattern",
		Short: "Rerun turtle programs whenever they change",
		Long: `Run every program file matching the glob pattern, then rerun each one
whenever it is written, until interrupted. Output file names may use
{name} for the program's base name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.apply(a.config); err != nil {
				return err
			}
			w, err := newWatcher(o, a.config, cmd.OutOrStdout(), args[0])
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return w.watch(ctx, args[0])
		},
	}
	o.addFlags(cmd, false)
	return cmd
}
