// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cogentcore.org/turtle/base/iox/imagex"
	"cogentcore.org/turtle/base/iox/yamlx"
	"cogentcore.org/turtle/math32"
	"cogentcore.org/turtle/render"
	"cogentcore.org/turtle/turtle"
	"cogentcore.org/turtle/turtle/program"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Formats are the text output formats.
var Formats = []string{"points", "sweep", "state"}

// runOptions are the flags shared by run and watch.
type runOptions struct {
	exec    string
	format  string
	from    string
	dir     []float32
	repeat  int
	outputs []string
	view    string
	frames  bool
	width   int
	height  int
}

func (o *runOptions) addFlags(cmd *cobra.Command, withExec bool) {
	f := cmd.Flags()
	if withExec {
		f.StringVarP(&o.exec, "exec", "e", "", "program text to run instead of a file")
	}
	f.StringVarP(&o.format, "format", "f", "", "text output format: "+strings.Join(Formats, ", "))
	f.StringVar(&o.from, "from", "", "saved state file to start from")
	f.Float32SliceVar(&o.dir, "dir", nil, "initial heading as x,y,z")
	f.IntVar(&o.repeat, "repeat", 1, "number of times to run the program")
	f.StringArrayVarP(&o.outputs, "output", "o", nil, "output file, by extension: image, .pdf, state (.yaml, .json, .toml) or text; may be repeated")
	f.StringVar(&o.view, "view", "", "drawing view: top, front, side or iso")
	f.BoolVar(&o.frames, "frames", false, "draw the turtle frame at each sample")
	f.IntVar(&o.width, "width", 0, "drawing width")
	f.IntVar(&o.height, "height", 0, "drawing height")
}

// apply sets the config values given by flags.
func (o *runOptions) apply(c *Config) error {
	if o.format != "" {
		c.Format = o.format
	}
	if o.view != "" {
		if err := c.Render.View.SetString(o.view); err != nil {
			return err
		}
	}
	if o.frames {
		c.Render.Frames = true
	}
	if o.width > 0 {
		c.Render.Width = o.width
	}
	if o.height > 0 {
		c.Render.Height = o.height
	}
	for _, f := range Formats {
		if f == c.Format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q; valid formats are %s", c.Format, strings.Join(Formats, ", "))
}

// start returns the start state given by the flags, nil for the default.
func (o *runOptions) start() (*turtle.State, error) {
	switch {
	case o.from != "" && o.dir != nil:
		return nil, fmt.Errorf("only one of --from and --dir may be given")
	case o.from != "":
		return program.OpenState(o.from)
	case o.dir != nil:
		if len(o.dir) != 3 {
			return nil, fmt.Errorf("--dir requires 3 values, got %d", len(o.dir))
		}
		return turtle.NewState(math32.Vec3(o.dir[0], o.dir[1], o.dir[2]))
	}
	return nil, nil
}

// load returns the commands from the exec flag, standard input for "-",
// or the given file.
func (o *runOptions) load(in io.Reader, args []string) ([]any, error) {
	switch {
	case o.exec != "" && len(args) > 0:
		return nil, fmt.Errorf("only one of --exec and a program file may be given")
	case o.exec != "":
		return program.Parse(o.exec)
	case len(args) == 0:
		return nil, fmt.Errorf("requires a program file or --exec")
	case args[0] == "-":
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return program.Parse(string(b))
	}
	return program.Open(args[0])
}

// execute runs the commands with the configured facets.
func (o *runOptions) execute(c *Config, cmds []any) (*turtle.State, error) {
	start, err := o.start()
	if err != nil {
		return nil, err
	}
	t := &turtle.Turtle{Facets: c.Facets}
	st, err := t.RunRepeat(start, cmds, o.repeat)
	if err != nil {
		return nil, err
	}
	slog.Info("ran program", "commands", len(cmds), "samples", st.Len(), "position", st.Position())
	return st, nil
}

// write writes the state to stdout when there are no outputs, and to
// all outputs concurrently otherwise.
func (o *runOptions) write(c *Config, st *turtle.State, stdout io.Writer) error {
	if len(o.outputs) == 0 {
		return writeText(stdout, st, c.Format, c.Precision)
	}
	var g errgroup.Group
	for _, fn := range o.outputs {
		fn := fn
		g.Go(func() error {
			if err := writeFile(c, st, fn); err != nil {
				return fmt.Errorf("writing %s: %w", fn, err)
			}
			slog.Info("wrote output", "file", fn)
			return nil
		})
	}
	return g.Wait()
}

// writeFile writes the state to the file in the format given by its extension.
func writeFile(c *Config, st *turtle.State, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, err := imagex.ExtToFormat(ext); err == nil {
		return render.SaveImage(st, c.Render, filename)
	}
	switch ext {
	case ".pdf":
		return render.SavePDF(st, c.Render, filename)
	case ".yaml", ".yml", ".json", ".toml":
		return program.SaveState(st, filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := writeText(f, st, c.Format, c.Precision); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeText writes the state in the given text format: points as one
// "x y z" line per path point, sweep as one line of 16 column-major
// values per transform, or state as YAML.
func writeText(w io.Writer, st *turtle.State, format string, prec int) error {
	if format == "state" {
		return yamlx.Write(st, w)
	}
	bw := bufio.NewWriter(w)
	num := func(v float32) string {
		return strconv.FormatFloat(float64(v), 'f', prec, 32)
	}
	switch format {
	case "sweep":
		for _, m := range st.Sweep() {
			vals := make([]string, len(m))
			for i, v := range m {
				vals[i] = num(v)
			}
			fmt.Fprintln(bw, strings.Join(vals, " "))
		}
	default:
		for _, p := range st.Points() {
			fmt.Fprintln(bw, num(p.X), num(p.Y), num(p.Z))
		}
	}
	return bw.Flush()
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [file | -]",
		Short: "Run a turtle program and output its path",
		Long: `Run a turtle program from a file, standard input or --exec, and write
the resulting path. Files ending in .yaml, .yml, .json or .toml hold
command lists; other files are read as command text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.apply(a.config); err != nil {
				return err
			}
			cmds, err := o.load(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			st, err := o.execute(a.config, cmds)
			if err != nil {
				return err
			}
			return o.write(a.config, st, cmd.OutOrStdout())
		},
	}
	o.addFlags(cmd, true)
	return cmd
}
