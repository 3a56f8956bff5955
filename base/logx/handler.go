// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// Handler is a [slog.Handler] that writes one line per record,
// with the level colored according to the terminal's capabilities.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w, showing records
// at or above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w),
		mu:    &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle writes the given record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	write := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", h.out.String(key).Faint(), a.Value.Resolve())
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a new handler with the given group name appended
// to the key prefix.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func (h *Handler) levelString(l slog.Level) string {
	s := h.out.String(l.String())
	switch {
	case l >= slog.LevelError:
		return s.Foreground(h.out.Color("1")).Bold().String()
	case l >= slog.LevelWarn:
		return s.Foreground(h.out.Color("3")).String()
	case l >= slog.LevelInfo:
		return s.Foreground(h.out.Color("4")).String()
	default:
		return s.Faint().String()
	}
}

// ErrorColor returns the given string colored as an error
// for the standard error output.
func ErrorColor(s string) string {
	o := termenv.NewOutput(os.Stderr)
	return o.String(s).Foreground(o.Color("1")).String()
}
