package logginghelpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type Options struct {
	AddSource bool
	Level     slog.Leveler
	NoColor   bool
}

// human readable line based handler, one record per line:
//
//	15:04:05.000 INFO  message key=value group.key="quoted value"
type Handler struct {
	opts         Options
	w            io.Writer
	mu           *sync.Mutex
	preformatted []byte
	groupPrefix  string
}

func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{w: w, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *Handler) levelColor(level slog.Level) *color.Color {
	var c *color.Color
	switch {
	case level >= LevelBrokenData:
		c = color.New(color.FgHiRed, color.Bold)
	case level >= slog.LevelError:
		c = color.New(color.FgRed)
	case level >= slog.LevelWarn:
		c = color.New(color.FgYellow)
	case level >= slog.LevelInfo:
		c = color.New(color.FgGreen)
	case level >= LevelReportIO:
		c = color.New(color.FgCyan)
	default:
		c = color.New(color.FgMagenta)
	}
	if h.opts.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	if !r.Time.IsZero() {
		buf.WriteString(r.Time.Format(time.TimeOnly + ".000"))
		buf.WriteByte(' ')
	}
	buf.WriteString(h.levelColor(r.Level).Sprintf("%-6s", levelName(r.Level)))

	if h.opts.AddSource && r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		fmt.Fprintf(&buf, "%s:%d ", filepath.Base(frame.File), frame.Line)
	}
	buf.WriteString(r.Message)
	buf.Write(h.preformatted)

	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.groupPrefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, groupPrefix, ga)
		}
		return
	}

	value := a.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	buf.WriteByte(' ')
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(value)
}

func (h *Handler) clone() *Handler {
	return &Handler{
		opts:         h.opts,
		w:            h.w,
		mu:           h.mu,
		preformatted: bytes.Clone(h.preformatted),
		groupPrefix:  h.groupPrefix,
	}
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := h.clone()
	var buf bytes.Buffer
	for _, a := range attrs {
		appendAttr(&buf, h.groupPrefix, a)
	}
	h2.preformatted = append(h2.preformatted, buf.Bytes()...)
	return h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := h.clone()
	h2.groupPrefix += name + "."
	return h2
}
