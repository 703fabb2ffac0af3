package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of a pretty handler, bound to the renderer of its
// output so color is only emitted on terminals that support it.
type palette struct {
	time, key, msg, source lipgloss.Style
	str, num, boolean      lipgloss.Style
	levels                 map[Level]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		time:    fg("8"),
		key:     fg("8"),
		msg:     r.NewStyle(),
		source:  fg("8"),
		str:     fg("6"),
		num:     fg("3"),
		boolean: fg("2"),
		levels: map[Level]lipgloss.Style{
			LevelTrace: fg("5"),
			LevelDebug: fg("4"),
			LevelInfo:  fg("2"),
			LevelWarn:  fg("3"),
			LevelError: fg("1"),
		},
	}
}

func (p *palette) level(l slog.Level) string {
	name := fmt.Sprintf("%-5s", strings.ToUpper(Level(l).String()))

	switch {
	case l >= slog.LevelError:
		return p.levels[LevelError].Render(name)

	case l >= slog.LevelWarn:
		return p.levels[LevelWarn].Render(name)

	case l >= slog.LevelInfo:
		return p.levels[LevelInfo].Render(name)

	case l >= slog.LevelDebug:
		return p.levels[LevelDebug].Render(name)

	default:
		return p.levels[LevelTrace].Render(name)
	}
}

// prettyHandler writes one styled line per record:
//
//	time LEVEL source message key=value ...
//
// Group attributes are flattened into dotted keys.
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	palette    *palette
	mu         *sync.Mutex
	w          io.Writer

	prefix string // dotted path of open groups
	attrs  []byte // rendered attributes added with WithAttrs
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		palette:    newPalette(w),
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer

	if !r.Time.IsZero() && h.formatTime != nil {
		if s := h.formatTime(r.Time); s != "" {
			buf.WriteString(h.palette.time.Render(s))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.palette.level(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(h.palette.source.Render(
				filepath.Base(src.File) + ":" + strconv.Itoa(src.Line)))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(h.palette.msg.Render(r.Message))
	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var buf bytes.Buffer

	buf.Write(h.attrs)

	for _, a := range attrs {
		h.appendAttr(&buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.appendAttr(buf, prefix, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.palette.key.Render(prefix + a.Key + "="))
	buf.WriteString(h.value(a.Value))
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if s == "" || strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}

		return h.palette.str.Render(s)

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration:
		return h.palette.num.Render(v.String())

	case slog.KindBool:
		return h.palette.boolean.Render(v.String())

	case slog.KindTime:
		if h.formatTime != nil {
			return h.palette.time.Render(h.formatTime(v.Time()))
		}

		return h.palette.time.Render(v.String())

	default:
		return h.palette.str.Render(fmt.Sprint(v.Any()))
	}
}
