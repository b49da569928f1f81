package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used to render each kind of value.
// Styles are bound to a renderer for the output writer, so they degrade to
// plain text when the writer is not a terminal.
type palette struct {
	key      lipgloss.Style
	str      lipgloss.Style
	num      lipgloss.Style
	yes      lipgloss.Style
	no       lipgloss.Style
	duration lipgloss.Style
	time     lipgloss.Style
	trace    lipgloss.Style
	debug    lipgloss.Style
	info     lipgloss.Style
	warn     lipgloss.Style
	error    lipgloss.Style
	message  lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:      fg("8"),
		str:      fg("6"),
		num:      fg("3"),
		yes:      fg("2"),
		no:       fg("1"),
		duration: fg("5"),
		time:     fg("4"),
		trace:    fg("8").Bold(true),
		debug:    fg("4").Bold(true),
		info:     fg("2").Bold(true),
		warn:     fg("3").Bold(true),
		error:    fg("1").Bold(true),
		message:  r.NewStyle().Bold(true),
	}
}

func (p *palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.error
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler is a [slog.Handler] writing styled key=value lines.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  *palette
	attrs  string // preformatted attributes from WithAttrs
	groups []string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts:  *opts,
		mu:    &sync.Mutex{},
		w:     w,
		style: newPalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if a := h.replace(nil, slog.Time(slog.TimeKey, r.Time)); a.Key != "" {
			buf.WriteString(h.style.time.Render(a.Value.String()))
		}
	}

	lvl := h.replace(nil, slog.Any(slog.LevelKey, r.Level))
	if lvl.Key != "" {
		sep(buf)
		buf.WriteString(h.style.level(r.Level).Render(fmt.Sprintf("%-5s", lvl.Value.String())))
	}

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			sep(buf)
			buf.WriteString(h.style.key.Render(src.File + ":" + strconv.Itoa(src.Line)))
		}
	}

	sep(buf)
	buf.WriteString(h.style.message.Render(r.Message))

	buf.WriteString(h.attrs)

	prefix := groupPrefix(h.groups)
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.groups, prefix, a)

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

	buf := bytes.NewBufferString(h.attrs)
	prefix := groupPrefix(h.groups)

	for _, a := range attrs {
		h.writeAttr(buf, h.groups, prefix, a)
	}

	c := *h
	c.attrs = buf.String()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

func (h *prettyHandler) writeAttr(
	buf *bytes.Buffer,
	groups []string,
	prefix string,
	a slog.Attr,
) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		a = h.replace(groups, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := groups
		subPrefix := prefix

		if a.Key != "" {
			sub = append(groups[:len(groups):len(groups)], a.Key)
			subPrefix = prefix + a.Key + "."
		}

		for _, g := range a.Value.Group() {
			h.writeAttr(buf, sub, subPrefix, g)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.style.key.Render(prefix + a.Key + "="))
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	s := h.style

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(s.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(s.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(s.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(s.yes.Render("true"))
		} else {
			buf.WriteString(s.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(s.duration.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(s.time.Render(v.Time().Format(DefaultTimeLayout)))

	default:
		buf.WriteString(s.str.Render(v.String()))
	}
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}

	return strings.Join(groups, ".") + "."
}

func sep(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}
