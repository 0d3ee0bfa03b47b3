package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// levelColor returns the ANSI color code for a log level.
func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return colorMagenta
	case level < slog.LevelInfo:
		return colorCyan
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}

// prettyTextHandler implements a colorized text handler for log messages.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	groups []string
	attrs  []slog.Attr
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		groups: []string{},
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	buf.WriteString(r.Message)

	for _, attr := range h.attrs {
		buf.WriteByte(' ')
		h.writeAttr(buf, attr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		buf.WriteByte(' ')
		h.writeAttr(buf, attr)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

func (h *prettyTextHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	buf.WriteString(levelColor(level))
	buf.WriteString(strings.ToUpper(Level(level).String()))
	buf.WriteString(colorReset)
	buf.WriteByte(' ')
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, attr slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		attr = h.opts.ReplaceAttr(h.groups, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return
	}

	attr.Value = attr.Value.Resolve()

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			buf.WriteString(colorGray)
			buf.WriteString(attr.Key)
			buf.WriteByte('.')
			buf.WriteString(colorReset)
			h.writeAttr(buf, member)
			buf.WriteByte(' ')
		}

		return
	}

	switch attr.Key {
	case slog.TimeKey:
		buf.WriteString(colorGray)
		buf.WriteString(attr.Value.String())
		buf.WriteString(colorReset)
		buf.WriteByte(' ')

	case slog.LevelKey:
		// Level is written separately by writeLevel.

	default:
		buf.WriteString(colorGray)
		buf.WriteString(attr.Key)
		buf.WriteByte('=')
		buf.WriteString(colorReset)
		buf.WriteString(colorBlue)
		buf.WriteString(attr.Value.String())
		buf.WriteString(colorReset)
	}
}

// prettyJSONHandler implements a colorized multiline JSON handler.
type prettyJSONHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	groups []string
	attrs  []slog.Attr
}

func newPrettyJSONHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyJSONHandler {
	return &prettyJSONHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		groups: []string{},
	}
}

func (h *prettyJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyJSONHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	buf.WriteString("{\n")

	if !r.Time.IsZero() {
		h.writeField(buf, slog.Time(slog.TimeKey, r.Time))
	}

	buf.WriteString("  ")
	buf.WriteString(colorGray)
	buf.WriteString(strconv.Quote(slog.LevelKey))
	buf.WriteString(": ")
	buf.WriteString(colorReset)
	buf.WriteString(levelColor(r.Level))
	buf.WriteString(strconv.Quote(strings.ToUpper(Level(r.Level).String())))
	buf.WriteString(colorReset)
	buf.WriteString(",\n")

	h.writeField(buf, slog.String(slog.MessageKey, r.Message))

	for _, attr := range h.attrs {
		h.writeField(buf, attr)
	}

	r.Attrs(func(attr slog.Attr) bool {
		h.writeField(buf, attr)

		return true
	})

	// Trim the trailing ",\n" from the final field.
	b := buf.Bytes()
	if bytes.HasSuffix(b, []byte(",\n")) {
		buf.Truncate(len(b) - 2)
		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)

	return &clone
}

func (h *prettyJSONHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)

	return &clone
}

func (h *prettyJSONHandler) writeField(buf *bytes.Buffer, attr slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		attr = h.opts.ReplaceAttr(h.groups, attr)
	}

	if attr.Equal(slog.Attr{}) {
		return
	}

	attr.Value = attr.Value.Resolve()

	buf.WriteString("  ")
	buf.WriteString(colorGray)
	buf.WriteString(strconv.Quote(attr.Key))
	buf.WriteString(": ")
	buf.WriteString(colorReset)
	buf.WriteString(colorBlue)
	buf.WriteString(jsonValue(attr.Value))
	buf.WriteString(colorReset)
	buf.WriteString(",\n")
}

// jsonValue renders a slog.Value as a JSON fragment.
func jsonValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return strconv.Quote(v.String())

	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)

	case slog.KindBool:
		return strconv.FormatBool(v.Bool())

	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, member := range v.Group() {
			parts = append(parts, fmt.Sprintf(
				"%s: %s", strconv.Quote(member.Key), jsonValue(member.Value),
			))
		}

		return "{" + strings.Join(parts, ", ") + "}"

	default:
		data, err := json.Marshal(v.Any())
		if err != nil {
			return strconv.Quote(v.String())
		}

		return string(data)
	}
}
