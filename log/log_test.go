package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake_Defaults(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	assert.Equal(t, DefaultLevel, logger.Level())
	assert.Equal(t, DefaultFormat, logger.Format())
	assert.Equal(t, DefaultCaller, logger.caller)
	assert.Equal(t, DefaultPretty, logger.pretty)
}

func TestZeroLogger(t *testing.T) {
	var logger Logger

	assert.NotPanics(t, func() {
		logger.Info("dropped")
		logger = logger.With(slog.String("k", "v"))
	})
	assert.Equal(t, DefaultLevel, logger.Level())
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelWarn), WithPretty(false))

	logger.Info("quiet")
	assert.Empty(t, buf.String())

	logger.Warn("loud")
	assert.Contains(t, buf.String(), "loud")

	buf.Reset()

	logger = logger.Wrap(WithLevel(LevelTrace))
	logger.Trace("fine")
	assert.Contains(t, buf.String(), "level=TRACE")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo),
		WithTimeLayout("none"))
	logger.Info("generated", slog.String("file", "main_juicy.go"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "generated", got["msg"])
	assert.Equal(t, "main_juicy.go", got["file"])
	assert.Equal(t, "INFO", got["level"])
	assert.NotContains(t, got, "time")
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelInfo),
		WithCaller(true))
	logger.Info("here")

	assert.Contains(t, buf.String(), "log_test.go")
}

func TestPackageCaller(t *testing.T) {
	var buf bytes.Buffer

	restore := swapDefault(Make(&buf, WithFormat(FormatJSON),
		WithLevel(LevelDebug), WithCaller(true)))
	defer restore()

	Debug("here")

	assert.Contains(t, buf.String(), "log_test.go")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithPretty(false)).
		With(slog.String("cmd", "gen"))
	logger.Info("done")

	assert.Contains(t, buf.String(), "cmd=gen")
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelDebug), WithTimeLayout(""))
	logger.With(slog.String("cmd", "check")).Debug("entry point",
		slog.Group("decl", slog.String("order", "env-first")),
		slog.Int("params", 2),
		slog.String("msg", "two words"),
	)

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))

	for _, want := range []string{
		"DEBUG", "entry point", "cmd=", "check", "decl.order=", "env-first",
		"params=", "2", `"two words"`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestPretty_WithGroup(t *testing.T) {
	var buf bytes.Buffer

	h := newPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, nil)
	slog.New(h).WithGroup("gen").Info("wrote", slog.String("file", "x.go"))

	assert.Contains(t, buf.String(), "gen.file=")
}

func TestConfig_Concurrent(t *testing.T) {
	restore := swapDefault(Make(&bytes.Buffer{}))
	defer restore()

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if i%2 == 0 {
				Config(WithLevel(LevelDebug))
			} else {
				InfoContext(context.Background(), "concurrent")
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, LevelDebug, Default().Level())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"trace":   LevelTrace,
		"TRACE":   LevelTrace,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"WARN":    LevelWarn,
		"error":   LevelError,
		"bogus":   DefaultLevel,
		" debug ": LevelDebug,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, DefaultFormat, ParseFormat("yaml"))
}

func TestNames(t *testing.T) {
	var levels, formats []string

	for s := range Levels() {
		levels = append(levels, s)
	}

	for s := range Formats() {
		formats = append(formats, s)
	}

	assert.Equal(t, []string{"trace", "debug", "info", "warn", "error"}, levels)
	assert.Equal(t, []string{"text", "json"}, formats)
}

func TestTimeLayout(t *testing.T) {
	assert.Empty(t, makeFormatTimeFunc("")(timeFixture))
	assert.Empty(t, makeFormatTimeFunc("None")(timeFixture))
	assert.Equal(t, "2026-10-18T09:30:00Z", makeFormatTimeFunc("RFC-3339")(timeFixture))
	assert.Equal(t, "9:30AM", makeFormatTimeFunc("kitchen")(timeFixture))
	assert.Equal(t, "09:30", makeFormatTimeFunc("15:04")(timeFixture))
}

func swapDefault(l Logger) func() {
	defaultMu.Lock()
	prev := defaultLog
	defaultLog = l
	defaultMu.Unlock()

	return func() {
		defaultMu.Lock()
		defaultLog = prev
		defaultMu.Unlock()
	}
}

var timeFixture = time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
