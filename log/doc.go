// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured with functional options when created with [Make] or
// derived with [Logger.Wrap]:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [InfoContext], ...) write to a
// default logger on standard error, reconfigured with [Config].
//
// # Formats
//
// [FormatText] writes logfmt-style lines. With [WithPretty] (the default)
// the text format is styled with lipgloss and degrades to plain text when
// the output is not a terminal. [FormatJSON] writes one object per line.
//
// # Levels
//
// [LevelTrace] extends the slog levels below [LevelDebug]. The default level
// is [LevelWarn], so a successful run prints nothing.
package log
