package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/justDeeevin/juicy-main/entry"
	"github.com/justDeeevin/juicy-main/log"
	"github.com/justDeeevin/juicy-main/pkg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// streams returns the writers commands print results and diagnostics to.
func streams(ctx context.Context) (stdout, stderr io.Writer) {
	if ktx := kongContextFrom(ctx); ktx != nil {
		return ktx.Stdout, ktx.Stderr
	}

	return os.Stdout, os.Stderr
}

type configKey struct{}

// WithConfig returns a new context.Context carrying the rewrite settings
// shared by all commands.
func WithConfig(ctx context.Context, cfg entry.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) entry.Config {
	cfg, ok := ctx.Value(configKey{}).(entry.Config)
	if !ok {
		cfg = entry.Config{Tag: entry.DefaultTag}
	}

	if cfg.Generator == "" {
		cfg.Generator = pkg.Name
	}

	return cfg
}

// Parser names the command-line parser generated code may call.
type Parser string

const (
	ParserNone Parser = "none"
	ParserKong Parser = "kong"
)

// Enabled reports whether Parsed arguments are accepted.
func (p Parser) Enabled() bool { return p == ParserKong }

// stdinSource is the file argument that reads standard input.
const stdinSource = "-"

// stdinName is the file name reported for standard input.
const stdinName = "stdin.go"

// goFileEnv is set by go generate to the file holding the directive.
const goFileEnv = "GOFILE"

// inputs returns the files to process, defaulting to the file that invoked
// go generate.
func inputs(files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}

	if name := os.Getenv(goFileEnv); name != "" {
		return []string{name}, nil
	}

	return nil, ErrNoInput
}

// source is the content of one input file.
type source struct {
	name string
	data []byte
}

func readSource(name string, stdin io.Reader) (source, error) {
	var (
		data []byte
		err  error
	)

	if name == stdinSource {
		name = stdinName
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return source{}, ErrReadSource.With(slog.String("file", name)).Wrap(err)
	}

	return source{name: name, data: data}, nil
}

// process rewrites one file.
//
// A rejected entry point is rendered to stderr and reported with ok false
// and a nil error; the placeholder output, when there is one, is returned.
// Any other failure is returned as an error.
func process(
	ctx context.Context,
	cfg entry.Config,
	src source,
	stderr io.Writer,
) (out *entry.Output, ok bool, err error) {
	out, err = entry.Rewrite(src.name, src.data, cfg)
	if err == nil {
		log.DebugContext(ctx, "entry point accepted",
			slog.String("file", src.name),
			slog.String("order", out.Decl.Order().String()),
		)

		return out, true, nil
	}

	var diag *entry.Diagnostic
	if !errors.As(err, &diag) {
		var e *entry.Error
		if errors.As(err, &e) {
			return nil, false, e.With(slog.String("file", src.name))
		}

		return nil, false, err
	}

	log.DebugContext(ctx, "entry point rejected", slog.Any("diagnostic", diag))

	err = renderDiagnostic(stderr, diag, src.data)
	if err != nil {
		return nil, false, ErrWriteOutput.Wrap(err)
	}

	return out, false, nil
}

// outputPath returns the default generated file path for input: the name
// with a _juicy suffix, next to the input.
func outputPath(input string) string {
	dir, base := filepath.Split(input)

	return filepath.Join(dir, strings.TrimSuffix(base, ".go")+"_juicy.go")
}

// failure summarizes rejected files, or returns nil when there were none.
func failure(failed, total int) error {
	if failed == 0 {
		return nil
	}

	return ErrFailed.
		With(slog.Int("failed", failed), slog.Int("files", total)).
		Wrapf("%d of %d files", failed, total)
}
