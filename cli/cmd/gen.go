package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/justDeeevin/juicy-main/log"
)

// Gen rewrites entry points into generated files.
type Gen struct {
	Output string `help:"Output file, or '-' for standard output (default: <name>_juicy.go next to the input)." placeholder:"PATH" short:"o"`

	Files []string `arg:"" help:"Go source files, or '-' for standard input (default: the file named by GOFILE)." name:"file" optional:""`
}

// Run executes the gen command.
//
// A file whose entry point is rejected still gets a generated file, holding
// a placeholder main that fails to compile with the same diagnostic.
func (g *Gen) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	files, err := inputs(g.Files)
	if err != nil {
		return err
	}

	if g.Output != "" && len(files) > 1 {
		return ErrOutputConflict.Wrapf("-o needs exactly one input, got %d", len(files))
	}

	cfg := configFrom(ctx)
	stdout, stderr := streams(ctx)
	failed := 0

	for _, name := range files {
		src, err := readSource(name, os.Stdin)
		if err != nil {
			return err
		}

		target := g.target(name)

		fileCfg := cfg
		if target != stdinSource {
			fileCfg.OutputDir = filepath.Dir(target)
		}

		out, ok, err := process(ctx, fileCfg, src, stderr)
		if err != nil {
			return err
		}

		if !ok {
			failed++
		}

		if out == nil {
			continue
		}

		err = g.write(ctx, name, target, out.Source, stdout)
		if err != nil {
			return err
		}
	}

	return failure(failed, len(files))
}

// target returns the file the output for input is written to, or
// stdinSource for standard output.
func (g *Gen) target(input string) string {
	switch {
	case g.Output != "":
		return g.Output

	case input == stdinSource:
		return stdinSource

	default:
		return outputPath(input)
	}
}

func (g *Gen) write(ctx context.Context, input, target string, data []byte, stdout io.Writer) error {
	if target == stdinSource {
		_, err := stdout.Write(data)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}

		return nil
	}

	if same(input, target) {
		return ErrOutputConflict.
			With(slog.String("file", target)).
			Wrapf("output would overwrite input %s", input)
	}

	err := os.WriteFile(target, data, 0o644) //nolint:gosec // generated source
	if err != nil {
		return ErrWriteOutput.With(slog.String("file", target)).Wrap(err)
	}

	log.InfoContext(ctx, "generated", slog.String("input", input), slog.String("output", target))

	return nil
}

// same reports whether two paths name the same file.
func same(a, b string) bool {
	if a == stdinSource {
		return false
	}

	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)

	if errA == nil && errB == nil {
		return os.SameFile(ia, ib)
	}

	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}
