package cmd

import (
	"context"
	"os"
)

// Check validates entry points without writing anything.
type Check struct {
	Files []string `arg:"" help:"Go source files, or '-' for standard input (default: the file named by GOFILE)." name:"file" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	files, err := inputs(c.Files)
	if err != nil {
		return err
	}

	cfg := configFrom(ctx)
	_, stderr := streams(ctx)
	failed := 0

	for _, name := range files {
		src, err := readSource(name, os.Stdin)
		if err != nil {
			return err
		}

		_, ok, err := process(ctx, cfg, src, stderr)
		if err != nil {
			return err
		}

		if !ok {
			failed++
		}
	}

	return failure(failed, len(files))
}
