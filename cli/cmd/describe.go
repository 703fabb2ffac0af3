package cmd

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/justDeeevin/juicy-main/entry"
)

// Describe prints how each entry point is classified.
type Describe struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                     help:"Indent width."              short:"i"`

	Files []string `arg:"" help:"Go source files, or '-' for standard input (default: the file named by GOFILE)." name:"file" optional:""`
}

// Report is the classification of one file's entry point.
type Report struct {
	File string `json:"file" yaml:"file"`

	entry.Summary `yaml:",inline"`
}

// Run executes the describe command.
func (d *Describe) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	files, err := inputs(d.Files)
	if err != nil {
		return err
	}

	cfg := configFrom(ctx)
	stdout, stderr := streams(ctx)
	failed := 0

	reports := make([]Report, 0, len(files))

	for _, name := range files {
		src, err := readSource(name, os.Stdin)
		if err != nil {
			return err
		}

		out, ok, err := process(ctx, cfg, src, stderr)
		if err != nil {
			return err
		}

		if !ok {
			failed++

			continue
		}

		reports = append(reports, Report{File: src.name, Summary: out.Decl.Summary()})
	}

	if len(reports) > 0 {
		data, err := d.marshal(ctx, reports)
		if err != nil {
			return err
		}

		_, err = stdout.Write(data)
		if err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return failure(failed, len(files))
}

func (d *Describe) marshal(ctx context.Context, reports []Report) ([]byte, error) {
	switch d.Format {
	case "json":
		data, err := json.MarshalIndent(reports, "", strings.Repeat(" ", max(d.Indent, 0)))
		if err != nil {
			return nil, ErrJSONMarshal.Wrap(err)
		}

		return append(data, '\n'), nil

	case "yaml", "":
		opts := []yaml.EncodeOption{yaml.Flow(true)}
		if d.Indent > 0 {
			opts = []yaml.EncodeOption{yaml.Indent(d.Indent), yaml.IndentSequence(true)}
		}

		data, err := yaml.MarshalContext(ctx, reports, opts...)
		if err != nil {
			return nil, ErrYAMLMarshal.Wrap(err)
		}

		return data, nil
	}

	return nil, ErrInvalidFormat.Wrapf("%q (want yaml or json)", d.Format)
}
