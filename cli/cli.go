package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/justDeeevin/juicy-main/cli/cmd"
	"github.com/justDeeevin/juicy-main/entry"
	"github.com/justDeeevin/juicy-main/pkg"
)

// CLI is the top-level command-line interface for juicymain.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Parser  cmd.Parser       `default:"none"   enum:"none,kong" help:"Parser that fills struct arguments (${enum})."`
	Tag     string           `default:"${tag}"                  help:"Build constraint removed from generated files."`
	Version kong.VersionFlag `help:"Print version and exit."`

	Gen      cmd.Gen      `cmd:"" help:"Rewrite entry points into generated files."`
	Check    cmd.Check    `cmd:"" help:"Validate entry points."`
	Describe cmd.Describe `cmd:"" help:"Print how entry points are classified."`
}

// Run executes the juicymain CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, os.Stderr, args...)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout, stderr io.Writer,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath(baseConfig + ".yaml"),
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"version":            pkg.Name + " " + pkg.Version,
		"tag":                entry.DefaultTag,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.DefaultEnvars(pkg.EnvPrefix),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(loadYAML, configFiles()...),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithConfig(ctx, entry.Config{
		Options:   entry.Options{Parser: cli.Parser.Enabled()},
		Tag:       cli.Tag,
		Generator: pkg.Name,
	})

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is set.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
