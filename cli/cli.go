package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/aoc/cli/cmd"
	"github.com/ardnew/aoc/pkg"

	// Solutions register themselves with the puzzle registry.
	_ "github.com/ardnew/aoc/puzzle/y2015"
	_ "github.com/ardnew/aoc/puzzle/y2016"
	_ "github.com/ardnew/aoc/puzzle/y2017"
)

// CLI is the top-level command-line interface for aoc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	InputDir string           `default:"input" help:"Directory of puzzle inputs named <year>/<day>.txt." short:"d" type:"path"`
	Version  kong.VersionFlag `                help:"Print version and exit."`

	Solve cmd.Solve `cmd:"" default:"withargs" help:"Solve a puzzle."`
	List  cmd.List  `cmd:""                    help:"List registered puzzles."`
	Dump  cmd.Dump  `cmd:""                    help:"Print the parsed structure of a puzzle input."`
	Check cmd.Check `cmd:""                    help:"Verify puzzle solutions against samples."`
	Init  cmd.Init  `cmd:""                    help:"Initialize configuration file."`
}

// Run executes the aoc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version(),
		cmd.ConfigIdentifier: configFilePath + ".yaml",
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure the logger before kong reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups(cli.Log.group(), cli.Pprof.group())),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(loadYAML, configFilePath+".yaml"),
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
	ctx = cmd.WithInputDir(ctx, cli.InputDir)

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and a mode is selected.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

// groups drops groups without a key, such as the profiling group when
// built without the pprof tag.
func groups(gs ...kong.Group) []kong.Group {
	out := make([]kong.Group, 0, len(gs))

	for _, g := range gs {
		if g.Key != "" {
			out = append(out, g)
		}
	}

	return out
}
