package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/rangekit/cmd/rangekit/shared"
	"github.com/lox/rangekit/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"${config_path}" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`

	Notation  NotationCmd  `cmd:"" help:"Compress a range file into solver notation"`
	Parse     ParseCmd     `cmd:"" help:"Expand a notation string into combos and weights"`
	Sample    SampleCmd    `cmd:"" help:"Draw one action per combo and show the matrix"`
	Validate  ValidateCmd  `cmd:"" help:"Check range files for errors"`
	List      ListCmd      `cmd:"" help:"List the range files in a directory"`
	New       NewCmd       `cmd:"" help:"Create a range file"`
	Duplicate DuplicateCmd `cmd:"" help:"Copy a range file under a new ID"`
	Universe  UniverseCmd  `cmd:"" help:"Print the 169 starting hands in matrix order"`
}

// Globals is handed to every command's Run method.
type Globals struct {
	Config *config.Config
	Logger *log.Logger
	Out    io.Writer
}

// setup loads the configuration, applies the global flag overrides and
// builds the logger.
func (c *CLI) setup(out, logOut io.Writer) (*Globals, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.Output.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Globals{
		Config: cfg,
		Logger: shared.SetupLogger(logOut, cfg.Output.LogLevel),
		Out:    out,
	}, nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("rangekit"),
		kong.Description("Compress, expand and sample preflop poker ranges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	globals, err := cli.setup(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(globals)
	ctx.FatalIfErrorf(err)
}

func signalContext(g *Globals) (context.Context, context.CancelFunc) {
	return shared.SetupSignalHandlerWithLogger(context.Background(), g.Logger)
}
