package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/handtrack/cmd/handtrack/shared"
	"github.com/lox/handtrack/internal/config"
	"github.com/lox/handtrack/internal/store"
)

// version is set by ldflags during build
var version = "dev"

type Globals struct {
	Config string `short:"c" default:"handtrack.hcl" help:"Path to HCL config file"`
	Debug  bool   `help:"Enable debug logging"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Ingest  IngestCmd        `cmd:"" help:"Ingest hand history JSON files into the database"`
	Stats   StatsCmd         `cmd:"" help:"Show session statistics from ingested hands"`
	Priors  PriorsCmd        `cmd:"" help:"Recompute long-term player priors"`
	Leaks   LeaksCmd         `cmd:"" help:"Analyze a player's profile for leaks"`
	Targets TargetsCmd       `cmd:"" help:"List the most exploitable opponents"`
}

// env bundles everything a subcommand needs: config, logger and an open
// store. Commands must Close it when done.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	store  *store.Store
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Error("failed to close store", "error", err)
		}
	}
}

func setup(g *Globals) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := shared.SetupLogger(cfg.Tracker.LogLevel, g.Debug)

	db, err := store.Open(cfg.Tracker.DBPath)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, store: db}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handtrack"),
		kong.Description("Poker hand history tracker and opponent profiler"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
