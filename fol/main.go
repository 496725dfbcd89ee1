package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/phuslu/log"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/venn/folio/cmd"
)

func completion() {
	reports := &complete.Command{Flags: map[string]complete.Predictor{
		"r": predict.Set{"1D", "1W", "1M", "3M", "6M", "1Y", "5Y"},
	}}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"holding":     {},
			"allocation":  {},
			"sector":      {},
			"performance": {},
			"risk":        {},
			"overlap":     {},
			"history":     reports,
			"chart":       reports,
			"buy":         {},
			"sell":        {},
			"deposit":     {},
			"withdraw":    {},
			"tx":          {},
			"fmt":         {},
		},
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*.toml"),
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
	root.Complete("fol")
}

func main() {
	godotenv.Load()
	completion()

	log.DefaultLogger = log.Logger{
		Level:  log.WarnLevel,
		Writer: &log.ConsoleWriter{ColorOutput: true, Writer: os.Stderr},
	}
	if os.Getenv("FOL_DEBUG") != "" {
		log.DefaultLogger.Level = log.DebugLevel
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
