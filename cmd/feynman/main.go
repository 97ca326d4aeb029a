package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/deepnoodle-ai/feynman"
	"github.com/deepnoodle-ai/feynman/config"
	"github.com/deepnoodle-ai/feynman/log"
	"github.com/deepnoodle-ai/wonton/cli"
	"github.com/fatih/color"
)

var errorStyle = color.New(color.FgRed, color.Bold)

func main() {
	app := cli.New("feynman").
		Description("Print the classic Feynman long-division solution").
		Version("1.0.0")

	app.Main().
		Flags(
			cli.String("config", "c").
				Env("FEYNMAN_CONFIG").
				Help("Path to a YAML or JSON config file"),
			cli.String("log-level", "").
				Env("FEYNMAN_LOG_LEVEL").
				Help("Log level to use (debug, info, warn, error)"),
			cli.Bool("no-color", "").
				Help("Disable colored diagnostics"),
		).
		Run(run)

	if err := app.Execute(); err != nil {
		if cli.IsHelpRequested(err) {
			os.Exit(0)
		}
		errorStyle.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}

func run(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.String("config"), &config.Config{
		LogLevel: ctx.String("log-level"),
		NoColor:  ctx.Bool("no-color"),
	})
	if err != nil {
		return cli.Errorf("%v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger := log.New(cfg.Level(), cfg.NoColor)
	logger.Debug("configured",
		"log_level", cfg.Level().String(),
		"no_color", cfg.NoColor)
	goCtx := log.WithLogger(context.Background(), logger)
	if err := report(goCtx, os.Stdout); err != nil {
		return cli.Errorf("%v", err)
	}
	return nil
}

// report writes the solution to w and logs the returned triple.
func report(ctx context.Context, w io.Writer) error {
	solution, err := feynman.SolveFeynman(ctx, w)
	if err != nil {
		return err
	}
	a, dividend, quotient := solution.Values()
	log.Ctx(ctx).Info("report written",
		"triple", fmt.Sprintf("(%d, %d, %d)", a, dividend, quotient))
	return nil
}
