package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/observe/cmd/observebench/scenario"
	"github.com/urfave/cli/v3"
)

const (
	configKey     = "config"
	formatKey     = "format"
	iterationsKey = "iterations"
	outKey        = "out"
	profileKey    = "cpuprofile"
	titleKey      = "title"
)

func scenarioFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{
			Name:  configKey,
			Usage: "YAML scenario file; the built-in grid is used when empty",
		},
		&cli.UintFlag{
			Name:  iterationsKey,
			Usage: "Override the iteration count of every scenario",
		},
		&cli.StringFlag{
			Name:  titleKey,
			Usage: "Title of the rendered table or report",
			Value: "Observe Primitives",
		},
	}, extra...)
}

func main() {
	cmd := &cli.Command{
		Name:  "observebench",
		Usage: "Benchmark events, states and linked values",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run scenarios and print a table",
				Flags: scenarioFlags(
					&cli.StringFlag{
						Name:  formatKey,
						Usage: "Output format: pretty, ascii or markdown",
						Value: string(scenario.FormatPretty),
					},
					&cli.StringFlag{
						Name:  profileKey,
						Usage: "Write a CPU profile to this file",
					},
				),
				Action: run,
			},
			{
				Name:  "report",
				Usage: "Run scenarios and write a markdown report",
				Flags: scenarioFlags(
					&cli.StringFlag{
						Name:  outKey,
						Usage: "Report file",
						Value: "BENCHMARKS.md",
					},
				),
				Action: report,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cmd *cli.Command) (scenario.Config, error) {
	cfg := scenario.DefaultConfig()
	if path := cmd.String(configKey); path != "" {
		loaded, err := scenario.LoadConfig(path)
		if err != nil {
			return scenario.Config{}, err
		}
		cfg = loaded
	}
	if n := cmd.Uint(iterationsKey); n > 0 {
		for i := range cfg.Scenarios {
			cfg.Scenarios[i].Iterations = int(n)
		}
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	format, err := scenario.ParseFormat(cmd.String(formatKey))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error while creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("error while starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	log.Printf("Benchmark started, %d scenarios", len(cfg.Scenarios))
	defer func() {
		log.Printf("Benchmark finished in %v", time.Since(start))
	}()

	results, err := scenario.RunAll(ctx, cfg)
	if err != nil {
		return err
	}
	scenario.Render(os.Stdout, cmd.String(titleKey), results, format)
	return nil
}

func report(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	results, err := scenario.RunAll(ctx, cfg)
	if err != nil {
		return err
	}

	out := cmd.String(outKey)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("error while creating report: %w", err)
	}
	scenario.Render(f, cmd.String(titleKey), results, scenario.FormatMarkdown)
	if err := f.Close(); err != nil {
		return fmt.Errorf("error while writing report: %w", err)
	}
	log.Printf("Report written to %s", out)
	return nil
}
