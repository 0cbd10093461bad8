package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/approxgen/approxgen"
	"github.com/approxgen/approxgen/inspect"
)

var (
	suffixFlag = &cli.StringFlag{
		Name:  "suffix",
		Usage: "filename suffix of generated files",
		Value: inspect.DefaultGenSuffix,
	}
	tagsFlag = &cli.StringSliceFlag{
		Name:  "tags",
		Usage: "extra build tags for package loading",
	}
	noCacheFlag = &cli.BoolFlag{
		Name:  "no-cache",
		Usage: "regenerate even when inputs are unchanged",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "enable debug logging",
	}
	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "log errors only",
	}
)

var app = &cli.App{
	Name:           "approxgen",
	Usage:          "generate approximate-equality comparison methods for annotated structs",
	ArgsUsage:      "[packages]",
	DefaultCommand: "generate",
	Commands: cli.Commands{
		// approxgen generate ./...
		&cli.Command{
			Name:      "generate",
			Usage:     "write comparison methods for every annotated struct",
			ArgsUsage: "[packages]",
			Flags:     []cli.Flag{suffixFlag, tagsFlag, noCacheFlag, verboseFlag, quietFlag},
			Action: func(ctx *cli.Context) error {
				report, err := approxgen.Generate(ctx.Context, configFrom(ctx))
				if err != nil {
					return err
				}
				log := loggerFrom(ctx)
				log.Info().
					Int("generated", len(report.Generated)).
					Int("up_to_date", len(report.Skipped)).
					Msg("done")
				return nil
			},
		},
		// approxgen check ./...
		&cli.Command{
			Name:      "check",
			Usage:     "fail when generated files are missing or out of date",
			ArgsUsage: "[packages]",
			Flags:     []cli.Flag{suffixFlag, tagsFlag, verboseFlag, quietFlag},
			Action: func(ctx *cli.Context) error {
				report, err := approxgen.Check(ctx.Context, configFrom(ctx))
				if err != nil {
					return err
				}
				if len(report.Stale) > 0 {
					return cli.Exit(fmt.Sprintf("stale generated files, run approxgen:\n  %s",
						strings.Join(report.Stale, "\n  ")), 1)
				}
				return nil
			},
		},
		&cli.Command{
			Name:  "version",
			Usage: "print the approxgen version",
			Action: func(ctx *cli.Context) error {
				fmt.Fprintln(ctx.App.Writer, approxgen.Version())
				return nil
			},
		},
	},
}

func configFrom(ctx *cli.Context) approxgen.Config {
	return approxgen.Config{
		Patterns: ctx.Args().Slice(),
		Suffix:   ctx.String("suffix"),
		Tags:     ctx.StringSlice("tags"),
		NoCache:  ctx.Bool("no-cache"),
		Logger:   loggerFrom(ctx),
	}
}

func loggerFrom(ctx *cli.Context) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case ctx.Bool("verbose"):
		level = zerolog.DebugLevel
	case ctx.Bool("quiet"):
		level = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
