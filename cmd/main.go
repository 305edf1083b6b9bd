package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/smarthome-go/hmsbuild/bundler"
	"github.com/smarthome-go/hmsbuild/bundler/toolchain"
	"github.com/urfave/cli/v2"
)

const programName = "hmsbuild"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The Smarthome Authors",
				Email: "",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Build a Homescript application for a target platform",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "target",
						Usage:   "Build target (native, web, macos, ios, tvos)",
						Aliases: []string{"t"},
						Value:   string(bundler.TargetNative),
					},
					&cli.StringFlag{
						Name:    "name",
						Usage:   "Override the artifact name derived from the source filename",
						Aliases: []string{"n"},
					},
					&cli.BoolFlag{
						Name:    "debug",
						Usage:   "Print the resolved build configuration and every tool invocation",
						Aliases: []string{"d"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					target, err := bundler.ParseTarget(ctx.String("target"))
					if err != nil {
						return err
					}

					cfg := bundler.DefaultConfig()
					cfg.Debug = ctx.Bool("debug")
					cfg.AppName = ctx.String("name")

					if cfg.Debug {
						log.Println("=== BUILD CONFIGURATION ===")
						fmt.Print(spew.Sdump(cfg))
					}

					sourcePath := ctx.Args().Get(0)
					runner := toolchain.NewRunner(cfg.Debug)

					start := time.Now()
					artifact, err := bundler.Build(cfg, runner, sourcePath, target)
					if err != nil {
						return err
					}

					printSuccess(fmt.Sprintf("Built `%s` for %s: %s (elapsed: %v)", sourcePath, target, artifact, time.Since(start)))
					return nil
				},
			},
			{
				Name:  "clean",
				Usage: "Remove intermediate build files",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "all",
						Usage:   "Also remove final artifacts (executables, bundles, project trees)",
						Aliases: []string{"a"},
					},
				},
				Action: func(ctx *cli.Context) error {
					cfg := bundler.DefaultConfig()

					removed, err := bundler.Clean(cfg, ctx.Bool("all"))
					if err != nil {
						return err
					}

					for _, path := range removed {
						fmt.Printf("removed %s\n", path)
					}

					return nil
				},
			},
			{
				Name:  "targets",
				Usage: "List the supported build targets",
				Action: func(ctx *cli.Context) error {
					for _, target := range bundler.Targets() {
						fmt.Println(target)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
