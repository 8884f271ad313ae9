// Package main provides the luisgen command.
//
// luisgen reads a language-understanding model export and writes typed C#
// and TypeScript accessors for its intents and entities:
//
//	luisgen -cs -class Contoso.HomeAutomation -o ./generated home.json
//	luisgen -ts -interface HomeAutomation home.json
//	cat home.json | luisgen -cs -stdin
package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(args)
}

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "cs",
		Usage:   "generate a C# class",
		EnvVars: []string{"LUISGEN_CS"},
	},
	&cli.StringFlag{
		Name:    "class",
		Usage:   "C# class name, optionally qualified with a namespace (NS.CLASS)",
		EnvVars: []string{"LUISGEN_CLASS"},
	},
	&cli.BoolFlag{
		Name:    "ts",
		Usage:   "generate TypeScript interfaces",
		EnvVars: []string{"LUISGEN_TS"},
	},
	&cli.StringFlag{
		Name:    "interface",
		Usage:   "TypeScript interface name",
		EnvVars: []string{"LUISGEN_INTERFACE"},
	},
	&cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "output directory (defaults to the directory of the input)",
		EnvVars: []string{"LUISGEN_OUT"},
	},
	&cli.BoolFlag{
		Name:  "stdin",
		Usage: "read the export from standard input",
	},
	&cli.StringFlag{
		Name:    "config",
		Usage:   "YAML file with default settings",
		EnvVars: []string{"LUISGEN_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity level (eg: warn, info, debug)",
		EnvVars: []string{"LUISGEN_LOG_LEVEL", "LOG_LEVEL"},
	},
	&cli.BoolFlag{
		Name:  "dump-plan",
		Usage: "print the resolved type plan to stderr",
	},
	&cli.BoolFlag{
		Name:  "export-plan",
		Usage: "print a YAML summary of generated names to stdout",
	},
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "luisgen",
		Usage:     "generate typed intent and entity accessors from a language model export",
		UsageText: "luisgen [options] <export.json | ->",
		Version:   versioninfo.Short(),
		Flags:     generateFlags,
		Action:    runGenerate,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
	}
}
