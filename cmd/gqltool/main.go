/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

/*
Command gqltool is the CLI front-end over the lexer, parser, schema
resolver and diff packages (spec.md §6).
*/
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func main() {
	logger := newLogger()
	defer logger.Sync()

	app := &cli.App{
		Name:  "gqltool",
		Usage: "lex, parse, resolve and diff GraphQL schemas and operations",
		Commands: []*cli.Command{
			internalCommand(logger),
			generateCommand(logger),
			validateCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			fmt.Fprintln(os.Stderr, exitErr.Error())
			os.Exit(exitErr.ExitCode())
		}
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

/*
internalCommand groups the `internal` subcommands: the two pipeline-stage
commands that operate on stdin/stdout only (`internal lexer parse` and
`internal parser parse`) and `internal diff`.
*/
func internalCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "internal",
		Usage: "run one pipeline stage in isolation",
		Subcommands: []*cli.Command{
			lexerCommand(logger),
			parserCommand(logger),
			diffCommand(logger),
		},
	}
}
