/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/krotik/gqltool/internal/gqljson"
	"github.com/krotik/gqltool/internal/lexer"
	"github.com/krotik/gqltool/internal/parser"
	"github.com/krotik/gqltool/internal/token"
)

func parserCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "parser",
		Usage: "run the file parser in isolation",
		Subcommands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "read GraphQL source from stdin, write JSON AST to stdout",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Usage: "server or client", Required: true},
				},
				Action: func(c *cli.Context) error {
					return runParserParse(logger, c.String("mode"), c.App.Reader, c.App.Writer)
				},
			},
		},
	}
}

func runParserParse(logger *zap.Logger, mode string, in io.Reader, out io.Writer) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading stdin: %s", err), 1)
	}

	src := &token.SourceFile{Filepath: "<stdin>", Buffer: string(buf)}
	tokens, err := lexer.Lex(src)
	if err != nil {
		logger.Info("lex failed", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}

	var wire []byte
	switch mode {
	case "server":
		file, perr := parser.ParseServer(tokens, src)
		if perr != nil {
			logger.Info("parse failed", zap.Error(perr))
			return cli.Exit(perr.Error(), 1)
		}
		wire, err = gqljson.EncodeServerAST(file)
	case "client":
		defs, perr := parser.ParseClient(tokens, src)
		if perr != nil {
			logger.Info("parse failed", zap.Error(perr))
			return cli.Exit(perr.Error(), 1)
		}
		wire, err = gqljson.EncodeClientAST(defs)
	default:
		return cli.Exit(fmt.Sprintf("unknown --mode %q, want server or client", mode), 2)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("encoding AST: %s", err), 1)
	}

	fmt.Fprintln(out, string(wire))
	return nil
}
