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
	"github.com/krotik/gqltool/internal/token"
)

func lexerCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "lexer",
		Usage: "run the lexer in isolation",
		Subcommands: []*cli.Command{
			{
				Name:  "parse",
				Usage: "read GraphQL source from stdin, write JSON tokens to stdout",
				Action: func(c *cli.Context) error {
					return runLexerParse(logger, c.App.Reader, c.App.Writer)
				},
			},
		},
	}
}

func runLexerParse(logger *zap.Logger, in io.Reader, out io.Writer) error {
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

	wire, err := gqljson.EncodeTokens(tokens)
	if err != nil {
		return cli.Exit(fmt.Sprintf("encoding tokens: %s", err), 1)
	}
	fmt.Fprintln(out, string(wire))
	return nil
}
