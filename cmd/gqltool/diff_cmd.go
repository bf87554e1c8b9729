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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/krotik/gqltool/internal/diff"
	"github.com/krotik/gqltool/internal/gqljson"
	"github.com/krotik/gqltool/internal/introspection"
)

func diffCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "diff",
		Usage: "diff a local resolved schema against a live API's introspection response",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path-to-schema", Required: true, Usage: "schema JSON file, or - for stdin"},
			&cli.StringFlag{Name: "url-to-api", Required: true, Usage: "GraphQL endpoint to introspect"},
		},
		Action: func(c *cli.Context) error {
			return runDiff(logger, c.Context, c.String("path-to-schema"), c.String("url-to-api"), c.App.Reader, c.App.Writer)
		},
	}
}

func runDiff(logger *zap.Logger, ctx context.Context, pathToSchema, urlToAPI string, stdin io.Reader, out io.Writer) error {
	localBytes, err := readSchemaSource(pathToSchema, stdin)
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading %s: %s", pathToSchema, err), 1)
	}

	local, err := gqljson.DecodeServerSchema(localBytes)
	if err != nil {
		logger.Info("decoding local schema failed", zap.Error(err))
		return cli.Exit(err.Error(), 1)
	}

	remote, err := introspection.FetchSchema(ctx, nil, urlToAPI)
	if err != nil {
		logger.Info("introspection failed", zap.Error(err), zap.String("url", urlToAPI))
		return cli.Exit(err.Error(), 1)
	}

	report := diff.Diff(local, remote)
	for _, entry := range report.Entries {
		before, after := entry.Pretty()
		fmt.Fprintf(out, "%s %s\n", entry.Kind, entry.Path)
		if before != "" {
			fmt.Fprintf(out, "  - %s\n", before)
		}
		if after != "" {
			fmt.Fprintf(out, "  + %s\n", after)
		}
	}
	logger.Info("diff complete", zap.String("run_id", report.RunID.String()), zap.Int("entries", len(report.Entries)))
	return nil
}

func readSchemaSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
