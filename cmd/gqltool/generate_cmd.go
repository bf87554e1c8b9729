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
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

/*
generateCommand is a host-level stub: code generation from a resolved
schema is named in the external interface contract but out of scope
for this toolchain's core.
*/
func generateCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate code from a resolved schema (not yet implemented)",
		Action: func(c *cli.Context) error {
			return cli.Exit("generate: not yet implemented", 2)
		},
	}
}
