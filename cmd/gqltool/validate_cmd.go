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
validateCommand is a host-level stub: request/response validation
against a resolved schema is named in the external interface contract
but out of scope for this toolchain's core.
*/
func validateCommand(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "validate operations against a resolved schema (not yet implemented)",
		Action: func(c *cli.Context) error {
			return cli.Exit("validate: not yet implemented", 2)
		},
	}
}
