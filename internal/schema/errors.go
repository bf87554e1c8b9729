/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package schema

import (
	"fmt"

	"github.com/krotik/gqltool/internal/token"
)

/*
ErrorKind is the closed set of ways schema resolution can fail (spec.md
§7).
*/
type ErrorKind int

const (
	DuplicateType ErrorKind = iota
	UnknownType
	DuplicateField
	InvalidInputType
	InterfaceNotSatisfied
	DirectiveTargetMismatch
	NonRepeatableDirectiveRepeated
	InputCycle
	RootOperationNotObject
)

var errorKindNames = map[ErrorKind]string{
	DuplicateType:                  "DuplicateType",
	UnknownType:                    "UnknownType",
	DuplicateField:                 "DuplicateField",
	InvalidInputType:               "InvalidInputType",
	InterfaceNotSatisfied:          "InterfaceNotSatisfied",
	DirectiveTargetMismatch:        "DirectiveTargetMismatch",
	NonRepeatableDirectiveRepeated: "NonRepeatableDirectiveRepeated",
	InputCycle:                     "InputCycle",
	RootOperationNotObject:         "RootOperationNotObject",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

/*
Error is the failure branch of schema resolution. Every error carries a
precise Location pointing at the offending reference.
*/
type Error struct {
	Kind     ErrorKind
	Location token.Location
	Message  string
}

/*
Error returns a human-readable description of this schema error.
*/
func (e *Error) Error() string {
	return fmt.Sprintf("schema error: %s: %s (at %s)", e.Kind, e.Message, e.Location)
}
