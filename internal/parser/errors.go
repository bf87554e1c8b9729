/*
 * Public Domain Software
 *
 * I (Matthias Ladkau) am the author of the source code in this file.
 * I have placed the source code in this file in the public domain.
 *
 * For further information see: http://creativecommons.org/publicdomain/zero/1.0/
 */

package parser

import (
	"fmt"

	"github.com/krotik/gqltool/internal/token"
)

/*
ErrorKind is the closed set of ways the parser can fail (spec.md §7).
*/
type ErrorKind int

const (
	UnexpectedEOF ErrorKind = iota
	WrongTokenType
	WrongLexeme
	IdentifierIsKeyword
	UnexpectedIdentifier
	DuplicateDefinition
)

var errorKindNames = map[ErrorKind]string{
	UnexpectedEOF:         "UnexpectedEOF",
	WrongTokenType:        "WrongTokenType",
	WrongLexeme:           "WrongLexeme",
	IdentifierIsKeyword:   "IdentifierIsKeyword",
	UnexpectedIdentifier:  "UnexpectedIdentifier",
	DuplicateDefinition:   "DuplicateDefinition",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

/*
Error is the failure branch of the parser stage. There is no error
recovery beyond single-token synchronization - the first error ends
parsing.
*/
type Error struct {
	Kind    ErrorKind
	Token   token.Token
	Source  *token.SourceFile
	Message string
}

/*
Error returns a human-readable description of this parser error.
*/
func (e *Error) Error() string {
	name := "<unknown>"
	if e.Source != nil {
		name = e.Source.Filepath
	}
	return fmt.Sprintf("parse error in %s: %s: %s (%s)", name, e.Kind, e.Message, e.Token.Loc)
}
