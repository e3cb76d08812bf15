package ddl

import "fmt"

// ParseError reports input that does not match the CREATE TABLE grammar.
// Rest holds the unconsumed input at the point of failure; its exact
// wording is diagnostic only and not part of any output contract.
type ParseError struct {
	Rest    string
	Message string
}

func (e *ParseError) Error() string {
	rest := e.Rest
	if len(rest) > 40 {
		rest = rest[:40] + "..."
	}
	return fmt.Sprintf("parse error: %s at %q", e.Message, rest)
}

// Common error messages
const (
	errExpectedCreateTable = `expected "CREATE TABLE "`
	errExpectedTableName   = "expected table name"
	errExpectedSpace       = `expected " "`
	errExpectedLParen      = `expected "("`
	errExpectedRParen      = `expected ")"`
	errExpectedColumnName  = "expected column name"
	errExpectedWhitespace  = "expected whitespace after column name"
	errExpectedColumnType  = "expected column type Date or String"
)
