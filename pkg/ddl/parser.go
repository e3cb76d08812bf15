// Package ddl parses a small, forgiving dialect of SQL CREATE TABLE
// statements into an immutable Table description.
//
// The grammar, in order:
//
//	"CREATE TABLE "   (case-insensitive, trailing space required)
//	["IF NOT EXISTS"] (case-insensitive, optional)
//	<identifier>      (up to next space)
//	" " "("
//	<column>( ", " <column>)*    (possibly empty)
//	")"
//
// Identifiers are positional: any byte run up to the next space, with no
// character-class validation. Column types form a closed, case-sensitive
// set (Date, String). Trailing input after ")" is returned unconsumed.
package ddl

// columnTypeWS is the character set accepted between a column name and
// its type.
const columnTypeWS = " \t\r\n"

// ParseColumn recognizes one "name type" fragment and returns the Column
// along with the remaining input.
func ParseColumn(input string) (Column, string, error) {
	name, rest, ok := takeUntil(input, " ")
	if !ok {
		return Column{}, input, &ParseError{Rest: input, Message: errExpectedColumnName}
	}
	// rest begins with the space takeUntil stopped at, so this run can
	// only be empty if columnTypeWS no longer covers the name delimiter.
	_, rest, ok = takeRun(rest, columnTypeWS)
	if !ok {
		return Column{}, input, &ParseError{Rest: rest, Message: errExpectedWhitespace}
	}
	typ, rest, ok := parseColumnType(rest)
	if !ok {
		return Column{}, input, &ParseError{Rest: rest, Message: errExpectedColumnType}
	}
	return Column{Name: name, Type: typ}, rest, nil
}

// parseColumnType matches one of the recognized type tokens.
// Alternatives share no prefix, so the order is not observable.
func parseColumnType(input string) (ColumnType, string, bool) {
	if rest, ok := tag(input, "Date"); ok {
		return TypeDate, rest, true
	}
	if rest, ok := tag(input, "String"); ok {
		return TypeString, rest, true
	}
	return 0, input, false
}

// ParseTable consumes a full CREATE TABLE statement and returns the Table
// plus any trailing input after the closing parenthesis. Trailing input is
// not rejected; callers may ignore it.
func ParseTable(input string) (*Table, string, error) {
	rest, ok := tagNoCase(input, "create table ")
	if !ok {
		return nil, input, &ParseError{Rest: input, Message: errExpectedCreateTable}
	}

	// The grammar does not require a separator between IF NOT EXISTS and
	// the table name; "CREATE TABLE IF NOT EXISTSfoo (...)" is legal.
	var ifNotExists bool
	if r, ok := tagNoCase(rest, "if not exists"); ok {
		ifNotExists = true
		rest = r
	}

	name, rest, ok := takeUntil(rest, " ")
	if !ok {
		return nil, input, &ParseError{Rest: rest, Message: errExpectedTableName}
	}
	rest, ok = tag(rest, " ")
	if !ok {
		return nil, input, &ParseError{Rest: rest, Message: errExpectedSpace}
	}
	rest, ok = tag(rest, "(")
	if !ok {
		return nil, input, &ParseError{Rest: rest, Message: errExpectedLParen}
	}

	cols, rest := separatedList(rest, ", ", ParseColumn)

	rest, ok = tag(rest, ")")
	if !ok {
		return nil, input, &ParseError{Rest: rest, Message: errExpectedRParen}
	}

	return &Table{
		Name:        name,
		Columns:     cols,
		IfNotExists: ifNotExists,
	}, rest, nil
}

// Parse is a convenience wrapper around ParseTable for callers that do
// not care about trailing input.
func Parse(input string) (*Table, error) {
	t, _, err := ParseTable(input)
	return t, err
}
