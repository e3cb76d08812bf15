package ddl

// ColumnType is the closed set of column types the dialect recognizes.
// Unknown type tokens are a parse error, not a lint finding.
type ColumnType int

// Recognized column types.
const (
	TypeDate ColumnType = iota
	TypeString
)

// String returns the source-level spelling of the type.
func (t ColumnType) String() string {
	switch t {
	case TypeDate:
		return "Date"
	case TypeString:
		return "String"
	default:
		return "unknown"
	}
}

// Column is a single column definition inside a CREATE TABLE statement.
type Column struct {
	Name string
	Type ColumnType
}

// Table is the parsed form of a CREATE TABLE statement.
// It is constructed only by ParseTable and never mutated afterwards;
// lint rules treat it as read-only.
type Table struct {
	Name        string
	Columns     []Column
	IfNotExists bool
}
