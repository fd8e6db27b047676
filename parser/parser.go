package parser

import (
	"strings"

	"kopadb/dberr"
	"kopadb/schema"
)

// Kind tags a parsed command
type Kind string

const (
	KindCreate Kind = "CREATE"
	KindInsert Kind = "INSERT"
	KindSelect Kind = "SELECT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
	KindIndex  Kind = "INDEX"
	KindJoin   Kind = "JOIN"
)

// ColumnDef is one column of a CREATE TABLE list. Type is the uppercased type
// name as written; it is not validated here.
type ColumnDef struct {
	Name       string
	Type       string
	PrimaryKey bool
	Unique     bool
}

// Condition is one `col=lit` equality of a WHERE clause.
type Condition struct {
	Column string
	Value  schema.Value
}

// Assignment is one `col=lit` of a SET list.
type Assignment struct {
	Column string
	Value  schema.Value
}

// Command is a parsed command. Which fields are set depends on Kind.
type Command struct {
	Kind  Kind
	Table string

	Columns    []ColumnDef    // CREATE
	Values     []schema.Value // INSERT, positional
	Projection []string       // SELECT; nil means *
	Where      []Condition    // SELECT, UPDATE, DELETE
	Set        []Assignment   // UPDATE
	Column     string         // INDEX

	RightTable string // JOIN; Table is the left side
	LeftKey    string
	RightKey   string
}

var keywords = make(map[string]bool)

func init() {
	for _, kw := range []string{
		"CREATE", "TABLE", "INSERT", "INTO", "VALUES",
		"SELECT", "FROM", "WHERE", "AND", "UPDATE", "SET",
		"DELETE", "INDEX", "ON", "JOIN",
	} {
		keywords[kw] = true
	}
}

// Parser handles command parsing. It holds no state and never looks at
// tables or schemas.
type Parser struct{}

// New creates a new parser
func New() *Parser {
	return &Parser{}
}

// Parse parses one command line with the default parser.
func Parse(text string) (*Command, error) {
	return New().Parse(text)
}

// Parse parses a command line. A trailing ';' is ignored.
func (p *Parser) Parse(text string) (*Command, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(text, ";"))
	if text == "" {
		return nil, dberr.Parse("", "empty command")
	}

	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	for i, tok := range tokens {
		if up := strings.ToUpper(tok); keywords[up] {
			tokens[i] = up
		}
	}

	switch tokens[0] {
	case "CREATE":
		return p.parseCreateTable(tokens)
	case "INSERT":
		return p.parseInsert(tokens)
	case "SELECT":
		return p.parseSelect(tokens)
	case "UPDATE":
		return p.parseUpdate(tokens)
	case "DELETE":
		return p.parseDelete(tokens)
	case "INDEX":
		return p.parseIndex(tokens)
	case "JOIN":
		return p.parseJoin(tokens)
	}
	return nil, dberr.Parse(tokens[0], "unsupported command")
}
