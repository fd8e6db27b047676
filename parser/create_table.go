package parser

import (
	"strings"

	"kopadb/dberr"
)

// CREATE TABLE <name> ( <col> <TYPE> [PRIMARY KEY|UNIQUE], ... )
func (p *Parser) parseCreateTable(tokens []string) (*Command, error) {
	if err := expectKeyword(tokens, 1, "TABLE"); err != nil {
		return nil, err
	}
	name, err := identAt(tokens, 2, "table name")
	if err != nil {
		return nil, err
	}

	defs, err := parenList(tokens, 3, "column list")
	if err != nil {
		return nil, err
	}

	cmd := &Command{Kind: KindCreate, Table: name}
	for _, def := range defs {
		col, err := parseColumnDef(def)
		if err != nil {
			return nil, err
		}
		cmd.Columns = append(cmd.Columns, col)
	}
	return cmd, nil
}

func parseColumnDef(def string) (ColumnDef, error) {
	fields := strings.Fields(def)
	if len(fields) < 2 {
		return ColumnDef{}, dberr.Parse(def, "column definition needs a name and a type")
	}
	if !isIdent(fields[0]) {
		return ColumnDef{}, dberr.Parse(fields[0], "invalid column name")
	}

	col := ColumnDef{Name: fields[0], Type: strings.ToUpper(fields[1])}
	for i := 2; i < len(fields); i++ {
		switch strings.ToUpper(fields[i]) {
		case "PRIMARY":
			if i+1 >= len(fields) || !strings.EqualFold(fields[i+1], "KEY") {
				return ColumnDef{}, dberr.Parse(def, "PRIMARY must be followed by KEY")
			}
			col.PrimaryKey = true
			i++
		case "UNIQUE":
			col.Unique = true
		default:
			return ColumnDef{}, dberr.Parse(fields[i], "unexpected column modifier")
		}
	}
	return col, nil
}
