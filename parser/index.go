package parser

import (
	"strings"

	"kopadb/dberr"
)

// INDEX ON <name> <col>
func (p *Parser) parseIndex(tokens []string) (*Command, error) {
	if len(tokens) < 4 {
		return nil, dberr.Parse(strings.Join(tokens, " "), "INDEX needs ON <table> <column>")
	}
	if err := expectKeyword(tokens, 1, "ON"); err != nil {
		return nil, err
	}
	name, err := identAt(tokens, 2, "table name")
	if err != nil {
		return nil, err
	}
	col, err := identAt(tokens, 3, "column name")
	if err != nil {
		return nil, err
	}
	if len(tokens) > 4 {
		return nil, dberr.Parse(strings.Join(tokens[4:], " "), "unexpected trailing tokens")
	}
	return &Command{Kind: KindIndex, Table: name, Column: col}, nil
}
