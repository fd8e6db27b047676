package parser

import (
	"strings"

	"kopadb/dberr"
)

// JOIN <left> <right> ON <lkey>=<rkey>
func (p *Parser) parseJoin(tokens []string) (*Command, error) {
	if len(tokens) < 5 {
		return nil, dberr.Parse(strings.Join(tokens, " "), "JOIN needs <left> <right> ON <lkey>=<rkey>")
	}
	left, err := identAt(tokens, 1, "left table name")
	if err != nil {
		return nil, err
	}
	right, err := identAt(tokens, 2, "right table name")
	if err != nil {
		return nil, err
	}
	if err := expectKeyword(tokens, 3, "ON"); err != nil {
		return nil, err
	}

	cond := strings.Join(tokens[4:], " ")
	lkey, rkey, err := splitEquality(cond, "ON")
	if err != nil {
		return nil, err
	}
	if !isIdent(rkey) {
		return nil, dberr.Parse(cond, "join keys must be column names")
	}

	return &Command{
		Kind:       KindJoin,
		Table:      left,
		RightTable: right,
		LeftKey:    lkey,
		RightKey:   rkey,
	}, nil
}
