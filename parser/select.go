package parser

import (
	"strings"

	"kopadb/dberr"
)

// SELECT <*|col, ...> FROM <name> [WHERE <cond> AND ...]
func (p *Parser) parseSelect(tokens []string) (*Command, error) {
	from := indexOf(tokens, 1, "FROM")
	if from < 0 {
		return nil, dberr.Parse(strings.Join(tokens, " "), "expected FROM")
	}
	projection, err := parseProjection(tokens[1:from])
	if err != nil {
		return nil, err
	}

	name, err := identAt(tokens, from+1, "table name")
	if err != nil {
		return nil, err
	}
	where, err := optionalWhere(tokens, from+2)
	if err != nil {
		return nil, err
	}

	return &Command{
		Kind:       KindSelect,
		Table:      name,
		Projection: projection,
		Where:      where,
	}, nil
}

// parseProjection returns nil for "*".
func parseProjection(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, dberr.Parse("SELECT", "expected column list before FROM")
	}
	joined := strings.Join(tokens, " ")
	if strings.TrimSpace(joined) == "*" {
		return nil, nil
	}

	var cols []string
	for _, c := range strings.Split(joined, ",") {
		c = strings.TrimSpace(c)
		if !isIdent(c) {
			return nil, dberr.Parse(joined, "malformed column list")
		}
		cols = append(cols, c)
	}
	return cols, nil
}
