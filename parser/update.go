package parser

import (
	"strings"

	"kopadb/dberr"
)

// UPDATE <name> SET <col>=<lit>, ... [WHERE <cond> AND ...]
func (p *Parser) parseUpdate(tokens []string) (*Command, error) {
	name, err := identAt(tokens, 1, "table name")
	if err != nil {
		return nil, err
	}
	if err := expectKeyword(tokens, 2, "SET"); err != nil {
		return nil, err
	}

	end := indexOf(tokens, 3, "WHERE")
	if end < 0 {
		end = len(tokens)
	}
	if end == 3 {
		return nil, dberr.Parse("SET", "expected assignments after SET")
	}

	cmd := &Command{Kind: KindUpdate, Table: name}
	for _, part := range splitTopLevel(strings.Join(tokens[3:end], " "), ',') {
		col, lit, err := splitEquality(strings.TrimSpace(part), "SET")
		if err != nil {
			return nil, err
		}
		cmd.Set = append(cmd.Set, Assignment{Column: col, Value: parseLiteral(lit)})
	}

	if cmd.Where, err = optionalWhere(tokens, end); err != nil {
		return nil, err
	}
	return cmd, nil
}
