package parser

// INSERT INTO <name> VALUES ( <lit>, ... )
func (p *Parser) parseInsert(tokens []string) (*Command, error) {
	if err := expectKeyword(tokens, 1, "INTO"); err != nil {
		return nil, err
	}
	name, err := identAt(tokens, 2, "table name")
	if err != nil {
		return nil, err
	}
	if err := expectKeyword(tokens, 3, "VALUES"); err != nil {
		return nil, err
	}

	items, err := parenList(tokens, 4, "value list")
	if err != nil {
		return nil, err
	}

	cmd := &Command{Kind: KindInsert, Table: name}
	for _, item := range items {
		cmd.Values = append(cmd.Values, parseLiteral(item))
	}
	return cmd, nil
}
