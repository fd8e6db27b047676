package parser

// DELETE FROM <name> [WHERE <cond> AND ...]
func (p *Parser) parseDelete(tokens []string) (*Command, error) {
	if err := expectKeyword(tokens, 1, "FROM"); err != nil {
		return nil, err
	}
	name, err := identAt(tokens, 2, "table name")
	if err != nil {
		return nil, err
	}
	where, err := optionalWhere(tokens, 3)
	if err != nil {
		return nil, err
	}
	return &Command{Kind: KindDelete, Table: name, Where: where}, nil
}
