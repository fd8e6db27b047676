package parser

import (
	"strconv"
	"strings"
	"unicode"

	"kopadb/dberr"
	"kopadb/schema"
)

// tokenize splits on whitespace outside single quotes. A quoted span stays in
// one token with its quotes. '(' outside quotes also starts a new token, so
// "t(id" reads as "t", "(id".
func tokenize(text string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '\'':
			inQuote = !inQuote
			cur.WriteRune(r)
		case inQuote:
			cur.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		case r == '(':
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, dberr.Parse(cur.String(), "unterminated quote")
	}
	flush()
	return tokens, nil
}

// splitTopLevel splits s on sep outside single quotes.
func splitTopLevel(s string, sep rune) []string {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
	)
	for _, r := range s {
		if r == '\'' {
			inQuote = !inQuote
		}
		if r == sep && !inQuote {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	return append(parts, cur.String())
}

// parenList reads tokens[from:] as one "( a, b, ... )" list and returns the
// trimmed elements.
func parenList(tokens []string, from int, what string) ([]string, error) {
	if from >= len(tokens) {
		return nil, dberr.Parse(strings.Join(tokens, " "), "missing parenthesized "+what)
	}
	s := strings.Join(tokens[from:], " ")
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, dberr.Parse(s, "expected parenthesized "+what)
	}
	inner := s[1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, dberr.Parse(s, "empty "+what)
	}

	items := splitTopLevel(inner, ',')
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, dberr.Parse(s, "empty element in "+what)
		}
		if strings.ContainsAny(unquoted(item), "()") {
			return nil, dberr.Parse(item, "unbalanced parentheses in "+what)
		}
		items[i] = item
	}
	return items, nil
}

// unquoted drops single-quoted spans from s.
func unquoted(s string) string {
	var b strings.Builder
	inQuote := false
	for _, r := range s {
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if !inQuote {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitEquality splits "col=lit" at the first '=' outside quotes.
func splitEquality(fragment, clause string) (string, string, error) {
	inQuote := false
	for i, r := range fragment {
		if r == '\'' {
			inQuote = !inQuote
		}
		if r != '=' || inQuote {
			continue
		}
		col := strings.TrimSpace(fragment[:i])
		lit := strings.TrimSpace(fragment[i+1:])
		if !isIdent(col) || lit == "" {
			return "", "", dberr.Parse(fragment, "malformed "+clause+" condition")
		}
		return col, lit, nil
	}
	return "", "", dberr.Parse(fragment, clause+" token lacks '='")
}

// parseConditions reads "<cond> (AND <cond>)*" from tokens.
func parseConditions(tokens []string) ([]Condition, error) {
	if len(tokens) == 0 {
		return nil, dberr.Parse("WHERE", "expected condition after WHERE")
	}
	var (
		conds   []Condition
		segment []string
	)
	flush := func() error {
		if len(segment) == 0 {
			return dberr.Parse(strings.Join(tokens, " "), "empty condition around AND")
		}
		col, lit, err := splitEquality(strings.Join(segment, " "), "WHERE")
		if err != nil {
			return err
		}
		conds = append(conds, Condition{Column: col, Value: parseLiteral(lit)})
		segment = nil
		return nil
	}
	for _, tok := range tokens {
		if tok == "AND" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		segment = append(segment, tok)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return conds, nil
}

// parseLiteral coerces a literal: quoted text, then integer, then float,
// otherwise the raw token as text.
func parseLiteral(s string) schema.Value {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return schema.Text(s[1 : len(s)-1])
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return schema.Int(i)
	}
	if strings.ContainsAny(s, "0123456789") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return schema.Float(f)
		}
	}
	return schema.Text(s)
}

// isIdent reports whether s can name a table or column.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune("(),='*;", r) {
			return false
		}
	}
	return true
}

// identAt returns tokens[i] if it is an identifier.
func identAt(tokens []string, i int, what string) (string, error) {
	if i >= len(tokens) {
		return "", dberr.Parse(strings.Join(tokens, " "), "missing "+what)
	}
	if !isIdent(tokens[i]) || keywords[tokens[i]] {
		return "", dberr.Parse(tokens[i], "expected "+what)
	}
	return tokens[i], nil
}

// expectKeyword fails unless tokens[i] is kw.
func expectKeyword(tokens []string, i int, kw string) error {
	if i >= len(tokens) {
		return dberr.Parse(strings.Join(tokens, " "), "missing "+kw)
	}
	if tokens[i] != kw {
		return dberr.Parse(tokens[i], "expected "+kw)
	}
	return nil
}

// indexOf returns the position of the first kw token at or after from, or -1.
func indexOf(tokens []string, from int, kw string) int {
	for i := from; i < len(tokens); i++ {
		if tokens[i] == kw {
			return i
		}
	}
	return -1
}

// optionalWhere parses tokens[i:] as an optional WHERE clause.
func optionalWhere(tokens []string, i int) ([]Condition, error) {
	if i >= len(tokens) {
		return nil, nil
	}
	if tokens[i] != "WHERE" {
		return nil, dberr.Parse(tokens[i], "unexpected token, expected WHERE")
	}
	return parseConditions(tokens[i+1:])
}
