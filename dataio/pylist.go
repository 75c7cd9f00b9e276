package dataio

import (
	"strings"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// ParseList parses a list literal of quoted strings as written by Python's
// repr, for example ['Animation', "Children's"]. Quotes may be single or
// double; backslash escapes the next character; a trailing comma is
// accepted. An empty cell or "[]" is an empty list.
func ParseList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errors.Newf("list literal %q is not enclosed in brackets", s)
	}

	body := s[1 : len(s)-1]
	var out []string
	for i := 0; ; {
		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i == len(body) {
			return out, nil
		}

		quote := body[i]
		if quote != '\'' && quote != '"' {
			return nil, errors.Newf("list literal %q: expected a quoted string at offset %d", s, i+1)
		}
		var item strings.Builder
		i++
		closed := false
		for i < len(body) {
			c := body[i]
			switch {
			case c == '\\' && i+1 < len(body):
				item.WriteByte(body[i+1])
				i += 2
				continue
			case c == quote:
				closed = true
			default:
				item.WriteByte(c)
			}
			i++
			if closed {
				break
			}
		}
		if !closed {
			return nil, errors.Newf("list literal %q has an unterminated string", s)
		}
		out = append(out, item.String())

		for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i == len(body) {
			return out, nil
		}
		if body[i] != ',' {
			return nil, errors.Newf("list literal %q: expected ',' at offset %d", s, i+1)
		}
		i++
	}
}
