package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode"
)

// normalizer rewrites one loosely written record literal into strict JSON.
// The source arrays are written by hand in Python/JS style, so fragments
// may carry unquoted keys, single-quoted strings, Python keyword constants,
// trailing commas, and raw control characters inside strings.
type normalizer struct {
	text []rune
	i    int
	out  []rune
}

// normalizeFragment converts a single record literal into strict JSON, or
// reports why the fragment is not a well-formed literal.
func normalizeFragment(fragment string) (string, error) {
	n := &normalizer{text: []rune(fragment)}
	if err := n.value(); err != nil {
		return "", err
	}
	n.ws()
	if n.i < len(n.text) {
		return "", fmt.Errorf("unexpected character %q at offset %d", n.text[n.i], n.i)
	}
	return string(n.out), nil
}

func (n *normalizer) value() error {
	n.ws()
	if n.i >= len(n.text) {
		return fmt.Errorf("unexpected end of fragment")
	}
	switch c := n.text[n.i]; {
	case c == '{':
		return n.object()
	case c == '[':
		return n.array()
	case c == '"' || c == '\'':
		return n.str(c)
	case c == '-' || unicode.IsDigit(c):
		return n.number()
	default:
		return n.keyword()
	}
}

func (n *normalizer) ws() {
	for n.i < len(n.text) && unicode.IsSpace(n.text[n.i]) {
		n.i++
	}
}

func (n *normalizer) object() error {
	n.out = append(n.out, '{')
	n.i++
	n.ws()
	first := true
	for n.i < len(n.text) && n.text[n.i] != '}' {
		if !first {
			if n.text[n.i] != ',' {
				return fmt.Errorf("expected ',' between object members at offset %d", n.i)
			}
			n.i++
			n.ws()
			if n.i < len(n.text) && n.text[n.i] == '}' {
				break // trailing comma
			}
			n.out = append(n.out, ',')
		}
		first = false
		if err := n.member(); err != nil {
			return err
		}
		n.ws()
	}
	if n.i >= len(n.text) {
		return fmt.Errorf("unterminated object")
	}
	n.i++
	n.out = append(n.out, '}')
	return nil
}

func (n *normalizer) member() error {
	if err := n.key(); err != nil {
		return err
	}
	n.ws()
	if n.i >= len(n.text) || n.text[n.i] != ':' {
		return fmt.Errorf("expected ':' after object key at offset %d", n.i)
	}
	n.i++
	n.out = append(n.out, ':')
	return n.value()
}

func (n *normalizer) key() error {
	n.ws()
	if n.i >= len(n.text) {
		return fmt.Errorf("expected object key")
	}
	if c := n.text[n.i]; c == '"' || c == '\'' {
		return n.str(c)
	}
	start := n.i
	for n.i < len(n.text) && isIdentRune(n.text[n.i]) {
		n.i++
	}
	if n.i == start {
		return fmt.Errorf("expected object key at offset %d", start)
	}
	n.out = append(n.out, []rune(jsonQuote(string(n.text[start:n.i])))...)
	return nil
}

func (n *normalizer) array() error {
	n.out = append(n.out, '[')
	n.i++
	n.ws()
	first := true
	for n.i < len(n.text) && n.text[n.i] != ']' {
		if !first {
			if n.text[n.i] != ',' {
				return fmt.Errorf("expected ',' between array elements at offset %d", n.i)
			}
			n.i++
			n.ws()
			if n.i < len(n.text) && n.text[n.i] == ']' {
				break // trailing comma
			}
			n.out = append(n.out, ',')
		}
		first = false
		if err := n.value(); err != nil {
			return err
		}
		n.ws()
	}
	if n.i >= len(n.text) {
		return fmt.Errorf("unterminated array")
	}
	n.i++
	n.out = append(n.out, ']')
	return nil
}

// str rewrites a quoted string to a double-quoted JSON string. Raw control
// characters become escape sequences; double quotes inside single-quoted
// strings gain the escaping JSON requires.
func (n *normalizer) str(quote rune) error {
	n.i++
	n.out = append(n.out, '"')
	for n.i < len(n.text) {
		c := n.text[n.i]
		switch {
		case c == quote:
			n.i++
			n.out = append(n.out, '"')
			return nil
		case c == '\\':
			if err := n.escape(); err != nil {
				return err
			}
		case c == '"': // only reachable when quote is '\''
			n.out = append(n.out, '\\', '"')
			n.i++
		case c == '\n':
			n.out = append(n.out, '\\', 'n')
			n.i++
		case c == '\r':
			n.out = append(n.out, '\\', 'r')
			n.i++
		case c == '\t':
			n.out = append(n.out, '\\', 't')
			n.i++
		default:
			n.out = append(n.out, c)
			n.i++
		}
	}
	return fmt.Errorf("unterminated string")
}

func (n *normalizer) escape() error {
	if n.i+1 >= len(n.text) {
		return fmt.Errorf("dangling escape at end of string")
	}
	esc := n.text[n.i+1]
	n.i += 2
	switch esc {
	case '\'':
		// \' is only meaningful inside single-quoted text; JSON wants a bare '
		n.out = append(n.out, '\'')
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		n.out = append(n.out, '\\', esc)
	case 'u':
		if n.i+4 > len(n.text) || !isHex4(n.text[n.i:n.i+4]) {
			return fmt.Errorf("invalid unicode escape at offset %d", n.i-2)
		}
		n.out = append(n.out, '\\', 'u')
		n.out = append(n.out, n.text[n.i:n.i+4]...)
		n.i += 4
	default:
		// Unknown escape: keep the escaped character itself.
		n.out = append(n.out, esc)
	}
	return nil
}

func (n *normalizer) number() error {
	start := n.i
	if n.text[n.i] == '-' {
		n.i++
	}
	digits := false
	for n.i < len(n.text) && unicode.IsDigit(n.text[n.i]) {
		n.i++
		digits = true
	}
	if n.i < len(n.text) && n.text[n.i] == '.' {
		n.i++
		for n.i < len(n.text) && unicode.IsDigit(n.text[n.i]) {
			n.i++
			digits = true
		}
	}
	if !digits {
		return fmt.Errorf("invalid number at offset %d", start)
	}
	n.out = append(n.out, n.text[start:n.i]...)
	return nil
}

var keywords = []struct{ name, value string }{
	{"true", "true"},
	{"false", "false"},
	{"null", "null"},
	{"True", "true"},
	{"False", "false"},
	{"None", "null"},
}

func (n *normalizer) keyword() error {
	for _, kw := range keywords {
		runes := []rune(kw.name)
		end := n.i + len(runes)
		if end <= len(n.text) && string(n.text[n.i:end]) == kw.name {
			n.i = end
			n.out = append(n.out, []rune(kw.value)...)
			return nil
		}
	}
	return fmt.Errorf("unexpected token at offset %d", n.i)
}

func isIdentRune(c rune) bool {
	return c == '_' || c == '$' || unicode.IsLetter(c) || unicode.IsDigit(c)
}

func isHex4(runes []rune) bool {
	for _, c := range runes {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// jsonQuote returns the JSON string encoding of value without escaping
// HTML characters.
func jsonQuote(value string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(value)
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}
