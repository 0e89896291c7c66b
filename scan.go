package tgff

import (
	"strconv"
	"strings"
)

// Every read* and skip* function skips trailing whitespace after a successful read.

func isSpace(_ int, r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isTokenRune(i int, r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		return true
	case i == 0:
		return false
	default:
		return r == '_' || (r >= '0' && r <= '9')
	}
}

func isDigit(_ int, r rune) bool {
	return r >= '0' && r <= '9'
}

func isRealRune(_ int, r rune) bool {
	switch r {
	case '+', '-', '.', 'e', 'E':
		return true
	default:
		return r >= '0' && r <= '9'
	}
}

func (p *Parser) skipVoid() {
	p.cursor.Skip(isSpace)
}

func (p *Parser) skipChar(expected rune) error {
	if r, ok := p.cursor.Next(); ok && r == expected {
		p.skipVoid()
		return nil
	}
	return p.errorf("expected `%c`", expected)
}

// skipStr expects an ASCII literal.
func (p *Parser) skipStr(expected string) error {
	size := len(expected)
	matched := p.cursor.Skip(func(i int, r rune) bool {
		return i < size && r == rune(expected[i])
	})
	if matched != size {
		return p.errorf("expected `%s`", expected)
	}
	p.skipVoid()
	return nil
}

// skipComment skips a separator line like "#-----".
func (p *Parser) skipComment() error {
	skipped := p.cursor.Skip(func(i int, r rune) bool {
		return (i == 0 && r == '#') || (i > 0 && r == '-')
	})
	if skipped < 2 {
		return p.errorf("expected a comment line")
	}
	p.skipVoid()
	return nil
}

func (p *Parser) readToken() (string, bool) {
	token := p.cursor.Read(isTokenRune)
	p.skipVoid()
	return token, token != ""
}

// readID extracts the number following the first underscore, e.g. 42 from t0_42.
func (p *Parser) readID() (uint64, bool) {
	token, ok := p.readToken()
	if !ok {
		return 0, false
	}

	fields := strings.Split(token, "_")
	if len(fields) < 2 {
		return 0, false
	}
	id, e := strconv.ParseUint(fields[1], 10, 64)
	return id, e == nil
}

func (p *Parser) readNatural() (uint64, bool) {
	text := p.cursor.Read(isDigit)
	p.skipVoid()
	if text == "" {
		return 0, false
	}

	n, e := strconv.ParseUint(text, 10, 64)
	return n, e == nil
}

func (p *Parser) readReal() (float64, bool) {
	text := p.cursor.Read(isRealRune)
	p.skipVoid()
	if text == "" {
		return 0, false
	}

	x, e := strconv.ParseFloat(text, 64)
	return x, e == nil
}

func (p *Parser) getToken() (string, error) {
	if token, ok := p.readToken(); ok {
		return token, nil
	}
	return "", p.errorf("expected a token")
}

// readTokens reads zero or more tokens.
func (p *Parser) readTokens() []string {
	var tokens []string
	for {
		token, ok := p.readToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

func (p *Parser) getID() (uint64, error) {
	if id, ok := p.readID(); ok {
		return id, nil
	}
	return 0, p.errorf("expected an id")
}

func (p *Parser) getNatural() (uint64, error) {
	if n, ok := p.readNatural(); ok {
		return n, nil
	}
	return 0, p.errorf("expected a natural number")
}

func (p *Parser) getReal() (float64, error) {
	if x, ok := p.readReal(); ok {
		return x, nil
	}
	return 0, p.errorf("expected a real number")
}
