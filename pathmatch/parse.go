package pathmatch

import "fmt"

type tokenKind int

const (
	tokText tokenKind = iota
	tokParam
	tokWildcard
	tokGroup
)

type token struct {
	kind  tokenKind
	value string
	group []token
}

type parser struct {
	src string
	pos int
}

func parse(pattern string) ([]token, error) {
	p := &parser{src: pattern}
	toks, err := p.tokens(0)
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// tokens reads until the end of input, or until the closing brace when
// depth > 0.
func (p *parser) tokens(depth int) ([]token, error) {
	var toks []token
	var text []byte

	flush := func() {
		if len(text) > 0 {
			toks = append(toks, token{kind: tokText, value: string(text)})
			text = text[:0]
		}
	}

	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.src) {
				return nil, p.errorf("trailing escape character")
			}
			text = append(text, p.src[p.pos+1])
			p.pos += 2
		case ':', '*':
			flush()
			p.pos++
			name := p.name()
			if name == "" {
				return nil, p.errorf("missing parameter name after %q at %d", c, p.pos-1)
			}
			kind := tokParam
			if c == '*' {
				kind = tokWildcard
			}
			toks = append(toks, token{kind: kind, value: name})
		case '{':
			flush()
			p.pos++
			group, err := p.tokens(depth + 1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokGroup, group: group})
		case '}':
			if depth == 0 {
				return nil, p.errorf("unexpected '}' at %d", p.pos)
			}
			flush()
			p.pos++
			return toks, nil
		default:
			text = append(text, c)
			p.pos++
		}
	}
	if depth > 0 {
		return nil, p.errorf("unterminated '{'")
	}
	flush()
	return toks, nil
}

func (p *parser) name() string {
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos], p.pos == start) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c == '_' || c == '$':
		return true
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return !first
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &PatternError{Pattern: p.src, Reason: fmt.Sprintf(format, args...)}
}
