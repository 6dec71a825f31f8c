package rsql

import (
	"fmt"
	"strings"

	"github.com/roach88/rsqlwhere/internal/ir"
)

// SyntaxError reports malformed RSQL input.
type SyntaxError struct {
	Input   string
	Pos     int // byte offset into Input
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rsql: %s at position %d", e.Message, e.Pos)
}

// Parse parses an RSQL query into an expression tree.
func Parse(query string) (ir.Node, error) {
	p := &parser{src: query}

	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("empty expression")
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return node, nil
}

// parser is a recursive-descent parser over the query bytes. Every
// reserved character is ASCII, so multi-byte UTF-8 sequences are always
// part of a selector or value.
type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Input: p.src, Pos: p.pos, Message: fmt.Sprintf(format, args...)}
}

// skipSpace advances past whitespace and returns how much was skipped.
func (p *parser) skipSpace() int {
	start := p.pos
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) parseOr() (ir.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.acceptLogical(',', "or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ir.Logic{Operator: ir.Or, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ir.Node, error) {
	left, err := p.parseConstraint()
	if err != nil {
		return nil, err
	}
	for p.acceptLogical(';', "and") {
		right, err := p.parseConstraint()
		if err != nil {
			return nil, err
		}
		left = ir.Logic{Operator: ir.And, Left: left, Right: right}
	}
	return left, nil
}

// acceptLogical consumes a logical operator written either as symbol or as
// a whitespace-delimited keyword. The position is left untouched when
// neither follows.
func (p *parser) acceptLogical(symbol byte, keyword string) bool {
	start := p.pos
	spaced := p.skipSpace() > 0

	if p.peek() == symbol {
		p.pos++
		return true
	}

	if spaced && strings.HasPrefix(p.src[p.pos:], keyword) {
		end := p.pos + len(keyword)
		if end < len(p.src) && (isSpace(p.src[end]) || p.src[end] == '(') {
			p.pos = end
			return true
		}
	}

	p.pos = start
	return false
}

func (p *parser) parseConstraint() (ir.Node, error) {
	p.skipSpace()

	if p.peek() == '(' {
		p.pos++
		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf("expected ')'")
		}
		p.pos++
		return node, nil
	}

	return p.parseComparison()
}

func (p *parser) parseComparison() (ir.Node, error) {
	start := p.pos
	selector := p.scanUnreserved()
	if selector == "" {
		return nil, p.errorf("expected selector")
	}
	if at := emptySegment(selector); at >= 0 {
		p.pos = start + at
		return nil, p.errorf("empty segment in selector %q", selector)
	}

	p.skipSpace()
	op, err := p.parseOperator()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	cmp := ir.Comparison{Selector: selector, Operator: op}
	if p.peek() == '(' {
		cmp.Values, err = p.parseGroup()
	} else {
		cmp.Value, err = p.parseValue()
	}
	if err != nil {
		return nil, err
	}
	return cmp, nil
}

// emptySegment returns the offset of the first empty dot-separated segment
// of selector, or -1.
func emptySegment(selector string) int {
	offset := 0
	for _, seg := range strings.Split(selector, ".") {
		if seg == "" {
			return offset
		}
		offset += len(seg) + 1
	}
	return -1
}

func (p *parser) parseOperator() (string, error) {
	rest := p.src[p.pos:]
	for _, op := range []string{"==", "!=", "<=", ">="} {
		if strings.HasPrefix(rest, op) {
			p.pos += len(op)
			return op, nil
		}
	}

	switch p.peek() {
	case '<', '>':
		p.pos++
		return rest[:1], nil
	case '=':
		end := 1
		for end < len(rest) && isAlpha(rest[end]) {
			end++
		}
		if end > 1 && end < len(rest) && rest[end] == '=' {
			p.pos += end + 1
			return rest[:end+1], nil
		}
	}
	return "", p.errorf("expected comparison operator")
}

func (p *parser) parseGroup() ([]string, error) {
	p.pos++ // (
	values := []string{}
	for {
		p.skipSpace()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return values, nil
		default:
			return nil, p.errorf("expected ',' or ')' in value group")
		}
	}
}

func (p *parser) parseValue() (string, error) {
	switch q := p.peek(); q {
	case '"', '\'':
		return p.parseQuoted(q)
	}
	v := p.scanUnreserved()
	if v == "" {
		return "", p.errorf("expected value")
	}
	return v, nil
}

// parseQuoted reads a quoted value. A backslash escapes the next byte.
func (p *parser) parseQuoted(quote byte) (string, error) {
	start := p.pos
	p.pos++

	var b strings.Builder
	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.src):
			b.WriteByte(p.src[p.pos+1])
			p.pos += 2
		case c == quote:
			p.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			p.pos++
		}
	}

	p.pos = start
	return "", p.errorf("unterminated quoted value")
}

func (p *parser) scanUnreserved() string {
	start := p.pos
	for !p.eof() && !isReserved(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isReserved(c byte) bool {
	switch c {
	case '"', '\'', '(', ')', ';', ',', '=', '!', '~', '<', '>':
		return true
	}
	return isSpace(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
