package syntax

import (
	"github.com/lambdalang/lambda/pkg/ast"
)

// Parser turns a byte buffer into a sequence of top-level expressions,
// recovering past some classes of error so that a single run can report
// more than one diagnostic.
type Parser struct {
	text   []byte
	index  int
	errors []error
}

// NewParser constructs a parser over the given source bytes.
func NewParser(text []byte) *Parser {
	return &Parser{text: text}
}

// ParseProgram parses every top-level expression in the buffer. It
// always returns all diagnostics it could recover past; callers should
// treat a non-empty error slice as "do not run downstream actions".
func ParseProgram(text []byte) ([]ast.Expr, []error) {
	p := NewParser(text)
	var prog []ast.Expr

	for {
		p.skipSpace()

		if p.atEOF() {
			break
		}

		start := p.index

		e, err := p.parseExpr()
		if err != nil {
			p.errors = append(p.errors, err)
			// Terminal for this attempt; if no progress was made at
			// all, force an advance so the loop cannot spin forever.
			if p.index == start && !p.atEOF() {
				p.index++
			}

			continue
		}

		prog = append(prog, e)
	}

	return prog, p.errors
}

func (p *Parser) atEOF() bool {
	return p.index >= len(p.text)
}

func (p *Parser) peek() byte {
	return p.text[p.index]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlnum(b byte) bool {
	return isLetter(b) || isDigit(b)
}

func (p *Parser) skipSpace() {
	for !p.atEOF() && isSpace(p.peek()) {
		p.index++
	}
}

// canStartAtom reports whether the given byte may begin an atom, used
// when deciding whether application's optional trailing atoms continue.
func canStartAtom(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '(' || b == '['
}

// parseExpr parses `atom applied_rest?`, the left-associative fold of
// one or more atoms into a chain of App nodes.
func (p *Parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	result := first

	for {
		p.skipSpace()

		if p.atEOF() || !canStartAtom(p.peek()) {
			break
		}

		next, err := p.parseAtom()
		if err != nil {
			return nil, err
		}

		result = &ast.App{
			Fn:  result,
			Arg: next,
			Sp:  ast.NewSpan(result.Span().Start, next.Span().End),
		}
	}

	return result, nil
}

// parseRequiredExpr parses a mandatory expr at the current position,
// producing the pinned "expected an expression" diagnostic when none is
// present: `Unmatched ')'` if blocked by a stray close paren, otherwise
// `Expected expr`. Unless at EOF, the blocking byte is consumed.
func (p *Parser) parseRequiredExpr() (ast.Expr, error) {
	pinned := p.index
	p.skipSpace()

	if !p.atEOF() && p.peek() == ')' {
		at := p.index
		p.index++

		return nil, NewSyntaxError(ast.Point(at), "Unmatched ')'")
	}

	if p.atEOF() || !canStartAtom(p.peek()) {
		if !p.atEOF() {
			p.index++
		}

		return nil, NewSyntaxError(ast.Point(pinned), "Expected expr")
	}

	return p.parseExpr()
}

// parseAtom parses a single atom: a varname, an index, a parenthesised
// expression, or a lambda.
func (p *Parser) parseAtom() (ast.Expr, error) {
	p.skipSpace()

	if p.atEOF() {
		return nil, NewSyntaxError(ast.Point(p.index), "Expected expr")
	}

	switch b := p.peek(); {
	case isLetter(b):
		return p.parseVar()
	case isDigit(b):
		return p.parseIndex()
	case b == '(':
		return p.parseParen()
	case b == '[':
		return p.parseLambda()
	case b == ')':
		return nil, NewSyntaxError(ast.Point(p.index), "Unmatched ')'")
	default:
		return nil, NewSyntaxError(ast.Point(p.index), "Expected expr")
	}
}

func (p *Parser) parseVar() (ast.Expr, error) {
	start := p.index
	p.index++

	for !p.atEOF() && isAlnum(p.peek()) {
		p.index++
	}

	run := p.text[start:p.index]
	if len(run) > 1 {
		return nil, NewSyntaxError(ast.Point(start), "Multi-byte varnames aren't allowed.  '"+truncateName(run)+"'")
	}

	return &ast.Var{Name: run[0], Sp: ast.NewSpan(start, p.index)}, nil
}

// truncateName implements the one concrete oracle available (`var` ->
// `var...`): a captured run of 3 or more bytes is shown as its first 3
// bytes plus an ellipsis; a run of exactly 2 bytes (the minimum that can
// trigger this error) is shown in full.
func truncateName(run []byte) string {
	if len(run) >= 3 {
		return string(run[:3]) + "..."
	}

	return string(run)
}

func (p *Parser) parseIndex() (ast.Expr, error) {
	start := p.index

	for !p.atEOF() && isDigit(p.peek()) {
		p.index++
	}

	run := p.text[start:p.index]
	if len(run) > 1 {
		return nil, NewSyntaxError(ast.Point(start), "Multi-digit nums aren't allowed.  '"+string(run)+"'")
	}

	if run[0] == '0' {
		return nil, NewSyntaxError(ast.Point(start), "0 is an invalid debrujin index")
	}

	return &ast.BoundVar{Index: int(run[0] - '0'), Sp: ast.NewSpan(start, p.index)}, nil
}

func (p *Parser) parseParen() (ast.Expr, error) {
	open := p.index
	p.index++ // consume '('

	inner, err := p.parseRequiredExpr()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.atEOF() || p.peek() != ')' {
		return nil, NewSyntaxError(ast.Point(open), "Unmatched '('")
	}

	p.index++ // consume ')'

	return inner, nil
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	open := p.index
	p.index++ // consume '['

	param, hasParam, err := p.parseLambdaHeader(open)
	if err != nil {
		return nil, err
	}

	bodyPinned := p.index
	p.skipSpace()

	if p.atEOF() || !canStartAtom(p.peek()) {
		return nil, NewSyntaxError(ast.Point(bodyPinned), "Expected lambda body")
	}

	body, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	return &ast.NamedLam{
		Param:    param,
		HasParam: hasParam,
		Body:     body,
		Sp:       ast.NewSpan(open, body.Span().End),
	}, nil
}

// parseLambdaHeader scans the optional single-letter parameter and the
// closing ']'. On mismatch it reports the bytes captured between the
// opening '[' and the offending byte (inclusive), anchored at '['.
func (p *Parser) parseLambdaHeader(open int) (param byte, hasParam bool, err error) {
	if p.atEOF() {
		return 0, false, NewSyntaxError(ast.Point(open), "Lambda '"+string(p.text[open:p.index])+"' doesn't end in ']'")
	}

	if p.peek() == ']' {
		p.index++
		return 0, false, nil
	}

	if isLetter(p.peek()) {
		param = p.peek()
		p.index++

		if !p.atEOF() && p.peek() == ']' {
			p.index++
			return param, true, nil
		}
	}

	if !p.atEOF() {
		p.index++
	}

	return 0, false, NewSyntaxError(ast.Point(open), "Lambda '"+string(p.text[open:p.index])+"' doesn't end in ']'")
}
