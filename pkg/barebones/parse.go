package barebones

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

const (
	keywordClear = "clear"
	keywordIncr  = "incr"
	keywordDecr  = "decr"
	keywordWhile = "while"
	keywordEnd   = "end"

	reservedNot = "not"
	reservedDo  = "do"
	literalZero = "0"
)

var (
	keywords = map[string]bool{
		keywordClear: true,
		keywordIncr:  true,
		keywordDecr:  true,
		keywordWhile: true,
		keywordEnd:   true,
	}
	reservedWords = map[string]bool{
		reservedNot: true,
		reservedDo:  true,
	}
)

// IsReserved reports whether word can never be used as a variable name
func IsReserved(word string) bool {
	return keywords[word] || reservedWords[word]
}

type Program struct {
	Statements []Statement
}

type Statement interface {
	String() string
	Line() int
	Eval(session *Session) error
}

type ClearStatement struct {
	Pos  lexer.Position
	line int

	Ident string
}

type IncrStatement struct {
	Pos  lexer.Position
	line int

	Ident string
}

type DecrStatement struct {
	Pos  lexer.Position
	line int

	Ident string
}

type WhileStatement struct {
	Pos  lexer.Position
	line int

	Ident string
	Body  []Statement

	// faults found while parsing, reported when the while runs. operandFault
	// comes before the undefined variable check, the rest after it
	operandFault error
	clauseFault  error
	closed       bool
}

// BadStatement is a statement that failed to parse. Running it returns Fault
type BadStatement struct {
	Pos  lexer.Position
	line int

	Text  string
	Fault error
}

func (clearStatement ClearStatement) Line() int { return clearStatement.line }
func (incrStatement IncrStatement) Line() int   { return incrStatement.line }
func (decrStatement DecrStatement) Line() int   { return decrStatement.line }
func (whileStatement WhileStatement) Line() int { return whileStatement.line }
func (badStatement BadStatement) Line() int     { return badStatement.line }

func (clearStatement ClearStatement) String() string {
	return keywordClear + " " + clearStatement.Ident
}

func (incrStatement IncrStatement) String() string {
	return keywordIncr + " " + incrStatement.Ident
}

func (decrStatement DecrStatement) String() string {
	return keywordDecr + " " + decrStatement.Ident
}

func (whileStatement WhileStatement) String() string {
	return keywordWhile + " " + whileStatement.Ident + " " + reservedNot + " " + literalZero + " " + reservedDo
}

func (badStatement BadStatement) String() string {
	return badStatement.Text
}

// Parser turns a statement Sequence into a tree. Each while owns its body.
// Faults never stop the parse: they are kept in the tree and only reported
// when the faulty statement is reached at run time
type Parser struct {
	seq   Sequence
	index int

	// words left over after `do`, read before the next fragment
	pending *Fragment
}

func NewParser(seq Sequence) Parser {
	return Parser{seq: seq}
}

func Parse(seq Sequence) *Program {
	parser := NewParser(seq)
	return parser.ParseProgram()
}

func GenerateAST(filename string, source string) (*Program, error) {
	seq, err := Split(filename, source)
	if err != nil {
		return nil, err
	}
	return Parse(seq), nil
}

func (p *Parser) ParseProgram() *Program {
	statements := make([]Statement, 0)
	for {
		block, closer := p.parseStatements()
		statements = append(statements, block...)
		if closer == nil {
			break
		}
		// end with nothing open reads as a keyword missing its operand
		statements = append(statements, bad(*closer, SyntaxError{at(*closer)}))
	}
	return &Program{Statements: statements}
}

func bad(fragment Fragment, err error) BadStatement {
	return BadStatement{Pos: fragment.Pos, line: fragment.Line, Text: fragment.String(), Fault: err}
}

// parseStatements reads until the sequence runs out or a bare `end` is found.
// The `end` fragment is returned so the caller can tell the two apart
func (p *Parser) parseStatements() ([]Statement, *Fragment) {
	statements := make([]Statement, 0)
	for !p.done() {
		fragment := p.advance()
		if fragment.Empty() {
			continue
		}
		if fragment.Words[0] == keywordEnd && len(fragment.Words) == 1 {
			return statements, &fragment
		}
		statements = append(statements, p.parseStatement(fragment))
	}
	return statements, nil
}

// parseStatement checks a fragment in a fixed order so an earlier fault is
// never hidden by a later one. Any statement starting with while opens a block
func (p *Parser) parseStatement(fragment Fragment) Statement {
	words := fragment.Words
	keyword := words[0]
	if !keywords[keyword] {
		return bad(fragment, UnexpectedTokenError{at(fragment), keyword})
	}
	if keyword == keywordWhile {
		return p.parseWhile(fragment)
	}
	if len(words) < 2 {
		return bad(fragment, SyntaxError{at(fragment)})
	}
	operand := words[1]
	if IsReserved(operand) {
		return bad(fragment, ReservedTokenError{at(fragment), operand})
	}
	// trailing words are reported against the operand
	if len(words) > 2 {
		return bad(fragment, UnexpectedTokenError{at(fragment), operand})
	}

	switch keyword {
	case keywordClear:
		return ClearStatement{Pos: fragment.Pos, line: fragment.Line, Ident: operand}
	case keywordIncr:
		return IncrStatement{Pos: fragment.Pos, line: fragment.Line, Ident: operand}
	case keywordDecr:
		return DecrStatement{Pos: fragment.Pos, line: fragment.Line, Ident: operand}
	}
	// `end x`
	return bad(fragment, UnexpectedTokenError{at(fragment), operand})
}

// parseWhile checks the `not 0 do` clause and reads the body up to the
// matching `end`. Words after `do` in the same fragment begin the body
func (p *Parser) parseWhile(fragment Fragment) Statement {
	words := fragment.Words
	whileStatement := WhileStatement{Pos: fragment.Pos, line: fragment.Line}
	switch {
	case len(words) < 2:
		whileStatement.operandFault = SyntaxError{at(fragment)}
	case IsReserved(words[1]):
		whileStatement.operandFault = ReservedTokenError{at(fragment), words[1]}
	default:
		whileStatement.Ident = words[1]
		whileStatement.clauseFault = checkClause(fragment)
	}
	if whileStatement.operandFault == nil && whileStatement.clauseFault == nil && len(words) > 5 {
		p.pending = &Fragment{Pos: fragment.Pos, Line: fragment.Line, Text: strings.Join(words[5:], " "), Words: words[5:]}
	}

	body, closer := p.parseStatements()
	whileStatement.Body = body
	whileStatement.closed = closer != nil
	return whileStatement
}

func checkClause(fragment Fragment) error {
	words := fragment.Words
	for i, expected := range []string{reservedNot, literalZero, reservedDo} {
		position := i + 2
		if position >= len(words) {
			return SyntaxError{at(fragment)}
		}
		if words[position] != expected {
			return UnexpectedTokenError{at(fragment), words[position]}
		}
	}
	return nil
}

func (p *Parser) done() bool {
	return p.pending == nil && p.index >= len(p.seq)
}

func (p *Parser) advance() Fragment {
	if p.pending != nil {
		fragment := *p.pending
		p.pending = nil
		return fragment
	}
	fragment := p.seq[p.index]
	p.index++
	return fragment
}
