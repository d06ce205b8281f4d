package barebones

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Error is implemented by every failure the interpreter reports.
// Line is the 1-based statement number where it was detected, Pos the
// source position of that statement
type Error interface {
	error
	Line() int
	Pos() lexer.Position
}

type fault struct {
	line int
	pos  lexer.Position
}

func at(fragment Fragment) fault {
	return fault{line: fragment.Line, pos: fragment.Pos}
}

func (f fault) Line() int {
	return f.line
}

func (f fault) Pos() lexer.Position {
	return f.pos
}

// A statement has a keyword but nothing after it, or a while clause stops short
type SyntaxError struct {
	fault
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error on line: %d", e.line)
}

type UnexpectedTokenError struct {
	fault
	Token string
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token on line %d: %s", e.line, e.Token)
}

// A keyword or reserved word used where a variable name belongs
type ReservedTokenError struct {
	fault
	Token string
}

func (e ReservedTokenError) Error() string {
	return fmt.Sprintf("Reserved token used as variable name on line %d: %s", e.line, e.Token)
}

// A variable read by incr, decr or while before any clear
type UndefinedVariableError struct {
	fault
	Token string
}

func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable on line %d: %s", e.line, e.Token)
}

// A while whose body runs off the end of the program. Line is the while itself
type UnterminatedLoopError struct {
	fault
}

func (e UnterminatedLoopError) Error() string {
	return fmt.Sprintf("Reached end of file before while loop finished (while on line %d)", e.line)
}
