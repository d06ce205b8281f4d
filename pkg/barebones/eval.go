package barebones

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/rs/zerolog"
)

// Session is one interpretation run. It owns the variable store and the
// current statement number; nothing is shared between sessions
type Session struct {
	store  Store
	line   int
	logger zerolog.Logger
}

func NewSession(logger zerolog.Logger) *Session {
	return &Session{
		store:  NewStore(),
		line:   1,
		logger: logger,
	}
}

func (session *Session) Store() Store {
	return session.store
}

// Line is the statement currently (or last) executed
func (session *Session) Line() int {
	return session.line
}

func (session *Session) enter(statement Statement) {
	session.line = statement.Line()
	session.logger.Trace().
		Int("line", session.line).
		Str("statement", statement.String()).
		Interface("store", session.store).
		Msg("exec")
}

func (program Program) String() string {
	s := ""
	for _, statement := range program.Statements {
		s += statement.String() + ";\n"
	}
	return s
}

func (program Program) Eval(session *Session) error {
	return evalBlock(session, program.Statements)
}

func evalBlock(session *Session, statements []Statement) error {
	for _, statement := range statements {
		if err := statement.Eval(session); err != nil {
			return err
		}
	}
	return nil
}

func (clearStatement ClearStatement) Eval(session *Session) error {
	session.enter(clearStatement)
	session.store.Clear(clearStatement.Ident)
	return nil
}

func (incrStatement IncrStatement) Eval(session *Session) error {
	session.enter(incrStatement)
	if !session.store.Add(incrStatement.Ident, 1) {
		return undefined(incrStatement.line, incrStatement.Pos, incrStatement.Ident)
	}
	return nil
}

func (decrStatement DecrStatement) Eval(session *Session) error {
	session.enter(decrStatement)
	if !session.store.Add(decrStatement.Ident, -1) {
		return undefined(decrStatement.line, decrStatement.Pos, decrStatement.Ident)
	}
	return nil
}

func (badStatement BadStatement) Eval(session *Session) error {
	session.enter(badStatement)
	return badStatement.Fault
}

// Eval runs the body until the loop variable is zero at the top of an
// iteration. There is no iteration limit
func (whileStatement WhileStatement) Eval(session *Session) error {
	session.enter(whileStatement)
	if whileStatement.operandFault != nil {
		return whileStatement.operandFault
	}
	if !session.store.Has(whileStatement.Ident) {
		return undefined(whileStatement.line, whileStatement.Pos, whileStatement.Ident)
	}
	if whileStatement.clauseFault != nil {
		return whileStatement.clauseFault
	}
	if !whileStatement.closed {
		return UnterminatedLoopError{fault{line: whileStatement.line, pos: whileStatement.Pos}}
	}

	start := whileStatement.line + 1
	if len(whileStatement.Body) > 0 {
		start = whileStatement.Body[0].Line()
	}
	for {
		value, _ := session.store.Get(whileStatement.Ident)
		if value == 0 {
			return nil
		}
		session.line = start
		session.logger.Trace().
			Int("line", whileStatement.line).
			Str("variable", whileStatement.Ident).
			Int("value", value).
			Msg("looping")
		if err := evalBlock(session, whileStatement.Body); err != nil {
			return err
		}
	}
}

func undefined(line int, pos lexer.Position, name string) error {
	return UndefinedVariableError{fault{line: line, pos: pos}, name}
}
