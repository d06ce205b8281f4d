package barebones_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healeycodes/barebones/pkg/barebones"
)

func TestGenerateAST(t *testing.T) {
	program, err := barebones.GenerateAST("<test>", "clear x; incr x; decr x; while x not 0 do; incr x; end;")
	require.NoError(t, err)
	require.Len(t, program.Statements, 4)

	assert.IsType(t, barebones.ClearStatement{}, program.Statements[0])
	assert.IsType(t, barebones.IncrStatement{}, program.Statements[1])
	assert.IsType(t, barebones.DecrStatement{}, program.Statements[2])
	require.IsType(t, barebones.WhileStatement{}, program.Statements[3])

	loop := program.Statements[3].(barebones.WhileStatement)
	assert.Equal(t, "x", loop.Ident)
	assert.Equal(t, 4, loop.Line())
	require.Len(t, loop.Body, 1)
	assert.Equal(t, "incr x", loop.Body[0].String())
	assert.Equal(t, 5, loop.Body[0].Line())
}

func TestGenerateAST_NestedLoops(t *testing.T) {
	source := "clear x; while x not 0 do while y not 0 do decr y; end; decr x; end; clear z;"
	program, err := barebones.GenerateAST("<test>", source)
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	outer := program.Statements[1].(barebones.WhileStatement)
	require.Len(t, outer.Body, 2)
	inner := outer.Body[0].(barebones.WhileStatement)
	assert.Equal(t, "y", inner.Ident)
	assert.Equal(t, 2, inner.Line())
	require.Len(t, inner.Body, 1)
	assert.Equal(t, "decr y", inner.Body[0].String())
	assert.Equal(t, "decr x", outer.Body[1].String())
	assert.Equal(t, "clear z", program.Statements[2].String())
}

func TestGenerateAST_EmptyBody(t *testing.T) {
	for _, source := range []string{
		"clear x; while x not 0 do end;",
		"clear x; while x not 0 do; end;",
		"clear x; while x not 0 do;;; end",
	} {
		t.Logf("running test '%s'", source)
		program, err := barebones.GenerateAST("<test>", source)
		require.NoError(t, err)
		require.Len(t, program.Statements, 2)
		assert.Empty(t, program.Statements[1].(barebones.WhileStatement).Body)
	}
}

func TestIsReserved(t *testing.T) {
	for _, word := range []string{"clear", "incr", "decr", "while", "end", "not", "do"} {
		assert.True(t, barebones.IsReserved(word), word)
	}
	for _, word := range []string{"x", "0", "Clear", "ends", "done"} {
		assert.False(t, barebones.IsReserved(word), word)
	}
}

func TestGenerateAST_FaultsAreDeferred(t *testing.T) {
	program, err := barebones.GenerateAST("<test>", "clear x; bogus; clear do; while x not 1 do; end; end;")
	require.NoError(t, err)
	require.Len(t, program.Statements, 5)

	assert.IsType(t, barebones.ClearStatement{}, program.Statements[0])
	require.IsType(t, barebones.BadStatement{}, program.Statements[1])
	assertErrorKind(t, program.Statements[1].(barebones.BadStatement).Fault, "unexpected", 2, "bogus")
	require.IsType(t, barebones.BadStatement{}, program.Statements[2])
	assertErrorKind(t, program.Statements[2].(barebones.BadStatement).Fault, "reserved", 3, "do")

	loop := program.Statements[3].(barebones.WhileStatement)
	assert.Equal(t, "x", loop.Ident)
	assert.Empty(t, loop.Body)

	stray := program.Statements[4].(barebones.BadStatement)
	assert.Equal(t, "end", stray.String())
	assertErrorKind(t, stray.Fault, "syntax", 6, "")
}

// kind is the error type name, token is empty when the error carries none
func assertErrorKind(t *testing.T, err error, kind string, line int, token string) {
	t.Helper()
	require.Error(t, err)
	var bbErr barebones.Error
	require.True(t, errors.As(err, &bbErr), "%v is not a barebones.Error", err)
	assert.Equal(t, line, bbErr.Line(), err.Error())

	switch kind {
	case "syntax":
		var e barebones.SyntaxError
		assert.True(t, errors.As(err, &e), err.Error())
	case "unexpected":
		var e barebones.UnexpectedTokenError
		if assert.True(t, errors.As(err, &e), err.Error()) {
			assert.Equal(t, token, e.Token)
		}
	case "reserved":
		var e barebones.ReservedTokenError
		if assert.True(t, errors.As(err, &e), err.Error()) {
			assert.Equal(t, token, e.Token)
		}
	case "undefined":
		var e barebones.UndefinedVariableError
		if assert.True(t, errors.As(err, &e), err.Error()) {
			assert.Equal(t, token, e.Token)
		}
	case "unterminated":
		var e barebones.UnterminatedLoopError
		assert.True(t, errors.As(err, &e), err.Error())
	default:
		t.Fatalf("unknown error kind %s", kind)
	}
}
