package barebones

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

const VERSION = 0.1

type Option func(*config)

type config struct {
	logger zerolog.Logger
}

// WithLogger traces every executed statement and loop iteration at trace level
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func ReadProgram(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Interpret parses source once and runs it against an empty store. The first
// faulty statement reached stops the run, and the store is returned as it was
// at that point
func Interpret(source string, options ...Option) (Store, error) {
	return interpret("", source, options...)
}

// RunProgram is Interpret with filename:line:column prefixed to any error
func RunProgram(filename string, source string, options ...Option) (Store, error) {
	store, err := interpret(filename, source, options...)
	if err == nil {
		return store, nil
	}
	var bbErr Error
	if errors.As(err, &bbErr) {
		pos := bbErr.Pos()
		return store, fmt.Errorf("%v:%d:%d: %w", filename, pos.Line, pos.Column, err)
	}
	return store, fmt.Errorf("%v: %w", filename, err)
}

func interpret(filename string, source string, options ...Option) (Store, error) {
	c := config{logger: zerolog.Nop()}
	for _, option := range options {
		option(&c)
	}

	program, err := GenerateAST(filename, source)
	if err != nil {
		return NewStore(), err
	}

	session := NewSession(c.logger)
	if err := program.Eval(session); err != nil {
		return session.Store(), err
	}
	return session.Store(), nil
}
