package barebones

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	lex = lexer.MustSimple([]lexer.Rule{
		{Name: "Semi", Pattern: `;`, Action: nil},
		{Name: "Whitespace", Pattern: `[\s\v]+`, Action: nil},
		{Name: "Word", Pattern: `[^\s\v;]+`, Action: nil},
	})
	symbols = lex.Symbols()
)

// Fragment is the text between two `;` delimiters
type Fragment struct {
	Pos lexer.Position

	// 1-based statement number, used in error messages
	Line  int
	Text  string
	Words []string
}

func (fragment Fragment) Empty() bool {
	return len(fragment.Words) == 0
}

func (fragment Fragment) String() string {
	return fragment.Text
}

// Sequence is the ordered list of statements in a program.
// It is never mutated after Split returns it
type Sequence []Fragment

// Split lexes source and cuts it into `;` delimited fragments, then splits
// each fragment into words with Fields. Empty fragments between delimiters keep
// their statement number; a trailing fragment after the last delimiter is kept
// only if it has words
func Split(filename string, source string) (Sequence, error) {
	tokens, err := tokenize(filename, source)
	if err != nil {
		return nil, err
	}

	seq := make(Sequence, 0)
	current := Fragment{Line: 1}
	var text strings.Builder
	started := false
	finish := func() error {
		words, err := Fields(text.String())
		if err != nil {
			return err
		}
		current.Text = strings.TrimSpace(text.String())
		current.Words = words
		text.Reset()
		started = false
		return nil
	}
	for _, token := range tokens {
		switch token.Type {
		case symbols["Semi"]:
			if !started {
				current.Pos = token.Pos
			}
			if err := finish(); err != nil {
				return nil, err
			}
			seq = append(seq, current)
			current = Fragment{Line: current.Line + 1}
		case symbols["Word"]:
			if !started {
				current.Pos = token.Pos
				started = true
			}
			text.WriteString(token.Value)
		default:
			text.WriteString(token.Value)
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	if !current.Empty() {
		seq = append(seq, current)
	}
	return seq, nil
}

// Fields splits a single statement into its words
func Fields(statement string) ([]string, error) {
	tokens, err := tokenize("", statement)
	if err != nil {
		return nil, err
	}
	words := make([]string, 0)
	for _, token := range tokens {
		if token.Type == symbols["Word"] {
			words = append(words, token.Value)
		}
	}
	return words, nil
}

func tokenize(filename string, source string) ([]lexer.Token, error) {
	l, err := lex.Lex(filename, strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(l)
	if err != nil {
		return nil, err
	}
	for i, token := range tokens {
		if token.EOF() {
			return tokens[:i], nil
		}
	}
	return tokens, nil
}
