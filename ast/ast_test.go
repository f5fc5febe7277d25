package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrate-cosmos/monkey-interpter/token"
)

func TestString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	require.Equal(t, "let myVar = anotherVar;", program.String())
}

func TestFunctionLiteralString(t *testing.T) {
	fn := &FunctionLiteral{
		Token: token.Token{Type: token.FUNCTION, Literal: "fn"},
		Parameters: []*Identifier{
			{Token: token.Token{Type: token.IDENT, Literal: "x"}, Value: "x"},
		},
		Body: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ExpressionStatement{
					Token: token.Token{Type: token.IDENT, Literal: "x"},
					Expression: &Identifier{
						Token: token.Token{Type: token.IDENT, Literal: "x"},
						Value: "x",
					},
				},
			},
		},
	}

	require.Equal(t, "fn(x) x", fn.String())
}
