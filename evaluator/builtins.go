package evaluator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/substrate-cosmos/monkey-interpter/object"
)

// output is where the `puts` built-in writes. It defaults to os.Stdout but
// can be redirected with SetOutput, which keeps the evaluator testable
// without capturing the real stdout.
var output io.Writer = os.Stdout

// SetOutput redirects the built-in registry's output stream (used by `puts`).
func SetOutput(w io.Writer) {
	output = w
}

var builtins = map[string]*object.Builtin{
	"len": {
		Fn: func(args ...object.Object) object.Object {
			// Error checking that makes sure that we can't call this function
			// with the wrong number of arguments.
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1",
					len(args))
			}

			switch arg := args[0].(type) {
			case *object.String:
				return &object.Integer{Value: int64(len(arg.Value))}
			default:
				// Error checking that makes sure that we can't call this
				// function with an argument of an unsupported type.
				return newError("argument to `len` not supported, got %s",
					args[0].Type())
			}
		},
	},
	"puts": {
		Fn: func(args ...object.Object) object.Object {
			// Variadic by design: a script calling puts with zero, one, or
			// five arguments is not a misuse worth an arity error.
			for _, arg := range args {
				fmt.Fprintln(output, arg.Inspect())
			}
			return NULL
		},
	},
	"type": {
		Fn: func(args ...object.Object) object.Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1",
					len(args))
			}
			return &object.String{Value: strings.ToUpper(string(args[0].Type()))}
		},
	},
}
