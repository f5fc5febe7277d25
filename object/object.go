package object

// Package object implements the object system (or value system) of Lumen,
// used both to represent values as the evaluator encounters and constructs
// them and to let the user interact with values (their Inspect form).

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/substrate-cosmos/monkey-interpter/ast"
)

const (
	// INTEGER_OBJ is the Integer object type.
	INTEGER_OBJ = "INTEGER"

	// BOOLEAN_OBJ is the Boolean object type.
	BOOLEAN_OBJ = "BOOLEAN"

	// STRING_OBJ is the String object type.
	STRING_OBJ = "STRING"

	// NULL_OBJ is the Null object type.
	NULL_OBJ = "NULL"

	// RETURN_VALUE_OBJ is the Return value object type.
	RETURN_VALUE_OBJ = "RETURN_VALUE"

	// FUNCTION_OBJ is the Function object type.
	FUNCTION_OBJ = "FUNCTION"

	// BUILTIN_OBJ is the Builtin function object type.
	BUILTIN_OBJ = "BUILTIN"

	// ERROR_OBJ is the Error object type.
	ERROR_OBJ = "ERROR"
)

// ObjectType represents the type of an object.
type ObjectType string

// Object represents a value and implementations are expected to implement
// `Type()` and `Inspect()` functions. The reason Object being an interface
// instead of struct is that every value needs a different internal
// representation and it's easier to define separate struct types than
// trying to fit integers, booleans, strings, and functions into one struct.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Integer is the integer type used to represent integer literals and holds an
// internal int64 value.
// Whenever we encounter an integer literal in the source code we first turn
// it into an ast.IntegerLiteral and then, when evaluating that AST node, we
// turn it into an object.Integer, saving the value inside our struct and
// passing around a reference to this struct.
type Integer struct {
	Value int64
}

// Type returns the type of the object.
func (i *Integer) Type() ObjectType { return INTEGER_OBJ }

// Inspect returns a stringified version of the object for debugging.
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is the boolean type and used to represent boolean literals and holds
// an internal bool value.
type Boolean struct {
	Value bool
}

// Type returns the type of the object.
func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }

// Inspect returns a stringified version of the object for debugging.
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is the string type used to represent string literals and holds an
// internal, immutable Go string.
type String struct {
	Value string
}

// Type returns the type of the object.
func (s *String) Type() ObjectType { return STRING_OBJ }

// Inspect returns the string's raw contents, unquoted.
func (s *String) Inspect() string { return s.Value }

// Null is the null type and used to represent the absence of a value.
type Null struct{}

// Type returns the type of the object.
func (n *Null) Type() ObjectType { return NULL_OBJ }

// Inspect returns a stringified version of the object for debugging.
func (n *Null) Inspect() string { return "null" }

// ReturnValue is the return value type and used to hold the value of another
// object. This is used for `return` statements and this object is tracked
// through the evaluator and when encountered stops evaluation of the
// program, or body of a function. It is an internal signal: it must never
// leak into an Environment, a Function's closure, or a function call's
// argument list.
type ReturnValue struct {
	Value Object
}

// Type returns the type of the object.
func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }

// Inspect returns a stringified version of the object for debugging.
func (rv *ReturnValue) Inspect() string { return rv.Value.Inspect() }

// Function is a closure: a parameter name list and a body block, together
// with the environment that existed at the moment the function literal was
// evaluated. Capturing Env by reference (not by copy) is what makes nested
// function literals behave as lexical closures.
type Function struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

// Type returns the type of the object.
func (f *Function) Type() ObjectType { return FUNCTION_OBJ }

// Inspect renders the function as `fn(<params>) {`, a newline, the body, a
// newline and a closing `}`.
func (f *Function) Inspect() string {
	var out bytes.Buffer

	params := make([]string, 0, len(f.Parameters))
	for _, p := range f.Parameters {
		params = append(params, p.String())
	}

	out.WriteString("fn")
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") {\n")
	out.WriteString(f.Body.String())
	out.WriteString("\n}")

	return out.String()
}

// BuiltinFunction is the native Go function signature every entry in the
// built-in registry implements.
type BuiltinFunction func(args ...Object) Object

// Builtin wraps a BuiltinFunction so it can be passed around and called
// exactly like a user-defined Function.
type Builtin struct {
	Fn BuiltinFunction
}

// Type returns the type of the object.
func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }

// Inspect returns a stringified version of the object for debugging.
func (b *Builtin) Inspect() string { return "builtin function" }

// Error is the internal control-flow signal produced whenever the evaluator
// detects a type mismatch, an unsupported operator, an unbound identifier, a
// non-callable call target, or built-in misuse. Like ReturnValue, it is
// never recovered within the evaluator — every recursive evaluation site
// checks for it and propagates it verbatim up to the caller, ultimately
// surfacing as the program's result.
type Error struct {
	Message string
}

// Type returns the type of the object.
func (e *Error) Type() ObjectType { return ERROR_OBJ }

// Inspect returns the error's message prefixed with "ERROR: ".
func (e *Error) Inspect() string { return "ERROR: " + e.Message }
