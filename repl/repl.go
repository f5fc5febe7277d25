// Package repl implements the Read-Eval-Print-Loop (REPL), the interactive
// console that lexes, parses, and evaluates each line of input against a
// persistent environment.
package repl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/substrate-cosmos/monkey-interpter/evaluator"
	"github.com/substrate-cosmos/monkey-interpter/lexer"
	"github.com/substrate-cosmos/monkey-interpter/object"
	"github.com/substrate-cosmos/monkey-interpter/parser"
)

// PROMPT is the REPL prompt displayed for each input.
const PROMPT = ">> "

// FACE is printed whenever a line fails to parse. Kept as a bit of levity
// from this interpreter's lineage; renamed to fit Lumen.
const FACE = `            __,__
   .--.  .-"     "-.  .--.
  / .. \/  .-. .-.  \/ .. \
 | |  '|  /   Y   \  |'  | |
 | \   \  \ 0 | 0 /  /   / |
  \ '- ,\.-"""""""-./, -' /
   ''-' /_   ^ ^   _\ '-''
       |  \._   _./  |
       \   \ '~' /   /
        '._ '-=-' _.'
           '-----'
`

// Options configures a REPL session.
type Options struct {
	// NoColor disables fatih/color styling of the prompt and error output.
	NoColor bool
}

// Run drives the REPL loop by reading lines from in and writing prompts and
// results to out, until in is exhausted (EOF) or a read error occurs. This
// is the form used by tests and by any caller piping a script through
// stdin — it makes no assumption that in/out are an interactive terminal.
func Run(in io.Reader, out io.Writer, opts Options) error {
	scanner := bufio.NewScanner(in)
	env := object.NewEnvironment()

	prompt := PROMPT
	if !opts.NoColor {
		prompt = color.CyanString(PROMPT)
	}

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		evalLine(line, env, out, opts)
	}
}

// Start drives an interactive REPL session using readline for history and
// line-editing. It is the entry point cmd/lumen wires to `lumen repl`.
func Start(out io.Writer, opts Options) error {
	prompt := PROMPT
	if !opts.NoColor {
		prompt = color.CyanString(PROMPT)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		evalLine(line, env, out, opts)
	}
}

// evalLine lexes, parses, and evaluates a single line of input against env,
// writing either the parse errors or the evaluated value's inspect form to
// out.
func evalLine(line string, env *object.Environment, out io.Writer, opts Options) {
	l := lexer.New(line)
	p := parser.New(l)

	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		printParseErrors(out, p.Errors(), opts)
		return
	}

	evaluated := evaluator.Eval(program, env)
	if evaluated == nil {
		return
	}

	text := evaluated.Inspect()
	if !opts.NoColor && evaluated.Type() == object.ERROR_OBJ {
		text = color.RedString(text)
	}
	fmt.Fprintln(out, text)
}

// printParseErrors reports the parser's accumulated errors to out.
func printParseErrors(out io.Writer, errors []string, opts Options) {
	banner := FACE + "Woops! We ran into a parsing problem here!\nparser errors:\n"
	if !opts.NoColor {
		banner = color.RedString(banner)
	}
	io.WriteString(out, banner)
	for _, msg := range errors {
		io.WriteString(out, "\t"+msg+"\n")
	}
}
