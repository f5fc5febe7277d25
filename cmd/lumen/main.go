// Command lumen is the interpreter's command-line entry point: an
// interactive REPL by default, or a one-shot script/expression runner via
// its subcommands and flags.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/substrate-cosmos/monkey-interpter/evaluator"
	"github.com/substrate-cosmos/monkey-interpter/lexer"
	"github.com/substrate-cosmos/monkey-interpter/object"
	"github.com/substrate-cosmos/monkey-interpter/parser"
	"github.com/substrate-cosmos/monkey-interpter/repl"
)

var (
	debug       bool
	noColor     bool
	traceParser bool
	evalSrc     string

	log = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lumen",
		Short: "Lumen is a small expression-oriented scripting language",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging()

			if evalSrc != "" {
				return runSource(os.Stdout, evalSrc)
			}
			return repl.Start(os.Stdout, repl.Options{NoColor: noColor})
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&traceParser, "trace-parser", false, "print a BEGIN/END trace of the Pratt parser's recursive descent")
	root.Flags().StringVarP(&evalSrc, "eval", "e", "", "evaluate the given source and exit")

	root.AddCommand(newRunCmd())
	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging()
			return repl.Start(os.Stdout, repl.Options{NoColor: noColor})
		},
	})

	return root
}

func newRunCmd() *cobra.Command {
	var runEvalSrc string

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Evaluate a Lumen source file, or source passed via -e",
		Args: func(cmd *cobra.Command, args []string) error {
			if runEvalSrc != "" {
				return cobra.ExactArgs(0)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging()

			if runEvalSrc != "" {
				return runSource(os.Stdout, runEvalSrc)
			}

			path := args[0]
			src, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return errors.Wrapf(err, "file not found: %s", path)
				}
				if os.IsPermission(err) {
					return errors.Wrapf(err, "permission denied: %s", path)
				}
				return errors.Wrapf(err, "read error: %s", path)
			}

			return runSource(os.Stdout, string(src))
		},
	}

	cmd.Flags().StringVarP(&runEvalSrc, "eval", "e", "", "evaluate the given source and exit")

	return cmd
}

// runSource lexes, parses, and evaluates src as a whole program against a
// fresh environment, writing the result to out. Parse errors are logged and
// reported as a returned error.
func runSource(out io.Writer, src string) error {
	l := lexer.New(src)
	p := parser.New(l)

	program := p.ParseProgram()
	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			log.Error(msg)
		}
		return errors.New("parsing failed")
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return nil
	}

	fmt.Fprintln(out, result.Inspect())
	if result.Type() == object.ERROR_OBJ {
		return errors.Errorf("evaluation failed: %s", result.Inspect())
	}
	return nil
}

func configureLogging() {
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	parser.Tracing = traceParser
}
