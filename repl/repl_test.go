package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunEvaluatesEachLine(t *testing.T) {
	in := strings.NewReader("let a = 5;\na + 1;\n")
	var out bytes.Buffer

	err := Run(in, &out, Options{NoColor: true})
	require.NoError(t, err)
	require.Contains(t, out.String(), "6")
}

func TestRunReportsParseErrors(t *testing.T) {
	in := strings.NewReader("let x 5;\n")
	var out bytes.Buffer

	err := Run(in, &out, Options{NoColor: true})
	require.NoError(t, err)
	require.Contains(t, out.String(), "parser errors")
}

func TestRunPersistsEnvironmentAcrossLines(t *testing.T) {
	in := strings.NewReader("let add = fn(x, y) { x + y };\nadd(2, 3);\n")
	var out bytes.Buffer

	err := Run(in, &out, Options{NoColor: true})
	require.NoError(t, err)
	require.Contains(t, out.String(), "5")
}
