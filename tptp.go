// Package tptp parses TPTP problem files and individual annotated
// formulas across all six TPTP dialects (THF, TFF, FOF, TCF, CNF, TPI)
// plus the NXF/NHF non-classical extensions embedded in THF and TFF.
//
// The root package exposes the two whole-document entry points;
// per-dialect entry points for bare formulas and single annotated
// formulas live in the parser subpackage.
package tptp

import (
	"fmt"
	"io"

	"github.com/leoprover/go-tptp/ast"
	"github.com/leoprover/go-tptp/parser"
)

// ParseProblem reads and parses a whole TPTP file from r. filename is used
// only to annotate I/O errors; it never appears in the resulting AST.
func ParseProblem(r io.Reader, filename string) (*ast.Problem, error) {
	src, err := readAll(r, filename)
	if err != nil {
		return nil, err
	}
	return parser.ParseProblem(src)
}

// ParseAnnotated reads and parses a single annotated formula of any
// dialect, dispatching on its leading keyword.
func ParseAnnotated(r io.Reader, filename string) (ast.AnnotatedFormula, error) {
	src, err := readAll(r, filename)
	if err != nil {
		return nil, err
	}
	return parser.ParseAnnotated(src)
}

func readAll(r io.Reader, filename string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("tptp: reading %s: %w", filename, err)
	}
	return string(b), nil
}
