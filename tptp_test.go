package tptp_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoprover/go-tptp"
)

func TestParseProblemFromReader(t *testing.T) {
	t.Parallel()
	prob, err := tptp.ParseProblem(strings.NewReader(`fof(ax1, axiom, p(a)).`), "ax.p")
	require.NoError(t, err)
	require.Len(t, prob.Formulas, 1)
	assert.Equal(t, "ax1", prob.Formulas[0].FormulaName())
}

func TestParseAnnotatedFromReader(t *testing.T) {
	t.Parallel()
	af, err := tptp.ParseAnnotated(strings.NewReader(`cnf(c1, axiom, p(X) | ~q(X)).`), "c.p")
	require.NoError(t, err)
	assert.Equal(t, "cnf", af.Dialect())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseProblemWrapsReadErrorWithFilename(t *testing.T) {
	t.Parallel()
	_, err := tptp.ParseProblem(errReader{}, "broken.p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.p")
	assert.Contains(t, err.Error(), "boom")
}
