package report_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/report"
	"github.com/katalvlaran/lvflow/residual"
)

func TestWriteFlowRow(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteFlowRow(&buf, report.FlowRow{
		Size:            4,
		MaxFlow:         37,
		AugmentingPaths: 6,
		Elapsed:         1234567 * time.Nanosecond,
	})
	require.NoError(t, err)
	assert.Equal(t, "4,37,6,1.234\n", buf.String())
}

func TestWriteMatchingRow(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteMatchingRow(&buf, report.MatchingRow{
		Size:            3,
		Degree:          2,
		MaxFlow:         8,
		AugmentingPaths: 8,
		Matchings:       8,
		Elapsed:         2 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.Equal(t, "3,2,8,8,8,2.000\n", buf.String())
}

func TestAppendRowAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	row := report.FlowRow{Size: 1, MaxFlow: 2, AugmentingPaths: 1}

	for i := 0; i < 2; i++ {
		require.NoError(t, report.AppendRow(path, func(w io.Writer) error {
			return report.WriteFlowRow(w, row)
		}))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1,2,1,0.000\n1,2,1,0.000\n", string(data))
}

func TestAppendRowPropagatesWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	boom := errors.New("boom")

	err := report.AppendRow(path, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestAppendRowBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")
	err := report.AppendRow(path, func(io.Writer) error { return nil })
	require.Error(t, err)
}

func TestWriteJuMPModel(t *testing.T) {
	n := residual.New(3)
	require.NoError(t, n.AddEdgePair(0, 1, 4, 0))
	require.NoError(t, n.AddEdgePair(1, 2, 2, 0))

	var buf bytes.Buffer
	require.NoError(t, report.WriteJuMPModel(&buf, n, false))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "import LinearAlgebra\nusing JuMP\nusing GLPK\n"))
	assert.Contains(t, out, "n = 3\n")
	assert.Contains(t, out, "@variable(model, x[1:3, 1:3] >= 0, Int)\n")
	assert.Contains(t, out, "\tx[1, 2] <= 4\n")
	assert.Contains(t, out, "\tx[2, 1] <= 0\n", "reverse halves are constrained too")
	assert.Contains(t, out, "\tx[2, 3] <= 2\n")
	assert.Contains(t, out, "\tx[1, 3] == 0\n")
	assert.Contains(t, out, "\tx[1, 1] == 0\n")
	assert.NotContains(t, out, "\tx[1, 2] == 0\n")
	assert.Contains(t, out, "@constraint(model, [u = 2:2], sum(x[u, :]) == sum(x[:, u]))\n")
	assert.Contains(t, out, "@constraint(model, sum(x[1, :]) == sum(x[:, 3]))\n")
	assert.Contains(t, out, "@objective(model, Max, sum(x[1, :]))\n")
	assert.NotContains(t, out, "matchings")
}

func TestWriteJuMPModelWithMatchings(t *testing.T) {
	n := residual.New(4)
	require.NoError(t, n.AddEdgePair(0, 1, 1, 0))
	require.NoError(t, n.AddEdgePair(1, 2, 1, 0))
	require.NoError(t, n.AddEdgePair(2, 3, 1, 0))

	var buf bytes.Buffer
	require.NoError(t, report.WriteJuMPModel(&buf, n, true))
	out := buf.String()

	assert.Contains(t, out, "matchings = Vector{Pair}()\n")
	assert.Contains(t, out, "for u in 2:3\n")
	assert.Contains(t, out, "\tfor v in (u + 1):3\n")
	assert.Contains(t, out, `println("maximum matching = ", length(matchings))`)
}
