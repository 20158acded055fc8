package readfiles

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/blazek2d/types"
)

var flowFile = []byte(`# flow field
# written by the solver
#
 2 3
  density
 pressure
mach
 3 2
zone
point
 1.0 10.0 0.1
 2.0 20.0 0.2
 3.0 30.0 0.3
 4.0 40.0 0.4
 5.0 50.0 0.5
 6.0 60.0 0.6
`)

func TestParseBlazekFlow(t *testing.T) {
	{
		ff, err := ParseBlazekFlow(bytes.NewReader(flowFile), "flow.v2d")
		require.NoError(t, err)
		assert.Equal(t, []string{"density", "pressure", "mach"}, ff.Labels)
		assert.Equal(t, 3, ff.Len())
		assert.Equal(t, 2, ff.NR)
		assert.Equal(t, 3, ff.NC)
		assert.Equal(t, [][]float64{{4, 5, 6}, {1, 2, 3}}, ff.Data[0].Rows())
		assert.Equal(t, [][]float64{{40, 50, 60}, {10, 20, 30}}, ff.Data[1].Rows())
		assert.Equal(t, [][]float64{{0.4, 0.5, 0.6}, {0.1, 0.2, 0.3}}, ff.Data[2].Rows())
	}
	{ // The first header integer does not matter, extra values are ignored
		input := []byte("a\nb\nc\n99 1\nrho\n1 2\nz\nz\n1.5D0 7\n2.5 8\n")
		ff, err := ParseBlazekFlow(bytes.NewReader(input), "one.v2d")
		require.NoError(t, err)
		assert.Equal(t, []string{"rho"}, ff.Labels)
		assert.Equal(t, [][]float64{{2.5}, {1.5}}, ff.Data[0].Rows())
	}
	{ // No variables
		input := []byte("a\nb\nc\n0 0\n2 1\nz\nz\n\n\n")
		ff, err := ParseBlazekFlow(bytes.NewReader(input), "empty.v2d")
		require.NoError(t, err)
		assert.Equal(t, 0, ff.Len())
		assert.Empty(t, ff.Labels)
		assert.Equal(t, 1, ff.NR)
		assert.Equal(t, 2, ff.NC)
	}
	{ // A blank label line is an empty name
		input := []byte("a\nb\nc\n0 2\n   \np\n1 1\nz\nz\n1 2\n")
		ff, err := ParseBlazekFlow(bytes.NewReader(input), "blank.v2d")
		require.NoError(t, err)
		assert.Equal(t, []string{"", "p"}, ff.Labels)
	}
}

func TestParseBlazekFlowErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no count", "a\nb\nc\n", types.ErrMalformedHeader},
		{"one integer", "a\nb\nc\n3\n", types.ErrMalformedHeader},
		{"negative count", "a\nb\nc\n0 -1\n", types.ErrMalformedHeader},
		{"labels run out", "a\nb\nc\n0 3\nrho\np\n", types.ErrLabelCountMismatch},
		{"size line read as label", "a\nb\nc\n0 3\nrho\np\n2 1\nz\nz\n1 2 3\n4 5 6\n", types.ErrLabelCountMismatch},
		{"short by two labels", "a\nb\nc\n0 4\nrho\n2 1\nzone\npoint\n13\n17\n", types.ErrLabelCountMismatch},
		{"short by four labels", "a\nb\nc\n0 5\nrho\n1 2\nz\nz\n1\n2\n", types.ErrLabelCountMismatch},
		{"oversized size", "a\nb\nc\n0 1\nrho\n100000000 100000000\nz\nz\n1\n", types.ErrMalformedHeader},
		{"large size, short data", "a\nb\nc\n0 1\nrho\n1000 1000\nz\nz\n1\n", types.ErrTruncatedData},
		{"bad size", "a\nb\nc\n0 1\nrho\nI J\nz\nz\n", types.ErrMalformedHeader},
		{"zero size", "a\nb\nc\n0 1\nrho\n0 1\nz\nz\n", types.ErrMalformedHeader},
		{"missing zone lines", "a\nb\nc\n0 1\nrho\n1 1\nz\n", types.ErrMalformedHeader},
		{"truncated", "a\nb\nc\n0 1\nrho\n2 2\nz\nz\n1\n2\n3\n", types.ErrTruncatedData},
		{"too few values", "a\nb\nc\n0 2\nrho\np\n1 1\nz\nz\n1\n", types.ErrMalformedData},
	}
	for _, c := range cases {
		ff, err := ParseBlazekFlow(bytes.NewReader([]byte(c.input)), c.name)
		assert.True(t, errors.Is(err, c.want), "%s: got %v", c.name, err)
		assert.Nil(t, ff, c.name)
	}
}

func TestReadBlazekFlow(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "flow.v2d")
	require.NoError(t, os.WriteFile(fileName, flowFile, 0o644))
	ff, err := ReadBlazekFlow(fileName)
	require.NoError(t, err)
	assert.Equal(t, 3, ff.Len())

	_, err = ReadBlazekFlow(filepath.Join(t.TempDir(), "missing.v2d"))
	assert.True(t, errors.Is(err, types.ErrFileNotFound))
}
