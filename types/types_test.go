package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/blazek2d/utils"
)

func TestNewGrid2D(t *testing.T) {
	X := utils.NewMatrixFromRows([][]float64{{0, 1, 2}, {0, 1, 2}})
	Y := utils.NewMatrixFromRows([][]float64{{1, 1, 1}, {0, 0, 0}})
	g, err := NewGrid2D(X, Y)
	require.NoError(t, err)
	nr, nc := g.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 3, nc)
	xMin, xMax, yMin, yMax := g.Extents()
	assert.Equal(t, [4]float64{0, 2, 0, 1}, [4]float64{xMin, xMax, yMin, yMax})

	ff, err := g.FlowField()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ff.Labels)

	_, err = NewGrid2D(X, utils.NewMatrix(3, 2))
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	_, err = NewGrid2D(utils.Matrix{}, utils.Matrix{})
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestNewFlowField(t *testing.T) {
	layers := func(n, nr, nc int) (data []utils.Matrix) {
		for i := 0; i < n; i++ {
			data = append(data, utils.NewMatrix(nr, nc))
		}
		return
	}
	{ // Missing labels are synthesized by position
		ff, err := NewFlowField(2, 3, layers(4, 2, 3), []string{"rho", "u"})
		require.NoError(t, err)
		assert.Equal(t, []string{"rho", "u", "V3", "V4"}, ff.Labels)
		assert.Equal(t, 4, ff.Len())
		require.NoError(t, ff.Validate())
	}
	{ // Empty labels were supplied and stay empty
		ff, err := NewFlowField(2, 3, layers(3, 2, 3), []string{"", "p"})
		require.NoError(t, err)
		assert.Equal(t, []string{"", "p", "V3"}, ff.Labels)
		v, err := ff.Variable("")
		require.NoError(t, err)
		assert.True(t, v.Layer.EqualApprox(ff.Data[0], 0))
	}
	{ // No variables at all keeps the shape
		ff, err := NewFlowField(2, 3, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, ff.Len())
		assert.Equal(t, 2, ff.NR)
		assert.Equal(t, 3, ff.NC)
		assert.Empty(t, ff.Variables())
	}
	{ // One layer of the wrong shape
		data := append(layers(2, 2, 3), utils.NewMatrix(3, 2))
		_, err := NewFlowField(2, 3, data, nil)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	}
	{ // More labels than layers
		_, err := NewFlowField(2, 3, layers(1, 2, 3), []string{"a", "b"})
		assert.True(t, errors.Is(err, ErrLabelCountMismatch))
	}
	{ // Hand built field with a short label list
		ff := &FlowField{NR: 2, NC: 3, Labels: []string{"a"}, Data: layers(2, 2, 3)}
		assert.True(t, errors.Is(ff.Validate(), ErrLabelCountMismatch))
	}
}

func TestFlowFieldVariable(t *testing.T) {
	rho := utils.NewMatrix(1, 2, []float64{1, 2})
	p := utils.NewMatrix(1, 2, []float64{3, 4})
	ff, err := NewFlowField(1, 2, []utils.Matrix{rho, p}, []string{"rho", "p"})
	require.NoError(t, err)
	v, err := ff.Variable("p")
	require.NoError(t, err)
	assert.Equal(t, "p", v.Name)
	assert.Equal(t, []float64{3, 4}, v.Layer.DataP)
	vars := ff.Variables()
	assert.Equal(t, "rho", vars[0].Name)
	_, err = ff.Variable("mach")
	assert.True(t, errors.Is(err, ErrUnknownVariable))
	assert.Equal(t, "V12", VariableName(11))
}
