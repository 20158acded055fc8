package types

import (
	"fmt"

	"github.com/notargets/blazek2d/utils"
)

// Grid2D holds the point coordinates of a structured grid as [row][col]
// layers, row 0 at the top. X and Y always share the same shape.
type Grid2D struct {
	X, Y utils.Matrix
}

func NewGrid2D(X, Y utils.Matrix) (g *Grid2D, err error) {
	var (
		nrX, ncX = X.Dims()
		nrY, ncY = Y.Dims()
	)
	if nrX != nrY || ncX != ncY {
		err = fmt.Errorf("%w: X is %d x %d, Y is %d x %d", ErrShapeMismatch, nrX, ncX, nrY, ncY)
		return
	}
	if nrX < 1 || ncX < 1 {
		err = fmt.Errorf("%w: empty grid %d x %d", ErrShapeMismatch, nrX, ncX)
		return
	}
	g = &Grid2D{X: X, Y: Y}
	return
}

// Dims returns the number of rows (J) and points per row (I).
func (g *Grid2D) Dims() (nr, nc int) { return g.X.Dims() }

// Extents returns the bounding box of the grid.
func (g *Grid2D) Extents() (xMin, xMax, yMin, yMax float64) {
	return g.X.Min(), g.X.Max(), g.Y.Min(), g.Y.Max()
}

// FlowField views the coordinates as a two layer field, labeled x and y unless
// labels are given.
func (g *Grid2D) FlowField(labels ...string) (ff *FlowField, err error) {
	if len(labels) == 0 {
		labels = []string{"x", "y"}
	}
	nr, nc := g.Dims()
	return NewFlowField(nr, nc, []utils.Matrix{g.X, g.Y}, labels)
}
