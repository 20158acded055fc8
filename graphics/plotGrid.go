package graphics

import (
	"image/color"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/blazek2d/types"
)

// GridLines returns the segments joining neighbor points of the grid, four
// float32 per segment (x1, y1, x2, y2). Rows come first, then columns.
func GridLines(grid *types.Grid2D) (line []float32) {
	var (
		nr, nc = grid.Dims()
		X, Y   = grid.X, grid.Y
	)
	line = make([]float32, 0, 4*(nr*(nc-1)+nc*(nr-1)))
	segment := func(r1, c1, r2, c2 int) {
		line = append(line,
			float32(X.At(r1, c1)), float32(Y.At(r1, c1)),
			float32(X.At(r2, c2)), float32(Y.At(r2, c2)),
		)
	}
	for row := 0; row < nr; row++ {
		for col := 0; col < nc-1; col++ {
			segment(row, col, row, col+1)
		}
	}
	for col := 0; col < nc; col++ {
		for row := 0; row < nr-1; row++ {
			segment(row, col, row+1, col)
		}
	}
	return
}

// PlotBox pads the grid extents so the outer lines are not drawn on the
// window border. A degenerate direction gets a unit span.
func PlotBox(grid *types.Grid2D, scale float64) (xMin, xMax, yMin, yMax float32) {
	xmin, xmax, ymin, ymax := grid.Extents()
	pad := func(lo, hi float64) (float32, float32) {
		span := hi - lo
		if span == 0 {
			span = 1
		}
		margin := 0.5 * (scale - 1) * span
		return float32(lo - margin), float32(hi + margin)
	}
	xMin, xMax = pad(xmin, xmax)
	yMin, yMax = pad(ymin, ymax)
	return
}

// PlotGrid opens a chart window with the grid lines and never returns.
func PlotGrid(grid *types.Grid2D, col color.RGBA) {
	xMin, xMax, yMin, yMax := PlotBox(grid, 1.1)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddLine(GridLines(grid), col)
	for {
	}
}
