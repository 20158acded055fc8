package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterToRowCol(t *testing.T) {
	// 3 points per row, 2 rows: the first raster row lands at the bottom
	{
		I, J := 3, 2
		var got [][2]int
		for K := 0; K < I*J; K++ {
			row, col := RasterToRowCol(K, I, J)
			got = append(got, [2]int{row, col})
		}
		assert.Equal(t, [][2]int{
			{1, 0}, {1, 1}, {1, 2},
			{0, 0}, {0, 1}, {0, 2},
		}, got)
	}
	// Degenerate grids
	{
		for K := 0; K < 4; K++ {
			row, col := RasterToRowCol(K, 1, 4)
			assert.Equal(t, 0, col)
			assert.Equal(t, 3-K, row)
			row, col = RasterToRowCol(K, 4, 1)
			assert.Equal(t, K, col)
			assert.Equal(t, 0, row)
		}
		row, col := RasterToRowCol(0, 1, 1)
		assert.Equal(t, 0, row)
		assert.Equal(t, 0, col)
	}
	assert.Panics(t, func() { RasterToRowCol(6, 3, 2) })
	assert.Panics(t, func() { RasterToRowCol(-1, 3, 2) })
}

func TestRowColToRaster(t *testing.T) {
	for _, dims := range [][2]int{{3, 2}, {1, 5}, {5, 1}, {7, 4}} {
		I, J := dims[0], dims[1]
		seen := make(map[[2]int]bool)
		for K := 0; K < I*J; K++ {
			row, col := RasterToRowCol(K, I, J)
			assert.False(t, seen[[2]int{row, col}], "position visited twice")
			seen[[2]int{row, col}] = true
			assert.Equal(t, K, RowColToRaster(row, col, I, J))
		}
		assert.Equal(t, I*J, len(seen))
	}
	assert.Panics(t, func() { RowColToRaster(2, 0, 3, 2) })
}

func TestOutputOrders(t *testing.T) {
	var (
		nr, nc = 2, 3
		tec    [][2]int
		p3d    []int
	)
	TecplotOrder(nr, nc, func(row, col int) {
		tec = append(tec, [2]int{row, col})
	})
	assert.Equal(t, [][2]int{
		{1, 0}, {0, 0},
		{1, 1}, {0, 1},
		{1, 2}, {0, 2},
	}, tec)
	// PLOT3D sweeps walk the raster index in order
	Plot3DOrder(nr, nc, func(row, col int) {
		p3d = append(p3d, RowColToRaster(row, col, nc, nr))
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p3d)
}
