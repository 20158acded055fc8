package utils

import "fmt"

/*
	Structured 2D grids appear in three orderings:

	  - on disk (Blazek .grd/.v2d): raster index K, left to right within a row,
	    rows from the bottom of the domain to the top
	  - in memory: data[row][col], row 0 is the top row
	  - on output: Tecplot point order (col outer, row bottom-up inner) and
	    PLOT3D sweep order (row bottom-up outer, col inner)

	I is the number of points along a row (columns), J the number of rows.
*/

// RasterToRowCol places raster index K of an I x J grid into the in-memory layout.
func RasterToRowCol(K, I, J int) (row, col int) {
	if K < 0 || K >= I*J {
		panic(fmt.Errorf("raster index out of bounds: K = %d, I*J = %d", K, I*J))
	}
	col = K % I
	row = J - K/I - 1
	return
}

// RowColToRaster is the inverse of RasterToRowCol.
func RowColToRaster(row, col, I, J int) (K int) {
	if row < 0 || row >= J || col < 0 || col >= I {
		panic(fmt.Errorf("row/col out of bounds: row, col = %d, %d, J, I = %d, %d", row, col, J, I))
	}
	return (J-row-1)*I + col
}

// TecplotOrder visits an nr x nc layer in Tecplot point order: columns left to
// right, and within each column the rows from the bottom up.
func TecplotOrder(nr, nc int, fn func(row, col int)) {
	for j := 0; j < nc; j++ {
		for i := nr - 1; i >= 0; i-- {
			fn(i, j)
		}
	}
}

// Plot3DOrder visits an nr x nc layer in PLOT3D sweep order, which is the raster
// order K = 0, 1, ... of the Blazek files.
func Plot3DOrder(nr, nc int, fn func(row, col int)) {
	for i := nr - 1; i >= 0; i-- {
		for j := 0; j < nc; j++ {
			fn(i, j)
		}
	}
}
