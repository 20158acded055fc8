package writefiles

import (
	"fmt"
	"io"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

// EncodePlot3D writes X and Y as a formatted single block PLOT3D grid, one value
// per line. The block dimensions are points per row, rows, 1 and a zero z
// coordinate is written for every point.
func EncodePlot3D(w io.Writer, X, Y utils.Matrix, format utils.FloatFormat) (err error) {
	var (
		nr, nc = X.Dims()
		line   []byte
	)
	if err = checkCoordinates(X, Y, nil); err != nil {
		return
	}
	zero := utils.NewMatrix(nr, nc)
	if _, err = fmt.Fprintf(w, "%d\n%d %d %d\n", 1, nc, nr, 1); err != nil {
		return
	}
	for _, layer := range []utils.Matrix{X, Y, zero} {
		utils.Plot3DOrder(nr, nc, func(row, col int) {
			if err != nil {
				return
			}
			line = format.Append(line[:0], layer.At(row, col))
			line = append(line, '\n')
			_, err = w.Write(line)
		})
		if err != nil {
			return
		}
	}
	return
}

// WritePlot3D writes the grid to baseName.X.
func WritePlot3D(baseName string, grid *types.Grid2D, format utils.FloatFormat) (fileName string, err error) {
	if err = checkCoordinates(grid.X, grid.Y, nil); err != nil {
		return
	}
	fileName = baseName + Plot3DExt
	err = writeFile(fileName, func(w io.Writer) error {
		return EncodePlot3D(w, grid.X, grid.Y, format)
	})
	return
}
