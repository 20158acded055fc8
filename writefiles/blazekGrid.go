package writefiles

import (
	"fmt"
	"io"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

// EncodeBlazekGrid writes the grid in the layout read by readfiles.ParseBlazekGrid.
func EncodeBlazekGrid(w io.Writer, grid *types.Grid2D, format utils.FloatFormat) (err error) {
	var (
		nr, nc = grid.Dims()
		line   []byte
	)
	if err = checkCoordinates(grid.X, grid.Y, nil); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "# structured grid\n#\n# number of cells in i and j:\n %d %d\n# coordinates (x, y):\n",
		nc-1, nr-1); err != nil {
		return
	}
	for K := 0; K < nr*nc; K++ {
		row, col := utils.RasterToRowCol(K, nc, nr)
		line = append(line[:0], ' ')
		line = format.Append(line, grid.X.At(row, col))
		line = append(line, ' ')
		line = format.Append(line, grid.Y.At(row, col))
		line = append(line, '\n')
		if _, err = w.Write(line); err != nil {
			return
		}
	}
	return
}

// WriteBlazekGrid writes the grid to baseName.grd.
func WriteBlazekGrid(baseName string, grid *types.Grid2D, format utils.FloatFormat) (fileName string, err error) {
	if err = checkCoordinates(grid.X, grid.Y, nil); err != nil {
		return
	}
	fileName = baseName + BlazekGridExt
	err = writeFile(fileName, func(w io.Writer) error {
		return EncodeBlazekGrid(w, grid, format)
	})
	return
}
