package readfiles

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

/*
	Blazek structured grid (.grd):

	  3 comment lines
	  I0 J0                 number of cells in each direction
	  1 label line          e.g. "# coordinates (x, y):"
	  (I0+1)*(J0+1) lines   x y, raster order
*/

func ReadBlazekGrid(filename string) (grid *types.Grid2D, err error) {
	log.WithField("file", filename).Info("reading Blazek grid")
	file, err := openFile(filename)
	if err != nil {
		return
	}
	defer file.Close()
	return ParseBlazekGrid(file, filename)
}

func ParseBlazekGrid(r io.Reader, name string) (grid *types.Grid2D, err error) {
	var (
		I0, J0  int
		nPoints int
		xy      = make([]float64, 2)
		lr      = newLineReader(r, name)
	)
	if err = lr.skipLines(3, "comment line"); err != nil {
		return
	}
	if I0, J0, err = lr.readIntPair("cell counts I J"); err != nil {
		return
	}
	if I0 < 0 || J0 < 0 {
		err = fmt.Errorf("%w: %s: negative cell counts %d %d", types.ErrMalformedHeader, name, I0, J0)
		return
	}
	I, J := I0+1, J0+1
	if nPoints, err = checkSize(name, I, J, 2); err != nil {
		return
	}
	nPoints /= 2
	log.WithFields(log.Fields{"I": I, "J": J}).Info("grid dimensions")
	if err = lr.skipLines(1, "coordinates label"); err != nil {
		return
	}
	raster := newValues(2 * nPoints)
	for K := 0; K < nPoints; K++ {
		if err = lr.readValues(xy, nPoints-K); err != nil {
			return
		}
		raster = append(raster, xy...)
	}
	X, Y := utils.NewMatrix(J, I), utils.NewMatrix(J, I)
	for K := 0; K < nPoints; K++ {
		row, col := utils.RasterToRowCol(K, I, J)
		X.Set(row, col, raster[2*K])
		Y.Set(row, col, raster[2*K+1])
	}
	if grid, err = types.NewGrid2D(X, Y); err != nil {
		return
	}
	xMin, xMax, yMin, yMax := grid.Extents()
	log.Debugf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f",
		xMin, xMax, yMin, yMax)
	return
}
