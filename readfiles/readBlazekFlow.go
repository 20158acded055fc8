package readfiles

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

/*
	Blazek flow field (.v2d):

	  3 comment lines
	  M N                   N is the number of variables, M is not used
	  N label lines
	  I J                   number of points in each direction
	  2 ignored lines
	  I*J lines             N values each, raster order
*/

func ReadBlazekFlow(filename string) (ff *types.FlowField, err error) {
	log.WithField("file", filename).Info("reading Blazek flow field")
	file, err := openFile(filename)
	if err != nil {
		return
	}
	defer file.Close()
	return ParseBlazekFlow(file, filename)
}

func ParseBlazekFlow(r io.Reader, name string) (ff *types.FlowField, err error) {
	var (
		N, I, J int
		nValues int
		labels  []string
	)
	lr := newLineReader(r, name)
	if err = lr.skipLines(3, "comment line"); err != nil {
		return
	}
	if _, N, err = lr.readIntPair("variable count"); err != nil {
		return
	}
	if N < 0 {
		err = fmt.Errorf("%w: %s: negative variable count %d", types.ErrMalformedHeader, name, N)
		return
	}
	log.WithField("N", N).Info("number of variables")
	labels = make([]string, N)
	for n := 0; n < N; n++ {
		var line string
		if line, err = lr.getLine(); err == io.EOF {
			err = fmt.Errorf("%w: %s: early end of file after %d of %d labels",
				types.ErrLabelCountMismatch, name, n, N)
			return
		} else if err != nil {
			return
		}
		labels[n] = strings.TrimSpace(line)
	}
	// A short label block swallows the grid size line and what follows it
	for n, label := range labels {
		if isIntPair(label) {
			err = fmt.Errorf("%w: %s: found %d labels before the grid size line [%s], header declares %d",
				types.ErrLabelCountMismatch, name, n, label, N)
			return
		}
	}
	if I, J, err = lr.readIntPair("grid size I J"); err != nil {
		return
	}
	if I < 1 || J < 1 {
		err = fmt.Errorf("%w: %s: grid size %d %d", types.ErrMalformedHeader, name, I, J)
		return
	}
	if nValues, err = checkSize(name, I, J, N); err != nil {
		return
	}
	log.WithFields(log.Fields{"I": I, "J": J, "labels": labels}).Info("flow field dimensions")
	if err = lr.skipLines(2, "zone line"); err != nil {
		return
	}
	var (
		nPoints = I * J
		raster  = newValues(nValues)
		vals    = make([]float64, N)
	)
	for K := 0; K < nPoints; K++ {
		if err = lr.readValues(vals, nPoints-K); err != nil {
			return
		}
		raster = append(raster, vals...)
	}
	data := make([]utils.Matrix, N)
	for n := range data {
		data[n] = utils.NewMatrix(J, I)
	}
	for K := 0; K < nPoints; K++ {
		row, col := utils.RasterToRowCol(K, I, J)
		for n := range data {
			data[n].Set(row, col, raster[K*N+n])
		}
	}
	if ff, err = types.NewFlowField(J, I, data, labels); err != nil {
		return
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		for n, layer := range data {
			log.Debugf("%s: min/max = %g, %g", ff.Labels[n], layer.Min(), layer.Max())
		}
	}
	return
}

func isIntPair(line string) bool {
	var a, b int
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return false
	}
	n, err := fmt.Sscanf(line, "%d %d", &a, &b)
	return err == nil && n == 2
}
