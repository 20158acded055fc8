package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

/*
	Formatted single block PLOT3D grid (.X), free format:

	  1                 number of blocks
	  NI NJ 1           points along a row, number of rows, planes
	  NI*NJ x values    rows bottom-up, left to right within a row
	  NI*NJ y values
	  NI*NJ z values    zero for a 2D grid
*/

type tokenReader struct {
	scanner *bufio.Scanner
	name    string
	count   int
}

func newTokenReader(r io.Reader, name string) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner, name: name}
}

func (tr *tokenReader) next() (token string, err error) {
	if !tr.scanner.Scan() {
		if err = tr.scanner.Err(); err == nil {
			err = io.EOF
		}
		return
	}
	tr.count++
	return tr.scanner.Text(), nil
}

func (tr *tokenReader) readInt(what string) (val int, err error) {
	var token string
	if token, err = tr.next(); err == io.EOF {
		err = fmt.Errorf("%w: %s: early end of file, expected %s", types.ErrMalformedHeader, tr.name, what)
		return
	} else if err != nil {
		return
	}
	if val, err = strconv.Atoi(token); err != nil {
		err = fmt.Errorf("%w: %s: expected %s, found [%s]", types.ErrMalformedHeader, tr.name, what, token)
	}
	return
}

func (tr *tokenReader) readFloat(remaining int) (val float64, err error) {
	var token string
	if token, err = tr.next(); err == io.EOF {
		err = fmt.Errorf("%w: %s: early end of file, %d values missing", types.ErrTruncatedData, tr.name, remaining)
		return
	} else if err != nil {
		return
	}
	if val, err = utils.ParseFloat(token); err != nil {
		err = fmt.Errorf("%w: %s: value %d: %v", types.ErrMalformedData, tr.name, tr.count, err)
	}
	return
}

func ReadPlot3D2D(filename string) (grid *types.Grid2D, err error) {
	log.WithField("file", filename).Info("reading PLOT3D grid")
	file, err := openFile(filename)
	if err != nil {
		return
	}
	defer file.Close()
	return ParsePlot3D2D(file, filename)
}

func ParsePlot3D2D(r io.Reader, name string) (grid *types.Grid2D, err error) {
	var (
		nBlocks, NI, NJ, NK int
		tr                  = newTokenReader(r, name)
	)
	if nBlocks, err = tr.readInt("block count"); err != nil {
		return
	}
	if nBlocks != 1 {
		err = fmt.Errorf("%w: %s: %d blocks, only single block grids are supported",
			types.ErrMalformedHeader, name, nBlocks)
		return
	}
	for _, dim := range []struct {
		val  *int
		what string
	}{{&NI, "NI"}, {&NJ, "NJ"}, {&NK, "NK"}} {
		if *dim.val, err = tr.readInt(dim.what); err != nil {
			return
		}
	}
	if NI < 1 || NJ < 1 || NK != 1 {
		err = fmt.Errorf("%w: %s: block dimensions %d %d %d, need a single 2D plane",
			types.ErrMalformedHeader, name, NI, NJ, NK)
		return
	}
	var (
		nValues int
		nonZero int
	)
	if nValues, err = checkSize(name, NI, NJ, 3); err != nil {
		return
	}
	log.WithFields(log.Fields{"I": NI, "J": NJ}).Info("grid dimensions")
	sweeps := newValues(nValues)
	for remaining := nValues; remaining > 0; remaining-- {
		var val float64
		if val, err = tr.readFloat(remaining); err != nil {
			return
		}
		sweeps = append(sweeps, val)
	}
	var (
		nPoints = NI * NJ
		X, Y    = utils.NewMatrix(NJ, NI), utils.NewMatrix(NJ, NI)
		K       int
	)
	utils.Plot3DOrder(NJ, NI, func(row, col int) {
		X.Set(row, col, sweeps[K])
		Y.Set(row, col, sweeps[nPoints+K])
		if sweeps[2*nPoints+K] != 0 {
			nonZero++
		}
		K++
	})
	if nonZero != 0 {
		log.WithField("points", nonZero).Warn("non zero z coordinates ignored")
	}
	return types.NewGrid2D(X, Y)
}
