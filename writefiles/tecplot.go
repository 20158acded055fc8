package writefiles

import (
	"fmt"
	"io"

	"github.com/notargets/blazek2d/types"
	"github.com/notargets/blazek2d/utils"
)

const DefaultTitle = "contour"

/*
	Tecplot ASCII, point packing:

	  TITLE = "contour"
	  VARIABLES = "x", "y"
	  zone I = nr, J = nc
	  DATAPACKING = point
	  one line per point, Tecplot order (see utils.TecplotOrder)
*/

func writeTecplotHeader(w io.Writer, title string, variables *string, nr, nc int) (err error) {
	if _, err = fmt.Fprintf(w, "TITLE = \"%s\"\n", title); err != nil {
		return
	}
	if variables != nil {
		if _, err = fmt.Fprintf(w, "VARIABLES = %s\n", *variables); err != nil {
			return
		}
	}
	_, err = fmt.Fprintf(w, "zone I = %d, J = %d\nDATAPACKING = point\n", nr, nc)
	return
}

// writePoints emits one line per point, every value followed by a space.
func writePoints(w io.Writer, nr, nc int, format utils.FloatFormat, layers []utils.Matrix) (err error) {
	var (
		line = make([]byte, 0, 32*len(layers))
	)
	utils.TecplotOrder(nr, nc, func(row, col int) {
		if err != nil {
			return
		}
		line = line[:0]
		for _, layer := range layers {
			line = format.Append(line, layer.At(row, col))
			line = append(line, ' ')
		}
		line = append(line, '\n')
		_, err = w.Write(line)
	})
	return
}

// VariablesList formats labels as "a", "b", "c".
func VariablesList(labels []string) (list string) {
	for i, label := range labels {
		if i != 0 {
			list += ", "
		}
		list += "\"" + label + "\""
	}
	return
}

// EncodeTecplot writes every variable of ff as one column. A field without
// variables still gets a complete header, with an empty VARIABLES list.
func EncodeTecplot(w io.Writer, title string, ff *types.FlowField, format utils.FloatFormat) (err error) {
	if err = ff.Validate(); err != nil {
		return
	}
	variables := VariablesList(ff.Labels)
	if err = writeTecplotHeader(w, title, &variables, ff.NR, ff.NC); err != nil {
		return
	}
	if ff.Len() == 0 {
		return
	}
	return writePoints(w, ff.NR, ff.NC, format, ff.Data)
}

// WriteTecplot writes ff to baseName.plt.
func WriteTecplot(baseName, title string, ff *types.FlowField, format utils.FloatFormat) (fileName string, err error) {
	if err = ff.Validate(); err != nil {
		return
	}
	fileName = baseName + TecplotExt
	err = writeFile(fileName, func(w io.Writer) error {
		return EncodeTecplot(w, title, ff, format)
	})
	return
}

func checkCoordinates(X, Y utils.Matrix, S []utils.Matrix) (err error) {
	if len(S) > 1 {
		return fmt.Errorf("%w: at most one scalar layer, got %d", types.ErrShapeMismatch, len(S))
	}
	for _, A := range append([]utils.Matrix{Y}, S...) {
		if !X.SameShape(A) || A.IsEmpty() {
			nr, nc := X.Dims()
			nrA, ncA := A.Dims()
			return fmt.Errorf("%w: coordinates are %d x %d, layer is %d x %d",
				types.ErrShapeMismatch, nr, nc, nrA, ncA)
		}
	}
	return
}

// EncodeTecplotXY writes the coordinates, and the optional scalar layer S, in
// scientific notation. The VARIABLES line is only written when variables is
// not empty, it is used verbatim.
func EncodeTecplotXY(w io.Writer, title, variables string, format utils.FloatFormat,
	X, Y utils.Matrix, S ...utils.Matrix) (err error) {
	var (
		varsP *string
	)
	if err = checkCoordinates(X, Y, S); err != nil {
		return
	}
	if len(variables) != 0 {
		varsP = &variables
	}
	nr, nc := X.Dims()
	if err = writeTecplotHeader(w, title, varsP, nr, nc); err != nil {
		return
	}
	return writePoints(w, nr, nc, format, append([]utils.Matrix{X, Y}, S...))
}

// WriteTecplotXY writes the coordinates and optional scalar layer to baseName.plt.
func WriteTecplotXY(baseName, title, variables string, format utils.FloatFormat,
	X, Y utils.Matrix, S ...utils.Matrix) (fileName string, err error) {
	if err = checkCoordinates(X, Y, S); err != nil {
		return
	}
	fileName = baseName + TecplotExt
	err = writeFile(fileName, func(w io.Writer) error {
		return EncodeTecplotXY(w, title, variables, format, X, Y, S...)
	})
	return
}
