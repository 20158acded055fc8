package types

import (
	"fmt"
	"strconv"

	"github.com/notargets/blazek2d/utils"
)

// FlowField is an ordered set of named scalar layers over one NR x NC grid.
type FlowField struct {
	NR, NC int
	Labels []string
	Data   []utils.Matrix
}

// LabeledVariable pairs a single layer with its name.
type LabeledVariable struct {
	Name  string
	Layer utils.Matrix
}

// VariableName is the name given to variable index n (zero based) when none was supplied.
func VariableName(n int) string {
	return "V" + strconv.Itoa(n+1)
}

// NewFlowField checks that every layer is nr x nc. Labels may be fewer than
// layers, the missing ones are named V<n> by position. An empty label is kept.
func NewFlowField(nr, nc int, data []utils.Matrix, labels []string) (ff *FlowField, err error) {
	if len(labels) > len(data) {
		err = fmt.Errorf("%w: %d labels for %d variables", ErrLabelCountMismatch, len(labels), len(data))
		return
	}
	if nr < 1 || nc < 1 {
		err = fmt.Errorf("%w: empty field %d x %d", ErrShapeMismatch, nr, nc)
		return
	}
	names := make([]string, len(data))
	for n, layer := range data {
		if lnr, lnc := layer.Dims(); lnr != nr || lnc != nc {
			err = fmt.Errorf("%w: variable %d is %d x %d, want %d x %d",
				ErrShapeMismatch, n+1, lnr, lnc, nr, nc)
			return
		}
		if n < len(labels) {
			names[n] = labels[n]
		} else {
			names[n] = VariableName(n)
		}
	}
	ff = &FlowField{
		NR:     nr,
		NC:     nc,
		Labels: names,
		Data:   data,
	}
	return
}

func (ff *FlowField) Len() int { return len(ff.Data) }

// Validate re-checks the invariants of a FlowField that was not built by NewFlowField.
func (ff *FlowField) Validate() (err error) {
	if len(ff.Labels) != len(ff.Data) {
		return fmt.Errorf("%w: %d labels for %d variables", ErrLabelCountMismatch, len(ff.Labels), len(ff.Data))
	}
	_, err = NewFlowField(ff.NR, ff.NC, ff.Data, ff.Labels)
	return
}

func (ff *FlowField) Variables() (vars []LabeledVariable) {
	vars = make([]LabeledVariable, len(ff.Data))
	for n := range ff.Data {
		vars[n] = LabeledVariable{Name: ff.Labels[n], Layer: ff.Data[n]}
	}
	return
}

func (ff *FlowField) Variable(name string) (v LabeledVariable, err error) {
	for n, label := range ff.Labels {
		if label == name {
			return LabeledVariable{Name: label, Layer: ff.Data[n]}, nil
		}
	}
	err = fmt.Errorf("%w: [%s], available: %v", ErrUnknownVariable, name, ff.Labels)
	return
}
