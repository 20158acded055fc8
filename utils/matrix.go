package utils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major 2D layer. DataP aliases the backing storage of M,
// element [i][j] lives at DataP[i*nc+j].
type Matrix struct {
	M     *mat.Dense
	DataP []float64
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		data = dataO[0]
	} else {
		data = make([]float64, nr*nc)
	}
	R = Matrix{
		M:     mat.NewDense(nr, nc, data),
		DataP: data,
	}
	return
}

// NewMatrixFromRows copies a [row][col] slice into a new Matrix.
func NewMatrixFromRows(rows [][]float64) (R Matrix) {
	var (
		nr = len(rows)
		nc int
	)
	if nr != 0 {
		nc = len(rows[0])
	}
	data := make([]float64, 0, nr*nc)
	for i, row := range rows {
		if len(row) != nc {
			panic(fmt.Errorf("ragged rows: row %d has %d columns, want %d", i, len(row), nc))
		}
		data = append(data, row...)
	}
	return NewMatrix(nr, nc, data)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int) {
	if m.M == nil {
		return 0, 0
	}
	return m.M.Dims()
}
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Row(i int) []float64 { return m.M.RawRowView(i) }

// Rows returns a [row][col] copy of the data.
func (m Matrix) Rows() (rows [][]float64) {
	nr, nc := m.Dims()
	rows = make([][]float64, nr)
	for i := range rows {
		rows[i] = make([]float64, nc)
		copy(rows[i], m.Row(i))
	}
	return
}

func (m Matrix) SameShape(A Matrix) bool {
	nr, nc := m.Dims()
	nrA, ncA := A.Dims()
	return nr == nrA && nc == ncA
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, m.DataP)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[j*nr+i] = m.DataP[i*nc+j]
		}
	}
	return
}

func (m Matrix) Min() float64 { return floats.Min(m.DataP) }
func (m Matrix) Max() float64 { return floats.Max(m.DataP) }

// EqualApprox compares shape and values within an absolute tolerance.
func (m Matrix) EqualApprox(A Matrix, tol float64) bool {
	if !m.SameShape(A) {
		return false
	}
	return floats.EqualApprox(m.DataP, A.DataP, tol)
}

func (m Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.M, mat.Squeeze()))
}
