package assemble

import "fmt"

// Matrix is a dense row-major float64 matrix backed by a single flat buffer.
// Rows are media items in canonical order, columns are requested parameters
// in request order.
type Matrix struct {
	Data []float64
	Rows int
	Cols int
}

// matrixFromColumns builds a Matrix from equal-length column vectors. Every
// column must have rows entries.
func matrixFromColumns(columns [][]float64, rows int) (*Matrix, error) {
	for i, col := range columns {
		if len(col) != rows {
			return nil, fmt.Errorf("column %d has %d values, expected %d", i, len(col), rows)
		}
	}

	m := &Matrix{
		Data: make([]float64, rows*len(columns)),
		Rows: rows,
		Cols: len(columns),
	}
	for j, col := range columns {
		for i, v := range col {
			m.Data[i*m.Cols+j] = v
		}
	}
	return m, nil
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Row returns row i as a slice view into the underlying buffer.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Rows2D reshapes the flat buffer into per-row slices. The slices share the
// underlying buffer.
func (m *Matrix) Rows2D() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// selectRows copies the rows where keep[i] == want into a new Matrix,
// preserving their relative order.
func (m *Matrix) selectRows(keep []bool, want bool) *Matrix {
	n := 0
	for _, k := range keep {
		if k == want {
			n++
		}
	}
	out := &Matrix{
		Data: make([]float64, 0, n*m.Cols),
		Rows: n,
		Cols: m.Cols,
	}
	for i, k := range keep {
		if k == want {
			out.Data = append(out.Data, m.Row(i)...)
		}
	}
	return out
}
