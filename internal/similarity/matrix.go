package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/covermatch/covermatch/internal/vectorize"
)

// ErrIndexOutOfRange is returned on lookups beyond the known document count.
// Bounds violations propagate; they are never silently clamped.
var ErrIndexOutOfRange = errors.New("similarity: index out of range")

// Matrix is a read-only table of scores in [0,1] whose rows and columns are
// aligned to document index order at vectorization time.
type Matrix struct {
	rows, cols int
	data       []float64
}

// Cross builds the rows×cols similarity matrix between two vector sets.
//
// Precondition: both sets must have been produced by the same fitted
// vectorizer. Mixing vectors from differently fitted instances silently
// produces meaningless scores (mismatched lengths score 0), so callers fit a
// single vectorizer over the combined corpus and split the result.
func Cross(rows, cols []vectorize.Vector) *Matrix {
	m := &Matrix{
		rows: len(rows),
		cols: len(cols),
		data: make([]float64, len(rows)*len(cols)),
	}
	for i, r := range rows {
		for j, c := range cols {
			m.data[i*m.cols+j] = Cosine(r, c)
		}
	}
	return m
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the score at (i, j).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d matrix", ErrIndexOutOfRange, i, j, m.rows, m.cols)
	}
	return m.data[i*m.cols+j], nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrIndexOutOfRange, i, m.rows)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out, nil
}

// Col returns a copy of column j.
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrIndexOutOfRange, j, m.cols)
	}
	out := make([]float64, m.rows)
	for i := range out {
		out[i] = m.data[i*m.cols+j]
	}
	return out, nil
}

// Stats summarizes the score distribution of a matrix.
type Stats struct {
	Mean   float64
	Max    float64
	Min    float64
	StdDev float64
}

// Stats returns the distribution summary. An empty matrix yields zeroes.
func (m *Matrix) Stats() Stats {
	if len(m.data) == 0 {
		return Stats{}
	}

	min, max, sum := m.data[0], m.data[0], 0.0
	for _, v := range m.data {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / float64(len(m.data))

	var variance float64
	for _, v := range m.data {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(m.data))

	return Stats{Mean: mean, Max: max, Min: min, StdDev: math.Sqrt(variance)}
}
