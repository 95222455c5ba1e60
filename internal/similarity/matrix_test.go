package similarity

import (
	"errors"
	"math"
	"testing"

	"github.com/covermatch/covermatch/internal/vectorize"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()

	rows := []vectorize.Vector{{1, 0}, {0, 1}}
	cols := []vectorize.Vector{{1, 0}, {0, 1}, {1, 0}}
	return Cross(rows, cols)
}

func TestCrossDimensions(t *testing.T) {
	m := testMatrix(t)

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("expected 2x3 matrix, got %dx%d", m.Rows(), m.Cols())
	}

	v, err := m.At(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-1) > 1e-9 {
		t.Fatalf("expected 1 at (0,0), got %v", v)
	}

	v, err = m.At(0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected 0 at (0,1), got %v", v)
	}
}

func TestMatrixBounds(t *testing.T) {
	m := testMatrix(t)

	if _, err := m.At(2, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.At(0, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Row(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := m.Col(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestMatrixRowAndCol(t *testing.T) {
	m := testMatrix(t)

	row, err := m.Row(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(row) != 3 || math.Abs(row[0]-1) > 1e-9 || math.Abs(row[2]-1) > 1e-9 {
		t.Fatalf("unexpected row: %v", row)
	}

	col, err := m.Col(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(col) != 2 || col[0] != 0 || math.Abs(col[1]-1) > 1e-9 {
		t.Fatalf("unexpected column: %v", col)
	}
}

func TestMatrixStats(t *testing.T) {
	m := testMatrix(t)
	stats := m.Stats()

	if math.Abs(stats.Max-1) > 1e-9 {
		t.Fatalf("expected max 1, got %v", stats.Max)
	}
	if stats.Min != 0 {
		t.Fatalf("expected min 0, got %v", stats.Min)
	}
	if math.Abs(stats.Mean-0.5) > 1e-9 {
		t.Fatalf("expected mean 0.5, got %v", stats.Mean)
	}
	if math.Abs(stats.StdDev-0.5) > 1e-9 {
		t.Fatalf("expected stddev 0.5, got %v", stats.StdDev)
	}
}

func TestEmptyMatrixStats(t *testing.T) {
	m := Cross(nil, nil)
	if stats := m.Stats(); stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
