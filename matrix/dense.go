package matrix

import "fmt"

// Dense is a row-major matrix of GF(2^8) symbols.
type Dense struct {
	Rows, Cols int
	Data       []byte // len(Data) == Rows*Cols, row i at Data[i*Cols:(i+1)*Cols]
}

// NewDense allocates a zero-filled rows×cols Dense matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{Rows: rows, Cols: cols, Data: make([]byte, rows*cols)}, nil
}

// WrapDense views an existing buffer as a rows×cols Dense matrix without
// copying. The caller retains ownership of data; mutating the returned
// Dense mutates data in place. len(data) must equal rows*cols.
func WrapDense(data []byte, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix: WrapDense: buffer length %d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{Rows: rows, Cols: cols, Data: data}, nil
}

// Row returns row i as a slice aliasing m.Data; mutating it mutates m.
func (m *Dense) Row(i int) []byte {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// At returns element (row, col), or an error if out of bounds.
func (m *Dense) At(row, col int) (byte, error) {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0, fmt.Errorf("matrix: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return m.Data[row*m.Cols+col], nil
}

// Set assigns value v at (row, col), or returns an error if out of bounds.
func (m *Dense) Set(row, col int, v byte) error {
	if row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return fmt.Errorf("matrix: Set(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	m.Data[row*m.Cols+col] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	data := make([]byte, len(m.Data))
	copy(data, m.Data)

	return &Dense{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// String renders m for debug output; not intended for production logging
// of large matrices.
func (m *Dense) String() string {
	s := fmt.Sprintf("Dense(%dx%d)", m.Rows, m.Cols)
	for i := 0; i < m.Rows; i++ {
		s += fmt.Sprintf("\n%v", m.Row(i))
	}

	return s
}
