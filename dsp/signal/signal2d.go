package signal

// Signal2D is a rectangular grid of complex samples, stored as a sequence of
// equal-length rows. Height and width are fixed at construction.
type Signal2D []Signal

// New2D returns a zero-filled grid with the given number of rows and
// columns.
func New2D(height, width int) Signal2D {
	if height < 0 {
		height = 0
	}
	g := make(Signal2D, height)
	for r := range g {
		g[r] = New(width)
	}
	return g
}

// FromRows returns a grid holding deep copies of the given rows. All rows
// must have equal length; a ragged input returns ErrShapeMismatch.
func FromRows(rows []Signal) (Signal2D, error) {
	g := make(Signal2D, len(rows))
	for r, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, ErrShapeMismatch
		}
		g[r] = row.Clone()
	}
	return g, nil
}

// Height returns the number of rows.
func (g Signal2D) Height() int {
	return len(g)
}

// Width returns the number of columns. An empty grid has width 0.
func (g Signal2D) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the sample at row r, column c.
func (g Signal2D) At(r, c int) (complex128, error) {
	if r < 0 || r >= len(g) {
		return 0, ErrIndexOutOfRange
	}
	return g[r].At(c)
}

// Set stores v at row r, column c.
func (g Signal2D) Set(r, c int, v complex128) error {
	if r < 0 || r >= len(g) {
		return ErrIndexOutOfRange
	}
	return g[r].Set(c, v)
}

// Row returns the row at index r without copying. Mutations to the returned
// Signal are visible through the grid.
func (g Signal2D) Row(r int) (Signal, error) {
	if r < 0 || r >= len(g) {
		return nil, ErrIndexOutOfRange
	}
	return g[r], nil
}

// Column returns a copy of the column at index c as a Signal of length
// Height.
func (g Signal2D) Column(c int) (Signal, error) {
	if c < 0 || c >= g.Width() {
		return nil, ErrIndexOutOfRange
	}
	col := make(Signal, len(g))
	for r := range g {
		col[r] = g[r][c]
	}
	return col, nil
}

// SetColumn scatters col into the column at index c. col must have length
// Height.
func (g Signal2D) SetColumn(c int, col Signal) error {
	if c < 0 || c >= g.Width() {
		return ErrIndexOutOfRange
	}
	if len(col) != len(g) {
		return ErrShapeMismatch
	}
	for r := range g {
		g[r][c] = col[r]
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g Signal2D) Clone() Signal2D {
	out := make(Signal2D, len(g))
	for r := range g {
		out[r] = g[r].Clone()
	}
	return out
}

// Conjugate returns a new grid with every imaginary component negated.
func (g Signal2D) Conjugate() Signal2D {
	out := make(Signal2D, len(g))
	for r := range g {
		out[r] = g[r].Conjugate()
	}
	return out
}

// ConjugateInPlace negates every imaginary component, mutating the receiver.
// It returns the receiver for chaining.
func (g Signal2D) ConjugateInPlace() Signal2D {
	for r := range g {
		g[r].ConjugateInPlace()
	}
	return g
}

// DivideByScalarInPlace divides every sample by the real scalar d, mutating
// the receiver, and returns it for chaining.
func (g Signal2D) DivideByScalarInPlace(d float64) Signal2D {
	for r := range g {
		g[r].DivideByScalarInPlace(d)
	}
	return g
}

// Mul returns the element-wise product of g and other. Both grids must have
// the same shape.
func (g Signal2D) Mul(other Signal2D) (Signal2D, error) {
	if !SameShape(g, other) {
		return nil, ErrShapeMismatch
	}
	out := make(Signal2D, len(g))
	for r := range g {
		row, err := g[r].Mul(other[r])
		if err != nil {
			return nil, err
		}
		out[r] = row
	}
	return out, nil
}

// SameShape reports whether a and b have equal height and width.
func SameShape(a, b Signal2D) bool {
	return a.Height() == b.Height() && a.Width() == b.Width()
}
