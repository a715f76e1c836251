package boardmg

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Square is a row-major board index. Row 0 holds squares 0..cols-1.
type Square int

const NoSquare Square = -1

// Board stores one signed code per square plus a reverse index from code to
// the square currently held by each version of that code.
//
// Invariant: for every occupied square, index[code][version] points back at it.
// A version whose piece left the board keeps its slot set to NoSquare, so
// versions never shift for the pieces that remain.
type Board struct {
	rows, cols int
	squares    []int
	index      map[int][]Square
	tax        *Taxonomy
}

// NewBoard builds a board of rows x cols from a flat row-major layout of signed
// codes. Repeated codes get versions 0, 1, 2... in index order. A nil taxonomy
// means the standard chess taxonomy.
func NewBoard(rows, cols int, codes []int, tax *Taxonomy) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadGeometry)
	}
	if len(codes) != rows*cols {
		return nil, fmt.Errorf("got %d codes for a %dx%d board: %w", len(codes), rows, cols, ErrLayoutSize)
	}
	if tax == nil {
		tax = Standard.Taxonomy()
	}
	b := &Board{
		rows:    rows,
		cols:    cols,
		squares: make([]int, len(codes)),
		index:   make(map[int][]Square),
		tax:     tax,
	}
	for sq, code := range codes {
		if !tax.validCode(code) {
			return nil, fmt.Errorf("code %d at square %d: %w", code, sq, ErrUnknownKind)
		}
		if code == 0 {
			continue
		}
		b.squares[sq] = code
		b.index[code] = append(b.index[code], Square(sq))
	}
	return b, nil
}

// EmptyBoard returns a board with no pieces.
func EmptyBoard(rows, cols int, tax *Taxonomy) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadGeometry)
	}
	return NewBoard(rows, cols, make([]int, rows*cols), tax)
}

// ==========================
// Geometry
// ==========================

// Rows returns the number of rows (ranks).
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns (files).
func (b *Board) Cols() int { return b.cols }

// Size returns rows * cols.
func (b *Board) Size() int { return len(b.squares) }

// Taxonomy returns the kind set the board was built with.
func (b *Board) Taxonomy() *Taxonomy { return b.tax }

// Contains reports whether sq is a square of this board.
func (b *Board) Contains(sq Square) bool { return sq >= 0 && int(sq) < len(b.squares) }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Coords splits a square into its row and column.
func (b *Board) Coords(sq Square) (row, col int) {
	return int(sq) / b.cols, int(sq) % b.cols
}

// SquareAt joins a row and column into a square.
func (b *Board) SquareAt(row, col int) (Square, bool) {
	if !b.InBounds(row, col) {
		return NoSquare, false
	}
	return Square(row*b.cols + col), true
}

// Offset steps from sq by (dRow, dCol) as seen by side: the negative side's
// frame is rotated half a turn, so its "forward" is towards row 0.
func (b *Board) Offset(sq Square, side Side, dRow, dCol int) (Square, bool) {
	if !b.Contains(sq) {
		return NoSquare, false
	}
	row, col := b.Coords(sq)
	return b.SquareAt(row+side.Mul(dRow), col+side.Mul(dCol))
}

// ==========================
// Lookups
// ==========================

// IDAt returns the piece on sq, or EmptyID for an empty square. ok is false
// only when sq is off the board.
func (b *Board) IDAt(sq Square) (PieceID, bool) {
	if !b.Contains(sq) {
		return EmptyID, false
	}
	code := b.squares[sq]
	if code == 0 {
		return EmptyID, true
	}
	return IDFromCode(code, b.versionAt(code, sq)), true
}

// OccupantAt is IDAt that also reports false for empty squares.
func (b *Board) OccupantAt(sq Square) (PieceID, bool) {
	id, ok := b.IDAt(sq)
	if !ok || id.IsNone() {
		return EmptyID, false
	}
	return id, true
}

// Pos returns the square holding id.
func (b *Board) Pos(id PieceID) (Square, bool) {
	code := id.Code()
	if code == 0 || !b.validVersion(id.Version) {
		return NoSquare, false
	}
	if slots, ok := b.index[code]; ok {
		if id.Version >= len(slots) || slots[id.Version] == NoSquare {
			return NoSquare, false
		}
		return slots[id.Version], true
	}
	// No reverse-index entry: count occurrences in scan order.
	seen := 0
	for sq, c := range b.squares {
		if c != code {
			continue
		}
		if seen == id.Version {
			return Square(sq), true
		}
		seen++
	}
	return NoSquare, false
}

// versionAt resolves which version of code sits on sq.
func (b *Board) versionAt(code int, sq Square) int {
	if slots, ok := b.index[code]; ok {
		if v := slices.Index(slots, sq); v >= 0 {
			return v
		}
	}
	seen := 0
	for s := 0; s < int(sq); s++ {
		if b.squares[s] == code {
			seen++
		}
	}
	return seen
}

// ==========================
// Mutation
// ==========================

// SetSquare puts id on sq and records sq in id's reverse-index slot. The square
// id came from is left untouched; callers vacate it with SetSquare(EmptyID, from).
// A different piece already on sq loses its slot. Off-board squares and
// versions outside [0, Size) are ignored. An id with code 0, empty or sideless,
// clears the square.
func (b *Board) SetSquare(id PieceID, sq Square) {
	if !b.Contains(sq) {
		return
	}
	code := id.Code()
	if code != 0 && !b.validVersion(id.Version) {
		return
	}
	if prev := b.squares[sq]; prev != 0 {
		v := b.versionAt(prev, sq)
		if prev != code || v != id.Version {
			if slots := b.index[prev]; v < len(slots) && slots[v] == sq {
				slots[v] = NoSquare
			}
		}
	}
	b.squares[sq] = code
	if code == 0 {
		return
	}
	slots := b.index[code]
	for len(slots) <= id.Version {
		slots = append(slots, NoSquare)
	}
	slots[id.Version] = sq
	b.index[code] = slots
}

// validVersion reports whether v fits the board: no code can have more
// versions than there are squares.
func (b *Board) validVersion(v int) bool { return v >= 0 && v < len(b.squares) }

// Clear empties the board and drops the reverse index.
func (b *Board) Clear() {
	for i := range b.squares {
		b.squares[i] = 0
	}
	b.index = make(map[int][]Square)
}

// ==========================
// Snapshots
// ==========================

// Row returns a copy of row i as signed codes.
func (b *Board) Row(i int) ([]int, bool) {
	if i < 0 || i >= b.rows {
		return nil, false
	}
	row := make([]int, b.cols)
	copy(row, b.squares[i*b.cols:(i+1)*b.cols])
	return row, true
}

// Col returns a copy of column i as signed codes, row 0 first.
func (b *Board) Col(i int) ([]int, bool) {
	if i < 0 || i >= b.cols {
		return nil, false
	}
	col := make([]int, b.rows)
	for r := 0; r < b.rows; r++ {
		col[r] = b.squares[r*b.cols+i]
	}
	return col, true
}

// Codes returns a copy of the whole board as signed codes.
func (b *Board) Codes() []int { return slices.Clone(b.squares) }

// Pieces lists every piece on the board, ordered by code then version.
func (b *Board) Pieces() []PieceID {
	codes := maps.Keys(b.index)
	slices.Sort(codes)
	var ids []PieceID
	for _, code := range codes {
		for v, sq := range b.index[code] {
			if sq != NoSquare {
				ids = append(ids, IDFromCode(code, v))
			}
		}
	}
	return ids
}

// Validate checks that storage and reverse index agree.
func (b *Board) Validate() bool {
	referenced := 0
	for code, slots := range b.index {
		for _, sq := range slots {
			if sq == NoSquare {
				continue
			}
			if !b.Contains(sq) || b.squares[sq] != code {
				return false
			}
			referenced++
		}
	}
	occupied := 0
	for _, c := range b.squares {
		if c != 0 {
			occupied++
		}
	}
	return occupied == referenced
}
