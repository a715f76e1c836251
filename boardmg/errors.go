package boardmg

import "errors"

// Construction errors. They describe configuration mistakes and are returned
// before any board state exists; runtime lookups never produce them.
var (
	ErrBadGeometry = errors.New("invalid board geometry")
	ErrLayoutSize  = errors.New("layout does not match board size")
	ErrUnknownKind = errors.New("piece kind not declared by taxonomy")
	ErrBadFEN      = errors.New("invalid FEN")
)
