package boardmg

import "golang.org/x/exp/slices"

type historyKey struct {
	code    int
	version int
}

// History records, per piece, the squares it has moved to. Origins are never
// stored; an absent trail means the piece has not moved.
type History struct {
	trails map[historyKey][]Square
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{trails: make(map[historyKey][]Square)}
}

// Push appends dest to id's trail.
func (h *History) Push(id PieceID, dest Square) {
	k := historyKey{id.Code(), id.Version}
	h.trails[k] = append(h.trails[k], dest)
}

// Trail returns a copy of id's trail; ok is false if id never moved.
func (h *History) Trail(id PieceID) ([]Square, bool) {
	t, ok := h.trails[historyKey{id.Code(), id.Version}]
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}

// Moved reports whether id has at least one recorded move.
func (h *History) Moved(id PieceID) bool {
	_, ok := h.trails[historyKey{id.Code(), id.Version}]
	return ok
}

// Len returns the number of recorded moves of id.
func (h *History) Len(id PieceID) int { return len(h.trails[historyKey{id.Code(), id.Version}]) }

// Clear forgets every trail.
func (h *History) Clear() {
	h.trails = make(map[historyKey][]Square)
}
