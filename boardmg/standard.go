package boardmg

import "golang.org/x/exp/slices"

// Orthodox chess kinds.
const (
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

var standardNames = map[Kind]string{
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

// StandardPieceSet is the built-in orthodox chess rule set. Its tables are
// built once at package init and never modified.
type StandardPieceSet struct {
	tax    *Taxonomy
	tables map[Kind][]Rule
}

// Standard is the shared, read-only orthodox piece set.
var Standard = newStandardPieceSet()

// StandardLayout returns the 8x8 starting position, a1 first. The positive
// side owns rows 0 and 1.
func StandardLayout() []int {
	return []int{
		4, 2, 3, 5, 6, 3, 2, 4,
		1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-1, -1, -1, -1, -1, -1, -1, -1,
		-4, -2, -3, -5, -6, -3, -2, -4,
	}
}

func newStandardPieceSet() *StandardPieceSet {
	tax, err := NewTaxonomy(standardNames)
	if err != nil {
		panic("boardmg: standard taxonomy: " + err.Error())
	}

	orthogonal := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal := [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knight := [][2]int{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}

	slide := func(dirs ...[][2]int) []Rule {
		var rules []Rule
		for _, set := range dirs {
			for _, d := range set {
				rules = append(rules, FreeRule(Slide(d[0], d[1]), CaptureOpposing(1)))
			}
		}
		return rules
	}
	step := func(dirs ...[][2]int) []Rule {
		var rules []Rule
		for _, set := range dirs {
			for _, d := range set {
				rules = append(rules, FreeRule(Step(d[0], d[1]), CaptureOpposing(1)))
			}
		}
		return rules
	}

	tables := map[Kind][]Rule{
		Pawn: {
			FreeRule(Step(1, 0), CaptureNone()),
			Conditional(unmovedRule{move: NewMove(1, 0, 2), capture: CaptureNone()}),
			Conditional(targetRule{move: Step(1, -1), capture: CaptureOpposing(1), want: targetOpposes}),
			Conditional(targetRule{move: Step(1, 1), capture: CaptureOpposing(1), want: targetOpposes}),
			Conditional(enPassantRule{dir: -1}),
			Conditional(enPassantRule{dir: 1}),
		},
		Knight: step(knight),
		Bishop: slide(diagonal),
		Rook: append(slide(orthogonal),
			Conditional(castlingRule{dir: -1, partner: King}),
			Conditional(castlingRule{dir: 1, partner: King}),
		),
		Queen: slide(orthogonal, diagonal),
		King: append(step(orthogonal, diagonal),
			Conditional(castlingRule{dir: -1, partner: Rook, king: true}),
			Conditional(castlingRule{dir: 1, partner: Rook, king: true}),
		),
	}
	return &StandardPieceSet{tax: tax, tables: tables}
}

// Taxonomy returns the orthodox kind set.
func (s *StandardPieceSet) Taxonomy() *Taxonomy { return s.tax }

// Rules returns a copy of k's rule table.
func (s *StandardPieceSet) Rules(k Kind) ([]Rule, bool) {
	r, ok := s.tables[k]
	if !ok {
		return nil, false
	}
	return slices.Clone(r), true
}

func (s *StandardPieceSet) ValidMoves(id PieceID, b *Board, h *History) []Square {
	return Reach(s, id, b, h, Mobility)
}

// homeRow is the pawn starting row of a side.
func homeRow(side Side, b *Board) int {
	if side == SideNegative {
		return b.Rows() - 2
	}
	return 1
}

// ==========================
// Conditional rules
// ==========================

// unmovedRule applies its move only while the piece has no history.
type unmovedRule struct {
	move    Move
	capture CaptureRule
}

func (r unmovedRule) TryResolve(id PieceID, _ *Board, h *History) (Move, CaptureRule, bool) {
	if h.Moved(id) {
		return Move{}, CaptureRule{}, false
	}
	return r.move, r.capture, true
}

type targetWant uint8

const (
	targetOpposes targetWant = iota
	targetEmpty
)

// targetRule applies its move only when the first stepped square holds what
// want asks for.
type targetRule struct {
	move    Move
	capture CaptureRule
	want    targetWant
}

func (r targetRule) TryResolve(id PieceID, b *Board, _ *History) (Move, CaptureRule, bool) {
	from, ok := b.Pos(id)
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	target, ok := b.Offset(from, id.Side, r.move.DRow, r.move.DCol)
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	other, _ := b.IDAt(target)
	switch r.want {
	case targetOpposes:
		ok = other.Opposes(id)
	case targetEmpty:
		ok = other.IsNone()
	}
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	return r.move, r.capture, true
}

// enPassantRule lets a pawn take, diagonally forward towards dir, an enemy pawn
// standing beside it whose only move so far was the two-row jump off its home row.
type enPassantRule struct {
	dir int
}

func (r enPassantRule) TryResolve(id PieceID, b *Board, h *History) (Move, CaptureRule, bool) {
	from, ok := b.Pos(id)
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	beside, ok := b.Offset(from, id.Side, 0, r.dir)
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	other, ok := b.OccupantAt(beside)
	if !ok || other.Kind != Pawn || !other.Opposes(id) {
		return Move{}, CaptureRule{}, false
	}
	trail, ok := h.Trail(other)
	if !ok || len(trail) != 1 || trail[0] != beside {
		return Move{}, CaptureRule{}, false
	}
	row, _ := b.Coords(beside)
	if row != homeRow(other.Side, b)+other.Side.Mul(2) {
		return Move{}, CaptureRule{}, false
	}
	if _, ok := b.Offset(from, id.Side, 1, r.dir); !ok {
		return Move{}, CaptureRule{}, false
	}
	return Step(1, r.dir), CaptureNone(), true
}

// castlingRule scans sideways along dir for the castling partner. Every
// square up to the partner must be empty, the partner must be of the same side
// at least three columns away, and neither piece may have moved. The king jumps
// two columns; the rook lands on the square the king crosses.
type castlingRule struct {
	dir     int
	partner Kind
	king    bool
}

func (r castlingRule) TryResolve(id PieceID, b *Board, h *History) (Move, CaptureRule, bool) {
	if h.Moved(id) {
		return Move{}, CaptureRule{}, false
	}
	from, ok := b.Pos(id)
	if !ok {
		return Move{}, CaptureRule{}, false
	}
	for dist := 1; ; dist++ {
		sq, ok := b.Offset(from, id.Side, 0, r.dir*dist)
		if !ok {
			return Move{}, CaptureRule{}, false
		}
		other, occupied := b.OccupantAt(sq)
		if !occupied {
			continue
		}
		if other.Kind != r.partner || !other.Matches(id) || dist < 3 || h.Moved(other) {
			return Move{}, CaptureRule{}, false
		}
		jump := dist - 1
		if r.king {
			jump = 2
		}
		return Step(0, r.dir*jump), CaptureNone(), true
	}
}
