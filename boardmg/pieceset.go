package boardmg

// ConditionalRule produces a move only when the position allows it.
type ConditionalRule interface {
	TryResolve(id PieceID, b *Board, h *History) (Move, CaptureRule, bool)
}

// ConditionFunc adapts a plain function to ConditionalRule.
type ConditionFunc func(id PieceID, b *Board, h *History) (Move, CaptureRule, bool)

// TryResolve calls f.
func (f ConditionFunc) TryResolve(id PieceID, b *Board, h *History) (Move, CaptureRule, bool) {
	return f(id, b, h)
}

// Rule is one entry of a piece's rule table: either a fixed move (Free) or a
// ConditionalRule that is resolved against the position first.
type Rule struct {
	move    Move
	capture CaptureRule
	cond    ConditionalRule
}

// FreeRule is an unconditional move.
func FreeRule(m Move, c CaptureRule) Rule { return Rule{move: m, capture: c} }

// Conditional wraps a ConditionalRule.
func Conditional(c ConditionalRule) Rule { return Rule{cond: c} }

// WhenUnmoved applies m only while the piece has no recorded moves.
func WhenUnmoved(m Move, c CaptureRule) Rule {
	return Conditional(unmovedRule{move: m, capture: c})
}

// WhenTargetOpposes applies m only when its first square holds an opposing piece.
func WhenTargetOpposes(m Move, c CaptureRule) Rule {
	return Conditional(targetRule{move: m, capture: c, want: targetOpposes})
}

// WhenTargetEmpty applies m only when its first square is empty.
func WhenTargetEmpty(m Move, c CaptureRule) Rule {
	return Conditional(targetRule{move: m, capture: c, want: targetEmpty})
}

// IsConditional reports whether the rule needs resolving.
func (r Rule) IsConditional() bool { return r.cond != nil }

// Resolve returns the move to walk for id, if any.
func (r Rule) Resolve(id PieceID, b *Board, h *History) (Move, CaptureRule, bool) {
	if r.cond == nil {
		return r.move, r.capture, true
	}
	return r.cond.TryResolve(id, b, h)
}

// PieceSet maps piece kinds to their ordered rule tables.
type PieceSet interface {
	Rules(k Kind) ([]Rule, bool)
	ValidMoves(id PieceID, b *Board, h *History) []Square
}

// Reach evaluates every rule of id's kind in table order and concatenates the
// walked squares. Duplicates are kept: two rules may reach the same square.
// The result is empty when id is not on the board or its kind has no rules.
func Reach(set PieceSet, id PieceID, b *Board, h *History, interp Interpreter) []Square {
	from, ok := b.Pos(id)
	if !ok {
		return nil
	}
	rules, ok := set.Rules(id.Kind)
	if !ok {
		return nil
	}
	var reached []Square
	for _, r := range rules {
		m, c, ok := r.Resolve(id, b, h)
		if !ok {
			continue
		}
		reached = append(reached, m.Walk(id, from, c, b, interp)...)
	}
	return reached
}

// ==========================
// Dynamic piece set
// ==========================

// DynamicPieceSet is a piece set filled at runtime through Insert.
type DynamicPieceSet struct {
	rules map[Kind][]Rule
}

// NewDynamicPieceSet returns an empty set.
func NewDynamicPieceSet() *DynamicPieceSet {
	return &DynamicPieceSet{rules: make(map[Kind][]Rule)}
}

// Insert appends r to k's table.
func (s *DynamicPieceSet) Insert(k Kind, r Rule) {
	s.rules[k] = append(s.rules[k], r)
}

// InsertAll appends rules to k's table in order.
func (s *DynamicPieceSet) InsertAll(k Kind, rules ...Rule) {
	s.rules[k] = append(s.rules[k], rules...)
}

func (s *DynamicPieceSet) Rules(k Kind) ([]Rule, bool) {
	r, ok := s.rules[k]
	return r, ok
}

func (s *DynamicPieceSet) ValidMoves(id PieceID, b *Board, h *History) []Square {
	return Reach(s, id, b, h, Mobility)
}
