package boardmg

import "math"

// Unbounded is the step limit of sliding moves.
const Unbounded = math.MaxInt

// Move is a direction vector in the mover's frame plus a step limit.
type Move struct {
	DRow, DCol int
	MaxSteps   int
}

// NewMove constructs a Move. Non-positive maxSteps means Unbounded.
func NewMove(dRow, dCol, maxSteps int) Move {
	if maxSteps <= 0 {
		maxSteps = Unbounded
	}
	return Move{DRow: dRow, DCol: dCol, MaxSteps: maxSteps}
}

// Step is a single-step Move.
func Step(dRow, dCol int) Move { return Move{DRow: dRow, DCol: dCol, MaxSteps: 1} }

// Slide is an unbounded Move.
func Slide(dRow, dCol int) Move { return Move{DRow: dRow, DCol: dCol, MaxSteps: Unbounded} }

// ==========================
// Walk interpretation
// ==========================

// Verdict tells the walk what to do with the current square.
type Verdict uint8

const (
	// Continue includes the square and keeps walking.
	Continue Verdict = iota
	// StopAfter includes the square and ends the walk.
	StopAfter
	// StopBefore excludes the square and ends the walk.
	StopBefore
)

// Interpreter maps the classification of a stepped square to a verdict.
// occupied is false for empty squares, which always classify Free.
type Interpreter interface {
	Interpret(c Classification, occupied bool) Verdict
}

type mobility struct{}

func (mobility) Interpret(c Classification, _ bool) Verdict {
	switch c {
	case Free:
		return Continue
	case Captured:
		return StopAfter
	default:
		return StopBefore
	}
}

type coverage struct{}

func (coverage) Interpret(_ Classification, occupied bool) Verdict {
	if occupied {
		return StopAfter
	}
	return Continue
}

var (
	// Mobility yields the squares a piece may legally land on.
	Mobility Interpreter = mobility{}
	// Coverage yields the squares a piece contests: every occupied square is
	// counted, whoever owns it, and ends the walk.
	Coverage Interpreter = coverage{}
)

// Walk steps from `from` along m as seen by id's side, asking capture to
// classify occupied squares and interp to turn that into a verdict. Ids
// without a side have no frame and reach nothing.
func (m Move) Walk(id PieceID, from Square, capture CaptureRule, b *Board, interp Interpreter) []Square {
	if (m.DRow == 0 && m.DCol == 0) || id.Side == SideNone {
		return nil
	}
	var reached []Square
	captured := 0
	sq := from
	for steps := 0; steps < m.MaxSteps; steps++ {
		next, ok := b.Offset(sq, id.Side, m.DRow, m.DCol)
		if !ok {
			break
		}
		sq = next
		other, _ := b.IDAt(sq)
		occupied := !other.IsNone()
		c := Free
		if occupied {
			c = capture.Classify(id, other, &captured)
		}
		v := interp.Interpret(c, occupied)
		if v == StopBefore {
			break
		}
		reached = append(reached, sq)
		if v == StopAfter {
			break
		}
	}
	return reached
}

// Calculate is Walk with the Mobility interpreter.
func (m Move) Calculate(id PieceID, from Square, capture CaptureRule, b *Board) []Square {
	return m.Walk(id, from, capture, b, Mobility)
}
