package boardmg

// Classification is how a capture rule sees one stepped-on square.
type Classification uint8

const (
	// Free: the walk may pass through the square.
	Free Classification = iota
	// Captured: the square is taken and the walk ends there.
	Captured
	// Blocked: the square is excluded and the walk ends before it.
	Blocked
)

func (c Classification) String() string {
	switch c {
	case Free:
		return "free"
	case Captured:
		return "captured"
	default:
		return "blocked"
	}
}

type captureKind uint8

const (
	captureNone captureKind = iota
	captureMatching
	captureOpposing
	captureAll
	captureSpecific
)

// CapturePredicate decides whether mover may take occupant after captured
// earlier captures in the same walk.
type CapturePredicate func(mover, occupant PieceID, captured int) bool

// CaptureRule is the landing policy of a move. The zero value is CaptureNone.
type CaptureRule struct {
	kind captureKind
	max  int
	pred CapturePredicate
}

// CaptureNone never lands on an occupied square.
func CaptureNone() CaptureRule { return CaptureRule{kind: captureNone} }

// CaptureMatching takes up to n same-side occupants.
func CaptureMatching(n int) CaptureRule { return CaptureRule{kind: captureMatching, max: n} }

// CaptureOpposing takes up to n opposing occupants.
func CaptureOpposing(n int) CaptureRule { return CaptureRule{kind: captureOpposing, max: n} }

// CaptureAll takes up to n occupants of either side.
func CaptureAll(n int) CaptureRule { return CaptureRule{kind: captureAll, max: n} }

// CaptureSpecific delegates the decision to pred. A nil pred behaves like CaptureNone.
func CaptureSpecific(pred CapturePredicate) CaptureRule {
	return CaptureRule{kind: captureSpecific, pred: pred}
}

// Max returns the capture allowance (zero for None and Specific).
func (c CaptureRule) Max() int { return c.max }

// Classify reports what mover may do with the occupant of a stepped square.
// captured is the running count for the current walk and is bumped on capture.
func (c CaptureRule) Classify(mover, occupant PieceID, captured *int) Classification {
	if occupant.IsNone() {
		return Free
	}
	var ok bool
	switch c.kind {
	case captureMatching:
		ok = mover.Matches(occupant) && *captured < c.max
	case captureOpposing:
		ok = mover.Opposes(occupant) && *captured < c.max
	case captureAll:
		ok = *captured < c.max
	case captureSpecific:
		ok = c.pred != nil && c.pred(mover, occupant, *captured)
	}
	if !ok {
		return Blocked
	}
	*captured++
	return Captured
}

func (c CaptureRule) String() string {
	switch c.kind {
	case captureMatching:
		return "matching"
	case captureOpposing:
		return "opposing"
	case captureAll:
		return "all"
	case captureSpecific:
		return "specific"
	default:
		return "none"
	}
}
