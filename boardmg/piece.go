package boardmg

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind is a colorless piece type. KindNone is reserved for the empty square;
// every other kind is a positive integer declared by a Taxonomy.
type Kind int

const KindNone Kind = 0

// Side is the owner of a piece. Its value doubles as the sign of the piece code.
type Side int

const (
	SideNone     Side = 0
	SidePositive Side = 1
	SideNegative Side = -1
)

// SideOf returns the side implied by the sign of a signed code.
func SideOf(code int) Side {
	switch {
	case code > 0:
		return SidePositive
	case code < 0:
		return SideNegative
	default:
		return SideNone
	}
}

// Mul multiplies v by the side: identity for the positive side, negation for
// the negative side and zero for SideNone.
func (s Side) Mul(v int) int {
	switch s {
	case SidePositive:
		return v
	case SideNegative:
		return -v
	default:
		return 0
	}
}

// Neg returns the opposite side. SideNone stays SideNone.
func (s Side) Neg() Side { return -s }

func (s Side) String() string {
	switch s {
	case SidePositive:
		return "positive"
	case SideNegative:
		return "negative"
	default:
		return "none"
	}
}

// PieceID identifies one piece instance. Version tells apart pieces that share
// kind and side (which rook, which pawn).
type PieceID struct {
	Kind    Kind
	Side    Side
	Version int
}

// EmptyID is the empty-square sentinel.
var EmptyID = PieceID{}

// IDFromCode builds a PieceID from its signed code and version.
func IDFromCode(code, version int) PieceID {
	if code == 0 {
		return EmptyID
	}
	side := SideOf(code)
	return PieceID{Kind: Kind(side.Mul(code)), Side: side, Version: version}
}

// Code returns the signed code (kind * side) used as storage unit and map key.
func (id PieceID) Code() int { return id.Side.Mul(int(id.Kind)) }

// IsNone reports whether id is the empty sentinel.
func (id PieceID) IsNone() bool { return id.Kind == KindNone }

// Matches reports whether both pieces belong to the same side.
func (id PieceID) Matches(other PieceID) bool { return id.Side == other.Side }

// Opposes reports whether the pieces belong to strictly opposite sides.
func (id PieceID) Opposes(other PieceID) bool {
	return id.Side != SideNone && id.Side == other.Side.Neg()
}

func (id PieceID) String() string {
	if id.IsNone() {
		return "empty"
	}
	return fmt.Sprintf("%s/%s#%d", id.Kind, id.Side, id.Version)
}

func (k Kind) String() string {
	if name, ok := standardNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ==========================
// Taxonomy
// ==========================

// Taxonomy declares the piece kinds a ruleset knows about. Codes whose
// magnitude is not declared are rejected when a board is built.
type Taxonomy struct {
	names  map[Kind]string
	byName map[string]Kind
}

// NewTaxonomy validates and builds a taxonomy from a kind -> name mapping.
func NewTaxonomy(names map[Kind]string) (*Taxonomy, error) {
	t := &Taxonomy{
		names:  make(map[Kind]string, len(names)),
		byName: make(map[string]Kind, len(names)),
	}
	for k, name := range names {
		if k <= KindNone {
			return nil, fmt.Errorf("kind %d (%q): %w", k, name, ErrUnknownKind)
		}
		if name == "" {
			return nil, fmt.Errorf("kind %d has no name: %w", k, ErrUnknownKind)
		}
		if prev, dup := t.byName[name]; dup {
			return nil, fmt.Errorf("name %q used by kinds %d and %d: %w", name, prev, k, ErrUnknownKind)
		}
		t.names[k] = name
		t.byName[name] = k
	}
	return t, nil
}

// Has reports whether k is a declared kind.
func (t *Taxonomy) Has(k Kind) bool {
	_, ok := t.names[k]
	return ok
}

// Name returns the declared name of k.
func (t *Taxonomy) Name(k Kind) (string, bool) {
	name, ok := t.names[k]
	return name, ok
}

// KindByName looks up a kind by its declared name.
func (t *Taxonomy) KindByName(name string) (Kind, bool) {
	k, ok := t.byName[name]
	return k, ok
}

// Kinds returns the declared kinds in ascending order.
func (t *Taxonomy) Kinds() []Kind {
	kinds := maps.Keys(t.names)
	slices.Sort(kinds)
	return kinds
}

// Format renders id like PieceID.String but with the kind's declared name.
// Undeclared kinds fall back to PieceID.String.
func (t *Taxonomy) Format(id PieceID) string {
	name, ok := t.Name(id.Kind)
	if !ok || id.IsNone() {
		return id.String()
	}
	return fmt.Sprintf("%s/%s#%d", name, id.Side, id.Version)
}

// validCode reports whether a signed code is empty or names a declared kind.
func (t *Taxonomy) validCode(code int) bool {
	if code == 0 {
		return true
	}
	if code < 0 {
		code = -code
	}
	return t.Has(Kind(code))
}
