package game

import (
	"board-engine/boardmg"

	"golang.org/x/exp/slices"
)

// Presence counts, per square, how many pieces of each side contest it.
// Positive holds non-negative counts, Negative non-positive ones, and Combined
// is their sum.
type Presence struct {
	Positive []int
	Negative []int
	Combined []int
}

func newPresence(size int) Presence {
	return Presence{
		Positive: make([]int, size),
		Negative: make([]int, size),
		Combined: make([]int, size),
	}
}

func (p Presence) clone() Presence {
	return Presence{
		Positive: slices.Clone(p.Positive),
		Negative: slices.Clone(p.Negative),
		Combined: slices.Clone(p.Combined),
	}
}

func (p Presence) reset() {
	for i := range p.Positive {
		p.Positive[i] = 0
		p.Negative[i] = 0
		p.Combined[i] = 0
	}
}

// Presence returns a copy of the last computed presence maps.
func (g *Game) Presence() Presence { return g.presence.clone() }

// ClearPresence zeroes the presence maps.
func (g *Game) ClearPresence() { g.presence.reset() }

// ComputePresence recomputes the presence maps from scratch. Each live piece
// contributes once per square it covers: squares are walked with the coverage
// interpreter, so occupied squares of either side count and end the walk.
func (g *Game) ComputePresence() {
	if len(g.presence.Combined) != g.board.Size() {
		g.presence = newPresence(g.board.Size())
	} else {
		g.presence.reset()
	}
	pieces := g.board.Pieces()
	for _, id := range pieces {
		covered := boardmg.Reach(g.set, id, g.board, g.history, boardmg.Coverage)
		slices.Sort(covered)
		covered = slices.Compact(covered)
		for _, sq := range covered {
			switch id.Side {
			case boardmg.SidePositive:
				g.presence.Positive[sq]++
			case boardmg.SideNegative:
				g.presence.Negative[sq]--
			}
		}
	}
	for i := range g.presence.Combined {
		g.presence.Combined[i] = g.presence.Positive[i] + g.presence.Negative[i]
	}
	g.log.WithField("pieces", len(pieces)).Trace("presence computed")
}
