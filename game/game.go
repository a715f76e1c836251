// Package game ties a board, its move history and a piece set together and
// applies moves to them.
package game

import (
	"board-engine/boardmg"

	"github.com/sirupsen/logrus"
)

// Game owns one board, one history and one piece set, plus the presence maps
// produced by ComputePresence. It is not safe for concurrent use.
type Game struct {
	board   *boardmg.Board
	history *boardmg.History
	set     boardmg.PieceSet

	presence Presence

	log *logrus.Entry
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the entry the game logs through.
func WithLogger(log *logrus.Entry) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// New builds a game over an existing board with an empty history.
func New(set boardmg.PieceSet, board *boardmg.Board, opts ...Option) *Game {
	g := &Game{
		board:   board,
		history: boardmg.NewHistory(),
		set:     set,
		log:     logrus.StandardLogger().WithField("component", "game"),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.presence = newPresence(board.Size())
	return g
}

// NewStandard returns a game at the orthodox chess starting position.
func NewStandard(opts ...Option) (*Game, error) {
	b, err := boardmg.NewBoard(8, 8, boardmg.StandardLayout(), boardmg.Standard.Taxonomy())
	if err != nil {
		return nil, err
	}
	return New(boardmg.Standard, b, opts...), nil
}

// FromFEN returns a standard game set up from the placement field of fen.
// The history starts empty whatever the FEN's castling and en passant fields say.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	b, err := boardmg.BoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return New(boardmg.Standard, b, opts...), nil
}

// Board returns the live board.
func (g *Game) Board() *boardmg.Board { return g.board }

// History returns the live history.
func (g *Game) History() *boardmg.History { return g.history }

// PieceSet returns the rules the game evaluates.
func (g *Game) PieceSet() boardmg.PieceSet { return g.set }

// ValidMoves returns the squares id may move to.
func (g *Game) ValidMoves(id boardmg.PieceID) []boardmg.Square {
	return g.set.ValidMoves(id, g.board, g.history)
}

// ==========================
// Move application
// ==========================

// MoveTo records sq in id's history, vacates id's square and puts id on sq.
// Whatever stood on sq is overwritten. The destination is not checked against
// the piece's rules. It reports false, changing nothing, when id is not on the
// board or sq is off it.
func (g *Game) MoveTo(id boardmg.PieceID, sq boardmg.Square) bool {
	from, ok := g.board.Pos(id)
	if !ok {
		g.log.WithField("piece", g.label(id)).Trace("move ignored: piece not on board")
		return false
	}
	if !g.board.Contains(sq) {
		g.log.WithField("piece", g.label(id)).WithField("to", sq).Trace("move ignored: destination off board")
		return false
	}
	g.history.Push(id, sq)
	g.board.SetSquare(boardmg.EmptyID, from)
	g.board.SetSquare(id, sq)
	g.log.WithFields(logrus.Fields{
		"piece": g.label(id),
		"from":  from,
		"to":    sq,
	}).Debug("piece moved")
	return true
}

// MoveRelative moves id by steps flat squares in its side's direction: forward
// for the positive side, backward for the negative side. Destinations outside
// the board are ignored.
func (g *Game) MoveRelative(id boardmg.PieceID, steps int) bool {
	from, ok := g.board.Pos(id)
	if !ok {
		g.log.WithField("piece", g.label(id)).Trace("relative move ignored: piece not on board")
		return false
	}
	return g.MoveTo(id, from+boardmg.Square(id.Side.Mul(steps)))
}

// Place puts id on sq without touching the history. If id already stands
// elsewhere that square is vacated.
func (g *Game) Place(id boardmg.PieceID, sq boardmg.Square) bool {
	if id.IsNone() || id.Side == boardmg.SideNone || id.Version < 0 || id.Version >= g.board.Size() {
		return false
	}
	if !g.board.Contains(sq) || !g.board.Taxonomy().Has(id.Kind) {
		return false
	}
	if from, ok := g.board.Pos(id); ok && from != sq {
		g.board.SetSquare(boardmg.EmptyID, from)
	}
	g.board.SetSquare(id, sq)
	g.log.WithField("piece", g.label(id)).WithField("to", sq).Debug("piece placed")
	return true
}

// Remove takes id off the board without touching the history.
func (g *Game) Remove(id boardmg.PieceID) bool {
	sq, ok := g.board.Pos(id)
	if !ok {
		return false
	}
	g.board.SetSquare(boardmg.EmptyID, sq)
	g.log.WithField("piece", g.label(id)).WithField("from", sq).Debug("piece removed")
	return true
}

// label names id by the board's taxonomy, so variant kinds log under their
// own names.
func (g *Game) label(id boardmg.PieceID) string {
	return g.board.Taxonomy().Format(id)
}

// ClearState empties the board, forgets the history and zeroes presence.
func (g *Game) ClearState() {
	g.board.Clear()
	g.history.Clear()
	g.ClearPresence()
	g.log.Debug("state cleared")
}
