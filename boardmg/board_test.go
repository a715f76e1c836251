package boardmg_test

import (
	"testing"

	"board-engine/boardmg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardVersions(t *testing.T) {
	b := standard(t)

	cases := map[string]boardmg.PieceID{
		"a1": id(boardmg.Rook, pos, 0),
		"h1": id(boardmg.Rook, pos, 1),
		"d2": id(boardmg.Pawn, pos, 3),
		"e1": id(boardmg.King, pos, 0),
		"a7": id(boardmg.Pawn, neg, 0),
		"d7": id(boardmg.Pawn, neg, 3),
		"g8": id(boardmg.Knight, neg, 1),
	}
	for name, want := range cases {
		got, ok := b.IDAt(sq(name))
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	empty, ok := b.IDAt(sq("e4"))
	assert.True(t, ok)
	assert.True(t, empty.IsNone())
	_, ok = b.IDAt(64)
	assert.False(t, ok)
}

func TestPositionRoundTrip(t *testing.T) {
	b := standard(t)
	for s := boardmg.Square(0); int(s) < b.Size(); s++ {
		got, ok := b.OccupantAt(s)
		if !ok {
			continue
		}
		p, ok := b.Pos(got)
		require.True(t, ok, "%v", got)
		assert.Equal(t, s, p, "%v", got)
	}
	assert.Len(t, b.Pieces(), 32)
	assert.True(t, b.Validate())
}

func TestPosMissing(t *testing.T) {
	b := standard(t)
	_, ok := b.Pos(id(boardmg.Pawn, pos, 8))
	assert.False(t, ok)
	_, ok = b.Pos(id(boardmg.Queen, pos, 1))
	assert.False(t, ok)
	_, ok = b.Pos(boardmg.EmptyID)
	assert.False(t, ok)
}

func TestNewBoardErrors(t *testing.T) {
	_, err := boardmg.NewBoard(0, 8, nil, nil)
	assert.ErrorIs(t, err, boardmg.ErrBadGeometry)

	_, err = boardmg.NewBoard(8, 8, make([]int, 63), nil)
	assert.ErrorIs(t, err, boardmg.ErrLayoutSize)

	codes := make([]int, 4)
	codes[2] = -9
	_, err = boardmg.NewBoard(2, 2, codes, nil)
	assert.ErrorIs(t, err, boardmg.ErrUnknownKind)

	_, err = boardmg.EmptyBoard(-1, 3, nil)
	assert.ErrorIs(t, err, boardmg.ErrBadGeometry)
}

func TestSetSquareOverwrite(t *testing.T) {
	b := placed(t, map[string]int{"a1": 4, "a4": -1})
	rook := id(boardmg.Rook, pos, 0)
	pawn := id(boardmg.Pawn, neg, 0)

	b.SetSquare(boardmg.EmptyID, sq("a1"))
	b.SetSquare(rook, sq("a4"))

	p, ok := b.Pos(rook)
	require.True(t, ok)
	assert.Equal(t, sq("a4"), p)
	_, ok = b.Pos(pawn)
	assert.False(t, ok, "captured piece must lose its position")
	assert.Equal(t, []boardmg.PieceID{rook}, b.Pieces())
	assert.True(t, b.Validate())
}

func TestSetSquareKeepsOtherVersions(t *testing.T) {
	b := standard(t)
	d2 := id(boardmg.Pawn, pos, 3)

	b.SetSquare(boardmg.EmptyID, sq("d2"))
	b.SetSquare(d2, sq("d4"))

	for v := 0; v < 8; v++ {
		p := id(boardmg.Pawn, pos, v)
		got, ok := b.Pos(p)
		require.True(t, ok)
		at, _ := b.IDAt(got)
		assert.Equal(t, p, at)
	}
	assert.True(t, b.Validate())
}

func TestSnapshots(t *testing.T) {
	b := standard(t)

	row, ok := b.Row(0)
	require.True(t, ok)
	assert.Equal(t, []int{4, 2, 3, 5, 6, 3, 2, 4}, row)

	col, ok := b.Col(4)
	require.True(t, ok)
	assert.Equal(t, []int{6, 1, 0, 0, 0, 0, -1, -6}, col)

	_, ok = b.Row(8)
	assert.False(t, ok)
	_, ok = b.Col(-1)
	assert.False(t, ok)

	codes := b.Codes()
	codes[0] = 0
	assert.Equal(t, boardmg.StandardLayout(), b.Codes())
}

func TestOffsetFrames(t *testing.T) {
	b := standard(t)

	got, ok := b.Offset(sq("e2"), pos, 1, 0)
	assert.True(t, ok)
	assert.Equal(t, sq("e3"), got)

	got, ok = b.Offset(sq("e7"), neg, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, sq("d6"), got)

	_, ok = b.Offset(sq("h1"), pos, 0, 1)
	assert.False(t, ok, "must not wrap to the next row")
	_, ok = b.Offset(sq("a1"), neg, 1, 0)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	b := standard(t)
	b.Clear()
	assert.Empty(t, b.Pieces())
	_, ok := b.Pos(id(boardmg.King, pos, 0))
	assert.False(t, ok)
	assert.True(t, b.Validate())
}

func TestSidelessIDsAreAbsent(t *testing.T) {
	b := standard(t)
	h := boardmg.NewHistory()

	for _, k := range []boardmg.Kind{boardmg.Pawn, boardmg.Knight, boardmg.Rook, boardmg.Queen} {
		sideless := boardmg.PieceID{Kind: k, Side: boardmg.SideNone}
		_, ok := b.Pos(sideless)
		assert.False(t, ok, "%v", sideless)
		assert.Empty(t, boardmg.Standard.ValidMoves(sideless, b, h), "%v", sideless)
	}

	b.SetSquare(boardmg.PieceID{Kind: boardmg.Rook, Side: boardmg.SideNone}, sq("e4"))
	occupant, ok := b.IDAt(sq("e4"))
	require.True(t, ok)
	assert.True(t, occupant.IsNone())
	assert.Len(t, b.Pieces(), 32)
	assert.True(t, b.Validate())
}

func TestSetSquareRejectsOversizedVersion(t *testing.T) {
	b, err := boardmg.EmptyBoard(8, 8, nil)
	require.NoError(t, err)

	huge := id(boardmg.Rook, pos, 1<<25)
	b.SetSquare(huge, sq("a1"))
	_, ok := b.Pos(huge)
	assert.False(t, ok)
	_, occupied := b.OccupantAt(sq("a1"))
	assert.False(t, occupied)

	b.SetSquare(id(boardmg.Rook, pos, 64), sq("a1"))
	assert.Empty(t, b.Pieces())

	last := id(boardmg.Rook, pos, 63)
	b.SetSquare(last, sq("a1"))
	p, ok := b.Pos(last)
	require.True(t, ok)
	assert.Equal(t, sq("a1"), p)
	assert.True(t, b.Validate())
}

func TestNonSquareBoard(t *testing.T) {
	b, err := boardmg.EmptyBoard(3, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, 15, b.Size())
	r, c := b.Coords(7)
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	s, ok := b.SquareAt(2, 4)
	assert.True(t, ok)
	assert.Equal(t, boardmg.Square(14), s)
	_, ok = b.SquareAt(3, 0)
	assert.False(t, ok)
}
