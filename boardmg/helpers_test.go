package boardmg_test

import (
	"testing"

	"board-engine/boardmg"

	"github.com/stretchr/testify/require"
)

// sq parses algebraic notation on an 8x8 board.
func sq(name string) boardmg.Square {
	return boardmg.Square(int(name[1]-'1')*8 + int(name[0]-'a'))
}

func sqs(names ...string) []boardmg.Square {
	out := make([]boardmg.Square, len(names))
	for i, n := range names {
		out[i] = sq(n)
	}
	return out
}

// placed builds an 8x8 standard-taxonomy board from square -> code pairs.
func placed(t testing.TB, pieces map[string]int) *boardmg.Board {
	t.Helper()
	codes := make([]int, 64)
	for name, code := range pieces {
		codes[sq(name)] = code
	}
	b, err := boardmg.NewBoard(8, 8, codes, nil)
	require.NoError(t, err)
	return b
}

func standard(t testing.TB) *boardmg.Board {
	t.Helper()
	b, err := boardmg.NewBoard(8, 8, boardmg.StandardLayout(), nil)
	require.NoError(t, err)
	return b
}

func id(kind boardmg.Kind, side boardmg.Side, version int) boardmg.PieceID {
	return boardmg.PieceID{Kind: kind, Side: side, Version: version}
}

const (
	pos = boardmg.SidePositive
	neg = boardmg.SideNegative
)
