package boardmg

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// LayoutFromFEN converts the piece placement of a FEN string into a flat 8x8
// layout of signed codes, a1 first. White maps to the positive side. Only the
// placement is kept; side to move, castling rights and clocks are dropped.
func LayoutFromFEN(fen string) ([]int, error) {
	pos, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", fen, err, ErrBadFEN)
	}
	codes := make([]int, 64)
	for sq := 0; sq < 64; sq++ {
		p := pos.PieceAt(goosemg.Square(sq))
		if p == goosemg.NoPiece {
			continue
		}
		code := int(p.Type())
		if p.Color() == goosemg.Black {
			code = -code
		}
		codes[sq] = code
	}
	return codes, nil
}

// BoardFromFEN builds a standard 8x8 board from a FEN placement.
func BoardFromFEN(fen string) (*Board, error) {
	codes, err := LayoutFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewBoard(8, 8, codes, Standard.Taxonomy())
}
