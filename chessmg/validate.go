package chessmg

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate checks the structural preconditions the rules core relies on:
// exactly one king per side, no pawns on either back rank, and an en-passant
// target that is consistent with a just-made double pawn advance. Every
// violation found is reported, aggregated into a single error. A board that
// fails Validate is outside the contract of the generator and the search.
func (b *Board) Validate() error {
	var result *multierror.Error

	var whiteKings, blackKings int
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			switch p := b.squares[r][c]; p {
			case WhiteKing:
				whiteKings++
			case BlackKing:
				blackKings++
			case WhitePawn, BlackPawn:
				if r == 0 || r == 7 {
					result = multierror.Append(result, errors.Errorf("pawn on back rank at %s", Sq(r, c)))
				}
			}
		}
	}
	if whiteKings != 1 {
		result = multierror.Append(result, errors.Errorf("want exactly 1 white king, got %d", whiteKings))
	}
	if blackKings != 1 {
		result = multierror.Append(result, errors.Errorf("want exactly 1 black king, got %d", blackKings))
	}

	if ep := b.enPassant; ep != NoSquare {
		if !ep.OnBoard() || (ep.Row != 2 && ep.Row != 5) {
			result = multierror.Append(result, errors.Errorf("en-passant target %s not on a skip rank", ep))
		} else {
			if b.PieceAt(ep) != NoPiece {
				result = multierror.Append(result, errors.Errorf("en-passant target %s is occupied", ep))
			}
			// The pawn that skipped the target must stand beyond it.
			pawnSq, pawn := Sq(3, ep.Col), WhitePawn
			if ep.Row == 2 {
				pawnSq, pawn = Sq(3, ep.Col), BlackPawn
			} else {
				pawnSq = Sq(4, ep.Col)
			}
			if b.PieceAt(pawnSq) != pawn {
				result = multierror.Append(result, errors.Errorf("no %s pawn behind en-passant target %s", pawn.Color(), ep))
			}
		}
	}

	return result.ErrorOrNil()
}
