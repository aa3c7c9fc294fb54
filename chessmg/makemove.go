package chessmg

import "github.com/pkg/errors"

// MoveState holds the minimal state needed to undo a move exactly: the
// captured piece and its square, plus every board field Apply mutates.
type MoveState struct {
	move          Move
	moved         Piece
	captured      Piece
	capturedSq    Square
	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevSide      Color
}

// Move returns the move this state undoes.
func (st MoveState) Move() Move { return st.move }

// Captured returns the piece removed by the move, or NoPiece. Consumed by
// material-tracking collaborators.
func (st MoveState) Captured() Piece { return st.captured }

// Apply makes a move on the board, updating piece placement, castling
// rights, the en-passant target, the clocks, and the side to move. The move
// is assumed to come from the generator; use Push for untrusted input.
// The returned MoveState reverses the mutation exactly via Unapply.
func (b *Board) Apply(m Move) MoveState {
	moved := b.PieceAt(m.From)
	mover := moved.Color()

	st := MoveState{
		move:          m,
		moved:         moved,
		captured:      NoPiece,
		capturedSq:    NoSquare,
		prevCastling:  b.castlingRights,
		prevEnPassant: b.enPassant,
		prevHalfmove:  b.halfmoveClock,
		prevFullmove:  b.fullmoveNumber,
		prevSide:      b.sideToMove,
	}

	// Remove the captured piece. For en passant it sits beside the origin
	// row, not on the destination square.
	if m.IsEnPassant {
		capSq := Sq(m.From.Row, m.To.Col)
		st.captured = b.squares[capSq.Row][capSq.Col]
		st.capturedSq = capSq
		b.squares[capSq.Row][capSq.Col] = NoPiece
	} else if target := b.PieceAt(m.To); target != NoPiece {
		st.captured = target
		st.capturedSq = m.To
	}

	// Relocate the moving piece, promoting if requested.
	b.squares[m.From.Row][m.From.Col] = NoPiece
	if m.Promotion != PieceTypeNone {
		b.squares[m.To.Row][m.To.Col] = PieceFromType(mover, m.Promotion)
	} else {
		b.squares[m.To.Row][m.To.Col] = moved
	}

	// Castling relocates the rook as well.
	if m.IsCastleKingside {
		b.squares[m.From.Row][5] = b.squares[m.From.Row][7]
		b.squares[m.From.Row][7] = NoPiece
	} else if m.IsCastleQueenside {
		b.squares[m.From.Row][3] = b.squares[m.From.Row][0]
		b.squares[m.From.Row][0] = NoPiece
	}

	// Revoke castling rights. Rights are only ever cleared, never restored.
	switch moved {
	case WhiteKing:
		b.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		b.castlingRights &^= CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		if m.From == Sq(7, 0) {
			b.castlingRights &^= CastlingWhiteQ
		} else if m.From == Sq(7, 7) {
			b.castlingRights &^= CastlingWhiteK
		}
	case BlackRook:
		if m.From == Sq(0, 0) {
			b.castlingRights &^= CastlingBlackQ
		} else if m.From == Sq(0, 7) {
			b.castlingRights &^= CastlingBlackK
		}
	}
	// A rook captured on its home square also loses its right.
	if st.captured.Type() == PieceTypeRook {
		switch st.capturedSq {
		case Sq(7, 0):
			b.castlingRights &^= CastlingWhiteQ
		case Sq(7, 7):
			b.castlingRights &^= CastlingWhiteK
		case Sq(0, 0):
			b.castlingRights &^= CastlingBlackQ
		case Sq(0, 7):
			b.castlingRights &^= CastlingBlackK
		}
	}

	// The en-passant target exists only for the single move after a double
	// pawn advance.
	if moved.Type() == PieceTypePawn && abs(m.To.Row-m.From.Row) == 2 {
		b.enPassant = Sq((m.From.Row+m.To.Row)/2, m.From.Col)
	} else {
		b.enPassant = NoSquare
	}

	if moved.Type() == PieceTypePawn || st.captured != NoPiece {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = mover.Other()

	return st
}

// Unapply restores the board to its exact state before the corresponding
// Apply, including castling rights, en-passant target, and clocks.
func (b *Board) Unapply(st MoveState) {
	m := st.move

	// Move the piece back, demoting a promoted pawn.
	b.squares[m.To.Row][m.To.Col] = NoPiece
	b.squares[m.From.Row][m.From.Col] = st.moved

	if m.IsCastleKingside {
		b.squares[m.From.Row][7] = b.squares[m.From.Row][5]
		b.squares[m.From.Row][5] = NoPiece
	} else if m.IsCastleQueenside {
		b.squares[m.From.Row][0] = b.squares[m.From.Row][3]
		b.squares[m.From.Row][3] = NoPiece
	}

	if st.captured != NoPiece {
		b.squares[st.capturedSq.Row][st.capturedSq.Col] = st.captured
	}

	b.castlingRights = st.prevCastling
	b.enPassant = st.prevEnPassant
	b.halfmoveClock = st.prevHalfmove
	b.fullmoveNumber = st.prevFullmove
	b.sideToMove = st.prevSide
}

// Push applies a move proposed by a caller. The move must be present in the
// legal-move set for the side to move; anything else is rejected without
// touching the board, never coerced to a legal alternative.
func (b *Board) Push(m Move) (MoveState, error) {
	p := b.PieceAt(m.From)
	if p == NoPiece {
		return MoveState{}, errors.Errorf("illegal move %s: no piece on %s", m, m.From)
	}
	if p.Color() != b.sideToMove {
		return MoveState{}, errors.Errorf("illegal move %s: %s piece but %s to move", m, p.Color(), b.sideToMove)
	}
	for _, legal := range b.LegalMoves(b.sideToMove) {
		if legal == m {
			return b.Apply(m), nil
		}
	}
	return MoveState{}, errors.Errorf("illegal move %s for %s", m, b.sideToMove)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
