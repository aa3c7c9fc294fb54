package chessmg

// Move is a value describing one chess move: origin, destination, an
// optional promotion piece type, and flags for the special move kinds.
// A Move never references into a Board; applying it is the Board's job.
type Move struct {
	From, To Square

	// Promotion is the piece type a promoting pawn becomes, or PieceTypeNone.
	Promotion PieceType

	IsCapture         bool
	IsCastleKingside  bool
	IsCastleQueenside bool
	IsEnPassant       bool
}

// String produces the coordinate form of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case PieceTypeQueen:
		s += "q"
	case PieceTypeRook:
		s += "r"
	case PieceTypeBishop:
		s += "b"
	case PieceTypeKnight:
		s += "n"
	}
	return s
}
