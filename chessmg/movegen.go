package chessmg

// Movement patterns shared by generation and attack detection.
var (
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	rookDirs   = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// promotionChoices is the order promotion variants are emitted in.
var promotionChoices = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// pawnDirection returns the row delta a pawn of the given color advances by.
// White moves toward row 0, Black toward row 7; this is a pure function of
// color, never of display orientation.
func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row a pawn of the given color starts on.
func pawnStartRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}

// promotionRow returns the farthest row for a pawn of the given color.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return 7
}

// LegalMoves returns every fully legal move for the given side: pseudo-legal
// moves filtered by make/undo simulation so that no returned move leaves the
// mover's own king in check.
func (b *Board) LegalMoves(side Color) []Move {
	pseudo := b.PseudoLegalMoves(side)
	legal := pseudo[:0]
	for _, m := range pseudo {
		st := b.Apply(m)
		inCheck := b.InCheck(side)
		b.Unapply(st)
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

// PseudoLegalMoves enumerates moves obeying piece movement patterns and
// occupancy, without the leaves-own-king-in-check filter. Castling moves are
// already gated on the path-safety conditions, since those are part of the
// castling pattern itself.
func (b *Board) PseudoLegalMoves(side Color) []Move {
	moves := make([]Move, 0, 48)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.squares[r][c]
			if p == NoPiece || p.Color() != side {
				continue
			}
			from := Sq(r, c)
			switch p.Type() {
			case PieceTypePawn:
				moves = b.pawnMoves(from, side, moves)
			case PieceTypeKnight:
				moves = b.stepMoves(from, side, knightOffsets, moves)
			case PieceTypeBishop:
				moves = b.slidingMoves(from, side, bishopDirs[:], moves)
			case PieceTypeRook:
				moves = b.slidingMoves(from, side, rookDirs[:], moves)
			case PieceTypeQueen:
				moves = b.slidingMoves(from, side, rookDirs[:], moves)
				moves = b.slidingMoves(from, side, bishopDirs[:], moves)
			case PieceTypeKing:
				moves = b.stepMoves(from, side, kingOffsets, moves)
			}
		}
	}
	moves = b.castlingMoves(side, moves)
	return moves
}

// pawnMoves generates pushes, double pushes, diagonal captures, en passant,
// and promotion variants for the pawn on from.
func (b *Board) pawnMoves(from Square, side Color, moves []Move) []Move {
	dir := pawnDirection(side)
	promoRow := promotionRow(side)

	appendPawnMove := func(to Square, capture bool) []Move {
		if to.Row == promoRow {
			// One variant per promotion choice; the caller picks among them.
			for _, pt := range promotionChoices {
				moves = append(moves, Move{From: from, To: to, Promotion: pt, IsCapture: capture})
			}
			return moves
		}
		return append(moves, Move{From: from, To: to, IsCapture: capture})
	}

	one := Sq(from.Row+dir, from.Col)
	if one.OnBoard() && b.PieceAt(one) == NoPiece {
		moves = appendPawnMove(one, false)
		two := Sq(from.Row+2*dir, from.Col)
		if from.Row == pawnStartRow(side) && b.PieceAt(two) == NoPiece {
			moves = append(moves, Move{From: from, To: two})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := Sq(from.Row+dir, from.Col+dc)
		if !to.OnBoard() {
			continue
		}
		target := b.PieceAt(to)
		if target != NoPiece && target.Color() != side {
			moves = appendPawnMove(to, true)
		}
		// En passant: the target square was skipped by an enemy double
		// advance last move; the captured pawn is not on the destination.
		if target == NoPiece && to == b.enPassant {
			moves = append(moves, Move{From: from, To: to, IsCapture: true, IsEnPassant: true})
		}
	}
	return moves
}

// stepMoves generates single-step moves for knights and kings.
func (b *Board) stepMoves(from Square, side Color, offsets [8][2]int, moves []Move) []Move {
	for _, d := range offsets {
		to := Sq(from.Row+d[0], from.Col+d[1])
		if !to.OnBoard() {
			continue
		}
		target := b.PieceAt(to)
		if target == NoPiece {
			moves = append(moves, Move{From: from, To: to})
		} else if target.Color() != side {
			moves = append(moves, Move{From: from, To: to, IsCapture: true})
		}
	}
	return moves
}

// slidingMoves generates ray moves for bishops, rooks, and queens. Generation
// stops at the first occupied square along each ray, including that square
// only when it holds an opposing piece.
func (b *Board) slidingMoves(from Square, side Color, dirs [][2]int, moves []Move) []Move {
	for _, d := range dirs {
		to := Sq(from.Row+d[0], from.Col+d[1])
		for to.OnBoard() {
			target := b.PieceAt(to)
			if target == NoPiece {
				moves = append(moves, Move{From: from, To: to})
			} else {
				if target.Color() != side {
					moves = append(moves, Move{From: from, To: to, IsCapture: true})
				}
				break
			}
			to = Sq(to.Row+d[0], to.Col+d[1])
		}
	}
	return moves
}

// castlingMoves appends the castle moves available to side. A castle is
// generated only if the right is still held, king and rook sit on their
// original squares, the squares between them are empty, the king is not in
// check, and the king neither crosses nor lands on an attacked square.
func (b *Board) castlingMoves(side Color, moves []Move) []Move {
	homeRow := 7
	kingRight, queenRight := CastlingWhiteK, CastlingWhiteQ
	if side == Black {
		homeRow = 0
		kingRight, queenRight = CastlingBlackK, CastlingBlackQ
	}
	kingHome := Sq(homeRow, 4)
	if b.PieceAt(kingHome) != PieceFromType(side, PieceTypeKing) {
		return moves
	}
	rook := PieceFromType(side, PieceTypeRook)
	enemy := side.Other()

	if b.castlingRights&kingRight != 0 && b.PieceAt(Sq(homeRow, 7)) == rook &&
		b.PieceAt(Sq(homeRow, 5)) == NoPiece && b.PieceAt(Sq(homeRow, 6)) == NoPiece &&
		!b.IsSquareAttacked(kingHome, enemy) &&
		!b.IsSquareAttacked(Sq(homeRow, 5), enemy) && !b.IsSquareAttacked(Sq(homeRow, 6), enemy) {
		moves = append(moves, Move{From: kingHome, To: Sq(homeRow, 6), IsCastleKingside: true})
	}
	if b.castlingRights&queenRight != 0 && b.PieceAt(Sq(homeRow, 0)) == rook &&
		b.PieceAt(Sq(homeRow, 1)) == NoPiece && b.PieceAt(Sq(homeRow, 2)) == NoPiece && b.PieceAt(Sq(homeRow, 3)) == NoPiece &&
		!b.IsSquareAttacked(kingHome, enemy) &&
		!b.IsSquareAttacked(Sq(homeRow, 3), enemy) && !b.IsSquareAttacked(Sq(homeRow, 2), enemy) {
		moves = append(moves, Move{From: kingHome, To: Sq(homeRow, 2), IsCastleQueenside: true})
	}
	return moves
}

// IsSquareAttacked reports whether any piece of color by attacks sq. This is
// a direct pattern query; it never considers en passant, which captures a
// pawn rather than attacking a square a king could occupy.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	// Pawns attack diagonally against their direction of travel.
	pawn := PieceFromType(by, PieceTypePawn)
	pawnRow := sq.Row - pawnDirection(by)
	for _, dc := range [2]int{-1, 1} {
		if b.PieceAt(Sq(pawnRow, sq.Col+dc)) == pawn {
			return true
		}
	}

	knight := PieceFromType(by, PieceTypeKnight)
	for _, d := range knightOffsets {
		if b.PieceAt(Sq(sq.Row+d[0], sq.Col+d[1])) == knight {
			return true
		}
	}

	king := PieceFromType(by, PieceTypeKing)
	for _, d := range kingOffsets {
		if b.PieceAt(Sq(sq.Row+d[0], sq.Col+d[1])) == king {
			return true
		}
	}

	// Sliding attacks: the first occupied square along each ray decides.
	rook := PieceFromType(by, PieceTypeRook)
	queen := PieceFromType(by, PieceTypeQueen)
	for _, d := range rookDirs {
		if p := b.firstPieceAlong(sq, d); p == rook || p == queen {
			return true
		}
	}
	bishop := PieceFromType(by, PieceTypeBishop)
	for _, d := range bishopDirs {
		if p := b.firstPieceAlong(sq, d); p == bishop || p == queen {
			return true
		}
	}
	return false
}

// firstPieceAlong walks the ray from sq (exclusive) and returns the first
// piece encountered, or NoPiece if the ray exits the board empty.
func (b *Board) firstPieceAlong(sq Square, d [2]int) Piece {
	to := Sq(sq.Row+d[0], sq.Col+d[1])
	for to.OnBoard() {
		if p := b.squares[to.Row][to.Col]; p != NoPiece {
			return p
		}
		to = Sq(to.Row+d[0], to.Col+d[1])
	}
	return NoPiece
}

// InCheck reports whether the given side's king is attacked. A board with no
// king of that color (a precondition violation) reports false.
func (b *Board) InCheck(side Color) bool {
	ks := b.KingSquare(side)
	if ks == NoSquare {
		return false
	}
	return b.IsSquareAttacked(ks, side.Other())
}

// Perft counts the leaf nodes of the legal move tree to the given depth from
// the side to move. It is the standard regression check on generation
// completeness and legality filtering.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(b.sideToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		st := b.Apply(m)
		nodes += Perft(b, depth-1)
		b.Unapply(st)
	}
	return nodes
}

// PerftDivide returns per-root-move node counts at the given depth.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	for _, m := range b.LegalMoves(b.sideToMove) {
		st := b.Apply(m)
		div[m] = Perft(b, depth-1)
		b.Unapply(st)
	}
	return div
}
