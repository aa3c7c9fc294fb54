package engine

import gm "chessbot/chessmg"

// =============================================================================
// MATERIAL
// =============================================================================

// pieceValues indexed by PieceType, in centipawns. The king carries no
// material value; losing it ends the game instead.
var pieceValues = [7]int{0, 100, 320, 330, 500, 900, 0}

// PieceValue returns the material value of a piece type in centipawns.
func PieceValue(pt gm.PieceType) int { return pieceValues[pt] }

// =============================================================================
// PIECE-SQUARE TABLES
// =============================================================================
// Tables are written from White's perspective with row 0 = Black's back
// rank, matching the board's internal orientation. Black entries are read
// with the row mirrored.

var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 5, 5, 0, 0, -5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingTable = [8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var pieceSquareTables = [7]*[8][8]int{
	nil, &pawnTable, &knightTable, &bishopTable, &rookTable, &queenTable, &kingTable,
}

// Pawn-structure and king-safety weights, in centipawns.
const (
	doubledPawnPenalty   = 10 // per extra pawn on a file
	isolatedPawnPenalty  = 15
	passedPawnStep       = 10 // per row advanced toward promotion
	unCastledKingPenalty = 25
)

// Evaluate scores the position in centipawns from the given side's
// perspective; positive favors side. It is a pure function of the board:
// material, piece-square bonuses, pawn structure, and king safety.
func Evaluate(b *gm.Board, side gm.Color) int {
	score := materialTerm(b) + pieceSquareTerm(b) + pawnStructureTerm(b) + kingSafetyTerm(b)
	if side == gm.Black {
		return -score
	}
	return score
}

// materialTerm is White material minus Black material.
func materialTerm(b *gm.Board) int {
	score := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.PieceAt(gm.Sq(r, c))
			if p == gm.NoPiece {
				continue
			}
			if p.Color() == gm.White {
				score += pieceValues[p.Type()]
			} else {
				score -= pieceValues[p.Type()]
			}
		}
	}
	return score
}

// pieceSquareTerm sums positional bonuses for every piece. Black reads its
// table mirrored vertically.
func pieceSquareTerm(b *gm.Board) int {
	score := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.PieceAt(gm.Sq(r, c))
			if p == gm.NoPiece {
				continue
			}
			table := pieceSquareTables[p.Type()]
			if p.Color() == gm.White {
				score += table[r][c]
			} else {
				score -= table[7-r][c]
			}
		}
	}
	return score
}

// pawnStructureTerm combines doubled, isolated, and passed pawn terms.
func pawnStructureTerm(b *gm.Board) int {
	return doubledPawnTerm(b) + isolatedPawnTerm(b) + passedPawnTerm(b)
}

func doubledPawnTerm(b *gm.Board) int {
	score := 0
	for c := 0; c < 8; c++ {
		white, black := 0, 0
		for r := 0; r < 8; r++ {
			switch b.PieceAt(gm.Sq(r, c)) {
			case gm.WhitePawn:
				white++
			case gm.BlackPawn:
				black++
			}
		}
		if white > 1 {
			score -= doubledPawnPenalty * (white - 1)
		}
		if black > 1 {
			score += doubledPawnPenalty * (black - 1)
		}
	}
	return score
}

func isolatedPawnTerm(b *gm.Board) int {
	score := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			p := b.PieceAt(gm.Sq(r, c))
			if p.Type() != gm.PieceTypePawn {
				continue
			}
			if hasFriendlyPawnOnAdjacentFile(b, p, c) {
				continue
			}
			if p.Color() == gm.White {
				score -= isolatedPawnPenalty
			} else {
				score += isolatedPawnPenalty
			}
		}
	}
	return score
}

func hasFriendlyPawnOnAdjacentFile(b *gm.Board, pawn gm.Piece, col int) bool {
	for _, dc := range [2]int{-1, 1} {
		nc := col + dc
		if nc < 0 || nc > 7 {
			continue
		}
		for r := 0; r < 8; r++ {
			if b.PieceAt(gm.Sq(r, nc)) == pawn {
				return true
			}
		}
	}
	return false
}

// passedPawnTerm rewards pawns with no enemy pawn ahead on their own or
// adjacent files, scaled by how far they have advanced.
func passedPawnTerm(b *gm.Board) int {
	score := 0
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			switch b.PieceAt(gm.Sq(r, c)) {
			case gm.WhitePawn:
				if isPassed(b, r, c, gm.White) {
					score += (7 - r) * passedPawnStep
				}
			case gm.BlackPawn:
				if isPassed(b, r, c, gm.Black) {
					score -= r * passedPawnStep
				}
			}
		}
	}
	return score
}

func isPassed(b *gm.Board, row, col int, side gm.Color) bool {
	enemyPawn := gm.PieceFromType(side.Other(), gm.PieceTypePawn)
	rr, stop, step := row-1, -1, -1
	if side == gm.Black {
		rr, stop, step = row+1, 8, 1
	}
	for ; rr != stop; rr += step {
		for dc := -1; dc <= 1; dc++ {
			if b.PieceAt(gm.Sq(rr, col+dc)) == enemyPawn {
				return false
			}
		}
	}
	return true
}

// kingSafetyTerm penalizes a king still sitting on its starting square
// while any queen remains on the board.
func kingSafetyTerm(b *gm.Board) int {
	if !queensOnBoard(b) {
		return 0
	}
	score := 0
	if b.PieceAt(gm.Sq(7, 4)) == gm.WhiteKing {
		score -= unCastledKingPenalty
	}
	if b.PieceAt(gm.Sq(0, 4)) == gm.BlackKing {
		score += unCastledKingPenalty
	}
	return score
}

func queensOnBoard(b *gm.Board) bool {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.PieceAt(gm.Sq(r, c)).Type() == gm.PieceTypeQueen {
				return true
			}
		}
	}
	return false
}
