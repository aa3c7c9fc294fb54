package chessmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

var pieceTypeNames = [7]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (pt PieceType) String() string { return pieceTypeNames[pt&7] }

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Color().String() + " " + p.Type().String()
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	// All four rights, as in the starting position.
	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Square identifies a board cell by row and column, both in [0,7].
// Row 0 is the top of the internal board (Black's back rank); White pawns
// advance toward row 0 regardless of any display orientation.
type Square struct {
	Row, Col int
}

// NoSquare is the sentinel for "no square" (e.g. no en-passant target).
var NoSquare = Square{-1, -1}

// Sq is shorthand for constructing a Square.
func Sq(row, col int) Square { return Square{Row: row, Col: col} }

// OnBoard reports whether the square lies within the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

// String renders the square in algebraic coordinates ("e4"). Row 0 is rank 8.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{'a' + byte(s.Col), '8' - byte(s.Row)})
}

// Board represents the full chess position: an 8x8 grid of pieces plus
// side to move, castling rights, the en-passant target, and move clocks.
type Board struct {
	// squares[row][col]; row 0 holds Black's back rank.
	squares [8][8]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square: the square a pawn skipped over on its
	// double advance last move, or NoSquare.
	enPassant Square

	// Halfmove clock (half-moves since last capture or pawn advance, for the fifty-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int
}

// PieceAt returns the piece on a square, or NoPiece for empty or off-board squares.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.squares[sq.Row][sq.Col]
}

// SetPiece places a piece on a square, replacing any existing piece.
// Intended for position setup; it does not touch rights or clocks.
func (b *Board) SetPiece(sq Square, p Piece) {
	if sq.OnBoard() {
		b.squares[sq.Row][sq.Col] = p
	}
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove updates the side to play. Use with care; Apply toggles it automatically.
func (b *Board) SetSideToMove(c Color) { b.sideToMove = c }

// CastlingRights returns the current castling-rights mask.
func (b *Board) CastlingRights() CastlingRights { return b.castlingRights }

// SetCastlingRights overwrites the castling-rights mask (position setup only).
func (b *Board) SetCastlingRights(cr CastlingRights) { b.castlingRights = cr }

// EnPassantTarget returns the square a pawn skipped over last move, or NoSquare.
func (b *Board) EnPassantTarget() Square { return b.enPassant }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// KingSquare returns the square of the given side's king, or NoSquare if absent.
func (b *Board) KingSquare(side Color) Square {
	king := PieceFromType(side, PieceTypeKing)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if b.squares[r][c] == king {
				return Sq(r, c)
			}
		}
	}
	return NoSquare
}

// Copy returns an independent deep copy of the board.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// HasLegalMoves reports whether the given side has any legal moves.
func (b *Board) HasLegalMoves(side Color) bool {
	return len(b.LegalMoves(side)) > 0
}

// IsCheckmate reports whether the given side is checkmated.
func (b *Board) IsCheckmate(side Color) bool {
	return b.InCheck(side) && !b.HasLegalMoves(side)
}

// IsStalemate reports whether the given side is stalemated.
func (b *Board) IsStalemate(side Color) bool {
	return !b.InCheck(side) && !b.HasLegalMoves(side)
}

// IsDrawByFiftyMoves reports a fifty-move rule draw (halfmoveClock counts half-moves).
func (b *Board) IsDrawByFiftyMoves() bool {
	return b.halfmoveClock >= 100
}
