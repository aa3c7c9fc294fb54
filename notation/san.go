// Package notation renders moves in standard algebraic notation for the
// move-history display. Disambiguation is a presentation concern: it is
// decided here by inspecting the full legal-move set, never by the rules
// core.
package notation

import (
	"strings"

	gm "chessbot/chessmg"

	"github.com/pkg/errors"
)

var pieceLetters = [7]string{"", "", "N", "B", "R", "Q", "K"}

// ToSAN converts a legal move in the given position to standard algebraic
// notation, including disambiguation, capture, promotion, and check or
// checkmate suffixes. The board is not modified. Moves outside the legal
// set are rejected.
func ToSAN(b *gm.Board, m gm.Move) (string, error) {
	piece := b.PieceAt(m.From)
	if piece == gm.NoPiece {
		return "", errors.Errorf("no piece on %s", m.From)
	}
	legal := b.LegalMoves(piece.Color())
	if !containsMove(legal, m) {
		return "", errors.Errorf("move %s is not legal for %s", m, piece.Color())
	}

	var sb strings.Builder
	switch {
	case m.IsCastleKingside:
		sb.WriteString("O-O")
	case m.IsCastleQueenside:
		sb.WriteString("O-O-O")
	case piece.Type() == gm.PieceTypePawn:
		if m.IsCapture {
			sb.WriteByte('a' + byte(m.From.Col))
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	default:
		sb.WriteString(pieceLetters[piece.Type()])
		sb.WriteString(disambiguation(b, legal, piece, m))
		if m.IsCapture {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}

	if m.Promotion != gm.PieceTypeNone {
		sb.WriteByte('=')
		sb.WriteString(pieceLetters[m.Promotion])
	}

	// Check and mate are decided on the resulting position; # subsumes +.
	scratch := b.Copy()
	scratch.Apply(m)
	opponent := piece.Color().Other()
	if scratch.IsCheckmate(opponent) {
		sb.WriteByte('#')
	} else if scratch.InCheck(opponent) {
		sb.WriteByte('+')
	}
	return sb.String(), nil
}

// disambiguation returns the qualifier ("", file, rank, or both) needed when
// another legal move by a piece of the same type and color reaches the same
// destination.
func disambiguation(b *gm.Board, legal []gm.Move, piece gm.Piece, m gm.Move) string {
	rival, rivalOnFile, rivalOnRank := false, false, false
	for _, other := range legal {
		if other.From == m.From || other.To != m.To {
			continue
		}
		if b.PieceAt(other.From) != piece {
			continue
		}
		rival = true
		if other.From.Col == m.From.Col {
			rivalOnFile = true
		}
		if other.From.Row == m.From.Row {
			rivalOnRank = true
		}
	}
	switch {
	case !rival:
		return ""
	case !rivalOnFile:
		// The origin file alone singles the piece out.
		return string([]byte{'a' + byte(m.From.Col)})
	case !rivalOnRank:
		return string([]byte{'8' - byte(m.From.Row)})
	default:
		return m.From.String()
	}
}

func containsMove(moves []gm.Move, m gm.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}
