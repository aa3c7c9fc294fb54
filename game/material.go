package game

import gm "chessbot/chessmg"

// pointValues are the classic material points (not centipawns) shown in a
// captured-pieces bar: pawn 1, minor 3, rook 5, queen 9, king none.
var pointValues = [7]int{0, 1, 3, 3, 5, 9, 0}

// MaterialTracker records captured pieces and promotion gains per side and
// reports the running material advantage. It consumes the captured Piece
// yielded by the move applier.
type MaterialTracker struct {
	whiteCaptured []gm.Piece
	blackCaptured []gm.Piece
	whitePoints   int
	blackPoints   int
}

// RecordCapture credits the capturing side with the captured piece.
// Empty captures and kings are ignored.
func (t *MaterialTracker) RecordCapture(captured gm.Piece, by gm.Color) {
	if captured == gm.NoPiece || captured.Type() == gm.PieceTypeKing {
		return
	}
	if by == gm.White {
		t.whiteCaptured = append(t.whiteCaptured, captured)
		t.whitePoints += pointValues[captured.Type()]
	} else {
		t.blackCaptured = append(t.blackCaptured, captured)
		t.blackPoints += pointValues[captured.Type()]
	}
}

// RecordPromotion credits the promoting side with the difference between the
// new piece and the pawn it replaced.
func (t *MaterialTracker) RecordPromotion(promoted gm.PieceType, by gm.Color) {
	gain := pointValues[promoted] - pointValues[gm.PieceTypePawn]
	if by == gm.White {
		t.whitePoints += gain
	} else {
		t.blackPoints += gain
	}
}

// Captured returns the pieces the given side has taken, in capture order.
func (t *MaterialTracker) Captured(by gm.Color) []gm.Piece {
	if by == gm.White {
		return t.whiteCaptured
	}
	return t.blackCaptured
}

// Points returns the material points the given side has gained.
func (t *MaterialTracker) Points(by gm.Color) int {
	if by == gm.White {
		return t.whitePoints
	}
	return t.blackPoints
}

// Advantage returns White's material lead in points; negative favors Black,
// zero is equal.
func (t *MaterialTracker) Advantage() int {
	return t.whitePoints - t.blackPoints
}
