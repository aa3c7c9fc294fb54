package chessmg_test

import (
	"testing"

	gm "chessbot/chessmg"
)

func TestIsCheckmate_FoolsMate(t *testing.T) {
	b, err := gm.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsCheckmate(gm.White) {
		t.Fatalf("expected checkmate for White")
	}
	if b.IsStalemate(gm.White) {
		t.Fatalf("checkmate misreported as stalemate")
	}
	if got := len(b.LegalMoves(gm.White)); got != 0 {
		t.Fatalf("legal moves in mate: got %d want 0", got)
	}
}

func TestIsStalemate(t *testing.T) {
	b, err := gm.ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsStalemate(gm.Black) {
		t.Fatalf("expected stalemate for Black")
	}
	if b.IsCheckmate(gm.Black) {
		t.Fatalf("stalemate misreported as checkmate")
	}
	if b.InCheck(gm.Black) {
		t.Fatalf("stalemated side must not be in check")
	}
}

func TestStartingPosition_NotTerminal(t *testing.T) {
	b := gm.StartingPosition()
	if b.IsCheckmate(gm.White) || b.IsStalemate(gm.White) {
		t.Fatalf("starting position reported terminal")
	}
	if !b.HasLegalMoves(gm.White) {
		t.Fatalf("starting position has 20 legal moves")
	}
}

func TestIsDrawByFiftyMoves(t *testing.T) {
	b, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 80")
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsDrawByFiftyMoves() {
		t.Fatalf("halfmove clock 100 should be a fifty-move draw")
	}
	b2, err := gm.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 99 80")
	if err != nil {
		t.Fatal(err)
	}
	if b2.IsDrawByFiftyMoves() {
		t.Fatalf("halfmove clock 99 is not yet a draw")
	}
}
