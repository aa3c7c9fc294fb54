package chessmg_test

import (
	"testing"

	gm "chessbot/chessmg"
)

// TestLegalMoves_NeverLeaveOwnKingInCheck applies every generated move and
// asserts the mover's king is not attacked afterward.
func TestLegalMoves_NeverLeaveOwnKingInCheck(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR b KQkq - 1 3",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	}
	for _, fen := range fens {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		side := b.SideToMove()
		for _, m := range b.LegalMoves(side) {
			st := b.Apply(m)
			if b.InCheck(side) {
				t.Fatalf("legal move %s leaves %s in check in %q", m, side, fen)
			}
			b.Unapply(st)
		}
	}
}

func TestPromotionMoves_FourVariantsEach(t *testing.T) {
	b, err := gm.ParseFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var promos []gm.Move
	for _, m := range b.LegalMoves(gm.White) {
		if m.From == gm.Sq(1, 0) && m.To == gm.Sq(0, 0) {
			promos = append(promos, m)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("promotion variants: got %d want 4 (%v)", len(promos), promos)
	}
	seen := map[gm.PieceType]bool{}
	for _, m := range promos {
		if m.Promotion == gm.PieceTypeNone {
			t.Fatalf("promotion move without promotion type: %v", m)
		}
		seen[m.Promotion] = true
	}
	for _, pt := range []gm.PieceType{gm.PieceTypeQueen, gm.PieceTypeRook, gm.PieceTypeBishop, gm.PieceTypeKnight} {
		if !seen[pt] {
			t.Fatalf("missing promotion choice %v", pt)
		}
	}
}

func TestCastling_Conditions(t *testing.T) {
	hasCastle := func(fen string, kingside bool) bool {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		for _, m := range b.LegalMoves(b.SideToMove()) {
			if (kingside && m.IsCastleKingside) || (!kingside && m.IsCastleQueenside) {
				return true
			}
		}
		return false
	}

	// Plain castle-ready position: both sides available.
	if !hasCastle("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true) {
		t.Fatalf("expected O-O to be legal")
	}
	if !hasCastle("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", false) {
		t.Fatalf("expected O-O-O to be legal")
	}
	// Right flag missing.
	if hasCastle("4k3/8/8/8/8/8/8/R3K2R w Q - 0 1", true) {
		t.Fatalf("O-O generated without the right")
	}
	// Piece between king and rook.
	if hasCastle("4k3/8/8/8/8/8/8/R3KB1R w KQ - 0 1", true) {
		t.Fatalf("O-O generated through an occupied square")
	}
	// King currently in check (black rook on e8 file pins the idea down).
	if hasCastle("4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1", true) {
		t.Fatalf("O-O generated while in check")
	}
	// King passes through an attacked square (rook eyes f1).
	if hasCastle("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1", true) {
		t.Fatalf("O-O generated through an attacked square")
	}
	// Queenside is unaffected by an attack on b1: the king never crosses it.
	if !hasCastle("1r5k/8/8/8/8/8/8/R3K2R w KQ - 0 1", false) {
		t.Fatalf("O-O-O should be legal with only b1 attacked")
	}
}

func TestEnPassant_OnlyWithTargetSet(t *testing.T) {
	countEP := func(fen string) int {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		n := 0
		for _, m := range b.LegalMoves(b.SideToMove()) {
			if m.IsEnPassant {
				n++
			}
		}
		return n
	}
	if got := countEP("k7/8/8/3pP3/8/8/8/7K w - d6 0 2"); got != 1 {
		t.Fatalf("en-passant moves with target set: got %d want 1", got)
	}
	// Same position, but the target has expired.
	if got := countEP("k7/8/8/3pP3/8/8/8/7K w - - 0 2"); got != 0 {
		t.Fatalf("en-passant moves without target: got %d want 0", got)
	}
}

func TestEnPassant_RejectedWhenItExposesKing(t *testing.T) {
	// White king and pawn on the 5th rank with a black rook behind:
	// exd6 e.p. would remove both pawns from the rank and expose the king.
	b, err := gm.ParseFEN("8/8/8/K2pP2r/8/8/8/7k w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range b.LegalMoves(gm.White) {
		if m.IsEnPassant {
			t.Fatalf("en passant %s generated although it exposes the king", m)
		}
	}
}

func TestInCheck_Queries(t *testing.T) {
	b, err := gm.ParseFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	if !b.InCheck(gm.White) {
		t.Fatalf("expected White in check from Qh4")
	}
	if b.InCheck(gm.Black) {
		t.Fatalf("Black is not in check here")
	}
}

func TestPseudoLegalMoves_SupersetOfLegal(t *testing.T) {
	b, err := gm.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	pseudo := b.PseudoLegalMoves(gm.White)
	legal := b.LegalMoves(gm.White)
	if len(legal) > len(pseudo) {
		t.Fatalf("legal (%d) exceeds pseudo-legal (%d)", len(legal), len(pseudo))
	}
	inPseudo := map[gm.Move]bool{}
	for _, m := range pseudo {
		inPseudo[m] = true
	}
	for _, m := range legal {
		if !inPseudo[m] {
			t.Fatalf("legal move %s missing from pseudo-legal set", m)
		}
	}
}
