package game_test

import (
	"testing"

	gm "chessbot/chessmg"
	"chessbot/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func play(t *testing.T, g *game.Game, coord string) {
	t.Helper()
	b := g.Board()
	for _, m := range b.LegalMoves(b.SideToMove()) {
		if m.String() == coord {
			require.NoError(t, g.Play(m))
			return
		}
	}
	t.Fatalf("move %s not legal in %s", coord, b.ToFEN())
}

func TestGame_FoolsMate(t *testing.T) {
	g := game.New()
	for _, coord := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		play(t, g, coord)
	}
	assert.Equal(t, game.StatusCheckmate, g.Status())
	assert.Equal(t, "1. f3 e5 2. g4 Qh4#", g.History().String())
}

func TestGame_ScholarsMateWithCaptures(t *testing.T) {
	g := game.New()
	moves := []string{
		"e2e4", "e7e5",
		"f1c4", "b8c6",
		"d1f3", "d7d6",
		"f3f7",
	}
	for _, coord := range moves {
		play(t, g, coord)
	}
	assert.Equal(t, game.StatusCheckmate, g.Status())
	assert.Equal(t, "1. e4 e5 2. Bc4 Nc6 3. Qf3 d6 4. Qxf7#", g.History().String())
	// White took one pawn.
	require.Len(t, g.Material().Captured(gm.White), 1)
	assert.Equal(t, gm.BlackPawn, g.Material().Captured(gm.White)[0])
	assert.Equal(t, 1, g.Material().Advantage())
}

func TestGame_PromotionUpdatesMaterial(t *testing.T) {
	g, err := game.NewFromFEN("8/P6k/8/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)
	play(t, g, "a7a8q")
	// A queen for the pawn: +8 points, no captures.
	assert.Equal(t, 8, g.Material().Advantage())
	assert.Empty(t, g.Material().Captured(gm.White))
	assert.Equal(t, "1. a8=Q", g.History().String())
}

func TestGame_PlayRejectsIllegalMove(t *testing.T) {
	g := game.New()
	before := g.Board().ToFEN()
	err := g.Play(gm.Move{From: gm.Sq(7, 0), To: gm.Sq(0, 0)})
	assert.Error(t, err)
	assert.Equal(t, before, g.Board().ToFEN())
	assert.Empty(t, g.History().Pairs())
}

func TestGame_StatusStalemateAndFiftyMoves(t *testing.T) {
	stale, err := game.NewFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, game.StatusStalemate, stale.Status())

	fifty, err := game.NewFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 80")
	require.NoError(t, err)
	assert.Equal(t, game.StatusDrawFiftyMoves, fifty.Status())
}

func TestNewFromFEN_RejectsBrokenPositions(t *testing.T) {
	_, err := game.NewFromFEN("not a fen")
	assert.Error(t, err)
	// Parses, but fails structural validation: no black king.
	_, err = game.NewFromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Error(t, err)
}

func TestHistory_BlackToMoveStart(t *testing.T) {
	g, err := game.NewFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	play(t, g, "e7e5")
	play(t, g, "g1f3")
	assert.Equal(t, "1. ... e5 2. Nf3", g.History().String())
}
