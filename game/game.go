// Package game ties the rules core to the bookkeeping its UI collaborators
// consume: a validated move loop, the SAN move list, and the captured-piece
// material tracker.
package game

import (
	gm "chessbot/chessmg"
	"chessbot/notation"

	"github.com/pkg/errors"
)

// Status describes the state of the game for the side to move.
type Status int

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusDrawFiftyMoves
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusDrawFiftyMoves:
		return "draw by fifty-move rule"
	default:
		return "ongoing"
	}
}

// Game is one playing session: the live board plus move history and material
// bookkeeping. It owns its board; callers get read access via Board.
type Game struct {
	board    *gm.Board
	material MaterialTracker
	history  History
}

// New starts a game from the standard initial position.
func New() *Game {
	return &Game{board: gm.StartingPosition()}
}

// NewFromFEN starts a game from an arbitrary position. The position must
// pass structural validation.
func NewFromFEN(fen string) (*Game, error) {
	b, err := gm.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, errors.Wrap(err, "malformed position")
	}
	return &Game{board: b}, nil
}

// Board exposes the current position. Callers must not mutate it directly;
// all play goes through Play.
func (g *Game) Board() *gm.Board { return g.board }

// Material returns the captured-piece tracker.
func (g *Game) Material() *MaterialTracker { return &g.material }

// History returns the SAN move list.
func (g *Game) History() *History { return &g.history }

// Play validates and applies one move for the side to move, recording its
// SAN (computed against the pre-move position) and any capture or promotion.
// An illegal move leaves the game untouched.
func (g *Game) Play(m gm.Move) error {
	mover := g.board.SideToMove()

	san, err := notation.ToSAN(g.board, m)
	if err != nil {
		return err
	}
	st, err := g.board.Push(m)
	if err != nil {
		return err
	}

	g.history.Add(san, mover == gm.White)
	if captured := st.Captured(); captured != gm.NoPiece {
		g.material.RecordCapture(captured, mover)
	}
	if m.Promotion != gm.PieceTypeNone {
		g.material.RecordPromotion(m.Promotion, mover)
	}
	return nil
}

// Status reports the terminal state, if any, for the side to move.
func (g *Game) Status() Status {
	side := g.board.SideToMove()
	switch {
	case g.board.IsCheckmate(side):
		return StatusCheckmate
	case g.board.IsStalemate(side):
		return StatusStalemate
	case g.board.IsDrawByFiftyMoves():
		return StatusDrawFiftyMoves
	default:
		return StatusOngoing
	}
}
