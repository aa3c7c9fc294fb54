package game

import (
	"fmt"
	"strings"
)

// MovePair is one numbered row of the move list: White's move and, once
// played, Black's reply.
type MovePair struct {
	White string
	Black string
}

// History accumulates played moves in algebraic notation, paired the way a
// move list is displayed.
type History struct {
	pairs []MovePair
}

// Add appends a move in SAN. White moves open a new pair; Black moves
// complete the current one.
func (h *History) Add(san string, byWhite bool) {
	if byWhite {
		h.pairs = append(h.pairs, MovePair{White: san})
		return
	}
	if n := len(h.pairs); n > 0 && h.pairs[n-1].Black == "" {
		h.pairs[n-1].Black = san
		return
	}
	// A game can start from a position with Black to move.
	h.pairs = append(h.pairs, MovePair{Black: san})
}

// Pairs returns the move list rows in order.
func (h *History) Pairs() []MovePair {
	return h.pairs
}

// String renders the history in the usual "1. e4 e5 2. Nf3 Nc6" form.
func (h *History) String() string {
	var sb strings.Builder
	for i, p := range h.pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d.", i+1)
		if p.White != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.White)
		} else {
			sb.WriteString(" ...")
		}
		if p.Black != "" {
			sb.WriteByte(' ')
			sb.WriteString(p.Black)
		}
	}
	return sb.String()
}
