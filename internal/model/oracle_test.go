package model

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/benbeisheim/chessmatch/internal/config"
	"github.com/benbeisheim/chessmatch/internal/testutil"
)

// legalMoveSet lists every legal move of the side to move as "e2e4".
func legalMoveSet(t *testing.T, m *Match) []string {
	t.Helper()
	var out []string
	for _, p := range m.piecesOf(m.CurrentPlayer()) {
		from := p.ChessPosition()
		legal, err := m.LegalMoves(from)
		if errors.Is(err, ErrNoLegalMoves) {
			continue
		}
		testutil.AssertNoError(t, err, "LegalMoves(%s)", from)
		for _, target := range squares(legal) {
			out = append(out, from.String()+target)
		}
	}
	sort.Strings(out)
	return out
}

// oracleMoveSet is the same list from notnil/chess, with the four promotion
// choices of a pawn move folded into one entry.
func oracleMoveSet(g *chess.Game) []string {
	seen := make(map[string]bool)
	for _, mv := range g.ValidMoves() {
		seen[mv.S1().String()+mv.S2().String()] = true
	}
	out := make([]string, 0, len(seen))
	for mv := range seen {
		out = append(out, mv)
	}
	sort.Strings(out)
	return out
}

func TestLegalMovesAgreeWithOracle(t *testing.T) {
	games := []struct {
		name      string
		moves     string
		checkmate bool
	}{
		{"castling", "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 e1g1 f8c5 d2d3 e8g8", false},
		{"en passant", "e2e4 a7a6 e4e5 d7d5 e5d6 c7d6 d2d4 e7e5 d4e5 d6e5", false},
		{"promotion", "h2h4 g7g5 h4g5 h7h6 g5h6 g8f6 h6h7 f6g8 h7g8q h8g8", false},
		{"checks", "e2e4 f7f6 d1h5 g7g6 h5g6 h7g6", false},
		{"queen side castling", "d2d4 d7d5 b1c3 b8c6 c1f4 c8f5 d1d2 d8d7 e1c1 e8c8", false},
		{"fool's mate", "f2f3 e7e5 g2g4 d8h4", true},
	}

	for _, tt := range games {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch(config.NewMatchConfig())
			g := chess.NewGame(chess.UseNotation(chess.UCINotation{}))

			for i, mv := range strings.Fields(tt.moves) {
				testutil.AssertEqual(t, legalMoveSet(t, m), oracleMoveSet(g), "before ply %d (%s)", i+1, mv)

				if _, err := m.PerformMove(sq(mv[:2]), sq(mv[2:4])); err != nil {
					t.Fatalf("PerformMove(%s) error: %v", mv, err)
				}
				if err := g.MoveStr(mv); err != nil {
					t.Fatalf("oracle rejected %s: %v", mv, err)
				}
			}

			testutil.AssertEqual(t, m.Checkmate(), tt.checkmate)
			testutil.AssertEqual(t, g.Method() == chess.Checkmate, tt.checkmate)
			if !tt.checkmate {
				testutil.AssertEqual(t, legalMoveSet(t, m), oracleMoveSet(g), "final position")
			}
		})
	}
}
