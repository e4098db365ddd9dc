package model

import (
	"slices"
	"testing"

	"github.com/benbeisheim/chessmatch/internal/config"
)

// sq builds a square from a literal such as "e4".
func sq(s string) ChessPosition {
	return ChessPosition{Column: rune(s[0]), Row: int(s[1] - '0')}
}

func squares(mv Moves) []string {
	var out []string
	for _, pos := range mv.Positions() {
		out = append(out, chessPositionOf(pos).String())
	}
	slices.Sort(out)
	return out
}

// play performs moves written as "e2e4" and fails on the first rejection.
func play(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.PerformMove(sq(mv[:2]), sq(mv[2:4])); err != nil {
			t.Fatalf("PerformMove(%s) error: %v", mv, err)
		}
	}
}

// setup places pieces on an empty board, e.g. "Ke1", "pe7"; uppercase letters
// are White, lowercase Black, as in FEN.
func setup(cfg config.Match, toMove Color, placements ...string) *Match {
	m := newMatch(cfg)
	m.currentPlayer = toMove
	kinds := map[byte]PieceType{'k': King, 'q': Queen, 'r': Rook, 'b': Bishop, 'n': Knight, 'p': Pawn}
	for _, pl := range placements {
		color := White
		letter := pl[0]
		if letter >= 'a' {
			color = Black
		} else {
			letter += 'a' - 'A'
		}
		cp := sq(pl[1:])
		m.placeNewPiece(cp.Column, cp.Row, newPiece(kinds[letter], color))
	}
	return m
}

// snapshot captures everything a rolled back move must restore.
type snapshot struct {
	state      MatchState
	onBoard    []*Piece
	captured   []*Piece
	moveCounts []int
	vulnerable *Piece
}

func takeSnapshot(m *Match) snapshot {
	s := snapshot{
		state:      m.State(),
		onBoard:    m.PiecesOnTheBoard(),
		captured:   m.CapturedPieces(),
		vulnerable: m.EnPassantVulnerable(),
	}
	for _, p := range append(m.PiecesOnTheBoard(), m.CapturedPieces()...) {
		s.moveCounts = append(s.moveCounts, p.MoveCount())
	}
	return s
}

func assertSameSnapshot(t *testing.T, got, want snapshot) {
	t.Helper()
	if !slices.Equal(got.onBoard, want.onBoard) {
		t.Errorf("pieces on the board changed")
	}
	if !slices.Equal(got.captured, want.captured) {
		t.Errorf("captured pieces changed")
	}
	if !slices.Equal(got.moveCounts, want.moveCounts) {
		t.Errorf("move counts = %v, want %v", got.moveCounts, want.moveCounts)
	}
	if got.vulnerable != want.vulnerable {
		t.Errorf("en passant vulnerable piece changed")
	}
	if got.state.Turn != want.state.Turn || got.state.CurrentPlayer != want.state.CurrentPlayer {
		t.Errorf("turn = %d %s, want %d %s", got.state.Turn, got.state.CurrentPlayer, want.state.Turn, want.state.CurrentPlayer)
	}
	for i := range got.state.Board {
		for j := range got.state.Board[i] {
			g, w := got.state.Board[i][j], want.state.Board[i][j]
			if (g == nil) != (w == nil) || (g != nil && *g != *w) {
				t.Errorf("square %s = %v, want %v", chessPositionOf(Position{Row: i, Column: j}), g, w)
			}
		}
	}
}
