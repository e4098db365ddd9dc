package model

// MatchState is a detached, JSON-ready view of a match.
type MatchState struct {
	Turn                int                              `json:"turn"`
	CurrentPlayer       Color                            `json:"currentPlayer"`
	Check               bool                             `json:"check"`
	Checkmate           bool                             `json:"checkmate"`
	Board               [BoardSize][BoardSize]*PieceInfo `json:"board"`
	CapturedPieces      []PieceInfo                      `json:"capturedPieces"`
	EnPassantVulnerable *ChessPosition                   `json:"enPassantVulnerable"`
	PromotionSquare     *ChessPosition                   `json:"promotionSquare"`
	LastMove            *Ply                             `json:"lastMove"`
}

func (m *Match) State() MatchState {
	state := MatchState{
		Turn:           m.turn,
		CurrentPlayer:  m.currentPlayer,
		Check:          m.check,
		Checkmate:      m.checkmate,
		Board:          m.Pieces(),
		CapturedPieces: make([]PieceInfo, 0, len(m.capturedPieces)),
	}
	for _, p := range m.capturedPieces {
		state.CapturedPieces = append(state.CapturedPieces, p.Info())
	}
	if m.enPassantVulnerable != nil {
		pos := m.enPassantVulnerable.ChessPosition()
		state.EnPassantVulnerable = &pos
	}
	if m.promoted != nil {
		pos := m.promoted.ChessPosition()
		state.PromotionSquare = &pos
	}
	if n := len(m.history); n > 0 {
		last := m.history[n-1]
		if last.CastleRookMove != nil {
			rook := *last.CastleRookMove
			last.CastleRookMove = &rook
		}
		state.LastMove = &last
	}
	return state
}
