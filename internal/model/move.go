package model

type CastleRookMove struct {
	From ChessPosition `json:"from"`
	To   ChessPosition `json:"to"`
}

// Ply is one completed move of one player.
type Ply struct {
	Turn           int             `json:"turn"`
	Color          Color           `json:"color"`
	Piece          PieceType       `json:"piece"`
	From           ChessPosition   `json:"from"`
	To             ChessPosition   `json:"to"`
	CapturedPiece  PieceType       `json:"capturedPiece,omitempty"`
	EnPassant      bool            `json:"enPassant,omitempty"`
	CastleRookMove *CastleRookMove `json:"castleRookMove,omitempty"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	Check          bool            `json:"check"`
	Checkmate      bool            `json:"checkmate"`
	Notation       string          `json:"notation"`
}

// History returns the completed moves in order.
func (m *Match) History() []Ply {
	out := make([]Ply, len(m.history))
	for i, ply := range m.history {
		if ply.CastleRookMove != nil {
			rook := *ply.CastleRookMove
			ply.CastleRookMove = &rook
		}
		out[i] = ply
	}
	return out
}

// record appends the move just played. It runs after check detection so the
// notation can carry the check suffix.
func (m *Match) record(cmd *moveCommand, mover Color) {
	turn := m.turn
	if !m.checkmate {
		turn--
	}
	ply := Ply{
		Turn:      turn,
		Color:     mover,
		Piece:     cmd.piece.kind,
		From:      chessPositionOf(cmd.source),
		To:        chessPositionOf(cmd.target),
		EnPassant: cmd.isEnPassant(),
		Check:     m.check,
		Checkmate: m.checkmate,
	}
	if cmd.captured != nil {
		ply.CapturedPiece = cmd.captured.kind
	}
	if cmd.isCastling() {
		ply.CastleRookMove = &CastleRookMove{
			From: chessPositionOf(cmd.rookFrom),
			To:   chessPositionOf(cmd.rookTo),
		}
	}
	if m.promoted != nil && m.promoted.kind != Pawn {
		ply.Promotion = m.promoted.kind
	}
	ply.Notation = ply.notation()
	m.history = append(m.history, ply)
}

// notation renders the ply in short algebraic form without disambiguation.
func (p Ply) notation() string {
	var s string
	switch {
	case p.CastleRookMove != nil && p.To.Column > p.From.Column:
		s = "O-O"
	case p.CastleRookMove != nil:
		s = "O-O-O"
	default:
		s = p.Piece.Notation()
		if p.CapturedPiece != "" {
			if p.Piece == Pawn {
				s += string(p.From.Column)
			}
			s += "x"
		}
		s += p.To.String()
		if p.Promotion != "" {
			s += "=" + p.Promotion.Notation()
		}
	}
	switch {
	case p.Checkmate:
		s += "#"
	case p.Check:
		s += "+"
	}
	return s
}
