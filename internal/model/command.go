package model

import "slices"

// moveCommand holds every change one move makes, so the move can be undone
// from the command alone.
type moveCommand struct {
	piece          *Piece
	source, target Position

	captured      *Piece
	capturedAt    Position
	capturedIndex int // index in piecesOnTheBoard before the capture

	rook             *Piece
	rookFrom, rookTo Position
}

// newMoveCommand reads the deltas of moving the piece on source to target.
// The board is not touched.
func (m *Match) newMoveCommand(source, target Position) *moveCommand {
	p := m.board.Piece(source)
	cmd := &moveCommand{piece: p, source: source, target: target}

	if occupant := m.board.Piece(target); occupant != nil {
		cmd.captured = occupant
		cmd.capturedAt = target
	}

	switch p.kind {
	case King:
		switch target.Column - source.Column {
		case 2:
			cmd.rookFrom = source.offset(0, 3)
			cmd.rookTo = source.offset(0, 1)
			cmd.rook = m.board.Piece(cmd.rookFrom)
		case -2:
			cmd.rookFrom = source.offset(0, -4)
			cmd.rookTo = source.offset(0, -1)
			cmd.rook = m.board.Piece(cmd.rookFrom)
		}
	case Pawn:
		// A diagonal step onto an empty square is an en passant capture of
		// the pawn standing beside the source.
		if source.Column != target.Column && cmd.captured == nil {
			cmd.capturedAt = Position{Row: source.Row, Column: target.Column}
			cmd.captured = m.board.Piece(cmd.capturedAt)
		}
	}
	return cmd
}

func (cmd *moveCommand) isCastling() bool {
	return cmd.rook != nil
}

func (cmd *moveCommand) isEnPassant() bool {
	return cmd.captured != nil && cmd.capturedAt != cmd.target
}

func (m *Match) apply(cmd *moveCommand) {
	m.board.RemovePiece(cmd.source)
	cmd.piece.increaseMoveCount()

	if cmd.captured != nil {
		m.board.RemovePiece(cmd.capturedAt)
		cmd.capturedIndex = slices.Index(m.piecesOnTheBoard, cmd.captured)
		m.piecesOnTheBoard = slices.Delete(m.piecesOnTheBoard, cmd.capturedIndex, cmd.capturedIndex+1)
		m.capturedPieces = append(m.capturedPieces, cmd.captured)
	}
	m.board.PlacePiece(cmd.piece, cmd.target)

	if cmd.rook != nil {
		m.board.RemovePiece(cmd.rookFrom)
		m.board.PlacePiece(cmd.rook, cmd.rookTo)
		cmd.rook.increaseMoveCount()
	}
}

func (m *Match) undo(cmd *moveCommand) {
	if cmd.rook != nil {
		m.board.RemovePiece(cmd.rookTo)
		m.board.PlacePiece(cmd.rook, cmd.rookFrom)
		cmd.rook.decreaseMoveCount()
	}

	m.board.RemovePiece(cmd.target)
	m.board.PlacePiece(cmd.piece, cmd.source)
	cmd.piece.decreaseMoveCount()

	if cmd.captured != nil {
		m.board.PlacePiece(cmd.captured, cmd.capturedAt)
		m.capturedPieces = m.capturedPieces[:len(m.capturedPieces)-1]
		m.piecesOnTheBoard = slices.Insert(m.piecesOnTheBoard, cmd.capturedIndex, cmd.captured)
	}
}
