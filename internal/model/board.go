package model

const BoardSize = 8

// Board is the 8x8 grid a match is played on. A piece occupies at most one
// square; pieces that are off the board are held by the match registries.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

func newBoard() *Board {
	return &Board{}
}

// Piece returns the occupant of pos, or nil for an empty or off-board square.
func (b *Board) Piece(pos Position) *Piece {
	if !b.PositionExists(pos) {
		return nil
	}
	return b.squares[pos.Row][pos.Column]
}

func (b *Board) PositionExists(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Column >= 0 && pos.Column < BoardSize
}

func (b *Board) ThereIsAPiece(pos Position) bool {
	return b.Piece(pos) != nil
}

// IsOpponentPiece reports whether pos holds a piece of the other color.
func (b *Board) IsOpponentPiece(pos Position, color Color) bool {
	p := b.Piece(pos)
	return p != nil && p.color != color
}

// PlacePiece puts p on pos and records the square on the piece.
func (b *Board) PlacePiece(p *Piece, pos Position) {
	b.squares[pos.Row][pos.Column] = p
	p.position = pos
}

// RemovePiece empties pos and returns whatever was there.
func (b *Board) RemovePiece(pos Position) *Piece {
	p := b.Piece(pos)
	if p == nil {
		return nil
	}
	b.squares[pos.Row][pos.Column] = nil
	return p
}

// backRank is the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func (m *Match) initialSetup() {
	for i, kind := range backRank {
		column := rune('a' + i)
		m.placeNewPiece(column, 1, newPiece(kind, White))
		m.placeNewPiece(column, 2, newPiece(Pawn, White))
		m.placeNewPiece(column, 8, newPiece(kind, Black))
		m.placeNewPiece(column, 7, newPiece(Pawn, Black))
	}
}

// placeNewPiece puts a fresh piece on the board and registers it as in play.
func (m *Match) placeNewPiece(column rune, row int, p *Piece) {
	m.board.PlacePiece(p, ChessPosition{Column: column, Row: row}.ToPosition())
	m.piecesOnTheBoard = append(m.piecesOnTheBoard, p)
}
