package model

import "fmt"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row step of a pawn of this color.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// enPassantRow is the row a pawn must stand on to capture en passant.
func (c Color) enPassantRow() int {
	if c == White {
		return 3
	}
	return 4
}

func (c Color) promotionRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (t PieceType) Notation() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// promotable reports whether a pawn may be exchanged for this type.
func (t PieceType) promotable() bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// Piece is a single chess piece. Its square is kept in sync by the Board.
type Piece struct {
	kind      PieceType
	color     Color
	position  Position
	moveCount int
}

func newPiece(kind PieceType, color Color) *Piece {
	return &Piece{kind: kind, color: color}
}

func (p *Piece) Type() PieceType {
	return p.kind
}

func (p *Piece) Color() Color {
	return p.color
}

func (p *Piece) Position() Position {
	return p.position
}

func (p *Piece) ChessPosition() ChessPosition {
	return chessPositionOf(p.position)
}

// MoveCount is the number of moves this piece has made, net of undone ones.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

func (p *Piece) increaseMoveCount() {
	p.moveCount++
}

func (p *Piece) decreaseMoveCount() {
	p.moveCount--
}

// Info returns a detached snapshot of the piece's identity.
func (p *Piece) Info() PieceInfo {
	return PieceInfo{Type: p.kind, Color: p.color}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s", p.color, p.kind)
}

// PieceInfo is the color and type of a piece, safe to hand to renderers.
type PieceInfo struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}
