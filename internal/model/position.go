package model

import "fmt"

// Position is a zero-based grid coordinate. Row 0 is the eighth rank.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (p Position) offset(rows, columns int) Position {
	return Position{Row: p.Row + rows, Column: p.Column + columns}
}

// ChessPosition is the user-facing square name, e.g. {'e', 4}.
type ChessPosition struct {
	Column rune
	Row    int
}

// NewChessPosition validates and builds a square name.
func NewChessPosition(column rune, row int) (ChessPosition, error) {
	cp := ChessPosition{Column: column, Row: row}
	if err := cp.validate(); err != nil {
		return ChessPosition{}, err
	}
	return cp, nil
}

func (cp ChessPosition) validate() error {
	if cp.Column < 'a' || cp.Column > 'h' || cp.Row < 1 || cp.Row > BoardSize {
		return fmt.Errorf("%w: valid values are from a1 to h8, got %s", ErrInvalidPosition, cp)
	}
	return nil
}

// ToPosition converts the square name to grid coordinates.
func (cp ChessPosition) ToPosition() Position {
	return Position{Row: BoardSize - cp.Row, Column: int(cp.Column - 'a')}
}

// FromPosition is the inverse of ToPosition.
func FromPosition(pos Position) (ChessPosition, error) {
	cp := chessPositionOf(pos)
	if err := cp.validate(); err != nil {
		return ChessPosition{}, err
	}
	return cp, nil
}

// chessPositionOf converts without validation, for squares already on the board.
func chessPositionOf(pos Position) ChessPosition {
	return ChessPosition{Column: rune('a' + pos.Column), Row: BoardSize - pos.Row}
}

func (cp ChessPosition) String() string {
	return fmt.Sprintf("%c%d", cp.Column, cp.Row)
}

func (cp ChessPosition) MarshalText() ([]byte, error) {
	return []byte(cp.String()), nil
}
