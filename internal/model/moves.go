package model

// Moves is a candidate matrix: true marks a square the piece could occupy next.
type Moves [BoardSize][BoardSize]bool

func (mv *Moves) set(pos Position) {
	mv[pos.Row][pos.Column] = true
}

// At reports whether pos is marked. Off-board positions are never marked.
func (mv Moves) At(pos Position) bool {
	if pos.Row < 0 || pos.Row >= BoardSize || pos.Column < 0 || pos.Column >= BoardSize {
		return false
	}
	return mv[pos.Row][pos.Column]
}

func (mv Moves) Any() bool {
	for _, row := range mv {
		for _, ok := range row {
			if ok {
				return true
			}
		}
	}
	return false
}

// Positions lists the marked squares in row-major order.
func (mv Moves) Positions() []Position {
	var out []Position
	for i, row := range mv {
		for j, ok := range row {
			if ok {
				out = append(out, Position{Row: i, Column: j})
			}
		}
	}
	return out
}

// EnPassantQuery exposes the one piece of match state a pawn needs.
type EnPassantQuery interface {
	EnPassantVulnerable() *Piece
}

var (
	rookDirs   = []Position{{Row: -1, Column: 0}, {Row: 1, Column: 0}, {Row: 0, Column: -1}, {Row: 0, Column: 1}}
	bishopDirs = []Position{{Row: -1, Column: -1}, {Row: -1, Column: 1}, {Row: 1, Column: -1}, {Row: 1, Column: 1}}
	queenDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	kingDirs   = queenDirs
	knightDirs = []Position{
		{Row: -2, Column: -1}, {Row: -2, Column: 1}, {Row: -1, Column: -2}, {Row: -1, Column: 2},
		{Row: 1, Column: -2}, {Row: 1, Column: 2}, {Row: 2, Column: -1}, {Row: 2, Column: 1},
	}
)

// PossibleMoves computes the piece's candidate matrix from movement geometry
// and occupancy only. Whether the move exposes the own king is not considered.
func (p *Piece) PossibleMoves(b *Board, q EnPassantQuery) Moves {
	var mv Moves
	switch p.kind {
	case Pawn:
		p.pawnMoves(b, q, &mv)
	case Rook:
		p.slide(b, rookDirs, &mv)
	case Bishop:
		p.slide(b, bishopDirs, &mv)
	case Queen:
		p.slide(b, queenDirs, &mv)
	case Knight:
		p.step(b, knightDirs, &mv)
	case King:
		p.step(b, kingDirs, &mv)
		p.castlingMoves(b, &mv)
	}
	return mv
}

func (p *Piece) IsThereAnyPossibleMove(b *Board, q EnPassantQuery) bool {
	return p.PossibleMoves(b, q).Any()
}

func (p *Piece) PossibleMove(b *Board, q EnPassantQuery, target Position) bool {
	return p.PossibleMoves(b, q).At(target)
}

func (p *Piece) canMove(b *Board, pos Position) bool {
	occupant := b.Piece(pos)
	return occupant == nil || occupant.color != p.color
}

// slide walks each direction until the edge or the first occupied square,
// which is included when it holds an enemy piece.
func (p *Piece) slide(b *Board, dirs []Position, mv *Moves) {
	for _, dir := range dirs {
		target := p.position.offset(dir.Row, dir.Column)
		for b.PositionExists(target) {
			if !b.ThereIsAPiece(target) {
				mv.set(target)
			} else {
				if b.IsOpponentPiece(target, p.color) {
					mv.set(target)
				}
				break
			}
			target = target.offset(dir.Row, dir.Column)
		}
	}
}

func (p *Piece) step(b *Board, offsets []Position, mv *Moves) {
	for _, off := range offsets {
		target := p.position.offset(off.Row, off.Column)
		if b.PositionExists(target) && p.canMove(b, target) {
			mv.set(target)
		}
	}
}

func (p *Piece) pawnMoves(b *Board, q EnPassantQuery, mv *Moves) {
	dir := p.color.forward()

	one := p.position.offset(dir, 0)
	if b.PositionExists(one) && !b.ThereIsAPiece(one) {
		mv.set(one)
		two := p.position.offset(2*dir, 0)
		if p.position.Row == p.color.pawnRow() && !b.ThereIsAPiece(two) {
			mv.set(two)
		}
	}

	for _, side := range []int{-1, 1} {
		diagonal := p.position.offset(dir, side)
		if b.IsOpponentPiece(diagonal, p.color) {
			mv.set(diagonal)
		}
	}

	if q == nil || p.position.Row != p.color.enPassantRow() {
		return
	}
	vulnerable := q.EnPassantVulnerable()
	if vulnerable == nil {
		return
	}
	for _, side := range []int{-1, 1} {
		beside := p.position.offset(0, side)
		if b.IsOpponentPiece(beside, p.color) && b.Piece(beside) == vulnerable {
			mv.set(beside.offset(dir, 0))
		}
	}
}

// castlingMoves adds the king-side and queen-side targets. Attacked squares
// on the king's path are checked by the match, not here.
func (p *Piece) castlingMoves(b *Board, mv *Moves) {
	if p.moveCount != 0 {
		return
	}
	if p.castlingRook(b, p.position.offset(0, 3)) &&
		p.pathClear(b, 1, 2) {
		mv.set(p.position.offset(0, 2))
	}
	if p.castlingRook(b, p.position.offset(0, -4)) &&
		p.pathClear(b, -1, -2, -3) {
		mv.set(p.position.offset(0, -2))
	}
}

func (p *Piece) castlingRook(b *Board, pos Position) bool {
	rook := b.Piece(pos)
	return rook != nil && rook.kind == Rook && rook.color == p.color && rook.moveCount == 0
}

func (p *Piece) pathClear(b *Board, columns ...int) bool {
	for _, c := range columns {
		if b.ThereIsAPiece(p.position.offset(0, c)) {
			return false
		}
	}
	return true
}
