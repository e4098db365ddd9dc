package model

import (
	"fmt"
	"slices"

	"github.com/benbeisheim/chessmatch/internal/config"
)

// Match owns one game: its board, both piece registries and the turn state.
// A Match is not safe for concurrent use; callers drive it one move at a time.
type Match struct {
	cfg   config.Match
	board *Board

	turn          int
	currentPlayer Color
	check         bool
	checkmate     bool

	enPassantVulnerable *Piece
	promoted            *Piece

	piecesOnTheBoard []*Piece
	capturedPieces   []*Piece
	history          []Ply
}

// NewMatch starts a match from the standard position with White to move.
func NewMatch(cfg config.Match) *Match {
	m := newMatch(cfg)
	m.initialSetup()
	return m
}

func newMatch(cfg config.Match) *Match {
	return &Match{
		cfg:           cfg,
		board:         newBoard(),
		turn:          1,
		currentPlayer: White,
	}
}

func (m *Match) Turn() int {
	return m.turn
}

func (m *Match) CurrentPlayer() Color {
	return m.currentPlayer
}

func (m *Match) Check() bool {
	return m.check
}

func (m *Match) Checkmate() bool {
	return m.checkmate
}

// EnPassantVulnerable is the pawn that double-stepped on the last move, if any.
func (m *Match) EnPassantVulnerable() *Piece {
	return m.enPassantVulnerable
}

// Promoted is the piece that reached the last rank on the last move, if any.
func (m *Match) Promoted() *Piece {
	return m.promoted
}

func (m *Match) PiecesOnTheBoard() []*Piece {
	return slices.Clone(m.piecesOnTheBoard)
}

func (m *Match) CapturedPieces() []*Piece {
	return slices.Clone(m.capturedPieces)
}

// Pieces returns a snapshot of the board for rendering.
func (m *Match) Pieces() [BoardSize][BoardSize]*PieceInfo {
	var mat [BoardSize][BoardSize]*PieceInfo
	for i := range mat {
		for j := range mat[i] {
			if p := m.board.Piece(Position{Row: i, Column: j}); p != nil {
				info := p.Info()
				mat[i][j] = &info
			}
		}
	}
	return mat
}

// PossibleMoves returns the candidate matrix of the current player's piece on
// source, without the check-safety filter.
func (m *Match) PossibleMoves(sourcePosition ChessPosition) (Moves, error) {
	if err := sourcePosition.validate(); err != nil {
		return Moves{}, err
	}
	source := sourcePosition.ToPosition()
	if err := m.validateSourcePosition(source); err != nil {
		return Moves{}, m.moveError(err, sourcePosition, nil)
	}
	return m.board.Piece(source).PossibleMoves(m.board, m), nil
}

// LegalMoves is PossibleMoves restricted to moves that keep the own king safe.
func (m *Match) LegalMoves(sourcePosition ChessPosition) (Moves, error) {
	candidates, err := m.PossibleMoves(sourcePosition)
	if err != nil {
		return Moves{}, err
	}
	p := m.board.Piece(sourcePosition.ToPosition())
	var legal Moves
	for _, target := range candidates.Positions() {
		if m.isLegal(p, target) {
			legal.set(target)
		}
	}
	return legal, nil
}

// PerformMove moves the current player's piece from source to target and
// returns the captured piece, if any. A rejected move leaves the match as it
// was.
func (m *Match) PerformMove(sourcePosition, targetPosition ChessPosition) (*Piece, error) {
	if err := sourcePosition.validate(); err != nil {
		return nil, err
	}
	if err := targetPosition.validate(); err != nil {
		return nil, err
	}
	if m.checkmate {
		return nil, m.moveError(ErrGameOver, sourcePosition, &targetPosition)
	}
	if m.promotionPending() {
		return nil, m.moveError(ErrPromotionPending, sourcePosition, &targetPosition)
	}

	source := sourcePosition.ToPosition()
	target := targetPosition.ToPosition()
	if err := m.validateSourcePosition(source); err != nil {
		return nil, m.moveError(err, sourcePosition, &targetPosition)
	}
	if err := m.validateTargetPosition(source, target); err != nil {
		return nil, m.moveError(err, sourcePosition, &targetPosition)
	}

	cmd := m.newMoveCommand(source, target)
	if cmd.isCastling() && !m.castlingPathSafe(cmd) {
		return nil, m.moveError(ErrSelfCheck, sourcePosition, &targetPosition)
	}
	m.apply(cmd)
	if m.testCheck(m.currentPlayer) {
		m.undo(cmd)
		return nil, m.moveError(ErrSelfCheck, sourcePosition, &targetPosition)
	}

	moved := cmd.piece
	m.promoted = nil
	if moved.kind == Pawn && target.Row == moved.color.promotionRow() {
		m.promoted = moved
		if auto := PieceType(m.cfg.AutoPromotion); auto.promotable() {
			m.promoted = m.replacePromotedPiece(auto)
		}
	}

	// Recorded before the mate search so that capturing this pawn en passant
	// counts as a way out of check.
	if moved.kind == Pawn && abs(target.Row-source.Row) == 2 {
		m.enPassantVulnerable = moved
	} else {
		m.enPassantVulnerable = nil
	}

	mover := m.currentPlayer
	m.check = m.testCheck(mover.Opponent())
	if m.testCheckMate(mover.Opponent()) {
		m.checkmate = true
	} else {
		m.nextTurn()
	}

	m.record(cmd, mover)
	return cmd.captured, nil
}

// Promote exchanges the pending promotion piece for one of type t, on the same
// square. Types other than queen, rook, bishop and knight leave the pending
// piece as it is and are not an error.
func (m *Match) Promote(t PieceType) (*Piece, error) {
	if m.promoted == nil {
		return nil, ErrNoPromotionPending
	}
	if !t.promotable() {
		return m.promoted, nil
	}
	mover := m.promoted.color
	m.promoted = m.replacePromotedPiece(t)
	m.reevaluate(mover)

	if n := len(m.history); n > 0 {
		last := &m.history[n-1]
		last.Promotion = t
		last.Check = m.check
		last.Checkmate = m.checkmate
		last.Notation = last.notation()
	}
	return m.promoted, nil
}

// promotionPending reports whether the last move left a pawn on the last rank
// that Promote has not exchanged yet.
func (m *Match) promotionPending() bool {
	return m.promoted != nil && m.promoted.kind == Pawn
}

func (m *Match) replacePromotedPiece(t PieceType) *Piece {
	pos := m.promoted.position
	old := m.board.RemovePiece(pos)
	replacement := newPiece(t, old.color)
	m.board.PlacePiece(replacement, pos)
	m.piecesOnTheBoard[slices.Index(m.piecesOnTheBoard, old)] = replacement
	return replacement
}

// reevaluate recomputes check and checkmate after the last move's piece was
// exchanged, keeping the turn frozen exactly when the match is mated.
func (m *Match) reevaluate(mover Color) {
	wasCheckmate := m.checkmate
	m.check = m.testCheck(mover.Opponent())
	m.checkmate = m.testCheckMate(mover.Opponent())
	switch {
	case m.checkmate && !wasCheckmate:
		m.previousTurn()
	case !m.checkmate && wasCheckmate:
		m.nextTurn()
	}
}

func (m *Match) validateSourcePosition(pos Position) error {
	p := m.board.Piece(pos)
	if p == nil {
		return ErrNoPieceAtSource
	}
	if p.color != m.currentPlayer {
		return ErrWrongOwner
	}
	if !p.IsThereAnyPossibleMove(m.board, m) {
		return ErrNoLegalMoves
	}
	return nil
}

func (m *Match) validateTargetPosition(source, target Position) error {
	if !m.board.Piece(source).PossibleMove(m.board, m, target) {
		return ErrIllegalTarget
	}
	return nil
}

// castlingPathSafe rejects castling out of check or across an attacked
// square. Landing on an attacked square is caught by the ordinary guard.
func (m *Match) castlingPathSafe(cmd *moveCommand) bool {
	if !m.cfg.StrictCastling {
		return true
	}
	color := cmd.piece.color
	if m.testCheck(color) {
		return false
	}
	step := 1
	if cmd.target.Column < cmd.source.Column {
		step = -1
	}
	pass := m.newMoveCommand(cmd.source, cmd.source.offset(0, step))
	m.apply(pass)
	attacked := m.testCheck(color)
	m.undo(pass)
	return !attacked
}

// isLegal simulates p moving to target and reports whether the own king is
// safe afterwards. The match is left unchanged.
func (m *Match) isLegal(p *Piece, target Position) bool {
	cmd := m.newMoveCommand(p.position, target)
	if cmd.isCastling() && !m.castlingPathSafe(cmd) {
		return false
	}
	m.apply(cmd)
	inCheck := m.testCheck(p.color)
	m.undo(cmd)
	return !inCheck
}

func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opponent()
}

func (m *Match) previousTurn() {
	m.turn--
	m.currentPlayer = m.currentPlayer.Opponent()
}

func (m *Match) piecesOf(color Color) []*Piece {
	var out []*Piece
	for _, p := range m.piecesOnTheBoard {
		if p.color == color {
			out = append(out, p)
		}
	}
	return out
}

func (m *Match) king(color Color) *Piece {
	for _, p := range m.piecesOnTheBoard {
		if p.color == color && p.kind == King {
			return p
		}
	}
	panic(fmt.Sprintf("model: there is no %s king on the board", color))
}

// testCheck reports whether color's king is on some opposing candidate matrix.
func (m *Match) testCheck(color Color) bool {
	kingPosition := m.king(color).position
	for _, p := range m.piecesOf(color.Opponent()) {
		if p.PossibleMove(m.board, m, kingPosition) {
			return true
		}
	}
	return false
}

// testCheckMate reports whether color is in check with no move that escapes.
func (m *Match) testCheckMate(color Color) bool {
	if !m.testCheck(color) {
		return false
	}
	for _, p := range m.piecesOf(color) {
		for _, target := range p.PossibleMoves(m.board, m).Positions() {
			if m.isLegal(p, target) {
				return false
			}
		}
	}
	return true
}

func (m *Match) moveError(err error, source ChessPosition, target *ChessPosition) error {
	me := &MoveError{Err: err, Turn: m.turn, Player: m.currentPlayer, Source: source.String()}
	if target != nil {
		me.Target = target.String()
	}
	return me
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
