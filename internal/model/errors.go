package model

import (
	"errors"
	"fmt"
	"strings"
)

// Rule violations. All of them are recoverable: the match is unchanged after
// any of them is returned.
var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrNoPieceAtSource    = errors.New("there is no piece on source position")
	ErrWrongOwner         = errors.New("the chosen piece is not yours")
	ErrNoLegalMoves       = errors.New("there is no possible move for the chosen piece")
	ErrIllegalTarget      = errors.New("the chosen piece can't move to target position")
	ErrSelfCheck          = errors.New("you can't put yourself in check")
	ErrNoPromotionPending = errors.New("there is no piece to be promoted")
	ErrGameOver           = errors.New("the match is over")
	ErrPromotionPending   = errors.New("the promoted pawn must be exchanged first")
)

// MoveError carries the context of a rejected move. Use errors.Is on it to
// find the rule that was broken. Apart from the rule violations it may wrap
// ErrGameOver, once the match is mated, and ErrPromotionPending, while a pawn
// waits on the last rank for Promote.
type MoveError struct {
	Err    error
	Turn   int
	Player Color
	Source string
	Target string // empty when only the source was being checked
}

func (e *MoveError) Error() string {
	parts := []string{fmt.Sprintf("turn %d", e.Turn)}
	if e.Player != "" {
		parts = append(parts, string(e.Player))
	}
	switch {
	case e.Source != "" && e.Target != "":
		parts = append(parts, e.Source+"-"+e.Target)
	case e.Source != "":
		parts = append(parts, e.Source)
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
