package service

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/chessmatch/internal/model"
)

// MatchService is what a front end talks to: it adds context to the errors of
// the manager and serializes state for display.
type MatchService struct {
	matchManager *MatchManager
}

func NewMatchService(matchManager *MatchManager) *MatchService {
	return &MatchService{
		matchManager: matchManager,
	}
}

func (ms *MatchService) CreateMatch() (string, error) {
	matchID, err := ms.matchManager.CreateMatch()
	if err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}
	return matchID, nil
}

func (ms *MatchService) EndMatch(matchID string) error {
	if err := ms.matchManager.RemoveMatch(matchID); err != nil {
		return fmt.Errorf("failed to end match %s: %w", matchID, err)
	}
	return nil
}

func (ms *MatchService) GetMatchState(matchID string) (model.MatchState, error) {
	return ms.matchManager.GetState(matchID)
}

// GetMatchStateJSON returns the state in the shape a renderer consumes.
func (ms *MatchService) GetMatchStateJSON(matchID string) (json.RawMessage, error) {
	state, err := ms.matchManager.GetState(matchID)
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state of match %s: %w", matchID, err)
	}
	return payload, nil
}

func (ms *MatchService) GetHistory(matchID string) ([]model.Ply, error) {
	return ms.matchManager.GetHistory(matchID)
}

func (ms *MatchService) HighlightMoves(matchID string, source model.ChessPosition) (model.Moves, error) {
	moves, err := ms.matchManager.LegalMoves(matchID, source)
	if err != nil {
		return model.Moves{}, fmt.Errorf("failed to list moves from %s: %w", source, err)
	}
	return moves, nil
}

func (ms *MatchService) HandleMove(matchID string, source, target model.ChessPosition) (*model.PieceInfo, error) {
	captured, err := ms.matchManager.MakeMove(matchID, source, target)
	if err != nil {
		return nil, fmt.Errorf("failed to move %s-%s: %w", source, target, err)
	}
	return captured, nil
}

func (ms *MatchService) HandlePromotion(matchID string, pieceType model.PieceType) (model.PieceInfo, error) {
	promoted, err := ms.matchManager.Promote(matchID, pieceType)
	if err != nil {
		return model.PieceInfo{}, fmt.Errorf("failed to promote to %s: %w", pieceType, err)
	}
	return promoted, nil
}
