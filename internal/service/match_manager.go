// service/match_manager.go
package service

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/benbeisheim/chessmatch/internal/config"
	"github.com/benbeisheim/chessmatch/internal/model"
	"github.com/google/uuid"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrTooManyMatches = errors.New("too many matches")
)

// MatchManager keeps every live match in memory. Each match is only ever
// touched under the manager lock, so one call drives it at a time.
type MatchManager struct {
	matches map[string]*model.Match
	cfg     config.Config
	mu      sync.RWMutex
}

func NewMatchManager(cfg *config.Config) (*MatchManager, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MatchManager{
		matches: make(map[string]*model.Match),
		cfg:     *cfg,
	}, nil
}

func (mm *MatchManager) CreateMatch() (string, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if limit := mm.cfg.Registry.MaxMatches; limit > 0 && len(mm.matches) >= limit {
		return "", fmt.Errorf("%w: limit is %d", ErrTooManyMatches, limit)
	}

	matchID := uuid.New().String()
	mm.matches[matchID] = model.NewMatch(mm.cfg.Match)
	log.Printf("created match %s", matchID)
	return matchID, nil
}

func (mm *MatchManager) RemoveMatch(matchID string) error {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	if _, exists := mm.matches[matchID]; !exists {
		return ErrMatchNotFound
	}
	delete(mm.matches, matchID)
	log.Printf("removed match %s", matchID)
	return nil
}

// MatchIDs lists the live matches in lexical order.
func (mm *MatchManager) MatchIDs() []string {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	ids := make([]string, 0, len(mm.matches))
	for id := range mm.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (mm *MatchManager) GetState(matchID string) (model.MatchState, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return model.MatchState{}, ErrMatchNotFound
	}
	return match.State(), nil
}

func (mm *MatchManager) GetHistory(matchID string) ([]model.Ply, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return nil, ErrMatchNotFound
	}
	return match.History(), nil
}

func (mm *MatchManager) PossibleMoves(matchID string, source model.ChessPosition) (model.Moves, error) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return model.Moves{}, ErrMatchNotFound
	}
	return match.PossibleMoves(source)
}

// LegalMoves needs the write lock: the match simulates each candidate.
func (mm *MatchManager) LegalMoves(matchID string, source model.ChessPosition) (model.Moves, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return model.Moves{}, ErrMatchNotFound
	}
	return match.LegalMoves(source)
}

// MakeMove plays a move and returns a snapshot of the captured piece, if any.
func (mm *MatchManager) MakeMove(matchID string, source, target model.ChessPosition) (*model.PieceInfo, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return nil, ErrMatchNotFound
	}

	captured, err := match.PerformMove(source, target)
	if err != nil {
		log.Printf("match %s: rejected move: %v", matchID, err)
		return nil, err
	}
	if match.Checkmate() {
		log.Printf("match %s: checkmate, %s wins on turn %d", matchID, match.CurrentPlayer(), match.Turn())
	}
	if captured == nil {
		return nil, nil
	}
	info := captured.Info()
	return &info, nil
}

func (mm *MatchManager) Promote(matchID string, pieceType model.PieceType) (model.PieceInfo, error) {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	match, exists := mm.matches[matchID]
	if !exists {
		return model.PieceInfo{}, ErrMatchNotFound
	}

	promoted, err := match.Promote(pieceType)
	if err != nil {
		return model.PieceInfo{}, err
	}
	return promoted.Info(), nil
}
