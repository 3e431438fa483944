package service

import (
	"career-tracker/internal/constants"
	"career-tracker/internal/domain"
	"career-tracker/internal/repository"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type PlayerService struct {
	repo   *repository.PlayerRepository
	logger zerolog.Logger
}

func NewPlayerService(repo *repository.PlayerRepository, logger zerolog.Logger) *PlayerService {
	return &PlayerService{repo: repo, logger: logger}
}

func (s *PlayerService) Create(ctx context.Context, name string) (*domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}

	player, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("player_id", player.ID).Str("name", player.Name).Msg("player created")
	return player, nil
}

func (s *PlayerService) Get(ctx context.Context, id string) (*domain.Player, error) {
	return s.repo.Get(ctx, id)
}

// Career returns the player's persisted career counters and active campaign.
func (s *PlayerService) Career(ctx context.Context, id string) (domain.CareerState, error) {
	return s.repo.LoadState(ctx, id)
}

func (s *PlayerService) Search(ctx context.Context, query string) ([]domain.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Player{}, nil
	}

	players, err := s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search players")
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	if players == nil {
		players = []domain.Player{}
	}
	return players, nil
}
