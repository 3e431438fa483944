package service

import (
	"career-tracker/internal/analytics"
	"career-tracker/internal/campaign"
	"career-tracker/internal/confederation"
	"career-tracker/internal/domain"
	"career-tracker/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const defaultHistoryLimit = 50

type CampaignService struct {
	players        *repository.PlayerRepository
	matches        *repository.MatchRepository
	history        *repository.CampaignHistoryRepository
	confederations *confederation.Table
	runner         *Career
	logger         zerolog.Logger
}

func NewCampaignService(players *repository.PlayerRepository, matches *repository.MatchRepository, history *repository.CampaignHistoryRepository, confederations *confederation.Table, runner *Career, logger zerolog.Logger) *CampaignService {
	return &CampaignService{
		players:        players,
		matches:        matches,
		history:        history,
		confederations: confederations,
		runner:         runner,
		logger:         logger,
	}
}

func (s *CampaignService) Confederations() []domain.Confederation {
	return s.confederations.All()
}

func (s *CampaignService) StartQualifiers(ctx context.Context, playerID, confederationID string, date domain.Date) (campaign.Outcome, error) {
	return s.runner.Apply(ctx, playerID, campaign.StartQualifiers{Confederation: confederationID, Date: orToday(date)})
}

func (s *CampaignService) StartWorldCup(ctx context.Context, playerID string, useQualification bool, date domain.Date) (campaign.Outcome, error) {
	return s.runner.Apply(ctx, playerID, campaign.StartWorldCup{UseQualification: useQualification, Date: orToday(date)})
}

func (s *CampaignService) Abandon(ctx context.Context, playerID string, date domain.Date) (campaign.Outcome, error) {
	return s.runner.Apply(ctx, playerID, campaign.Abandon{Date: orToday(date)})
}

// Active returns the player's running campaign, or nil.
func (s *CampaignService) Active(ctx context.Context, playerID string) (domain.Campaign, error) {
	state, err := s.players.LoadState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return state.Active, nil
}

// Standings ranks the active qualifiers campaign. The player's matches are
// re-read from the store so later edits and deletes are reflected.
func (s *CampaignService) Standings(ctx context.Context, playerID string) ([]domain.TeamStanding, error) {
	state, err := s.players.LoadState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	q, ok := state.Active.(*domain.QualifiersProgress)
	if !ok {
		return nil, fmt.Errorf("%w: standings need an active qualifiers campaign", campaign.ErrNoActiveCampaign)
	}
	conf, ok := s.confederations.Get(q.Confederation)
	if !ok {
		return nil, fmt.Errorf("%w: %q", campaign.ErrUnknownConfederation, q.Confederation)
	}

	if err := reloadCampaignMatches(ctx, s.matches, playerID, q); err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to reload campaign matches")
		return nil, err
	}

	return analytics.ComputeStandings(*q, conf, state.PlayerName, q.CompletedMatches), nil
}

func (s *CampaignService) History(ctx context.Context, playerID string, limit int) ([]domain.CampaignHistoryEntry, error) {
	if _, err := s.players.Get(ctx, playerID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.history.List(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign history: %w", err)
	}
	if entries == nil {
		entries = []domain.CampaignHistoryEntry{}
	}
	return entries, nil
}

func orToday(d domain.Date) domain.Date {
	if d.IsZero() {
		return domain.DateOf(time.Now())
	}
	return d
}
