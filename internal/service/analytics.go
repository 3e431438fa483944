package service

import (
	"career-tracker/internal/analytics"
	"career-tracker/internal/domain"
	"career-tracker/internal/metrics"
	"career-tracker/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Analytics struct {
	PlayerID     string                   `json:"playerId"`
	Matches      int                      `json:"matches"`
	CareerPoints int                      `json:"careerPoints"`
	Records      domain.HistoricalRecords `json:"records"`
	Morale       *domain.PlayerMorale     `json:"morale"`
	Rating       domain.SeasonRating      `json:"rating"`
	Tournaments  []domain.TournamentStats `json:"tournaments"`
}

type AnalyticsService struct {
	players *repository.PlayerRepository
	matches *repository.MatchRepository
	logger  zerolog.Logger
}

func NewAnalyticsService(players *repository.PlayerRepository, matches *repository.MatchRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{players: players, matches: matches, logger: logger}
}

func (s *AnalyticsService) Compute(ctx context.Context, playerID string) (*Analytics, error) {
	start := time.Now()
	defer metrics.ObserveAnalytics(start)

	state, err := s.players.LoadState(ctx, playerID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.List(ctx, playerID)
	if err != nil {
		s.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to load matches")
		return nil, fmt.Errorf("failed to load matches: %w", err)
	}

	result := &Analytics{PlayerID: playerID, Matches: len(matches), CareerPoints: state.CareerPoints}

	// Each calculator only reads the shared slice.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Records = analytics.ComputeRecords(matches)
		return gCtx.Err()
	})
	g.Go(func() error {
		result.Morale = analytics.ComputeMorale(matches)
		return gCtx.Err()
	})
	g.Go(func() error {
		result.Rating = analytics.ComputeSeasonRating(matches)
		return gCtx.Err()
	})
	g.Go(func() error {
		result.Tournaments = analytics.TournamentBreakdown(matches)
		return gCtx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("player_id", playerID).
		Int("matches", len(matches)).
		Dur("took", time.Since(start)).
		Msg("analytics computed")
	return result, nil
}
