package service

import (
	"career-tracker/internal/campaign"
	"career-tracker/internal/constants"
	"career-tracker/internal/domain"
	"career-tracker/internal/metrics"
	"career-tracker/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// MatchDraft is a match as entered by the player, before an id and
// campaign-derived fields are assigned.
type MatchDraft struct {
	Date           domain.Date
	Result         domain.Result
	MyGoals        int
	MyAssists      int
	GoalDifference *int
	Tournament     string
	MatchMode      domain.MatchMode
	Lineup         []string
}

type RecordResult struct {
	Match         domain.MatchRecord           `json:"match"`
	Transition    campaign.Transition          `json:"transition,omitempty"`
	PointsAwarded int                          `json:"pointsAwarded"`
	CareerPoints  int                          `json:"careerPoints"`
	Campaign      domain.Campaign              `json:"campaign,omitempty"`
	History       *domain.CampaignHistoryEntry `json:"history,omitempty"`
	Standings     []domain.TeamStanding        `json:"standings,omitempty"`
	Milestones    []campaign.Milestone         `json:"milestones,omitempty"`
}

type MatchService struct {
	players *repository.PlayerRepository
	matches *repository.MatchRepository
	career  *repository.CareerRepository
	runner  *Career
	locks   *PlayerLocks
	logger  zerolog.Logger
}

func NewMatchService(players *repository.PlayerRepository, matches *repository.MatchRepository, career *repository.CareerRepository, runner *Career, locks *PlayerLocks, logger zerolog.Logger) *MatchService {
	return &MatchService{
		players: players,
		matches: matches,
		career:  career,
		runner:  runner,
		locks:   locks,
		logger:  logger,
	}
}

// Record stores a new match. Regular matches are written as given; qualifiers
// and World Cup matches go through the active campaign.
func (s *MatchService) Record(ctx context.Context, playerID string, draft MatchDraft) (*RecordResult, error) {
	if draft.MatchMode == "" {
		draft.MatchMode = domain.ModeRegular
	}
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	id, err := repository.NewMatchID()
	if err != nil {
		return nil, err
	}
	m := domain.MatchRecord{
		ID:             id,
		PlayerID:       playerID,
		Date:           draft.Date,
		Result:         draft.Result,
		MyGoals:        draft.MyGoals,
		MyAssists:      draft.MyAssists,
		GoalDifference: draft.GoalDifference,
		Tournament:     draft.Tournament,
		MatchMode:      draft.MatchMode,
		Lineup:         draft.Lineup,
		CreatedAt:      time.Now().UTC(),
	}

	if m.MatchMode == domain.ModeRegular {
		return s.recordRegular(ctx, m)
	}

	out, err := s.runner.Apply(ctx, playerID, campaign.SubmitMatch{Match: m})
	if err != nil {
		return nil, err
	}
	return &RecordResult{
		Match:         *out.Match,
		Transition:    out.Transition,
		PointsAwarded: out.PointsAwarded,
		CareerPoints:  out.State.CareerPoints,
		Campaign:      out.Campaign,
		History:       out.History,
		Standings:     out.Standings,
		Milestones:    out.Milestones,
	}, nil
}

func (s *MatchService) recordRegular(ctx context.Context, m domain.MatchRecord) (*RecordResult, error) {
	unlock := s.locks.Lock(m.PlayerID)
	defer unlock()

	state, err := s.players.LoadState(ctx, m.PlayerID)
	if err != nil {
		return nil, err
	}

	write := repository.CareerWrite{Match: &m}
	if m.Tournament != "" && !state.HasTournament(m.Tournament) {
		write.Tournaments = []string{m.Tournament}
	}
	if err := s.career.Save(ctx, m.PlayerID, write); err != nil {
		s.logger.Error().Err(err).Str("player_id", m.PlayerID).Msg("failed to record match")
		return nil, fmt.Errorf("failed to record match: %w", err)
	}

	metrics.MatchRecorded(string(m.MatchMode))
	s.logger.Info().Str("player_id", m.PlayerID).Str("match_id", m.ID).Str("result", string(m.Result)).Msg("match recorded")
	return &RecordResult{Match: m, CareerPoints: state.CareerPoints}, nil
}

// List returns the player's most recent matches in insertion order. A limit
// of zero, or one above MaxMatchesPerPage, is clamped to MaxMatchesPerPage.
func (s *MatchService) List(ctx context.Context, playerID string, limit int) ([]domain.MatchRecord, error) {
	if _, err := s.players.Get(ctx, playerID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > constants.MaxMatchesPerPage {
		limit = constants.MaxMatchesPerPage
	}
	all, err := s.matches.List(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

// MatchEdit carries the fields of a stored match that may be corrected.
type MatchEdit struct {
	Date           domain.Date
	Result         domain.Result
	MyGoals        int
	MyAssists      int
	GoalDifference *int
	Lineup         []string
}

// Update corrects a stored match. Campaign progress already derived from the
// match is left as it is.
func (s *MatchService) Update(ctx context.Context, playerID, matchID string, edit MatchEdit) (*domain.MatchRecord, error) {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	m, err := s.matches.Get(ctx, playerID, matchID)
	if err != nil {
		return nil, err
	}

	m.Date = edit.Date
	m.Result = edit.Result
	m.MyGoals = edit.MyGoals
	m.MyAssists = edit.MyAssists
	m.GoalDifference = edit.GoalDifference
	m.Lineup = edit.Lineup

	if err := validateDraft(MatchDraft{Date: m.Date, Result: m.Result, MyGoals: m.MyGoals, MyAssists: m.MyAssists, MatchMode: m.MatchMode}); err != nil {
		return nil, err
	}
	if err := s.matches.Update(ctx, *m); err != nil {
		return nil, err
	}

	s.logger.Info().Str("player_id", playerID).Str("match_id", matchID).Msg("match updated")
	return m, nil
}

func (s *MatchService) Delete(ctx context.Context, playerID, matchID string) error {
	unlock := s.locks.Lock(playerID)
	defer unlock()

	if err := s.matches.Delete(ctx, playerID, matchID); err != nil {
		return err
	}
	s.logger.Info().Str("player_id", playerID).Str("match_id", matchID).Msg("match deleted")
	return nil
}

func validateDraft(d MatchDraft) error {
	switch {
	case d.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	case !d.Result.Valid():
		return fmt.Errorf("%w: result must be WIN, DRAW or LOSS", ErrInvalidInput)
	case !d.MatchMode.Valid():
		return fmt.Errorf("%w: unknown match mode %q", ErrInvalidInput, d.MatchMode)
	case d.MyGoals < 0 || d.MyAssists < 0:
		return fmt.Errorf("%w: goals and assists cannot be negative", ErrInvalidInput)
	}
	return nil
}
