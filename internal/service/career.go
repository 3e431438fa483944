package service

import (
	"career-tracker/internal/campaign"
	"career-tracker/internal/constants"
	"career-tracker/internal/domain"
	"career-tracker/internal/metrics"
	"career-tracker/internal/repository"
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type Publisher interface {
	Publish(ctx context.Context, m campaign.Milestone) error
}

// Career runs campaign events for a player: it loads the state, applies the
// event, persists the outcome in one transaction and announces milestones
// once the write is committed.
type Career struct {
	players   *repository.PlayerRepository
	matches   *repository.MatchRepository
	career    *repository.CareerRepository
	engine    *campaign.Engine
	publisher Publisher
	locks     *PlayerLocks
	logger    zerolog.Logger

	pending sync.WaitGroup
}

func NewCareer(players *repository.PlayerRepository, matches *repository.MatchRepository, career *repository.CareerRepository, engine *campaign.Engine, publisher Publisher, locks *PlayerLocks, logger zerolog.Logger) *Career {
	return &Career{
		players:   players,
		matches:   matches,
		career:    career,
		engine:    engine,
		publisher: publisher,
		locks:     locks,
		logger:    logger,
	}
}

func (c *Career) Apply(ctx context.Context, playerID string, ev campaign.Event) (campaign.Outcome, error) {
	unlock := c.locks.Lock(playerID)
	defer unlock()

	state, err := c.players.LoadState(ctx, playerID)
	if err != nil {
		return campaign.Outcome{}, err
	}
	if q, ok := state.Active.(*domain.QualifiersProgress); ok {
		if err := reloadCampaignMatches(ctx, c.matches, playerID, q); err != nil {
			c.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to reload campaign matches")
			return campaign.Outcome{}, err
		}
	}

	out, err := c.engine.Apply(state, ev)
	if err != nil {
		c.logger.Debug().Err(err).Str("player_id", playerID).Msg("campaign event rejected")
		return campaign.Outcome{}, err
	}

	write := repository.CareerWrite{
		State:   &out.State,
		Match:   out.Match,
		History: out.History,
	}
	if out.NewTournament != "" {
		write.Tournaments = []string{out.NewTournament}
	}
	if err := c.career.Save(ctx, playerID, write); err != nil {
		c.logger.Error().Err(err).Str("player_id", playerID).Msg("failed to persist campaign outcome")
		return campaign.Outcome{}, fmt.Errorf("failed to persist campaign outcome: %w", err)
	}

	if out.Campaign != nil {
		metrics.CampaignTransition(string(out.Campaign.Mode()), string(out.Transition))
	}
	if out.Match != nil {
		metrics.MatchRecorded(string(out.Match.MatchMode))
	}

	c.logger.Info().
		Str("player_id", playerID).
		Str("transition", string(out.Transition)).
		Int("points_awarded", out.PointsAwarded).
		Int("career_points", out.State.CareerPoints).
		Msg("campaign updated")

	c.announce(ctx, out.Milestones)
	return out, nil
}

// announce publishes milestones in the background. Delivery failures are
// logged and never affect the committed outcome.
func (c *Career) announce(ctx context.Context, milestones []campaign.Milestone) {
	if len(milestones) == 0 || c.publisher == nil {
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.FeedPublishTimeout)
	g := new(errgroup.Group)
	for _, m := range milestones {
		g.Go(func() error {
			err := c.publisher.Publish(bg, m)
			metrics.MilestonePublished(string(m.Kind), err)
			return err
		})
	}

	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		defer cancel()
		if err := g.Wait(); err != nil {
			c.logger.Error().Err(err).Msg("milestone publishing failed")
		}
	}()
}

// reloadCampaignMatches swaps the match copies cached in q for the stored rows,
// so edits and deletes made since submission count towards the ranking.
func reloadCampaignMatches(ctx context.Context, matches *repository.MatchRepository, playerID string, q *domain.QualifiersProgress) error {
	ids := make([]string, len(q.CompletedMatches))
	for i, m := range q.CompletedMatches {
		ids[i] = m.ID
	}
	stored, err := matches.GetByIDs(ctx, playerID, ids)
	if err != nil {
		return fmt.Errorf("failed to reload campaign matches: %w", err)
	}
	q.Resync(stored)
	return nil
}

// Drain waits for in-flight milestone deliveries.
func (c *Career) Drain() {
	c.pending.Wait()
}
