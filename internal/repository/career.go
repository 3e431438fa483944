package repository

import (
	"career-tracker/internal/database"
	"career-tracker/internal/db"
	"career-tracker/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// CareerWrite is one atomic change to a player's career.
type CareerWrite struct {
	// State is written back when non-nil.
	State       *domain.CareerState
	Match       *domain.MatchRecord
	History     *domain.CampaignHistoryEntry
	Tournaments []string
}

type CareerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCareerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CareerRepository {
	return &CareerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// Save applies w in a single transaction: either every row is written or none is.
func (r *CareerRepository) Save(ctx context.Context, playerID string, w CareerWrite) error {
	err := database.InTx(ctx, r.db, func(tx *sql.Tx) error {
		qtx := r.queries.WithTx(tx)

		if w.Match != nil {
			if err := insertMatch(ctx, qtx, w.Match); err != nil {
				return err
			}
		}
		if w.History != nil {
			if err := insertHistory(ctx, qtx, w.History); err != nil {
				return err
			}
		}
		now := time.Now().UTC()
		for _, name := range w.Tournaments {
			if name == "" {
				continue
			}
			err := qtx.InsertTournament(ctx, db.InsertTournamentParams{PlayerID: playerID, Name: name, CreatedAt: now})
			if err != nil {
				return fmt.Errorf("failed to insert tournament %q: %w", name, err)
			}
		}
		if w.State != nil {
			return saveState(ctx, qtx, *w.State)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("player_id", playerID).
		Bool("match", w.Match != nil).
		Bool("history", w.History != nil).
		Int("tournaments", len(w.Tournaments)).
		Bool("state", w.State != nil).
		Msg("career write committed")
	return nil
}
