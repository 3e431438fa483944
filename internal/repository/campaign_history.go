package repository

import (
	"career-tracker/internal/db"
	"career-tracker/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type CampaignHistoryRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCampaignHistoryRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CampaignHistoryRepository {
	return &CampaignHistoryRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// List returns a player's finished campaigns, most recent first.
func (r *CampaignHistoryRepository) List(ctx context.Context, playerID string, limit int) ([]domain.CampaignHistoryEntry, error) {
	records, err := r.queries.ListCampaignHistoryByPlayer(ctx, db.ListCampaignHistoryByPlayerParams{
		PlayerID: playerID,
		Limit:    int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.CampaignHistoryEntry, len(records))
	for i, rec := range records {
		start, _ := domain.ParseDate(rec.StartDate)
		end, _ := domain.ParseDate(rec.EndDate)
		result[i] = domain.CampaignHistoryEntry{
			ID:             rec.ID,
			PlayerID:       rec.PlayerID,
			Mode:           domain.CampaignMode(rec.Mode),
			CampaignNumber: int(rec.CampaignNumber),
			Status:         domain.HistoryStatus(rec.Status),
			FinalStage:     rec.FinalStage,
			FinalPosition:  int(rec.FinalPosition),
			Confederation:  rec.Confederation,
			StartDate:      start,
			EndDate:        end,
			Record: domain.Record{
				Wins:   int(rec.Wins),
				Draws:  int(rec.Draws),
				Losses: int(rec.Losses),
			},
			Points:         int(rec.Points),
			GoalDifference: int(rec.GoalDifference),
			CreatedAt:      rec.CreatedAt,
		}
	}
	return result, nil
}

func insertHistory(ctx context.Context, q *db.Queries, entry *domain.CampaignHistoryEntry) error {
	if entry.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		entry.ID = id
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	err := q.InsertCampaignHistory(ctx, db.InsertCampaignHistoryParams{
		ID:             entry.ID,
		PlayerID:       entry.PlayerID,
		Mode:           string(entry.Mode),
		CampaignNumber: int64(entry.CampaignNumber),
		Status:         string(entry.Status),
		FinalStage:     entry.FinalStage,
		FinalPosition:  int64(entry.FinalPosition),
		Confederation:  entry.Confederation,
		StartDate:      entry.StartDate.String(),
		EndDate:        entry.EndDate.String(),
		Wins:           int64(entry.Record.Wins),
		Draws:          int64(entry.Record.Draws),
		Losses:         int64(entry.Record.Losses),
		Points:         int64(entry.Points),
		GoalDifference: int64(entry.GoalDifference),
		CreatedAt:      entry.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert campaign history: %w", translate(err))
	}
	return nil
}
