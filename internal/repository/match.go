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

type MatchRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewMatchRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *MatchRepository {
	return &MatchRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// NewMatchID returns a fresh identifier for a match that is about to be recorded.
func NewMatchID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}
	return id, nil
}

// List returns a player's matches in insertion order.
func (r *MatchRepository) List(ctx context.Context, playerID string) ([]domain.MatchRecord, error) {
	rows, err := r.queries.ListMatchesByPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return toDomainMatches(rows), nil
}

// GetByIDs returns the stored versions of the given matches in insertion
// order. Matches that no longer exist are skipped.
func (r *MatchRepository) GetByIDs(ctx context.Context, playerID string, ids []string) ([]domain.MatchRecord, error) {
	if len(ids) == 0 {
		return []domain.MatchRecord{}, nil
	}
	rows, err := r.queries.ListMatchesByIDs(ctx, db.ListMatchesByIDsParams{PlayerID: playerID, Ids: ids})
	if err != nil {
		return nil, err
	}
	if len(rows) < len(ids) {
		r.logger.Debug().
			Str("player_id", playerID).
			Int("requested", len(ids)).
			Int("found", len(rows)).
			Msg("some campaign matches are no longer stored")
	}
	return toDomainMatches(rows), nil
}

func (r *MatchRepository) Get(ctx context.Context, playerID, id string) (*domain.MatchRecord, error) {
	row, err := r.queries.GetPlayerMatch(ctx, db.GetPlayerMatchParams{ID: id, PlayerID: playerID})
	if err != nil {
		return nil, translate(err)
	}
	m := toDomainMatch(row)
	return &m, nil
}

// Update rewrites the editable fields of a stored match. Mode, tournament
// and earned points are fixed when the match is recorded.
func (r *MatchRepository) Update(ctx context.Context, m domain.MatchRecord) error {
	n, err := r.queries.UpdateMatch(ctx, db.UpdateMatchParams{
		Date:           m.Date.String(),
		Result:         string(m.Result),
		MyGoals:        int64(m.MyGoals),
		MyAssists:      int64(m.MyAssists),
		GoalDifference: nullInt(m.GoalDifference),
		Lineup:         encodeLineup(m.Lineup),
		ID:             m.ID,
		PlayerID:       m.PlayerID,
	})
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", m.ID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, playerID, id string) error {
	n, err := r.queries.DeleteMatch(ctx, db.DeleteMatchParams{ID: id, PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func insertMatch(ctx context.Context, q *db.Queries, m *domain.MatchRecord) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	err := q.InsertMatch(ctx, db.InsertMatchParams{
		ID:             m.ID,
		PlayerID:       m.PlayerID,
		Date:           m.Date.String(),
		Result:         string(m.Result),
		MyGoals:        int64(m.MyGoals),
		MyAssists:      int64(m.MyAssists),
		GoalDifference: nullInt(m.GoalDifference),
		Tournament:     m.Tournament,
		MatchMode:      string(m.MatchMode),
		EarnedPoints:   nullInt(m.EarnedPoints),
		Lineup:         encodeLineup(m.Lineup),
		CreatedAt:      m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", m.ID, translate(err))
	}
	return nil
}

func toDomainMatches(rows []db.Match) []domain.MatchRecord {
	result := make([]domain.MatchRecord, len(rows))
	for i, row := range rows {
		result[i] = toDomainMatch(row)
	}
	return result
}

func toDomainMatch(row db.Match) domain.MatchRecord {
	// Dates are validated before they are written.
	date, _ := domain.ParseDate(row.Date)
	return domain.MatchRecord{
		ID:             row.ID,
		PlayerID:       row.PlayerID,
		Date:           date,
		Result:         domain.Result(row.Result),
		MyGoals:        int(row.MyGoals),
		MyAssists:      int(row.MyAssists),
		GoalDifference: intFromNull(row.GoalDifference),
		Tournament:     row.Tournament,
		MatchMode:      domain.MatchMode(row.MatchMode),
		EarnedPoints:   intFromNull(row.EarnedPoints),
		Lineup:         decodeLineup(row.Lineup),
		CreatedAt:      row.CreatedAt,
	}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intFromNull(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
