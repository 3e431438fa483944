package repository

import (
	"career-tracker/internal/db"
	"career-tracker/internal/domain"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *PlayerRepository) Create(ctx context.Context, name string) (*domain.Player, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	now := time.Now().UTC()
	err = r.queries.CreatePlayer(ctx, db.CreatePlayerParams{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player %q: %w", name, translate(err))
	}

	r.logger.Debug().Str("player_id", id).Str("name", name).Msg("player created")
	return &domain.Player{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *PlayerRepository) Get(ctx context.Context, id string) (*domain.Player, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toDomainPlayer(player), nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	player, err := r.queries.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, translate(err)
	}
	return toDomainPlayer(player), nil
}

// Search returns players whose name starts with prefix, case-insensitively.
func (r *PlayerRepository) Search(ctx context.Context, prefix string, limit int) ([]domain.Player, error) {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)
	players, err := r.queries.SearchPlayers(ctx, db.SearchPlayersParams{
		Name:  escaped + "%",
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Player, len(players))
	for i, p := range players {
		result[i] = *toDomainPlayer(p)
	}
	return result, nil
}

// LoadState reads everything the campaign engine needs for one player.
func (r *PlayerRepository) LoadState(ctx context.Context, id string) (domain.CareerState, error) {
	player, err := r.queries.GetPlayer(ctx, id)
	if err != nil {
		return domain.CareerState{}, translate(err)
	}

	active, err := decodeCampaign(player.ActiveMode, player.ActiveProgress)
	if err != nil {
		r.logger.Error().Err(err).Str("player_id", id).Msg("failed to decode active campaign")
		return domain.CareerState{}, err
	}

	tournaments, err := r.queries.ListTournamentsByPlayer(ctx, id)
	if err != nil {
		return domain.CareerState{}, fmt.Errorf("failed to list tournaments: %w", err)
	}

	return domain.CareerState{
		PlayerID:            player.ID,
		PlayerName:          player.Name,
		CareerPoints:        int(player.CareerPoints),
		WorldCupAttempts:    int(player.WorldCupAttempts),
		QualifiersCampaigns: int(player.QualifiersCampaigns),
		WorldCupCampaigns:   int(player.WorldCupCampaigns),
		Active:              active,
		Tournaments:         tournaments,
	}, nil
}

func (r *PlayerRepository) Tournaments(ctx context.Context, id string) ([]string, error) {
	return r.queries.ListTournamentsByPlayer(ctx, id)
}

func saveState(ctx context.Context, q *db.Queries, state domain.CareerState) error {
	mode, progress, err := encodeCampaign(state.Active)
	if err != nil {
		return err
	}

	n, err := q.UpdatePlayerCareer(ctx, db.UpdatePlayerCareerParams{
		CareerPoints:        int64(state.CareerPoints),
		WorldCupAttempts:    int64(state.WorldCupAttempts),
		QualifiersCampaigns: int64(state.QualifiersCampaigns),
		WorldCupCampaigns:   int64(state.WorldCupCampaigns),
		ActiveMode:          mode,
		ActiveProgress:      progress,
		UpdatedAt:           time.Now().UTC(),
		ID:                  state.PlayerID,
	})
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", state.PlayerID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func toDomainPlayer(p db.Player) *domain.Player {
	return &domain.Player{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
