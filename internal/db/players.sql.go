package db

import (
	"context"
	"database/sql"
	"time"
)

const playerColumns = `id, name, career_points, world_cup_attempts, qualifiers_campaigns, world_cup_campaigns, active_mode, active_progress, created_at, updated_at`

func scanPlayer(row interface{ Scan(...interface{}) error }) (Player, error) {
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CareerPoints,
		&i.WorldCupAttempts,
		&i.QualifiersCampaigns,
		&i.WorldCupCampaigns,
		&i.ActiveMode,
		&i.ActiveProgress,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPlayer = `-- name: CreatePlayer :exec
INSERT INTO players (id, name, created_at, updated_at)
VALUES (?, ?, ?, ?)
`

type CreatePlayerParams struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) error {
	_, err := q.db.ExecContext(ctx, createPlayer,
		arg.ID,
		arg.Name,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPlayer = `-- name: GetPlayer :one
SELECT ` + playerColumns + ` FROM players WHERE id = ?
`

func (q *Queries) GetPlayer(ctx context.Context, id string) (Player, error) {
	return scanPlayer(q.db.QueryRowContext(ctx, getPlayer, id))
}

const getPlayerByName = `-- name: GetPlayerByName :one
SELECT ` + playerColumns + ` FROM players WHERE name = ? COLLATE NOCASE
`

func (q *Queries) GetPlayerByName(ctx context.Context, name string) (Player, error) {
	return scanPlayer(q.db.QueryRowContext(ctx, getPlayerByName, name))
}

const searchPlayers = `-- name: SearchPlayers :many
SELECT ` + playerColumns + ` FROM players
WHERE name LIKE ? ESCAPE '\'
ORDER BY name COLLATE NOCASE
LIMIT ?
`

type SearchPlayersParams struct {
	Name  string
	Limit int64
}

func (q *Queries) SearchPlayers(ctx context.Context, arg SearchPlayersParams) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, searchPlayers, arg.Name, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Player
	for rows.Next() {
		i, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updatePlayerCareer = `-- name: UpdatePlayerCareer :execrows
UPDATE players
SET career_points = ?,
    world_cup_attempts = ?,
    qualifiers_campaigns = ?,
    world_cup_campaigns = ?,
    active_mode = ?,
    active_progress = ?,
    updated_at = ?
WHERE id = ?
`

type UpdatePlayerCareerParams struct {
	CareerPoints        int64
	WorldCupAttempts    int64
	QualifiersCampaigns int64
	WorldCupCampaigns   int64
	ActiveMode          sql.NullString
	ActiveProgress      sql.NullString
	UpdatedAt           time.Time
	ID                  string
}

func (q *Queries) UpdatePlayerCareer(ctx context.Context, arg UpdatePlayerCareerParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updatePlayerCareer,
		arg.CareerPoints,
		arg.WorldCupAttempts,
		arg.QualifiersCampaigns,
		arg.WorldCupCampaigns,
		arg.ActiveMode,
		arg.ActiveProgress,
		arg.UpdatedAt,
		arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
