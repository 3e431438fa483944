package db

import (
	"context"
	"time"
)

const insertTournament = `-- name: InsertTournament :exec
INSERT INTO tournaments (player_id, name, created_at)
VALUES (?, ?, ?)
ON CONFLICT (player_id, name) DO NOTHING
`

type InsertTournamentParams struct {
	PlayerID  string
	Name      string
	CreatedAt time.Time
}

func (q *Queries) InsertTournament(ctx context.Context, arg InsertTournamentParams) error {
	_, err := q.db.ExecContext(ctx, insertTournament, arg.PlayerID, arg.Name, arg.CreatedAt)
	return err
}

const listTournamentsByPlayer = `-- name: ListTournamentsByPlayer :many
SELECT name FROM tournaments WHERE player_id = ? ORDER BY rowid
`

func (q *Queries) ListTournamentsByPlayer(ctx context.Context, playerID string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, listTournamentsByPlayer, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		items = append(items, name)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
