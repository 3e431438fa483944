package db

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

const matchColumns = `seq, id, player_id, date, result, my_goals, my_assists, goal_difference, tournament, match_mode, earned_points, lineup, created_at`

func scanMatch(row interface{ Scan(...interface{}) error }) (Match, error) {
	var i Match
	err := row.Scan(
		&i.Seq,
		&i.ID,
		&i.PlayerID,
		&i.Date,
		&i.Result,
		&i.MyGoals,
		&i.MyAssists,
		&i.GoalDifference,
		&i.Tournament,
		&i.MatchMode,
		&i.EarnedPoints,
		&i.Lineup,
		&i.CreatedAt,
	)
	return i, err
}

func scanMatches(rows *sql.Rows) ([]Match, error) {
	defer rows.Close()
	var items []Match
	for rows.Next() {
		i, err := scanMatch(rows)
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

const insertMatch = `-- name: InsertMatch :exec
INSERT INTO matches (id, player_id, date, result, my_goals, my_assists, goal_difference, tournament, match_mode, earned_points, lineup, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertMatchParams struct {
	ID             string
	PlayerID       string
	Date           string
	Result         string
	MyGoals        int64
	MyAssists      int64
	GoalDifference sql.NullInt64
	Tournament     string
	MatchMode      string
	EarnedPoints   sql.NullInt64
	Lineup         string
	CreatedAt      time.Time
}

func (q *Queries) InsertMatch(ctx context.Context, arg InsertMatchParams) error {
	_, err := q.db.ExecContext(ctx, insertMatch,
		arg.ID,
		arg.PlayerID,
		arg.Date,
		arg.Result,
		arg.MyGoals,
		arg.MyAssists,
		arg.GoalDifference,
		arg.Tournament,
		arg.MatchMode,
		arg.EarnedPoints,
		arg.Lineup,
		arg.CreatedAt,
	)
	return err
}

const getPlayerMatch = `-- name: GetPlayerMatch :one
SELECT ` + matchColumns + ` FROM matches WHERE id = ? AND player_id = ?
`

type GetPlayerMatchParams struct {
	ID       string
	PlayerID string
}

func (q *Queries) GetPlayerMatch(ctx context.Context, arg GetPlayerMatchParams) (Match, error) {
	return scanMatch(q.db.QueryRowContext(ctx, getPlayerMatch, arg.ID, arg.PlayerID))
}

const listMatchesByPlayer = `-- name: ListMatchesByPlayer :many
SELECT ` + matchColumns + ` FROM matches WHERE player_id = ? ORDER BY seq
`

func (q *Queries) ListMatchesByPlayer(ctx context.Context, playerID string) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatchesByPlayer, playerID)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const listMatchesByIDs = `-- name: ListMatchesByIDs :many
SELECT ` + matchColumns + ` FROM matches WHERE player_id = ? AND id IN (/*SLICE:ids*/?) ORDER BY seq
`

type ListMatchesByIDsParams struct {
	PlayerID string
	Ids      []string
}

func (q *Queries) ListMatchesByIDs(ctx context.Context, arg ListMatchesByIDsParams) ([]Match, error) {
	query := listMatchesByIDs
	var queryParams []interface{}
	queryParams = append(queryParams, arg.PlayerID)
	if len(arg.Ids) > 0 {
		for _, v := range arg.Ids {
			queryParams = append(queryParams, v)
		}
		query = strings.Replace(query, "/*SLICE:ids*/?", strings.Repeat(",?", len(arg.Ids))[1:], 1)
	} else {
		query = strings.Replace(query, "/*SLICE:ids*/?", "NULL", 1)
	}
	rows, err := q.db.QueryContext(ctx, query, queryParams...)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const updateMatch = `-- name: UpdateMatch :execrows
UPDATE matches
SET date = ?,
    result = ?,
    my_goals = ?,
    my_assists = ?,
    goal_difference = ?,
    lineup = ?
WHERE id = ? AND player_id = ?
`

type UpdateMatchParams struct {
	Date           string
	Result         string
	MyGoals        int64
	MyAssists      int64
	GoalDifference sql.NullInt64
	Lineup         string
	ID             string
	PlayerID       string
}

func (q *Queries) UpdateMatch(ctx context.Context, arg UpdateMatchParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateMatch,
		arg.Date,
		arg.Result,
		arg.MyGoals,
		arg.MyAssists,
		arg.GoalDifference,
		arg.Lineup,
		arg.ID,
		arg.PlayerID,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteMatch = `-- name: DeleteMatch :execrows
DELETE FROM matches WHERE id = ? AND player_id = ?
`

type DeleteMatchParams struct {
	ID       string
	PlayerID string
}

func (q *Queries) DeleteMatch(ctx context.Context, arg DeleteMatchParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatch, arg.ID, arg.PlayerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
