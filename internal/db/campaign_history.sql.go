package db

import (
	"context"
	"time"
)

const insertCampaignHistory = `-- name: InsertCampaignHistory :exec
INSERT INTO campaign_history (
    id, player_id, mode, campaign_number, status, final_stage, final_position, confederation,
    start_date, end_date, wins, draws, losses, points, goal_difference, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type InsertCampaignHistoryParams struct {
	ID             string
	PlayerID       string
	Mode           string
	CampaignNumber int64
	Status         string
	FinalStage     string
	FinalPosition  int64
	Confederation  string
	StartDate      string
	EndDate        string
	Wins           int64
	Draws          int64
	Losses         int64
	Points         int64
	GoalDifference int64
	CreatedAt      time.Time
}

func (q *Queries) InsertCampaignHistory(ctx context.Context, arg InsertCampaignHistoryParams) error {
	_, err := q.db.ExecContext(ctx, insertCampaignHistory,
		arg.ID,
		arg.PlayerID,
		arg.Mode,
		arg.CampaignNumber,
		arg.Status,
		arg.FinalStage,
		arg.FinalPosition,
		arg.Confederation,
		arg.StartDate,
		arg.EndDate,
		arg.Wins,
		arg.Draws,
		arg.Losses,
		arg.Points,
		arg.GoalDifference,
		arg.CreatedAt,
	)
	return err
}

const listCampaignHistoryByPlayer = `-- name: ListCampaignHistoryByPlayer :many
SELECT id, player_id, mode, campaign_number, status, final_stage, final_position, confederation,
       start_date, end_date, wins, draws, losses, points, goal_difference, created_at
FROM campaign_history
WHERE player_id = ?
ORDER BY rowid DESC
LIMIT ?
`

type ListCampaignHistoryByPlayerParams struct {
	PlayerID string
	Limit    int64
}

func (q *Queries) ListCampaignHistoryByPlayer(ctx context.Context, arg ListCampaignHistoryByPlayerParams) ([]CampaignHistory, error) {
	rows, err := q.db.QueryContext(ctx, listCampaignHistoryByPlayer, arg.PlayerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CampaignHistory
	for rows.Next() {
		var i CampaignHistory
		if err := rows.Scan(
			&i.ID,
			&i.PlayerID,
			&i.Mode,
			&i.CampaignNumber,
			&i.Status,
			&i.FinalStage,
			&i.FinalPosition,
			&i.Confederation,
			&i.StartDate,
			&i.EndDate,
			&i.Wins,
			&i.Draws,
			&i.Losses,
			&i.Points,
			&i.GoalDifference,
			&i.CreatedAt,
		); err != nil {
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
