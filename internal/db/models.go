package db

import (
	"database/sql"
	"time"
)

type Player struct {
	ID                  string
	Name                string
	CareerPoints        int64
	WorldCupAttempts    int64
	QualifiersCampaigns int64
	WorldCupCampaigns   int64
	ActiveMode          sql.NullString
	ActiveProgress      sql.NullString
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Match struct {
	Seq            int64
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

type Tournament struct {
	PlayerID  string
	Name      string
	CreatedAt time.Time
}

type CampaignHistory struct {
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
