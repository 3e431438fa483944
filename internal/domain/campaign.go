package domain

import (
	"slices"
	"time"
)

type CampaignMode string

const (
	CampaignQualifiers CampaignMode = "qualifiers"
	CampaignWorldCup   CampaignMode = "world_cup"
)

// Campaign is one of *QualifiersProgress or *WorldCupProgress.
type Campaign interface {
	Mode() CampaignMode
	Number() int
	clone() Campaign
}

type QualifiersStatus string

const (
	QualifiersActive    QualifiersStatus = "active"
	QualifiersCompleted QualifiersStatus = "completed"
)

type QualifiersProgress struct {
	CampaignNumber   int              `json:"campaignNumber"`
	Confederation    string           `json:"confederation"`
	StartDate        Date             `json:"startDate"`
	MatchesPlayed    int              `json:"matchesPlayed"`
	Points           int              `json:"points"`
	Record           Record           `json:"record"`
	GoalDifference   int              `json:"goalDifference"`
	CompletedMatches []MatchRecord    `json:"completedMatches"`
	Group            []string         `json:"group,omitempty"`
	Status           QualifiersStatus `json:"status"`
}

func (q *QualifiersProgress) Mode() CampaignMode { return CampaignQualifiers }
func (q *QualifiersProgress) Number() int        { return q.CampaignNumber }

// Resync replaces the cached campaign matches with their stored versions and
// recomputes the running totals from them. MatchesPlayed counts submissions
// and is left untouched.
func (q *QualifiersProgress) Resync(stored []MatchRecord) {
	q.CompletedMatches = stored
	q.Points = 0
	q.GoalDifference = 0
	q.Record = Record{}
	for _, m := range stored {
		q.Points += m.Result.BasePoints()
		q.GoalDifference += m.GD()
		q.Record.Add(m.Result)
	}
}

func (q *QualifiersProgress) clone() Campaign {
	c := *q
	c.CompletedMatches = slices.Clone(q.CompletedMatches)
	c.Group = slices.Clone(q.Group)
	return &c
}

type Stage string

const (
	StageGroup         Stage = "group"
	StageRoundOf16     Stage = "round_of_16"
	StageQuarterFinals Stage = "quarter_finals"
	StageSemiFinals    Stage = "semi_finals"
	StageFinal         Stage = "final"
)

// Next returns the knockout stage that follows s, or "" after the final.
func (s Stage) Next() Stage {
	switch s {
	case StageGroup:
		return StageRoundOf16
	case StageRoundOf16:
		return StageQuarterFinals
	case StageQuarterFinals:
		return StageSemiFinals
	case StageSemiFinals:
		return StageFinal
	default:
		return ""
	}
}

type GroupStage struct {
	MatchesPlayed int `json:"matchesPlayed"`
	Points        int `json:"points"`
}

type WorldCupProgress struct {
	CampaignNumber     int                     `json:"campaignNumber"`
	StartDate          Date                    `json:"startDate"`
	CurrentStage       Stage                   `json:"currentStage"`
	GroupStage         GroupStage              `json:"groupStage"`
	CompletedStages    []Stage                 `json:"completedStages"`
	MatchesByStage     map[Stage][]MatchRecord `json:"matchesByStage"`
	IsQualified        bool                    `json:"isQualified"`
	ChampionOfCampaign bool                    `json:"championOfCampaign"`
}

func (w *WorldCupProgress) Mode() CampaignMode { return CampaignWorldCup }
func (w *WorldCupProgress) Number() int        { return w.CampaignNumber }

func (w *WorldCupProgress) clone() Campaign {
	c := *w
	c.CompletedStages = slices.Clone(w.CompletedStages)
	c.MatchesByStage = make(map[Stage][]MatchRecord, len(w.MatchesByStage))
	for stage, matches := range w.MatchesByStage {
		c.MatchesByStage[stage] = slices.Clone(matches)
	}
	return &c
}

// AllMatches lists the campaign's matches stage by stage.
func (w *WorldCupProgress) AllMatches() []MatchRecord {
	var out []MatchRecord
	for _, stage := range []Stage{StageGroup, StageRoundOf16, StageQuarterFinals, StageSemiFinals, StageFinal} {
		out = append(out, w.MatchesByStage[stage]...)
	}
	return out
}

type HistoryStatus string

const (
	HistoryChampion   HistoryStatus = "champion"
	HistoryEliminated HistoryStatus = "eliminated"
	HistoryCompleted  HistoryStatus = "completed"
	HistoryAbandoned  HistoryStatus = "abandoned"
)

const (
	FinalStageEliminatedGroup = "eliminated_group"
	FinalStageQualified       = "qualified"
	FinalStagePlayoff         = "playoff"
	FinalStageNotQualified    = "not_qualified"
)

type CampaignHistoryEntry struct {
	ID             string        `json:"id"`
	PlayerID       string        `json:"playerId"`
	Mode           CampaignMode  `json:"mode"`
	CampaignNumber int           `json:"campaignNumber"`
	Status         HistoryStatus `json:"status"`
	FinalStage     string        `json:"finalStage,omitempty"`
	FinalPosition  int           `json:"finalPosition,omitempty"`
	Confederation  string        `json:"confederation,omitempty"`
	StartDate      Date          `json:"startDate"`
	EndDate        Date          `json:"endDate"`
	Record         Record        `json:"record"`
	Points         int           `json:"points"`
	GoalDifference int           `json:"goalDifference"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type CareerState struct {
	PlayerID            string
	PlayerName          string
	CareerPoints        int
	WorldCupAttempts    int
	QualifiersCampaigns int
	WorldCupCampaigns   int
	Active              Campaign
	Tournaments         []string
}

// Clone deep-copies the state so a reducer can work on it without touching the caller's copy.
func (s CareerState) Clone() CareerState {
	c := s
	c.Tournaments = slices.Clone(s.Tournaments)
	if s.Active != nil {
		c.Active = s.Active.clone()
	}
	return c
}

func (s CareerState) HasTournament(name string) bool {
	return slices.Contains(s.Tournaments, name)
}
