package domain

import (
	"time"
)

type Result string

const (
	ResultWin  Result = "WIN"
	ResultDraw Result = "DRAW"
	ResultLoss Result = "LOSS"
)

func (r Result) Valid() bool {
	return r == ResultWin || r == ResultDraw || r == ResultLoss
}

// BasePoints is the league value of a result: 3 for a win, 1 for a draw.
func (r Result) BasePoints() int {
	switch r {
	case ResultWin:
		return 3
	case ResultDraw:
		return 1
	default:
		return 0
	}
}

type MatchMode string

const (
	ModeRegular    MatchMode = "regular"
	ModeWorldCup   MatchMode = "world_cup"
	ModeQualifiers MatchMode = "qualifiers"
)

func (m MatchMode) Valid() bool {
	return m == ModeRegular || m == ModeWorldCup || m == ModeQualifiers
}

type MatchRecord struct {
	ID             string    `json:"id"`
	PlayerID       string    `json:"playerId"`
	Date           Date      `json:"date"`
	Result         Result    `json:"result"`
	MyGoals        int       `json:"myGoals"`
	MyAssists      int       `json:"myAssists"`
	GoalDifference *int      `json:"goalDifference,omitempty"`
	Tournament     string    `json:"tournament,omitempty"`
	MatchMode      MatchMode `json:"matchMode"`
	EarnedPoints   *int      `json:"earnedPoints,omitempty"`
	Lineup         []string  `json:"lineup,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GD returns the goal difference, treating an unknown one as level.
func (m MatchRecord) GD() int {
	if m.GoalDifference == nil {
		return 0
	}
	return *m.GoalDifference
}

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Record struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

func (r *Record) Add(res Result) {
	switch res {
	case ResultWin:
		r.Wins++
	case ResultDraw:
		r.Draws++
	case ResultLoss:
		r.Losses++
	}
}

func (r Record) Played() int { return r.Wins + r.Draws + r.Losses }

type Confederation struct {
	ID              string     `yaml:"id" json:"id"`
	Name            string     `yaml:"name" json:"name"`
	DirectSlots     int        `yaml:"direct_slots" json:"directSlots"`
	PlayoffSlots    int        `yaml:"playoff_slots" json:"playoffSlots"`
	TotalMatches    int        `yaml:"total_matches" json:"totalMatches"`
	PointMultiplier int        `yaml:"point_multiplier" json:"pointMultiplier"`
	Simulation      Simulation `yaml:"simulation" json:"simulation"`
	GroupSize       int        `yaml:"group_size" json:"groupSize,omitempty"`
	Teams           []string   `yaml:"teams" json:"teams"`
}

type Simulation string

const (
	SimulationLeague Simulation = "league"
	SimulationGroups Simulation = "groups"
)
