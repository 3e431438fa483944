package domain

// RecordStat is the best value a metric ever reached and how many times it was reached.
type RecordStat struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

type HistoricalRecords struct {
	LongestWinStreak        RecordStat `json:"longestWinStreak"`
	LongestUndefeatedStreak RecordStat `json:"longestUndefeatedStreak"`
	LongestDrawStreak       RecordStat `json:"longestDrawStreak"`
	LongestLossStreak       RecordStat `json:"longestLossStreak"`
	LongestWinlessStreak    RecordStat `json:"longestWinlessStreak"`
	LongestGoalStreak       RecordStat `json:"longestGoalStreak"`
	LongestAssistStreak     RecordStat `json:"longestAssistStreak"`
	LongestGoalDrought      RecordStat `json:"longestGoalDrought"`
	LongestAssistDrought    RecordStat `json:"longestAssistDrought"`
	BestGoalPerformance     RecordStat `json:"bestGoalPerformance"`
	BestAssistPerformance   RecordStat `json:"bestAssistPerformance"`
}

type MoraleLevel string

const (
	MoraleModeGod   MoraleLevel = "MODE_GOD"
	MoraleStellar   MoraleLevel = "STELLAR"
	MoraleInspired  MoraleLevel = "INSPIRED"
	MoraleConfident MoraleLevel = "CONFIDENT"
	MoraleSolid     MoraleLevel = "SOLID"
	MoraleAverage   MoraleLevel = "AVERAGE"
	MoraleShaky     MoraleLevel = "SHAKY"
	MoraleBlocked   MoraleLevel = "BLOCKED"
	MoraleFreefall  MoraleLevel = "FREEFALL"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendSame Trend = "same"
	TrendNew  Trend = "new"
)

type PlayerMorale struct {
	Level       MoraleLevel `json:"level"`
	Score       int         `json:"score"`
	Trend       Trend       `json:"trend"`
	TrendStreak int         `json:"trendStreak"`
}

type SeasonRating struct {
	TierName    string  `json:"tierName"`
	Description string  `json:"description"`
	Score       int     `json:"score"`
	Efficiency  float64 `json:"efficiency"`
}

type TeamStanding struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	IsPlayer       bool   `json:"isPlayer"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	Points         int    `json:"points"`
	GoalDifference int    `json:"goalDifference"`
}

type TournamentStats struct {
	Tournament string `json:"tournament"`
	Played     int    `json:"played"`
	Wins       int    `json:"wins"`
	Draws      int    `json:"draws"`
	Losses     int    `json:"losses"`
	Goals      int    `json:"goals"`
	Assists    int    `json:"assists"`
	Points     int    `json:"points"`
}
