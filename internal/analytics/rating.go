package analytics

import (
	"career-tracker/internal/domain"
	"math"
	"strings"
)

// EliteMarker in a tournament label flags a World Cup match as elite.
const EliteMarker = "elite"

// eliteEarnedPoints: a World Cup match that earned more than this is elite
// even without the label. Matches awarded exactly at the boundary are not.
const eliteEarnedPoints = 20

const (
	regularMultiplier       = 5
	qualifiersMultiplier    = 10
	worldCupMultiplier      = 10
	eliteWorldCupMultiplier = 30
)

type Tier struct {
	MinScore    int
	Name        string
	Description string
}

const UnrankedTier = "Unranked"

// Tiers is ordered from highest to lowest threshold.
var Tiers = []Tier{
	{2000, "Legend", "A career people will talk about for decades."},
	{1500, "World Class", "Among the very best on any pitch."},
	{1000, "Elite", "Consistently decisive at the highest level."},
	{750, "Star", "The name on everyone's team sheet."},
	{500, "Professional", "Reliable, sharp and hard to beat."},
	{350, "Semi-Pro", "Talent is showing; consistency is next."},
	{200, "Rising Talent", "Plenty of promise and a growing record."},
	{100, "Academy", "Learning the trade one match at a time."},
	{50, "Amateur", "Playing for the love of the game."},
	{math.MinInt, "Sunday League", "Every legend starts somewhere."},
}

func TierFor(score int) Tier {
	for _, t := range Tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return Tiers[len(Tiers)-1]
}

// IsEliteWorldCup reports whether a match counts at the elite World Cup rate.
// Either the label or the earned points is enough.
func IsEliteWorldCup(m domain.MatchRecord) bool {
	if m.MatchMode != domain.ModeWorldCup {
		return false
	}
	if strings.Contains(strings.ToLower(m.Tournament), EliteMarker) {
		return true
	}
	return m.EarnedPoints != nil && *m.EarnedPoints > eliteEarnedPoints
}

func modeMultiplier(m domain.MatchRecord) int {
	switch m.MatchMode {
	case domain.ModeQualifiers:
		return qualifiersMultiplier
	case domain.ModeWorldCup:
		if IsEliteWorldCup(m) {
			return eliteWorldCupMultiplier
		}
		return worldCupMultiplier
	default:
		return regularMultiplier
	}
}

func ComputeSeasonRating(matches []domain.MatchRecord) domain.SeasonRating {
	if len(matches) == 0 {
		return domain.SeasonRating{
			TierName:    UnrankedTier,
			Description: "No matches played yet.",
		}
	}

	var score float64
	var pointsWon int
	for _, m := range matches {
		base := m.Result.BasePoints()
		pointsWon += base
		score += float64(base*modeMultiplier(m) + m.MyGoals*3 + m.MyAssists*2)
	}

	efficiency := float64(pointsWon) / float64(3*len(matches)) * 100
	switch {
	case efficiency >= 55:
		score += (efficiency - 55) * 2
	case efficiency < 45:
		score += (efficiency - 45) * 2
	}

	total := int(math.Round(score))
	tier := TierFor(total)
	return domain.SeasonRating{
		TierName:    tier.Name,
		Description: tier.Description,
		Score:       total,
		Efficiency:  efficiency,
	}
}
