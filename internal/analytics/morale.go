package analytics

import (
	"career-tracker/internal/domain"
	"math"
)

const (
	moraleWindowSize = 5
	moraleMinMatches = 3
	moraleBase       = 50.0
)

var moraleLevels = []struct {
	min   float64
	level domain.MoraleLevel
}{
	{90, domain.MoraleModeGod},
	{80, domain.MoraleStellar},
	{70, domain.MoraleInspired},
	{60, domain.MoraleConfident},
	{50, domain.MoraleSolid},
	{40, domain.MoraleAverage},
	{30, domain.MoraleShaky},
	{20, domain.MoraleBlocked},
}

// ComputeMorale returns nil when there are fewer than three matches.
func ComputeMorale(matches []domain.MatchRecord) *domain.PlayerMorale {
	if len(matches) < moraleMinMatches {
		return nil
	}

	recent := mostRecentFirst(matches)
	current := windowScore(window(recent, 0))
	score := int(math.Round(current))

	morale := &domain.PlayerMorale{
		Level:       MoraleLevelFor(float64(score)),
		Score:       score,
		Trend:       domain.TrendNew,
		TrendStreak: 0,
	}
	if len(recent) < 2 {
		return morale
	}

	morale.Trend = direction(current, windowScore(window(recent, 1)))
	morale.TrendStreak = 1
	for i := 1; ; i++ {
		next := window(recent, i+1)
		if len(next) == 0 {
			break
		}
		if direction(windowScore(window(recent, i)), windowScore(next)) != morale.Trend {
			break
		}
		morale.TrendStreak++
	}

	return morale
}

func window(recent []domain.MatchRecord, offset int) []domain.MatchRecord {
	if offset >= len(recent) {
		return nil
	}
	end := min(offset+moraleWindowSize, len(recent))
	return recent[offset:end]
}

func windowScore(w []domain.MatchRecord) float64 {
	score := moraleBase
	for i, m := range w {
		weight := float64((moraleWindowSize - i) * 2)
		switch m.Result {
		case domain.ResultWin:
			score += weight * 2
		case domain.ResultDraw:
			score += weight
		case domain.ResultLoss:
			score -= weight * 1.5
		}
		score += float64(m.MyGoals*2 + m.MyAssists)
	}
	return math.Max(0, math.Min(100, score))
}

func direction(current, previous float64) domain.Trend {
	switch {
	case current > previous:
		return domain.TrendUp
	case current < previous:
		return domain.TrendDown
	default:
		return domain.TrendSame
	}
}

func MoraleLevelFor(score float64) domain.MoraleLevel {
	for _, l := range moraleLevels {
		if score >= l.min {
			return l.level
		}
	}
	return domain.MoraleFreefall
}
