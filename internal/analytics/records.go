// Package analytics derives career statistics from a player's match history.
// Every function here is read-only: inputs are copied before sorting and never modified.
package analytics

import (
	"career-tracker/internal/domain"
	"slices"
)

// chronological returns a copy of matches ordered oldest first. Same-day
// matches keep their relative order.
func chronological(matches []domain.MatchRecord) []domain.MatchRecord {
	out := slices.Clone(matches)
	slices.SortStableFunc(out, func(a, b domain.MatchRecord) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// mostRecentFirst is the reverse ordering used by the morale windows.
func mostRecentFirst(matches []domain.MatchRecord) []domain.MatchRecord {
	out := slices.Clone(matches)
	slices.SortStableFunc(out, func(a, b domain.MatchRecord) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

type streak struct {
	current int
	best    *domain.RecordStat
}

func (s *streak) step(ok bool) {
	if ok {
		s.current++
	} else {
		s.current = 0
	}
	observe(s.best, s.current)
}

func observe(stat *domain.RecordStat, v int) {
	switch {
	case v > stat.Value:
		stat.Value = v
		stat.Count = 1
	case v == stat.Value && v > 0:
		stat.Count++
	}
}

func ComputeRecords(matches []domain.MatchRecord) domain.HistoricalRecords {
	var rec domain.HistoricalRecords
	if len(matches) == 0 {
		return rec
	}

	win := streak{best: &rec.LongestWinStreak}
	undefeated := streak{best: &rec.LongestUndefeatedStreak}
	draw := streak{best: &rec.LongestDrawStreak}
	loss := streak{best: &rec.LongestLossStreak}
	winless := streak{best: &rec.LongestWinlessStreak}
	goal := streak{best: &rec.LongestGoalStreak}
	assist := streak{best: &rec.LongestAssistStreak}
	goalDrought := streak{best: &rec.LongestGoalDrought}
	assistDrought := streak{best: &rec.LongestAssistDrought}

	for _, m := range chronological(matches) {
		win.step(m.Result == domain.ResultWin)
		undefeated.step(m.Result != domain.ResultLoss)
		draw.step(m.Result == domain.ResultDraw)
		loss.step(m.Result == domain.ResultLoss)
		winless.step(m.Result != domain.ResultWin)
		goal.step(m.MyGoals > 0)
		assist.step(m.MyAssists > 0)
		goalDrought.step(m.MyGoals == 0)
		assistDrought.step(m.MyAssists == 0)

		observe(&rec.BestGoalPerformance, m.MyGoals)
		observe(&rec.BestAssistPerformance, m.MyAssists)
	}

	return rec
}
