package domain

import "testing"

func TestQualifiersResync(t *testing.T) {
	gd := func(v int) *int { return &v }
	q := QualifiersProgress{
		MatchesPlayed:  3,
		Points:         0,
		GoalDifference: -6,
		Record:         Record{Losses: 3},
	}
	q.Resync([]MatchRecord{
		{ID: "a", Result: ResultWin, GoalDifference: gd(2)},
		{ID: "b", Result: ResultDraw},
	})

	if q.MatchesPlayed != 3 {
		t.Errorf("matches played = %d, want 3", q.MatchesPlayed)
	}
	if q.Points != 4 || q.GoalDifference != 2 {
		t.Errorf("points %d gd %d, want 4 and 2", q.Points, q.GoalDifference)
	}
	if q.Record != (Record{Wins: 1, Draws: 1}) || len(q.CompletedMatches) != 2 {
		t.Errorf("after resync = %+v", q)
	}
}
