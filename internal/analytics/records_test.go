package analytics

import (
	"career-tracker/internal/domain"
	"slices"
	"testing"
	"time"
)

var day0 = domain.NewDate(2024, time.January, 1)

func match(day int, res domain.Result, goals, assists int) domain.MatchRecord {
	return domain.MatchRecord{
		Date:      day0.AddDays(day),
		Result:    res,
		MyGoals:   goals,
		MyAssists: assists,
		MatchMode: domain.ModeRegular,
	}
}

func results(start int, rs ...domain.Result) []domain.MatchRecord {
	out := make([]domain.MatchRecord, len(rs))
	for i, r := range rs {
		out[i] = match(start+i, r, 0, 0)
	}
	return out
}

const (
	W = domain.ResultWin
	D = domain.ResultDraw
	L = domain.ResultLoss
)

func TestComputeRecordsEmpty(t *testing.T) {
	if got := ComputeRecords(nil); got != (domain.HistoricalRecords{}) {
		t.Errorf("expected zero records, got %+v", got)
	}
}

func TestComputeRecordsWinStreak(t *testing.T) {
	for n := 1; n <= 6; n++ {
		matches := results(0, slices.Repeat([]domain.Result{W}, n)...)
		matches = append(matches, match(n, L, 0, 0))

		rec := ComputeRecords(matches)
		if rec.LongestWinStreak != (domain.RecordStat{Value: n, Count: 1}) {
			t.Errorf("n=%d: win streak = %+v", n, rec.LongestWinStreak)
		}
	}
}

func TestComputeRecordsTiedStreaks(t *testing.T) {
	matches := results(0, W, W, W, L, D, W, W, W, L)

	rec := ComputeRecords(matches)
	if rec.LongestWinStreak != (domain.RecordStat{Value: 3, Count: 2}) {
		t.Errorf("win streak = %+v, want {3 2}", rec.LongestWinStreak)
	}

	// a longer streak later resets the tie count
	matches = append(matches, results(20, W, W, W, W)...)
	rec = ComputeRecords(matches)
	if rec.LongestWinStreak != (domain.RecordStat{Value: 4, Count: 1}) {
		t.Errorf("win streak = %+v, want {4 1}", rec.LongestWinStreak)
	}
}

func TestComputeRecordsAllMetrics(t *testing.T) {
	matches := []domain.MatchRecord{
		match(0, W, 1, 0),
		match(1, D, 0, 1),
		match(2, W, 2, 1),
		match(3, L, 0, 0),
		match(4, L, 0, 0),
		match(5, W, 1, 0),
	}

	want := domain.HistoricalRecords{
		LongestWinStreak:        domain.RecordStat{Value: 1, Count: 3},
		LongestUndefeatedStreak: domain.RecordStat{Value: 3, Count: 1},
		LongestDrawStreak:       domain.RecordStat{Value: 1, Count: 1},
		LongestLossStreak:       domain.RecordStat{Value: 2, Count: 1},
		LongestWinlessStreak:    domain.RecordStat{Value: 2, Count: 1},
		LongestGoalStreak:       domain.RecordStat{Value: 1, Count: 3},
		LongestAssistStreak:     domain.RecordStat{Value: 2, Count: 1},
		LongestGoalDrought:      domain.RecordStat{Value: 2, Count: 1},
		LongestAssistDrought:    domain.RecordStat{Value: 3, Count: 1},
		BestGoalPerformance:     domain.RecordStat{Value: 2, Count: 1},
		BestAssistPerformance:   domain.RecordStat{Value: 1, Count: 2},
	}

	if got := ComputeRecords(matches); got != want {
		t.Errorf("records mismatch\n got: %+v\nwant: %+v", got, want)
	}

	// input order across distinct dates must not matter
	reversed := slices.Clone(matches)
	slices.Reverse(reversed)
	if got := ComputeRecords(reversed); got != want {
		t.Errorf("reversed input changed records: %+v", got)
	}
}

func TestComputeRecordsBestPerformanceCount(t *testing.T) {
	matches := []domain.MatchRecord{
		match(0, W, 3, 0),
		match(1, W, 1, 2),
		match(2, D, 3, 2),
		match(3, L, 0, 1),
		match(4, W, 3, 0),
	}

	rec := ComputeRecords(matches)
	if rec.BestGoalPerformance != (domain.RecordStat{Value: 3, Count: 3}) {
		t.Errorf("best goals = %+v", rec.BestGoalPerformance)
	}
	if rec.BestAssistPerformance != (domain.RecordStat{Value: 2, Count: 2}) {
		t.Errorf("best assists = %+v", rec.BestAssistPerformance)
	}
}

func TestComputeRecordsSameDayKeepsInputOrder(t *testing.T) {
	lossThenWin := []domain.MatchRecord{match(0, L, 0, 0), match(0, W, 0, 0), match(1, W, 0, 0)}
	winThenLoss := []domain.MatchRecord{match(0, W, 0, 0), match(0, L, 0, 0), match(1, W, 0, 0)}

	if got := ComputeRecords(lossThenWin).LongestWinStreak; got != (domain.RecordStat{Value: 2, Count: 1}) {
		t.Errorf("L,W | W: win streak = %+v", got)
	}
	if got := ComputeRecords(winThenLoss).LongestWinStreak; got != (domain.RecordStat{Value: 1, Count: 2}) {
		t.Errorf("W,L | W: win streak = %+v", got)
	}
}

func TestComputeRecordsDoesNotMutateInput(t *testing.T) {
	matches := []domain.MatchRecord{match(5, W, 1, 0), match(1, L, 0, 0), match(3, D, 0, 0)}
	before := slices.Clone(matches)

	ComputeRecords(matches)
	ComputeMorale(matches)
	ComputeSeasonRating(matches)

	for i := range matches {
		if matches[i].Date.Compare(before[i].Date) != 0 || matches[i].Result != before[i].Result {
			t.Fatalf("input reordered at %d", i)
		}
	}
}
