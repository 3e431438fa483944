package campaign

import (
	"career-tracker/internal/domain"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeConfederations map[string]domain.Confederation

func (f fakeConfederations) Get(key string) (domain.Confederation, bool) {
	c, ok := f[key]
	return c, ok
}

var confs = fakeConfederations{
	"mini": {
		ID:              "mini",
		Name:            "Mini",
		DirectSlots:     1,
		PlayoffSlots:    0,
		TotalMatches:    3,
		PointMultiplier: 10,
		Simulation:      domain.SimulationLeague,
		Teams:           []string{"North", "South", "East", "West"},
	},
	"grouped": {
		ID:              "grouped",
		Name:            "Grouped",
		DirectSlots:     1,
		PlayoffSlots:    1,
		TotalMatches:    4,
		PointMultiplier: 8,
		Simulation:      domain.SimulationGroups,
		GroupSize:       3,
		Teams:           []string{"A", "B", "C", "D", "E", "F"},
	},
}

var start = domain.NewDate(2024, time.June, 1)

type harness struct {
	t      *testing.T
	engine *Engine
	state  domain.CareerState
	n      int
}

func newHarness(t *testing.T) *harness {
	return &harness{
		t:      t,
		engine: NewEngine(confs, zerolog.Nop()),
		state:  domain.CareerState{PlayerID: "p1", PlayerName: "Me"},
	}
}

func (h *harness) apply(ev Event) Outcome {
	h.t.Helper()
	out, err := h.engine.Apply(h.state, ev)
	if err != nil {
		h.t.Fatalf("Apply(%T): %v", ev, err)
	}
	h.state = out.State
	return out
}

func (h *harness) newMatch(res domain.Result, gd int) domain.MatchRecord {
	h.n++
	return domain.MatchRecord{
		ID:             fmt.Sprintf("m%d", h.n),
		PlayerID:       h.state.PlayerID,
		Date:           start.AddDays(h.n),
		Result:         res,
		GoalDifference: &gd,
	}
}

func (h *harness) play(res domain.Result, gd int) Outcome {
	h.t.Helper()
	return h.apply(SubmitMatch{Match: h.newMatch(res, gd)})
}

func TestWorldCupGroupElimination(t *testing.T) {
	h := newHarness(t)
	h.apply(StartWorldCup{Date: start})

	h.play(domain.ResultWin, 2)
	out := h.play(domain.ResultLoss, -1)
	if h.state.Active == nil || out.Transition != TransitionMatch {
		t.Fatalf("campaign should still be in the group after 2 matches, got %s", out.Transition)
	}

	out = h.play(domain.ResultDraw, 0)
	if out.Transition != TransitionEliminated {
		t.Fatalf("transition = %s, want eliminated", out.Transition)
	}
	if h.state.Active != nil {
		t.Error("active progress should be cleared")
	}
	if out.History == nil {
		t.Fatal("expected a history entry")
	}
	if out.History.Status != domain.HistoryEliminated || out.History.FinalStage != domain.FinalStageEliminatedGroup {
		t.Errorf("history = %+v", *out.History)
	}
	if out.History.Record != (domain.Record{Wins: 1, Draws: 1, Losses: 1}) || out.History.Points != 4 {
		t.Errorf("history record = %+v points=%d", out.History.Record, out.History.Points)
	}
	if out.History.StartDate.Compare(start) != 0 || out.History.EndDate.Compare(start.AddDays(3)) != 0 {
		t.Errorf("history dates %s..%s", out.History.StartDate, out.History.EndDate)
	}
}

func TestWorldCupGroupPromotion(t *testing.T) {
	tests := []struct {
		name    string
		results []domain.Result
	}{
		{"two wins", []domain.Result{domain.ResultWin, domain.ResultWin}},
		{"threshold on the last match", []domain.Result{domain.ResultWin, domain.ResultDraw, domain.ResultDraw}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.apply(StartWorldCup{Date: start})

			var out Outcome
			for _, r := range tt.results {
				out = h.play(r, 1)
			}

			if out.Transition != TransitionPromoted {
				t.Fatalf("transition = %s, want promoted", out.Transition)
			}
			wc, ok := h.state.Active.(*domain.WorldCupProgress)
			if !ok {
				t.Fatalf("active = %T", h.state.Active)
			}
			if wc.CurrentStage != domain.StageRoundOf16 {
				t.Errorf("stage = %s", wc.CurrentStage)
			}
			if len(out.Milestones) != 1 || out.Milestones[0].Kind != MilestoneGroupCleared {
				t.Errorf("milestones = %+v", out.Milestones)
			}
			if out.History != nil {
				t.Error("promotion must not archive the campaign")
			}
		})
	}
}

func TestWorldCupFriendlyRewards(t *testing.T) {
	h := newHarness(t)
	h.apply(StartWorldCup{Date: start})

	out := h.play(domain.ResultWin, 1)
	if *out.Match.EarnedPoints != 3*FriendlyMatchFactor || out.Match.Tournament != WorldCupLabel {
		t.Errorf("match = %+v", *out.Match)
	}
	if out.Match.MatchMode != domain.ModeWorldCup {
		t.Errorf("mode = %s", out.Match.MatchMode)
	}
	if out.NewTournament != WorldCupLabel {
		t.Errorf("new tournament = %q", out.NewTournament)
	}

	out = h.play(domain.ResultWin, 1)
	if out.NewTournament != "" {
		t.Error("tournament should only be created once")
	}
	want := 2*3*FriendlyMatchFactor + GroupStageBonus
	if h.state.CareerPoints != want {
		t.Errorf("career points = %d, want %d", h.state.CareerPoints, want)
	}
}

func TestWorldCupChampion(t *testing.T) {
	h := newHarness(t)
	h.state.WorldCupAttempts = 1

	h.apply(StartWorldCup{UseQualification: true, Date: start})
	if h.state.WorldCupAttempts != 0 {
		t.Fatalf("attempts = %d, want 0", h.state.WorldCupAttempts)
	}

	h.play(domain.ResultWin, 1)
	h.play(domain.ResultWin, 1)

	advanced := 0
	var out Outcome
	for i := 0; i < 4; i++ {
		out = h.play(domain.ResultWin, 1)
		if out.Transition == TransitionAdvanced {
			advanced++
		}
	}

	if advanced != 3 {
		t.Errorf("advanced %d times, want 3", advanced)
	}
	if out.Transition != TransitionChampion {
		t.Fatalf("final transition = %s", out.Transition)
	}
	wc := out.Campaign.(*domain.WorldCupProgress)
	if !wc.ChampionOfCampaign {
		t.Error("champion flag not set")
	}
	if wc.CurrentStage != domain.StageFinal {
		t.Errorf("stage moved past the final: %s", wc.CurrentStage)
	}
	wantStages := []domain.Stage{domain.StageGroup, domain.StageRoundOf16, domain.StageQuarterFinals, domain.StageSemiFinals, domain.StageFinal}
	if fmt.Sprint(wc.CompletedStages) != fmt.Sprint(wantStages) {
		t.Errorf("completed stages = %v", wc.CompletedStages)
	}
	for _, stage := range wantStages[1:] {
		if len(wc.MatchesByStage[stage]) != 1 {
			t.Errorf("stage %s has %d matches", stage, len(wc.MatchesByStage[stage]))
		}
	}

	if h.state.Active != nil {
		t.Error("champion campaign should be archived")
	}
	if out.History == nil || out.History.Status != domain.HistoryChampion || out.History.Record.Wins != 6 {
		t.Errorf("history = %+v", out.History)
	}
	if len(out.Milestones) != 1 || out.Milestones[0].Kind != MilestoneChampion {
		t.Errorf("milestones = %+v", out.Milestones)
	}
	if *out.Match.EarnedPoints <= 20 || out.Match.Tournament != EliteWorldCupLabel {
		t.Errorf("qualified match should be elite: %+v", *out.Match)
	}

	m := QualifiedRewardMultiplier
	want := 6*3*QualifiedMatchFactor + m*(GroupStageBonus+200+300+400+ChampionBonus)
	if h.state.CareerPoints != want {
		t.Errorf("career points = %d, want %d", h.state.CareerPoints, want)
	}

	if _, err := h.engine.Apply(h.state, SubmitMatch{Match: h.newMatch(domain.ResultWin, 1)}); !errors.Is(err, ErrNoActiveCampaign) {
		t.Errorf("submitting after the final: err = %v", err)
	}
}

func TestWorldCupKnockoutLoss(t *testing.T) {
	h := newHarness(t)
	h.apply(StartWorldCup{Date: start})
	h.play(domain.ResultWin, 1)
	h.play(domain.ResultWin, 1)
	h.play(domain.ResultWin, 1) // round of 16

	out := h.play(domain.ResultLoss, -2)
	if out.Transition != TransitionEliminated {
		t.Fatalf("transition = %s", out.Transition)
	}
	if out.History.FinalStage != string(domain.StageQuarterFinals) || out.History.Status != domain.HistoryEliminated {
		t.Errorf("history = %+v", *out.History)
	}
	if out.History.Record != (domain.Record{Wins: 3, Losses: 1}) || out.History.GoalDifference != 1 {
		t.Errorf("history record = %+v gd=%d", out.History.Record, out.History.GoalDifference)
	}
	wc := out.Campaign.(*domain.WorldCupProgress)
	if len(wc.MatchesByStage[domain.StageQuarterFinals]) != 1 {
		t.Error("losing match should be recorded under its stage")
	}
}

func TestWorldCupKnockoutDrawRejected(t *testing.T) {
	h := newHarness(t)
	h.apply(StartWorldCup{Date: start})
	h.play(domain.ResultWin, 1)
	h.play(domain.ResultWin, 1)

	before := h.state.CareerPoints
	_, err := h.engine.Apply(h.state, SubmitMatch{Match: h.newMatch(domain.ResultDraw, 0)})
	if !errors.Is(err, ErrKnockoutDraw) {
		t.Fatalf("err = %v, want ErrKnockoutDraw", err)
	}
	wc := h.state.Active.(*domain.WorldCupProgress)
	if len(wc.MatchesByStage[domain.StageRoundOf16]) != 0 || h.state.CareerPoints != before {
		t.Error("rejected match must not change state")
	}
}

func TestQualifiersAccumulates(t *testing.T) {
	h := newHarness(t)
	out := h.apply(StartQualifiers{Confederation: "mini", Date: start})
	if out.Campaign.Number() != 1 || h.state.QualifiersCampaigns != 1 {
		t.Fatalf("campaign number = %d", out.Campaign.Number())
	}

	out = h.play(domain.ResultWin, 2)
	if *out.Match.EarnedPoints != 30 || out.Match.Tournament != "Mini Qualifiers" || out.Match.MatchMode != domain.ModeQualifiers {
		t.Errorf("match = %+v", *out.Match)
	}
	if out.NewTournament != "Mini Qualifiers" {
		t.Errorf("new tournament = %q", out.NewTournament)
	}

	h.play(domain.ResultDraw, 0)
	q := h.state.Active.(*domain.QualifiersProgress)
	if q.MatchesPlayed != 2 || q.Points != 4 || q.GoalDifference != 2 || q.Record != (domain.Record{Wins: 1, Draws: 1}) {
		t.Errorf("progress = %+v", q)
	}
	if len(q.CompletedMatches) != 2 {
		t.Errorf("completed matches = %d", len(q.CompletedMatches))
	}
	if h.state.CareerPoints != 40 {
		t.Errorf("career points = %d, want 40", h.state.CareerPoints)
	}
}

func TestQualifiersDirectQualification(t *testing.T) {
	h := newHarness(t)
	h.apply(StartQualifiers{Confederation: "mini", Date: start})

	h.play(domain.ResultWin, 3)
	h.play(domain.ResultWin, 3)
	out := h.play(domain.ResultWin, 3)

	if out.Transition != TransitionCompleted {
		t.Fatalf("transition = %s", out.Transition)
	}
	if h.state.Active != nil {
		t.Error("completed campaign should be cleared")
	}
	if out.History.Status != domain.HistoryCompleted || out.History.FinalStage != domain.FinalStageQualified || out.History.FinalPosition != 1 {
		t.Errorf("history = %+v", *out.History)
	}
	if h.state.WorldCupAttempts != WorldCupAttemptsReward {
		t.Errorf("attempts = %d", h.state.WorldCupAttempts)
	}
	if h.state.CareerPoints != 90+QualificationBonus {
		t.Errorf("career points = %d", h.state.CareerPoints)
	}
	if out.PointsAwarded != 30+QualificationBonus {
		t.Errorf("points awarded = %d", out.PointsAwarded)
	}
	if len(out.Milestones) != 1 || out.Milestones[0].Kind != MilestoneQualified || out.Milestones[0].PlayerName != "Me" {
		t.Errorf("milestones = %+v", out.Milestones)
	}
	if len(out.Standings) != 5 || !out.Standings[0].IsPlayer {
		t.Errorf("standings = %+v", out.Standings)
	}
	if q := out.Campaign.(*domain.QualifiersProgress); q.Status != domain.QualifiersCompleted {
		t.Errorf("status = %s", q.Status)
	}
}

func TestQualifiersNotQualified(t *testing.T) {
	h := newHarness(t)
	h.apply(StartQualifiers{Confederation: "mini", Date: start})

	h.play(domain.ResultLoss, -3)
	h.play(domain.ResultLoss, -3)
	out := h.play(domain.ResultLoss, -3)

	if out.History.FinalStage != domain.FinalStageNotQualified || out.History.FinalPosition != 5 {
		t.Errorf("history = %+v", *out.History)
	}
	if h.state.WorldCupAttempts != 0 || h.state.CareerPoints != 0 || len(out.Milestones) != 0 {
		t.Errorf("no reward expected: %+v", h.state)
	}
}

func TestQualifiersGroupDraw(t *testing.T) {
	h := newHarness(t)
	out := h.apply(StartQualifiers{Confederation: "grouped", Date: start})

	q := out.Campaign.(*domain.QualifiersProgress)
	if len(q.Group) != 2 {
		t.Errorf("group = %v", q.Group)
	}

	for i := 0; i < 4; i++ {
		out = h.play(domain.ResultWin, 1)
	}
	if len(out.Standings) != 3 {
		t.Errorf("group standings should have 3 rows, got %d", len(out.Standings))
	}
}

func TestAbandonQualifiers(t *testing.T) {
	for played := 0; played < 3; played++ {
		t.Run(fmt.Sprintf("after %d matches", played), func(t *testing.T) {
			h := newHarness(t)
			h.apply(StartQualifiers{Confederation: "mini", Date: start})
			for i := 0; i < played; i++ {
				h.play(domain.ResultWin, 1)
			}
			points := h.state.CareerPoints

			out := h.apply(Abandon{Date: start.AddDays(30)})
			if out.History == nil || out.History.Status != domain.HistoryAbandoned {
				t.Fatalf("history = %+v", out.History)
			}
			if out.History.Record.Wins != played {
				t.Errorf("partial record = %+v", out.History.Record)
			}
			if h.state.Active != nil {
				t.Error("qualifiers progress should be cleared")
			}
			if h.state.CareerPoints != points {
				t.Error("abandon must not change career points")
			}
			if out.Match != nil || len(out.Milestones) != 0 {
				t.Error("abandon produces no match and no milestone")
			}
		})
	}
}

func TestAbandonWorldCupKeepsBonuses(t *testing.T) {
	h := newHarness(t)
	h.apply(StartWorldCup{Date: start})
	h.play(domain.ResultWin, 1)
	h.play(domain.ResultWin, 1)
	points := h.state.CareerPoints

	out := h.apply(Abandon{Date: start.AddDays(10)})
	if out.History.FinalStage != string(domain.StageRoundOf16) || out.History.Status != domain.HistoryAbandoned {
		t.Errorf("history = %+v", *out.History)
	}
	if h.state.CareerPoints != points {
		t.Errorf("career points changed from %d to %d", points, h.state.CareerPoints)
	}
}

func TestInvariantViolations(t *testing.T) {
	engine := NewEngine(confs, zerolog.Nop())
	idle := domain.CareerState{PlayerID: "p1", PlayerName: "Me"}
	busy := domain.CareerState{PlayerID: "p1", Active: &domain.WorldCupProgress{CampaignNumber: 1, CurrentStage: domain.StageGroup}}
	done := domain.CareerState{PlayerID: "p1", Active: &domain.QualifiersProgress{CampaignNumber: 1, Confederation: "mini", Status: domain.QualifiersCompleted}}
	champ := domain.CareerState{PlayerID: "p1", Active: &domain.WorldCupProgress{CampaignNumber: 1, CurrentStage: domain.StageFinal, ChampionOfCampaign: true}}

	valid := domain.MatchRecord{ID: "x", Date: start, Result: domain.ResultWin}
	regular := valid
	regular.MatchMode = domain.ModeRegular
	badResult := valid
	badResult.Result = "TIE"

	tests := []struct {
		name  string
		state domain.CareerState
		event Event
		want  error
	}{
		{"submit without campaign", idle, SubmitMatch{Match: valid}, ErrNoActiveCampaign},
		{"abandon without campaign", idle, Abandon{Date: start}, ErrNoActiveCampaign},
		{"start twice", busy, StartQualifiers{Confederation: "mini", Date: start}, ErrCampaignActive},
		{"start world cup while active", busy, StartWorldCup{Date: start}, ErrCampaignActive},
		{"no attempts", idle, StartWorldCup{UseQualification: true, Date: start}, ErrNoWorldCupAttempts},
		{"unknown confederation", idle, StartQualifiers{Confederation: "mars", Date: start}, ErrUnknownConfederation},
		{"mode mismatch", busy, SubmitMatch{Match: regular}, ErrModeMismatch},
		{"completed qualifiers", done, SubmitMatch{Match: valid}, ErrCampaignFinished},
		{"champion already", champ, SubmitMatch{Match: valid}, ErrCampaignFinished},
		{"bad result", busy, SubmitMatch{Match: badResult}, ErrInvalidEvent},
		{"missing date", idle, StartWorldCup{}, ErrInvalidEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Apply(tt.state, tt.event)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	engine := NewEngine(confs, zerolog.Nop())
	state := domain.CareerState{PlayerID: "p1", PlayerName: "Me"}

	out, err := engine.Apply(state, StartQualifiers{Confederation: "mini", Date: start})
	if err != nil {
		t.Fatal(err)
	}
	if state.Active != nil || state.QualifiersCampaigns != 0 {
		t.Fatal("start mutated the input state")
	}

	started := out.State
	gd := 1
	_, err = engine.Apply(started, SubmitMatch{Match: domain.MatchRecord{ID: "a", Date: start, Result: domain.ResultWin, GoalDifference: &gd}})
	if err != nil {
		t.Fatal(err)
	}
	q := started.Active.(*domain.QualifiersProgress)
	if q.MatchesPlayed != 0 || len(q.CompletedMatches) != 0 || started.CareerPoints != 0 || len(started.Tournaments) != 0 {
		t.Errorf("submit mutated the input state: %+v", q)
	}
}
