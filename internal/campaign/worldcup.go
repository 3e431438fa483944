package campaign

import (
	"career-tracker/internal/domain"
	"fmt"
)

const (
	WorldCupLabel      = "World Cup"
	EliteWorldCupLabel = "World Cup Elite"
)

func worldCupLabel(qualified bool) string {
	if qualified {
		return EliteWorldCupLabel
	}
	return WorldCupLabel
}

func (e *Engine) startWorldCup(state *domain.CareerState, ev StartWorldCup, out *Outcome) error {
	if state.Active != nil {
		return fmt.Errorf("%w: %s campaign #%d", ErrCampaignActive, state.Active.Mode(), state.Active.Number())
	}
	if ev.Date.IsZero() {
		return fmt.Errorf("%w: start needs a date", ErrInvalidEvent)
	}
	if ev.UseQualification {
		if state.WorldCupAttempts <= 0 {
			return ErrNoWorldCupAttempts
		}
		state.WorldCupAttempts--
	}

	state.WorldCupCampaigns++
	progress := &domain.WorldCupProgress{
		CampaignNumber:  state.WorldCupCampaigns,
		StartDate:       ev.Date,
		CurrentStage:    domain.StageGroup,
		CompletedStages: []domain.Stage{},
		MatchesByStage:  map[domain.Stage][]domain.MatchRecord{},
		IsQualified:     ev.UseQualification,
	}
	state.Active = progress

	out.Campaign = progress
	out.Transition = TransitionStarted
	return nil
}

func (e *Engine) submitWorldCup(state *domain.CareerState, w *domain.WorldCupProgress, m domain.MatchRecord, out *Outcome) error {
	if w.ChampionOfCampaign {
		return ErrCampaignFinished
	}
	stage := w.CurrentStage
	if stage != domain.StageGroup && m.Result == domain.ResultDraw {
		return fmt.Errorf("%w: %s", ErrKnockoutDraw, stage)
	}

	factor, multiplier := FriendlyMatchFactor, 1
	if w.IsQualified {
		factor, multiplier = QualifiedMatchFactor, QualifiedRewardMultiplier
	}

	base := m.Result.BasePoints()
	earned := base * factor

	m.MatchMode = domain.ModeWorldCup
	m.Tournament = worldCupLabel(w.IsQualified)
	m.EarnedPoints = intPtr(earned)

	if w.MatchesByStage == nil {
		w.MatchesByStage = map[domain.Stage][]domain.MatchRecord{}
	}
	w.MatchesByStage[stage] = append(w.MatchesByStage[stage], m)

	state.CareerPoints += earned
	tag(state, m.Tournament, out)

	out.Match = &m
	out.PointsAwarded = earned
	out.Campaign = w
	out.Transition = TransitionMatch

	award := func(points int) {
		state.CareerPoints += points
		out.PointsAwarded += points
	}

	if stage == domain.StageGroup {
		w.GroupStage.MatchesPlayed++
		w.GroupStage.Points += base

		switch {
		case w.GroupStage.Points >= GroupStagePromotionPoints:
			w.CompletedStages = append(w.CompletedStages, domain.StageGroup)
			w.CurrentStage = domain.StageRoundOf16
			award(GroupStageBonus * multiplier)
			out.Transition = TransitionPromoted
			out.Milestones = append(out.Milestones, milestone(state, w, MilestoneGroupCleared,
				fmt.Sprintf("%d points from %d group matches", w.GroupStage.Points, w.GroupStage.MatchesPlayed)))
		case w.GroupStage.MatchesPlayed >= GroupStageMatches:
			entry := worldCupEntry(state, w, domain.HistoryEliminated, domain.FinalStageEliminatedGroup, m.Date)
			out.History = &entry
			out.Transition = TransitionEliminated
			state.Active = nil
		}
		return nil
	}

	if m.Result != domain.ResultWin {
		entry := worldCupEntry(state, w, domain.HistoryEliminated, string(stage), m.Date)
		out.History = &entry
		out.Transition = TransitionEliminated
		state.Active = nil
		return nil
	}

	w.CompletedStages = append(w.CompletedStages, stage)
	if stage == domain.StageFinal {
		w.ChampionOfCampaign = true
		award(ChampionBonus * multiplier)
		entry := worldCupEntry(state, w, domain.HistoryChampion, string(stage), m.Date)
		out.History = &entry
		out.Transition = TransitionChampion
		out.Milestones = append(out.Milestones, milestone(state, w, MilestoneChampion, worldCupLabel(w.IsQualified)))
		state.Active = nil
		return nil
	}

	award(knockoutBonus[stage] * multiplier)
	w.CurrentStage = stage.Next()
	out.Transition = TransitionAdvanced
	return nil
}

func worldCupEntry(state *domain.CareerState, w *domain.WorldCupProgress, status domain.HistoryStatus, finalStage string, end domain.Date) domain.CampaignHistoryEntry {
	entry := domain.CampaignHistoryEntry{
		PlayerID:       state.PlayerID,
		Mode:           domain.CampaignWorldCup,
		CampaignNumber: w.CampaignNumber,
		Status:         status,
		FinalStage:     finalStage,
		StartDate:      w.StartDate,
		EndDate:        end,
	}
	for _, m := range w.AllMatches() {
		entry.Record.Add(m.Result)
		entry.Points += m.Result.BasePoints()
		entry.GoalDifference += m.GD()
	}
	return entry
}
