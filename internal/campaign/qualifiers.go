package campaign

import (
	"career-tracker/internal/analytics"
	"career-tracker/internal/domain"
	"fmt"
)

func QualifiersLabel(conf domain.Confederation) string {
	return conf.Name + " Qualifiers"
}

func (e *Engine) startQualifiers(state *domain.CareerState, ev StartQualifiers, out *Outcome) error {
	if state.Active != nil {
		return fmt.Errorf("%w: %s campaign #%d", ErrCampaignActive, state.Active.Mode(), state.Active.Number())
	}
	if ev.Date.IsZero() {
		return fmt.Errorf("%w: start needs a date", ErrInvalidEvent)
	}
	conf, ok := e.confederations.Get(ev.Confederation)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownConfederation, ev.Confederation)
	}

	state.QualifiersCampaigns++
	progress := &domain.QualifiersProgress{
		CampaignNumber:   state.QualifiersCampaigns,
		Confederation:    conf.ID,
		StartDate:        ev.Date,
		CompletedMatches: []domain.MatchRecord{},
		Group:            analytics.DrawGroup(conf, state.QualifiersCampaigns),
		Status:           domain.QualifiersActive,
	}
	state.Active = progress

	out.Campaign = progress
	out.Transition = TransitionStarted
	return nil
}

func (e *Engine) submitQualifiers(state *domain.CareerState, q *domain.QualifiersProgress, m domain.MatchRecord, out *Outcome) error {
	if q.Status != domain.QualifiersActive {
		return ErrCampaignFinished
	}
	conf, ok := e.confederations.Get(q.Confederation)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownConfederation, q.Confederation)
	}
	if q.MatchesPlayed >= conf.TotalMatches {
		return ErrCampaignFinished
	}

	base := m.Result.BasePoints()
	earned := base * conf.PointMultiplier

	m.MatchMode = domain.ModeQualifiers
	m.Tournament = QualifiersLabel(conf)
	m.EarnedPoints = intPtr(earned)

	q.MatchesPlayed++
	q.GoalDifference += m.GD()
	q.Points += base
	q.Record.Add(m.Result)
	q.CompletedMatches = append(q.CompletedMatches, m)

	state.CareerPoints += earned
	tag(state, m.Tournament, out)

	out.Match = &m
	out.PointsAwarded = earned
	out.Campaign = q
	out.Transition = TransitionMatch

	if q.MatchesPlayed < conf.TotalMatches {
		return nil
	}

	q.Status = domain.QualifiersCompleted
	table := analytics.ComputeStandings(*q, conf, state.PlayerName, q.CompletedMatches)
	pos := analytics.PlayerPosition(table)

	entry := qualifiersEntry(state, q, domain.HistoryCompleted, m.Date)
	entry.FinalPosition = pos
	switch {
	case pos <= conf.DirectSlots:
		entry.FinalStage = domain.FinalStageQualified
		state.CareerPoints += QualificationBonus
		state.WorldCupAttempts += WorldCupAttemptsReward
		out.PointsAwarded += QualificationBonus
		out.Milestones = append(out.Milestones, milestone(state, q, MilestoneQualified,
			fmt.Sprintf("finished #%d in %s", pos, conf.Name)))
	case pos <= conf.DirectSlots+conf.PlayoffSlots:
		entry.FinalStage = domain.FinalStagePlayoff
	default:
		entry.FinalStage = domain.FinalStageNotQualified
	}

	out.Standings = table
	out.History = &entry
	out.Transition = TransitionCompleted
	state.Active = nil
	return nil
}

func position(q *domain.QualifiersProgress, conf domain.Confederation, playerName string) int {
	return analytics.PlayerPosition(analytics.ComputeStandings(*q, conf, playerName, q.CompletedMatches))
}

func qualifiersEntry(state *domain.CareerState, q *domain.QualifiersProgress, status domain.HistoryStatus, end domain.Date) domain.CampaignHistoryEntry {
	return domain.CampaignHistoryEntry{
		PlayerID:       state.PlayerID,
		Mode:           domain.CampaignQualifiers,
		CampaignNumber: q.CampaignNumber,
		Status:         status,
		Confederation:  q.Confederation,
		StartDate:      q.StartDate,
		EndDate:        end,
		Record:         q.Record,
		Points:         q.Points,
		GoalDifference: q.GoalDifference,
	}
}
