package analytics

import (
	"career-tracker/internal/domain"
	"cmp"
	"math"
	"slices"
)

const (
	strengthWeight = 0.7
	noiseWeight    = 0.3
	drawShare      = 0.4
	gdPerNetWin    = 1.5
)

// ComputeStandings ranks the player against simulated rivals. The player's row
// is always rebuilt from playerMatches; the counters stored on progress are
// ignored because edits and deletes can leave them out of date.
func ComputeStandings(progress domain.QualifiersProgress, conf domain.Confederation, playerName string, playerMatches []domain.MatchRecord) []domain.TeamStanding {
	player := domain.TeamStanding{Team: playerName, IsPlayer: true}
	for _, m := range playerMatches {
		player.Played++
		switch m.Result {
		case domain.ResultWin:
			player.Wins++
		case domain.ResultDraw:
			player.Draws++
		case domain.ResultLoss:
			player.Losses++
		}
		player.Points += m.Result.BasePoints()
		player.GoalDifference += m.GD()
	}

	var group map[string]bool
	if conf.Simulation == domain.SimulationGroups && len(progress.Group) > 0 {
		group = make(map[string]bool, len(progress.Group))
		for _, name := range progress.Group {
			group[name] = true
		}
	}

	rows := []domain.TeamStanding{player}
	teamCount := float64(len(conf.Teams))
	for i, team := range conf.Teams {
		if group != nil && !group[team] {
			continue
		}
		strength := 1 - float64(i)/teamCount
		performance := strength*strengthWeight + SeededFloat(progress.CampaignNumber, i)*noiseWeight
		rows = append(rows, simulateRival(team, player.Played, performance))
	}

	slices.SortStableFunc(rows, func(a, b domain.TeamStanding) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
			return c
		}
		return cmp.Compare(b.Wins, a.Wins)
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows
}

func simulateRival(team string, played int, performance float64) domain.TeamStanding {
	p := float64(played)
	wins := int(math.Round(p * performance))
	draws := int(math.Round(p * (1 - performance) * drawShare))
	losses := max(played-wins-draws, 0)

	return domain.TeamStanding{
		Team:           team,
		Played:         played,
		Wins:           wins,
		Draws:          draws,
		Losses:         losses,
		Points:         wins*3 + draws,
		GoalDifference: int(math.Round(float64(wins-losses) * gdPerNetWin)),
	}
}

// PlayerPosition returns the player's 1-based rank, or 0 if the player row is missing.
func PlayerPosition(table []domain.TeamStanding) int {
	for _, row := range table {
		if row.IsPlayer {
			return row.Position
		}
	}
	return 0
}

// DrawGroup picks the rivals a groups-format campaign plays against. The draw
// depends only on the campaign number and is returned in strength order.
func DrawGroup(conf domain.Confederation, campaignNumber int) []string {
	if conf.Simulation != domain.SimulationGroups || conf.GroupSize < 2 {
		return nil
	}

	idx := make([]int, len(conf.Teams))
	for i := range idx {
		idx[i] = i
	}
	r := newXorshift32(uint32(campaignNumber)*2246822519 + 7)
	for i := len(idx) - 1; i > 0; i-- {
		j := int(r.next() % uint32(i+1))
		idx[i], idx[j] = idx[j], idx[i]
	}

	picked := idx[:min(conf.GroupSize-1, len(idx))]
	slices.Sort(picked)

	group := make([]string, len(picked))
	for i, k := range picked {
		group[i] = conf.Teams[k]
	}
	return group
}
