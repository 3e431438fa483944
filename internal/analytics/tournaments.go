package analytics

import (
	"career-tracker/internal/domain"
)

// NoTournament groups matches logged without a tournament label.
const NoTournament = "Friendlies"

// TournamentBreakdown groups matches by tournament label, in order of first appearance.
func TournamentBreakdown(matches []domain.MatchRecord) []domain.TournamentStats {
	index := make(map[string]int)
	var out []domain.TournamentStats

	for _, m := range chronological(matches) {
		name := m.Tournament
		if name == "" {
			name = NoTournament
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, domain.TournamentStats{Tournament: name})
		}

		s := &out[i]
		s.Played++
		switch m.Result {
		case domain.ResultWin:
			s.Wins++
		case domain.ResultDraw:
			s.Draws++
		case domain.ResultLoss:
			s.Losses++
		}
		s.Goals += m.MyGoals
		s.Assists += m.MyAssists
		s.Points += m.Result.BasePoints()
	}
	return out
}
