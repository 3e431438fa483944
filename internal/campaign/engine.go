// Package campaign advances a player's Career Mode. Engine.Apply is a reducer:
// it takes a CareerState and an Event and returns the next state plus everything
// the caller has to persist. It never mutates its input and performs no I/O.
package campaign

import (
	"career-tracker/internal/domain"
	"fmt"

	"github.com/rs/zerolog"
)

// Rewards and thresholds.
const (
	QualificationBonus     = 500
	WorldCupAttemptsReward = 1

	GroupStageMatches         = 3
	GroupStagePromotionPoints = 5
	GroupStageBonus           = 150
	ChampionBonus             = 1000

	FriendlyMatchFactor       = 5
	QualifiedMatchFactor      = 10
	QualifiedRewardMultiplier = 2
)

var knockoutBonus = map[domain.Stage]int{
	domain.StageRoundOf16:     200,
	domain.StageQuarterFinals: 300,
	domain.StageSemiFinals:    400,
}

type Confederations interface {
	Get(key string) (domain.Confederation, bool)
}

type Event interface {
	isEvent()
}

type StartQualifiers struct {
	Confederation string
	Date          domain.Date
}

// StartWorldCup enters a World Cup campaign. With UseQualification the entry
// spends one earned World Cup attempt and the campaign pays qualified rewards.
type StartWorldCup struct {
	UseQualification bool
	Date             domain.Date
}

// SubmitMatch records one match in the active campaign. The caller assigns
// the match ID and date; the engine fills mode, tournament and earned points.
type SubmitMatch struct {
	Match domain.MatchRecord
}

type Abandon struct {
	Date domain.Date
}

func (StartQualifiers) isEvent() {}
func (StartWorldCup) isEvent()   {}
func (SubmitMatch) isEvent()     {}
func (Abandon) isEvent()         {}

type Transition string

const (
	TransitionStarted    Transition = "started"
	TransitionMatch      Transition = "match"
	TransitionPromoted   Transition = "promoted"
	TransitionAdvanced   Transition = "advanced"
	TransitionChampion   Transition = "champion"
	TransitionEliminated Transition = "eliminated"
	TransitionCompleted  Transition = "completed"
	TransitionAbandoned  Transition = "abandoned"
)

type MilestoneKind string

const (
	MilestoneQualified    MilestoneKind = "qualified"
	MilestoneGroupCleared MilestoneKind = "group_cleared"
	MilestoneChampion     MilestoneKind = "champion"
)

type Milestone struct {
	Kind           MilestoneKind       `json:"kind"`
	PlayerID       string              `json:"playerId"`
	PlayerName     string              `json:"playerName"`
	Mode           domain.CampaignMode `json:"mode"`
	CampaignNumber int                 `json:"campaignNumber"`
	Detail         string              `json:"detail,omitempty"`
}

// Outcome is everything produced by one event. State is the full next state;
// the other fields are the pieces the persistence layer must write.
type Outcome struct {
	State      domain.CareerState
	Transition Transition
	// Campaign is the campaign as it stands after the event, including one
	// that was just archived and is no longer in State.Active.
	Campaign      domain.Campaign
	Match         *domain.MatchRecord
	History       *domain.CampaignHistoryEntry
	PointsAwarded int
	NewTournament string
	Standings     []domain.TeamStanding
	Milestones    []Milestone
}

type Engine struct {
	confederations Confederations
	logger         zerolog.Logger
}

func NewEngine(confederations Confederations, logger zerolog.Logger) *Engine {
	return &Engine{confederations: confederations, logger: logger}
}

func (e *Engine) Apply(state domain.CareerState, ev Event) (Outcome, error) {
	next := state.Clone()
	out := Outcome{}

	var err error
	switch ev := ev.(type) {
	case StartQualifiers:
		err = e.startQualifiers(&next, ev, &out)
	case StartWorldCup:
		err = e.startWorldCup(&next, ev, &out)
	case SubmitMatch:
		err = e.submit(&next, ev.Match, &out)
	case Abandon:
		err = e.abandon(&next, ev, &out)
	default:
		err = fmt.Errorf("%w: unsupported event %T", ErrInvalidEvent, ev)
	}
	if err != nil {
		return Outcome{}, err
	}

	out.State = next
	e.logger.Debug().
		Str("player_id", next.PlayerID).
		Str("transition", string(out.Transition)).
		Int("points_awarded", out.PointsAwarded).
		Int("career_points", next.CareerPoints).
		Msg("campaign event applied")
	return out, nil
}

func (e *Engine) submit(state *domain.CareerState, m domain.MatchRecord, out *Outcome) error {
	if err := validateMatch(m); err != nil {
		return err
	}

	switch c := state.Active.(type) {
	case nil:
		return ErrNoActiveCampaign
	case *domain.QualifiersProgress:
		if m.MatchMode != "" && m.MatchMode != domain.ModeQualifiers {
			return fmt.Errorf("%w: got %s, active is qualifiers", ErrModeMismatch, m.MatchMode)
		}
		return e.submitQualifiers(state, c, m, out)
	case *domain.WorldCupProgress:
		if m.MatchMode != "" && m.MatchMode != domain.ModeWorldCup {
			return fmt.Errorf("%w: got %s, active is world_cup", ErrModeMismatch, m.MatchMode)
		}
		return e.submitWorldCup(state, c, m, out)
	default:
		return fmt.Errorf("%w: unknown campaign type %T", ErrInvalidEvent, c)
	}
}

func (e *Engine) abandon(state *domain.CareerState, ev Abandon, out *Outcome) error {
	if ev.Date.IsZero() {
		return fmt.Errorf("%w: abandon needs a date", ErrInvalidEvent)
	}

	var entry domain.CampaignHistoryEntry
	switch c := state.Active.(type) {
	case nil:
		return ErrNoActiveCampaign
	case *domain.QualifiersProgress:
		if c.Status != domain.QualifiersActive {
			return ErrCampaignFinished
		}
		entry = qualifiersEntry(state, c, domain.HistoryAbandoned, ev.Date)
		if conf, ok := e.confederations.Get(c.Confederation); ok && c.MatchesPlayed > 0 {
			entry.FinalPosition = position(c, conf, state.PlayerName)
		}
	case *domain.WorldCupProgress:
		if c.ChampionOfCampaign {
			return ErrCampaignFinished
		}
		entry = worldCupEntry(state, c, domain.HistoryAbandoned, string(c.CurrentStage), ev.Date)
	default:
		return fmt.Errorf("%w: unknown campaign type %T", ErrInvalidEvent, c)
	}

	out.Campaign = state.Active
	out.History = &entry
	out.Transition = TransitionAbandoned
	state.Active = nil
	return nil
}

// tag adds a tournament label to the player's list when it is new.
func tag(state *domain.CareerState, label string, out *Outcome) {
	if label == "" || state.HasTournament(label) {
		return
	}
	state.Tournaments = append(state.Tournaments, label)
	out.NewTournament = label
}

func milestone(state *domain.CareerState, c domain.Campaign, kind MilestoneKind, detail string) Milestone {
	return Milestone{
		Kind:           kind,
		PlayerID:       state.PlayerID,
		PlayerName:     state.PlayerName,
		Mode:           c.Mode(),
		CampaignNumber: c.Number(),
		Detail:         detail,
	}
}

func validateMatch(m domain.MatchRecord) error {
	switch {
	case m.ID == "":
		return fmt.Errorf("%w: match has no id", ErrInvalidEvent)
	case m.Date.IsZero():
		return fmt.Errorf("%w: match has no date", ErrInvalidEvent)
	case !m.Result.Valid():
		return fmt.Errorf("%w: invalid result %q", ErrInvalidEvent, m.Result)
	case m.MyGoals < 0 || m.MyAssists < 0:
		return fmt.Errorf("%w: goals and assists cannot be negative", ErrInvalidEvent)
	}
	return nil
}

func intPtr(v int) *int { return &v }
