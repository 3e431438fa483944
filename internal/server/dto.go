package server

import (
	"career-tracker/internal/domain"
	"career-tracker/internal/service"
	"fmt"
)

type createPlayerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=64"`
}

type matchRequest struct {
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Result         string   `json:"result" validate:"required,oneof=WIN DRAW LOSS"`
	MyGoals        int      `json:"myGoals" validate:"min=0,max=99"`
	MyAssists      int      `json:"myAssists" validate:"min=0,max=99"`
	GoalDifference *int     `json:"goalDifference" validate:"omitempty,min=-99,max=99"`
	Tournament     string   `json:"tournament" validate:"max=100"`
	MatchMode      string   `json:"matchMode" validate:"omitempty,oneof=regular world_cup qualifiers"`
	Lineup         []string `json:"lineup" validate:"max=30,dive,max=64"`
}

func (m matchRequest) draft() (service.MatchDraft, error) {
	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return service.MatchDraft{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return service.MatchDraft{
		Date:           date,
		Result:         domain.Result(m.Result),
		MyGoals:        m.MyGoals,
		MyAssists:      m.MyAssists,
		GoalDifference: m.GoalDifference,
		Tournament:     m.Tournament,
		MatchMode:      domain.MatchMode(m.MatchMode),
		Lineup:         m.Lineup,
	}, nil
}

type updateMatchRequest struct {
	Date           string   `json:"date" validate:"required,datetime=2006-01-02"`
	Result         string   `json:"result" validate:"required,oneof=WIN DRAW LOSS"`
	MyGoals        int      `json:"myGoals" validate:"min=0,max=99"`
	MyAssists      int      `json:"myAssists" validate:"min=0,max=99"`
	GoalDifference *int     `json:"goalDifference" validate:"omitempty,min=-99,max=99"`
	Lineup         []string `json:"lineup" validate:"max=30,dive,max=64"`
}

func (m updateMatchRequest) edit() (service.MatchEdit, error) {
	date, err := domain.ParseDate(m.Date)
	if err != nil {
		return service.MatchEdit{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return service.MatchEdit{
		Date:           date,
		Result:         domain.Result(m.Result),
		MyGoals:        m.MyGoals,
		MyAssists:      m.MyAssists,
		GoalDifference: m.GoalDifference,
		Lineup:         m.Lineup,
	}, nil
}

type startQualifiersRequest struct {
	Confederation string `json:"confederation" validate:"required"`
	Date          string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type startWorldCupRequest struct {
	UseQualification bool   `json:"useQualification"`
	Date             string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type abandonRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// optionalDate parses a validated, possibly empty date field.
func optionalDate(s string) (domain.Date, error) {
	if s == "" {
		return domain.Date{}, nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return d, nil
}

type playerResponse struct {
	domain.Player
	CareerPoints        int             `json:"careerPoints"`
	WorldCupAttempts    int             `json:"worldCupAttempts"`
	QualifiersCampaigns int             `json:"qualifiersCampaigns"`
	WorldCupCampaigns   int             `json:"worldCupCampaigns"`
	Tournaments         []string        `json:"tournaments"`
	Active              domain.Campaign `json:"activeCampaign"`
}

type campaignResponse struct {
	Transition    string                       `json:"transition"`
	Mode          domain.CampaignMode          `json:"mode,omitempty"`
	Campaign      domain.Campaign              `json:"campaign,omitempty"`
	History       *domain.CampaignHistoryEntry `json:"history,omitempty"`
	CareerPoints  int                          `json:"careerPoints"`
	Attempts      int                          `json:"worldCupAttempts"`
	PointsAwarded int                          `json:"pointsAwarded"`
}
