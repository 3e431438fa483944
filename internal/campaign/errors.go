package campaign

import "errors"

var (
	ErrNoActiveCampaign     = errors.New("no active campaign")
	ErrCampaignActive       = errors.New("a campaign is already active")
	ErrCampaignFinished     = errors.New("campaign already finished")
	ErrModeMismatch         = errors.New("match mode does not match the active campaign")
	ErrUnknownConfederation = errors.New("unknown confederation")
	ErrNoWorldCupAttempts   = errors.New("no World Cup attempts left")
	ErrKnockoutDraw         = errors.New("knockout matches cannot end in a draw")
	ErrInvalidEvent         = errors.New("invalid campaign event")
)
