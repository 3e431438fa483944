package repository

import (
	"career-tracker/internal/domain"
	"database/sql"
	"encoding/json"
	"fmt"
)

// The active campaign is stored as its mode plus a JSON snapshot of the progress.

func encodeCampaign(c domain.Campaign) (sql.NullString, sql.NullString, error) {
	if c == nil {
		return sql.NullString{}, sql.NullString{}, nil
	}
	data, err := json.Marshal(c)
	if err != nil {
		return sql.NullString{}, sql.NullString{}, fmt.Errorf("failed to encode %s campaign: %w", c.Mode(), err)
	}
	return sql.NullString{String: string(c.Mode()), Valid: true},
		sql.NullString{String: string(data), Valid: true}, nil
}

func decodeCampaign(mode, progress sql.NullString) (domain.Campaign, error) {
	if !mode.Valid || mode.String == "" {
		return nil, nil
	}

	var c domain.Campaign
	switch domain.CampaignMode(mode.String) {
	case domain.CampaignQualifiers:
		c = &domain.QualifiersProgress{}
	case domain.CampaignWorldCup:
		c = &domain.WorldCupProgress{}
	default:
		return nil, fmt.Errorf("unknown campaign mode %q", mode.String)
	}
	if err := json.Unmarshal([]byte(progress.String), c); err != nil {
		return nil, fmt.Errorf("failed to decode %s campaign: %w", mode.String, err)
	}
	return c, nil
}

func encodeLineup(lineup []string) string {
	if len(lineup) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(lineup)
	return string(data)
}

func decodeLineup(s string) []string {
	var lineup []string
	if err := json.Unmarshal([]byte(s), &lineup); err != nil || len(lineup) == 0 {
		return nil
	}
	return lineup
}
