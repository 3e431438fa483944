// Package server exposes the career tracker as a JSON HTTP API.
package server

import (
	"career-tracker/internal/campaign"
	"career-tracker/internal/constants"
	"career-tracker/internal/feed"
	"career-tracker/internal/repository"
	"career-tracker/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type CareerServer struct {
	playerSvc    *service.PlayerService
	matchSvc     *service.MatchService
	campaignSvc  *service.CampaignService
	analyticsSvc *service.AnalyticsService
	feed         *feed.Client
	validator    *validator.Validate
	logger       zerolog.Logger
}

func NewCareerServer(playerSvc *service.PlayerService, matchSvc *service.MatchService, campaignSvc *service.CampaignService, analyticsSvc *service.AnalyticsService, feedClient *feed.Client, logger zerolog.Logger) *CareerServer {
	return &CareerServer{
		playerSvc:    playerSvc,
		matchSvc:     matchSvc,
		campaignSvc:  campaignSvc,
		analyticsSvc: analyticsSvc,
		feed:         feedClient,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Register mounts the API routes on mux.
func (s *CareerServer) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/confederations", s.listConfederations)

	mux.HandleFunc("POST /api/players", s.createPlayer)
	mux.HandleFunc("GET /api/players/search", s.searchPlayers)
	mux.HandleFunc("GET /api/players/{id}", s.getPlayer)
	mux.HandleFunc("GET /api/players/{id}/analytics", s.getAnalytics)

	mux.HandleFunc("POST /api/players/{id}/matches", s.recordMatch)
	mux.HandleFunc("GET /api/players/{id}/matches", s.listMatches)
	mux.HandleFunc("PUT /api/players/{id}/matches/{matchID}", s.updateMatch)
	mux.HandleFunc("DELETE /api/players/{id}/matches/{matchID}", s.deleteMatch)

	mux.HandleFunc("POST /api/players/{id}/campaigns/qualifiers", s.startQualifiers)
	mux.HandleFunc("POST /api/players/{id}/campaigns/world-cup", s.startWorldCup)
	mux.HandleFunc("POST /api/players/{id}/campaigns/abandon", s.abandonCampaign)
	mux.HandleFunc("GET /api/players/{id}/campaigns/active", s.activeCampaign)
	mux.HandleFunc("GET /api/players/{id}/campaigns/standings", s.standings)
	mux.HandleFunc("GET /api/players/{id}/campaigns/history", s.history)
}

func (s *CareerServer) health(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"feed": map[string]any{
			"enabled":  s.feed.Enabled(),
			"delivery": s.feed.Stats(),
		},
	})
}

// decode reads a JSON body into dst and validates it. An empty body decodes
// as an empty object.
func (s *CareerServer) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed body: %v", service.ErrInvalidInput, err)
	}
	if err := s.validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	return nil
}

func (s *CareerServer) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write response")
	}
}

func (s *CareerServer) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.jsonResponse(w, status, map[string]string{"error": "internal error"})
		return
	}
	s.jsonResponse(w, status, map[string]string{"error": err.Error()})
}

var conflictErrors = []error{
	repository.ErrDuplicate,
	campaign.ErrNoActiveCampaign,
	campaign.ErrCampaignActive,
	campaign.ErrCampaignFinished,
	campaign.ErrModeMismatch,
	campaign.ErrNoWorldCupAttempts,
	campaign.ErrKnockoutDraw,
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, campaign.ErrInvalidEvent),
		errors.Is(err, campaign.ErrUnknownConfederation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
