package server

import (
	"career-tracker/internal/campaign"
	"net/http"
	"strconv"
)

func (s *CareerServer) listConfederations(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"confederations": s.campaignSvc.Confederations()})
}

func (s *CareerServer) startQualifiers(w http.ResponseWriter, r *http.Request) {
	var req startQualifiersRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	out, err := s.campaignSvc.StartQualifiers(r.Context(), r.PathValue("id"), req.Confederation, date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, toCampaignResponse(out))
}

func (s *CareerServer) startWorldCup(w http.ResponseWriter, r *http.Request) {
	var req startWorldCupRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	out, err := s.campaignSvc.StartWorldCup(r.Context(), r.PathValue("id"), req.UseQualification, date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, toCampaignResponse(out))
}

func (s *CareerServer) abandonCampaign(w http.ResponseWriter, r *http.Request) {
	var req abandonRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	out, err := s.campaignSvc.Abandon(r.Context(), r.PathValue("id"), date)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, toCampaignResponse(out))
}

func (s *CareerServer) activeCampaign(w http.ResponseWriter, r *http.Request) {
	active, err := s.campaignSvc.Active(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	if active == nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"mode": nil, "campaign": nil})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"mode": active.Mode(), "campaign": active})
}

func (s *CareerServer) standings(w http.ResponseWriter, r *http.Request) {
	table, err := s.campaignSvc.Standings(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"standings": table})
}

func (s *CareerServer) history(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := s.campaignSvc.History(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"history": entries})
}

func toCampaignResponse(out campaign.Outcome) campaignResponse {
	resp := campaignResponse{
		Transition:    string(out.Transition),
		Campaign:      out.Campaign,
		History:       out.History,
		CareerPoints:  out.State.CareerPoints,
		Attempts:      out.State.WorldCupAttempts,
		PointsAwarded: out.PointsAwarded,
	}
	if out.Campaign != nil {
		resp.Mode = out.Campaign.Mode()
	}
	return resp
}
