package server

import (
	"net/http"
	"strconv"
)

func (s *CareerServer) recordMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	draft, err := req.draft()
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	result, err := s.matchSvc.Record(r.Context(), r.PathValue("id"), draft)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, result)
}

func (s *CareerServer) listMatches(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	matches, err := s.matchSvc.List(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

func (s *CareerServer) updateMatch(w http.ResponseWriter, r *http.Request) {
	var req updateMatchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	edit, err := req.edit()
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	match, err := s.matchSvc.Update(r.Context(), r.PathValue("id"), r.PathValue("matchID"), edit)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

func (s *CareerServer) deleteMatch(w http.ResponseWriter, r *http.Request) {
	if err := s.matchSvc.Delete(r.Context(), r.PathValue("id"), r.PathValue("matchID")); err != nil {
		s.errorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
