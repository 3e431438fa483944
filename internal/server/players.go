package server

import (
	"net/http"
)

func (s *CareerServer) createPlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := s.decode(w, r, &req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	player, err := s.playerSvc.Create(r.Context(), req.Name)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, player)
}

func (s *CareerServer) getPlayer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	player, err := s.playerSvc.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	state, err := s.playerSvc.Career(r.Context(), id)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	tournaments := state.Tournaments
	if tournaments == nil {
		tournaments = []string{}
	}
	s.jsonResponse(w, http.StatusOK, playerResponse{
		Player:              *player,
		CareerPoints:        state.CareerPoints,
		WorldCupAttempts:    state.WorldCupAttempts,
		QualifiersCampaigns: state.QualifiersCampaigns,
		WorldCupCampaigns:   state.WorldCupCampaigns,
		Tournaments:         tournaments,
		Active:              state.Active,
	})
}

func (s *CareerServer) searchPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.playerSvc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"players": players})
}

func (s *CareerServer) getAnalytics(w http.ResponseWriter, r *http.Request) {
	result, err := s.analyticsSvc.Compute(r.Context(), r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
