package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/knowledge"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
)

type buildRequest struct {
	Destination string `json:"destination"`
}

func (s *Server) handleBuildDestination(w http.ResponseWriter, r *http.Request) {
	var req buildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Destination == "" {
		s.respondError(w, http.StatusBadRequest, "destination is required")
		return
	}
	s.logger.Debug("build request", zap.String("destination", req.Destination))
	outcomes, err := s.assistant.BuildKnowledgeBase(r.Context(), req.Destination)
	if err != nil {
		s.logger.Error("knowledge base build failed", zap.String("destination", req.Destination), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	session := s.assistant.Session()
	s.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id":  session.ID(),
		"destination": session.Subject(),
		"facts":       session.Len(),
		"sources":     outcomes,
	})
}

func (s *Server) handleDestinationInfo(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")
	if destination == "" {
		s.respondError(w, http.StatusBadRequest, "destination is required")
		return
	}
	info := s.assistant.DestinationInfo(r.Context(), destination)
	s.respondJSON(w, http.StatusOK, info)
}

type queryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

func (s *Server) handleQueryFacts(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	if s.retrieval != nil && req.TopK > s.retrieval.MaxTopK {
		req.TopK = s.retrieval.MaxTopK
	}
	facts, err := s.assistant.RetrieveFacts(r.Context(), req.Query, req.TopK)
	if err != nil {
		var qerr *knowledge.QueryEmbeddingError
		if errors.As(err, &qerr) {
			s.logger.Error("query embedding failed", zap.Error(err))
			s.respondError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("fact retrieval failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if facts == nil {
		facts = []knowledge.Fact{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":       req.Query,
		"destination": s.assistant.Session().Subject(),
		"facts":       facts,
	})
}

func (s *Server) handleItinerary(w http.ResponseWriter, r *http.Request) {
	var prefs models.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("itinerary request", zap.String("destination", prefs.Destination))
	itinerary, err := s.assistant.PlanTrip(r.Context(), prefs)
	if err != nil {
		if prefs.Destination == "" {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("itinerary generation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, itinerary)
}

type askRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}
	s.logger.Debug("ask request", zap.String("query", req.Query))
	answer, err := s.assistant.Ask(r.Context(), req.Query)
	if err != nil {
		s.logger.Error("answer generation failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, answer)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	session := s.assistant.Session()
	resp := map[string]interface{}{
		"ready": session != nil,
		"facts": session.Len(),
	}
	if session != nil {
		resp["session_id"] = session.ID()
		resp["destination"] = session.Subject()
	}
	if s.retrieval != nil {
		resp["config"] = map[string]interface{}{
			"top_k":     s.retrieval.TopK,
			"max_top_k": s.retrieval.MaxTopK,
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
