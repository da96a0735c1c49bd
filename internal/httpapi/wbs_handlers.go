package httpapi

import (
	"net/http"
	"time"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/wbs"
)

func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	var req contract.ReconcileRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	req.PlanID = planID

	stats, err := s.svc.Reconciler.Reconcile(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.NewReconcileResponse(req, stats))
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	roots, err := s.svc.Projections.Tree(r.Context(), planID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewTree(roots))
}

func (s *Server) handleGantt(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	window, ok := ganttWindowFromQuery(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "from/to must be YYYY-MM-DD"})
		return
	}
	rows, err := s.svc.Projections.Gantt(r.Context(), planID, window)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if rows == nil {
		rows = []wbs.GanttRow{}
	}
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	stats, err := s.svc.Projections.Stats(r.Context(), planID, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	var body struct {
		Start string `json:"start"`
	}
	if !s.decodeJSON(w, r, &body) {
		return
	}
	start := time.Now().UTC().Truncate(24 * time.Hour)
	if body.Start != "" {
		t, err := domain.ParseDate(body.Start)
		if err != nil {
			s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "start must be YYYY-MM-DD"})
			return
		}
		start = *t
	}
	stats, err := s.svc.Templates.ApplyStandard(r.Context(), planID, start)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"plan_id": planID,
		"stats":   stats,
	})
}

func ganttWindowFromQuery(r *http.Request) (wbs.GanttWindow, bool) {
	var window wbs.GanttWindow
	if from := r.URL.Query().Get("from"); from != "" {
		t, err := domain.ParseDate(from)
		if err != nil {
			return window, false
		}
		window.From = t
	}
	if to := r.URL.Query().Get("to"); to != "" {
		t, err := domain.ParseDate(to)
		if err != nil {
			return window, false
		}
		window.To = t
	}
	return window, true
}
