package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
	"github.com/offcon/crono/internal/service"
)

func urlID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var in contract.PlanInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	p, err := planFromInput(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Plans.Create(r.Context(), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, contract.ViewPlan(p))
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.svc.Plans.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewPlans(plans))
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	p, err := s.svc.Plans.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewPlan(p))
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	var in contract.PlanInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	current, err := s.svc.Plans.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := planFromInput(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	if err := s.svc.Plans.Update(r.Context(), next); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewPlan(next))
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	if err := s.svc.Plans.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func planFromInput(in contract.PlanInput) (*domain.Plan, error) {
	issued, err := parseInputDate(in.IssuedAt)
	if err != nil {
		return nil, err
	}
	due, err := parseInputDate(in.DueAt)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{
		Number:     in.Number,
		ClientName: in.ClientName,
		Status:     in.Status,
		IssuedAt:   issued,
		DueAt:      due,
	}, nil
}

func parseInputDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", service.ErrValidation, *s)
	}
	return t, nil
}
