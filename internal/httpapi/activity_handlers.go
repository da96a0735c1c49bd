package httpapi

import (
	"net/http"

	"github.com/offcon/crono/internal/contract"
)

func (s *Server) handleCreateActivity(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	var in contract.ActivityInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	in.PlanID = planID
	a, err := s.svc.Activities.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, contract.ViewActivity(a))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	planID, ok := urlID(r, "planID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid plan id"})
		return
	}
	activities, err := s.svc.Activities.ListByPlan(r.Context(), planID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	views := make([]contract.ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, contract.ViewActivity(a))
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	a, err := s.svc.Activities.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewActivity(a))
}

func (s *Server) handleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	var in contract.ActivityInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	a, err := s.svc.Activities.Update(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewActivity(a))
}

func (s *Server) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	var in contract.ScheduleInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	if err := s.svc.Activities.UpdateSchedule(r.Context(), id, in); err != nil {
		s.writeError(w, r, err)
		return
	}
	a, err := s.svc.Activities.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contract.ViewActivity(a))
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	if err := s.svc.Activities.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
