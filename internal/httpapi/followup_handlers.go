package httpapi

import (
	"net/http"

	"github.com/offcon/crono/internal/contract"
	"github.com/offcon/crono/internal/domain"
)

type followUpView struct {
	ID          int64         `json:"id"`
	ActivityID  int64         `json:"activity_id"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Responsible *string       `json:"responsible"`
	Status      domain.Status `json:"status"`
}

func viewFollowUp(f *domain.FollowUp) followUpView {
	return followUpView{
		ID:          f.ID,
		ActivityID:  f.ActivityID,
		Date:        f.Date.Format(domain.DateLayout),
		Description: f.Description,
		Responsible: f.Responsible,
		Status:      f.Status,
	}
}

func (s *Server) handleCreateFollowUp(w http.ResponseWriter, r *http.Request) {
	activityID, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	var in contract.FollowUpInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	f, err := s.svc.FollowUps.Create(r.Context(), activityID, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, viewFollowUp(f))
}

func (s *Server) handleListFollowUps(w http.ResponseWriter, r *http.Request) {
	activityID, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	fups, err := s.svc.FollowUps.ListByActivity(r.Context(), activityID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	views := make([]followUpView, 0, len(fups))
	for _, f := range fups {
		views = append(views, viewFollowUp(f))
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleUpdateFollowUp(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "followUpID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid follow-up id"})
		return
	}
	var in contract.FollowUpInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	f, err := s.svc.FollowUps.Update(r.Context(), id, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, viewFollowUp(f))
}

func (s *Server) handleDeleteFollowUp(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "followUpID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid follow-up id"})
		return
	}
	if err := s.svc.FollowUps.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type linkView struct {
	ID               int64   `json:"id"`
	ActivityID       int64   `json:"activity_id"`
	PurchaseOrderRef *string `json:"purchase_order_ref"`
	ServiceOrderRef  *string `json:"service_order_ref"`
}

func viewLink(l *domain.ExternalLink) linkView {
	return linkView{
		ID:               l.ID,
		ActivityID:       l.ActivityID,
		PurchaseOrderRef: l.PurchaseOrderRef,
		ServiceOrderRef:  l.ServiceOrderRef,
	}
}

func (s *Server) handleCreateLink(w http.ResponseWriter, r *http.Request) {
	activityID, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	var in contract.LinkInput
	if !s.decodeJSON(w, r, &in) {
		return
	}
	l, err := s.svc.Links.Create(r.Context(), activityID, in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, viewLink(l))
}

func (s *Server) handleListLinks(w http.ResponseWriter, r *http.Request) {
	activityID, ok := urlID(r, "activityID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid activity id"})
		return
	}
	links, err := s.svc.Links.ListByActivity(r.Context(), activityID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	views := make([]linkView, 0, len(links))
	for _, l := range links {
		views = append(views, viewLink(l))
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleDeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "linkID")
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid link id"})
		return
	}
	if err := s.svc.Links.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
