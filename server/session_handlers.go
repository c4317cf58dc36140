package server

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/sessions"
)

// sessionPayload is the create/update body. Any owner field in the payload
// is deliberately absent: OwnerID is always stamped from the authenticated
// tenant so one tenant cannot inject resources into another's practice.
type sessionPayload struct {
	ClientID  *string `json:"clientId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Status    *string `json:"status"`
	Notes     *string `json:"notes"`
}

// SessionsListHandler returns the tenant's sessions as a bare array
func (s *Server) SessionsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		filter, err := sessionFilterFromQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		list, err := s.repos.Sessions.List(s.gate.Scope(tenantKey, demo), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// SessionCreateHandler creates a session owned by the authenticated tenant
func (s *Server) SessionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		var payload sessionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid request body"))
			return
		}
		if payload.ClientID == nil || payload.StartTime == nil || payload.EndTime == nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "missing required fields: clientId, startTime, endTime"))
			return
		}

		start, err := parseTime(*payload.StartTime)
		if err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid startTime"))
			return
		}
		end, err := parseTime(*payload.EndTime)
		if err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid endTime"))
			return
		}

		session := &sessions.Session{
			OwnerID:   s.gate.Scope(tenantKey, demo),
			ClientID:  *payload.ClientID,
			StartTime: start,
			EndTime:   end,
			Status:    sessions.StatusScheduled,
		}
		if payload.Status != nil {
			session.Status = sessions.Status(*payload.Status)
		}
		if payload.Notes != nil {
			session.Notes = *payload.Notes
		}

		if err := s.repos.Sessions.Create(session); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, session)
	}
}

// SessionGetHandler returns a single session after an ownership check
func (s *Server) SessionGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		session, err := s.repos.Sessions.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.Authorize(tenantKey, session.OwnerID, demo); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

// SessionUpdateHandler applies a partial update. PUT and PATCH behave the
// same; the owner key is folded into the mutation statement.
func (s *Server) SessionUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())
		id := r.PathValue("id")

		session, err := s.repos.Sessions.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.Authorize(tenantKey, session.OwnerID, demo); err != nil {
			writeError(w, err)
			return
		}

		var payload sessionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid request body"))
			return
		}

		update := sessions.Update{
			ClientID: payload.ClientID,
			Notes:    payload.Notes,
		}
		if payload.StartTime != nil {
			start, err := parseTime(*payload.StartTime)
			if err != nil {
				writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid startTime"))
				return
			}
			update.StartTime = &start
		}
		if payload.EndTime != nil {
			end, err := parseTime(*payload.EndTime)
			if err != nil {
				writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid endTime"))
				return
			}
			update.EndTime = &end
		}
		if payload.Status != nil {
			status := sessions.Status(*payload.Status)
			update.Status = &status
		}

		updated, err := s.repos.Sessions.Update(id, s.gate.Scope(tenantKey, demo), update)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// SessionDeleteHandler deletes a session unless it carries clinical notes
func (s *Server) SessionDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())
		id := r.PathValue("id")

		session, err := s.repos.Sessions.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.AuthorizeSessionDelete(tenantKey, session, demo); err != nil {
			writeError(w, err)
			return
		}

		if err := s.repos.Sessions.Delete(id, s.gate.Scope(tenantKey, demo)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// sessionFilterFromQuery builds the list filter. Legacy start/end params are
// aliases for startDate/endDate; the range is inclusive on start time.
func sessionFilterFromQuery(r *http.Request) (sessions.Filter, error) {
	query := r.URL.Query()

	startValue := query.Get("start")
	if startValue == "" {
		startValue = query.Get("startDate")
	}
	endValue := query.Get("end")
	if endValue == "" {
		endValue = query.Get("endDate")
	}

	filter := sessions.Filter{
		Status:   sessions.Status(query.Get("status")),
		ClientID: query.Get("clientId"),
	}

	if startValue != "" && endValue != "" {
		start, err := parseTime(startValue)
		if err != nil {
			return sessions.Filter{}, apperrors.Wrapf(apperrors.ErrValidation, "invalid start date")
		}
		end, err := parseTime(endValue)
		if err != nil {
			return sessions.Filter{}, apperrors.Wrapf(apperrors.ErrValidation, "invalid end date")
		}
		filter.Start = &start
		filter.End = &end
	}
	return filter, nil
}

// parseTime accepts RFC3339 or bare dates, which is what the calendar UI sends
func parseTime(value string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
