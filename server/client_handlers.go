package server

import (
	"encoding/json"
	"net/http"

	"github.com/therapistsfriend/practice-server/clients"
	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

// clientPayload mirrors sessionPayload: no owner field, OwnerID is stamped
// from the authenticated tenant.
type clientPayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status"`
}

// ClientsListHandler returns the tenant's clients as a bare array
func (s *Server) ClientsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		list, err := s.repos.Clients.List(s.gate.Scope(tenantKey, demo))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// ClientCreateHandler creates a client owned by the authenticated tenant
func (s *Server) ClientCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		var payload clientPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid request body"))
			return
		}
		if payload.FirstName == nil || payload.LastName == nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "missing required fields: firstName, lastName"))
			return
		}

		client := &clients.Client{
			OwnerID:   s.gate.Scope(tenantKey, demo),
			FirstName: *payload.FirstName,
			LastName:  *payload.LastName,
			Status:    clients.StatusActive,
		}
		if payload.Email != nil {
			client.Email = *payload.Email
		}
		if payload.Phone != nil {
			client.Phone = *payload.Phone
		}
		if payload.Status != nil {
			client.Status = clients.Status(*payload.Status)
		}

		if err := s.repos.Clients.Create(client); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, client)
	}
}

// ClientGetHandler returns a single client after an ownership check
func (s *Server) ClientGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())

		client, err := s.repos.Clients.Get(r.PathValue("id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.Authorize(tenantKey, client.OwnerID, demo); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, client)
	}
}

// ClientUpdateHandler applies a partial update, PUT and PATCH alike
func (s *Server) ClientUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())
		id := r.PathValue("id")

		client, err := s.repos.Clients.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.Authorize(tenantKey, client.OwnerID, demo); err != nil {
			writeError(w, err)
			return
		}

		var payload clientPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid request body"))
			return
		}

		update := clients.Update{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.Email,
			Phone:     payload.Phone,
		}
		if payload.Status != nil {
			status := clients.Status(*payload.Status)
			update.Status = &status
		}

		updated, err := s.repos.Clients.Update(id, s.gate.Scope(tenantKey, demo), update)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// ClientDeleteHandler removes a client owned by the tenant
func (s *Server) ClientDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantKey, demo := tenantFromContext(r.Context())
		id := r.PathValue("id")

		client, err := s.repos.Clients.Get(id)
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.gate.Authorize(tenantKey, client.OwnerID, demo); err != nil {
			writeError(w, err)
			return
		}

		if err := s.repos.Clients.Delete(id, s.gate.Scope(tenantKey, demo)); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
