package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
	"github.com/therapistsfriend/practice-server/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

type sessionResponse struct {
	User *users.User `json:"user"`
}

// LoginHandler validates credentials, issues a signed token and sets the
// session cookie
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.Wrapf(apperrors.ErrValidation, "invalid request body"))
			return
		}

		user, err := s.validator.Validate(req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		signed, err := s.codec.Encode(user, s.tokenTTL)
		if err != nil {
			writeError(w, err)
			return
		}

		http.SetCookie(w, s.cookies.Issue(signed))
		log.Info().Str("user_id", user.ID).Msg("login")

		writeJSON(w, http.StatusOK, loginResponse{Token: signed, User: user})
	}
}

// LogoutHandler clears the session cookie. GET is accepted for compatibility
// with older frontend builds.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, s.cookies.Clear())
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	}
}

// SessionCheckHandler reports the identity behind the request cookie
func (s *Server) SessionCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resolved, err := s.resolver.Resolve(r)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse{User: resolved.User})
	}
}
