package server

import "net/http"

// StatusHandler reports app identity and whether the store answers
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := "ok"
		if _, err := s.repos.Users.GetByID("status-probe"); err != nil && !isNotFound(err) {
			store = "unavailable"
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"app":   s.config.GetAppName(),
			"env":   s.env,
			"store": store,
		})
	}
}
