package http

import (
	"net/http"

	"github.com/couchcryptid/stormwater-assessment/internal/session"
)

// SessionCookie names the cookie that carries the session id.
const SessionCookie = "sw_session"

// session resolves the caller's session, starting a new one and setting the
// cookie when the request carries none or an expired one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(SessionCookie); err == nil {
		id = c.Value
	}

	sess, created := s.sessions.GetOrCreate(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID(),
			Path:     "/",
			HttpOnly: true,
			Secure:   s.cookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		s.logger.Debug("session started", "session_id", sess.ID())
	}
	return sess
}
