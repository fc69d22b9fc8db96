package server

import (
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/fulfillment/internal/geocode"
)

const (
	sessionCookie = "session"
	sessionTTL    = 12 * time.Hour
)

type session struct {
	username  string
	expiresAt time.Time
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session
	timeNow  func() time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]session), timeNow: time.Now}
}

// create also sweeps expired sessions, so tokens that are never presented
// again do not pile up.
func (s *sessionStore) create(username string) (string, time.Time) {
	token := uuid.NewString()
	now := s.timeNow()
	expiresAt := now.Add(sessionTTL)

	s.mu.Lock()
	for t, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, t)
		}
	}
	s.sessions[token] = session{username: username, expiresAt: expiresAt}
	s.mu.Unlock()
	return token, expiresAt
}

func (s *sessionStore) user(token string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if s.timeNow().After(sess.expiresAt) {
		s.delete(token)
		return "", false
	}
	return sess.username, true
}

func (s *sessionStore) delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

func (s *Server) sessionUser(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	username, _ := s.sessions.user(c.Value)
	return username
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}

	valid, err := s.userRepo.ValidateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		s.logger.Error("Failed to validate user", zap.String("username", req.Username), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !valid {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, expiresAt := s.sessions.create(req.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondJSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// handlePlaces answers city lookups. Lookups are keyed by session, so a
// newer keystroke from the same user cancels the older request.
func (s *Server) handlePlaces(w http.ResponseWriter, r *http.Request) {
	key := clientHost(r.RemoteAddr)
	if c, err := r.Cookie(sessionCookie); err == nil {
		key = c.Value
	}

	places, err := s.places.Lookup(r.Context(), key, r.URL.Query().Get("q"))
	if errors.Is(err, geocode.ErrSuperseded) {
		respondJSON(w, http.StatusOK, []geocode.Place{})
		return
	}
	if places == nil {
		places = []geocode.Place{}
	}
	respondJSON(w, http.StatusOK, places)
}

// clientHost strips the port, which changes with every new connection.
func clientHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
