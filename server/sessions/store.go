package sessions

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessions are kept in memory, a restart logs everyone out

const DEFAULT_SESSION_TTL = 30 * time.Minute
const CookieName = "studygroup_session"

const (
	// anonymous sessions only carry a flash across one redirect
	anonymousTTL  = time.Minute
	sweepInterval = time.Minute
)

type contextKey int

const sessionKey contextKey = iota

type Session struct {
	StudentID int32
	Username  string
	// shown once on the next page that reads it
	Flash string
	// success message, also shown once
	Notice string
}

func (s Session) LoggedIn() bool {
	return s.StudentID != 0
}

type storedSession struct {
	session    Session
	expireTime time.Time
}

type Store struct {
	tokenToSession map[string]*storedSession
	ttl            time.Duration
	secureCookies  bool
	mu             sync.RWMutex
	now            func() time.Time
	lastSweep      time.Time
}

func NewStore(ttl time.Duration, secureCookies bool) *Store {
	if ttl <= 0 {
		ttl = DEFAULT_SESSION_TTL
	}
	return &Store{
		tokenToSession: map[string]*storedSession{},
		ttl:            ttl,
		secureCookies:  secureCookies,
		now:            time.Now,
	}
}

func (s *Store) ttlFor(session Session) time.Duration {
	if session.LoggedIn() {
		return s.ttl
	}
	return min(s.ttl, anonymousTTL)
}

// returns the session and pushes its expiry back
func (s *Store) Get(token string) (Session, bool) {
	s.refreshTokens()
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.tokenToSession[token]
	if !ok {
		return Session{}, false
	}
	currentTime := s.now()
	if currentTime.After(stored.expireTime) {
		delete(s.tokenToSession, token)
		return Session{}, false
	}
	stored.expireTime = currentTime.Add(s.ttlFor(stored.session))
	return stored.session, true
}

func (s *Store) put(token string, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenToSession[token] = &storedSession{
		session:    session,
		expireTime: s.now().Add(s.ttlFor(session)),
	}
}

func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokenToSession, token)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokenToSession)
}

// drops expired sessions at most once per sweepInterval, Get checks expiry itself
func (s *Store) refreshTokens() {
	currentTime := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if currentTime.Sub(s.lastSweep) < sweepInterval {
		return
	}
	s.lastSweep = currentTime
	for token, stored := range s.tokenToSession {
		if currentTime.After(stored.expireTime) {
			delete(s.tokenToSession, token)
		}
	}
}

func (s *Store) setCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   s.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Store) FromRequest(r *http.Request) (string, Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", Session{}, false
	}
	session, ok := s.Get(cookie.Value)
	if !ok {
		return "", Session{}, false
	}
	return cookie.Value, session, true
}

// Start always issues a fresh token so a session id from before login is never reused
func (s *Store) Start(w http.ResponseWriter, r *http.Request, session Session) string {
	if oldToken, _, ok := s.FromRequest(r); ok {
		s.Destroy(oldToken)
	}
	token := uuid.New().String()
	s.put(token, session)
	s.setCookie(w, token, 0)
	return token
}

func (s *Store) End(w http.ResponseWriter, r *http.Request) {
	if token, _, ok := s.FromRequest(r); ok {
		s.Destroy(token)
	}
	s.setCookie(w, "", -1)
}

func (s *Store) SetFlash(w http.ResponseWriter, r *http.Request, message string) {
	token, session, ok := s.FromRequest(r)
	session.Flash = message
	if !ok {
		token = uuid.New().String()
		s.setCookie(w, token, 0)
	}
	s.put(token, session)
}

func (s *Store) PopFlash(r *http.Request) string {
	token, session, ok := s.FromRequest(r)
	if !ok || session.Flash == "" {
		return ""
	}
	message := session.Flash
	session.Flash = ""
	if session.LoggedIn() {
		s.put(token, session)
	} else {
		s.Destroy(token)
	}
	return message
}

// SetNotice only attaches to an existing session
func (s *Store) SetNotice(r *http.Request, message string) {
	token, session, ok := s.FromRequest(r)
	if !ok {
		return
	}
	session.Notice = message
	s.put(token, session)
}

func (s *Store) PopNotice(r *http.Request) string {
	token, session, ok := s.FromRequest(r)
	if !ok || session.Notice == "" {
		return ""
	}
	message := session.Notice
	session.Notice = ""
	s.put(token, session)
	return message
}

// redirects to the login page with a message when there is no logged in student
func (s *Store) EnsureLoggedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, session, ok := s.FromRequest(r)
		if !ok || !session.LoggedIn() {
			s.SetFlash(w, r, "Please log in to view the dashboard.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func FromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}
