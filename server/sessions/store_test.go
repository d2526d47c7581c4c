package sessions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", CookieName)
	return nil
}

func requestWith(cookie *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	return r
}

func TestStartAndGet(t *testing.T) {
	s := NewStore(time.Minute, false)
	rec := httptest.NewRecorder()
	s.Start(rec, requestWith(nil), Session{StudentID: 3, Username: "ada"})

	cookie := cookieFrom(t, rec)
	assert.True(t, cookie.HttpOnly)

	_, session, ok := s.FromRequest(requestWith(cookie))
	require.True(t, ok)
	assert.True(t, session.LoggedIn())
	assert.Equal(t, "ada", session.Username)
}

func TestStartRotatesToken(t *testing.T) {
	s := NewStore(time.Minute, false)
	rec := httptest.NewRecorder()
	s.SetFlash(rec, requestWith(nil), "hello")
	anonymous := cookieFrom(t, rec)

	rec = httptest.NewRecorder()
	s.Start(rec, requestWith(anonymous), Session{StudentID: 1})
	loggedIn := cookieFrom(t, rec)

	assert.NotEqual(t, anonymous.Value, loggedIn.Value)
	_, ok := s.Get(anonymous.Value)
	assert.False(t, ok)
}

func TestSessionsExpire(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Minute, false)
	s.now = func() time.Time { return current }

	rec := httptest.NewRecorder()
	token := s.Start(rec, requestWith(nil), Session{StudentID: 1})

	current = current.Add(50 * time.Second)
	_, ok := s.Get(token)
	require.True(t, ok)

	// the read above slid the expiry forward
	current = current.Add(50 * time.Second)
	_, ok = s.Get(token)
	require.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = s.Get(token)
	assert.False(t, ok)
}

func TestFlashIsReadOnce(t *testing.T) {
	s := NewStore(time.Minute, false)
	rec := httptest.NewRecorder()
	s.SetFlash(rec, requestWith(nil), "Invalid username or password.")
	cookie := cookieFrom(t, rec)

	assert.Equal(t, "Invalid username or password.", s.PopFlash(requestWith(cookie)))
	assert.Equal(t, "", s.PopFlash(requestWith(cookie)))
}

func TestEnd(t *testing.T) {
	s := NewStore(time.Minute, false)
	rec := httptest.NewRecorder()
	s.Start(rec, requestWith(nil), Session{StudentID: 1})
	cookie := cookieFrom(t, rec)

	rec = httptest.NewRecorder()
	s.End(rec, requestWith(cookie))
	assert.Equal(t, -1, cookieFrom(t, rec).MaxAge)
	_, ok := s.Get(cookie.Value)
	assert.False(t, ok)
}

func TestEnsureLoggedIn(t *testing.T) {
	s := NewStore(time.Minute, false)
	var seen Session
	protected := s.EnsureLoggedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, requestWith(nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "Please log in to view the dashboard.", s.PopFlash(requestWith(cookieFrom(t, rec))))

	rec = httptest.NewRecorder()
	s.Start(rec, requestWith(nil), Session{StudentID: 8, Username: "ben"})
	cookie := cookieFrom(t, rec)

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, requestWith(cookie))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(8), seen.StudentID)
}

func TestAnonymousSessionsAreShortLived(t *testing.T) {
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour, false)
	s.now = func() time.Time { return current }

	protected := s.EnsureLoggedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	for range 50 {
		protected.ServeHTTP(httptest.NewRecorder(), requestWith(nil))
	}
	assert.Equal(t, 50, s.Len())

	rec := httptest.NewRecorder()
	token := s.Start(rec, requestWith(nil), Session{StudentID: 1})

	current = current.Add(anonymousTTL + time.Second)
	_, ok := s.Get(token)
	require.True(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestPopFlashDropsAnonymousSession(t *testing.T) {
	s := NewStore(time.Hour, false)
	rec := httptest.NewRecorder()
	s.SetFlash(rec, requestWith(nil), "Please log in to view the dashboard.")
	cookie := cookieFrom(t, rec)
	require.Equal(t, 1, s.Len())

	assert.Equal(t, "Please log in to view the dashboard.", s.PopFlash(requestWith(cookie)))
	assert.Equal(t, 0, s.Len())
}

func TestNoticeIsReadOnce(t *testing.T) {
	s := NewStore(time.Minute, false)

	s.SetNotice(requestWith(nil), "Profile saved.")
	assert.Equal(t, 0, s.Len())

	rec := httptest.NewRecorder()
	s.Start(rec, requestWith(nil), Session{StudentID: 2})
	cookie := cookieFrom(t, rec)

	s.SetNotice(requestWith(cookie), "Profile saved.")
	assert.Equal(t, "Profile saved.", s.PopNotice(requestWith(cookie)))
	assert.Equal(t, "", s.PopNotice(requestWith(cookie)))
	_, session, ok := s.FromRequest(requestWith(cookie))
	require.True(t, ok)
	assert.True(t, session.LoggedIn())
}
