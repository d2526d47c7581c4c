package serverauth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/Pjt727/studygroup/server/sessions"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

type fakeCredentials struct {
	credentials map[string]db.Credential
	err         error
}

func (f *fakeCredentials) AuthGetCredential(ctx context.Context, username string) (db.Credential, error) {
	if f.err != nil {
		return db.Credential{}, f.err
	}
	c, ok := f.credentials[username]
	if !ok {
		return db.Credential{}, pgx.ErrNoRows
	}
	return c, nil
}

func newTestRouter(t *testing.T, store CredentialStore) (http.Handler, *sessions.Store) {
	t.Helper()
	sessionStore := sessions.NewStore(time.Minute, false)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var r chi.Router = chi.NewRouter()
	PopulateAuthRoutes(&r, store, sessionStore, logger)
	return r, sessionStore
}

func credentialsFor(t *testing.T, username string, password string, studentID int32) *fakeCredentials {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeCredentials{credentials: map[string]db.Credential{
		username: {Username: username, EncryptedPassword: string(hash), StudentID: studentID},
	}}
}

func postLogin(router http.Handler, username string, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.RemoteAddr = "192.0.2.1:5555"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessions.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSuccess(t *testing.T) {
	router, sessionStore := newTestRouter(t, credentialsFor(t, "ada", "hunter2", 4))

	rec := postLogin(router, "ada", "hunter2")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	session, ok := sessionStore.Get(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, int32(4), session.StudentID)
	assert.Equal(t, "ada", session.Username)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name     string
		store    func(t *testing.T) *fakeCredentials
		username string
		password string
		flash    string
	}{
		{
			name:     "wrong password",
			store:    func(t *testing.T) *fakeCredentials { return credentialsFor(t, "ada", "hunter2", 4) },
			username: "ada",
			password: "nope",
			flash:    invalidLoginText,
		},
		{
			name:     "unknown user",
			store:    func(t *testing.T) *fakeCredentials { return credentialsFor(t, "ada", "hunter2", 4) },
			username: "ben",
			password: "hunter2",
			flash:    invalidLoginText,
		},
		{
			name:     "database down",
			store:    func(t *testing.T) *fakeCredentials { return &fakeCredentials{err: errors.New("connection refused")} },
			username: "ada",
			password: "hunter2",
			flash:    unexpectedLoginText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sessionStore := newTestRouter(t, tt.store(t))

			rec := postLogin(router, tt.username, tt.password)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))

			cookie := sessionCookie(rec)
			require.NotNil(t, cookie)
			session, ok := sessionStore.Get(cookie.Value)
			require.True(t, ok)
			assert.False(t, session.LoggedIn())
			assert.Equal(t, tt.flash, session.Flash)
		})
	}
}

func TestLoginViewShowsFlashOnce(t *testing.T) {
	router, _ := newTestRouter(t, credentialsFor(t, "ada", "hunter2", 4))
	cookie := sessionCookie(postLogin(router, "ada", "wrong"))
	require.NotNil(t, cookie)

	view := func() string {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var buf bytes.Buffer
		buf.ReadFrom(rec.Body)
		return buf.String()
	}
	assert.Contains(t, view(), invalidLoginText)
	assert.NotContains(t, view(), invalidLoginText)
}

func TestLogout(t *testing.T) {
	router, sessionStore := newTestRouter(t, credentialsFor(t, "ada", "hunter2", 4))
	cookie := sessionCookie(postLogin(router, "ada", "hunter2"))
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	_, ok := sessionStore.Get(cookie.Value)
	assert.False(t, ok)
}

func TestLoginLimiter(t *testing.T) {
	l := newLoginLimiter(rate.Every(time.Hour), 2)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.True(t, l.allow("b"))

	// idle visitors are forgotten
	now = now.Add(limiterIdleTime + time.Second)
	assert.True(t, l.allow("a"))
}
