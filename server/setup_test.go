package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	fakeclientrepo "github.com/therapistsfriend/practice-server/clients/repofake"
	fakenoterepo "github.com/therapistsfriend/practice-server/notes/repofake"
	"github.com/therapistsfriend/practice-server/server"
	"github.com/therapistsfriend/practice-server/sessions"
	fakesessionrepo "github.com/therapistsfriend/practice-server/sessions/repofake"
	"github.com/therapistsfriend/practice-server/users"
	fakeuserrepo "github.com/therapistsfriend/practice-server/users/repofake"
)

const (
	demoEmail    = "demo@therapistsfriend.com"
	demoPassword = "demo123"
	demoTenant   = "demo-user-id"

	otherTenant   = "therapist-b"
	otherEmail    = "jane.smith@therapistsfriend.com"
	otherPassword = "password123"
)

// testConfig satisfies config.Config with fixed values
type testConfig struct {
	env         string
	demoEnabled bool
}

func (c testConfig) GetPort() string            { return ":0" }
func (c testConfig) GetAppName() string         { return "Therapists Friend" }
func (c testConfig) GetDatabasePath() string    { return "" }
func (c testConfig) GetJWTSecret() string       { return "test-secret" }
func (c testConfig) GetCookieName() string      { return "tf-auth-token" }
func (c testConfig) GetTokenTTLSeconds() int    { return 86400 }
func (c testConfig) GetAcceptLegacyTokens() bool { return true }
func (c testConfig) GetDemoModeEnabled() bool   { return c.demoEnabled }

func (c testConfig) GetEnv() string {
	if c.env == "" {
		return "DEV"
	}
	return c.env
}

type fixture struct {
	srv      *server.Server
	users    *fakeuserrepo.FakeUserRepo
	sessions *fakesessionrepo.FakeSessionRepo
	clients  *fakeclientrepo.FakeClientRepo
	notes    *fakenoterepo.FakeNoteRepo
}

func newFixture(t *testing.T, cfg testConfig) *fixture {
	t.Helper()

	f := &fixture{
		users:    fakeuserrepo.NewFakeUserRepo(),
		sessions: fakesessionrepo.NewFakeSessionRepo(),
		clients:  fakeclientrepo.NewFakeClientRepo(),
		notes:    fakenoterepo.NewFakeNoteRepo(),
	}

	srv, err := server.New(cfg, server.Repos{
		Users:    f.users,
		Sessions: f.sessions,
		Clients:  f.clients,
		Notes:    f.notes,
	})
	require.NoError(t, err)
	f.srv = srv

	// A second therapist for cross-tenant checks
	require.NoError(t, f.users.Upsert(&users.User{
		ID:       otherTenant,
		Name:     "Jane Smith",
		Email:    otherEmail,
		Password: otherPassword,
		Role:     users.RoleTherapist,
	}))

	return f
}

func (f *fixture) seedSession(t *testing.T, id, ownerID string, start time.Time) *sessions.Session {
	t.Helper()
	session := &sessions.Session{
		ID:        id,
		OwnerID:   ownerID,
		ClientID:  "client-1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    sessions.StatusScheduled,
	}
	require.NoError(t, f.sessions.Create(session))
	return session
}

func (f *fixture) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) doWithHeader(t *testing.T, method, target, header, value string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(header, value)

	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, req)
	return rec
}

// login performs a real login round trip and returns the session cookie
func (f *fixture) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "tf-auth-token" {
			return cookie
		}
	}
	t.Fatal("login response did not set the auth cookie")
	return nil
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
