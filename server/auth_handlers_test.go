package server_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	f := newFixture(t, testConfig{})

	t.Run("valid credentials", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    demoEmail,
			"password": demoPassword,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[map[string]json.RawMessage](t, rec)
		require.Contains(t, body, "token")
		require.Contains(t, body, "user")
		require.NotContains(t, rec.Body.String(), demoPassword)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "tf-auth-token", cookies[0].Name)
		require.True(t, cookies[0].HttpOnly)
		require.Equal(t, 86400, cookies[0].MaxAge)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    demoEmail,
			"password": "nope",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("unknown email gets the same message", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": demoPassword,
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		body := decodeBody[map[string]string](t, rec)
		require.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/login", "not-an-object")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionCheckHandler(t *testing.T) {
	f := newFixture(t, testConfig{})

	t.Run("round trip preserves identity fields", func(t *testing.T) {
		cookie := f.login(t, demoEmail, demoPassword)

		rec := f.do(t, http.MethodGet, "/api/auth/session", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody[map[string]map[string]string](t, rec)
		require.Equal(t, "1", body["user"]["id"])
		require.Equal(t, demoEmail, body["user"]["email"])
		require.Equal(t, "therapist", body["user"]["role"])
		require.Equal(t, "Demo User", body["user"]["name"])
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/auth/session", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired legacy token", func(t *testing.T) {
		blob, err := json.Marshal(map[string]any{
			"id":  "1",
			"exp": time.Now().Add(-time.Hour).UnixMilli(),
		})
		require.NoError(t, err)
		cookie := &http.Cookie{Name: "tf-auth-token", Value: base64.StdEncoding.EncodeToString(blob)}

		rec := f.do(t, http.MethodGet, "/api/auth/session", nil, cookie)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid legacy token", func(t *testing.T) {
		blob, err := json.Marshal(map[string]any{
			"id":    "1",
			"name":  "Demo User",
			"email": demoEmail,
			"role":  "therapist",
			"exp":   time.Now().Add(time.Hour).UnixMilli(),
		})
		require.NoError(t, err)
		cookie := &http.Cookie{Name: "auth_token", Value: base64.StdEncoding.EncodeToString(blob)}

		rec := f.do(t, http.MethodGet, "/api/auth/session", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogoutHandler(t *testing.T) {
	f := newFixture(t, testConfig{})

	t.Run("clears the cookie", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, "tf-auth-token", cookies[0].Name)
		require.Equal(t, "/", cookies[0].Path)
		require.Less(t, cookies[0].MaxAge, 0)
	})

	t.Run("GET accepted for compatibility", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/auth/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
