package server_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/therapistsfriend/practice-server/clients"
)

func seedClient(t *testing.T, f *fixture, id, ownerID, lastName string) *clients.Client {
	t.Helper()
	client := &clients.Client{
		ID:        id,
		OwnerID:   ownerID,
		FirstName: "Alex",
		LastName:  lastName,
		Status:    clients.StatusActive,
	}
	require.NoError(t, f.clients.Create(client))
	return client
}

func TestClientsListHandler(t *testing.T) {
	f := newFixture(t, testConfig{})
	cookie := f.login(t, demoEmail, demoPassword)

	seedClient(t, f, "c-1", demoTenant, "Young")
	seedClient(t, f, "c-2", demoTenant, "Adams")
	seedClient(t, f, "c-3", otherTenant, "Baker")

	t.Run("scoped to the tenant, ordered by last name", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/clients", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		list := decodeBody[[]clients.Client](t, rec)
		require.Len(t, list, 2)
		require.Equal(t, "Adams", list[0].LastName)
		require.Equal(t, "Young", list[1].LastName)
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/clients", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestClientCreateHandler(t *testing.T) {
	f := newFixture(t, testConfig{})
	cookie := f.login(t, demoEmail, demoPassword)

	t.Run("stamps owner and defaults status", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/clients", map[string]string{
			"firstName": "Sam",
			"lastName":  "Porter",
			"email":     "sam@example.com",
		}, cookie)
		require.Equal(t, http.StatusCreated, rec.Code)

		created := decodeBody[clients.Client](t, rec)
		require.Equal(t, demoTenant, created.OwnerID)
		require.Equal(t, clients.StatusActive, created.Status)
		require.NotEmpty(t, created.ID)
	})

	t.Run("missing last name", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/clients", map[string]string{
			"firstName": "Sam",
		}, cookie)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClientInstanceHandlers(t *testing.T) {
	f := newFixture(t, testConfig{})
	cookie := f.login(t, demoEmail, demoPassword)

	mine := seedClient(t, f, "c-mine", demoTenant, "Reed")
	theirs := seedClient(t, f, "c-theirs", otherTenant, "Stone")

	t.Run("get own client", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/clients/"+mine.ID, nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("get cross-tenant client is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/clients/"+theirs.ID, nil, cookie)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.NotContains(t, rec.Body.String(), otherTenant)
	})

	t.Run("get unknown client", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/clients/no-such-id", nil, cookie)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		rec := f.do(t, http.MethodPatch, "/api/clients/"+mine.ID, map[string]string{
			"phone": "555-0101",
		}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeBody[clients.Client](t, rec)
		require.Equal(t, "555-0101", updated.Phone)
		require.Equal(t, "Reed", updated.LastName)
	})

	t.Run("update cross-tenant client is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/clients/"+theirs.ID, map[string]string{
			"phone": "555-0102",
		}, cookie)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete then get", func(t *testing.T) {
		victim := seedClient(t, f, "c-victim", demoTenant, "Vale")

		rec := f.do(t, http.MethodDelete, "/api/clients/"+victim.ID, nil, cookie)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = f.do(t, http.MethodGet, "/api/clients/"+victim.ID, nil, cookie)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
