package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

const providerUserID = "5f41a0a4-4a52-4c2a-9d42-3f54f1b2a111"

// memStore is an in-memory sdk.SessionStore for provider tests.
type memStore struct {
	session sdk.Session
	loads   atomic.Int32
}

func (m *memStore) Load() (sdk.Session, error) {
	m.loads.Add(1)
	return m.session, nil
}

func (m *memStore) Save(session sdk.Session) error {
	m.session = session
	return nil
}

func (m *memStore) Clear() error {
	m.session = sdk.Session{}
	return nil
}

func expiredToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": providerUserID,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestProviderSDK(t *testing.T) {
	t.Run("no session fails before any network use", func(t *testing.T) {
		provider := NewProvider("http://127.0.0.1:1", &memStore{})
		_, err := provider.SDK()
		assert.ErrorIs(t, err, sdk.ErrUnauthenticated)
	})

	t.Run("expired token is refused", func(t *testing.T) {
		store := &memStore{session: sdk.Session{Token: expiredToken(t), UserID: providerUserID}}
		provider := NewProvider("http://127.0.0.1:1", store)
		_, err := provider.SDK()
		assert.ErrorIs(t, err, sdk.ErrUnauthenticated)
	})

	t.Run("requests carry the session bearer token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]sdk.UserRecord{})
		}))
		defer server.Close()

		store := &memStore{session: sdk.Session{Token: "tok-abc", UserID: providerUserID}}
		provider := NewProvider(server.URL, store)

		apiClient, err := provider.SDK()
		require.NoError(t, err)
		_, err = apiClient.ListUsers(context.Background())
		require.NoError(t, err)
	})

	t.Run("ephemeral bearer token bypasses the store", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer ci-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]sdk.UserRecord{})
		}))
		defer server.Close()

		store := &memStore{}
		provider := NewProvider(server.URL, store)
		provider.SetBearerToken("ci-token")

		apiClient, err := provider.SDK()
		require.NoError(t, err)
		_, err = apiClient.ListUsers(context.Background())
		require.NoError(t, err)
		assert.Zero(t, store.loads.Load(), "the store must not be consulted")
	})
}

func TestProviderSessionCaching(t *testing.T) {
	store := &memStore{session: sdk.Session{Token: "tok", UserID: providerUserID, Username: "alice"}}
	provider := NewProvider("http://127.0.0.1:1", store)

	first, err := provider.Session()
	require.NoError(t, err)
	assert.Equal(t, "alice", first.Username)

	// A store change is invisible until Refresh drops the cache.
	store.session.Username = "renamed"
	cached, err := provider.Session()
	require.NoError(t, err)
	assert.Equal(t, "alice", cached.Username)
	assert.Equal(t, int32(1), store.loads.Load())

	provider.Refresh()
	reloaded, err := provider.Session()
	require.NoError(t, err)
	assert.Equal(t, "renamed", reloaded.Username)
}

func TestProviderRequireAdmin(t *testing.T) {
	userServer := func(roles ...string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sdk.UserRecord{ID: providerUserID, Username: "alice"}
			for _, name := range roles {
				user.Roles = append(user.Roles, sdk.Role{Name: name})
			}
			json.NewEncoder(w).Encode(user)
		}))
	}

	t.Run("admin passes", func(t *testing.T) {
		server := userServer("USER", "ADMIN")
		defer server.Close()

		store := &memStore{session: sdk.Session{Token: "tok", UserID: providerUserID}}
		provider := NewProvider(server.URL, store)
		assert.NoError(t, provider.RequireAdmin(context.Background()))
	})

	t.Run("non-admin is rejected", func(t *testing.T) {
		server := userServer("USER")
		defer server.Close()

		store := &memStore{session: sdk.Session{Token: "tok", UserID: providerUserID}}
		provider := NewProvider(server.URL, store)
		err := provider.RequireAdmin(context.Background())
		assert.ErrorIs(t, err, sdk.ErrUnauthorized)
	})

	t.Run("unauthenticated is distinguished from unauthorized", func(t *testing.T) {
		provider := NewProvider("http://127.0.0.1:1", &memStore{})
		err := provider.RequireAdmin(context.Background())
		assert.True(t, IsUnauthenticated(err))
	})
}
