package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

const (
	testUserID  = "5f41a0a4-4a52-4c2a-9d42-3f54f1b2a111"
	testEventID = "0b0d5a1e-9c1d-4a4c-8f34-2a1be6f3c222"
	testInvID   = "77d7a8a2-2b3c-4d5e-9f60-1a2b3c4d5333"
)

func TestClientLogin(t *testing.T) {
	t.Run("success returns credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/auth/login", r.URL.Path)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "alice", payload["username"])

			json.NewEncoder(w).Encode(map[string]string{
				"accessToken": "tok-123",
				"id":          testUserID,
				"username":    "alice",
			})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		result, err := client.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok-123", result.AccessToken)
		assert.Equal(t, testUserID, result.ID)
		assert.Equal(t, "alice", result.Username)
	})

	t.Run("401 maps to invalid credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, sdk.ErrInvalidCredentials)
	})

	t.Run("transport failure maps to network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Login(context.Background(), "alice", "secret")
		assert.ErrorIs(t, err, sdk.ErrNetwork)
	})

	t.Run("empty fields are rejected locally", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Login(context.Background(), "", "")
		assert.ErrorIs(t, err, sdk.ErrValidation)
		assert.Zero(t, calls.Load(), "no request should be issued")
	})
}

func TestClientRegister(t *testing.T) {
	conflictServer := func(message string, status int) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"message": message})
		}))
	}

	t.Run("duplicate username discriminated by message", func(t *testing.T) {
		server := conflictServer("Username already exists", http.StatusConflict)
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Register(context.Background(), "alice", "alice@example.com", "secret")
		assert.ErrorIs(t, err, sdk.ErrDuplicateUsername)
	})

	t.Run("duplicate email discriminated even on 401", func(t *testing.T) {
		// One backend revision answers a duplicate email with 401.
		server := conflictServer("Email already registered", http.StatusUnauthorized)
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Register(context.Background(), "alice", "alice@example.com", "secret")
		assert.ErrorIs(t, err, sdk.ErrDuplicateEmail)
	})

	t.Run("missing fields fail before any request", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.Register(context.Background(), "alice", "", "secret")
		assert.ErrorIs(t, err, sdk.ErrValidation)
		assert.Zero(t, calls.Load())
	})
}

func TestClientCreateEvent(t *testing.T) {
	start := time.Date(2025, time.May, 7, 8, 15, 0, 0, time.UTC)

	t.Run("invalid time range never reaches the network", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.CreateEvent(context.Background(), sdk.CreateEventInput{
			Title:     "Standup",
			StartTime: start,
			EndTime:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, sdk.ErrValidation)
		assert.Zero(t, calls.Load(), "no request should be issued for a bad range")
	})

	t.Run("valid event is posted and decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/event", r.URL.Path)
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "Standup", payload["title"])

			json.NewEncoder(w).Encode(sdk.EventRecord{
				ID:        testEventID,
				Title:     "Standup",
				StartTime: start,
				EndTime:   start.Add(time.Hour),
			})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		created, err := client.CreateEvent(context.Background(), sdk.CreateEventInput{
			Title:     "Standup",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, testEventID, created.ID)
	})
}

func TestClientListEvents(t *testing.T) {
	early := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.May, 9, 9, 0, 0, 0, time.UTC)

	t.Run("sorted most recent first, data envelope unwrapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/event/"+testUserID+"/event", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"data": []sdk.EventRecord{
				{ID: "a", Title: "early", StartTime: early, EndTime: early},
				{ID: "b", Title: "late", StartTime: late, EndTime: late},
			}})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		events, err := client.ListEvents(context.Background(), testUserID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "late", events[0].Title)
		assert.Equal(t, "early", events[1].Title)
	})

	t.Run("malformed user id fails locally", func(t *testing.T) {
		client := sdk.NewClient("http://127.0.0.1:1")
		_, err := client.ListEvents(context.Background(), "not-a-uuid")
		assert.ErrorIs(t, err, sdk.ErrValidation)
	})
}

func TestClientDeleteEvent(t *testing.T) {
	t.Run("gone id surfaces as not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "no such event"})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		err := client.DeleteEvent(context.Background(), testEventID)
		assert.ErrorIs(t, err, sdk.ErrNotFound)
	})
}

func TestClientUpdateUser(t *testing.T) {
	t.Run("password field omitted when unchanged", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			_, hasPassword := payload["password"]
			assert.False(t, hasPassword, "unchanged password must be omitted, not sent empty")

			json.NewEncoder(w).Encode(sdk.UserRecord{ID: testUserID, Username: "alice", Email: "alice@example.com"})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.UpdateUser(context.Background(), testUserID, sdk.UpdateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
		})
		require.NoError(t, err)
	})

	t.Run("password field present when set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "hunter2", payload["password"])

			json.NewEncoder(w).Encode(sdk.UserRecord{ID: testUserID, Username: "alice", Email: "alice@example.com"})
		}))
		defer server.Close()

		password := "hunter2"
		client := sdk.NewClient(server.URL)
		_, err := client.UpdateUser(context.Background(), testUserID, sdk.UpdateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: &password,
		})
		require.NoError(t, err)
	})

	t.Run("409 maps to conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"message": "username taken"})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.UpdateUser(context.Background(), testUserID, sdk.UpdateUserInput{
			Username: "alice",
			Email:    "alice@example.com",
		})
		assert.ErrorIs(t, err, sdk.ErrConflict)
	})
}

func TestClientUpdateInvitationStatus(t *testing.T) {
	t.Run("only terminal transitions are sent", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		_, err := client.UpdateInvitationStatus(context.Background(), testInvID, testEventID, testUserID, sdk.InvitationPending)
		assert.ErrorIs(t, err, sdk.ErrValidation)
		assert.Zero(t, calls.Load())
	})

	t.Run("accept carries the full payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/invitations/"+testInvID, r.URL.Path)
			assert.Equal(t, http.MethodPut, r.Method)

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, testInvID, payload["id"])
			assert.Equal(t, testEventID, payload["eventId"])
			assert.Equal(t, testUserID, payload["userId"])
			assert.Equal(t, string(sdk.InvitationAccepted), payload["status"])

			json.NewEncoder(w).Encode(sdk.InvitationRecord{
				ID: testInvID, EventID: testEventID, UserID: testUserID, Status: sdk.InvitationAccepted,
			})
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		updated, err := client.UpdateInvitationStatus(context.Background(), testInvID, testEventID, testUserID, sdk.InvitationAccepted)
		require.NoError(t, err)
		assert.Equal(t, sdk.InvitationAccepted, updated.Status)
	})
}
