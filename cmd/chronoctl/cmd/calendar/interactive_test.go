package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

const (
	sessionUserID = "5f41a0a4-4a52-4c2a-9d42-3f54f1b2a111"
	pendingInvID  = "77d7a8a2-2b3c-4d5e-9f60-1a2b3c4d5333"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		verb string
		arg  string
	}{
		{"next", "next", ""},
		{"  Quit  ", "quit", ""},
		{"accept " + pendingInvID, "accept", pendingInvID},
		{"Accept 77D7A8A2-2B3C-4D5E-9F60-1A2B3C4D5333", "accept", "77D7A8A2-2B3C-4D5E-9F60-1A2B3C4D5333"},
		{"", "", ""},
		{"   ", "", ""},
	}
	for _, tt := range tests {
		verb, arg := parseCommand(tt.line)
		assert.Equal(t, tt.verb, verb, "verb for %q", tt.line)
		assert.Equal(t, tt.arg, arg, "argument must keep its case for %q", tt.line)
	}
}

func TestRenderPendingInvitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]sdk.InvitationRecord{
			{ID: pendingInvID, EventTitle: "Offsite", InvitingUserName: "bob", Status: sdk.InvitationPending},
			{ID: sessionUserID, EventTitle: "Retro", InvitingUserName: "carol", Status: sdk.InvitationAccepted},
		})
	}))
	defer server.Close()

	invitations := sdk.NewInvitationSet(sdk.NewClient(server.URL), sessionUserID)
	require.NoError(t, invitations.Refresh(context.Background()))

	out := renderPendingInvitations(invitations)
	assert.Contains(t, out, pendingInvID, "pending ids must be visible so accept/decline can target them")
	assert.Contains(t, out, "Offsite")
	assert.NotContains(t, out, "Retro", "resolved invitations are not pending")

	empty := sdk.NewInvitationSet(sdk.NewClient(server.URL), sessionUserID)
	assert.Equal(t, "No pending invitations.\n", renderPendingInvitations(empty))
}

func TestSubmitEvent(t *testing.T) {
	start := time.Date(2025, time.May, 7, 8, 0, 0, 0, time.UTC)

	t.Run("invalid input mutates nothing and sends nothing", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		events := sdk.NewEventSet(client, sessionUserID)
		mutated, err := submitEvent(context.Background(), client, events, sdk.CreateEventInput{
			Title:     "Standup",
			StartTime: start,
			EndTime:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, sdk.ErrValidation)
		assert.False(t, mutated)
		assert.Zero(t, calls.Load())
	})

	t.Run("successful create reports the mutation and refreshes", func(t *testing.T) {
		var listCalls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				json.NewEncoder(w).Encode(sdk.EventRecord{ID: pendingInvID, Title: "Standup", StartTime: start, EndTime: start.Add(time.Hour)})
			case http.MethodGet:
				listCalls.Add(1)
				json.NewEncoder(w).Encode([]sdk.EventRecord{
					{ID: pendingInvID, Title: "Standup", StartTime: start, EndTime: start.Add(time.Hour)},
				})
			}
		}))
		defer server.Close()

		client := sdk.NewClient(server.URL)
		events := sdk.NewEventSet(client, sessionUserID)
		mutated, err := submitEvent(context.Background(), client, events, sdk.CreateEventInput{
			Title:     "Standup",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.True(t, mutated)
		assert.Equal(t, int32(1), listCalls.Load(), "the cache re-fetches after the confirmed create")
		assert.Equal(t, 1, events.Len())
	})
}

func TestInteractivePromptNamesEveryCommand(t *testing.T) {
	// The loop's own help line must advertise the in-view creation and
	// invitation listing it implements.
	for _, verb := range []string{"new", "invites", "accept", "decline", "delete", "refresh"} {
		assert.True(t, strings.Contains(interactivePrompt, verb), "prompt must mention %q", verb)
	}
}
