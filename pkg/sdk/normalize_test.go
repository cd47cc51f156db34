package sdk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUserList(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr bool
	}{
		{
			name: "bare array",
			body: `[{"id":"1","username":"alice"},{"id":"2","username":"bob"}]`,
			want: []string{"alice", "bob"},
		},
		{
			name: "data envelope",
			body: `{"data":[{"id":"1","username":"alice"}]}`,
			want: []string{"alice"},
		},
		{
			name: "users envelope",
			body: `{"users":[{"id":"1","username":"alice"},{"id":"2","username":"bob"}]}`,
			want: []string{"alice", "bob"},
		},
		{
			name: "empty bare array",
			body: `[]`,
			want: []string{},
		},
		{
			name:    "unrecognized envelope",
			body:    `{"result":[{"id":"1","username":"alice"}]}`,
			wantErr: true,
		},
		{
			name:    "scalar body",
			body:    `42`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := NormalizeUserList(json.RawMessage(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedShape)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(users))
			for _, user := range users {
				names = append(names, user.Username)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestNormalizeEventList(t *testing.T) {
	t.Run("data envelope", func(t *testing.T) {
		events, err := normalizeEventList(json.RawMessage(`{"data":[{"id":"e1","title":"Standup"}]}`))
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Standup", events[0].Title)
	})

	t.Run("bare array", func(t *testing.T) {
		events, err := normalizeEventList(json.RawMessage(`[{"id":"e1","title":"Standup"}]`))
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("object without collection", func(t *testing.T) {
		_, err := normalizeEventList(json.RawMessage(`{"id":"e1"}`))
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}

func TestNormalizeUser(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		user, err := normalizeUser(json.RawMessage(`{"id":"1","username":"alice","roles":[{"name":"ADMIN"}]}`))
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.True(t, user.IsAdmin())
	})

	t.Run("data envelope", func(t *testing.T) {
		user, err := normalizeUser(json.RawMessage(`{"data":{"id":"1","username":"alice"}}`))
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("record missing identity", func(t *testing.T) {
		_, err := normalizeUser(json.RawMessage(`{"email":"alice@example.com"}`))
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}
