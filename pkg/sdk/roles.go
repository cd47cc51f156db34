package sdk

import (
	"context"
	"sync"
)

// Resolution is the authorization level derived from a fresh user fetch.
type Resolution struct {
	IsAdmin bool
	User    *UserRecord
}

// RoleResolver derives the caller's authorization level from the backend.
// isAdmin is never trusted from local state across identity changes; it is
// always recomputed from a fetched UserRecord.
//
// A resolver is bound to one identity at a time. Resolutions are tagged with
// the identity they were computed for, and a resolution that completes after
// the identity changed again is discarded instead of overwriting the cache.
type RoleResolver struct {
	client *Client

	mu     sync.Mutex
	token  string
	userID string
	cached *Resolution
}

// NewRoleResolver constructs a resolver using the given client for fetches.
func NewRoleResolver(client *Client) *RoleResolver {
	return &RoleResolver{client: client}
}

// Bind points the resolver at a session's identity, dropping any cached
// resolution when the identity differs. Call it whenever the session's token
// or user id may have changed.
func (r *RoleResolver) Bind(session Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.token != session.Token || r.userID != session.UserID {
		r.token = session.Token
		r.userID = session.UserID
		r.cached = nil
	}
}

// Cached returns the committed resolution for the bound identity, if any.
func (r *RoleResolver) Cached() (Resolution, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached == nil {
		return Resolution{}, false
	}
	return *r.cached, true
}

// Resolve computes the authorization level for the session. An
// unauthenticated session resolves to a non-admin with no network call.
// The result is cached only when the resolver is still bound to the same
// identity by the time the fetch completes.
func (r *RoleResolver) Resolve(ctx context.Context, session Session) (Resolution, error) {
	if !session.Authenticated() {
		return Resolution{}, nil
	}

	r.mu.Lock()
	if r.token == session.Token && r.userID == session.UserID && r.cached != nil {
		cached := *r.cached
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	user, err := r.client.GetUser(ctx, session.UserID)
	if err != nil {
		return Resolution{}, err
	}
	resolution := Resolution{IsAdmin: user.IsAdmin(), User: user}

	r.mu.Lock()
	if r.token == session.Token && r.userID == session.UserID {
		committed := resolution
		r.cached = &committed
	}
	r.mu.Unlock()

	return resolution, nil
}
