package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the client-held credential/identity tuple. It is owned by the
// session store; views read copies and mutate only through Load/Save/Clear.
type Session struct {
	Token    string `json:"authToken"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Authenticated reports whether the session carries both a token and a user
// id. One without the other never counts as authenticated.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

// Partial reports whether exactly one of token and user id is present, which
// indicates a corrupt store rather than a logged-out state.
func (s Session) Partial() bool {
	return (s.Token != "") != (s.UserID != "")
}

// TokenExpiry extracts the expiry claim from the bearer token without
// verifying the signature; the backend is the authority on validity, this is
// only for local expiry checks and display.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenExpired reports whether the token carries an expiry claim in the past.
// Tokens without a readable expiry are not treated as expired.
func TokenExpired(token string) bool {
	exp, ok := TokenExpiry(token)
	return ok && time.Now().After(exp)
}

// SessionStore persists the session across process runs.
type SessionStore interface {
	// Load reads the persisted session. A missing store yields a zero
	// Session and no error; that state means "unauthenticated".
	Load() (Session, error)
	// Save replaces the persisted session.
	Save(Session) error
	// Clear removes the persisted session. Clearing an empty store is a
	// no-op.
	Clear() error
}
