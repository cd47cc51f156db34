package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"

	"github.com/JSebastianPaezSalesianoDev/Chrono-sDiary-Front/pkg/sdk"
)

// Provider yields the session, authenticated HTTP and SDK clients, and the
// role resolver backing every chronoctl view. The session is cached behind
// sync.Once for the life of the process; Refresh drops the cache after any
// operation that may have changed the persisted identity.
type Provider struct {
	serverURL   string
	store       sdk.SessionStore
	bearerToken string // ephemeral token that bypasses the session store (for testing)

	mu        sync.Mutex
	loaded    bool
	session   sdk.Session
	loadErr   error
	authedCli *http.Client
	authedSDK *sdk.Client
	resolver  *sdk.RoleResolver
}

// NewProvider constructs a Provider bound to the given server URL and store.
func NewProvider(serverURL string, store sdk.SessionStore) *Provider {
	return &Provider{serverURL: serverURL, store: store}
}

// SetBearerToken injects an ephemeral bearer token for testing/CI; the
// session store is not consulted while it is set.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// Store exposes the session store for commands that persist or clear the
// session themselves (login, logout, self profile update).
func (p *Provider) Store() sdk.SessionStore {
	return p.store
}

// ServerURL returns the configured backend base URL.
func (p *Provider) ServerURL() string {
	return p.serverURL
}

// Session returns the cached session, loading it from the store on first use.
// A zero session with nil error means "not logged in".
func (p *Provider) Session() (sdk.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionLocked()
}

func (p *Provider) sessionLocked() (sdk.Session, error) {
	if !p.loaded {
		p.session, p.loadErr = p.store.Load()
		p.loaded = true
	}
	return p.session, p.loadErr
}

// Refresh drops every identity-derived cache so the next use re-reads the
// store. Call it after login, logout, or a self profile update.
func (p *Provider) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	p.session = sdk.Session{}
	p.loadErr = nil
	p.authedCli = nil
	p.authedSDK = nil
	p.resolver = nil
}

// AnonymousSDK returns an SDK client without credentials, for login,
// registration and password reset.
func (p *Provider) AnonymousSDK() *sdk.Client {
	return sdk.NewClient(p.serverURL)
}

// SDK returns an SDK client whose requests carry the session's bearer token.
// It fails with sdk.ErrUnauthenticated before any network use when no session
// exists, and refuses visibly expired tokens.
func (p *Provider) SDK() (*sdk.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.authedSDK != nil {
		return p.authedSDK, nil
	}

	httpClient, err := p.httpClientLocked()
	if err != nil {
		return nil, err
	}
	p.authedSDK = sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient))
	return p.authedSDK, nil
}

func (p *Provider) httpClientLocked() (*http.Client, error) {
	if p.authedCli != nil {
		return p.authedCli, nil
	}

	accessToken := p.bearerToken
	if accessToken == "" {
		session, err := p.sessionLocked()
		if err != nil {
			return nil, err
		}
		if !session.Authenticated() {
			return nil, fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}
		if sdk.TokenExpired(session.Token) {
			return nil, fmt.Errorf("%w: access token expired, please run `chronoctl auth login`", sdk.ErrUnauthenticated)
		}
		accessToken = session.Token
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	p.authedCli = oauth2.NewClient(context.Background(), source)
	return p.authedCli, nil
}

// Role resolves the caller's authorization level from a fresh user fetch,
// caching per identity via the role resolver.
func (p *Provider) Role(ctx context.Context) (sdk.Resolution, error) {
	session, err := p.Session()
	if err != nil {
		return sdk.Resolution{}, err
	}
	if !session.Authenticated() {
		return sdk.Resolution{}, nil
	}

	apiClient, err := p.SDK()
	if err != nil {
		return sdk.Resolution{}, err
	}

	p.mu.Lock()
	if p.resolver == nil {
		p.resolver = sdk.NewRoleResolver(apiClient)
	}
	resolver := p.resolver
	p.mu.Unlock()

	resolver.Bind(session)
	return resolver.Resolve(ctx, session)
}

// RequireAdmin fails unless the caller resolves to an administrator. The
// check is a local gate only; the backend still enforces authorization.
func (p *Provider) RequireAdmin(ctx context.Context) error {
	resolution, err := p.Role(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve role: %w", err)
	}
	if resolution.User == nil {
		return fmt.Errorf("%w: please run `chronoctl auth login`", sdk.ErrUnauthenticated)
	}
	if !resolution.IsAdmin {
		return fmt.Errorf("%w: this action requires the %s role", sdk.ErrUnauthorized, sdk.AdminRoleName)
	}
	return nil
}

// IsUnauthenticated reports whether err is the missing-session condition.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, sdk.ErrUnauthenticated)
}
