package petfinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/petscout/backend/config"
	"github.com/petscout/backend/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const (
	tokenPath = "/oauth2/token"

	// mockToken is the sentinel handed out when no credentials are
	// configured. It never reaches the network.
	mockToken = "mock-access-token"

	// expirySkew treats tokens as expired slightly early so a token
	// cannot lapse between the validity check and the request
	expirySkew = 30 * time.Second
)

// tokenResponse is the provider's client-credentials grant response
type tokenResponse struct {
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccessToken string `json:"access_token"`
}

// TokenManager acquires and caches a bearer token for the listings
// provider. Concurrent refreshes are coalesced: however many callers need
// a token while none is cached, exactly one grant request goes out and
// every caller receives its result, success or failure alike.
type TokenManager struct {
	cfg        config.PetfinderConfig
	httpClient *http.Client
	logger     zerolog.Logger

	group singleflight.Group

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

// NewTokenManager creates a token manager sharing the client's HTTP transport
func NewTokenManager(cfg config.PetfinderConfig, httpClient *http.Client, logger zerolog.Logger) *TokenManager {
	return &TokenManager{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger,
		now:        time.Now,
	}
}

// Token returns a valid access token, fetching one only when the cached
// token is absent or expired.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if !m.cfg.HasCredentials() {
		return mockToken, nil
	}

	m.mu.Lock()
	if m.accessToken != "" && m.now().Before(m.expiresAt) {
		token := m.accessToken
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	return m.refresh(ctx)
}

// Refresh discards the cached token and fetches a new one. Used after the
// provider rejects a request with 401.
func (m *TokenManager) Refresh(ctx context.Context) (string, error) {
	if !m.cfg.HasCredentials() {
		return mockToken, nil
	}

	m.Invalidate()
	return m.refresh(ctx)
}

// Invalidate drops the cached token without fetching a replacement
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	m.accessToken = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
}

// refresh funnels all callers through one in-flight grant request. A
// caller arriving while a request is already out subscribes to that
// request's result rather than starting another.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	v, err, shared := m.group.Do("token", func() (interface{}, error) {
		// The grant request serves every coalesced waiter, so it must
		// not die with whichever caller happened to start it. The HTTP
		// client timeout still bounds the detached request.
		return m.fetchToken(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	if shared {
		m.logger.Debug().Msg("token refresh coalesced with in-flight request")
	}
	return v.(string), nil
}

// fetchToken issues the client-credentials grant and caches the result
func (m *TokenManager) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.cfg.ClientID)
	form.Set("client_secret", m.cfg.ClientSecret)

	endpoint := strings.TrimSuffix(m.cfg.BaseURL, "/") + tokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", &domain.NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		m.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("token endpoint rejected the grant")
		return "", &domain.AuthError{Cause: fmt.Errorf("token endpoint returned status %d", resp.StatusCode)}
	}

	var grant tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&grant); err != nil {
		return "", &domain.AuthError{Cause: fmt.Errorf("failed to decode token response: %w", err)}
	}

	lifetime := time.Duration(grant.ExpiresIn) * time.Second
	m.mu.Lock()
	m.accessToken = grant.AccessToken
	m.expiresAt = m.now().Add(lifetime - expirySkew)
	m.mu.Unlock()

	m.logger.Debug().Dur("lifetime", lifetime).Msg("obtained provider token")
	return grant.AccessToken, nil
}
