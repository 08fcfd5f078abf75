package petfinder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/petscout/backend/config"
	"github.com/petscout/backend/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// errNotFound marks a 404 inside the executor; endpoint methods decide
// whether that means "absent" (single lookup) or a provider error.
var errNotFound = errors.New("resource not found")

// Client handles communication with the animal-listings provider API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      *TokenManager
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a new provider API client
func NewClient(cfg config.PetfinderConfig, logger zerolog.Logger) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	// The provider allows 50 requests per second with a 1000/day quota;
	// the limiter enforces the former, the caches keep us under the latter
	limiter := rate.NewLimiter(rate.Limit(50), 50)

	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		tokens:      NewTokenManager(cfg, httpClient, logger),
		rateLimiter: limiter,
		logger:      logger,
	}
}

// SearchAnimals returns animals matching the filter, in provider order
func (c *Client) SearchAnimals(ctx context.Context, filter domain.SearchFilter) ([]domain.Animal, error) {
	query := url.Values{}
	for name, value := range filter.QueryParams() {
		query.Set(name, value)
	}

	var payload animalsResponse
	if err := c.get(ctx, "/animals", query, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, &domain.APIError{Status: http.StatusNotFound}
		}
		return nil, err
	}

	animals := make([]domain.Animal, 0, len(payload.Animals))
	for i := range payload.Animals {
		animals = append(animals, mapAnimal(&payload.Animals[i]))
	}

	c.logger.Debug().Int("count", len(animals)).Str("filter", filter.CacheKey()).Msg("animal search completed")
	return animals, nil
}

// GetAnimal retrieves one animal by ID. A confirmed 404 from the provider
// is a valid "no such animal" outcome and returns (nil, nil).
func (c *Client) GetAnimal(ctx context.Context, id int64) (*domain.Animal, error) {
	var payload animalResponse
	if err := c.get(ctx, fmt.Sprintf("/animals/%d", id), nil, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, nil
		}
		return nil, err
	}

	animal := mapAnimal(&payload.Animal)
	return &animal, nil
}

// ListOrganizations returns listing organizations, optionally near a location
func (c *Client) ListOrganizations(ctx context.Context, location string) ([]domain.Organization, error) {
	query := url.Values{}
	if location != "" {
		query.Set("location", location)
	}

	var payload organizationsResponse
	if err := c.get(ctx, "/organizations", query, &payload); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, &domain.APIError{Status: http.StatusNotFound}
		}
		return nil, err
	}

	orgs := make([]domain.Organization, 0, len(payload.Organizations))
	for i := range payload.Organizations {
		orgs = append(orgs, mapOrganization(&payload.Organizations[i]))
	}

	return orgs, nil
}

// get executes an authenticated GET and decodes the 200 response into out.
// A 401 triggers exactly one forced token refresh and one retry; a second
// 401 surfaces as an AuthError. All other failures are classified here and
// nowhere else.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, path, query, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		c.logger.Debug().Str("path", path).Msg("token rejected, forcing refresh and retrying once")

		token, err = c.tokens.Refresh(ctx)
		if err != nil {
			return err
		}

		resp, err = c.do(ctx, path, query, token)
		if err != nil {
			return err
		}
		if resp.StatusCode == http.StatusUnauthorized {
			resp.Body.Close()
			return &domain.AuthError{Cause: errors.New("request unauthorized after forced token refresh")}
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("body", string(body)).
			Msg("provider request failed")
		return &domain.APIError{Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Garbage from the provider is a provider failure, not an
		// internal one; callers see the same taxonomy as any other
		// bad response
		return &domain.APIError{Status: resp.StatusCode, Cause: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// do builds and sends one bearer-authenticated request
func (c *Client) do(ctx context.Context, path string, query url.Values, token string) (*http.Response, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Cause: err}
	}

	return resp, nil
}
