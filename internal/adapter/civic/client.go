package civic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/event-manager/internal/config"
	"github.com/couchcryptid/event-manager/internal/domain"
	"github.com/couchcryptid/event-manager/internal/observability"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
)

// Roles requested from the directory: both chambers of the national legislature.
var legislatorRoles = []string{"legislatorUpperBody", "legislatorLowerBody"}

// Client implements domain.RepresentativeLookup using the civic information
// directory's representatives-by-address endpoint.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a civic directory client from the CIVIC_* settings.
func NewClient(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		apiKey: cfg.CivicAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.CivicTimeout,
		},
		baseURL: cfg.CivicBaseURL,
		limiter: newLimiter(cfg.CivicRateLimit),
		metrics: metrics,
		logger:  logger,
	}
}

// newLimiter allows rps requests per second; zero or less means unlimited.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// LegislatorsByZipcode returns the national upper and lower body legislators
// for a zipcode. An empty list is a valid answer.
func (c *Client) LegislatorsByZipcode(ctx context.Context, zipcode string) ([]domain.Official, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		c.metrics.LookupRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{
		"address": {zipcode},
		"levels":  {"country"},
		"roles":   legislatorRoles,
	}
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	officials, err := c.doRequest(ctx, c.baseURL+"/representatives?"+params.Encode())
	switch {
	case err != nil:
		c.metrics.LookupRequests.WithLabelValues("error").Inc()
	case len(officials) == 0:
		c.metrics.LookupRequests.WithLabelValues("empty").Inc()
	default:
		c.metrics.LookupRequests.WithLabelValues("success").Inc()
	}
	return officials, err
}

func (c *Client) doRequest(ctx context.Context, fullURL string) ([]domain.Official, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.LookupAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("representatives request: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("civic API error: %w", err)
	}

	var civicResp response
	if err := json.NewDecoder(resp.Body).Decode(&civicResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("representatives resolved",
		"officials", len(civicResp.Officials),
		"normalized_zip", civicResp.NormalizedInput.Zip,
	)

	officials := make([]domain.Official, 0, len(civicResp.Officials))
	for _, o := range civicResp.Officials {
		officials = append(officials, domain.Official{
			Name:     o.Name,
			Party:    o.Party,
			Phones:   o.Phones,
			URLs:     o.URLs,
			Emails:   o.Emails,
			PhotoURL: o.PhotoURL,
		})
	}
	return officials, nil
}

// Civic information API response types.

type response struct {
	NormalizedInput address    `json:"normalizedInput"`
	Officials       []official `json:"officials"`
}

type address struct {
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

type official struct {
	Name     string   `json:"name"`
	Party    string   `json:"party"`
	Phones   []string `json:"phones"`
	URLs     []string `json:"urls"`
	Emails   []string `json:"emails"`
	PhotoURL string   `json:"photoUrl"`
}
