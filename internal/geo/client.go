package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"fan-globe/internal/models"
	"fan-globe/internal/observability"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
)

// DefaultBaseURL is the public Zippopotam.us endpoint.
const DefaultBaseURL = "https://api.zippopotam.us"

// Client resolves US postal codes with the Zippopotam.us API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[models.GeoPlace]
	metrics    *observability.Metrics
}

// NewClient creates a Zippopotam.us client. Five consecutive lookup
// failures open the breaker for thirty seconds; "not found" answers do not
// count as failures.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		breaker: gobreaker.NewCircuitBreaker[models.GeoPlace](gobreaker.Settings{
			Name:    "zippopotam",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrNotFound)
			},
		}),
		metrics: metrics,
	}
}

// Lookup performs a single remote resolution of zip. There are no retries.
func (c *Client) Lookup(ctx context.Context, zip string) (models.GeoPlace, error) {
	place, err := c.breaker.Execute(func() (models.GeoPlace, error) {
		return c.fetch(ctx, zip)
	})
	if err == nil || errors.Is(err, ErrNotFound) {
		return place, err
	}

	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return models.GeoPlace{}, err
	}
	// gobreaker.ErrOpenState / ErrTooManyRequests
	return models.GeoPlace{}, &LookupError{Zip: zip, Err: err}
}

func (c *Client) fetch(ctx context.Context, zip string) (models.GeoPlace, error) {
	u := fmt.Sprintf("%s/us/%s", c.baseURL, url.PathEscape(zip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.GeoPlace{}, &LookupError{Zip: zip, Err: fmt.Errorf("create request: %w", err)}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.GeocodeRemoteDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return models.GeoPlace{}, &LookupError{Zip: zip, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.GeoPlace{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.GeoPlace{}, &LookupError{Zip: zip, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return models.GeoPlace{}, &LookupError{Zip: zip, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(r.Places) == 0 {
		return models.GeoPlace{}, ErrNotFound
	}

	p := r.Places[0]
	return models.GeoPlace{
		City:  p.PlaceName,
		State: p.StateAbbreviation,
		Lat:   float64(p.Latitude),
		Lon:   float64(p.Longitude),
	}, nil
}

// Zippopotam.us response types.

type response struct {
	PostCode string  `json:"post code"`
	Country  string  `json:"country"`
	Places   []place `json:"places"`
}

type place struct {
	PlaceName         string     `json:"place name"`
	State             string     `json:"state"`
	StateAbbreviation string     `json:"state abbreviation"`
	Latitude          coordinate `json:"latitude"`
	Longitude         coordinate `json:"longitude"`
}

// coordinate accepts both quoted ("40.7484") and bare numeric values.
type coordinate float64

func (c *coordinate) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", b, err)
	}
	*c = coordinate(v)
	return nil
}
