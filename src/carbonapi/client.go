// Package carbonapi is the HTTP client for the national carbon-intensity
// API. It returns strongly typed readings and fuel shares; all value
// selection and aggregation happen downstream.
package carbonapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

// DefaultBaseURL is the public production endpoint.
const DefaultBaseURL = "https://api.carbonintensity.org.uk"

// timeLayout is the provider's instant format (minutes resolution, UTC).
const timeLayout = "2006-01-02T15:04Z"

// Client fetches from one provider base URL with a bounded HTTP client.
// The zero Client is not usable; construct with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for baseURL (DefaultBaseURL when empty) with the given
// per-request timeout.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// Wire envelopes. The provider nests everything under "data"; intensity
// endpoints return a list of settlement periods, generation returns one
// current period.
type intensityEnvelope struct {
	Data []intensityEntry `json:"data"`
}

type intensityEntry struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Intensity intensityFields `json:"intensity"`
}

type intensityFields struct {
	Actual   *float64 `json:"actual"`
	Forecast *float64 `json:"forecast"`
}

type generationEnvelope struct {
	Data generationEntry `json:"data"`
}

type generationEntry struct {
	GenerationMix []fuelEntry `json:"generationmix"`
}

type fuelEntry struct {
	Fuel string  `json:"fuel"`
	Perc float64 `json:"perc"`
}

// CurrentIntensity returns the reading for the current settlement period.
func (c *Client) CurrentIntensity(ctx context.Context) (types.Reading, error) {
	var env intensityEnvelope
	if err := c.getJSON(ctx, "/intensity", &env); err != nil {
		return types.Reading{}, err
	}
	if len(env.Data) == 0 {
		return types.Reading{}, fmt.Errorf("intensity: empty data array")
	}
	return toReading(env.Data[0])
}

// IntensityRange returns readings with period start inside [from, to].
// The provider serves half-hourly periods in ascending order.
func (c *Client) IntensityRange(ctx context.Context, from, to time.Time) ([]types.Reading, error) {
	path := fmt.Sprintf("/intensity/%s/%s", from.UTC().Format(timeLayout), to.UTC().Format(timeLayout))
	var env intensityEnvelope
	if err := c.getJSON(ctx, path, &env); err != nil {
		return nil, err
	}
	readings := make([]types.Reading, 0, len(env.Data))
	for _, e := range env.Data {
		r, err := toReading(e)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// GenerationMix returns the current fuel percentage breakdown.
func (c *Client) GenerationMix(ctx context.Context) ([]types.FuelShare, error) {
	var env generationEnvelope
	if err := c.getJSON(ctx, "/generation", &env); err != nil {
		return nil, err
	}
	mix := make([]types.FuelShare, 0, len(env.Data.GenerationMix))
	for _, f := range env.Data.GenerationMix {
		mix = append(mix, types.FuelShare{Fuel: f.Fuel, Perc: f.Perc})
	}
	return mix, nil
}

func toReading(e intensityEntry) (types.Reading, error) {
	from, err := time.Parse(timeLayout, e.From)
	if err != nil {
		return types.Reading{}, fmt.Errorf("parse period start %q: %w", e.From, err)
	}
	return types.Reading{From: from, Actual: e.Intensity.Actual, Forecast: e.Intensity.Forecast}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	Debugf("GET %s -> %s in %s", url, resp.Status, time.Since(start).Round(time.Millisecond))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for a useful message, then bail.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("get %s: unexpected status %s: %s", url, resp.Status, snippet)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
