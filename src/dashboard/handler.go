package dashboard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/FrankTaylorLieder/carbon-vibe/src/aggregate"
	"github.com/FrankTaylorLieder/carbon-vibe/src/carbonapi"
	"github.com/FrankTaylorLieder/carbon-vibe/src/chartlayout"
	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

// Fetcher is the slice of the provider client the dashboard needs. Narrow so
// tests can stub it.
type Fetcher interface {
	CurrentIntensity(ctx context.Context) (types.Reading, error)
	IntensityRange(ctx context.Context, from, to time.Time) ([]types.Reading, error)
	GenerationMix(ctx context.Context) ([]types.FuelShare, error)
}

// Handler serves the dashboard page, fetching fresh data on every request.
// A failed feed degrades to an empty chart / zero headline rather than an
// error page, so partial provider outages still render.
type Handler struct {
	Fetch Fetcher
	// HistoryHours is how far back (and forward, for forecast periods) the
	// series chart reaches. Defaults to 12.
	HistoryHours int
	// Now is the clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewHandler returns a Handler over f with default window and clock.
func NewHandler(f Fetcher) *Handler {
	return &Handler{Fetch: f, HistoryHours: 12, Now: time.Now}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	now := h.Now().UTC()
	hours := h.HistoryHours
	if hours <= 0 {
		hours = 12
	}

	var (
		wg      sync.WaitGroup
		current types.Reading
		window  []types.Reading
		mix     []types.FuelShare
	)
	// the three feeds are independent; fetch them in parallel
	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if current, err = h.Fetch.CurrentIntensity(r.Context()); err != nil {
			carbonapi.Warnf("current intensity fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		from := now.Add(-time.Duration(hours) * time.Hour)
		to := now.Add(time.Duration(hours) * time.Hour)
		if window, err = h.Fetch.IntensityRange(r.Context(), from, to); err != nil {
			carbonapi.Warnf("intensity range fetch failed: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if mix, err = h.Fetch.GenerationMix(r.Context()); err != nil {
			carbonapi.Warnf("generation mix fetch failed: %v", err)
		}
	}()
	wg.Wait()

	headline := aggregate.Resolve(current, 0)

	pieCfg := chartlayout.DefaultPieConfig()
	categories := make([]chartlayout.Category, 0, len(mix))
	for _, f := range mix {
		categories = append(categories, chartlayout.Category{Name: f.Fuel, Percent: f.Perc})
	}
	pieSVG := RenderPie(chartlayout.Pie(categories, pieCfg), pieCfg)

	seriesCfg := chartlayout.DefaultSeriesConfig()
	points := seriesPoints(aggregate.Hourly(window, 0), now)
	seriesSVG := RenderSeries(chartlayout.Series(points, seriesCfg, now), seriesCfg)

	carbonapi.Infof("dashboard render: intensity=%.0f mix_items=%d series_points=%d", headline, len(mix), len(points))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(RenderPage(headline, pieSVG, RenderLegend(mix), seriesSVG)))
}

// seriesPoints converts hourly aggregates to series points, marking hours
// that start after the current hour as provisional (forecast-only).
func seriesPoints(agg []aggregate.Point, now time.Time) []chartlayout.SeriesPoint {
	currentHour := now.UTC().Truncate(time.Hour)
	pts := make([]chartlayout.SeriesPoint, 0, len(agg))
	for _, p := range agg {
		pts = append(pts, chartlayout.SeriesPoint{
			Time:        p.Hour,
			Value:       p.Mean,
			Provisional: p.Hour.After(currentHour),
		})
	}
	return pts
}
