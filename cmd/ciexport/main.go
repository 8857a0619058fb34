// ciexport renders the hourly intensity series and the current generation mix
// to PNG files, using the same aggregation and layout core as the dashboard.
// Useful for embedding charts in reports without running the server.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/FrankTaylorLieder/carbon-vibe/src/aggregate"
	"github.com/FrankTaylorLieder/carbon-vibe/src/carbonapi"
	"github.com/FrankTaylorLieder/carbon-vibe/src/chartlayout"
)

func main() {
	apiBase := flag.String("api-base", carbonapi.DefaultBaseURL, "Carbon intensity API base URL")
	hours := flag.Int("hours", 12, "Hours of history (and forecast) around now for the series chart")
	outSeries := flag.String("out-series", "intensity.png", "Output PNG for the intensity series chart")
	outMix := flag.String("out-mix", "generation_mix.png", "Output PNG for the generation mix pie")
	width := flag.Int("width", 900, "Series chart width in pixels")
	height := flag.Int("height", 320, "Series chart height in pixels")
	pieSize := flag.Int("pie-size", 450, "Mix pie width/height in pixels")
	httpTimeout := flag.Duration("http-timeout", 30*time.Second, "Per-request timeout for provider API calls")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	carbonapi.SetLogLevel(*logLevel)
	client := carbonapi.New(*apiBase, *httpTimeout)
	ctx := context.Background()
	now := time.Now().UTC()

	window, err := client.IntensityRange(ctx, now.Add(-time.Duration(*hours)*time.Hour), now.Add(time.Duration(*hours)*time.Hour))
	if err != nil {
		carbonapi.Errorf("intensity range fetch failed: %v", err)
		os.Exit(1)
	}
	currentHour := now.Truncate(time.Hour)
	points := make([]chartlayout.SeriesPoint, 0, len(window))
	for _, p := range aggregate.Hourly(window, 0) {
		points = append(points, chartlayout.SeriesPoint{Time: p.Hour, Value: p.Mean, Provisional: p.Hour.After(currentHour)})
	}
	geom := chartlayout.Series(points, chartlayout.DefaultSeriesConfig(), now)
	if err := renderPNG(intensityChart(points, geom, *width, *height), *outSeries); err != nil {
		carbonapi.Errorf("series export failed: %v", err)
		os.Exit(1)
	}
	carbonapi.Infof("wrote %s (%d hourly points)", *outSeries, len(points))

	mix, err := client.GenerationMix(ctx)
	if err != nil {
		carbonapi.Errorf("generation mix fetch failed: %v", err)
		os.Exit(1)
	}
	if err := renderPNG(mixPie(mix, *pieSize), *outMix); err != nil {
		carbonapi.Errorf("mix export failed: %v", err)
		os.Exit(1)
	}
	carbonapi.Infof("wrote %s (%d fuels)", *outMix, len(mix))
}

// renderable covers both chart.Chart and chart.PieChart.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(c renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return c.Render(chart.PNG, f)
}
