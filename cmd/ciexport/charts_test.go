package main

import (
	"testing"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/FrankTaylorLieder/carbon-vibe/src/chartlayout"
	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

func hourlyPoints(base time.Time, values []float64, provisionalFrom int) []chartlayout.SeriesPoint {
	pts := make([]chartlayout.SeriesPoint, len(values))
	for i, v := range values {
		pts[i] = chartlayout.SeriesPoint{Time: base.Add(time.Duration(i) * time.Hour), Value: v, Provisional: i >= provisionalFrom}
	}
	return pts
}

func TestIntensityChartSplitsSeries(t *testing.T) {
	base := time.Date(2025, 8, 30, 6, 0, 0, 0, time.UTC)
	pts := hourlyPoints(base, []float64{100, 120, 140, 130}, 2)
	geom := chartlayout.Series(pts, chartlayout.DefaultSeriesConfig(), base.Add(time.Hour))
	ch := intensityChart(pts, geom, 900, 320)
	if len(ch.Series) != 2 {
		t.Fatalf("expected measured + forecast series got %d", len(ch.Series))
	}
	measured, ok := ch.Series[0].(chart.TimeSeries)
	if !ok {
		t.Fatalf("series 0 type %T", ch.Series[0])
	}
	forecast, ok := ch.Series[1].(chart.TimeSeries)
	if !ok {
		t.Fatalf("series 1 type %T", ch.Series[1])
	}
	if len(measured.XValues) != 2 {
		t.Fatalf("measured length %d want 2", len(measured.XValues))
	}
	// forecast gains the boundary hour so the lines join
	if len(forecast.XValues) != 3 {
		t.Fatalf("forecast length %d want 3", len(forecast.XValues))
	}
	if !forecast.XValues[0].Equal(measured.XValues[1]) {
		t.Fatalf("series should share the boundary point: %v vs %v", forecast.XValues[0], measured.XValues[1])
	}
	if len(forecast.Style.StrokeDashArray) == 0 {
		t.Fatalf("forecast series should be dashed")
	}
}

func TestIntensityChartSinglePointPadded(t *testing.T) {
	base := time.Date(2025, 8, 30, 6, 0, 0, 0, time.UTC)
	pts := hourlyPoints(base, []float64{100}, 99)
	geom := chartlayout.Series(pts, chartlayout.DefaultSeriesConfig(), base)
	ch := intensityChart(pts, geom, 900, 320)
	ts, ok := ch.Series[0].(chart.TimeSeries)
	if !ok {
		t.Fatalf("series 0 type %T", ch.Series[0])
	}
	if len(ts.XValues) != 2 {
		t.Fatalf("single point must be padded to a non-zero x range, got %d values", len(ts.XValues))
	}
}

func TestIntensityChartTicksMatchLayout(t *testing.T) {
	base := time.Date(2025, 8, 30, 6, 0, 0, 0, time.UTC)
	pts := hourlyPoints(base, []float64{0, 400}, 99)
	geom := chartlayout.Series(pts, chartlayout.DefaultSeriesConfig(), base)
	ch := intensityChart(pts, geom, 900, 320)
	if len(ch.YAxis.Ticks) != len(geom.YTicks) {
		t.Fatalf("tick count %d want %d", len(ch.YAxis.Ticks), len(geom.YTicks))
	}
	for i, tick := range ch.YAxis.Ticks {
		if tick.Value != geom.YTicks[i].Value {
			t.Fatalf("tick %d value %v want %v", i, tick.Value, geom.YTicks[i].Value)
		}
	}
}

func TestMixPieLabelSuppression(t *testing.T) {
	mix := []types.FuelShare{{Fuel: "gas", Perc: 60}, {Fuel: "wind", Perc: 39.7}, {Fuel: "coal", Perc: 0.3}}
	pie := mixPie(mix, 450)
	if len(pie.Values) != 3 {
		t.Fatalf("every fuel keeps its wedge: got %d values", len(pie.Values))
	}
	if pie.Values[0].Label == "" || pie.Values[1].Label == "" {
		t.Fatalf("major fuels should be labeled: %+v", pie.Values)
	}
	if pie.Values[2].Label != "" {
		t.Fatalf("sub-threshold fuel should lose its label: %+v", pie.Values[2])
	}
}
