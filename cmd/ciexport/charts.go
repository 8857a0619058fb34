package main

import (
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/FrankTaylorLieder/carbon-vibe/src/chartlayout"
	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

func lineStyle(col drawing.Color, dashed bool) chart.Style {
	st := chart.Style{StrokeColor: col, StrokeWidth: 2}
	if dashed {
		st.StrokeDashArray = []float64{6, 4}
	}
	return st
}

// yAxisTicks converts the core layout's Y ticks into go-chart ticks so the
// PNG export and the SVG dashboard agree on gridline values.
func yAxisTicks(geom chartlayout.SeriesGeometry) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(geom.YTicks))
	for _, t := range geom.YTicks {
		ticks = append(ticks, chart.Tick{Value: t.Value, Label: t.Label})
	}
	return ticks
}

// intensityChart builds the hourly intensity line chart. Historical hours are
// drawn solid, forecast hours dashed, split at the shared boundary hour just
// like the dashboard's two polylines.
func intensityChart(points []chartlayout.SeriesPoint, geom chartlayout.SeriesGeometry, width, height int) chart.Chart {
	var histT, provT []time.Time
	var histV, provV []float64
	for _, p := range points {
		if p.Provisional {
			provT = append(provT, p.Time)
			provV = append(provV, p.Value)
		} else {
			histT = append(histT, p.Time)
			histV = append(histV, p.Value)
		}
	}
	if len(histT) > 0 && len(provT) > 0 {
		// join the segments at the boundary hour
		provT = append([]time.Time{histT[len(histT)-1]}, provT...)
		provV = append([]float64{histV[len(histV)-1]}, provV...)
	}

	series := []chart.Series{}
	if n := len(histT); n > 0 {
		if n == 1 {
			// pad to a non-zero X range for go-chart
			histT = append(histT, histT[0].Add(time.Minute))
			histV = append(histV, histV[0])
		}
		series = append(series, chart.TimeSeries{Name: "Measured", XValues: histT, YValues: histV, Style: lineStyle(chart.ColorBlue, false)})
	}
	if n := len(provT); n > 0 {
		if n == 1 {
			provT = append(provT, provT[0].Add(time.Minute))
			provV = append(provV, provV[0])
		}
		series = append(series, chart.TimeSeries{Name: "Forecast", XValues: provT, YValues: provV, Style: lineStyle(chart.ColorAlternateGray, true)})
	}

	yTicks := yAxisTicks(geom)
	var yRange *chart.ContinuousRange
	if len(yTicks) > 0 {
		yRange = &chart.ContinuousRange{
			Min: yTicks[0].Value,
			Max: geom.YScale.DomainMax,
		}
	}
	ch := chart.Chart{
		Title:      "Carbon Intensity (gCO2/kWh)",
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: "Time"},
		YAxis:      chart.YAxis{Name: "gCO2/kWh", Range: yRange, Ticks: yTicks},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// mixPie builds the generation-mix pie. Slice labels follow the core layout's
// visibility rule: slices below the threshold keep their wedge but lose the
// label, matching the dashboard.
func mixPie(mix []types.FuelShare, size int) chart.PieChart {
	categories := make([]chartlayout.Category, 0, len(mix))
	for _, f := range mix {
		categories = append(categories, chartlayout.Category{Name: f.Fuel, Percent: f.Perc})
	}
	segs := chartlayout.Pie(categories, chartlayout.DefaultPieConfig())
	values := make([]chart.Value, 0, len(segs))
	for _, s := range segs {
		v := chart.Value{Value: s.Category.Percent}
		if s.ShowLabel {
			v.Label = fmt.Sprintf("%s %.1f%%", s.Category.Name, s.Category.Percent)
		}
		values = append(values, v)
	}
	return chart.PieChart{Width: size, Height: size, Values: values}
}
