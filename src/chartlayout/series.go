package chartlayout

import (
	"math"
	"strconv"
	"time"
)

// SeriesPoint is one input sample for the line chart. Provisional marks
// forecast-only points beyond "now"; they are drawn as a separate segment.
type SeriesPoint struct {
	Time        time.Time
	Value       float64
	Provisional bool
}

// SeriesConfig carries canvas size and margins. XTickStride labels every Nth
// point on the X axis; values below 1 fall back to 4 (two hours of
// half-hourly data).
type SeriesConfig struct {
	Width, Height float64
	MarginTop     float64
	MarginRight   float64
	MarginBottom  float64
	MarginLeft    float64
	XTickStride   int
}

// DefaultSeriesConfig matches the dashboard's series panel.
func DefaultSeriesConfig() SeriesConfig {
	return SeriesConfig{Width: 700, Height: 300, MarginTop: 20, MarginRight: 20, MarginBottom: 40, MarginLeft: 50, XTickStride: 4}
}

// Scale is a linear value→pixel mapping. A plain struct (not a closure) so
// geometries compare equal across identical calls.
type Scale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// Apply maps v linearly from the domain onto the range. A degenerate domain
// collapses onto RangeMin.
func (s Scale) Apply(v float64) float64 {
	span := s.DomainMax - s.DomainMin
	if span == 0 {
		return s.RangeMin
	}
	return s.RangeMin + (v-s.DomainMin)/span*(s.RangeMax-s.RangeMin)
}

// TimeScale is a linear instant→pixel mapping.
type TimeScale struct {
	DomainMin, DomainMax time.Time
	RangeMin, RangeMax   float64
}

// Apply maps t linearly from the domain onto the range. A degenerate domain
// collapses onto RangeMin.
func (s TimeScale) Apply(t time.Time) float64 {
	span := s.DomainMax.Sub(s.DomainMin)
	if span <= 0 {
		return s.RangeMin
	}
	return s.RangeMin + float64(t.Sub(s.DomainMin))/float64(span)*(s.RangeMax-s.RangeMin)
}

// YTick is one horizontal gridline: the data value and its pixel Y.
type YTick struct {
	Value float64
	Y     float64
	Label string
}

// XTick is one X axis mark: the instant, its pixel X and a time-of-day label.
type XTick struct {
	Time  time.Time
	X     float64
	Label string
}

// PathPoint is one polyline vertex in pixel space.
type PathPoint struct {
	X, Y float64
}

// SeriesGeometry is the fully derived line-chart layout. No hidden state;
// identical inputs produce identical geometries.
type SeriesGeometry struct {
	XScale          TimeScale
	YScale          Scale
	YTicks          []YTick
	XTicks          []XTick
	HistoricalPath  []PathPoint
	ProvisionalPath []PathPoint
	NowMarkerX      float64
}

// Series lays out an ordered point sequence onto the configured canvas.
//
// The value domain spans the observed min/max, expanded by one unit each side
// when all values are equal so the scale never has zero height. The Y range is
// inverted (larger values draw higher). The time domain spans first..last
// point, padded to one minute for a single-point series. Y ticks step by
// max(20, ceil(span/4)) from a floor rounded below the minimum; X ticks land
// on every XTickStride-th point, labeled with UTC time of day. Points are
// split into a historical and a provisional polyline; when both exist the
// provisional one is prepended with the last historical vertex so the two
// join without a gap. The now marker is clamped to the drawable X range.
//
// An empty input returns a degenerate geometry: empty paths, unit scales.
func Series(points []SeriesPoint, cfg SeriesConfig, now time.Time) SeriesGeometry {
	if cfg.XTickStride < 1 {
		cfg.XTickStride = 4
	}
	left := cfg.MarginLeft
	right := cfg.Width - cfg.MarginRight
	top := cfg.MarginTop
	bottom := cfg.Height - cfg.MarginBottom

	if len(points) == 0 {
		return SeriesGeometry{
			XScale:     TimeScale{RangeMin: left, RangeMax: right},
			YScale:     Scale{DomainMin: 0, DomainMax: 1, RangeMin: 0, RangeMax: 1},
			NowMarkerX: left,
		}
	}

	minV, maxV := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < minV {
			minV = p.Value
		}
		if p.Value > maxV {
			maxV = p.Value
		}
	}
	if minV == maxV {
		// flat series: open the range symmetrically
		minV--
		maxV++
	}

	tMin := points[0].Time
	tMax := points[len(points)-1].Time
	if !tMax.After(tMin) {
		tMax = tMin.Add(time.Minute)
	}

	xScale := TimeScale{DomainMin: tMin, DomainMax: tMax, RangeMin: left, RangeMax: right}
	yScale := Scale{DomainMin: minV, DomainMax: maxV, RangeMin: bottom, RangeMax: top}

	geom := SeriesGeometry{XScale: xScale, YScale: yScale}

	step := math.Ceil((maxV - minV) / 4)
	if step < 20 {
		step = 20
	}
	for v := math.Floor(minV/step) * step; v <= maxV; v += step {
		geom.YTicks = append(geom.YTicks, YTick{Value: v, Y: yScale.Apply(v), Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	for i := 0; i < len(points); i += cfg.XTickStride {
		p := points[i]
		geom.XTicks = append(geom.XTicks, XTick{Time: p.Time, X: xScale.Apply(p.Time), Label: p.Time.UTC().Format("15:04")})
	}

	for _, p := range points {
		v := PathPoint{X: xScale.Apply(p.Time), Y: yScale.Apply(p.Value)}
		if p.Provisional {
			geom.ProvisionalPath = append(geom.ProvisionalPath, v)
		} else {
			geom.HistoricalPath = append(geom.HistoricalPath, v)
		}
	}
	if len(geom.HistoricalPath) > 0 && len(geom.ProvisionalPath) > 0 {
		joint := geom.HistoricalPath[len(geom.HistoricalPath)-1]
		geom.ProvisionalPath = append([]PathPoint{joint}, geom.ProvisionalPath...)
	}

	geom.NowMarkerX = xScale.Apply(now)
	if geom.NowMarkerX < left {
		geom.NowMarkerX = left
	}
	if geom.NowMarkerX > right {
		geom.NowMarkerX = right
	}
	return geom
}
