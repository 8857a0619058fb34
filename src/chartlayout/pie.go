// Package chartlayout computes the drawable geometry for the dashboard's two
// chart types: arc spans and label anchors for the generation-mix pie, and
// scales, ticks and polyline vertices for the intensity time series. All
// functions are pure; style (colors, fonts) is the renderer's business.
package chartlayout

import "math"

// Category is one named slice input for the pie: a label and its weight in
// percent. Weights need not sum to 100; sweeps are computed against the sum
// of the weights actually supplied.
type Category struct {
	Name    string
	Percent float64
}

// PieConfig carries the numeric layout parameters for the pie. Explicit
// config rather than package globals so layout stays reproducible in tests.
type PieConfig struct {
	CenterX, CenterY float64
	Radius           float64
	// LabelRadius is the fixed distance from the center at which every label
	// anchor is placed, just outside the pie edge.
	LabelRadius float64
	// MinVisiblePercent suppresses labels on slices whose share of the total
	// falls below this many percent. The slice itself is still drawn.
	MinVisiblePercent float64
}

// DefaultPieConfig matches the dashboard's 500x500 viewBox.
func DefaultPieConfig() PieConfig {
	return PieConfig{CenterX: 250, CenterY: 250, Radius: 150, LabelRadius: 175, MinVisiblePercent: 0.5}
}

// ArcSegment is the computed geometry for one slice. Angles are radians,
// starting at 0 pointing right and increasing clockwise in the SVG y-down
// frame. TextAlign is the SVG text-anchor value for the label.
type ArcSegment struct {
	Category             Category
	StartAngle, EndAngle float64
	ShowLabel            bool
	LabelX, LabelY       float64
	TextAlign            string
}

// alignEpsilon is the |cos(midAngle)| band treated as "near vertical", where
// a centered label reads better than a side-anchored one (about 5 degrees).
const alignEpsilon = 0.0872

// Pie partitions the full circle proportionally to each category's weight
// relative to the sum of all supplied weights, walking categories in caller
// order. A non-positive total yields an empty slice (no division by zero);
// a zero-weight category yields a zero-sweep segment with its label hidden.
// Label anchors sit at cfg.LabelRadius along the segment's mid angle, with
// text alignment picked from the anchor's horizontal side so labels never
// reach back over the pie interior. The result is regenerated on every call
// and owned by the caller.
func Pie(categories []Category, cfg PieConfig) []ArcSegment {
	total := 0.0
	for _, c := range categories {
		total += c.Percent
	}
	if total <= 0 {
		return nil
	}
	segs := make([]ArcSegment, 0, len(categories))
	running := 0.0
	for _, c := range categories {
		sweep := 2 * math.Pi * c.Percent / total
		seg := ArcSegment{
			Category:   c,
			StartAngle: running,
			EndAngle:   running + sweep,
		}
		mid := (seg.StartAngle + seg.EndAngle) / 2
		seg.LabelX = cfg.CenterX + cfg.LabelRadius*math.Cos(mid)
		seg.LabelY = cfg.CenterY + cfg.LabelRadius*math.Sin(mid)
		seg.TextAlign = alignFor(mid)
		seg.ShowLabel = c.Percent/total*100 >= cfg.MinVisiblePercent && sweep > 0
		segs = append(segs, seg)
		running += sweep
	}
	return segs
}

// alignFor maps a mid angle to an SVG text-anchor: anchors on the left half
// of the circle grow text leftwards ("end"), the right half rightwards
// ("start"), and near-vertical anchors center it.
func alignFor(mid float64) string {
	c := math.Cos(mid)
	switch {
	case math.Abs(c) <= alignEpsilon:
		return "middle"
	case c < 0:
		return "end"
	default:
		return "start"
	}
}
