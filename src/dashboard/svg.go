// Package dashboard assembles the HTML/SVG dashboard from the layouts the
// core computes and serves it over HTTP. All geometry comes from
// chartlayout; this package only turns it into markup and styling.
package dashboard

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/FrankTaylorLieder/carbon-vibe/src/chartlayout"
	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

// palette cycles across pie slices and the legend in category order.
var palette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57",
	"#FF9FF3", "#54A0FF", "#5F27CD", "#00D2D3", "#FF9F43",
	"#EE5A24", "#0ABDE3", "#10AC84", "#F79F1F", "#A3CB38",
}

func colorAt(i int) string { return palette[i%len(palette)] }

// RenderPie emits the SVG elements (paths plus optional two-line labels) for
// the given arc segments. Slices with a sweep over pi radians set the SVG
// large-arc flag so the path wraps the long way round.
func RenderPie(segs []chartlayout.ArcSegment, cfg chartlayout.PieConfig) string {
	var b strings.Builder
	for i, seg := range segs {
		x1 := cfg.CenterX + cfg.Radius*math.Cos(seg.StartAngle)
		y1 := cfg.CenterY + cfg.Radius*math.Sin(seg.StartAngle)
		x2 := cfg.CenterX + cfg.Radius*math.Cos(seg.EndAngle)
		y2 := cfg.CenterY + cfg.Radius*math.Sin(seg.EndAngle)
		largeArc := 0
		if seg.EndAngle-seg.StartAngle > math.Pi {
			largeArc = 1
		}
		fmt.Fprintf(&b,
			`<path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s" stroke="white" stroke-width="2" />`,
			cfg.CenterX, cfg.CenterY, x1, y1, cfg.Radius, cfg.Radius, largeArc, x2, y2, colorAt(i))
		if !seg.ShowLabel {
			continue
		}
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" text-anchor="%s" font-family="Arial, sans-serif" font-size="11" font-weight="bold" fill="#333333">%s</text>`,
			seg.LabelX, seg.LabelY-2, seg.TextAlign, html.EscapeString(seg.Category.Name))
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" text-anchor="%s" font-family="Arial, sans-serif" font-size="10" fill="#666666">%.1f%%</text>`,
			seg.LabelX, seg.LabelY+10, seg.TextAlign, seg.Category.Percent)
	}
	return b.String()
}

// RenderSeries emits the SVG elements for the intensity line chart: Y
// gridlines with value labels, X tick labels, the historical polyline, the
// dashed provisional polyline and the clamped dashed now marker.
func RenderSeries(geom chartlayout.SeriesGeometry, cfg chartlayout.SeriesConfig) string {
	var b strings.Builder
	left := cfg.MarginLeft
	right := cfg.Width - cfg.MarginRight
	bottom := cfg.Height - cfg.MarginBottom
	for _, t := range geom.YTicks {
		fmt.Fprintf(&b,
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#e0e0e0" stroke-width="1" />`,
			left, t.Y, right, t.Y)
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" text-anchor="end" font-family="Arial, sans-serif" font-size="10" fill="#666666">%s</text>`,
			left-6, t.Y+3, t.Label)
	}
	for _, t := range geom.XTicks {
		fmt.Fprintf(&b,
			`<text x="%.2f" y="%.2f" text-anchor="middle" font-family="Arial, sans-serif" font-size="10" fill="#666666">%s</text>`,
			t.X, bottom+16, t.Label)
	}
	if len(geom.HistoricalPath) > 0 {
		fmt.Fprintf(&b,
			`<polyline points="%s" fill="none" stroke="#2c3e50" stroke-width="2" />`,
			polylinePoints(geom.HistoricalPath))
	}
	if len(geom.ProvisionalPath) > 0 {
		fmt.Fprintf(&b,
			`<polyline points="%s" fill="none" stroke="#7f8c8d" stroke-width="2" stroke-dasharray="6,4" />`,
			polylinePoints(geom.ProvisionalPath))
	}
	if len(geom.HistoricalPath)+len(geom.ProvisionalPath) > 0 {
		fmt.Fprintf(&b,
			`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#e74c3c" stroke-width="1" stroke-dasharray="4,4" />`,
			geom.NowMarkerX, cfg.MarginTop, geom.NowMarkerX, bottom)
	}
	return b.String()
}

func polylinePoints(pts []chartlayout.PathPoint) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

// RenderLegend emits one legend row per fuel share, colored in step with the
// pie slices.
func RenderLegend(mix []types.FuelShare) string {
	var b strings.Builder
	for i, f := range mix {
		fmt.Fprintf(&b, `<div class="legend-item">
                <div class="legend-color" style="background-color: %s"></div>
                <span class="legend-label">%s</span>
                <span class="legend-value">%.1f%%</span>
            </div>`, colorAt(i), html.EscapeString(f.Fuel), f.Perc)
	}
	return b.String()
}
