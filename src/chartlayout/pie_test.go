package chartlayout

import (
	"math"
	"reflect"
	"testing"
)

const angleTol = 1e-9

func TestPieSweepsCoverFullCircle(t *testing.T) {
	cases := [][]Category{
		{{"gas", 40}, {"wind", 30}, {"solar", 20}, {"nuclear", 10}},
		{{"a", 33.3}, {"b", 33.3}, {"c", 33.3}},            // provider rounding: sums to 99.9
		{{"a", 12.5}, {"b", 87.5}, {"c", 0}, {"d", 13.7}}, // over 100 with a zero
	}
	for i, categories := range cases {
		segs := Pie(categories, DefaultPieConfig())
		if len(segs) != len(categories) {
			t.Fatalf("case %d: expected %d segments got %d", i, len(categories), len(segs))
		}
		sum := 0.0
		for _, s := range segs {
			sum += s.EndAngle - s.StartAngle
		}
		if math.Abs(sum-2*math.Pi) > 1e-9 {
			t.Fatalf("case %d: sweeps sum %v want 2*pi", i, sum)
		}
	}
}

func TestPieSixtyForty(t *testing.T) {
	segs := Pie([]Category{{"A", 60}, {"B", 40}}, DefaultPieConfig())
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments got %d", len(segs))
	}
	if math.Abs(segs[0].StartAngle) > angleTol || math.Abs(segs[0].EndAngle-1.2*math.Pi) > angleTol {
		t.Fatalf("segment A angles [%v,%v] want [0,1.2*pi]", segs[0].StartAngle, segs[0].EndAngle)
	}
	if math.Abs(segs[1].StartAngle-1.2*math.Pi) > angleTol || math.Abs(segs[1].EndAngle-2*math.Pi) > angleTol {
		t.Fatalf("segment B angles [%v,%v] want [1.2*pi,2*pi]", segs[1].StartAngle, segs[1].EndAngle)
	}
}

func TestPieZeroWeightCategory(t *testing.T) {
	segs := Pie([]Category{{"wind", 100}, {"coal", 0}}, DefaultPieConfig())
	coal := segs[1]
	if coal.StartAngle != coal.EndAngle {
		t.Fatalf("zero weight should produce zero sweep: [%v,%v]", coal.StartAngle, coal.EndAngle)
	}
	if coal.ShowLabel {
		t.Fatalf("zero weight segment must not be labeled")
	}
}

func TestPieZeroTotal(t *testing.T) {
	if segs := Pie([]Category{{"a", 0}, {"b", 0}}, DefaultPieConfig()); segs != nil {
		t.Fatalf("zero total should return empty layout, got %+v", segs)
	}
	if segs := Pie(nil, DefaultPieConfig()); segs != nil {
		t.Fatalf("no categories should return empty layout, got %+v", segs)
	}
}

func TestPieLabelThreshold(t *testing.T) {
	cfg := DefaultPieConfig() // MinVisiblePercent 0.5
	segs := Pie([]Category{{"big", 99.7}, {"tiny", 0.3}}, cfg)
	if !segs[0].ShowLabel {
		t.Fatalf("big segment should be labeled")
	}
	if segs[1].ShowLabel {
		t.Fatalf("0.3%% segment should be suppressed at threshold %v", cfg.MinVisiblePercent)
	}
}

func TestPieLabelAnchorAndAlignment(t *testing.T) {
	cfg := DefaultPieConfig()
	// Four equal quadrants: mids at pi/4, 3pi/4, 5pi/4, 7pi/4.
	segs := Pie([]Category{{"q1", 25}, {"q2", 25}, {"q3", 25}, {"q4", 25}}, cfg)
	wantAlign := []string{"start", "end", "end", "start"}
	for i, s := range segs {
		if s.TextAlign != wantAlign[i] {
			t.Fatalf("segment %d align %q want %q", i, s.TextAlign, wantAlign[i])
		}
		dx := s.LabelX - cfg.CenterX
		dy := s.LabelY - cfg.CenterY
		if r := math.Hypot(dx, dy); math.Abs(r-cfg.LabelRadius) > 1e-9 {
			t.Fatalf("segment %d anchor radius %v want %v", i, r, cfg.LabelRadius)
		}
	}
}

func TestPieNearVerticalAlignsMiddle(t *testing.T) {
	// Slim slice straddling the top of the circle: mid angle ~3pi/2, cos ~0.
	segs := Pie([]Category{{"left", 74}, {"top", 2}, {"right", 24}}, DefaultPieConfig())
	if segs[1].TextAlign != "middle" {
		t.Fatalf("near-vertical slice align %q want middle (mid %v)", segs[1].TextAlign, (segs[1].StartAngle+segs[1].EndAngle)/2)
	}
}

func TestPieIdempotent(t *testing.T) {
	categories := []Category{{"gas", 38.2}, {"wind", 24.7}, {"nuclear", 17.1}, {"imports", 9.3}}
	a := Pie(categories, DefaultPieConfig())
	b := Pie(categories, DefaultPieConfig())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical input must give identical layout:\n%+v\n%+v", a, b)
	}
}
