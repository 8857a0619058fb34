// Package aggregate turns irregular half-hourly readings into hourly mean
// series. It is pure: no I/O, no state across calls, safe for concurrent use.
package aggregate

import (
	"sort"
	"time"

	"github.com/FrankTaylorLieder/carbon-vibe/src/types"
)

// Point is one hourly aggregate: the start of the hour (UTC) and the
// arithmetic mean of the resolved sample values that fell inside it.
type Point struct {
	Hour time.Time
	Mean float64
}

// Resolve picks the value to use for a reading: Actual when present, else
// Forecast, else fallback. The two fields are never mixed within one reading.
// Total over its input domain; no error conditions.
func Resolve(r types.Reading, fallback float64) float64 {
	if r.Actual != nil {
		return *r.Actual
	}
	if r.Forecast != nil {
		return *r.Forecast
	}
	return fallback
}

// Hourly buckets readings by their timestamp truncated to the hour (in UTC,
// matching the provider's settlement-period instants) and emits one Point per
// non-empty bucket, sorted ascending by hour. Each reading contributes its
// Resolve()d value. Duplicate or out-of-order timestamps are tolerated; they
// simply land in whatever bucket their hour selects. Hours with no readings
// (provider gaps) produce no output at all rather than a fabricated zero.
func Hourly(readings []types.Reading, fallback float64) []Point {
	if len(readings) == 0 {
		return nil
	}
	buckets := make(map[time.Time][]float64, len(readings)/2+1)
	for _, r := range readings {
		hour := r.From.UTC().Truncate(time.Hour)
		buckets[hour] = append(buckets[hour], Resolve(r, fallback))
	}
	hours := make([]time.Time, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool { return hours[i].Before(hours[j]) })

	out := make([]Point, 0, len(hours))
	for _, h := range hours {
		samples := buckets[h]
		sum := 0.0
		for _, v := range samples {
			sum += v
		}
		out = append(out, Point{Hour: h, Mean: sum / float64(len(samples))})
	}
	return out
}
