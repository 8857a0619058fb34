// Package types holds the shared domain types exchanged between the provider
// client, the aggregation core and the rendering layers. Kept free of any
// dependency so every package can import it.
package types

import "time"

// Reading is one raw carbon-intensity sample from the provider. The provider
// publishes half-hourly settlement periods; From marks the start of the
// period. Actual is only present once the period has been measured, Forecast
// is usually present for both past and future periods. Either (or both) may
// be missing; value selection is the aggregate package's job.
type Reading struct {
	From     time.Time
	Actual   *float64
	Forecast *float64
}

// FuelShare is one entry of the generation mix breakdown: a fuel name and its
// share of total generation in percent. Shares come rounded from the provider
// and are not guaranteed to sum to exactly 100.
type FuelShare struct {
	Fuel string
	Perc float64
}
