// carbon-vibe main entrypoint.
//
// Three modes:
//  1. serve (default): run the dashboard HTTP server; every request fetches the
//     current intensity, the generation mix and an intensity window, aggregates
//     and lays out the charts, and returns the rendered page.
//  2. history: fetch the last N hours of intensity readings, aggregate them to
//     hourly means, print one "YYYY-MM-DD HH:00: value" line per hour.
//  3. current: print the single current intensity value (actual preferred,
//     forecast fallback).
//
// Design notes:
// - Dependency direction: main -> carbonapi for fetching, aggregate for value
//   selection and bucketing, dashboard for markup. main holds no logic itself.
// - The server keeps no state between requests; charts are recomputed from a
//   fresh fetch each time.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/FrankTaylorLieder/carbon-vibe/src/aggregate"
	"github.com/FrankTaylorLieder/carbon-vibe/src/carbonapi"
	"github.com/FrankTaylorLieder/carbon-vibe/src/dashboard"
)

func main() {
	mode := flag.String("mode", "serve", "Operation mode: serve | history | current")
	listen := flag.String("listen", ":3000", "Listen address for serve mode")
	apiBase := flag.String("api-base", carbonapi.DefaultBaseURL, "Carbon intensity API base URL")
	historyHours := flag.Int("history-hours", 12, "Hours of history to fetch (history mode and the dashboard series window)")
	httpTimeout := flag.Duration("http-timeout", 30*time.Second, "Per-request timeout for provider API calls")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()

	carbonapi.SetLogLevel(*logLevel)
	client := carbonapi.New(*apiBase, *httpTimeout)

	switch *mode {
	case "serve":
		h := dashboard.NewHandler(client)
		h.HistoryHours = *historyHours
		mux := http.NewServeMux()
		mux.Handle("/", h)
		carbonapi.Infof("serving dashboard on %s", *listen)
		if err := http.ListenAndServe(*listen, mux); err != nil {
			carbonapi.Errorf("server: %v", err)
			os.Exit(1)
		}
	case "history":
		if err := printHistory(client, *historyHours); err != nil {
			carbonapi.Errorf("history: %v", err)
			os.Exit(1)
		}
	case "current":
		if err := printCurrent(client); err != nil {
			carbonapi.Errorf("current: %v", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want serve, history or current)\n", *mode)
		os.Exit(2)
	}
}

// printHistory fetches the trailing window, aggregates to hourly means and
// prints one line per non-empty hour in ascending order.
func printHistory(client *carbonapi.Client, hours int) error {
	now := time.Now().UTC()
	readings, err := client.IntensityRange(context.Background(), now.Add(-time.Duration(hours)*time.Hour), now)
	if err != nil {
		return err
	}
	for _, p := range aggregate.Hourly(readings, 0) {
		fmt.Printf("%s: %.0f\n", p.Hour.Format("2006-01-02 15:00"), p.Mean)
	}
	return nil
}

func printCurrent(client *carbonapi.Client) error {
	reading, err := client.CurrentIntensity(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%.0f\n", aggregate.Resolve(reading, 0))
	return nil
}
