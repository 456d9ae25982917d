// Package main implements a mock vendor price API for local development.
// It answers GET /quotes the way the http resolver expects, with prices
// derived deterministically from the request so repeated checks of the same
// trigger see the same quotes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/price-trigger-monitor/pkg/resolver"
)

// quote is one vendor entry in a /quotes answer.
type quote struct {
	Price *float64 `json:"price"`
	Link  *string  `json:"link"`
}

// pricer derives vendor prices from a request.
type pricer struct {
	vendors []string
	// spread is the maximum fractional distance from the expected price.
	spread float64
	// missRate is the fraction of vendors reported without a price.
	missRate float64
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	apiKey := flag.String("api-key", "", "require this bearer token when set")
	spread := flag.Float64("spread", 0.05, "max price distance from expected_price, as a fraction")
	missRate := flag.Float64("miss-rate", 0.2, "fraction of vendors answered with a null price")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := &pricer{vendors: resolver.Vendors, spread: *spread, missRate: *missRate}

	mux := http.NewServeMux()
	mux.Handle("GET /quotes", requireKey(*apiKey, quotesHandler(logger, p)))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock price API", "addr", addr, "vendors", p.vendors)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func requireKey(key string, next http.Handler) http.Handler {
	if key == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+key {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid api key"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func quotesHandler(logger *slog.Logger, p *pricer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		expected, err := strconv.ParseFloat(q.Get("expected_price"), 64)
		if err != nil || expected < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "expected_price must be a non-negative number"})
			return
		}

		answer := p.quotes(q, expected)
		writeJSON(w, http.StatusOK, answer)
		logger.Info("quotes", "event_type", q.Get("event_type"), "expected", expected, "vendors", len(answer))
	}
}

// quotes answers every vendor. The seed covers every query parameter so the
// same trigger always gets the same prices.
func (p *pricer) quotes(q url.Values, expected float64) map[string]quote {
	seed := requestKey(q)
	out := make(map[string]quote, len(p.vendors))
	for _, vendor := range p.vendors {
		h := hash(seed + "|" + vendor)
		if unit(h) < p.missRate {
			out[vendor] = quote{}
			continue
		}
		offset := (unit(h>>16)*2 - 1) * p.spread
		price := math.Round(expected*(1+offset)*100) / 100
		link := fmt.Sprintf("https://%s.example/item/%x", vendor, h&0xffffff)
		out[vendor] = quote{Price: &price, Link: &link}
	}
	return out
}

func requestKey(q url.Values) string {
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(q[k], ","))
		b.WriteByte('&')
	}
	return b.String()
}

func hash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// unit maps the low 16 bits of h onto [0, 1).
func unit(h uint64) float64 {
	return float64(h&0xffff) / 0x10000
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
