// Command server exposes the grammatik relation-linking engine as a JSON
// REST API for the browser extension.
//
// Endpoints:
//
//	POST /api/v1/analyze        body: {"text":"..."}
//	GET  /api/v1/health
//	GET  /api/v1/pos-categories
//	GET  /api/v1/cache/stats
//	POST /api/v1/cache/clear
//	GET  /metrics
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	grammatik "github.com/deutschspectrum/grammatik"
	"github.com/deutschspectrum/grammatik/cache"
	"github.com/deutschspectrum/grammatik/config"
	"github.com/deutschspectrum/grammatik/parser"
)

// textParser is the slice of parser.Client the handlers need; tests swap in
// a fake.
type textParser interface {
	Parse(ctx context.Context, text string) (*grammatik.Document, error)
	Ping(ctx context.Context) error
}

// ---- metrics --------------------------------------------------------------

var (
	analyzeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grammatik_analyze_requests_total",
		Help: "Analyze requests by outcome.",
	}, []string{"outcome"})

	analyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "grammatik_analyze_duration_seconds",
		Help:    "End-to-end analyze latency, including the parser call.",
		Buckets: prometheus.DefBuckets,
	})

	cacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grammatik_cache_lookups_total",
		Help: "Cache lookups by result.",
	}, []string{"result"})
)

// ---- JSON request/response types ------------------------------------------

type analyzeRequest struct {
	Text string `json:"text"`
}

type analyzeResponse struct {
	Tokens []grammatik.TokenAnnotation `json:"tokens"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ParserReady bool   `json:"parser_ready"`
}

type posCategory struct {
	POS   string `json:"pos"`
	Color string `json:"color"`
	Label string `json:"label"`
}

type posCategoriesResponse struct {
	Categories []posCategory `json:"categories"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// posCategories drives the extension's highlighting legend. Order is fixed
// so the legend renders stably.
var posCategories = []posCategory{
	{"NOUN", "#FFB3BA", "Noun (Substantiv)"},
	{"VERB", "#BAFFC9", "Verb"},
	{"VERB_PARTICLE", "#90EE90", "Separable Verb Particle"},
	{"ADJ", "#BAE1FF", "Adjective (Adjektiv)"},
	{"ADV", "#FFFFBA", "Adverb"},
	{"DET", "#E0BBE4", "Determiner (Artikel)"},
	{"PRON", "#FFDAB9", "Pronoun (Pronomen)"},
	{"ADP", "#D4A5A5", "Preposition (Präposition)"},
	{"CONJ", "#B5EAD7", "Conjunction (Konjunktion)"},
	{"CCONJ", "#B5EAD7", "Coordinating Conjunction"},
	{"SCONJ", "#A8D8EA", "Subordinating Conjunction"},
	{"NUM", "#FFD9B3", "Number (Zahl)"},
	{"PROPN", "#FFABAB", "Proper Noun (Eigenname)"},
	{"AUX", "#C7CEEA", "Auxiliary Verb (Hilfsverb)"},
	{"PART", "#D5AAFF", "Particle (Partikel)"},
	{"INTJ", "#FFE5B4", "Interjection (Interjektion)"},
	{"PUNCT", "#E8E8E8", "Punctuation"},
	{"X", "#CCCCCC", "Other"},
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleAnalyze(p textParser, store *cache.Cache, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			analyzeRequests.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'text' field")
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			analyzeRequests.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "text cannot be empty")
			return
		}

		start := time.Now()
		if tokens, ok := store.Get(req.Text); ok {
			cacheLookups.WithLabelValues("hit").Inc()
			analyzeRequests.WithLabelValues("cache_hit").Inc()
			writeJSON(w, http.StatusOK, analyzeResponse{Tokens: tokens})
			return
		}
		cacheLookups.WithLabelValues("miss").Inc()

		doc, err := p.Parse(r.Context(), req.Text)
		if err != nil {
			logger.Error("parse failed", slog.String("error", err.Error()))
			analyzeRequests.WithLabelValues("parser_error").Inc()
			writeError(w, http.StatusBadGateway, "parser unavailable")
			return
		}

		tokens := grammatik.Annotate(doc)
		store.Set(req.Text, tokens)
		analyzeDuration.Observe(time.Since(start).Seconds())
		analyzeRequests.WithLabelValues("ok").Inc()
		writeJSON(w, http.StatusOK, analyzeResponse{Tokens: tokens})
	}
}

func handleHealth(p textParser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		ready := p.Ping(ctx) == nil
		status := "healthy"
		if !ready {
			status = "unhealthy"
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: status, ParserReady: ready})
	}
}

func handlePOSCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, posCategoriesResponse{Categories: posCategories})
	}
}

func handleCacheStats(store *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, store.Stats())
	}
}

func handleCacheClear(store *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		store.Clear()
		writeJSON(w, http.StatusOK, messageResponse{Message: "cache cleared"})
	}
}

// ---- middleware -----------------------------------------------------------

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog tags each request with an id and logs it on completion.
func withRequestLog(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Info("request",
			slog.String("id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("took", time.Since(start)))
	})
}

// newHandler assembles the full HTTP handler: routes, CORS, request logging.
func newHandler(p textParser, store *cache.Cache, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/analyze", handleAnalyze(p, store, logger))
	mux.HandleFunc("/api/v1/health", handleHealth(p))
	mux.HandleFunc("/api/v1/pos-categories", handlePOSCategories())
	mux.HandleFunc("/api/v1/cache/stats", handleCacheStats(store))
	mux.HandleFunc("/api/v1/cache/clear", handleCacheClear(store))
	mux.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins, // empty means allow all
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return withRequestLog(logger, c.Handler(mux))
}

// ---- main ---------------------------------------------------------------

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	parserURL := flag.String("parser", "", "parser bridge URL (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFromFile(*configPath)
		if err != nil {
			slog.Error("load config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *parserURL != "" {
		cfg.Parser.URL = *parserURL
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	client := parser.NewClient(cfg.Parser.URL, cfg.Parser.Timeout, logger)

	// No request can succeed without the parser; refuse to start without it.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err := client.Ping(ctx)
	cancel()
	if err != nil {
		logger.Error("parser bridge not available",
			slog.String("url", cfg.Parser.URL),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("parser bridge ready", slog.String("url", cfg.Parser.URL))

	store := cache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	handler := newHandler(client, store, cfg.CORS.AllowedOrigins, logger)

	logger.Info("listening", slog.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
