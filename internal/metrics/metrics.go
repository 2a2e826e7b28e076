package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Interactions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_interactions_total",
		Help: "Tracked interactions by type",
	}, []string{"type"})
	FeedsBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_feeds_built_total",
		Help: "Feeds assembled by feed type",
	}, []string{"feed"})
	AdsInjected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "happyafrica_ads_injected_total",
		Help: "Sponsored entries interleaved into feeds",
	})
	VideosInjected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "happyafrica_videos_injected_total",
		Help: "Videos inserted into the catalog at runtime",
	})
	FetchMore = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_fetch_more_total",
		Help: "Pagination requests by feed type and outcome",
	}, []string{"feed", "outcome"})
	FetchMoreDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "happyafrica_fetch_more_duration_seconds",
		Help:    "Pagination duration seconds including simulated latency",
		Buckets: prometheus.DefBuckets,
	})
	GenAIFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_genai_fallbacks_total",
		Help: "AI content requests answered from fallback data",
	}, []string{"op"})
	GenAIRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_genai_retries_total",
		Help: "Total AI content API retry attempts",
	}, []string{"op"})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"cmd"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "happyafrica_command_errors_total",
		Help: "CLI command failures",
	}, []string{"cmd"})
)

func init() {
	prometheus.MustRegister(Interactions, FeedsBuilt, AdsInjected, VideosInjected, FetchMore,
		FetchMoreDuration, GenAIFallbacks, GenAIRetries, CommandRuns, CommandErrors)
}

// Handler returns the mux served by StartServer.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return mux
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	go func() { _ = http.ListenAndServe(addr, Handler()) }()
}

// ObserveFetchMore records a pagination outcome and its duration.
func ObserveFetchMore(feed, outcome string, start time.Time) {
	FetchMore.WithLabelValues(feed, outcome).Inc()
	FetchMoreDuration.Observe(time.Since(start).Seconds())
}

func IncInteraction(typ string)     { Interactions.WithLabelValues(typ).Inc() }
func IncFeedBuilt(feed string)      { FeedsBuilt.WithLabelValues(feed).Inc() }
func IncGenAIFallback(op string)    { GenAIFallbacks.WithLabelValues(op).Inc() }
func IncGenAIRetry(op string)       { GenAIRetries.WithLabelValues(op).Inc() }
func IncCommandRun(cmd string)      { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string)    { CommandErrors.WithLabelValues(cmd).Inc() }
