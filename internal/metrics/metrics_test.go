package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposure(t *testing.T) {
	IncInteraction("like")
	IncFeedBuilt("foryou")
	AdsInjected.Inc()
	VideosInjected.Inc()
	IncGenAIFallback("caption")
	IncGenAIRetry("caption")
	IncCommandRun("feed")
	IncCommandError("feed")
	ObserveFetchMore("foryou", "ok", time.Now().Add(-1500*time.Millisecond))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"happyafrica_interactions_total",
		"happyafrica_feeds_built_total",
		"happyafrica_ads_injected_total",
		"happyafrica_videos_injected_total",
		"happyafrica_fetch_more_total",
		"happyafrica_fetch_more_duration_seconds",
		"happyafrica_genai_fallbacks_total",
		"happyafrica_genai_retries_total",
		"happyafrica_command_runs_total",
		"happyafrica_command_errors_total",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status: %d", rec.Code)
	}
}
