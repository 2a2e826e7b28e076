package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happyafrica/internal/config"
)

func TestTrendingMusicParsesAndAssignsAudio(t *testing.T) {
	songs := `[{"id":"1","title":"Water","artist":"Tyla","duration":"0:30","genre":"Amapiano"},
	{"id":"2","title":"Sukari","artist":"Zuchu","duration":"0:40"}]`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.NotNil(t, req.GenerationConfig) {
			assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		}
		_, _ = w.Write(textResponse(songs))
	}))
	defer ts.Close()

	got := newTestClient(ts, "k").TrendingMusic(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "Water", got[0].Title)
	assert.Equal(t, sampleAudio[0], got[0].AudioURL)
	assert.Equal(t, sampleAudio[1], got[1].AudioURL)
}

func TestTrendingMusicFallbacks(t *testing.T) {
	hits := FallbackHits()
	require.Len(t, hits, 14)

	assert.Equal(t, hits, New(config.Default().GenAI).TrendingMusic(context.Background()))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(textResponse("not json at all"))
	}))
	defer ts.Close()
	assert.Equal(t, hits, newTestClient(ts, "k").TrendingMusic(context.Background()))
}
