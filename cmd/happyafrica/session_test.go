package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happyafrica/internal/catalog"
	"happyafrica/internal/config"
	"happyafrica/internal/recommend"
)

type echoCaptions struct{}

func (echoCaptions) GenerateCaption(_ context.Context, prompt string) string {
	return "Captioned " + prompt + " #Nairobi"
}

func runScript(t *testing.T, script string) (string, *recommend.Engine) {
	t.Helper()
	feed := config.Default().Feed
	feed.Latency = 0
	eng := recommend.New(catalog.New(catalog.SeedVideos()), recommend.WithFeed(feed))
	var out bytes.Buffer
	err := newSession(eng, echoCaptions{}, &out).Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)
	return out.String(), eng
}

func TestSessionTracksGestures(t *testing.T) {
	out, eng := runScript(t, "feed following\nlike v2\nshare v2\nskip v4\nlike ad1\nquit\nlike v1\n")

	assert.Contains(t, out, "v5")
	assert.Contains(t, out, "like v2 tech=0.60")
	assert.Contains(t, out, "share v2 tech=1.40")
	assert.Contains(t, out, "skip v4 food=0.00")
	assert.Contains(t, out, "like ad1 (sponsored)")
	// nothing after quit is processed
	assert.InDelta(t, 0.1, eng.Profile().Get("travel"), 1e-9)
}

func TestSessionMoreAndPageCopies(t *testing.T) {
	out, _ := runScript(t, "more\nfeed\nmore\n")
	assert.Contains(t, out, "error: no feed open")
	assert.Contains(t, out, "_")
}

func TestSessionUploadSearchAndErrors(t *testing.T) {
	out, eng := runScript(t, "upload magic\nsearch nairobi\nsearch zzz\nbogus\nlike nope\nfeed sideways\nprofile\n")

	first := eng.Catalog().Snapshot()[0]
	assert.True(t, first.IsFreshUpload)
	assert.Equal(t, "Captioned a happy moment in Africa #Nairobi", first.Description)
	assert.Contains(t, out, "published "+first.ID)
	assert.Contains(t, out, first.ID)
	assert.Contains(t, out, `No results for "zzz"`)
	assert.Contains(t, out, `error: unknown command "bogus"`)
	assert.Contains(t, out, `error: video "nope" not found`)
	assert.Contains(t, out, "error: unknown feed type")
	assert.Contains(t, out, "dance    0.10")
}
