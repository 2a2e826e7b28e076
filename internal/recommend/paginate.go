package recommend

import (
	"context"
	"time"

	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
)

// Page is one resolved pagination result.
type Page struct {
	Videos []model.Video
	Err    error
}

// FetchMore waits out the simulated network latency and returns the next page.
// If ctx ends first the page is discarded and ctx.Err() is returned.
func (e *Engine) FetchMore(ctx context.Context, ft model.FeedType) ([]model.Video, error) {
	start := time.Now()
	if err := e.wait(ctx); err != nil {
		metrics.ObserveFetchMore(string(ft), "cancelled", start)
		return nil, err
	}
	var page []model.Video
	if ft == model.FeedFollowing {
		page = e.followingPage()
	} else {
		page = e.forYouPage()
	}
	metrics.ObserveFetchMore(string(ft), "ok", start)
	logging.Debug("fetch_more", map[string]any{"feed": string(ft), "count": len(page), "profile": e.profile.Snapshot()})
	return page, nil
}

// FetchMoreAsync runs FetchMore on its own goroutine. The channel yields exactly one Page.
func (e *Engine) FetchMoreAsync(ctx context.Context, ft model.FeedType) <-chan Page {
	ch := make(chan Page, 1)
	go func() {
		defer close(ch)
		videos, err := e.FetchMore(ctx, ft)
		ch <- Page{Videos: videos, Err: err}
	}()
	return ch
}

func (e *Engine) wait(ctx context.Context) error {
	if e.feed.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(e.feed.Latency)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Engine) followingPage() []model.Video {
	candidates := e.followable(e.catalog.Snapshot())
	e.shuffle(candidates)
	if n := e.feed.FollowingPageSize; len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// forYouPage re-ranks against the profile as it is now, takes the top picks and
// adds uniformly random picks for exploration. Every entry gets a new ID.
func (e *Engine) forYouPage() []model.Video {
	ranked := e.rankOrganic(e.catalog.Snapshot(), false)
	if len(ranked) == 0 {
		return []model.Video{}
	}
	top := min(e.feed.TopPicks, len(ranked))
	page := make([]model.Video, 0, top+e.feed.ExplorationPicks)
	page = append(page, ranked[:top]...)
	for i := 0; i < e.feed.ExplorationPicks; i++ {
		page = append(page, ranked[e.intn(len(ranked))])
	}
	for i := range page {
		page[i].ID = page[i].ID + "_" + e.newID()
	}
	return page
}
