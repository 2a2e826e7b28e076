package recommend

import (
	"context"
	"errors"
	"sync"

	"happyafrica/internal/model"
)

var ErrViewClosed = errors.New("feed view closed")

// View is a mounted feed screen. Pages that resolve after Close are dropped.
type View struct {
	engine   *Engine
	feedType model.FeedType

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	items  []model.Video
	closed bool
}

func NewView(e *Engine, ft model.FeedType) *View {
	ctx, cancel := context.WithCancel(context.Background())
	return &View{engine: e, feedType: ft, ctx: ctx, cancel: cancel}
}

// Load replaces the items with a freshly assembled feed.
func (v *View) Load() []model.Video {
	feed := v.engine.RecommendedFeed(v.feedType)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	v.items = feed
	return append([]model.Video(nil), feed...)
}

// More fetches the next page and appends it while the view is still open.
func (v *View) More(ctx context.Context) ([]model.Video, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(v.ctx, cancel)
	defer stop()

	page, err := v.engine.FetchMore(ctx, v.feedType)
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, ErrViewClosed
	}
	if err != nil {
		return nil, err
	}
	v.items = append(v.items, page...)
	return page, nil
}

// Close unmounts the view; pending pages are discarded.
func (v *View) Close() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
	v.cancel()
}

func (v *View) Items() []model.Video {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Video(nil), v.items...)
}

func (v *View) FeedType() model.FeedType { return v.feedType }
