package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happyafrica/internal/catalog"
	"happyafrica/internal/config"
	"happyafrica/internal/model"
)

// fixedRand makes exploration noise and random picks predictable.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64                   { return r.f }
func (r fixedRand) Intn(n int) int                     { return r.n % n }
func (fixedRand) Shuffle(n int, swap func(i, j int)) {}

func counterIDs() func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("id-%d", i)
	}
}

func instantFeed() config.FeedConfig {
	f := config.Default().Feed
	f.Latency = 0
	return f
}

func newTestEngine(opts ...Option) *Engine {
	base := []Option{WithRand(fixedRand{}), WithIDs(counterIDs()), WithFeed(instantFeed())}
	return New(catalog.New(catalog.SeedVideos()), append(base, opts...)...)
}

func ids(vs []model.Video) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func mustFind(t *testing.T, e *Engine, id string) model.Video {
	t.Helper()
	v, ok := e.Catalog().Find(id)
	require.True(t, ok, "video %s", id)
	return v
}

type memJournal struct {
	events []model.InteractionEvent
	err    error
}

func (j *memJournal) PutInteraction(ctx context.Context, ev model.InteractionEvent) error {
	if j.err != nil {
		return j.err
	}
	j.events = append(j.events, ev)
	return nil
}

func TestLikeAndShareRaiseAffinityByOnePointThree(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	dance := mustFind(t, e, "v5")
	before := e.Profile().Get(model.CategoryDance)

	e.TrackInteraction(ctx, dance, model.InteractionLike)
	afterLike := e.Profile().Get(model.CategoryDance)
	e.TrackInteraction(ctx, dance, model.InteractionShare)
	afterShare := e.Profile().Get(model.CategoryDance)

	assert.Greater(t, afterLike, before)
	assert.Greater(t, afterShare, afterLike)
	assert.InDelta(t, before+1.3, afterShare, 1e-9)
}

func TestInteractionDeltas(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	food := mustFind(t, e, "v4")

	e.TrackInteraction(ctx, food, model.InteractionViewStart)
	assert.InDelta(t, 0.1, e.Profile().Get(model.CategoryFood), 1e-9)
	e.TrackInteraction(ctx, food, model.InteractionViewComplete)
	assert.InDelta(t, 0.3, e.Profile().Get(model.CategoryFood), 1e-9)
	e.TrackInteraction(ctx, food, model.InteractionSkip)
	assert.InDelta(t, 0.2, e.Profile().Get(model.CategoryFood), 1e-9)
}

func TestSkipNeverGoesNegative(t *testing.T) {
	e := newTestEngine()
	travel := mustFind(t, e, "v1")
	for i := 0; i < 10; i++ {
		e.TrackInteraction(context.Background(), travel, model.InteractionSkip)
		require.GreaterOrEqual(t, e.Profile().Get(model.CategoryTravel), 0.0)
	}
	assert.Equal(t, 0.0, e.Profile().Get(model.CategoryTravel))

	e.TrackInteraction(context.Background(), travel, model.InteractionLike)
	assert.InDelta(t, 0.5, e.Profile().Get(model.CategoryTravel), 1e-9)
}

func TestAdsAndUncategorizedAreIgnored(t *testing.T) {
	j := &memJournal{}
	e := newTestEngine(WithJournal(j))
	before := e.Profile().Snapshot()
	ad := mustFind(t, e, "ad1")
	for _, typ := range []model.InteractionType{model.InteractionLike, model.InteractionShare, model.InteractionViewComplete, model.InteractionSkip} {
		e.TrackInteraction(context.Background(), ad, typ)
		e.TrackInteraction(context.Background(), model.Video{ID: "x"}, typ)
	}
	assert.Equal(t, before, e.Profile().Snapshot())
	assert.Empty(t, j.events)
}

func TestJournalReceivesEventsAndFailuresAreSwallowed(t *testing.T) {
	j := &memJournal{}
	at := time.Date(2024, 5, 1, 18, 30, 0, 0, time.UTC)
	e := newTestEngine(WithJournal(j), WithClock(func() time.Time { return at }))
	e.TrackInteraction(context.Background(), mustFind(t, e, "v2"), model.InteractionLike)
	require.Len(t, j.events, 1)
	assert.Equal(t, at, j.events[0].Timestamp)
	assert.Equal(t, "v2", j.events[0].VideoID)
	assert.Equal(t, model.CategoryTech, j.events[0].Category)
	assert.Equal(t, model.InteractionLike, j.events[0].Type)

	j.err = errors.New("disk full")
	e.TrackInteraction(context.Background(), mustFind(t, e, "v2"), model.InteractionLike)
	assert.InDelta(t, 1.1, e.Profile().Get(model.CategoryTech), 1e-9)
}

func TestScoreFormula(t *testing.T) {
	e := newTestEngine(WithRand(fixedRand{f: 0.5}))
	// 0.7*0.1 + 0.2*(15000/100000) + 0.1*0.5
	assert.InDelta(t, 0.15, e.Score(mustFind(t, e, "v5")), 1e-9)
	assert.Equal(t, -1.0, e.Score(mustFind(t, e, "ad1")))
	// unknown category contributes zero affinity
	assert.InDelta(t, 0.05, e.Score(model.Video{Category: "music"}), 1e-9)
}

func TestScoreIsNonDeterministic(t *testing.T) {
	e := newTestEngine(WithRand(rand.New(rand.NewSource(7))))
	v := mustFind(t, e, "v1")
	seen := map[float64]struct{}{}
	for i := 0; i < 5; i++ {
		seen[e.Score(v)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}
