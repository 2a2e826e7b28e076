package recommend

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"happyafrica/internal/catalog"
	"happyafrica/internal/config"
	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
)

// Rand is the randomness the engine draws on. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Journal receives every tracked interaction. Implementations must not block for long.
type Journal interface {
	PutInteraction(ctx context.Context, ev model.InteractionEvent) error
}

// Engine owns the catalog and the session's interest profile and serves feeds from them.
type Engine struct {
	catalog *catalog.Catalog
	profile *Profile
	ranking config.RankingConfig
	feed    config.FeedConfig
	journal Journal
	newID   func() string
	now     func() time.Time

	rngMu sync.Mutex
	rng   Rand
}

type Option func(*Engine)

// WithRand replaces the exploration random source (tests pass a deterministic one).
func WithRand(r Rand) Option { return func(e *Engine) { e.rng = r } }

// WithIDs replaces the generator used for re-keyed feed entries.
func WithIDs(f func() string) Option { return func(e *Engine) { e.newID = f } }

func WithJournal(j Journal) Option { return func(e *Engine) { e.journal = j } }

func WithRanking(r config.RankingConfig) Option { return func(e *Engine) { e.ranking = r } }

func WithFeed(f config.FeedConfig) Option { return func(e *Engine) { e.feed = f } }

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// New builds an engine over cat with a fresh cold-start profile.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	def := config.Default()
	e := &Engine{
		catalog: cat,
		ranking: def.Ranking,
		feed:    def.Feed,
		newID:   uuid.NewString,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range opts {
		o(e)
	}
	e.profile = NewProfile(e.ranking.Prior)
	return e
}

// Profile exposes the session profile (read it via Get or Snapshot).
func (e *Engine) Profile() *Profile { return e.profile }

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// InjectVideo places v at the head of the catalog.
func (e *Engine) InjectVideo(v model.Video) {
	e.catalog.Inject(v)
	metrics.VideosInjected.Inc()
	logging.Info("video_injected", map[string]any{"id": v.ID, "category": string(v.Category)})
}

func (e *Engine) float64() float64 {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) intn(n int) int {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) shuffle(vs []model.Video) {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	e.rng.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
}
