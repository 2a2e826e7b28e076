package recommend

import (
	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
)

// RecommendedFeed assembles the initial list for a feed screen.
func (e *Engine) RecommendedFeed(ft model.FeedType) []model.Video {
	metrics.IncFeedBuilt(string(ft))
	if ft == model.FeedFollowing {
		return e.followingFeed()
	}
	return e.forYouFeed()
}

// followingFeed is a plain filter in catalog order; it is not ranked.
func (e *Engine) followingFeed() []model.Video {
	out := make([]model.Video, 0, max(e.feed.FollowingLimit, 0))
	for _, v := range e.followable(e.catalog.Snapshot()) {
		if len(out) >= e.feed.FollowingLimit {
			break
		}
		out = append(out, v)
	}
	return out
}

func (e *Engine) followable(videos []model.Video) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if v.IsAd || v.User.ID == e.feed.BrandAccountID {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (e *Engine) forYouFeed() []model.Video {
	videos := e.catalog.Snapshot()
	ranked := e.rankOrganic(videos, true)
	logging.Debug("foryou_ranked", map[string]any{"catalog": len(videos), "organic": len(ranked)})
	return e.injectAds(ranked)
}

// injectAds appends a re-keyed copy of the first catalog ad after every
// AdInterval organic entries. Without an ad in the catalog nothing is added.
func (e *Engine) injectAds(organic []model.Video) []model.Video {
	ad, ok := e.catalog.FirstAd()
	if !ok || e.feed.AdInterval <= 0 {
		return organic
	}
	out := make([]model.Video, 0, len(organic)+len(organic)/e.feed.AdInterval)
	for i, v := range organic {
		out = append(out, v)
		if (i+1)%e.feed.AdInterval == 0 {
			slot := ad
			slot.ID = "ad_" + e.newID()
			out = append(out, slot)
			metrics.AdsInjected.Inc()
		}
	}
	return out
}
