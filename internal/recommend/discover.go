package recommend

import (
	"sort"

	"happyafrica/internal/model"
	"happyafrica/internal/util"
)

// TrendingFeed orders organic videos by raw weighted popularity. No profile, no noise.
func (e *Engine) TrendingFeed() []model.Video {
	videos := e.catalog.Snapshot()
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if model.IsOrganic(v) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return model.TrendingScore(out[i]) > model.TrendingScore(out[j])
	})
	return out
}

// SearchVideos matches query case-insensitively against description, hashtags
// and author handle, in catalog order.
func (e *Engine) SearchVideos(query string) []model.Video {
	out := make([]model.Video, 0)
	for _, v := range e.catalog.Snapshot() {
		if util.ContainsFold(v.Description, query) ||
			util.AnyContainsFold(v.Hashtags, query) ||
			util.ContainsFold(v.User.Username, query) {
			out = append(out, v)
		}
	}
	return out
}
