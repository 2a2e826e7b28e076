package recommend

import (
	"sort"

	"happyafrica/internal/model"
)

// adScore keeps sponsored entries at the bottom of any ranked pool they slip into.
const adScore = -1

// Score ranks v for the current profile:
//
//	AffinityWeight*profile[category] + PopularityWeight*likes/100000 + ExplorationWeight*U
//
// U is drawn fresh on every call, so repeated calls on the same video differ.
func (e *Engine) Score(v model.Video) float64 {
	if v.IsAd {
		return adScore
	}
	r := e.ranking
	return r.AffinityWeight*e.profile.Get(v.Category) +
		r.PopularityWeight*model.PopularityScore(v) +
		r.ExplorationWeight*e.float64()
}

type scoredVideo struct {
	video model.Video
	score float64
}

// rankOrganic scores every non-ad video exactly once and orders them.
// With freshFirst, session uploads precede everything else regardless of score.
func (e *Engine) rankOrganic(videos []model.Video, freshFirst bool) []model.Video {
	pool := make([]scoredVideo, 0, len(videos))
	for _, v := range videos {
		if v.IsAd {
			continue
		}
		pool = append(pool, scoredVideo{video: v, score: e.Score(v)})
	}
	sort.SliceStable(pool, func(i, j int) bool {
		if freshFirst && pool[i].video.IsFreshUpload != pool[j].video.IsFreshUpload {
			return pool[i].video.IsFreshUpload
		}
		return pool[i].score > pool[j].score
	})
	out := make([]model.Video, len(pool))
	for i, s := range pool {
		out[i] = s.video
	}
	return out
}
