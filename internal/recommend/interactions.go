package recommend

import (
	"context"

	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
)

// TrackInteraction feeds a playback milestone or gesture into the interest profile.
// Videos without a category, and ads, are ignored.
func (e *Engine) TrackInteraction(ctx context.Context, v model.Video, typ model.InteractionType) {
	cat := v.Category
	if cat == "" || cat == model.CategoryAd {
		return
	}
	var affinity float64
	switch typ {
	case model.InteractionLike:
		affinity = e.profile.Add(cat, e.ranking.LikeBoost)
	case model.InteractionShare:
		affinity = e.profile.Add(cat, e.ranking.ShareBoost)
	case model.InteractionViewComplete:
		affinity = e.profile.Add(cat, e.ranking.CompleteBoost)
	case model.InteractionSkip:
		// watched for less than the skip threshold
		affinity = e.profile.Decay(cat, e.ranking.SkipPenalty)
	default:
		// view_start only opens the caller's dwell-time measurement
		affinity = e.profile.Get(cat)
	}
	metrics.IncInteraction(string(typ))
	logging.Debug("profile_updated", map[string]any{
		"video_id": v.ID, "category": string(cat), "type": string(typ), "affinity": affinity,
	})

	if e.journal == nil {
		return
	}
	ev := model.InteractionEvent{Timestamp: e.now().UTC(), Type: typ, VideoID: v.ID, Category: cat}
	if err := e.journal.PutInteraction(ctx, ev); err != nil {
		logging.Warn("journal_write_failed", map[string]any{"error": err.Error(), "video_id": v.ID})
	}
}
