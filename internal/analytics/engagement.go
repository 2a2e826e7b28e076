package analytics

import (
	"sort"
	"time"

	"happyafrica/internal/model"
)

// HourlyEngagement aggregates interactions into per-hour buckets keyed by type.
func HourlyEngagement(events []model.InteractionEvent) map[time.Time]map[model.InteractionType]int {
	buckets := make(map[time.Time]map[model.InteractionType]int)
	for _, e := range events {
		ts := e.Timestamp.UTC()
		key := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), 0, 0, 0, time.UTC)
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[model.InteractionType]int)
		}
		buckets[key][e.Type]++
	}
	return buckets
}

// SortedBucketKeys returns sorted hour keys.
func SortedBucketKeys(m map[time.Time]map[model.InteractionType]int) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// CategoryTotals counts interactions per content category.
func CategoryTotals(events []model.InteractionEvent) map[model.Category]int {
	out := make(map[model.Category]int)
	for _, e := range events {
		out[e.Category]++
	}
	return out
}
