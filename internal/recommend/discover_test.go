package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"happyafrica/internal/model"
)

func TestTrendingIsDeterministic(t *testing.T) {
	e := newTestEngine()
	first := e.TrendingFeed()
	assert.Equal(t, []string{"v5", "v4", "v2", "v1", "v3"}, ids(first))
	for i := 0; i < 5; i++ {
		assert.Equal(t, ids(first), ids(e.TrendingFeed()))
	}
}

func TestTrendingIgnoresProfile(t *testing.T) {
	e := newTestEngine()
	e.TrackInteraction(context.Background(), model.Video{ID: "v3", Category: model.CategoryTech}, model.InteractionShare)
	assert.Equal(t, []string{"v5", "v4", "v2", "v1", "v3"}, ids(e.TrendingFeed()))
}

func TestSearch(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		query string
		want  []string
	}{
		{"DANCE", []string{"v5"}},
		{"#JOLLOF", []string{"v4"}},
		{"chef", []string{"v4"}},
		{"africa", []string{"v1", "v4", "ad1"}},
		{"refresh", []string{"ad1"}},
		{"nothing-matches", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := e.SearchVideos(tc.query)
			assert.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}
