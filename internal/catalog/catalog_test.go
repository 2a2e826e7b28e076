package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"happyafrica/internal/model"
)

func TestInjectPrependsWithoutDedup(t *testing.T) {
	c := New(SeedVideos())
	n := c.Len()
	c.Inject(model.Video{ID: "v1", Category: model.CategoryDance})
	c.Inject(model.Video{ID: "fresh"})

	snap := c.Snapshot()
	require.Len(t, snap, n+2)
	assert.Equal(t, "fresh", snap[0].ID)
	assert.Equal(t, "v1", snap[1].ID)
	assert.Equal(t, "v1", snap[2].ID)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := New(SeedVideos())
	snap := c.Snapshot()
	snap[0].ID = "mutated"
	v, ok := c.Find("v1")
	require.True(t, ok)
	assert.Equal(t, "v1", v.ID)
}

func TestFirstAd(t *testing.T) {
	ad, ok := New(SeedVideos()).FirstAd()
	require.True(t, ok)
	assert.Equal(t, "ad1", ad.ID)
	assert.Equal(t, BrandAccountID, ad.User.ID)

	_, ok = New(nil).FirstAd()
	assert.False(t, ok)
}
