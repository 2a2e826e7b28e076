package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("New dance challenge!", "DANCE"))
	assert.False(t, ContainsFold("Cooking Jollof", "dance"))
	assert.True(t, AnyContainsFold([]string{"#food", "#Jollof"}, "jollof"))
	assert.False(t, AnyContainsFold(nil, "x"))
}

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("Sunset in #Zanzibar with #friends #zanzibar, no tag here")
	assert.Equal(t, []string{"#zanzibar", "#friends"}, got)
	assert.Empty(t, ExtractHashtags("plain caption"))
}

func TestTruncateAndWhitespace(t *testing.T) {
	assert.Equal(t, "abc…", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \n b\t c "))
}
