package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category is the content bucket a video belongs to.
type Category string

const (
	CategoryDance  Category = "dance"
	CategoryComedy Category = "comedy"
	CategoryTravel Category = "travel"
	CategoryTech   Category = "tech"
	CategoryFood   Category = "food"
	CategoryAd     Category = "ad"
)

// KnownCategories returns the organic categories, ads excluded.
func KnownCategories() []Category {
	return []Category{CategoryDance, CategoryComedy, CategoryTravel, CategoryTech, CategoryFood}
}

// User represents a subset of account fields shown next to a video.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	Likes       int    `json:"likes"`
	Bio         string `json:"bio,omitempty"`
	Coins       int    `json:"coins"`
}

// Video is a single feed entry. Media fields are opaque references.
type Video struct {
	ID          string   `json:"id"`
	URL         string   `json:"url,omitempty"`
	Images      []string `json:"images,omitempty"`
	Kind        string   `json:"type,omitempty"` // video or slideshow
	Poster      string   `json:"poster"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	Likes       int      `json:"likes"`
	Comments    int      `json:"comments"`
	Shares      int      `json:"shares"`
	User        User     `json:"user"`
	MusicTrack  string   `json:"musicTrack,omitempty"`
	Category    Category `json:"category"`
	IsAd        bool     `json:"isAd,omitempty"`
	AdLink      string   `json:"adLink,omitempty"`
	// IsFreshUpload marks content created during this session.
	IsFreshUpload bool      `json:"isFreshUpload,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// FeedType selects between the curated and the personalized feed.
type FeedType string

const (
	FeedFollowing FeedType = "following"
	FeedForYou    FeedType = "foryou"
)

var ErrUnknownFeedType = errors.New("unknown feed type")

// ParseFeedType accepts "following" and "foryou" (case-insensitive).
func ParseFeedType(s string) (FeedType, error) {
	switch FeedType(strings.ToLower(strings.TrimSpace(s))) {
	case FeedFollowing:
		return FeedFollowing, nil
	case FeedForYou:
		return FeedForYou, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeedType, s)
}

// InteractionType is a playback milestone or gesture on a video.
type InteractionType string

const (
	InteractionViewStart    InteractionType = "view_start"
	InteractionViewComplete InteractionType = "view_complete"
	InteractionLike         InteractionType = "like"
	InteractionShare        InteractionType = "share"
	InteractionSkip         InteractionType = "skip"
)

var ErrUnknownInteraction = errors.New("unknown interaction type")

func ParseInteraction(s string) (InteractionType, error) {
	switch t := InteractionType(strings.ToLower(strings.TrimSpace(s))); t {
	case InteractionViewStart, InteractionViewComplete, InteractionLike, InteractionShare, InteractionSkip:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInteraction, s)
}

// InteractionEvent is a tracked interaction as written to the journal.
type InteractionEvent struct {
	Timestamp time.Time
	Type      InteractionType
	VideoID   string
	Category  Category
}

// TrendingSong is a music track suggested for uploads.
type TrendingSong struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
	Genre    string `json:"genre,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}
