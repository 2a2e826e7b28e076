package upload

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"happyafrica/internal/catalog"
	"happyafrica/internal/logging"
	"happyafrica/internal/model"
	"happyafrica/internal/util"
)

const (
	DefaultPoster = "https://picsum.photos/400/800"
	DefaultMusic  = "Original Sound"
	// MagicCaption asks the caption generator to write the description.
	MagicCaption = "magic"
)

var ErrEmptyDraft = errors.New("upload: draft has no media and no description")

// Draft is what the creator submits from the compose screen.
type Draft struct {
	Description string
	MediaURL    string
	Images      []string
	MusicTrack  string
	Category    model.Category
	Kind        string
}

type CaptionGenerator interface {
	GenerateCaption(ctx context.Context, prompt string) string
}

type Injector interface {
	InjectVideo(v model.Video)
}

// Publisher turns drafts into fresh catalog entries.
type Publisher struct {
	captions CaptionGenerator
	sink     Injector
	author   model.User
	now      func() time.Time
	newID    func() string
}

func NewPublisher(captions CaptionGenerator, sink Injector) *Publisher {
	return &Publisher{
		captions: captions,
		sink:     sink,
		author:   catalog.CurrentUser(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Publish builds the video and injects it at the head of the catalog.
func (p *Publisher) Publish(ctx context.Context, d Draft) (model.Video, error) {
	desc := util.NormalizeWhitespace(d.Description)
	if desc == "" && d.MediaURL == "" && len(d.Images) == 0 {
		return model.Video{}, ErrEmptyDraft
	}
	if p.captions != nil && (desc == "" || strings.EqualFold(desc, MagicCaption)) {
		prompt := desc
		if prompt == "" || strings.EqualFold(prompt, MagicCaption) {
			prompt = "a happy moment in Africa"
		}
		desc = p.captions.GenerateCaption(ctx, prompt)
	}

	kind := d.Kind
	if kind == "" {
		kind = "video"
		if d.MediaURL == "" && len(d.Images) > 0 {
			kind = "slideshow"
		}
	}
	category := d.Category
	if category == "" {
		category = model.CategoryDance
	}
	music := d.MusicTrack
	if music == "" {
		music = DefaultMusic
	}
	poster := DefaultPoster
	if len(d.Images) > 0 {
		poster = d.Images[0]
	}

	v := model.Video{
		ID:            "v" + p.newID(),
		URL:           d.MediaURL,
		Images:        append([]string(nil), d.Images...),
		Kind:          kind,
		Poster:        poster,
		Description:   desc,
		Hashtags:      hashtags(desc),
		User:          p.author,
		MusicTrack:    music,
		Category:      category,
		IsFreshUpload: true,
		CreatedAt:     p.now(),
	}
	p.sink.InjectVideo(v)
	logging.Info("upload_published", map[string]any{"id": v.ID, "category": string(v.Category), "kind": v.Kind})
	return v, nil
}

func hashtags(desc string) []string {
	tags := util.ExtractHashtags(desc)
	for _, extra := range []string{"#new", "#happyafrica"} {
		found := false
		for _, t := range tags {
			if t == extra {
				found = true
				break
			}
		}
		if !found {
			tags = append(tags, extra)
		}
	}
	return tags
}
