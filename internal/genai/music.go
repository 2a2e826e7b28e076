package genai

import (
	"context"
	"encoding/json"
	"strings"

	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
	"happyafrica/internal/model"
)

// Hosted sample tracks standing in for each genre.
const (
	audioBongo1    = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"
	audioBongo2    = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-10.mp3"
	audioAmapiano  = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3"
	audioAfrobeat1 = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-15.mp3"
	audioAfrobeat2 = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-8.mp3"
	audioPop       = "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-16.mp3"
)

var sampleAudio = []string{audioBongo1, audioBongo2, audioAmapiano, audioAfrobeat1, audioAfrobeat2, audioPop}

const musicPrompt = "List 15 currently trending East African Bongo Flava songs, along with popular Afrobeats and Amapiano hits. Return a strictly valid JSON array."

var songSchema = map[string]any{
	"type": "ARRAY",
	"items": map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"id":       map[string]any{"type": "STRING"},
			"title":    map[string]any{"type": "STRING"},
			"artist":   map[string]any{"type": "STRING"},
			"duration": map[string]any{"type": "STRING"},
			"genre":    map[string]any{"type": "STRING"},
		},
		"required": []string{"id", "title", "artist", "duration"},
	},
}

// FallbackHits is served whenever the content service cannot answer.
func FallbackHits() []model.TrendingSong {
	return []model.TrendingSong{
		{ID: "b1", Title: "Yatapita", Artist: "Diamond Platnumz", Duration: "0:45", Genre: "Bongo Flava", AudioURL: audioBongo1},
		{ID: "b2", Title: "Single Again", Artist: "Harmonize", Duration: "0:30", Genre: "Bongo Flava", AudioURL: audioBongo2},
		{ID: "b3", Title: "Sukari", Artist: "Zuchu", Duration: "0:40", Genre: "Bongo Flava", AudioURL: audioAfrobeat1},
		{ID: "b4", Title: "Mahaba", Artist: "Ali Kiba", Duration: "0:50", Genre: "Bongo Flava", AudioURL: audioBongo1},
		{ID: "b5", Title: "Nitongoze", Artist: "Rayvanny ft. Diamond Platnumz", Duration: "0:35", Genre: "Bongo Flava", AudioURL: audioBongo2},
		{ID: "b6", Title: "Mi Amor", Artist: "Marioo ft. Jovial", Duration: "0:45", Genre: "Bongo Flava", AudioURL: audioAfrobeat2},
		{ID: "b7", Title: "Enjoy", Artist: "Jux ft. Diamond Platnumz", Duration: "0:40", Genre: "Bongo Flava", AudioURL: audioPop},
		{ID: "b8", Title: "Nimekuzoea", Artist: "Nandy", Duration: "0:30", Genre: "Bongo Flava", AudioURL: audioBongo1},
		{ID: "b9", Title: "Amelowa", Artist: "Mbosso", Duration: "0:55", Genre: "Bongo Flava", AudioURL: audioBongo2},
		{ID: "b10", Title: "Puuh", Artist: "Billnass ft. Jay Melody", Duration: "0:35", Genre: "Bongo Flava", AudioURL: audioAfrobeat1},
		{ID: "f1", Title: "Water", Artist: "Tyla", Duration: "0:30", Genre: "Amapiano", AudioURL: audioAmapiano},
		{ID: "f2", Title: "Unavailable", Artist: "Davido", Duration: "0:45", Genre: "Afrobeats", AudioURL: audioAfrobeat2},
		{ID: "f3", Title: "Kwangwaru", Artist: "Harmonize ft. Diamond Platnumz", Duration: "0:50", Genre: "Bongo Flava", AudioURL: audioBongo1},
		{ID: "f4", Title: "Tetema", Artist: "Rayvanny ft. Diamond Platnumz", Duration: "0:40", Genre: "Bongo Flava", AudioURL: audioAfrobeat2},
	}
}

// TrendingMusic asks the content service for trending songs. The model cannot
// return real audio, so sample tracks are assigned round-robin.
func (c *Client) TrendingMusic(ctx context.Context) []model.TrendingSong {
	if !c.Enabled() {
		metrics.IncGenAIFallback("music")
		return FallbackHits()
	}
	text, err := c.generate(ctx, "music", musicPrompt, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   songSchema,
	})
	if err != nil {
		metrics.IncGenAIFallback("music")
		logging.Error("genai_music_error", map[string]any{"error": err.Error()})
		return FallbackHits()
	}
	var songs []model.TrendingSong
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &songs); err != nil || len(songs) == 0 {
		metrics.IncGenAIFallback("music")
		if err != nil {
			logging.Warn("genai_music_parse", map[string]any{"error": err.Error()})
		}
		return FallbackHits()
	}
	for i := range songs {
		songs[i].AudioURL = sampleAudio[i%len(sampleAudio)]
	}
	return songs
}
