package genai

import (
	"context"
	"fmt"
	"strings"

	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
)

const (
	CaptionMissingKey = "🚀 Experiencing Africa! #HappyAfrica (API Key Missing)"
	CaptionFallback   = "Just sharing good vibes! ✨ #HappyAfrica"
)

const captionPrompt = `You are a social media expert for a TikTok-like app called "Happy Africa".
Generate a catchy, short, and engaging video caption based on this user input: %q.
Include 3-4 relevant hashtags.
Keep it under 150 characters.
Do not include quotes around the output.`

// GenerateCaption turns a rough description into a post caption.
// It always returns usable text; failures yield a static caption.
func (c *Client) GenerateCaption(ctx context.Context, userPrompt string) string {
	if strings.TrimSpace(userPrompt) == "" {
		return userPrompt
	}
	if !c.Enabled() {
		metrics.IncGenAIFallback("caption")
		return CaptionMissingKey
	}
	text, err := c.generate(ctx, "caption", fmt.Sprintf(captionPrompt, userPrompt), nil)
	if err != nil {
		metrics.IncGenAIFallback("caption")
		logging.Error("genai_caption_error", map[string]any{"error": err.Error()})
		return CaptionFallback
	}
	text = strings.Trim(strings.TrimSpace(text), `"`)
	if text == "" {
		metrics.IncGenAIFallback("caption")
		return CaptionFallback
	}
	return text
}
