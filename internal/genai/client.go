package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"happyafrica/internal/config"
	"happyafrica/internal/logging"
	"happyafrica/internal/metrics"
)

// ErrUnavailable means the content service is not configured.
var ErrUnavailable = errors.New("genai: service unavailable")

// Client talks to the Gemini generateContent endpoint. Callers never see its
// failures directly; GenerateCaption and TrendingMusic fall back to static data.
type Client struct {
	provider    string
	baseURL     string
	model       string
	apiKey      string
	httpClient  *http.Client
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker
	maxAttempts int
	baseBackoff time.Duration
}

func New(cfg config.GenAIConfig) *Client {
	c := &Client{
		provider:    strings.ToLower(cfg.Provider),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		limiter:     rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: 500 * time.Millisecond,
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = 1
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "genai",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn("genai_breaker_state", map[string]any{"from": from.String(), "to": to.String()})
		},
	})
	return c
}

// Enabled reports whether requests will actually be sent.
func (c *Client) Enabled() bool {
	return c.provider == "gemini" && c.apiKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text concatenates the parts of the first candidate.
func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// generate sends one prompt and returns the model's text output.
func (c *Client) generate(ctx context.Context, op, prompt string, gc *generationConfig) (string, error) {
	if !c.Enabled() {
		return "", ErrUnavailable
	}
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: gc,
	})
	if err != nil {
		return "", err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	out, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.doWithRetry(ctx, op, body)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("genai status %d", resp.StatusCode)
		}
		var gr generateResponse
		if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
			return nil, fmt.Errorf("decode genai response: %w", err)
		}
		return gr.text(), nil
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
}

func (c *Client) doWithRetry(ctx context.Context, op string, body []byte) (*http.Response, error) {
	backoff := c.baseBackoff
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			metrics.IncGenAIRetry(op)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)
		resp, err := c.httpClient.Do(req)
		if err == nil {
			if resp.StatusCode != http.StatusTooManyRequests && (resp.StatusCode < 500 || resp.StatusCode > 599) {
				return resp, nil
			}
			wait := retryAfter(resp.Header.Get("Retry-After"), backoff)
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("genai status %d", resp.StatusCode)
			if attempt == c.maxAttempts {
				break
			}
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
			backoff *= 2
			continue
		}
		lastErr = err
		if attempt == c.maxAttempts {
			break
		}
		if err := sleep(ctx, backoff); err != nil {
			return nil, err
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.maxAttempts, lastErr)
}

func retryAfter(header string, def time.Duration) time.Duration {
	if header == "" {
		return def
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return def
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
