// Moodreel - Mood-Based Film Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

package describe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodreel/internal/metrics"
	"github.com/tomtom215/moodreel/internal/mood"
	"github.com/tomtom215/moodreel/internal/remote"
)

// BreakerName labels the text-generation circuit breaker.
const BreakerName = "textgen-api"

// DefaultSystemPrompt steers the model toward one short sentence.
const DefaultSystemPrompt = "You are a film curator. Reply with exactly one evocative sentence of at most 30 words describing the viewer's mood. No quotes, no film titles, no preamble."

var errEmptyResponse = errors.New("text generation returned an empty response")

// axisRange names the poles of each axis for the prompt.
var axisRange = map[mood.Axis]string{
	mood.Weight:   "light to heavy",
	mood.Pace:     "slow to fast",
	mood.Comfort:  "challenging to comforting",
	mood.Reality:  "dreamlike to realistic",
	mood.Era:      "classic to contemporary",
	mood.Social:   "solitary to social",
	mood.Tone:     "dark to uplifting",
	mood.Dialogue: "visual to talkative",
}

// GeneratorConfig holds text-generation settings.
type GeneratorConfig struct {
	APIKey  string
	URL     string
	Model   string
	System  string
	Timeout time.Duration
}

// DefaultGeneratorConfig targets a local Ollama instance.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		URL:     "http://localhost:11434",
		Model:   "llama3.2",
		System:  DefaultSystemPrompt,
		Timeout: remote.DefaultTimeout,
	}
}

// generateRequest is the /api/generate request body.
type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// generateResponse is the non-streaming /api/generate response.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generator asks a remote model to describe a mood.
type Generator struct {
	cfg    GeneratorConfig
	client *remote.Client
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithGeneratorClient replaces the default remote client.
func WithGeneratorClient(c *remote.Client) GeneratorOption {
	return func(g *Generator) { g.client = c }
}

// NewGenerator creates a Generator.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenerator(cfg GeneratorConfig, logger zerolog.Logger, opts ...GeneratorOption) *Generator {
	cfg.URL = strings.TrimRight(cfg.URL, "/")
	if cfg.System == "" {
		cfg.System = DefaultSystemPrompt
	}
	g := &Generator{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = remote.NewClient(metrics.ServiceTextGen,
			remote.WithTimeout(cfg.Timeout),
			remote.WithBreaker(remote.NewBreaker(BreakerName, remote.DefaultBreakerConfig())),
			remote.WithLogger(logger.With().Str("component", "textgen").Logger()),
		)
	}
	return g
}

// Enabled reports whether an API key is configured.
func (g *Generator) Enabled() bool {
	return g.cfg.APIKey != ""
}

// Generate returns the model's sentence for m over axes.
func (g *Generator) Generate(ctx context.Context, m mood.Vector, axes []mood.Axis) (string, error) {
	if !g.Enabled() {
		metrics.RecordRemoteCall(metrics.ServiceTextGen, metrics.OutcomeSkipped, 0)
		return "", fmt.Errorf("textgen: %w", remote.ErrMissingCredential)
	}

	body := generateRequest{
		Model:  g.cfg.Model,
		Prompt: Prompt(m, axes),
		System: g.cfg.System,
		Stream: false,
		Options: map[string]any{
			"temperature": 0.9,
			"num_predict": 64,
		},
	}
	headers := map[string]string{"Authorization": "Bearer " + g.cfg.APIKey}

	var resp generateResponse
	if err := g.client.PostJSON(ctx, g.cfg.URL+"/api/generate", headers, body, &resp); err != nil {
		return "", fmt.Errorf("textgen generate: %w", err)
	}

	text := strings.Trim(strings.TrimSpace(resp.Response), `"`)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

// Prompt embeds every axis value of m in a natural-language request.
func Prompt(m mood.Vector, axes []mood.Axis) string {
	var b strings.Builder
	b.WriteString("Describe the mood of a viewer choosing a film tonight. Each slider runs from 0 to 100:\n")
	for _, axis := range axes {
		b.WriteString("- ")
		b.WriteString(string(axis))
		if r, ok := axisRange[axis]; ok {
			b.WriteString(" (")
			b.WriteString(r)
			b.WriteString(")")
		}
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(m.Get(axis), 'f', -1, 64))
		b.WriteString("\n")
	}
	return b.String()
}
