package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/avikds/careerpath-be/internal/config"
	"github.com/avikds/careerpath-be/internal/models"
)

// TextGenerator is the surface the services need from the generation provider.
type TextGenerator interface {
	Generate(ctx context.Context, kind models.GenerationKind, profile models.Profile, jobTitle string) (string, error)
}

// Client calls the Gemini API to turn a student profile into guidance markup.
// It performs no retries; upstream failures bubble up to the caller, which is
// responsible for hiding provider internals from the HTTP response.
type Client struct {
	genai *genai.Client
	model string
}

// New creates a Gemini client from the process configuration.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{genai: c, model: cfg.GeminiModel}, nil
}

// Generate renders the prompt for the requested kind and asks the model for
// an HTML fragment. The returned markup is passed through verbatim; trust
// decisions belong to whoever renders it.
func (c *Client) Generate(ctx context.Context, kind models.GenerationKind, profile models.Profile, jobTitle string) (string, error) {
	prompt, err := BuildPrompt(kind, profile, jobTitle)
	if err != nil {
		return "", err
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
