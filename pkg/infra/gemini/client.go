package gemini

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"google.golang.org/genai"
)

// Client sends generation requests to the Gemini API with a fixed model.
type Client struct {
	client *genai.Client
	model  types.GeminiModel
}

var _ interfaces.GenAI = (*Client)(nil)

type config struct {
	model   types.GeminiModel
	baseURL string
}

type Option func(*config)

func WithModel(model types.GeminiModel) Option {
	return func(cfg *config) {
		cfg.model = model
	}
}

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(cfg *config) {
		cfg.baseURL = url
	}
}

func New(ctx context.Context, apiKey types.GeminiAPIKey, options ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Gemini API key is empty")
	}

	cfg := &config{model: types.DefaultGeminiModel}
	for _, opt := range options {
		opt(cfg)
	}

	cc := &genai.ClientConfig{
		APIKey:  string(apiKey),
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.baseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client", goerr.V("model", cfg.model))
	}

	return &Client{
		client: client,
		model:  cfg.model,
	}, nil
}

// GenerateContent returns errors from the API unwrapped so callers can inspect
// genai.APIError for rate limiting.
func (x *Client) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	logging.From(ctx).Debug("Sending generation request",
		slog.String("model", x.model.String()),
		slog.Int("contents", len(contents)),
	)

	resp, err := x.client.Models.GenerateContent(ctx, x.model.String(), contents, config)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
