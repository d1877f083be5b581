package types

import "log/slog"

type (
	GitHubAccessToken       string
	GitHubOAuthClientID     string
	GitHubOAuthClientSecret string
	GeminiAPIKey            string
	SessionSecret           string
)

const maskedValue = "***********"

func (x GitHubAccessToken) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x GitHubAccessToken) String() string       { return maskedValue }

func (x GitHubOAuthClientSecret) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x GitHubOAuthClientSecret) String() string       { return maskedValue }

func (x GeminiAPIKey) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x GeminiAPIKey) String() string       { return maskedValue }

func (x SessionSecret) LogValue() slog.Value { return slog.StringValue(maskedValue) }
func (x SessionSecret) String() string       { return maskedValue }
