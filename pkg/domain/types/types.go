package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RequestID string
	SessionID string
	// OAuthState is the CSRF token round-tripped through the OAuth authorization request.
	OAuthState string
	BranchName string
	CommitSHA  string
	// GeminiModel is a generation model name such as "gemini-2.5-flash-preview-05-20".
	GeminiModel string
)

const DefaultGeminiModel GeminiModel = "gemini-2.5-flash-preview-05-20"

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func NewOAuthState() OAuthState {
	return OAuthState(uuid.NewString())
}

func (x SessionID) String() string { return string(x) }

// LogValue shows only a prefix of the session ID because it works as a bearer credential.
func (x SessionID) LogValue() slog.Value {
	if len(x) <= 8 {
		return slog.StringValue("********")
	}
	return slog.StringValue(string(x[:8]) + "...")
}

func (x BranchName) String() string  { return string(x) }
func (x CommitSHA) String() string   { return string(x) }
func (x GeminiModel) String() string { return string(x) }

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
