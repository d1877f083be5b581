package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/gemini"
	"github.com/testgenius/testgenius/pkg/utils/testutil"
	"google.golang.org/genai"
)

func TestNew(t *testing.T) {
	t.Run("empty API key is rejected", func(t *testing.T) {
		_, err := gemini.New(context.Background(), "")
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("request goes to the configured model", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gt.True(t, strings.Contains(r.URL.Path, "models/test-model:generateContent"))
			w.Header().Set("Content-Type", "application/json")
			gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"role": "model", "parts": []map[string]any{{"text": "hello"}}}},
				},
			}))
		}))
		defer srv.Close()

		client, err := gemini.New(context.Background(), "test-key",
			gemini.WithModel("test-model"),
			gemini.WithBaseURL(srv.URL+"/"),
		)
		gt.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), genai.Text("hi"), nil)
		gt.NoError(t, err)
		gt.V(t, resp.Text()).Equal("hello")
	})

	t.Run("rate limit is returned as APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`))
		}))
		defer srv.Close()

		client, err := gemini.New(context.Background(), "test-key", gemini.WithBaseURL(srv.URL+"/"))
		gt.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), genai.Text("hi"), nil)
		var apiErr genai.APIError
		gt.True(t, errors.As(err, &apiErr))
		gt.V(t, apiErr.Code).Equal(http.StatusTooManyRequests)
	})
}

func TestGenerateContentIntegration(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_GEMINI_API_KEY")

	client, err := gemini.New(context.Background(), types.GeminiAPIKey(apiKey))
	gt.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), genai.Text("Reply with the word ok."), nil)
	gt.NoError(t, err)
	gt.V(t, resp.Text()).NotEqual("")
}
