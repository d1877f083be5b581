package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/mock"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra"
	"github.com/testgenius/testgenius/pkg/usecase"
	"google.golang.org/genai"
)

func sampleSelection() model.FileSelection {
	return model.FileSelection{
		{Name: "sum.js", Path: "src/sum.js", Type: "file", Content: "export const sum = (a, b) => a + b;"},
	}
}

func TestBuildSummariesPrompt(t *testing.T) {
	prompt := usecase.BuildSummariesPromptForTest(sampleSelection())
	gt.S(t, prompt).Contains("You are an expert software test engineer.")
	gt.S(t, prompt).Contains("covering both happy paths and edge cases")
	gt.S(t, prompt).Contains("If no clear test scenarios are identified, return an empty array.")
	gt.S(t, prompt).Contains("--- File: sum.js (src/sum.js) ---\n```\nexport const sum = (a, b) => a + b;\n```\n")
}

func TestBuildCodePrompt(t *testing.T) {
	input := &model.GenerateCodeInput{
		OriginalContent: "export const sum = (a, b) => a + b;",
		Summary: &model.TestSummary{
			Summary:   "sum adds numbers",
			Framework: "Jest",
			Scenarios: []string{"adds two positives"},
		},
		Framework: "Jest",
	}

	prompt := gt.R1(usecase.BuildCodePromptForTest(input, "javascript")).NoError(t)
	gt.S(t, prompt).Contains("using the **Jest** framework")
	gt.S(t, prompt).Contains("Only output the code block, nothing else.")
	gt.S(t, prompt).Contains("```json\n{\n  \"summary\": \"sum adds numbers\",")
	gt.S(t, prompt).Contains("```javascript\nexport const sum = (a, b) => a + b;\n```")
}

func TestGenerateSummaries(t *testing.T) {
	t.Run("parses structured response", func(t *testing.T) {
		var gotConfig *genai.GenerateContentConfig
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				gotConfig = config
				return textResponse(`[{"summary":"sum adds numbers","framework":"Jest","scenarios":["adds two positives","handles negatives"]}]`), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		summaries, err := uc.GenerateSummaries(context.Background(), nil, sampleSelection())
		gt.NoError(t, err)
		gt.Equal(t, len(summaries), 1)
		gt.Equal(t, summaries[0].Framework, "Jest")
		gt.Equal(t, len(summaries[0].Scenarios), 2)

		gt.True(t, gotConfig != nil)
		gt.Equal(t, gotConfig.ResponseMIMEType, "application/json")
		gt.Equal(t, gotConfig.ResponseSchema.Type, genai.TypeArray)
		gt.Equal(t, gotConfig.ResponseSchema.Items.Type, genai.TypeObject)
		gt.Equal(t, len(gotConfig.ResponseSchema.Items.PropertyOrdering), 3)
	})

	t.Run("empty array is a valid result", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("[]"), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		summaries, err := uc.GenerateSummaries(context.Background(), nil, sampleSelection())
		gt.NoError(t, err)
		gt.Equal(t, len(summaries), 0)
	})

	t.Run("unparsable response is a generation error", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("not json"), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateSummaries(context.Background(), nil, sampleSelection())
		gt.True(t, errors.Is(err, types.ErrGeneration))
		gt.Equal(t, types.Kind(err), types.KindGeneration)
	})

	t.Run("upstream failure is a generation error", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, genai.APIError{Code: 500, Message: "boom"}
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateSummaries(context.Background(), nil, sampleSelection())
		gt.Equal(t, types.Kind(err), types.KindGeneration)
		gt.S(t, err.Error()).Contains("Failed to generate test summaries with AI. Please try again.")
	})

	t.Run("rate limit exhaustion keeps its kind", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, rateLimitError()
			},
		}
		sleeper := &sleepRecorder{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)), usecase.WithSleep(sleeper.Sleep))

		_, err := uc.GenerateSummaries(context.Background(), nil, sampleSelection())
		gt.Equal(t, types.Kind(err), types.KindRateLimitExhausted)
	})

	t.Run("empty selection is rejected without a call", func(t *testing.T) {
		genAI := &mock.GenAIMock{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateSummaries(context.Background(), nil, nil)
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.S(t, err.Error()).Contains("No files selected for summary generation.")
		gt.Equal(t, len(genAI.GenerateContentCalls()), 0)
	})

	t.Run("file with fetch error is rejected", func(t *testing.T) {
		genAI := &mock.GenAIMock{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		files := append(sampleSelection(), model.NewFetchFailedFile("b.js", "src/b.js", 10, errors.New("404")))
		_, err := uc.GenerateSummaries(context.Background(), nil, files)
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.Equal(t, len(genAI.GenerateContentCalls()), 0)
	})
}

func TestGenerateCode(t *testing.T) {
	summary := &model.TestSummary{Summary: "sum adds numbers", Framework: "Jest", Scenarios: []string{"adds"}}

	t.Run("returns code with language hint", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				gt.Equal(t, config, nil)
				gt.Equal(t, len(contents), 1)
				gt.S(t, contents[0].Parts[0].Text).Contains("**Jest**")
				return textResponse("test('adds', () => {})"), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		code, err := uc.GenerateCode(context.Background(), nil, model.GenerateCodeInput{
			OriginalContent: "export const sum = (a, b) => a + b;",
			Summary:         summary,
			Framework:       "Jest",
		})
		gt.NoError(t, err)
		gt.Equal(t, code.Code, "test('adds', () => {})")
		gt.Equal(t, code.LangHint, "javascript")
	})

	t.Run("framework falls back to the summary", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return textResponse("code"), nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		code, err := uc.GenerateCode(context.Background(), nil, model.GenerateCodeInput{
			OriginalContent: "x",
			Summary:         &model.TestSummary{Summary: "s", Framework: "Pytest"},
		})
		gt.NoError(t, err)
		gt.Equal(t, code.LangHint, "python")
	})

	t.Run("missing data is rejected", func(t *testing.T) {
		genAI := &mock.GenAIMock{}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateCode(context.Background(), nil, model.GenerateCodeInput{Summary: summary, Framework: "Jest"})
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.S(t, err.Error()).Contains("Missing required data for test code generation.")

		_, err = uc.GenerateCode(context.Background(), nil, model.GenerateCodeInput{
			OriginalContent: "x",
			Summary:         &model.TestSummary{Summary: "s"},
		})
		gt.True(t, errors.Is(err, types.ErrValidation))
		gt.Equal(t, len(genAI.GenerateContentCalls()), 0)
	})

	t.Run("failure is a generation error", func(t *testing.T) {
		genAI := &mock.GenAIMock{
			GenerateContentFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return nil, errors.New("connection reset")
			},
		}
		uc := usecase.New(infra.New(infra.WithGenAI(genAI)))

		_, err := uc.GenerateCode(context.Background(), nil, model.GenerateCodeInput{
			OriginalContent: "x",
			Summary:         summary,
			Framework:       "Jest",
		})
		gt.Equal(t, types.Kind(err), types.KindGeneration)
		gt.S(t, err.Error()).Contains("Failed to generate test code with AI. Please try again.")
	})
}
