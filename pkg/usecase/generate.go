package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/logging"
	"google.golang.org/genai"
)

const summariesPromptTemplate = `
You are an expert software test engineer. Your task is to analyze the provided code files and identify logical, high-quality test scenarios. For each scenario, provide a concise summary and suggest a suitable testing framework (e.g., Jest for JavaScript/React, JUnit for Java, Selenium for web automation, Pytest for Python).

The output should be a JSON array of objects, where each object has the following structure:
{
  "summary": "A brief description of the test scenario.",
  "framework": "Suggested testing framework (e.g., Jest, JUnit, Selenium, Pytest).",
  "scenarios": [
    "Specific test case 1: Description of what to test.",
    "Specific test case 2: Description of what to test."
  ]
}

Ensure the summaries and scenarios are professional, meaningful, and directly relevant to the code's functionality, covering both happy paths and edge cases. If no clear test scenarios are identified, return an empty array.

Code Files to Analyze:
%s
`

const codePromptTemplate = `
You are an expert software test engineer.
Generate a complete, production-ready test case for the provided original code using the **%s** framework.
The test should strictly adhere to the scenario described in the following summary, covering all specific test cases mentioned.
Add clear, professional comments to explain the purpose of each test block, setup, and assertion.
Ensure the generated code is clean, readable, follows best practices for the chosen framework, and is ready to be directly used in a project.
Only output the code block, nothing else.

Test Scenario Summary:
` + "```json" + `
%s
` + "```" + `

Original Code:
` + "```%s" + `
%s
` + "```" + `

Generated Test Code:
`

func summariesSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary":   {Type: genai.TypeString},
				"framework": {Type: genai.TypeString},
				"scenarios": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			PropertyOrdering: []string{"summary", "framework", "scenarios"},
		},
	}
}

func buildSummariesPrompt(files model.FileSelection) string {
	return fmt.Sprintf(summariesPromptTemplate, files.CombinedContent())
}

func buildCodePrompt(input *model.GenerateCodeInput, langHint string) (string, error) {
	summary, err := json.MarshalIndent(input.Summary, "", "  ")
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode summary")
	}
	return fmt.Sprintf(codePromptTemplate, input.FrameworkName(), string(summary), langHint, input.OriginalContent), nil
}

// generationError keeps rate limit and malformed response failures as they are and
// reports every other failure as a generation error.
func generationError(err error, msg string) error {
	if types.Kind(err) == types.KindRateLimitExhausted || types.Kind(err) == types.KindMalformedResponse {
		return goerr.Wrap(err, msg)
	}
	return goerr.Wrap(types.ErrGeneration, msg, goerr.V("error", err.Error()))
}

// GenerateSummaries asks the generation service for test scenarios covering files.
// An empty result is valid and means no scenario was identified. identity is used
// for the audit record only and may be nil.
func (x *UseCase) GenerateSummaries(ctx context.Context, identity *model.Identity, files model.FileSelection) ([]*model.TestSummary, error) {
	summaries, err := x.generateSummaries(ctx, files)
	if err != nil {
		return nil, err
	}
	x.recordGeneration(ctx, summariesRecord(ctx, identity, nil, files, summaries))
	return summaries, nil
}

// GenerateCode asks the generation service for test code realizing one summary.
// identity is used for the audit record only and may be nil.
func (x *UseCase) GenerateCode(ctx context.Context, identity *model.Identity, input model.GenerateCodeInput) (*model.GeneratedCode, error) {
	code, err := x.generateCode(ctx, input)
	if err != nil {
		return nil, err
	}
	x.recordGeneration(ctx, codeRecord(ctx, identity, nil, code))
	return code, nil
}

func (x *UseCase) generateSummaries(ctx context.Context, files model.FileSelection) ([]*model.TestSummary, error) {
	if len(files) == 0 {
		return nil, goerr.Wrap(types.ErrValidation, "No files selected for summary generation.")
	}
	if err := files.Validate(); err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   summariesSchema(),
	}

	text, err := x.generate(ctx, buildSummariesPrompt(files), config)
	if err != nil {
		return nil, generationError(err, "Failed to generate test summaries with AI. Please try again.")
	}

	var summaries []*model.TestSummary
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &summaries); err != nil {
		return nil, goerr.Wrap(types.ErrGeneration, "Failed to generate test summaries with AI. Please try again.",
			goerr.V("error", err.Error()),
			goerr.V("response", text),
		)
	}

	// The service may return null elements; they carry nothing to review.
	result := make([]*model.TestSummary, 0, len(summaries))
	for _, s := range summaries {
		if s != nil {
			result = append(result, s)
		}
	}

	logging.From(ctx).Info("Generated test summaries",
		slog.Any("files", files.Paths()),
		slog.Int("count", len(result)),
	)
	return result, nil
}

func (x *UseCase) generateCode(ctx context.Context, input model.GenerateCodeInput) (*model.GeneratedCode, error) {
	if err := input.Validate(); err != nil {
		return nil, goerr.Wrap(err, "Missing required data for test code generation.")
	}
	if input.FrameworkName() == "" {
		return nil, goerr.Wrap(types.ErrValidation, "Missing required data for test code generation.")
	}

	langHint := model.LangHint(input.FrameworkName())
	prompt, err := buildCodePrompt(&input, langHint)
	if err != nil {
		return nil, err
	}

	text, err := x.generate(ctx, prompt, nil)
	if err != nil {
		return nil, generationError(err, "Failed to generate test code with AI. Please try again.")
	}

	logging.From(ctx).Info("Generated test code",
		slog.String("framework", input.FrameworkName()),
		slog.String("langHint", langHint),
		slog.Int("length", len(text)),
	)

	return &model.GeneratedCode{
		Code:     text,
		LangHint: langHint,
		Summary:  input.Summary,
	}, nil
}
