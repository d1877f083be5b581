package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/types"
)

type TestSummary struct {
	Summary   string   `json:"summary"`
	Framework string   `json:"framework"`
	Scenarios []string `json:"scenarios"`
}

func (x *TestSummary) Validate() error {
	if x == nil {
		return goerr.Wrap(types.ErrValidation, "summary is nil")
	}
	if x.Summary == "" {
		return goerr.Wrap(types.ErrValidation, "summary text is empty")
	}
	return nil
}

var langHints = []struct {
	keywords []string
	lang     string
}{
	{keywords: []string{"jest", "react", "javascript"}, lang: "javascript"},
	{keywords: []string{"junit", "java"}, lang: "java"},
	{keywords: []string{"selenium", "pytest", "python"}, lang: "python"},
	{keywords: []string{"c#", "nunit"}, lang: "csharp"},
}

// LangHint maps a free-form framework name to a code fence language. The first
// matching row wins, so "JavaScript" is javascript and never java.
func LangHint(framework string) string {
	fw := strings.ToLower(framework)
	for _, h := range langHints {
		for _, kw := range h.keywords {
			if strings.Contains(fw, kw) {
				return h.lang
			}
		}
	}
	return ""
}

type GenerateCodeInput struct {
	OriginalContent string       `json:"originalFileContent"`
	Summary         *TestSummary `json:"summary"`
	Framework       string       `json:"framework"`
}

func (x *GenerateCodeInput) Validate() error {
	if x.OriginalContent == "" {
		return goerr.Wrap(types.ErrValidation, "original file content is empty")
	}
	if err := x.Summary.Validate(); err != nil {
		return err
	}
	return nil
}

func (x *GenerateCodeInput) FrameworkName() string {
	if x.Framework != "" {
		return x.Framework
	}
	if x.Summary != nil {
		return x.Summary.Framework
	}
	return ""
}

type GeneratedCode struct {
	Code     string       `json:"code"`
	LangHint string       `json:"langHint"`
	Summary  *TestSummary `json:"summary,omitempty"`
	// Files are the paths of the selection the code was generated from.
	Files []string `json:"files,omitempty"`
}
