package model

import (
	"time"

	"github.com/google/uuid"
)

type GenerationKind string

const (
	GenerationKindSummaries   GenerationKind = "summaries"
	GenerationKindCode        GenerationKind = "code"
	GenerationKindPullRequest GenerationKind = "pull_request"
)

// GenerationRecord is one row of the generation audit table.
type GenerationRecord struct {
	ID           string         `json:"id" bigquery:"id"`
	Kind         GenerationKind `json:"kind" bigquery:"kind"`
	Login        string         `json:"login" bigquery:"login"`
	Owner        string         `json:"owner" bigquery:"owner"`
	Repo         string         `json:"repo" bigquery:"repo"`
	Files        []string       `json:"files" bigquery:"files"`
	Framework    string         `json:"framework" bigquery:"framework"`
	LangHint     string         `json:"lang_hint" bigquery:"lang_hint"`
	SummaryCount int            `json:"summary_count" bigquery:"summary_count"`
	PullRequest  string         `json:"pull_request" bigquery:"pull_request"`
	Timestamp    time.Time      `json:"timestamp" bigquery:"timestamp"`
}

func NewGenerationRecord(kind GenerationKind, now time.Time) *GenerationRecord {
	return &GenerationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Timestamp: now.UTC(),
	}
}
