package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

// recordGeneration appends record to the audit table when BigQuery is configured.
// Audit failures are reported and never fail the user facing operation.
func (x *UseCase) recordGeneration(ctx context.Context, record *model.GenerationRecord) {
	client := x.clients.BigQuery()
	if client == nil {
		return
	}

	x.auditMu.Lock()
	defer x.auditMu.Unlock()

	schema, _, err := createOrUpdateBigQueryTable(ctx, client, record)
	if err != nil {
		errutil.HandleError(ctx, "failed to prepare generation audit table", err)
		return
	}

	if err := client.Insert(ctx, schema, record); err != nil {
		errutil.HandleError(ctx, "failed to insert generation record", goerr.Wrap(err, "failed to insert generation record",
			goerr.V("id", record.ID),
			goerr.V("kind", record.Kind),
		))
		return
	}

	logging.From(ctx).Debug("Generation recorded", "id", record.ID, "kind", record.Kind)
}

func newRecord(ctx context.Context, kind model.GenerationKind, identity *model.Identity, repo *model.RepositoryRef) *model.GenerationRecord {
	record := model.NewGenerationRecord(kind, logging.CtxTime(ctx))
	if identity != nil {
		record.Login = identity.Profile.Login
	}
	if repo != nil {
		record.Owner = repo.Owner
		record.Repo = repo.Name
	}
	return record
}

func summariesRecord(ctx context.Context, identity *model.Identity, repo *model.RepositoryRef, files model.FileSelection, summaries []*model.TestSummary) *model.GenerationRecord {
	record := newRecord(ctx, model.GenerationKindSummaries, identity, repo)
	record.Files = files.Paths()
	record.SummaryCount = len(summaries)
	return record
}

func codeRecord(ctx context.Context, identity *model.Identity, repo *model.RepositoryRef, code *model.GeneratedCode) *model.GenerationRecord {
	record := newRecord(ctx, model.GenerationKindCode, identity, repo)
	record.Files = code.Files
	record.LangHint = code.LangHint
	if code.Summary != nil {
		record.Framework = code.Summary.Framework
	}
	return record
}

func pullRequestRecord(ctx context.Context, identity *model.Identity, input *model.PullRequestInput, pr *model.PullRequestResult) *model.GenerationRecord {
	record := newRecord(ctx, model.GenerationKindPullRequest, identity, nil)
	record.Owner = input.Owner
	record.Repo = input.Repo
	record.Files = []string{input.FilePath()}
	record.PullRequest = pr.URL
	return record
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.GenerationRecord) (schema bigquery.Schema, schemaUpdated bool, err error) {
	schema, err = bqs.Infer(record)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to infer generation record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, false, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, false, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, false, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, false, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, true, nil
}
