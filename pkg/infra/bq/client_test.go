package bq_test

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/bq"
	"github.com/testgenius/testgenius/pkg/utils/testutil"
)

func TestClient(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_BIGQUERY_PROJECT_ID", "TEST_BIGQUERY_DATASET_ID")
	projectID, datasetID := envs[0], envs[1]

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("generation_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	md, err := client.GetMetadata(ctx)
	gt.NoError(t, err)
	gt.True(t, md == nil)

	record := model.NewGenerationRecord(model.GenerationKindCode, time.Now())
	record.Login = "alice"
	record.Owner = "alice"
	record.Repo = "demo"
	record.Files = []string{"src/a.js"}
	record.Framework = "Jest"
	record.LangHint = "javascript"

	schema := gt.R1(bqs.Infer(record)).NoError(t)
	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, record))
}
