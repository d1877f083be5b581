package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/interfaces"
	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID string
	datasetID string
	tableID   string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID for the generation audit (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TESTGENIUS_BIGQUERY_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TESTGENIUS_BIGQUERY_DATASET_ID"),
			Destination: &x.datasetID,
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("TESTGENIUS_BIGQUERY_TABLE_ID"),
			Value:       "generations",
			Destination: &x.tableID,
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

// NewClient returns nil without error when the audit export is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}
	if x.datasetID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "BigQuery dataset ID is required", goerr.V("projectID", x.projectID))
	}

	client, err := bq.New(ctx,
		types.GoogleProjectID(x.projectID),
		types.BQDatasetID(x.datasetID),
		types.BQTableID(x.tableID),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}
