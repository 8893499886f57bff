package queue

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wolyn-genealogy/explorer/internal/util"
	"github.com/wolyn-genealogy/explorer/pkg/common"
	"github.com/wolyn-genealogy/explorer/pkg/graph"
	"github.com/wolyn-genealogy/explorer/pkg/logger"
	pgxstore "github.com/wolyn-genealogy/explorer/pkg/store/pgx"
)

// ImportMessage is the payload published to the import queue. The
// correlation id ties worker log lines back to the submitting request.
type ImportMessage struct {
	CorrelationID string            `json:"correlation_id"`
	Batch         common.EventBatch `json:"batch"`
}

// ProcessImportMessage resolves one queued event batch into the graph.
func ProcessImportMessage(ctx context.Context, pgConn *pgxpool.Pool, body string) error {
	var msg ImportMessage
	if err := json.Unmarshal([]byte(body), &msg); err != nil {
		logger.Error("Failed to decode import message", "err", err)
		return err
	}

	client, err := graph.NewGraphClient(graph.NewGraphClientParams{
		Store:          pgxstore.NewStore(pgConn),
		MatchThreshold: util.GetEnvNumeric("MATCH_THRESHOLD", 0),
		CensusWorkers:  int(util.GetEnvNumeric("CENSUS_WORKERS", 0)),
	})
	if err != nil {
		return err
	}

	stats, err := client.Import(ctx, msg.Batch)
	if err != nil {
		logger.Error("Import failed", "correlation_id", msg.CorrelationID, "err", err)
		return err
	}

	logger.Info(
		"Import finished",
		"correlation_id", msg.CorrelationID,
		"births", stats.BirthsImported,
		"deaths", stats.DeathsImported,
		"marriages", stats.MarriagesImported,
		"census", stats.CensusImported,
		"persons_created", stats.PersonsCreated,
	)
	return nil
}
