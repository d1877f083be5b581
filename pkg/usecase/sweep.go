package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

// SweepSessions deletes expired sessions and the workflows attached to them.
func (x *UseCase) SweepSessions(ctx context.Context) (int, error) {
	now := logging.CtxTime(ctx)

	ids, err := x.clients.SessionRepository().DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to delete expired sessions")
	}

	for _, id := range ids {
		if wf := x.lookupWorkflow(id); wf != nil {
			wf.StartOver()
		}
		x.dropWorkflow(id)
	}

	if len(ids) > 0 {
		logging.From(ctx).Info("Expired sessions removed", slog.Int("count", len(ids)))
	}
	return len(ids), nil
}
