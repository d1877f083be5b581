package server

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/testgenius/testgenius/pkg/domain/model"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

// backgroundTimeout bounds generation started by a request, including the
// rate-limit backoff between attempts.
const backgroundTimeout = 5 * time.Minute

// detachContext keeps the logger, request ID and clock of ctx but outlives the
// request, which is cancelled once the response is sent.
func detachContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(logging.Detach(ctx), backgroundTimeout)
}

// runBackground starts run without waiting for it. A panic is reported
// instead of taking the server down.
func runBackground(ctx context.Context, run model.BackgroundRun) {
	ctx, cancel := detachContext(ctx)

	go func() {
		defer cancel()
		defer func() {
			if v := recover(); v != nil {
				errutil.HandleError(ctx, "background generation panicked",
					goerr.New("panic in background generation", goerr.V("recovered", v)))
			}
		}()

		run(ctx)
	}()
}
