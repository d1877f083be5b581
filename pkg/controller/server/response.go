package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/testgenius/testgenius/pkg/domain/types"
	"github.com/testgenius/testgenius/pkg/utils/errutil"
	"github.com/testgenius/testgenius/pkg/utils/logging"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to encode response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to encode response","kind":"InternalError"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type errorResponse struct {
	Error string          `json:"error"`
	Kind  types.ErrorKind `json:"kind"`
}

var kindStatus = map[types.ErrorKind]int{
	types.KindUnauthenticated:    http.StatusUnauthorized,
	types.KindUpstream:           http.StatusBadGateway,
	types.KindGeneration:         http.StatusBadGateway,
	types.KindRateLimitExhausted: http.StatusTooManyRequests,
	types.KindMalformedResponse:  http.StatusBadGateway,
	types.KindPullRequest:        http.StatusBadGateway,
	types.KindValidation:         http.StatusBadRequest,
	types.KindBusy:               http.StatusConflict,
	types.KindInvalidTransition:  http.StatusConflict,
	types.KindInternal:           http.StatusInternalServerError,
}

func statusOf(kind types.ErrorKind) int {
	if code, ok := kindStatus[kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// writeError responds with the kind of err. Failures the user cannot act on are
// reported to Sentry as well.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := types.Kind(err)
	code := statusOf(kind)

	if code >= http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "request failed", err)
	} else {
		logging.From(r.Context()).Warn("request rejected",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}

	writeJSON(w, code, &errorResponse{Error: err.Error(), Kind: kind})
}
