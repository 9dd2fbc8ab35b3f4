package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trollterminator/Miniprojekt/internal/common"
	"github.com/trollterminator/Miniprojekt/internal/shared"
)

const contentTypeJSON = "application/json; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, shared.MessageResponse{Message: msg})
}

// fail maps a service error onto a status and message. Store failures are
// logged and hidden behind ErrorInternal.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrPostNotFound):
		writeMessage(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, common.ErrCommentNotFound):
		writeMessage(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, common.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
		)
		writeMessage(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}
