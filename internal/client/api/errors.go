package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/trollterminator/Miniprojekt/internal/common"
)

var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrorNotFound:
		return e.StatusCode == http.StatusNotFound
	case common.ErrorValidation:
		return e.StatusCode == http.StatusBadRequest
	case common.ErrorInternal:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}
