package http

import (
	"errors"
	"net/http"

	"voice-task-parser/internal/parse"
)

func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, parse.ErrEmptyText):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
