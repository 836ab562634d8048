package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-parser/internal/parse"
	"voice-task-parser/pkg/log"
)

// Handler is the public interface for the parse HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc parse.UseCase
}

// New creates a new HTTP handler for the parse domain.
func New(l log.Logger, uc parse.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
