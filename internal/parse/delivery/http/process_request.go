package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("invalid request body")

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	ctx := c.Request.Context()

	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "bind parse request: %v", err)
		return parseReq{}, errInvalidBody
	}

	return req, nil
}
