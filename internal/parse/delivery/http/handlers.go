package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-task-parser/pkg/response"
)

// Parse godoc
// @Summary     Parse an utterance
// @Description Converts one free-text utterance into a structured task/event record with suggested reminders.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance and optional context"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.ErrResp "Empty or malformed input"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, req.toInput())
	if err != nil {
		if status := h.mapError(err); status != http.StatusInternalServerError {
			response.Error(c, status, err)
			return
		}
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newParseResp(output))
}
