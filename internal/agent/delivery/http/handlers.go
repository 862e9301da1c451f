package http

import (
	"github.com/gin-gonic/gin"

	"weather-agent/pkg/response"
)

// Chat godoc
// @Summary     Ask the agent
// @Description Answers a query. Queries mentioning weather are resolved against OpenWeatherMap, anything else goes to the language model.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       body body     chatReq  true "Query"
// @Success     200  {object} chatResp
// @Failure     422  {object} response.ErrorResp "Body does not match the schema"
// @Failure     429  {object} response.ErrorResp "Too many requests"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processChatReq: %v", err)
		response.ValidationError(c, err)
		return
	}

	text, err := h.uc.ProcessQuery(ctx, *req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessQuery: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(text))
}

// Root godoc
// @Summary     Service banner
// @Tags        Agent
// @Produce     json
// @Success     200 {object} response.MessageResp
// @Router      / [GET]
func (h *handler) Root(c *gin.Context) {
	response.Message(c, RootMessage)
}
