package handler

import (
	"net/http"

	"github.com/albapepper/scoracle-chat/internal/api/respond"
	"github.com/albapepper/scoracle-chat/internal/chat"
)

// Chat answers one conversational turn.
// @Summary Ask a stats question
// @Description Answers a natural-language Premier League stats question. The returned context should be sent back with the next turn so follow-ups like "and his assists?" resolve to the same player.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body chat.Request true "Query and optional context"
// @Success 200 {object} chat.Response
// @Failure 400 {object} respond.ErrorResponse
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := respond.DecodeJSON(w, r, &req); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, respond.CodeInvalidBody,
			"Request body must be a JSON object with a query field", err.Error())
		return
	}

	resp := h.engine.Answer(req)
	h.logger.Info("Chat answered", "intent", resp.Intent, "query_len", len(req.Query))
	respond.WriteJSONObject(w, http.StatusOK, resp)
}
