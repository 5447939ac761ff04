package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	app_errors "sentryos/backend/internal/errors"
	"sentryos/backend/internal/interfaces"
	"sentryos/backend/internal/model"
	"sentryos/backend/internal/service"
	"sentryos/backend/internal/telemetry"
)

// AssistantHandler handles the streaming relay endpoints and the exchange
// journal listing.
type AssistantHandler struct {
	service interfaces.AssistantService
	rec     telemetry.Recorder
}

func NewAssistantHandler(svc interfaces.AssistantService, rec telemetry.Recorder) *AssistantHandler {
	return &AssistantHandler{service: svc, rec: rec}
}

// HandleEmailMessage godoc
// @Summary      Stream an email assistant reply
// @Description  Relays the upstream agent response as server-sent events, terminated by a [DONE] sentinel.
// @Tags         Assistants
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body  service.CreateMessageRequest  true  "Conversation turns"
// @Success      200  {object}  model.StreamEvent "Stream of events"
// @Failure      400  {object}  ErrorResponse
// @Router       /assistants/email/messages [post]
func (h *AssistantHandler) HandleEmailMessage(w http.ResponseWriter, r *http.Request) {
	h.streamMessage(w, r, service.AssistantEmail)
}

// HandleCallMessage godoc
// @Summary      Stream a call assistant reply
// @Description  Relays the upstream agent response as server-sent events, terminated by a [DONE] sentinel.
// @Tags         Assistants
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body  service.CreateMessageRequest  true  "Conversation turns"
// @Success      200  {object}  model.StreamEvent "Stream of events"
// @Failure      400  {object}  ErrorResponse
// @Router       /assistants/call/messages [post]
func (h *AssistantHandler) HandleCallMessage(w http.ResponseWriter, r *http.Request) {
	h.streamMessage(w, r, service.AssistantCall)
}

// streamMessage is the relay core. Validation happens before the SSE headers
// are set and before the upstream call is opened: malformed bodies are plain
// 400 JSON responses and cost nothing upstream. Once the stream starts, all
// failures travel inside it; a write to a disconnected client is swallowed and
// the remaining events are drained so the service goroutine can finish.
func (h *AssistantHandler) streamMessage(w http.ResponseWriter, r *http.Request, kind service.AssistantKind) {
	var req service.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rec.Count("relay.rejected", 1, map[string]string{"assistant": string(kind)})
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		h.rec.Count("relay.rejected", 1, map[string]string{"assistant": string(kind)})
		respondWithError(w, err)
		return
	}
	if err := h.service.ValidateMessages(&req); err != nil {
		h.rec.Count("relay.rejected", 1, map[string]string{"assistant": string(kind)})
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	streamChan := make(chan model.StreamEvent)
	go h.service.StreamMessage(r.Context(), kind, &req, streamChan)

	clientGone := false
	for ev := range streamChan {
		if clientGone || r.Context().Err() != nil {
			clientGone = true
			continue
		}
		if err := writeStreamEvent(w, ev); err != nil {
			h.rec.Log(slog.LevelWarn, "Could not write to stream, client likely disconnected.", "error", err)
			clientGone = true
		}
	}

	if !clientGone {
		writeDoneSentinel(w)
	}
	h.rec.Log(slog.LevelInfo, "Finished streaming response.", "assistant", kind, "client_gone", clientGone)
}

// HandleListExchanges godoc
// @Summary      List journaled exchanges
// @Description  Returns the most recent completed assistant exchanges, newest first.
// @Tags         Exchanges
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of exchanges (default 50, cap 200)"
// @Success      200  {array}   model.Exchange
// @Failure      500  {object}  ErrorResponse
// @Router       /exchanges [get]
func (h *AssistantHandler) HandleListExchanges(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	exchanges, err := h.service.RecentExchanges(r.Context(), limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, exchanges)
}
