package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "sentryos/backend/internal/errors"
	"sentryos/backend/internal/interfaces"
	"sentryos/backend/internal/model"
	"sentryos/backend/internal/service"
	"sentryos/backend/internal/telemetry"
)

// AnalysisHandler handles the non-streaming call analysis endpoint.
type AnalysisHandler struct {
	service interfaces.AnalysisService
	rec     telemetry.Recorder
}

func NewAnalysisHandler(svc interfaces.AnalysisService, rec telemetry.Recorder) *AnalysisHandler {
	return &AnalysisHandler{service: svc, rec: rec}
}

// analyzeFailureResponse is the documented failure shape of the analysis
// endpoint: the error plus an empty-but-present analysis body.
type analyzeFailureResponse struct {
	Error    string          `json:"error"`
	Summary  string          `json:"summary"`
	Todos    []model.Todo    `json:"todos"`
	Insights []model.Insight `json:"insights"`
}

// HandleAnalyzeCall godoc
// @Summary      Analyze a call transcript
// @Description  Produces a summary plus extracted todos and insights as a single JSON document.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body  service.AnalyzeCallRequest  true  "Call transcript"
// @Success      200  {object}  model.CallAnalysis
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  analyzeFailureResponse
// @Router       /calls/analyze [post]
func (h *AnalysisHandler) HandleAnalyzeCall(w http.ResponseWriter, r *http.Request) {
	var req service.AnalyzeCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	analysis, err := h.service.AnalyzeCall(r.Context(), &req)
	if err != nil {
		h.rec.Log(slog.LevelWarn, "Call analysis failed", "error", err)
		respondWithJSON(w, http.StatusInternalServerError, analyzeFailureResponse{
			Error:    "Could not analyze call",
			Todos:    []model.Todo{},
			Insights: []model.Insight{},
		})
		return
	}
	respondWithJSON(w, http.StatusOK, analysis)
}
