// internal/handlers/adjustment_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"cert_keep/internal/model"
	"cert_keep/internal/service"
	"cert_keep/internal/webutil"
)

type AdjustmentHandler struct {
	service service.AdjustmentService
	logger  *slog.Logger
}

func NewAdjustmentHandler(s service.AdjustmentService, logger *slog.Logger) *AdjustmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdjustmentHandler{
		service: s,
		logger:  logger,
	}
}

// GetAdjustments は是正対応ワークリストを取得するためのハンドラ。
// 一覧はオープンな指摘事項から毎回再構築される
func (h *AdjustmentHandler) GetAdjustments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAdjustments"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}
	track := model.Track(r.URL.Query().Get("track"))

	items, err := h.service.ListAdjustments(r.Context(), projectID, track)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if items == nil {
		items = []*model.AdjustmentItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items, logger)
}

// PatchAdjustments は完了自己申告を保存するためのハンドラ（冪等なUPSERT）
func (h *AdjustmentHandler) PatchAdjustments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchAdjustments"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	var req model.SaveAdjustmentsRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.SaveCompletions(r.Context(), projectID, &req); err != nil {
		logger.Error("Error saving adjustments in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Adjustments saved successfully",
		slog.String("project_id", projectID.String()),
		slog.Int("items", len(req.Items)),
	)
	w.WriteHeader(http.StatusNoContent)
}
