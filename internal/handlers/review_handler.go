// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/service"
	"cert_keep/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// PostReview は審査を提出するためのハンドラ。
// 操作者情報はミドルウェアが取り出したものをサービスへ明示的に渡す
func (h *ReviewHandler) PostReview(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReview"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	actor, err := middleware.GetActorFromContext(r.Context())
	if err != nil {
		logger.Warn("Actor not found in context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("reviewer", actor.Name))

	var req model.SubmitReviewRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.service.SubmitReview(r.Context(), projectID, actor, &req)
	if err != nil {
		logger.Error("Error submitting review in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review submitted successfully",
		slog.String("review_id", resp.Review.ReviewID.String()),
		slog.String("track", string(req.Track)),
	)
	webutil.RespondWithJSON(w, http.StatusCreated, resp, logger)
}

// GetReviews はトラック別の審査履歴（新しい順）を取得するためのハンドラ
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReviews"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}
	track := model.Track(r.URL.Query().Get("track"))

	records, err := h.service.ListReviews(r.Context(), projectID, track)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if records == nil {
		records = []*model.ReviewRecord{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, records, logger)
}

// GetSteps はトラック別のステップ進行（導出）を取得するためのハンドラ
func (h *ReviewHandler) GetSteps(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSteps"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}
	track := model.Track(r.URL.Query().Get("track"))

	summary, err := h.service.GetTrackSteps(r.Context(), projectID, track)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// PatchIssueStatus は指摘事項の消し込みのためのハンドラ（審査側の明示操作）
func (h *ReviewHandler) PatchIssueStatus(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchIssueStatus"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}
	reviewID, ok := parseUUIDParam(w, r, logger, "review_id")
	if !ok {
		return
	}
	issueID, ok := parseUUIDParam(w, r, logger, "issue_id")
	if !ok {
		return
	}

	var req model.UpdateIssueStatusRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	if err := h.service.UpdateIssueStatus(r.Context(), projectID, reviewID, issueID, req.Status); err != nil {
		logger.Error("Error updating issue status in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
