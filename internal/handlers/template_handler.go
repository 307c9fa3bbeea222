// internal/handlers/template_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"cert_keep/internal/model"
	"cert_keep/internal/service"
	"cert_keep/internal/webutil"
)

type TemplateHandler struct {
	service service.TemplateService
	logger  *slog.Logger
}

func NewTemplateHandler(s service.TemplateService, logger *slog.Logger) *TemplateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateHandler{
		service: s,
		logger:  logger,
	}
}

// PostTemplate は新しいテンプレートを作成するためのハンドラ
func (h *TemplateHandler) PostTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTemplate"))

	var req model.CreateTemplateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	template, err := h.service.CreateTemplate(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template created successfully", slog.String("template_id", template.TemplateID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, template, logger)
}

// GetTemplates はテンプレート一覧を取得するためのハンドラ
func (h *TemplateHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplates"))

	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		logger.Error("Error listing templates in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if templates == nil {
		templates = []*model.CertificationTemplate{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, templates, logger)
}

// GetTemplate は単一のテンプレートを取得するためのハンドラ
func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTemplate"))

	templateID, ok := parseUUIDParam(w, r, logger, "template_id")
	if !ok {
		return
	}

	template, err := h.service.GetTemplate(r.Context(), templateID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

// PutTemplate はテンプレートを全置換更新するためのハンドラ
func (h *TemplateHandler) PutTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTemplate"))

	templateID, ok := parseUUIDParam(w, r, logger, "template_id")
	if !ok {
		return
	}

	var req model.UpdateTemplateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	template, err := h.service.UpdateTemplate(r.Context(), templateID, &req)
	if err != nil {
		logger.Error("Error updating template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, template, logger)
}

// DeleteTemplate はテンプレートを削除するためのハンドラ
func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTemplate"))

	templateID, ok := parseUUIDParam(w, r, logger, "template_id")
	if !ok {
		return
	}

	if err := h.service.DeleteTemplate(r.Context(), templateID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
