// internal/handlers/project_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"cert_keep/internal/model"
	"cert_keep/internal/service"
	"cert_keep/internal/webutil"
)

type ProjectHandler struct {
	projectService   service.ProjectService
	checklistService service.ChecklistService
	logger           *slog.Logger
}

func NewProjectHandler(projectService service.ProjectService, checklistService service.ChecklistService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectHandler{
		projectService:   projectService,
		checklistService: checklistService,
		logger:           logger,
	}
}

// PostProject は新しいプロジェクトを作成するためのハンドラ
func (h *ProjectHandler) PostProject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProject"))

	var req model.CreateProjectRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating project in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", project.ProjectID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, project, logger)
}

// GetProject はプロジェクト詳細（トラック別の導出サマリ込み）を取得するためのハンドラ
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProject"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	detail, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// PatchProject はプロジェクトの部分更新のためのハンドラ。
// ステータスがトラック進行と不整合な場合は warnings を含めて返す
func (h *ProjectHandler) PatchProject(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchProject"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	var req model.UpdateProjectRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.projectService.UpdateProject(r.Context(), projectID, &req)
	if err != nil {
		logger.Error("Error updating project in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetRequirements はチェックリストを取得するためのハンドラ
func (h *ProjectHandler) GetRequirements(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRequirements"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	statuses, err := h.checklistService.ListRequirements(r.Context(), projectID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if statuses == nil {
		statuses = []*model.RequirementStatus{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, statuses, logger)
}

// PatchRequirement はチェック項目の完了状態を切り替えるためのハンドラ
func (h *ProjectHandler) PatchRequirement(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchRequirement"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}
	statusID, ok := parseUUIDParam(w, r, logger, "status_id")
	if !ok {
		return
	}

	var req model.ToggleRequirementRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.checklistService.ToggleRequirement(r.Context(), projectID, statusID, *req.IsCompleted)
	if err != nil {
		logger.Error("Error toggling requirement in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PutTemplateAssignment はテンプレートを割り当てるためのハンドラ。
// 既存チェックリストは破棄されるハードリセットである点に注意
func (h *ProjectHandler) PutTemplateAssignment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutTemplateAssignment"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	var req model.AssignTemplateRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	resp, err := h.checklistService.AssignTemplate(r.Context(), projectID, req.TemplateID)
	if err != nil {
		logger.Error("Error assigning template in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Template assigned successfully",
		slog.String("project_id", projectID.String()),
		slog.Int("requirements", len(resp.Requirements)),
	)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PatchProgressMode は進捗モードを切り替えるためのハンドラ
func (h *ProjectHandler) PatchProgressMode(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchProgressMode"))

	projectID, ok := parseUUIDParam(w, r, logger, "project_id")
	if !ok {
		return
	}

	var req model.ProgressModeRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	project, err := h.checklistService.ChangeProgressMode(r.Context(), projectID, req.Mode)
	if err != nil {
		logger.Error("Error changing progress mode in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, project, logger)
}
