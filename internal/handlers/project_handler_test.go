package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cert_keep/internal/handlers"
	"cert_keep/internal/model"
	svc_mocks "cert_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestProjectRouter(projectService *svc_mocks.ProjectService, checklistService *svc_mocks.ChecklistService) http.Handler {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := handlers.NewProjectHandler(projectService, checklistService, testLogger)

	r := chi.NewRouter()
	r.Post("/api/v1/projects", handler.PostProject)
	r.Get("/api/v1/projects/{project_id}", handler.GetProject)
	r.Patch("/api/v1/projects/{project_id}", handler.PatchProject)
	r.Get("/api/v1/projects/{project_id}/requirements", handler.GetRequirements)
	r.Patch("/api/v1/projects/{project_id}/requirements/{status_id}", handler.PatchRequirement)
	r.Put("/api/v1/projects/{project_id}/template", handler.PutTemplateAssignment)
	r.Patch("/api/v1/projects/{project_id}/progress-mode", handler.PatchProgressMode)
	return r
}

func newJsonRequestProject(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- Test PostProject ---
func TestProjectHandler_PostProject(t *testing.T) {
	t.Run("正常系: 201と作成済みプロジェクトが返る", func(t *testing.T) {
		mockProject := new(svc_mocks.ProjectService)
		mockChecklist := new(svc_mocks.ChecklistService)

		created := &model.Project{
			ProjectID:    uuid.New(),
			Name:         "ISO 27001 取得",
			CertType:     "ISO27001",
			Status:       model.StatusPreparing,
			ProgressMode: model.ProgressAutomatic,
		}
		mockProject.On("CreateProject", mock.Anything, mock.AnythingOfType("*model.CreateProjectRequest")).
			Return(created, nil).Once()

		router := setupTestProjectRouter(mockProject, mockChecklist)
		req := newJsonRequestProject(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
			"name":      "ISO 27001 取得",
			"cert_type": "ISO27001",
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got model.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, created.ProjectID, got.ProjectID)
		assert.Equal(t, model.StatusPreparing, got.Status)

		mockProject.AssertExpectations(t)
	})

	t.Run("異常系: 名前欠落はバリデーションエラー", func(t *testing.T) {
		mockProject := new(svc_mocks.ProjectService)
		router := setupTestProjectRouter(mockProject, new(svc_mocks.ChecklistService))

		req := newJsonRequestProject(t, http.MethodPost, "/api/v1/projects", map[string]interface{}{
			"cert_type": "ISO27001",
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockProject.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})
}

// --- Test PatchProject ---
func TestProjectHandler_PatchProject(t *testing.T) {
	projectID := uuid.New()
	target := "/api/v1/projects/" + projectID.String()

	t.Run("正常系: 警告付きレスポンス", func(t *testing.T) {
		mockProject := new(svc_mocks.ProjectService)
		mockProject.On("UpdateProject", mock.Anything, projectID, mock.AnythingOfType("*model.UpdateProjectRequest")).
			Return(&model.UpdateProjectResponse{
				Project:  &model.Project{ProjectID: projectID, Status: model.StatusCompleted},
				Warnings: []string{"ステータスが completed ですが、internal トラックに未着手のステップが残っています。"},
			}, nil).Once()

		router := setupTestProjectRouter(mockProject, new(svc_mocks.ChecklistService))
		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{
			"status":       "completed",
			"lock_version": 1,
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got model.UpdateProjectResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got.Warnings, 1)

		mockProject.AssertExpectations(t)
	})

	t.Run("異常系: 版数不一致は409", func(t *testing.T) {
		mockProject := new(svc_mocks.ProjectService)
		mockProject.On("UpdateProject", mock.Anything, projectID, mock.AnythingOfType("*model.UpdateProjectRequest")).
			Return(nil, model.NewAppError("CONFLICT", "プロジェクトが他の操作で更新されています。", "lock_version", model.ErrConflict)).Once()

		router := setupTestProjectRouter(mockProject, new(svc_mocks.ChecklistService))
		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{
			"name":         "更新",
			"lock_version": 1,
		})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockProject.AssertExpectations(t)
	})
}

// --- Test PatchRequirement ---
func TestProjectHandler_PatchRequirement(t *testing.T) {
	projectID := uuid.New()
	statusID := uuid.New()
	target := "/api/v1/projects/" + projectID.String() + "/requirements/" + statusID.String()

	t.Run("正常系: 更新後の行と進捗率が返る", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		mockChecklist.On("ToggleRequirement", mock.Anything, projectID, statusID, true).
			Return(&model.ToggleRequirementResponse{
				Status:   &model.RequirementStatus{StatusID: statusID, IsCompleted: true},
				Progress: 50,
			}, nil).Once()

		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)
		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{"is_completed": true})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got model.ToggleRequirementResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 50, got.Progress)

		mockChecklist.AssertExpectations(t)
	})

	t.Run("異常系: is_completed欠落はバリデーションエラー", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)

		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockChecklist.AssertNotCalled(t, "ToggleRequirement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: MANUALモード中は400", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		mockChecklist.On("ToggleRequirement", mock.Anything, projectID, statusID, true).
			Return(nil, model.NewAppError("MANUAL_MODE", "手動進捗モード中はチェック項目を変更できません。", "", model.ErrInvalidInput)).Once()

		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)
		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{"is_completed": true})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "MANUAL_MODE", errResp.Error.Code)

		mockChecklist.AssertExpectations(t)
	})
}

// --- Test PutTemplateAssignment ---
func TestProjectHandler_PutTemplateAssignment(t *testing.T) {
	projectID := uuid.New()
	templateID := uuid.New()
	target := "/api/v1/projects/" + projectID.String() + "/template"

	t.Run("正常系: 置換後のチェックリストが返る", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		mockChecklist.On("AssignTemplate", mock.Anything, projectID, templateID).
			Return(&model.AssignTemplateResponse{
				Requirements: []*model.RequirementStatus{
					{StatusID: uuid.New(), Text: "適用範囲の定義"},
				},
				Progress: 0,
			}, nil).Once()

		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)
		req := newJsonRequestProject(t, http.MethodPut, target, map[string]interface{}{"template_id": templateID.String()})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockChecklist.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないテンプレートは404", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		mockChecklist.On("AssignTemplate", mock.Anything, projectID, templateID).
			Return(nil, model.NewAppError("TEMPLATE_NOT_FOUND", "指定されたテンプレートが見つかりません。", "template_id", model.ErrNotFound)).Once()

		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)
		req := newJsonRequestProject(t, http.MethodPut, target, map[string]interface{}{"template_id": templateID.String()})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockChecklist.AssertExpectations(t)
	})
}

// --- Test PatchProgressMode ---
func TestProjectHandler_PatchProgressMode(t *testing.T) {
	projectID := uuid.New()
	target := "/api/v1/projects/" + projectID.String() + "/progress-mode"

	t.Run("正常系: 切替後のプロジェクトが返る", func(t *testing.T) {
		mockChecklist := new(svc_mocks.ChecklistService)
		mockChecklist.On("ChangeProgressMode", mock.Anything, projectID, model.ProgressManual).
			Return(&model.Project{ProjectID: projectID, ProgressMode: model.ProgressManual, Progress: 50}, nil).Once()

		router := setupTestProjectRouter(new(svc_mocks.ProjectService), mockChecklist)
		req := newJsonRequestProject(t, http.MethodPatch, target, map[string]interface{}{"mode": "MANUAL"})
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got model.Project
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, model.ProgressManual, got.ProgressMode)

		mockChecklist.AssertExpectations(t)
	})
}
