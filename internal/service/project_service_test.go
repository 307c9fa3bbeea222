// internal/service/project_service_test.go
package service

import (
	"context"
	"testing"

	"cert_keep/internal/config"
	"cert_keep/internal/model"
	"cert_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBProject() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.InternalSteps = []string{"書類準備", "内部監査", "是正対応", "内部承認"}
	cfg.App.ExternalSteps = []string{"申請提出", "一次審査", "現地審査", "認証判定"}
	return cfg
}

// --- Test CreateProject ---
func Test_projectService_CreateProject(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProject()
	cfg := testConfig()

	t.Run("正常系: 両トラックのステップがスナップショットされる", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockChecklistRepo := new(mocks.ChecklistRepository)
		mockTemplateRepo := new(mocks.TemplateRepository)
		mockReviewRepo := new(mocks.ReviewRepository)

		mockProjectRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Project")).
			Run(func(args mock.Arguments) {
				p := args.Get(2).(*model.Project)
				assert.Equal(t, model.StatusPreparing, p.Status)
				assert.Equal(t, model.ProgressAutomatic, p.ProgressMode)
				assert.Equal(t, 0, p.Progress)
			}).Return(nil).Once()
		mockReviewRepo.On("CreateSteps", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.ReviewStep")).
			Run(func(args mock.Arguments) {
				steps := args.Get(2).([]*model.ReviewStep)
				require.Len(t, steps, 8)
				// 内部4 + 外部4、位置はトラックごとに0始まり
				assert.Equal(t, model.TrackInternal, steps[0].Track)
				assert.Equal(t, "書類準備", steps[0].Name)
				assert.Equal(t, 0, steps[0].Position)
				assert.Equal(t, model.TrackExternal, steps[4].Track)
				assert.Equal(t, "申請提出", steps[4].Name)
				assert.Equal(t, 0, steps[4].Position)
			}).Return(nil).Once()

		svc := NewProjectService(db, mockProjectRepo, mockChecklistRepo, mockTemplateRepo, mockReviewRepo, cfg)
		project, err := svc.CreateProject(ctx, &model.CreateProjectRequest{
			Name:     "ISO 27001 取得",
			CertType: "ISO27001",
		})

		require.NoError(t, err)
		require.NotNil(t, project)
		assert.NotEqual(t, uuid.Nil, project.ProjectID)
		assert.Nil(t, project.TemplateID)

		mockProjectRepo.AssertExpectations(t)
		mockReviewRepo.AssertExpectations(t)
		mockChecklistRepo.AssertNotCalled(t, "Replace", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: テンプレート指定で作成時に展開される", func(t *testing.T) {
		templateID := uuid.New()
		template := &model.CertificationTemplate{
			TemplateID:  templateID,
			DisplayName: "Pマーク標準",
			Requirements: []model.TemplateRequirement{
				{RequirementID: uuid.New(), Position: 0, Text: "個人情報の特定"},
			},
		}

		mockProjectRepo := new(mocks.ProjectRepository)
		mockChecklistRepo := new(mocks.ChecklistRepository)
		mockTemplateRepo := new(mocks.TemplateRepository)
		mockReviewRepo := new(mocks.ReviewRepository)

		mockProjectRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Project")).
			Return(nil).Once()
		mockReviewRepo.On("CreateSteps", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.ReviewStep")).
			Return(nil).Once()
		mockTemplateRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), templateID).
			Return(template, nil).Once()
		mockChecklistRepo.On("Replace", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]*model.RequirementStatus")).
			Run(func(args mock.Arguments) {
				statuses := args.Get(3).([]*model.RequirementStatus)
				require.Len(t, statuses, 1)
				assert.Equal(t, "個人情報の特定", statuses[0].Text)
				assert.False(t, statuses[0].IsCompleted)
			}).Return(nil).Once()
		mockProjectRepo.On("Updates", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("uuid.UUID"), map[string]interface{}{"template_id": templateID}).
			Return(nil).Once()

		svc := NewProjectService(db, mockProjectRepo, mockChecklistRepo, mockTemplateRepo, mockReviewRepo, cfg)
		project, err := svc.CreateProject(ctx, &model.CreateProjectRequest{
			Name:       "Pマーク取得",
			CertType:   "PrivacyMark",
			TemplateID: &templateID,
		})

		require.NoError(t, err)
		require.NotNil(t, project.TemplateID)
		assert.Equal(t, templateID, *project.TemplateID)

		mockTemplateRepo.AssertExpectations(t)
		mockChecklistRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないテンプレート指定", func(t *testing.T) {
		templateID := uuid.New()

		mockProjectRepo := new(mocks.ProjectRepository)
		mockTemplateRepo := new(mocks.TemplateRepository)
		mockReviewRepo := new(mocks.ReviewRepository)

		mockProjectRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Project")).
			Return(nil).Once()
		mockReviewRepo.On("CreateSteps", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]*model.ReviewStep")).
			Return(nil).Once()
		mockTemplateRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), templateID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), mockTemplateRepo, mockReviewRepo, cfg)
		project, err := svc.CreateProject(ctx, &model.CreateProjectRequest{
			Name:       "失敗するプロジェクト",
			CertType:   "ISO9001",
			TemplateID: &templateID,
		})

		require.Error(t, err)
		assert.Nil(t, project)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TEMPLATE_NOT_FOUND", appErr.Detail.Code)
	})
}

// --- Test UpdateProject ---
func Test_projectService_UpdateProject(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBProject()
	cfg := testConfig()
	projectID := uuid.New()

	strPtr := func(s string) *string { return &s }
	intPtr := func(i int) *int { return &i }
	statusPtr := func(s model.ProjectStatus) *model.ProjectStatus { return &s }

	t.Run("正常系: 名前の更新", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)

		mockProjectRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, LockVersion: 2}, nil).Once()
		mockProjectRepo.On("UpdateOptimistic", ctx, mock.AnythingOfType("*gorm.DB"), projectID, 2, map[string]interface{}{"name": "新しい名前"}).
			Return(nil).Once()
		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, Name: "新しい名前", LockVersion: 3}, nil).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), new(mocks.TemplateRepository), new(mocks.ReviewRepository), cfg)
		resp, err := svc.UpdateProject(ctx, projectID, &model.UpdateProjectRequest{
			Name:        strPtr("新しい名前"),
			LockVersion: 2,
		})

		require.NoError(t, err)
		assert.Equal(t, "新しい名前", resp.Project.Name)
		assert.Empty(t, resp.Warnings)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("異常系: AUTOMATICモード中の進捗直接設定は拒否", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)

		mockProjectRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, ProgressMode: model.ProgressAutomatic}, nil).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), new(mocks.TemplateRepository), new(mocks.ReviewRepository), cfg)
		resp, err := svc.UpdateProject(ctx, projectID, &model.UpdateProjectRequest{
			Progress: intPtr(75),
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "AUTOMATIC_MODE", appErr.Detail.Code)
		mockProjectRepo.AssertNotCalled(t, "UpdateOptimistic", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: MANUALモードなら進捗を直接設定できる", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)

		mockProjectRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, ProgressMode: model.ProgressManual, LockVersion: 0}, nil).Once()
		mockProjectRepo.On("UpdateOptimistic", ctx, mock.AnythingOfType("*gorm.DB"), projectID, 0, map[string]interface{}{"progress": 75}).
			Return(nil).Once()
		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, ProgressMode: model.ProgressManual, Progress: 75, LockVersion: 1}, nil).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), new(mocks.TemplateRepository), new(mocks.ReviewRepository), cfg)
		resp, err := svc.UpdateProject(ctx, projectID, &model.UpdateProjectRequest{
			Progress: intPtr(75),
		})

		require.NoError(t, err)
		assert.Equal(t, 75, resp.Project.Progress)
		mockProjectRepo.AssertExpectations(t)
	})

	t.Run("異常系: 楽観ロックの版数不一致", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)

		mockProjectRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, LockVersion: 5}, nil).Once()
		mockProjectRepo.On("UpdateOptimistic", ctx, mock.AnythingOfType("*gorm.DB"), projectID, 3, map[string]interface{}{"name": "遅れてきた更新"}).
			Return(model.ErrConflict).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), new(mocks.TemplateRepository), new(mocks.ReviewRepository), cfg)
		resp, err := svc.UpdateProject(ctx, projectID, &model.UpdateProjectRequest{
			Name:        strPtr("遅れてきた更新"),
			LockVersion: 3,
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "CONFLICT", appErr.Detail.Code)
	})

	t.Run("正常系: completed への変更で未着手ステップがあると警告", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockReviewRepo := new(mocks.ReviewRepository)

		mockProjectRepo.On("FindByIDForUpdate", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, LockVersion: 1}, nil).Once()
		mockProjectRepo.On("UpdateOptimistic", ctx, mock.AnythingOfType("*gorm.DB"), projectID, 1, map[string]interface{}{"status": model.StatusCompleted}).
			Return(nil).Once()
		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID, Status: model.StatusCompleted, LockVersion: 2}, nil).Once()

		// internal トラック: 未着手のステップが残っている
		mockReviewRepo.On("FindSteps", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackInternal).
			Return(internalSteps(), nil).Once()
		mockReviewRepo.On("CountApprovals", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackInternal).
			Return(int64(1), nil).Once()
		mockReviewRepo.On("FindByProjectAndTrack", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackInternal).
			Return([]*model.ReviewRecord{{}}, nil).Once()

		// external トラック: 全ステップ消化済み (承認4回で最後がin-progress、pendingなし)
		externalSteps := []*model.ReviewStep{
			{StepID: uuid.New(), Track: model.TrackExternal, Position: 0, Name: "申請提出"},
			{StepID: uuid.New(), Track: model.TrackExternal, Position: 1, Name: "一次審査"},
			{StepID: uuid.New(), Track: model.TrackExternal, Position: 2, Name: "現地審査"},
			{StepID: uuid.New(), Track: model.TrackExternal, Position: 3, Name: "認証判定"},
		}
		mockReviewRepo.On("FindSteps", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackExternal).
			Return(externalSteps, nil).Once()
		mockReviewRepo.On("CountApprovals", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackExternal).
			Return(int64(4), nil).Once()
		mockReviewRepo.On("FindByProjectAndTrack", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackExternal).
			Return([]*model.ReviewRecord{{}, {}, {}, {}}, nil).Once()

		svc := NewProjectService(db, mockProjectRepo, new(mocks.ChecklistRepository), new(mocks.TemplateRepository), mockReviewRepo, cfg)
		resp, err := svc.UpdateProject(ctx, projectID, &model.UpdateProjectRequest{
			Status:      statusPtr(model.StatusCompleted),
			LockVersion: 1,
		})

		// 不整合でも更新自体は成功する
		require.NoError(t, err)
		require.NotNil(t, resp)
		require.Len(t, resp.Warnings, 1)
		assert.Contains(t, resp.Warnings[0], "internal")

		mockProjectRepo.AssertExpectations(t)
		mockReviewRepo.AssertExpectations(t)
	})
}
