// internal/service/adjustment_service_test.go
package service

import (
	"context"
	"testing"
	"time"

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

func setupTestDBAdjustment() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test ListAdjustments ---
func Test_adjustmentService_ListAdjustments(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAdjustment()
	projectID := uuid.New()

	issueWithDeadline := func(issueID uuid.UUID, deadline *time.Time) *model.IssueWithReviewer {
		return &model.IssueWithReviewer{
			ReviewIssue: model.ReviewIssue{
				IssueID:   issueID,
				ReviewID:  uuid.New(),
				ProjectID: projectID,
				Track:     model.TrackExternal,
				Title:     "是正が必要です",
				Severity:  model.SeverityMedium,
				Status:    model.IssueOpen,
				Deadline:  deadline,
			},
			Reviewer:           "山田",
			ReviewerDepartment: "審査機関",
			ReviewedAt:         time.Now().Add(-24 * time.Hour),
		}
	}

	t.Run("正常系: 自己申告フラグと緊急度が合成される", func(t *testing.T) {
		issueDone := uuid.New()
		issueOverdue := uuid.New()
		issueNoDeadline := uuid.New()
		past := time.Now().AddDate(0, 0, -2)

		mockProjectRepo := new(mocks.ProjectRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		mockAdjustmentRepo := new(mocks.AdjustmentRepository)

		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID}, nil).Once()
		mockReviewRepo.On("FindOpenIssues", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackExternal).
			Return([]*model.IssueWithReviewer{
				issueWithDeadline(issueDone, nil),
				issueWithDeadline(issueOverdue, &past),
				issueWithDeadline(issueNoDeadline, nil),
			}, nil).Once()
		mockAdjustmentRepo.On("FindByProject", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(map[uuid.UUID]bool{issueDone: true}, nil).Once()

		svc := NewAdjustmentService(db, mockProjectRepo, mockReviewRepo, mockAdjustmentRepo)
		items, err := svc.ListAdjustments(ctx, projectID, model.TrackExternal)

		require.NoError(t, err)
		require.Len(t, items, 3)

		assert.True(t, items[0].Completed)
		assert.Equal(t, model.UrgencyNone, items[0].Urgency)

		// 自己申告フラグの記録がない指摘事項はfalse
		assert.False(t, items[1].Completed)
		assert.Equal(t, model.UrgencyOverdue, items[1].Urgency)

		assert.False(t, items[2].Completed)
		assert.Equal(t, "山田", items[2].Reviewer)

		mockProjectRepo.AssertExpectations(t)
		mockReviewRepo.AssertExpectations(t)
		mockAdjustmentRepo.AssertExpectations(t)
	})

	t.Run("正常系: オープンな指摘事項がなければ空", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockReviewRepo := new(mocks.ReviewRepository)
		mockAdjustmentRepo := new(mocks.AdjustmentRepository)

		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID}, nil).Once()
		mockReviewRepo.On("FindOpenIssues", ctx, mock.AnythingOfType("*gorm.DB"), projectID, model.TrackInternal).
			Return([]*model.IssueWithReviewer{}, nil).Once()
		mockAdjustmentRepo.On("FindByProject", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(map[uuid.UUID]bool{}, nil).Once()

		svc := NewAdjustmentService(db, mockProjectRepo, mockReviewRepo, mockAdjustmentRepo)
		items, err := svc.ListAdjustments(ctx, projectID, model.TrackInternal)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("異常系: 不正なトラック", func(t *testing.T) {
		svc := NewAdjustmentService(db, new(mocks.ProjectRepository), new(mocks.ReviewRepository), new(mocks.AdjustmentRepository))
		items, err := svc.ListAdjustments(ctx, projectID, model.Track(""))

		require.Error(t, err)
		assert.Nil(t, items)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
	})

	t.Run("異常系: プロジェクトが存在しない", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewAdjustmentService(db, mockProjectRepo, new(mocks.ReviewRepository), new(mocks.AdjustmentRepository))
		items, err := svc.ListAdjustments(ctx, projectID, model.TrackInternal)

		require.Error(t, err)
		assert.Nil(t, items)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Detail.Code)
	})
}

// --- Test SaveCompletions ---
func Test_adjustmentService_SaveCompletions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBAdjustment()
	projectID := uuid.New()
	issueA := uuid.New()
	issueB := uuid.New()

	t.Run("正常系: 項目ごとにUPSERTされる", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockAdjustmentRepo := new(mocks.AdjustmentRepository)

		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(&model.Project{ProjectID: projectID}, nil).Once()
		mockAdjustmentRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(c *model.AdjustmentCompletion) bool {
			return c.IssueID == issueA && c.Completed
		})).Return(nil).Once()
		mockAdjustmentRepo.On("Upsert", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(c *model.AdjustmentCompletion) bool {
			return c.IssueID == issueB && !c.Completed
		})).Return(nil).Once()

		svc := NewAdjustmentService(db, mockProjectRepo, new(mocks.ReviewRepository), mockAdjustmentRepo)
		err := svc.SaveCompletions(ctx, projectID, &model.SaveAdjustmentsRequest{
			Items: []model.AdjustmentCompletionInput{
				{IssueID: issueA, Completed: true},
				{IssueID: issueB, Completed: false},
			},
		})

		require.NoError(t, err)
		mockProjectRepo.AssertExpectations(t)
		mockAdjustmentRepo.AssertExpectations(t)
	})

	t.Run("異常系: プロジェクト不存在なら書き込まない", func(t *testing.T) {
		mockProjectRepo := new(mocks.ProjectRepository)
		mockAdjustmentRepo := new(mocks.AdjustmentRepository)

		mockProjectRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), projectID).
			Return(nil, model.ErrNotFound).Once()

		svc := NewAdjustmentService(db, mockProjectRepo, new(mocks.ReviewRepository), mockAdjustmentRepo)
		err := svc.SaveCompletions(ctx, projectID, &model.SaveAdjustmentsRequest{
			Items: []model.AdjustmentCompletionInput{{IssueID: issueA, Completed: true}},
		})

		require.Error(t, err)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Detail.Code)
		mockAdjustmentRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}
