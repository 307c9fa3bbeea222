// internal/service/deadline_scanner_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cert_keep/internal/config"
	"cert_keep/internal/model"
	"cert_keep/internal/mq"
	mq_mocks "cert_keep/internal/mq/mocks"
	"cert_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func scannerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.DeadlineWarnDays = 7
	return cfg
}

func openIssueWithDeadline(title string, severity model.Severity, deadline time.Time) *model.IssueWithReviewer {
	return &model.IssueWithReviewer{
		ReviewIssue: model.ReviewIssue{
			IssueID:   uuid.New(),
			ReviewID:  uuid.New(),
			ProjectID: uuid.New(),
			Track:     model.TrackExternal,
			Title:     title,
			Severity:  severity,
			Status:    model.IssueOpen,
			Deadline:  &deadline,
		},
		Reviewer:           "佐藤",
		ReviewerDepartment: "審査機関",
		ReviewedAt:         time.Now(),
	}
}

// --- Test Scan ---
func Test_DeadlineScanner_Scan(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBReview()

	t.Run("正常系: 閾値以内の指摘のみイベント発行される", func(t *testing.T) {
		now := time.Now()
		urgent := openIssueWithDeadline("アクセス権限の棚卸し不足", model.SeverityHigh, now.AddDate(0, 0, 2))
		overdue := openIssueWithDeadline("文書管理手順の未更新", model.SeverityMedium, now.AddDate(0, 0, -3))
		far := openIssueWithDeadline("教育記録の整備", model.SeverityLow, now.AddDate(0, 0, 30))

		mockReviewRepo := new(mocks.ReviewRepository)
		mockReviewRepo.On("FindOpenIssuesWithDeadline", ctx, mock.AnythingOfType("*gorm.DB")).
			Return([]*model.IssueWithReviewer{urgent, overdue, far}, nil).Once()

		mockPublisher := new(mq_mocks.Publisher)
		mockPublisher.On("Publish", mq.KeyDeadlineApproaching, mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(mq.DeadlineApproachingEvent)
			return ok && event.IssueID == urgent.IssueID && event.DaysRemaining == 2
		})).Return(nil).Once()
		mockPublisher.On("Publish", mq.KeyDeadlineApproaching, mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(mq.DeadlineApproachingEvent)
			return ok && event.IssueID == overdue.IssueID && event.DaysRemaining == -3
		})).Return(nil).Once()

		scanner := NewDeadlineScanner(db, mockReviewRepo, mockPublisher, scannerConfig(), nil)
		published, err := scanner.Scan(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, published)
		mockReviewRepo.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("正常系: 発行失敗は件数に含めず走査を継続する", func(t *testing.T) {
		now := time.Now()
		first := openIssueWithDeadline("是正計画の未提出", model.SeverityHigh, now.AddDate(0, 0, 1))
		second := openIssueWithDeadline("内部監査指摘の再発", model.SeverityMedium, now.AddDate(0, 0, 5))

		mockReviewRepo := new(mocks.ReviewRepository)
		mockReviewRepo.On("FindOpenIssuesWithDeadline", ctx, mock.AnythingOfType("*gorm.DB")).
			Return([]*model.IssueWithReviewer{first, second}, nil).Once()

		mockPublisher := new(mq_mocks.Publisher)
		mockPublisher.On("Publish", mq.KeyDeadlineApproaching, mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(mq.DeadlineApproachingEvent)
			return ok && event.IssueID == first.IssueID
		})).Return(errors.New("connection closed")).Once()
		mockPublisher.On("Publish", mq.KeyDeadlineApproaching, mock.MatchedBy(func(payload interface{}) bool {
			event, ok := payload.(mq.DeadlineApproachingEvent)
			return ok && event.IssueID == second.IssueID
		})).Return(nil).Once()

		scanner := NewDeadlineScanner(db, mockReviewRepo, mockPublisher, scannerConfig(), nil)
		published, err := scanner.Scan(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, published)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("正常系: 対象なし", func(t *testing.T) {
		mockReviewRepo := new(mocks.ReviewRepository)
		mockReviewRepo.On("FindOpenIssuesWithDeadline", ctx, mock.AnythingOfType("*gorm.DB")).
			Return([]*model.IssueWithReviewer{}, nil).Once()

		mockPublisher := new(mq_mocks.Publisher)

		scanner := NewDeadlineScanner(db, mockReviewRepo, mockPublisher, scannerConfig(), nil)
		published, err := scanner.Scan(ctx)

		require.NoError(t, err)
		assert.Equal(t, 0, published)
		mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("異常系: リポジトリのエラー", func(t *testing.T) {
		mockReviewRepo := new(mocks.ReviewRepository)
		mockReviewRepo.On("FindOpenIssuesWithDeadline", ctx, mock.AnythingOfType("*gorm.DB")).
			Return(nil, errors.New("db error")).Once()

		mockPublisher := new(mq_mocks.Publisher)

		scanner := NewDeadlineScanner(db, mockReviewRepo, mockPublisher, scannerConfig(), nil)
		published, err := scanner.Scan(ctx)

		require.Error(t, err)
		assert.Equal(t, 0, published)
		mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}
