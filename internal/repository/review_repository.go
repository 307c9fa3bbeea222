//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository は審査履歴（レコード・指摘事項・ステップ定義）の永続化を担います。
// 審査レコードは追記専用で、更新APIは指摘事項のステータスのみです
type ReviewRepository interface {
	CreateRecord(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error
	FindByProjectAndTrack(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.ReviewRecord, error)
	CountApprovals(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) (int64, error)
	UpdateIssueStatus(ctx context.Context, tx *gorm.DB, projectID, reviewID, issueID uuid.UUID, status model.IssueStatus) error
	// FindOpenIssues はトラックの全審査履歴からオープンな指摘事項を帰属情報付きで収集します
	FindOpenIssues(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.IssueWithReviewer, error)
	// FindOpenIssuesWithDeadline は期限付きのオープンな指摘事項を全プロジェクト横断で返します（期限スキャナ用）
	FindOpenIssuesWithDeadline(ctx context.Context, db *gorm.DB) ([]*model.IssueWithReviewer, error)
	CreateSteps(ctx context.Context, tx *gorm.DB, steps []*model.ReviewStep) error
	FindSteps(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.ReviewStep, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) CreateRecord(ctx context.Context, tx *gorm.DB, record *model.ReviewRecord) error {
	logger := middleware.GetLogger(ctx)
	// Issues も関連ごと保存される
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating review record in DB",
			"error", result.Error,
			"project_id", record.ProjectID.String(),
			"track", string(record.Track),
		)
		return fmt.Errorf("gormReviewRepository.CreateRecord: %w", result.Error)
	}
	return nil
}

func (r *gormReviewRepository) FindByProjectAndTrack(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.ReviewRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.ReviewRecord
	// 新しい順（履歴は先頭が最新）
	result := db.WithContext(ctx).
		Preload("Issues").
		Where("project_id = ? AND track = ?", projectID, track).
		Order("reviewed_at DESC, created_at DESC").
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding review records in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"track", string(track),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindByProjectAndTrack: %w", result.Error)
	}
	return records, nil
}

func (r *gormReviewRepository) CountApprovals(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.ReviewRecord{}).
		Where("project_id = ? AND track = ? AND decision = ?", projectID, track, model.DecisionApproved).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting approvals in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"track", string(track),
		)
		return 0, fmt.Errorf("gormReviewRepository.CountApprovals: %w", result.Error)
	}
	return count, nil
}

func (r *gormReviewRepository) UpdateIssueStatus(ctx context.Context, tx *gorm.DB, projectID, reviewID, issueID uuid.UUID, status model.IssueStatus) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.ReviewIssue{}).
		Where("project_id = ? AND review_id = ? AND issue_id = ?", projectID, reviewID, issueID).
		Update("status", status)
	if result.Error != nil {
		logger.Error("Error updating issue status in DB",
			"error", result.Error,
			"issue_id", issueID.String(),
		)
		return fmt.Errorf("gormReviewRepository.UpdateIssueStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReviewRepository) FindOpenIssues(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.IssueWithReviewer, error) {
	logger := middleware.GetLogger(ctx)
	var issues []*model.IssueWithReviewer
	result := db.WithContext(ctx).Model(&model.ReviewIssue{}).
		Select("review_issues.*, review_records.reviewer, review_records.reviewer_department, review_records.reviewed_at").
		Joins("JOIN review_records ON review_records.review_id = review_issues.review_id").
		Where("review_issues.project_id = ? AND review_issues.track = ? AND review_issues.status = ?", projectID, track, model.IssueOpen).
		Order("review_records.reviewed_at DESC, review_issues.created_at ASC").
		Scan(&issues)
	if result.Error != nil {
		logger.Error("Error finding open issues in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"track", string(track),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindOpenIssues: %w", result.Error)
	}
	return issues, nil
}

func (r *gormReviewRepository) FindOpenIssuesWithDeadline(ctx context.Context, db *gorm.DB) ([]*model.IssueWithReviewer, error) {
	logger := middleware.GetLogger(ctx)
	var issues []*model.IssueWithReviewer
	result := db.WithContext(ctx).Model(&model.ReviewIssue{}).
		Select("review_issues.*, review_records.reviewer, review_records.reviewer_department, review_records.reviewed_at").
		Joins("JOIN review_records ON review_records.review_id = review_issues.review_id").
		Where("review_issues.status = ? AND review_issues.deadline IS NOT NULL", model.IssueOpen).
		Scan(&issues)
	if result.Error != nil {
		logger.Error("Error finding open issues with deadline in DB", "error", result.Error)
		return nil, fmt.Errorf("gormReviewRepository.FindOpenIssuesWithDeadline: %w", result.Error)
	}
	return issues, nil
}

func (r *gormReviewRepository) CreateSteps(ctx context.Context, tx *gorm.DB, steps []*model.ReviewStep) error {
	logger := middleware.GetLogger(ctx)
	if len(steps) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(&steps)
	if result.Error != nil {
		logger.Error("Error creating review steps in DB", "error", result.Error)
		return fmt.Errorf("gormReviewRepository.CreateSteps: %w", result.Error)
	}
	return nil
}

func (r *gormReviewRepository) FindSteps(ctx context.Context, db *gorm.DB, projectID uuid.UUID, track model.Track) ([]*model.ReviewStep, error) {
	logger := middleware.GetLogger(ctx)
	var steps []*model.ReviewStep
	result := db.WithContext(ctx).
		Where("project_id = ? AND track = ?", projectID, track).
		Order("position ASC").
		Find(&steps)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review steps in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"track", string(track),
		)
		return nil, fmt.Errorf("gormReviewRepository.FindSteps: %w", result.Error)
	}
	return steps, nil
}
