// internal/service/adjustment_service.go
package service

import (
	"context"
	"errors"
	"time"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdjustmentService は是正対応ワークリストを提供します。
// ワークリストはトラックの全審査履歴に含まれるオープンな指摘事項から
// 参照のたびに再構築される導出ビューです
type AdjustmentService interface {
	ListAdjustments(ctx context.Context, projectID uuid.UUID, track model.Track) ([]*model.AdjustmentItem, error)
	// SaveCompletions は自己申告フラグを (project, issue) 単位の冪等なUPSERTとして保存します。
	// 起点の Issue.Status には反映されません
	SaveCompletions(ctx context.Context, projectID uuid.UUID, req *model.SaveAdjustmentsRequest) error
}

type adjustmentService struct {
	db             *gorm.DB
	projectRepo    repository.ProjectRepository
	reviewRepo     repository.ReviewRepository
	adjustmentRepo repository.AdjustmentRepository
}

func NewAdjustmentService(db *gorm.DB, projectRepo repository.ProjectRepository, reviewRepo repository.ReviewRepository, adjustmentRepo repository.AdjustmentRepository) AdjustmentService {
	return &adjustmentService{
		db:             db,
		projectRepo:    projectRepo,
		reviewRepo:     reviewRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

func (s *adjustmentService) ListAdjustments(ctx context.Context, projectID uuid.UUID, track model.Track) ([]*model.AdjustmentItem, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String(), "track", string(track))

	if !track.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "審査トラックの値が不正です。", "track", model.ErrInvalidInput)
	}
	if _, err := s.projectRepo.FindByID(ctx, s.db, projectID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの取得に失敗しました。", "", model.ErrInternalServer)
	}

	issues, err := s.reviewRepo.FindOpenIssues(ctx, s.db, projectID, track)
	if err != nil {
		logger.Error("Failed to find open issues", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "是正対応一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}

	completions, err := s.adjustmentRepo.FindByProject(ctx, s.db, projectID)
	if err != nil {
		logger.Error("Failed to find adjustment completions", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "是正対応一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}

	now := time.Now()
	items := make([]*model.AdjustmentItem, 0, len(issues))
	for _, issue := range issues {
		items = append(items, &model.AdjustmentItem{
			IssueID:            issue.IssueID,
			ReviewID:           issue.ReviewID,
			Title:              issue.Title,
			Severity:           issue.Severity,
			Status:             issue.Status,
			Deadline:           issue.Deadline,
			DeadlineTime:       issue.DeadlineTime,
			Reviewer:           issue.Reviewer,
			ReviewerDepartment: issue.ReviewerDepartment,
			ReviewedAt:         issue.ReviewedAt,
			Completed:          completions[issue.IssueID], // 未登録ならfalse
			Urgency:            ClassifyDeadline(now, issue.Deadline),
		})
	}

	logger.Info("Adjustment worklist rebuilt", "items", len(items))
	return items, nil
}

func (s *adjustmentService) SaveCompletions(ctx context.Context, projectID uuid.UUID, req *model.SaveAdjustmentsRequest) error {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.projectRepo.FindByID(ctx, tx, projectID); err != nil {
			return err
		}
		for _, item := range req.Items {
			completion := &model.AdjustmentCompletion{
				ProjectID: projectID,
				IssueID:   item.IssueID,
				Completed: item.Completed,
			}
			if err := s.adjustmentRepo.Upsert(ctx, tx, completion); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error saving adjustment completions in transaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "是正対応状況の保存に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Adjustment completions saved", "items", len(req.Items))
	return nil
}
