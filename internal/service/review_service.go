// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cert_keep/internal/metrics"
	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/mq"
	"cert_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は審査ワークフロー（提出・履歴・ステップ進行・指摘事項の消し込み）を提供します
type ReviewService interface {
	// SubmitReview は審査を1件追記します。actor はIDプロバイダ由来の操作者情報で、
	// 必ず呼び出し側から明示的に渡されます
	SubmitReview(ctx context.Context, projectID uuid.UUID, actor model.Actor, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error)
	ListReviews(ctx context.Context, projectID uuid.UUID, track model.Track) ([]*model.ReviewRecord, error)
	GetTrackSteps(ctx context.Context, projectID uuid.UUID, track model.Track) (*model.TrackSummary, error)
	// UpdateIssueStatus は指摘事項の消し込み（審査側の明示操作）です。
	// 是正対応の自己申告フラグからは自動では閉じません
	UpdateIssueStatus(ctx context.Context, projectID, reviewID, issueID uuid.UUID, status model.IssueStatus) error
}

type reviewService struct {
	db          *gorm.DB
	projectRepo repository.ProjectRepository
	reviewRepo  repository.ReviewRepository
	publisher   mq.Publisher
}

func NewReviewService(db *gorm.DB, projectRepo repository.ProjectRepository, reviewRepo repository.ReviewRepository, publisher mq.Publisher) ReviewService {
	return &reviewService{
		db:          db,
		projectRepo: projectRepo,
		reviewRepo:  reviewRepo,
		publisher:   publisher,
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, projectID uuid.UUID, actor model.Actor, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String(), "track", string(req.Track))

	// 永続化前に同期バリデーション
	if !req.Track.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "審査トラックの値が不正です。", "track", model.ErrInvalidInput)
	}
	if !req.Decision.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "判定は approved または rejected を指定してください。", "decision", model.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "コメントは必須項目です。", "comment", model.ErrInvalidInput)
	}
	if strings.TrimSpace(actor.Name) == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "審査者の情報が必要です。", "", model.ErrInvalidInput)
	}

	now := time.Now()
	record := &model.ReviewRecord{
		ReviewID:           uuid.New(),
		ProjectID:          projectID,
		Track:              req.Track,
		Reviewer:           actor.Name,
		ReviewerDepartment: actor.Department,
		ReviewedAt:         now,
		Decision:           req.Decision,
		Comment:            req.Comment,
	}

	for _, in := range req.Issues {
		if strings.TrimSpace(in.Title) == "" {
			return nil, model.NewAppError("VALIDATION_ERROR", "指摘事項のタイトルは必須項目です。", "title", model.ErrInvalidInput)
		}
		severity := in.Severity
		if severity == "" {
			severity = model.SeverityMedium // 省略時のデフォルト
		}
		if !severity.Valid() {
			return nil, model.NewAppError("VALIDATION_ERROR", "重大度の値が不正です。", "severity", model.ErrInvalidInput)
		}

		var deadline *time.Time
		if in.Deadline != "" {
			d, err := time.Parse("2006-01-02", in.Deadline)
			if err != nil {
				return nil, model.NewAppError("VALIDATION_ERROR", "対応期限の日付形式が正しくありません。", "deadline", model.ErrInvalidInput)
			}
			deadline = &d
		}

		record.Issues = append(record.Issues, model.ReviewIssue{
			IssueID:      uuid.New(),
			ReviewID:     record.ReviewID,
			ProjectID:    projectID,
			Track:        req.Track,
			Title:        in.Title,
			Severity:     severity,
			Status:       model.IssueOpen,
			Deadline:     deadline,
			DeadlineTime: in.DeadlineTime,
		})
	}

	var resp model.SubmitReviewResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.projectRepo.FindByID(ctx, tx, projectID); err != nil {
			return err
		}

		if err := s.reviewRepo.CreateRecord(ctx, tx, record); err != nil {
			return err
		}

		// ステップ進行は承認履歴からの導出。approved の追記自体が進行となる
		steps, err := s.reviewRepo.FindSteps(ctx, tx, projectID, req.Track)
		if err != nil {
			return err
		}
		approvals, err := s.reviewRepo.CountApprovals(ctx, tx, projectID, req.Track)
		if err != nil {
			return err
		}

		names := make([]string, len(steps))
		for i, st := range steps {
			names[i] = st.Name
		}
		states, progress := FoldSteps(names, int(approvals))

		resp.Review = record
		resp.Steps = states
		resp.TrackProgress = progress
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error submitting review in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査の提出に失敗しました。", "", model.ErrInternalServer)
	}

	metrics.ReviewsSubmitted.WithLabelValues(string(req.Track), string(req.Decision)).Inc()

	// 通知はイベント発行のみ。送信は購読側の責務
	event := mq.ReviewSubmittedEvent{
		ProjectID:  projectID,
		ReviewID:   record.ReviewID,
		Track:      string(req.Track),
		Decision:   string(req.Decision),
		Reviewer:   actor.Name,
		IssueCount: len(record.Issues),
		OccurredAt: now,
	}
	if err := s.publisher.Publish(mq.KeyReviewSubmitted, event); err != nil {
		// 発行失敗は審査自体を失敗させない
		logger.Warn("Failed to publish review.submitted event", "error", err)
	}

	logger.Info("Review submitted",
		"review_id", record.ReviewID.String(),
		"decision", string(req.Decision),
		"issues", len(record.Issues),
		"track_progress", resp.TrackProgress,
	)
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context, projectID uuid.UUID, track model.Track) ([]*model.ReviewRecord, error) {
	if !track.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "審査トラックの値が不正です。", "track", model.ErrInvalidInput)
	}
	if _, err := s.projectRepo.FindByID(ctx, s.db, projectID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの取得に失敗しました。", "", model.ErrInternalServer)
	}

	records, err := s.reviewRepo.FindByProjectAndTrack(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査履歴の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return records, nil
}

func (s *reviewService) GetTrackSteps(ctx context.Context, projectID uuid.UUID, track model.Track) (*model.TrackSummary, error) {
	if !track.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "審査トラックの値が不正です。", "track", model.ErrInvalidInput)
	}
	if _, err := s.projectRepo.FindByID(ctx, s.db, projectID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの取得に失敗しました。", "", model.ErrInternalServer)
	}

	steps, err := s.reviewRepo.FindSteps(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステップ情報の取得に失敗しました。", "", model.ErrInternalServer)
	}
	approvals, err := s.reviewRepo.CountApprovals(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査履歴の集計に失敗しました。", "", model.ErrInternalServer)
	}
	records, err := s.reviewRepo.FindByProjectAndTrack(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査履歴の取得に失敗しました。", "", model.ErrInternalServer)
	}

	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.Name
	}
	states, progress := FoldSteps(names, int(approvals))

	return &model.TrackSummary{
		Track:    track,
		Steps:    states,
		Progress: progress,
		Reviews:  len(records),
	}, nil
}

func (s *reviewService) UpdateIssueStatus(ctx context.Context, projectID, reviewID, issueID uuid.UUID, status model.IssueStatus) error {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String(), "issue_id", issueID.String())

	if !status.Valid() {
		return model.NewAppError("VALIDATION_ERROR", "ステータスの値が不正です。", "status", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.UpdateIssueStatus(ctx, tx, projectID, reviewID, issueID, status)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "指摘事項が見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error updating issue status in transaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "指摘事項の更新に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Issue status updated", "status", string(status))
	return nil
}
