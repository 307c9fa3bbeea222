// internal/service/deadline_scanner.go
package service

import (
	"context"
	"log/slog"
	"time"

	"cert_keep/internal/config"
	"cert_keep/internal/mq"
	"cert_keep/internal/repository"

	"gorm.io/gorm"
)

// DeadlineScanner は期限付きのオープンな指摘事項を走査し、
// 残日数が閾値以内のものについて deadline.approaching イベントを発行します。
// 通知の送信自体は行いません
type DeadlineScanner struct {
	db         *gorm.DB
	reviewRepo repository.ReviewRepository
	publisher  mq.Publisher
	cfg        *config.Config
	logger     *slog.Logger
}

func NewDeadlineScanner(db *gorm.DB, reviewRepo repository.ReviewRepository, publisher mq.Publisher, cfg *config.Config, logger *slog.Logger) *DeadlineScanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeadlineScanner{
		db:         db,
		reviewRepo: reviewRepo,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
	}
}

// Scan は1回の走査を実行し、発行したイベント数を返します
func (s *DeadlineScanner) Scan(ctx context.Context) (int, error) {
	issues, err := s.reviewRepo.FindOpenIssuesWithDeadline(ctx, s.db)
	if err != nil {
		s.logger.Error("Deadline scan failed", "error", err)
		return 0, err
	}

	now := time.Now()
	published := 0
	for _, issue := range issues {
		if issue.Deadline == nil {
			continue
		}
		days := DaysUntil(now, *issue.Deadline)
		// 期限超過も含めて閾値以内を通知対象とする
		if days > s.cfg.App.DeadlineWarnDays {
			continue
		}

		event := mq.DeadlineApproachingEvent{
			ProjectID:     issue.ProjectID,
			IssueID:       issue.IssueID,
			Title:         issue.Title,
			Severity:      string(issue.Severity),
			Deadline:      *issue.Deadline,
			DaysRemaining: days,
			OccurredAt:    now,
		}
		if err := s.publisher.Publish(mq.KeyDeadlineApproaching, event); err != nil {
			s.logger.Warn("Failed to publish deadline.approaching event",
				"error", err,
				"issue_id", issue.IssueID.String(),
			)
			continue
		}
		published++
	}

	s.logger.Info("Deadline scan completed", "candidates", len(issues), "published", published)
	return published, nil
}

// Run は間隔指定でScanを繰り返します。ctx のキャンセルで停止します
func (s *DeadlineScanner) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Deadline scanner stopped")
			return
		case <-ticker.C:
			if _, err := s.Scan(ctx); err != nil {
				// 失敗しても次の周期で再試行する
				continue
			}
		}
	}
}
