package mq

import (
	"time"

	"github.com/google/uuid"
)

// ルーティングキー
const (
	KeyReviewSubmitted     = "review.submitted"
	KeyDeadlineApproaching = "deadline.approaching"
)

// ReviewSubmittedEvent は審査提出時に発行されるイベント
type ReviewSubmittedEvent struct {
	ProjectID  uuid.UUID `json:"project_id"`
	ReviewID   uuid.UUID `json:"review_id"`
	Track      string    `json:"track"`
	Decision   string    `json:"decision"`
	Reviewer   string    `json:"reviewer"`
	IssueCount int       `json:"issue_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DeadlineApproachingEvent は対応期限が近いオープンな指摘事項について発行されるイベント
type DeadlineApproachingEvent struct {
	ProjectID     uuid.UUID `json:"project_id"`
	IssueID       uuid.UUID `json:"issue_id"`
	Title         string    `json:"title"`
	Severity      string    `json:"severity"`
	Deadline      time.Time `json:"deadline"`
	DaysRemaining int       `json:"days_remaining"`
	OccurredAt    time.Time `json:"occurred_at"`
}
