// internal/model/adjustment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdjustmentCompletion は是正対応の自己申告チェック。
// Issue.Status とは独立に永続化される（(project, issue) で一意）
type AdjustmentCompletion struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey" json:"project_id"`
	IssueID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"issue_id"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdjustmentCompletion) TableName() string {
	return "adjustment_completions"
}

// AdjustmentItem はトラックの審査履歴からオープンな指摘事項のみを
// 集約した導出ビュー。独立して作成されることはない
type AdjustmentItem struct {
	IssueID            uuid.UUID   `json:"issue_id"`
	ReviewID           uuid.UUID   `json:"review_id"`
	Title              string      `json:"title"`
	Severity           Severity    `json:"severity"`
	Status             IssueStatus `json:"status"`
	Deadline           *time.Time  `json:"deadline,omitempty"`
	DeadlineTime       string      `json:"deadline_time,omitempty"`
	Reviewer           string      `json:"reviewer"`
	ReviewerDepartment string      `json:"reviewer_department"`
	ReviewedAt         time.Time   `json:"reviewed_at"`
	Completed          bool        `json:"completed"`
	Urgency            Urgency     `json:"urgency"`
}

// IssueWithReviewer は指摘事項に起点レビューの帰属情報を結合したクエリ結果
type IssueWithReviewer struct {
	ReviewIssue
	Reviewer           string    `json:"reviewer"`
	ReviewerDepartment string    `json:"reviewer_department"`
	ReviewedAt         time.Time `json:"reviewed_at"`
}

// --- リクエストDTO ---

type AdjustmentCompletionInput struct {
	IssueID   uuid.UUID `json:"issue_id" validate:"required"`
	Completed bool      `json:"completed"`
}

type SaveAdjustmentsRequest struct {
	Items []AdjustmentCompletionInput `json:"items" validate:"required,min=1,dive"`
}
