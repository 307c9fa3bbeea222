// internal/model/review.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Track は審査トラック。内部/外部の2本が完全に独立して進行する
type Track string

const (
	TrackInternal Track = "internal"
	TrackExternal Track = "external"
)

func (t Track) Valid() bool {
	return t == TrackInternal || t == TrackExternal
}

// Decision は審査の判定結果
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Severity は指摘事項の重大度
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// IssueStatus は指摘事項のステータス
type IssueStatus string

const (
	IssueOpen   IssueStatus = "open"
	IssueClosed IssueStatus = "closed"
)

func (s IssueStatus) Valid() bool {
	return s == IssueOpen || s == IssueClosed
}

// Urgency は期限までの残日数による緊急度の分類。
// 常に現在時刻から導出し、永続化しない
type Urgency string

const (
	UrgencyOverdue     Urgency = "overdue"
	UrgencyUrgent      Urgency = "urgent"
	UrgencyApproaching Urgency = "approaching"
	UrgencyNormal      Urgency = "normal"
	UrgencyNone        Urgency = "none" // 期限なし
)

// StepStatus はステップの状態
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in-progress"
	StepCompleted  StepStatus = "completed"
)

// ReviewRecord は1回の審査提出。作成後は不変の追記専用レコード
type ReviewRecord struct {
	ReviewID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"review_id"`
	ProjectID          uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Track              Track     `gorm:"not null;index" json:"track"`
	Reviewer           string    `gorm:"not null" json:"reviewer"`
	ReviewerDepartment string    `json:"reviewer_department"`
	ReviewedAt         time.Time `gorm:"not null" json:"reviewed_at"`
	Decision           Decision  `gorm:"not null" json:"decision"`
	Comment            string    `gorm:"not null" json:"comment"`
	CreatedAt          time.Time `json:"-"`

	// 関連 (Preload用)
	Issues []ReviewIssue `gorm:"foreignKey:ReviewID;references:ReviewID" json:"issues"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}

// ReviewIssue は審査で記録された指摘事項。
// ProjectID/Track は集計クエリ用の非正規化カラム
type ReviewIssue struct {
	IssueID      uuid.UUID   `gorm:"type:uuid;primaryKey" json:"issue_id"`
	ReviewID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	ProjectID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Track        Track       `gorm:"not null" json:"-"`
	Title        string      `gorm:"not null" json:"title"`
	Severity     Severity    `gorm:"not null;default:medium" json:"severity"`
	Status       IssueStatus `gorm:"not null;default:open" json:"status"`
	Deadline     *time.Time  `json:"deadline,omitempty"`
	DeadlineTime string      `json:"deadline_time,omitempty"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
}

func (ReviewIssue) TableName() string {
	return "review_issues"
}

// ReviewStep はトラックごとのステップ定義。
// 状態は持たず、承認履歴からリデューサで毎回導出する（リプレイ安全）
type ReviewStep struct {
	StepID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"step_id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Track     Track     `gorm:"not null" json:"track"`
	Position  int       `gorm:"not null" json:"position"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

func (ReviewStep) TableName() string {
	return "review_steps"
}

// StepState はリデューサが導出したステップの現在状態
type StepState struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
}

// --- リクエスト/レスポンスDTO ---

// IssueInput の期限は "2006-01-02" 形式
type IssueInput struct {
	Title        string   `json:"title" validate:"required,max=500"`
	Severity     Severity `json:"severity" validate:"omitempty,oneof=high medium low"`
	Deadline     string   `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	DeadlineTime string   `json:"deadline_time" validate:"omitempty,datetime=15:04"`
}

type SubmitReviewRequest struct {
	Track    Track        `json:"track" validate:"required,oneof=internal external"`
	Decision Decision     `json:"decision" validate:"required,oneof=approved rejected"`
	Comment  string       `json:"comment" validate:"required,max=4000"`
	Issues   []IssueInput `json:"issues" validate:"omitempty,dive"`
}

type SubmitReviewResponse struct {
	Review        *ReviewRecord `json:"review"`
	Steps         []StepState   `json:"steps"`
	TrackProgress int           `json:"track_progress"`
}

type UpdateIssueStatusRequest struct {
	Status IssueStatus `json:"status" validate:"required,oneof=open closed"`
}
