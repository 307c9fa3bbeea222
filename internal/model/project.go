// internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus はプロジェクト全体のステータス。
// トラック別のステップ進行とは独立した並行概念であることに注意
type ProjectStatus string

const (
	StatusPreparing      ProjectStatus = "preparing"
	StatusInternalReview ProjectStatus = "internal-review"
	StatusExternalReview ProjectStatus = "external-review"
	StatusCompleted      ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPreparing, StatusInternalReview, StatusExternalReview, StatusCompleted:
		return true
	}
	return false
}

// ProgressMode は進捗率の算出方法
type ProgressMode string

const (
	ProgressManual    ProgressMode = "MANUAL"
	ProgressAutomatic ProgressMode = "AUTOMATIC"
)

func (m ProgressMode) Valid() bool {
	return m == ProgressManual || m == ProgressAutomatic
}

// Project は認証取得プロジェクト
type Project struct {
	ProjectID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"project_id"`
	Name         string         `gorm:"not null" json:"name"`
	CertType     string         `gorm:"not null" json:"cert_type"`
	Status       ProjectStatus  `gorm:"not null;default:preparing" json:"status"`
	Progress     int            `gorm:"not null;default:0" json:"progress"`
	ProgressMode ProgressMode   `gorm:"not null;default:AUTOMATIC" json:"progress_mode"`
	TemplateID   *uuid.UUID     `gorm:"type:uuid" json:"template_id,omitempty"`
	ManagerID    string         `json:"manager_id"`
	Agency       string         `json:"agency"`
	StartDate    *time.Time     `json:"start_date,omitempty"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	LockVersion  int            `gorm:"not null;default:0" json:"lock_version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// RequirementStatus はプロジェクトに展開された要求事項の完了状態。
// テンプレート再割当で全行が破棄・再生成される
type RequirementStatus struct {
	StatusID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"status_id"`
	ProjectID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	RequirementID uuid.UUID `gorm:"type:uuid;not null" json:"requirement_id"`
	Position      int       `gorm:"not null" json:"position"`
	Text          string    `gorm:"not null" json:"text"` // 割当時点のスナップショット
	IsCompleted   bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (RequirementStatus) TableName() string {
	return "requirement_statuses"
}

// --- リクエスト/レスポンスDTO ---

type CreateProjectRequest struct {
	Name       string     `json:"name" validate:"required,max=200"`
	CertType   string     `json:"cert_type" validate:"required,max=100"`
	ManagerID  string     `json:"manager_id" validate:"max=100"`
	Agency     string     `json:"agency" validate:"max=200"`
	StartDate  *time.Time `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	TemplateID *uuid.UUID `json:"template_id"`
}

// UpdateProjectRequest は部分更新。LockVersion は楽観ロックの版数確認用
type UpdateProjectRequest struct {
	Name        *string        `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Agency      *string        `json:"agency,omitempty" validate:"omitempty,max=200"`
	ManagerID   *string        `json:"manager_id,omitempty" validate:"omitempty,max=100"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
	Progress    *int           `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
	LockVersion int            `json:"lock_version" validate:"min=0"`
}

type ToggleRequirementRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

type AssignTemplateRequest struct {
	TemplateID uuid.UUID `json:"template_id" validate:"required"`
}

type ProgressModeRequest struct {
	Mode ProgressMode `json:"mode" validate:"required"`
}

// ToggleRequirementResponse は更新後の行と再計算済み進捗率
type ToggleRequirementResponse struct {
	Status   *RequirementStatus `json:"status"`
	Progress int                `json:"progress"`
}

type AssignTemplateResponse struct {
	Requirements []*RequirementStatus `json:"requirements"`
	Progress     int                  `json:"progress"`
}

// TrackSummary はトラック別のステップ進行の導出結果
type TrackSummary struct {
	Track    Track       `json:"track"`
	Steps    []StepState `json:"steps"`
	Progress int         `json:"progress"`
	Reviews  int         `json:"reviews"`
}

type ProjectDetailResponse struct {
	Project  *Project     `json:"project"`
	Internal TrackSummary `json:"internal"`
	External TrackSummary `json:"external"`
}

// UpdateProjectResponse は更新後のプロジェクトと状態整合性の警告
type UpdateProjectResponse struct {
	Project  *Project `json:"project"`
	Warnings []string `json:"warnings,omitempty"`
}
