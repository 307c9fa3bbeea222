// internal/model/template.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequirementDocument は要求事項ごとに求められる提出書類の定義
type RequirementDocument struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DocumentList は提出書類の一覧をJSONカラムとして永続化するための型
type DocumentList []RequirementDocument

func (d DocumentList) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DocumentList) Scan(value interface{}) error {
	if value == nil {
		*d = DocumentList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for DocumentList")
	}
	if len(b) == 0 {
		*d = DocumentList{}
		return nil
	}
	return json.Unmarshal(b, d)
}

// CertificationTemplate は認証規格ごとのチェックリスト要求事項カタログ
type CertificationTemplate struct {
	TemplateID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"template_id"`
	DisplayName string         `gorm:"not null" json:"display_name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)。Position昇順で扱う
	Requirements []TemplateRequirement `gorm:"foreignKey:TemplateID;references:TemplateID" json:"requirements"`
}

func (CertificationTemplate) TableName() string {
	return "certification_templates"
}

// TemplateRequirement はテンプレート内の1つの要求事項
type TemplateRequirement struct {
	RequirementID uuid.UUID    `gorm:"type:uuid;primaryKey" json:"requirement_id"`
	TemplateID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	Position      int          `gorm:"not null" json:"position"`
	Text          string       `gorm:"not null" json:"text"`
	Documents     DocumentList `gorm:"type:text" json:"documents"`
	CreatedAt     time.Time    `json:"-"`
	UpdatedAt     time.Time    `json:"-"`
}

func (TemplateRequirement) TableName() string {
	return "template_requirements"
}

// テンプレート作成/更新リクエストDTO
type RequirementInput struct {
	Text      string                `json:"text" validate:"required"`
	Documents []RequirementDocument `json:"documents" validate:"omitempty,dive"`
}

type CreateTemplateRequest struct {
	DisplayName  string             `json:"display_name" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Requirements []RequirementInput `json:"requirements" validate:"omitempty,dive"`
}

// 更新は全置換。要求事項も丸ごと差し替える
type UpdateTemplateRequest struct {
	DisplayName  string             `json:"display_name" validate:"required,max=200"`
	Description  string             `json:"description" validate:"max=2000"`
	Requirements []RequirementInput `json:"requirements" validate:"omitempty,dive"`
}
