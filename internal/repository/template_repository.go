//go:generate mockery --name TemplateRepository --output ./mocks --outpkg mocks --case=underscore
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

// TemplateRepository は認証テンプレートの永続化を担います
type TemplateRepository interface {
	Create(ctx context.Context, tx *gorm.DB, template *model.CertificationTemplate) error
	FindByID(ctx context.Context, db *gorm.DB, templateID uuid.UUID) (*model.CertificationTemplate, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.CertificationTemplate, error)
	Update(ctx context.Context, tx *gorm.DB, template *model.CertificationTemplate) error
	ReplaceRequirements(ctx context.Context, tx *gorm.DB, templateID uuid.UUID, requirements []model.TemplateRequirement) error
	Delete(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) error
}

type gormTemplateRepository struct{}

func NewGormTemplateRepository() TemplateRepository {
	return &gormTemplateRepository{}
}

func (r *gormTemplateRepository) Create(ctx context.Context, tx *gorm.DB, template *model.CertificationTemplate) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(template)
	if result.Error != nil {
		logger.Error("Error creating template in DB",
			"error", result.Error,
			"display_name", template.DisplayName,
		)
		return fmt.Errorf("gormTemplateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTemplateRepository) FindByID(ctx context.Context, db *gorm.DB, templateID uuid.UUID) (*model.CertificationTemplate, error) {
	logger := middleware.GetLogger(ctx)
	var template model.CertificationTemplate
	result := db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("template_requirements.position ASC")
		}).
		Where("template_id = ?", templateID).
		First(&template)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding template by ID in DB",
			"error", result.Error,
			"template_id", templateID.String(),
		)
		return nil, fmt.Errorf("gormTemplateRepository.FindByID: %w", result.Error)
	}
	return &template, nil
}

func (r *gormTemplateRepository) List(ctx context.Context, db *gorm.DB) ([]*model.CertificationTemplate, error) {
	logger := middleware.GetLogger(ctx)
	var templates []*model.CertificationTemplate
	result := db.WithContext(ctx).
		Preload("Requirements", func(db *gorm.DB) *gorm.DB {
			return db.Order("template_requirements.position ASC")
		}).
		Order("created_at DESC").
		Find(&templates)
	if result.Error != nil {
		logger.Error("Error listing templates in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTemplateRepository.List: %w", result.Error)
	}
	return templates, nil
}

func (r *gormTemplateRepository) Update(ctx context.Context, tx *gorm.DB, template *model.CertificationTemplate) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.CertificationTemplate{}).
		Where("template_id = ?", template.TemplateID).
		Updates(map[string]interface{}{
			"display_name": template.DisplayName,
			"description":  template.Description,
		})
	if result.Error != nil {
		logger.Error("Error updating template in DB",
			"error", result.Error,
			"template_id", template.TemplateID.String(),
		)
		return fmt.Errorf("gormTemplateRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ReplaceRequirements はテンプレートの要求事項を丸ごと差し替えます
func (r *gormTemplateRepository) ReplaceRequirements(ctx context.Context, tx *gorm.DB, templateID uuid.UUID, requirements []model.TemplateRequirement) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("template_id = ?", templateID).Delete(&model.TemplateRequirement{}).Error; err != nil {
		logger.Error("Error deleting template requirements in DB",
			"error", err,
			"template_id", templateID.String(),
		)
		return fmt.Errorf("gormTemplateRepository.ReplaceRequirements: %w", err)
	}
	if len(requirements) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&requirements).Error; err != nil {
		logger.Error("Error creating template requirements in DB",
			"error", err,
			"template_id", templateID.String(),
		)
		return fmt.Errorf("gormTemplateRepository.ReplaceRequirements: %w", err)
	}
	return nil
}

func (r *gormTemplateRepository) Delete(ctx context.Context, tx *gorm.DB, templateID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("template_id = ?", templateID).Delete(&model.CertificationTemplate{})
	if result.Error != nil {
		logger.Error("Error deleting template in DB",
			"error", result.Error,
			"template_id", templateID.String(),
		)
		return fmt.Errorf("gormTemplateRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
