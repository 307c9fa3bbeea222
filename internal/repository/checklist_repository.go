//go:generate mockery --name ChecklistRepository --output ./mocks --outpkg mocks --case=underscore
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

// ChecklistRepository はプロジェクトの要求事項チェックリストの永続化を担います
type ChecklistRepository interface {
	FindByProject(ctx context.Context, db *gorm.DB, projectID uuid.UUID) ([]*model.RequirementStatus, error)
	FindByID(ctx context.Context, db *gorm.DB, projectID, statusID uuid.UUID) (*model.RequirementStatus, error)
	SetCompleted(ctx context.Context, tx *gorm.DB, projectID, statusID uuid.UUID, isCompleted bool) error
	// Replace は既存の全行を破棄し、新しいスナップショットで置き換えます
	Replace(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, statuses []*model.RequirementStatus) error
	// Count は (総数, 完了数) を返します
	Count(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (int64, int64, error)
}

type gormChecklistRepository struct{}

func NewGormChecklistRepository() ChecklistRepository {
	return &gormChecklistRepository{}
}

func (r *gormChecklistRepository) FindByProject(ctx context.Context, db *gorm.DB, projectID uuid.UUID) ([]*model.RequirementStatus, error) {
	logger := middleware.GetLogger(ctx)
	var statuses []*model.RequirementStatus
	result := db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("position ASC").
		Find(&statuses)
	if result.Error != nil {
		logger.Error("Error finding requirement statuses in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return nil, fmt.Errorf("gormChecklistRepository.FindByProject: %w", result.Error)
	}
	return statuses, nil
}

func (r *gormChecklistRepository) FindByID(ctx context.Context, db *gorm.DB, projectID, statusID uuid.UUID) (*model.RequirementStatus, error) {
	logger := middleware.GetLogger(ctx)
	var status model.RequirementStatus
	result := db.WithContext(ctx).
		Where("project_id = ? AND status_id = ?", projectID, statusID).
		First(&status)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding requirement status by ID in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"status_id", statusID.String(),
		)
		return nil, fmt.Errorf("gormChecklistRepository.FindByID: %w", result.Error)
	}
	return &status, nil
}

func (r *gormChecklistRepository) SetCompleted(ctx context.Context, tx *gorm.DB, projectID, statusID uuid.UUID, isCompleted bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.RequirementStatus{}).
		Where("project_id = ? AND status_id = ?", projectID, statusID).
		Update("is_completed", isCompleted)
	if result.Error != nil {
		logger.Error("Error updating requirement status in DB",
			"error", result.Error,
			"project_id", projectID.String(),
			"status_id", statusID.String(),
		)
		return fmt.Errorf("gormChecklistRepository.SetCompleted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChecklistRepository) Replace(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, statuses []*model.RequirementStatus) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Where("project_id = ?", projectID).Delete(&model.RequirementStatus{}).Error; err != nil {
		logger.Error("Error deleting requirement statuses in DB",
			"error", err,
			"project_id", projectID.String(),
		)
		return fmt.Errorf("gormChecklistRepository.Replace: %w", err)
	}
	if len(statuses) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Create(&statuses).Error; err != nil {
		logger.Error("Error creating requirement statuses in DB",
			"error", err,
			"project_id", projectID.String(),
		)
		return fmt.Errorf("gormChecklistRepository.Replace: %w", err)
	}
	return nil
}

func (r *gormChecklistRepository) Count(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var total, completed int64
	if err := db.WithContext(ctx).Model(&model.RequirementStatus{}).
		Where("project_id = ?", projectID).
		Count(&total).Error; err != nil {
		logger.Error("Error counting requirement statuses in DB",
			"error", err,
			"project_id", projectID.String(),
		)
		return 0, 0, fmt.Errorf("gormChecklistRepository.Count: %w", err)
	}
	if err := db.WithContext(ctx).Model(&model.RequirementStatus{}).
		Where("project_id = ? AND is_completed = ?", projectID, true).
		Count(&completed).Error; err != nil {
		logger.Error("Error counting completed requirement statuses in DB",
			"error", err,
			"project_id", projectID.String(),
		)
		return 0, 0, fmt.Errorf("gormChecklistRepository.Count: %w", err)
	}
	return total, completed, nil
}
