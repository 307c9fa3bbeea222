//go:generate mockery --name ProjectRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository はプロジェクト本体の永続化を担います
type ProjectRepository interface {
	Create(ctx context.Context, tx *gorm.DB, project *model.Project) error
	FindByID(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (*model.Project, error)
	// FindByIDForUpdate は行ロック付きで取得します。
	// チェックリスト系の更新はすべてこのロック越しに直列化します
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*model.Project, error)
	// UpdateOptimistic は lock_version の一致を条件に更新し、版数を進めます。
	// 不一致の場合は model.ErrConflict を返します
	UpdateOptimistic(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, expectedVersion int, updates map[string]interface{}) error
	Updates(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, updates map[string]interface{}) error
}

type gormProjectRepository struct{}

func NewGormProjectRepository() ProjectRepository {
	return &gormProjectRepository{}
}

func (r *gormProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(project)
	if result.Error != nil {
		logger.Error("Error creating project in DB",
			"error", result.Error,
			"name", project.Name,
		)
		return fmt.Errorf("gormProjectRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProjectRepository) FindByID(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (*model.Project, error) {
	logger := middleware.GetLogger(ctx)
	var project model.Project
	result := db.WithContext(ctx).Where("project_id = ?", projectID).First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding project by ID in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return nil, fmt.Errorf("gormProjectRepository.FindByID: %w", result.Error)
	}
	return &project, nil
}

func (r *gormProjectRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*model.Project, error) {
	logger := middleware.GetLogger(ctx)
	var project model.Project
	result := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("project_id = ?", projectID).
		First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error locking project row in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return nil, fmt.Errorf("gormProjectRepository.FindByIDForUpdate: %w", result.Error)
	}
	return &project, nil
}

func (r *gormProjectRepository) UpdateOptimistic(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, expectedVersion int, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)

	updates["lock_version"] = gorm.Expr("lock_version + 1")
	result := tx.WithContext(ctx).Model(&model.Project{}).
		Where("project_id = ? AND lock_version = ?", projectID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating project in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return fmt.Errorf("gormProjectRepository.UpdateOptimistic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// 行が存在しないのか版数不一致なのかを区別する
		var count int64
		if err := tx.WithContext(ctx).Model(&model.Project{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
			return fmt.Errorf("gormProjectRepository.UpdateOptimistic: %w", err)
		}
		if count == 0 {
			return model.ErrNotFound
		}
		return model.ErrConflict
	}
	return nil
}

func (r *gormProjectRepository) Updates(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Project{}).
		Where("project_id = ?", projectID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating project in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return fmt.Errorf("gormProjectRepository.Updates: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
