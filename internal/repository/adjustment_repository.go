//go:generate mockery --name AdjustmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdjustmentRepository は是正対応の完了自己申告の永続化を担います
type AdjustmentRepository interface {
	// Upsert は (project, issue) をキーに冪等に保存します
	Upsert(ctx context.Context, tx *gorm.DB, completion *model.AdjustmentCompletion) error
	FindByProject(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (map[uuid.UUID]bool, error)
}

type gormAdjustmentRepository struct{}

func NewGormAdjustmentRepository() AdjustmentRepository {
	return &gormAdjustmentRepository{}
}

func (r *gormAdjustmentRepository) Upsert(ctx context.Context, tx *gorm.DB, completion *model.AdjustmentCompletion) error {
	logger := middleware.GetLogger(ctx)
	completion.UpdatedAt = time.Now()

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "issue_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(completion)
	if result.Error != nil {
		logger.Error("Error upserting adjustment completion in DB",
			"error", result.Error,
			"project_id", completion.ProjectID.String(),
			"issue_id", completion.IssueID.String(),
		)
		return fmt.Errorf("gormAdjustmentRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormAdjustmentRepository) FindByProject(ctx context.Context, db *gorm.DB, projectID uuid.UUID) (map[uuid.UUID]bool, error) {
	logger := middleware.GetLogger(ctx)
	var completions []*model.AdjustmentCompletion
	result := db.WithContext(ctx).Where("project_id = ?", projectID).Find(&completions)
	if result.Error != nil {
		logger.Error("Error finding adjustment completions in DB",
			"error", result.Error,
			"project_id", projectID.String(),
		)
		return nil, fmt.Errorf("gormAdjustmentRepository.FindByProject: %w", result.Error)
	}

	out := make(map[uuid.UUID]bool, len(completions))
	for _, c := range completions {
		out[c.IssueID] = c.Completed
	}
	return out, nil
}
