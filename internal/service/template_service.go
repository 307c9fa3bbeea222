// internal/service/template_service.go
package service

import (
	"context"
	"errors"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateService はテンプレートストアのCRUDを提供します
type TemplateService interface {
	CreateTemplate(ctx context.Context, req *model.CreateTemplateRequest) (*model.CertificationTemplate, error)
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*model.CertificationTemplate, error)
	ListTemplates(ctx context.Context) ([]*model.CertificationTemplate, error)
	UpdateTemplate(ctx context.Context, templateID uuid.UUID, req *model.UpdateTemplateRequest) (*model.CertificationTemplate, error)
	DeleteTemplate(ctx context.Context, templateID uuid.UUID) error
}

type templateService struct {
	db           *gorm.DB
	templateRepo repository.TemplateRepository
}

func NewTemplateService(db *gorm.DB, templateRepo repository.TemplateRepository) TemplateService {
	return &templateService{
		db:           db,
		templateRepo: templateRepo,
	}
}

func buildRequirements(templateID uuid.UUID, inputs []model.RequirementInput) []model.TemplateRequirement {
	requirements := make([]model.TemplateRequirement, 0, len(inputs))
	for i, in := range inputs {
		requirements = append(requirements, model.TemplateRequirement{
			RequirementID: uuid.New(),
			TemplateID:    templateID,
			Position:      i,
			Text:          in.Text,
			Documents:     model.DocumentList(in.Documents),
		})
	}
	return requirements
}

func (s *templateService) CreateTemplate(ctx context.Context, req *model.CreateTemplateRequest) (*model.CertificationTemplate, error) {
	logger := middleware.GetLogger(ctx)

	template := &model.CertificationTemplate{
		TemplateID:  uuid.New(),
		DisplayName: req.DisplayName,
		Description: req.Description,
	}
	template.Requirements = buildRequirements(template.TemplateID, req.Requirements)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.templateRepo.Create(ctx, tx, template)
	})
	if err != nil {
		logger.Error("Error creating template in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テンプレートの作成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Template created", "template_id", template.TemplateID.String(), "requirements", len(template.Requirements))
	return template, nil
}

func (s *templateService) GetTemplate(ctx context.Context, templateID uuid.UUID) (*model.CertificationTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, s.db, templateID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "テンプレートが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テンプレートの取得に失敗しました。", "", model.ErrInternalServer)
	}
	return template, nil
}

func (s *templateService) ListTemplates(ctx context.Context) ([]*model.CertificationTemplate, error) {
	templates, err := s.templateRepo.List(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テンプレート一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return templates, nil
}

func (s *templateService) UpdateTemplate(ctx context.Context, templateID uuid.UUID, req *model.UpdateTemplateRequest) (*model.CertificationTemplate, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		template := &model.CertificationTemplate{
			TemplateID:  templateID,
			DisplayName: req.DisplayName,
			Description: req.Description,
		}
		if err := s.templateRepo.Update(ctx, tx, template); err != nil {
			return err
		}
		return s.templateRepo.ReplaceRequirements(ctx, tx, templateID, buildRequirements(templateID, req.Requirements))
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "テンプレートが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error updating template in transaction", "error", err, "template_id", templateID.String())
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "テンプレートの更新に失敗しました。", "", model.ErrInternalServer)
	}

	return s.GetTemplate(ctx, templateID)
}

func (s *templateService) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.templateRepo.Delete(ctx, tx, templateID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("NOT_FOUND", "テンプレートが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error deleting template in transaction", "error", err, "template_id", templateID.String())
		return model.NewAppError("INTERNAL_SERVER_ERROR", "テンプレートの削除に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Template deleted", "template_id", templateID.String())
	return nil
}
