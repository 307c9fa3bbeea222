// internal/service/checklist_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistService はチェックリスト操作（完了トグル・テンプレート割当・進捗モード切替）を提供します。
// 変更系は必ずプロジェクト行のロックを取った1トランザクション内で行い、
// 再計算と永続化を分離しない（トグルとの競合で古い進捗が残らないようにするため）
type ChecklistService interface {
	ListRequirements(ctx context.Context, projectID uuid.UUID) ([]*model.RequirementStatus, error)
	ToggleRequirement(ctx context.Context, projectID, statusID uuid.UUID, isCompleted bool) (*model.ToggleRequirementResponse, error)
	// AssignTemplate は破壊的操作。既存のチェックリストは履歴なしで破棄される
	AssignTemplate(ctx context.Context, projectID, templateID uuid.UUID) (*model.AssignTemplateResponse, error)
	ChangeProgressMode(ctx context.Context, projectID uuid.UUID, mode model.ProgressMode) (*model.Project, error)
}

type checklistService struct {
	db            *gorm.DB
	projectRepo   repository.ProjectRepository
	checklistRepo repository.ChecklistRepository
	templateRepo  repository.TemplateRepository
}

func NewChecklistService(db *gorm.DB, projectRepo repository.ProjectRepository, checklistRepo repository.ChecklistRepository, templateRepo repository.TemplateRepository) ChecklistService {
	return &checklistService{
		db:            db,
		projectRepo:   projectRepo,
		checklistRepo: checklistRepo,
		templateRepo:  templateRepo,
	}
}

func (s *checklistService) ListRequirements(ctx context.Context, projectID uuid.UUID) ([]*model.RequirementStatus, error) {
	if _, err := s.projectRepo.FindByID(ctx, s.db, projectID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの取得に失敗しました。", "", model.ErrInternalServer)
	}

	statuses, err := s.checklistRepo.FindByProject(ctx, s.db, projectID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "チェックリストの取得に失敗しました。", "", model.ErrInternalServer)
	}
	return statuses, nil
}

func (s *checklistService) ToggleRequirement(ctx context.Context, projectID, statusID uuid.UUID, isCompleted bool) (*model.ToggleRequirementResponse, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String(), "status_id", statusID.String())

	var resp model.ToggleRequirementResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := s.projectRepo.FindByIDForUpdate(ctx, tx, projectID)
		if err != nil {
			return err
		}

		// MANUALモード中の個別トグルは禁止（手動値との乖離を防ぐ）
		if project.ProgressMode == model.ProgressManual {
			return model.NewAppError("MANUAL_MODE", "手動進捗モード中はチェック項目を変更できません。", "", model.ErrInvalidInput)
		}

		if err := s.checklistRepo.SetCompleted(ctx, tx, projectID, statusID, isCompleted); err != nil {
			return err
		}

		total, completed, err := s.checklistRepo.Count(ctx, tx, projectID)
		if err != nil {
			return err
		}
		progress := CalcChecklistProgress(int(total), int(completed))

		if err := s.projectRepo.Updates(ctx, tx, projectID, map[string]interface{}{"progress": progress}); err != nil {
			return err
		}

		status, err := s.checklistRepo.FindByID(ctx, tx, projectID, statusID)
		if err != nil {
			return err
		}

		resp.Status = status
		resp.Progress = progress
		return nil
	})
	if err != nil {
		return nil, s.wrapChecklistError(logger, err, "チェック項目の更新に失敗しました。")
	}

	logger.Info("Requirement toggled", "is_completed", isCompleted, "progress", resp.Progress)
	return &resp, nil
}

func (s *checklistService) AssignTemplate(ctx context.Context, projectID, templateID uuid.UUID) (*model.AssignTemplateResponse, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String(), "template_id", templateID.String())

	var resp model.AssignTemplateResponse

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := s.projectRepo.FindByIDForUpdate(ctx, tx, projectID)
		if err != nil {
			return err
		}

		// 前提条件: テンプレートの存在。なければ一切書き込まない
		template, err := s.templateRepo.FindByID(ctx, tx, templateID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TEMPLATE_NOT_FOUND", "指定されたテンプレートが見つかりません。", "template_id", model.ErrNotFound)
			}
			return err
		}

		// 全行を未完了スナップショットで置き換える
		statuses := make([]*model.RequirementStatus, 0, len(template.Requirements))
		for _, req := range template.Requirements {
			statuses = append(statuses, &model.RequirementStatus{
				StatusID:      uuid.New(),
				ProjectID:     projectID,
				RequirementID: req.RequirementID,
				Position:      req.Position,
				Text:          req.Text,
				IsCompleted:   false,
			})
		}
		if err := s.checklistRepo.Replace(ctx, tx, projectID, statuses); err != nil {
			return err
		}

		updates := map[string]interface{}{"template_id": templateID}
		progress := project.Progress
		// AUTOMATICなら同一トランザクション内で再計算（空テンプレートは0）
		if project.ProgressMode == model.ProgressAutomatic {
			progress = CalcChecklistProgress(len(statuses), 0)
			updates["progress"] = progress
		}
		if err := s.projectRepo.Updates(ctx, tx, projectID, updates); err != nil {
			return err
		}

		resp.Requirements = statuses
		resp.Progress = progress
		return nil
	})
	if err != nil {
		return nil, s.wrapChecklistError(logger, err, "テンプレートの割当に失敗しました。")
	}

	logger.Info("Template assigned", "requirements", len(resp.Requirements), "progress", resp.Progress)
	return &resp, nil
}

func (s *checklistService) ChangeProgressMode(ctx context.Context, projectID uuid.UUID, mode model.ProgressMode) (*model.Project, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String())

	if !mode.Valid() {
		return nil, model.NewAppError("VALIDATION_ERROR", "進捗モードの値が不正です。", "mode", model.ErrInvalidInput)
	}

	var updated *model.Project

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ロック取得のみ（トグルとの競合を直列化する）
		if _, err := s.projectRepo.FindByIDForUpdate(ctx, tx, projectID); err != nil {
			return err
		}

		updates := map[string]interface{}{"progress_mode": mode}

		// MANUAL→AUTOMATICは同一操作内で必ず再計算する。
		// 古い手動値が一瞬でも見えてはならない
		if mode == model.ProgressAutomatic {
			total, completed, err := s.checklistRepo.Count(ctx, tx, projectID)
			if err != nil {
				return err
			}
			updates["progress"] = CalcChecklistProgress(int(total), int(completed))
		}
		// AUTOMATIC→MANUALは直近の計算値を初期の手動値として引き継ぐ

		if err := s.projectRepo.Updates(ctx, tx, projectID, updates); err != nil {
			return err
		}

		var err error
		updated, err = s.projectRepo.FindByID(ctx, tx, projectID)
		return err
	})
	if err != nil {
		return nil, s.wrapChecklistError(logger, err, "進捗モードの切替に失敗しました。")
	}

	logger.Info("Progress mode changed", "mode", string(mode), "progress", updated.Progress)
	return updated, nil
}

// wrapChecklistError はトランザクション内のエラーをクライアント向けAppErrorへ変換します
func (s *checklistService) wrapChecklistError(logger *slog.Logger, err error, fallback string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", "対象のリソースが見つかりません。", "", model.ErrNotFound)
	}
	logger.Error("Checklist operation failed", "error", err)
	return model.NewAppError("INTERNAL_SERVER_ERROR", fallback, "", model.ErrInternalServer)
}
