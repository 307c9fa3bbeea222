// internal/service/project_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"cert_keep/internal/config"
	"cert_keep/internal/middleware"
	"cert_keep/internal/model"
	"cert_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService はプロジェクトの作成・取得・更新を提供します
type ProjectService interface {
	CreateProject(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*model.ProjectDetailResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *model.UpdateProjectRequest) (*model.UpdateProjectResponse, error)
}

type projectService struct {
	db            *gorm.DB
	projectRepo   repository.ProjectRepository
	checklistRepo repository.ChecklistRepository
	templateRepo  repository.TemplateRepository
	reviewRepo    repository.ReviewRepository
	cfg           *config.Config
}

func NewProjectService(db *gorm.DB, projectRepo repository.ProjectRepository, checklistRepo repository.ChecklistRepository, templateRepo repository.TemplateRepository, reviewRepo repository.ReviewRepository, cfg *config.Config) ProjectService {
	return &projectService{
		db:            db,
		projectRepo:   projectRepo,
		checklistRepo: checklistRepo,
		templateRepo:  templateRepo,
		reviewRepo:    reviewRepo,
		cfg:           cfg,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	logger := middleware.GetLogger(ctx)

	project := &model.Project{
		ProjectID:    uuid.New(),
		Name:         req.Name,
		CertType:     req.CertType,
		Status:       model.StatusPreparing,
		Progress:     0,
		ProgressMode: model.ProgressAutomatic,
		ManagerID:    req.ManagerID,
		Agency:       req.Agency,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepo.Create(ctx, tx, project); err != nil {
			return err
		}

		// 両トラックのステップ定義をスナップショットとして生成
		steps := make([]*model.ReviewStep, 0, len(s.cfg.App.InternalSteps)+len(s.cfg.App.ExternalSteps))
		for i, name := range s.cfg.App.InternalSteps {
			steps = append(steps, &model.ReviewStep{
				StepID:    uuid.New(),
				ProjectID: project.ProjectID,
				Track:     model.TrackInternal,
				Position:  i,
				Name:      name,
			})
		}
		for i, name := range s.cfg.App.ExternalSteps {
			steps = append(steps, &model.ReviewStep{
				StepID:    uuid.New(),
				ProjectID: project.ProjectID,
				Track:     model.TrackExternal,
				Position:  i,
				Name:      name,
			})
		}
		if err := s.reviewRepo.CreateSteps(ctx, tx, steps); err != nil {
			return err
		}

		// テンプレート指定があれば作成時点で展開する
		if req.TemplateID != nil {
			template, err := s.templateRepo.FindByID(ctx, tx, *req.TemplateID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("TEMPLATE_NOT_FOUND", "指定されたテンプレートが見つかりません。", "template_id", model.ErrNotFound)
				}
				return err
			}
			statuses := make([]*model.RequirementStatus, 0, len(template.Requirements))
			for _, r := range template.Requirements {
				statuses = append(statuses, &model.RequirementStatus{
					StatusID:      uuid.New(),
					ProjectID:     project.ProjectID,
					RequirementID: r.RequirementID,
					Position:      r.Position,
					Text:          r.Text,
				})
			}
			if err := s.checklistRepo.Replace(ctx, tx, project.ProjectID, statuses); err != nil {
				return err
			}
			if err := s.projectRepo.Updates(ctx, tx, project.ProjectID, map[string]interface{}{"template_id": *req.TemplateID}); err != nil {
				return err
			}
			project.TemplateID = req.TemplateID
		}

		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		logger.Error("Error creating project in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの作成に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Project created", "project_id", project.ProjectID.String(), "cert_type", project.CertType)
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, projectID uuid.UUID) (*model.ProjectDetailResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, s.db, projectID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの取得に失敗しました。", "", model.ErrInternalServer)
	}

	internal, err := s.buildTrackSummary(ctx, projectID, model.TrackInternal)
	if err != nil {
		return nil, err
	}
	external, err := s.buildTrackSummary(ctx, projectID, model.TrackExternal)
	if err != nil {
		return nil, err
	}

	return &model.ProjectDetailResponse{
		Project:  project,
		Internal: *internal,
		External: *external,
	}, nil
}

func (s *projectService) buildTrackSummary(ctx context.Context, projectID uuid.UUID, track model.Track) (*model.TrackSummary, error) {
	steps, err := s.reviewRepo.FindSteps(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ステップ情報の取得に失敗しました。", "", model.ErrInternalServer)
	}
	approvals, err := s.reviewRepo.CountApprovals(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査履歴の集計に失敗しました。", "", model.ErrInternalServer)
	}
	records, err := s.reviewRepo.FindByProjectAndTrack(ctx, s.db, projectID, track)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "審査履歴の取得に失敗しました。", "", model.ErrInternalServer)
	}

	names := make([]string, len(steps))
	for i, st := range steps {
		names[i] = st.Name
	}
	states, progress := FoldSteps(names, int(approvals))

	return &model.TrackSummary{
		Track:    track,
		Steps:    states,
		Progress: progress,
		Reviews:  len(records),
	}, nil
}

func (s *projectService) UpdateProject(ctx context.Context, projectID uuid.UUID, req *model.UpdateProjectRequest) (*model.UpdateProjectResponse, error) {
	logger := middleware.GetLogger(ctx).With("project_id", projectID.String())

	var warnings []string
	var updated *model.Project

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, err := s.projectRepo.FindByIDForUpdate(ctx, tx, projectID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Agency != nil {
			updates["agency"] = *req.Agency
		}
		if req.ManagerID != nil {
			updates["manager_id"] = *req.ManagerID
		}
		if req.StartDate != nil {
			updates["start_date"] = *req.StartDate
		}
		if req.EndDate != nil {
			updates["end_date"] = *req.EndDate
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				return model.NewAppError("VALIDATION_ERROR", "ステータスの値が不正です。", "status", model.ErrInvalidInput)
			}
			updates["status"] = *req.Status
		}
		if req.Progress != nil {
			// 手動進捗の直接入力はMANUALモードのみ
			if project.ProgressMode != model.ProgressManual {
				return model.NewAppError("AUTOMATIC_MODE", "自動進捗モード中は進捗率を直接設定できません。", "progress", model.ErrInvalidInput)
			}
			updates["progress"] = *req.Progress
		}
		if len(updates) == 0 {
			updated = project
			return nil
		}

		if err := s.projectRepo.UpdateOptimistic(ctx, tx, projectID, req.LockVersion, updates); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("CONFLICT", "プロジェクトが他の操作で更新されています。最新の状態を取得してやり直してください。", "lock_version", model.ErrConflict)
			}
			return err
		}

		updated, err = s.projectRepo.FindByID(ctx, tx, projectID)
		return err
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("NOT_FOUND", "プロジェクトが見つかりません。", "", model.ErrNotFound)
		}
		logger.Error("Error updating project in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "プロジェクトの更新に失敗しました。", "", model.ErrInternalServer)
	}

	// ステータスとトラック進行の不整合は非致命。警告としてログと応答の両方に出す
	if req.Status != nil {
		ws, werr := s.checkStatusInvariant(ctx, projectID, *req.Status)
		if werr != nil {
			logger.Warn("Failed to check status invariant", "error", werr)
		}
		for _, w := range ws {
			logger.Warn("State invariant warning", "warning", w)
		}
		warnings = ws
	}

	return &model.UpdateProjectResponse{Project: updated, Warnings: warnings}, nil
}

// checkStatusInvariant はプロジェクトステータスとトラック別ステップ進行の
// 不整合を検出します。不整合でも処理は失敗させない
func (s *projectService) checkStatusInvariant(ctx context.Context, projectID uuid.UUID, status model.ProjectStatus) ([]string, error) {
	var warnings []string

	hasPending := func(track model.Track) (bool, error) {
		summary, err := s.buildTrackSummary(ctx, projectID, track)
		if err != nil {
			return false, err
		}
		for _, st := range summary.Steps {
			if st.Status == model.StepPending {
				return true, nil
			}
		}
		return false, nil
	}

	switch status {
	case model.StatusCompleted:
		for _, track := range []model.Track{model.TrackInternal, model.TrackExternal} {
			pending, err := hasPending(track)
			if err != nil {
				return warnings, err
			}
			if pending {
				warnings = append(warnings, fmt.Sprintf("ステータスが completed ですが、%s トラックに未着手のステップが残っています。", track))
			}
		}
	case model.StatusExternalReview:
		pending, err := hasPending(model.TrackInternal)
		if err != nil {
			return warnings, err
		}
		if pending {
			warnings = append(warnings, "ステータスが external-review ですが、internal トラックに未着手のステップが残っています。")
		}
	}

	return warnings, nil
}
