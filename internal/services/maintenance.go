package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

type MaintenanceServiceInterface interface {
	CreateRequest(ctx context.Context, data dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	GetRequests(ctx context.Context, filter dto.RequestListFilter) (*dto.RequestListDTO, error)
	FindRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDetailDTO, error)
	UpdateRequest(ctx context.Context, id uuid.UUID, data dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error)
	SoftDeleteRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDeleteDTO, error)
}

type MaintenanceService struct {
	txManager      repositories.TxManagerInterface
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	workcenterRepo repositories.WorkcenterRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	userRepo       repositories.UserRepositoryInterface
	policy         entities.TransitionPolicy
	logger         *zap.Logger
}

func NewMaintenanceService(
	txManager repositories.TxManagerInterface,
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	workcenterRepo repositories.WorkcenterRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	policy entities.TransitionPolicy,
	logger *zap.Logger,
) MaintenanceServiceInterface {
	if policy == nil {
		policy = entities.AllowAllTransitions
	}
	return &MaintenanceService{
		txManager:      txManager,
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		workcenterRepo: workcenterRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		policy:         policy,
		logger:         logger,
	}
}

// CreateRequest resolves references and defaults, then persists the new
// request. Team and category are inherited from the equipment target
// when the caller omits them; a request that still lacks either after
// resolution is rejected and nothing is persisted.
func (s *MaintenanceService) CreateRequest(ctx context.Context, data dto.CreateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if data.EquipmentID == nil && data.WorkcenterID == nil {
		return nil, apperrors.NewInvalidInputError("must provide either an equipment id or a workcenter id")
	}

	teamID := data.TeamID
	categoryID := data.CategoryID

	if data.EquipmentID != nil {
		equipment, err := s.equipmentRepo.FindByID(ctx, companyID, *data.EquipmentID)
		if err != nil {
			return nil, err
		}
		if teamID == nil {
			id := equipment.TeamID
			teamID = &id
		}
		if categoryID == nil {
			id := equipment.CategoryID
			categoryID = &id
		}
	} else if _, err := s.workcenterRepo.FindByID(ctx, companyID, *data.WorkcenterID); err != nil {
		return nil, err
	}

	if teamID == nil || categoryID == nil {
		return nil, apperrors.NewInvalidInputError("maintenance team and category are required")
	}

	now := time.Now().UTC()
	request := &entities.MaintenanceRequest{
		ID:            uuid.New(),
		Subject:       data.Subject,
		Description:   data.Notes,
		Instructions:  data.Instructions,
		RequestType:   entities.RequestTypeFromString(data.MaintenanceType),
		Stage:         entities.StageNew,
		Priority:      entities.PriorityFromWord(data.Priority),
		ScheduledDate: data.ScheduledDate,
		Duration:      utils.ParseDurationHours(data.Duration),
		EquipmentID:   data.EquipmentID,
		WorkcenterID:  data.WorkcenterID,
		TeamID:        *teamID,
		CategoryID:    *categoryID,
		TechnicianID:  data.TechnicianID,
		CompanyID:     companyID,
		CreatedByID:   userID,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.requestRepo.CreateInTx(ctx, tx, request)
	})
	if err != nil {
		s.logger.Error("failed to create maintenance request", zap.Error(err))
		return nil, err
	}

	result := mapRequest(request)
	return &result, nil
}

func (s *MaintenanceService) GetRequests(ctx context.Context, filter dto.RequestListFilter) (*dto.RequestListDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	requests, total, err := s.requestRepo.List(ctx, companyID, filter, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	items := make([]dto.MaintenanceRequestDTO, 0, len(requests))
	for _, req := range requests {
		items = append(items, mapRequest(&req))
	}

	return &dto.RequestListDTO{
		Requests: items,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, filter.Limit),
		},
	}, nil
}

// FindRequest returns the request with its equipment, team and
// technician references expanded. A dangling reference degrades to an
// absent block rather than failing the read.
func (s *MaintenanceService) FindRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDetailDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.RequestDetailDTO{MaintenanceRequestDTO: mapRequest(request)}

	if request.EquipmentID != nil {
		if eq, err := s.equipmentRepo.FindByID(ctx, companyID, *request.EquipmentID); err == nil {
			detail.Equipment = &dto.EquipmentShortDTO{
				ID:           eq.ID,
				Name:         eq.Name,
				SerialNumber: eq.SerialNumber,
			}
		}
	}
	if team, err := s.teamRepo.FindByID(ctx, companyID, request.TeamID); err == nil {
		detail.Team = &dto.TeamShortDTO{ID: team.ID, Name: team.Name}
	}
	if request.TechnicianID != nil {
		if tech, err := s.userRepo.FindByID(ctx, *request.TechnicianID); err == nil {
			detail.Technician = &dto.UserShortDTO{
				ID:       tech.ID,
				UserID:   tech.ID,
				FullName: tech.FullName,
				Email:    tech.Email,
			}
		}
	}

	return detail, nil
}

// UpdateRequest applies a partial update. A status word in the payload
// goes through the transition policy and triggers cascade effects inside
// the same transaction as the stage write.
func (s *MaintenanceService) UpdateRequest(ctx context.Context, id uuid.UUID, data dto.UpdateMaintenanceRequestDTO) (*dto.MaintenanceRequestDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var updated *entities.MaintenanceRequest
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepo.FindByIDInTx(ctx, tx, companyID, id)
		if err != nil {
			return err
		}

		if data.Subject != nil {
			request.Subject = *data.Subject
		}
		if data.TechnicianID != nil {
			request.TechnicianID = data.TechnicianID
		}
		if data.ScheduledDate != nil {
			request.ScheduledDate = data.ScheduledDate
		}
		if data.Notes != nil {
			request.Description = *data.Notes
		}
		if data.Instructions != nil {
			request.Instructions = *data.Instructions
		}
		if data.Priority != nil {
			request.Priority = entities.PriorityFromWord(*data.Priority)
		}

		if data.Status != nil {
			nextStage, ok := entities.StageFromStatus(*data.Status)
			if !ok {
				return apperrors.NewInvalidInputError("unknown status %q", *data.Status)
			}
			previous := request.Stage
			if !s.policy(previous, nextStage) {
				return apperrors.NewInvalidInputError("transition from %s to %s is not allowed", previous, nextStage)
			}
			request.Stage = nextStage

			if err := s.applyCascadeEffects(ctx, tx, nextStage, request); err != nil {
				return err
			}
		}

		request.UpdatedAt = time.Now().UTC()
		if err := s.requestRepo.UpdateInTx(ctx, tx, request); err != nil {
			return err
		}

		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := mapRequest(updated)
	return &result, nil
}

// applyCascadeEffects runs the side effects a stage transition has on
// other entities. One rule today: entering scrap with an equipment
// target marks that equipment unusable. The write is idempotent, so
// repeated scrap transitions are safe. Leaving scrap reverses nothing.
func (s *MaintenanceService) applyCascadeEffects(ctx context.Context, tx pgx.Tx, next entities.Stage, request *entities.MaintenanceRequest) error {
	if next == entities.StageScrap && request.EquipmentID != nil {
		if err := s.equipmentRepo.MarkUnusableInTx(ctx, tx, request.CompanyID, *request.EquipmentID); err != nil {
			s.logger.Error("scrap cascade failed",
				zap.String("requestId", request.ID.String()),
				zap.String("equipmentId", request.EquipmentID.String()),
				zap.Error(err))
			return err
		}
	}
	return nil
}

func (s *MaintenanceService) SoftDeleteRequest(ctx context.Context, id uuid.UUID) (*dto.RequestDeleteDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var result *dto.RequestDeleteDTO
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.requestRepo.FindByIDInTx(ctx, tx, companyID, id); err != nil {
			return err
		}

		when := time.Now().UTC()
		if err := s.requestRepo.SoftDeleteInTx(ctx, tx, companyID, id, when); err != nil {
			return err
		}

		result = &dto.RequestDeleteDTO{ID: id, IsActive: false, UpdatedAt: when}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func mapRequest(req *entities.MaintenanceRequest) dto.MaintenanceRequestDTO {
	return dto.MaintenanceRequestDTO{
		ID:              req.ID,
		Subject:         req.Subject,
		EquipmentID:     req.EquipmentID,
		TeamID:          req.TeamID,
		TechnicianID:    req.TechnicianID,
		CategoryID:      req.CategoryID,
		CompanyID:       req.CompanyID,
		MaintenanceFor:  req.MaintenanceTarget(),
		WorkcenterID:    req.WorkcenterID,
		MaintenanceType: string(req.RequestType),
		Priority:        entities.PriorityWord(req.Priority),
		Status:          req.Stage.StatusWord(),
		RequestDate:     req.CreatedAt,
		ScheduledDate:   req.ScheduledDate,
		Duration:        req.Duration,
		Notes:           req.Description,
		Instructions:    req.Instructions,
		IsBlocked:       req.IsBlocked,
		IsArchived:      req.IsArchived,
		IsActive:        req.IsActive,
		CreatedAt:       req.CreatedAt,
		UpdatedAt:       req.UpdatedAt,
	}
}
