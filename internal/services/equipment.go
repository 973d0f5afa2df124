package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
	"maintenance-system/pkg/utils"
)

const equipmentHistoryLimit = 5

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter dto.EquipmentListFilter) (*dto.EquipmentListDTO, error)
	FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDetailDTO, error)
	CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uuid.UUID, data dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	requestRepo    repositories.RequestRepositoryInterface
	categoryRepo   repositories.CategoryRepositoryInterface
	departmentRepo repositories.DepartmentRepositoryInterface
	userRepo       repositories.UserRepositoryInterface
	logger         *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	departmentRepo repositories.DepartmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo:  equipmentRepo,
		requestRepo:    requestRepo,
		categoryRepo:   categoryRepo,
		departmentRepo: departmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter dto.EquipmentListFilter) (*dto.EquipmentListDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.equipmentRepo.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.EquipmentDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEquipmentRow(&row))
	}

	return &dto.EquipmentListDTO{
		Equipment: items,
		Pagination: dto.Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: utils.TotalPages(total, filter.Limit),
		},
	}, nil
}

// FindEquipment returns the record together with its recent maintenance
// history, newest first.
func (s *EquipmentService) FindEquipment(ctx context.Context, id uuid.UUID) (*dto.EquipmentDetailDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := s.equipmentRepo.FindRowByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	recent, err := s.requestRepo.RecentByEquipment(ctx, companyID, id, equipmentHistoryLimit)
	if err != nil {
		return nil, err
	}

	history := make([]dto.EquipmentHistoryItemDTO, 0, len(recent))
	for _, req := range recent {
		history = append(history, dto.EquipmentHistoryItemDTO{
			ID:          req.ID,
			Subject:     req.Subject,
			Status:      req.Stage.StatusWord(),
			Priority:    entities.PriorityWord(req.Priority),
			CompletedAt: req.UpdatedAt,
		})
	}

	return &dto.EquipmentDetailDTO{
		EquipmentDTO:       mapEquipmentRow(row),
		MaintenanceHistory: history,
	}, nil
}

// CreateEquipment resolves category and department by name and assigns
// the caller's own maintenance team to the new record.
func (s *EquipmentService) CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByName(ctx, data.Category)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewInvalidInputError("unknown equipment category %q", data.Category)
		}
		return nil, err
	}

	department, err := s.departmentRepo.FindByName(ctx, companyID, data.Department)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.NewInvalidInputError("unknown department %q", data.Department)
		}
		return nil, err
	}

	caller, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if caller.TeamID == nil {
		return nil, apperrors.NewInvalidInputError("cannot assign a maintenance team: caller does not belong to one")
	}

	now := time.Now().UTC()
	eq := &entities.Equipment{
		ID:           uuid.New(),
		Name:         data.Name,
		SerialNumber: data.SerialNumber,
		Location:     data.Location,
		CategoryID:   category.ID,
		DepartmentID: department.ID,
		CompanyID:    companyID,
		TeamID:       *caller.TeamID,
		IsUnusable:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.equipmentRepo.Create(ctx, eq); err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}

	row, err := s.equipmentRepo.FindRowByID(ctx, companyID, eq.ID)
	if err != nil {
		return nil, err
	}
	result := mapEquipmentRow(row)
	return &result, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, data dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	eq, err := s.equipmentRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if data.Name != nil {
		eq.Name = *data.Name
	}
	if data.Location != nil {
		eq.Location = *data.Location
	}
	if data.TechnicianID != nil {
		eq.TechnicianID = data.TechnicianID
	}
	if data.Status != nil {
		switch *data.Status {
		case "Out of Service", "Scrapped":
			eq.IsUnusable = true
		case "Active", "Operational":
			eq.IsUnusable = false
		default:
			return nil, apperrors.NewInvalidInputError("unknown equipment status %q", *data.Status)
		}
	}
	eq.UpdatedAt = time.Now().UTC()

	if err := s.equipmentRepo.Update(ctx, eq); err != nil {
		return nil, err
	}

	row, err := s.equipmentRepo.FindRowByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	result := mapEquipmentRow(row)
	return &result, nil
}

func mapEquipmentRow(row *repositories.EquipmentRow) dto.EquipmentDTO {
	status := "Active"
	if row.IsUnusable {
		status = "Out of Service"
	}
	return dto.EquipmentDTO{
		ID:              row.ID,
		Name:            row.Name,
		Category:        row.CategoryName,
		SerialNumber:    row.SerialNumber,
		Department:      row.DepartmentName,
		TechnicianID:    row.TechnicianID,
		TechnicianName:  row.TechnicianName.String,
		EmployeeID:      row.EmployeeID,
		EmployeeName:    row.EmployeeName.String,
		Location:        row.Location,
		Status:          status,
		MaintenanceTeam: row.TeamName,
		IsActive:        !row.IsUnusable,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
