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

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	CreateTeam(ctx context.Context, data dto.CreateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uuid.UUID, force bool) (*dto.TeamDeleteDTO, error)
}

type TeamService struct {
	txManager     repositories.TxManagerInterface
	teamRepo      repositories.TeamRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	companyRepo   repositories.CompanyRepositoryInterface
	logger        *zap.Logger
}

func NewTeamService(
	txManager repositories.TxManagerInterface,
	teamRepo repositories.TeamRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		txManager:     txManager,
		teamRepo:      teamRepo,
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		logger:        logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	companyName := ""
	if company, err := s.companyRepo.FindByID(ctx, companyID); err == nil {
		companyName = company.Name
	}

	result := make([]dto.TeamDTO, 0, len(teams))
	for _, team := range teams {
		result = append(result, mapTeam(&team, companyName, nil))
	}
	return result, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, data dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	companyName := data.Company
	if companyName == "" {
		if company, err := s.companyRepo.FindByID(ctx, companyID); err == nil {
			companyName = company.Name
		}
	}

	now := time.Now().UTC()
	team := &entities.Team{
		ID:          uuid.New(),
		Name:        data.Name,
		Description: data.Description,
		IsActive:    true,
		CompanyID:   companyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.teamRepo.CreateInTx(ctx, tx, team); err != nil {
			return err
		}
		for _, member := range data.Members {
			if err := s.userRepo.AssignTeamInTx(ctx, tx, companyID, member.UserID, team.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create team", zap.Error(err))
		return nil, err
	}

	members := make([]dto.TeamMemberDTO, 0, len(data.Members))
	for _, member := range data.Members {
		user, err := s.userRepo.FindByID(ctx, member.UserID)
		if err != nil {
			continue
		}
		members = append(members, dto.TeamMemberDTO{
			UserID: user.ID,
			Name:   user.FullName,
			Email:  user.Email,
			Role:   string(user.Role),
		})
	}

	result := mapTeam(team, companyName, members)
	return &result, nil
}

// DeleteTeam refuses to remove a team that equipment or active requests
// still reference, unless force is set. The counts and the soft delete
// run in one transaction so the guard cannot race a concurrent create.
func (s *TeamService) DeleteTeam(ctx context.Context, id uuid.UUID, force bool) (*dto.TeamDeleteDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var result *dto.TeamDeleteDTO
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.teamRepo.FindByIDInTx(ctx, tx, companyID, id); err != nil {
			return err
		}

		equipmentCount, err := s.equipmentRepo.CountByTeamInTx(ctx, tx, companyID, id)
		if err != nil {
			return err
		}
		activeRequestCount, err := s.requestRepo.CountActiveByTeamInTx(ctx, tx, companyID, id)
		if err != nil {
			return err
		}

		if (equipmentCount > 0 || activeRequestCount > 0) && !force {
			return apperrors.NewDependencyConflictError(
				"TEAM_HAS_DEPENDENCIES",
				"team cannot be deleted while equipment or active requests reference it",
				map[string]interface{}{
					"equipmentCount":     equipmentCount,
					"activeRequestCount": activeRequestCount,
				},
			)
		}

		when := time.Now().UTC()
		if err := s.teamRepo.SoftDeleteInTx(ctx, tx, companyID, id, when); err != nil {
			return err
		}

		result = &dto.TeamDeleteDTO{ID: id, IsActive: false, UpdatedAt: when}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func mapTeam(team *entities.Team, companyName string, members []dto.TeamMemberDTO) dto.TeamDTO {
	return dto.TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Company:     companyName,
		Description: team.Description,
		Members:     members,
		IsActive:    team.IsActive,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}
