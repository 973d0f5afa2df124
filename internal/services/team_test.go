package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

func newTeamService(
	teamRepo *mockTeamRepo,
	equipmentRepo *mockEquipmentRepo,
	requestRepo *mockRequestRepo,
	userRepo *mockUserRepo,
	companyRepo *mockCompanyRepo,
) TeamServiceInterface {
	return NewTeamService(&mockTxManager{}, teamRepo, equipmentRepo, requestRepo,
		userRepo, companyRepo, zap.NewNop())
}

func existingTeam(companyID uuid.UUID) *mockTeamRepo {
	return &mockTeamRepo{
		FindByIDFn: func(_, id uuid.UUID) (*entities.Team, error) {
			return &entities.Team{ID: id, Name: "Crew", CompanyID: companyID, IsActive: true}, nil
		},
	}
}

func TestDeleteTeam_BlockedByEquipment(t *testing.T) {
	companyID := uuid.New()
	teamRepo := existingTeam(companyID)
	teamRepo.SoftDeleteInTxFn = func(_, _ uuid.UUID) error {
		t.Fatal("team must not be deleted while dependencies exist")
		return nil
	}
	equipmentRepo := &mockEquipmentRepo{
		CountByTeamInTxFn: func(_, _ uuid.UUID) (int, error) { return 3, nil },
	}

	svc := newTeamService(teamRepo, equipmentRepo, &mockRequestRepo{}, &mockUserRepo{}, &mockCompanyRepo{})

	_, err := svc.DeleteTeam(testCtx(uuid.New(), companyID), uuid.New(), false)
	require.Error(t, err)

	var conflict *apperrors.DependencyConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "TEAM_HAS_DEPENDENCIES", conflict.Code)
	assert.Equal(t, 3, conflict.Details["equipmentCount"])
	assert.Equal(t, 0, conflict.Details["activeRequestCount"])
}

func TestDeleteTeam_BlockedByActiveRequests(t *testing.T) {
	companyID := uuid.New()
	requestRepo := &mockRequestRepo{
		CountActiveByTeamInTxFn: func(_, _ uuid.UUID) (int, error) { return 2, nil },
	}

	svc := newTeamService(existingTeam(companyID), &mockEquipmentRepo{}, requestRepo, &mockUserRepo{}, &mockCompanyRepo{})

	_, err := svc.DeleteTeam(testCtx(uuid.New(), companyID), uuid.New(), false)
	require.Error(t, err)

	var conflict *apperrors.DependencyConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 2, conflict.Details["activeRequestCount"])
}

func TestDeleteTeam_ForceOverridesGuard(t *testing.T) {
	companyID := uuid.New()
	teamID := uuid.New()

	teamRepo := existingTeam(companyID)
	deleted := false
	teamRepo.SoftDeleteInTxFn = func(_, id uuid.UUID) error {
		assert.Equal(t, teamID, id)
		deleted = true
		return nil
	}
	equipmentRepo := &mockEquipmentRepo{
		CountByTeamInTxFn: func(_, _ uuid.UUID) (int, error) { return 5, nil },
	}

	svc := newTeamService(teamRepo, equipmentRepo, &mockRequestRepo{}, &mockUserRepo{}, &mockCompanyRepo{})

	res, err := svc.DeleteTeam(testCtx(uuid.New(), companyID), teamID, true)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, res.IsActive)
}

func TestDeleteTeam_NoDependencies(t *testing.T) {
	companyID := uuid.New()

	teamRepo := existingTeam(companyID)
	deleted := false
	teamRepo.SoftDeleteInTxFn = func(_, _ uuid.UUID) error {
		deleted = true
		return nil
	}

	svc := newTeamService(teamRepo, &mockEquipmentRepo{}, &mockRequestRepo{}, &mockUserRepo{}, &mockCompanyRepo{})

	_, err := svc.DeleteTeam(testCtx(uuid.New(), companyID), uuid.New(), false)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestDeleteTeam_NotFound(t *testing.T) {
	svc := newTeamService(&mockTeamRepo{}, &mockEquipmentRepo{}, &mockRequestRepo{}, &mockUserRepo{}, &mockCompanyRepo{})

	_, err := svc.DeleteTeam(testCtx(uuid.New(), uuid.New()), uuid.New(), false)
	assert.Equal(t, apperrors.ErrNotFound, err)
}

func TestCreateTeam_AssignsMembers(t *testing.T) {
	companyID := uuid.New()
	memberID := uuid.New()

	var createdTeam *entities.Team
	teamRepo := &mockTeamRepo{
		CreateInTxFn: func(team *entities.Team) error {
			createdTeam = team
			return nil
		},
	}
	assigned := map[uuid.UUID]uuid.UUID{}
	userRepo := &mockUserRepo{
		AssignTeamInTxFn: func(_, userID, teamID uuid.UUID) error {
			assigned[userID] = teamID
			return nil
		},
		FindByIDFn: func(id uuid.UUID) (*entities.User, error) {
			return &entities.User{ID: id, FullName: "Lee Ortiz", Email: "lee@acme.example", Role: entities.RoleTechnician}, nil
		},
	}

	svc := newTeamService(teamRepo, &mockEquipmentRepo{}, &mockRequestRepo{}, userRepo, &mockCompanyRepo{})

	res, err := svc.CreateTeam(testCtx(uuid.New(), companyID), dto.CreateTeamDTO{
		Name:    "Night Shift",
		Members: []dto.TeamMemberInput{{UserID: memberID}},
	})
	require.NoError(t, err)
	require.NotNil(t, createdTeam)

	assert.Equal(t, companyID, createdTeam.CompanyID)
	assert.Equal(t, createdTeam.ID, assigned[memberID])
	require.Len(t, res.Members, 1)
	assert.Equal(t, "Lee Ortiz", res.Members[0].Name)
}
