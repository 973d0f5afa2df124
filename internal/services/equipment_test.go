package services

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
)

func newEquipmentService(
	equipmentRepo *mockEquipmentRepo,
	requestRepo *mockRequestRepo,
	categoryRepo *mockCategoryRepo,
	departmentRepo *mockDepartmentRepo,
	userRepo *mockUserRepo,
) EquipmentServiceInterface {
	return NewEquipmentService(equipmentRepo, requestRepo, categoryRepo,
		departmentRepo, userRepo, zap.NewNop())
}

func knownDepartment() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		FindByNameFn: func(companyID uuid.UUID, name string) (*entities.Department, error) {
			return &entities.Department{ID: uuid.New(), Name: name, CompanyID: companyID}, nil
		},
	}
}

func TestFindEquipment_IncludesHistory(t *testing.T) {
	companyID := uuid.New()
	equipmentID := uuid.New()

	equipmentRepo := &mockEquipmentRepo{
		FindRowByIDFn: func(_, id uuid.UUID) (*repositories.EquipmentRow, error) {
			return &repositories.EquipmentRow{
				Equipment: entities.Equipment{
					ID:           id,
					Name:         "CNC Lathe",
					SerialNumber: "CL-1188-002",
					IsUnusable:   true,
				},
				CategoryName:   "Machinery",
				DepartmentName: "Production",
				TeamName:       "Mechanical Crew",
				TechnicianName: null.StringFrom("Lee Ortiz"),
			}, nil
		},
	}
	requestRepo := &mockRequestRepo{
		RecentByEquipmentFn: func(_, id uuid.UUID, limit int) ([]entities.MaintenanceRequest, error) {
			assert.Equal(t, 5, limit)
			return []entities.MaintenanceRequest{
				{ID: uuid.New(), Subject: "Spindle repair", Stage: entities.StageRepaired, Priority: entities.PriorityHigh},
			}, nil
		},
	}

	svc := newEquipmentService(equipmentRepo, requestRepo, &mockCategoryRepo{}, knownDepartment(), &mockUserRepo{})

	res, err := svc.FindEquipment(testCtx(uuid.New(), companyID), equipmentID)
	require.NoError(t, err)

	assert.Equal(t, "Out of Service", res.Status)
	assert.False(t, res.IsActive)
	assert.Equal(t, "Machinery", res.Category)
	assert.Equal(t, "Mechanical Crew", res.MaintenanceTeam)
	assert.Equal(t, "Lee Ortiz", res.TechnicianName)

	require.Len(t, res.MaintenanceHistory, 1)
	assert.Equal(t, "completed", res.MaintenanceHistory[0].Status)
	assert.Equal(t, "high", res.MaintenanceHistory[0].Priority)
}

func TestCreateEquipment_UnknownCategoryRejected(t *testing.T) {
	svc := newEquipmentService(&mockEquipmentRepo{}, &mockRequestRepo{}, &mockCategoryRepo{}, knownDepartment(), &mockUserRepo{})

	_, err := svc.CreateEquipment(testCtx(uuid.New(), uuid.New()), dto.CreateEquipmentDTO{
		Name:         "Welder",
		SerialNumber: "W-1",
		Category:     "Nonexistent",
		Department:   "Production",
	})
	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestCreateEquipment_CallerWithoutTeamRejected(t *testing.T) {
	categoryRepo := &mockCategoryRepo{
		FindByNameFn: func(name string) (*entities.EquipmentCategory, error) {
			return &entities.EquipmentCategory{ID: uuid.New(), Name: name}, nil
		},
	}
	userRepo := &mockUserRepo{
		FindByIDFn: func(id uuid.UUID) (*entities.User, error) {
			return &entities.User{ID: id, Role: entities.RoleManager}, nil
		},
	}

	svc := newEquipmentService(&mockEquipmentRepo{}, &mockRequestRepo{}, categoryRepo, knownDepartment(), userRepo)

	_, err := svc.CreateEquipment(testCtx(uuid.New(), uuid.New()), dto.CreateEquipmentDTO{
		Name:         "Welder",
		SerialNumber: "W-1",
		Category:     "Machinery",
		Department:   "Production",
	})
	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestUpdateEquipment_StatusWords(t *testing.T) {
	companyID := uuid.New()
	equipmentID := uuid.New()

	var saved *entities.Equipment
	equipmentRepo := &mockEquipmentRepo{
		FindByIDFn: func(_, id uuid.UUID) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id, Name: "Press", CompanyID: companyID}, nil
		},
		UpdateFn: func(eq *entities.Equipment) error {
			saved = eq
			return nil
		},
		FindRowByIDFn: func(_, id uuid.UUID) (*repositories.EquipmentRow, error) {
			return &repositories.EquipmentRow{Equipment: *saved}, nil
		},
	}

	svc := newEquipmentService(equipmentRepo, &mockRequestRepo{}, &mockCategoryRepo{}, knownDepartment(), &mockUserRepo{})

	status := "Out of Service"
	res, err := svc.UpdateEquipment(testCtx(uuid.New(), companyID), equipmentID, dto.UpdateEquipmentDTO{Status: &status})
	require.NoError(t, err)
	assert.True(t, saved.IsUnusable)
	assert.Equal(t, "Out of Service", res.Status)

	bad := "Broken"
	_, err = svc.UpdateEquipment(testCtx(uuid.New(), companyID), equipmentID, dto.UpdateEquipmentDTO{Status: &bad})
	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}
