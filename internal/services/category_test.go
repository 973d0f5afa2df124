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
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
)

func newCategoryService(categoryRepo *mockCategoryRepo, equipmentRepo *mockEquipmentRepo) CategoryServiceInterface {
	return NewCategoryService(&mockTxManager{}, categoryRepo, equipmentRepo, zap.NewNop())
}

func TestDeleteCategory_BlockedByEquipment(t *testing.T) {
	categoryRepo := &mockCategoryRepo{
		FindByIDFn: func(id uuid.UUID) (*entities.EquipmentCategory, error) {
			return &entities.EquipmentCategory{ID: id, Name: "Machinery"}, nil
		},
		DeleteInTxFn: func(_ uuid.UUID) error {
			t.Fatal("category must not be deleted while equipment uses it")
			return nil
		},
	}
	equipmentRepo := &mockEquipmentRepo{
		CountByCategoryFn: func(_ uuid.UUID) (int, error) { return 7, nil },
	}

	svc := newCategoryService(categoryRepo, equipmentRepo)

	_, err := svc.DeleteCategory(testCtx(uuid.New(), uuid.New()), uuid.New())
	require.Error(t, err)

	var conflict *apperrors.DependencyConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "CATEGORY_HAS_EQUIPMENT", conflict.Code)
	assert.Equal(t, 7, conflict.Details["equipmentCount"])
}

func TestDeleteCategory_NoEquipment(t *testing.T) {
	categoryID := uuid.New()
	deleted := false
	categoryRepo := &mockCategoryRepo{
		FindByIDFn: func(id uuid.UUID) (*entities.EquipmentCategory, error) {
			return &entities.EquipmentCategory{ID: id, Name: "Tooling"}, nil
		},
		DeleteInTxFn: func(id uuid.UUID) error {
			assert.Equal(t, categoryID, id)
			deleted = true
			return nil
		},
	}

	svc := newCategoryService(categoryRepo, &mockEquipmentRepo{})

	res, err := svc.DeleteCategory(testCtx(uuid.New(), uuid.New()), categoryID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, res.IsActive)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	svc := newCategoryService(&mockCategoryRepo{}, &mockEquipmentRepo{})

	_, err := svc.DeleteCategory(testCtx(uuid.New(), uuid.New()), uuid.New())
	assert.Equal(t, apperrors.ErrNotFound, err)
}

func TestCreateCategory_DuplicateNameRejected(t *testing.T) {
	categoryRepo := &mockCategoryRepo{
		FindByNameFn: func(name string) (*entities.EquipmentCategory, error) {
			return &entities.EquipmentCategory{ID: uuid.New(), Name: name}, nil
		},
	}

	svc := newCategoryService(categoryRepo, &mockEquipmentRepo{})

	_, err := svc.CreateCategory(testCtx(uuid.New(), uuid.New()), dto.CreateCategoryDTO{Name: "Machinery"})
	require.Error(t, err)
	assert.IsType(t, &apperrors.InvalidInputError{}, err)
}

func TestCreateCategory(t *testing.T) {
	var created *entities.EquipmentCategory
	categoryRepo := &mockCategoryRepo{
		CreateFn: func(category *entities.EquipmentCategory) error {
			created = category
			return nil
		},
	}

	svc := newCategoryService(categoryRepo, &mockEquipmentRepo{})

	res, err := svc.CreateCategory(testCtx(uuid.New(), uuid.New()), dto.CreateCategoryDTO{Name: "Robotics"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Robotics", created.Name)
	assert.Equal(t, created.ID, res.ID)
}

func TestGetCategories_IncludesCounts(t *testing.T) {
	categoryRepo := &mockCategoryRepo{
		ListWithCountsFn: func() ([]repositories.CategoryWithCount, error) {
			return []repositories.CategoryWithCount{
				{Category: entities.EquipmentCategory{ID: uuid.New(), Name: "HVAC"}, EquipmentCount: 4},
				{Category: entities.EquipmentCategory{ID: uuid.New(), Name: "Vehicles"}, EquipmentCount: 0},
			}, nil
		},
	}

	svc := newCategoryService(categoryRepo, &mockEquipmentRepo{})

	res, err := svc.GetCategories(testCtx(uuid.New(), uuid.New()))
	require.NoError(t, err)
	require.Len(t, res.Categories, 2)
	assert.Equal(t, 4, res.Categories[0].EquipmentCount)
	assert.Equal(t, 0, res.Categories[1].EquipmentCount)
}
