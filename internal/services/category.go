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
)

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) (*dto.CategoryListDTO, error)
	CreateCategory(ctx context.Context, data dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, data dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryDeleteDTO, error)
}

type CategoryService struct {
	txManager     repositories.TxManagerInterface
	categoryRepo  repositories.CategoryRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewCategoryService(
	txManager repositories.TxManagerInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		txManager:     txManager,
		categoryRepo:  categoryRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *CategoryService) GetCategories(ctx context.Context) (*dto.CategoryListDTO, error) {
	items, err := s.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]dto.CategoryDTO, 0, len(items))
	for _, item := range items {
		categories = append(categories, dto.CategoryDTO{
			ID:             item.Category.ID,
			Name:           item.Category.Name,
			EquipmentCount: item.EquipmentCount,
			IsActive:       true,
		})
	}
	return &dto.CategoryListDTO{Categories: categories}, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, data dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	if _, err := s.categoryRepo.FindByName(ctx, data.Name); err == nil {
		return nil, apperrors.NewInvalidInputError("category %q already exists", data.Name)
	} else if err != apperrors.ErrNotFound {
		return nil, err
	}

	category := &entities.EquipmentCategory{ID: uuid.New(), Name: data.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	return &dto.CategoryDTO{ID: category.ID, Name: category.Name, IsActive: true}, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, data dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data.Name != nil && *data.Name != category.Name {
		if _, err := s.categoryRepo.FindByName(ctx, *data.Name); err == nil {
			return nil, apperrors.NewInvalidInputError("category %q already exists", *data.Name)
		} else if err != apperrors.ErrNotFound {
			return nil, err
		}
		if err := s.categoryRepo.Rename(ctx, id, *data.Name); err != nil {
			return nil, err
		}
		category.Name = *data.Name
	}

	count, err := s.equipmentRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.CategoryDTO{
		ID:             category.ID,
		Name:           category.Name,
		EquipmentCount: count,
		IsActive:       true,
	}, nil
}

// DeleteCategory is a hard delete guarded by the equipment count: a
// category that any equipment still uses is never removed. Counting and
// deleting share one transaction.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryDeleteDTO, error) {
	var result *dto.CategoryDeleteDTO
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.categoryRepo.FindByIDInTx(ctx, tx, id); err != nil {
			return err
		}

		count, err := s.equipmentRepo.CountByCategoryInTx(ctx, tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewDependencyConflictError(
				"CATEGORY_HAS_EQUIPMENT",
				"category cannot be deleted while equipment is assigned to it",
				map[string]interface{}{"equipmentCount": count},
			)
		}

		if err := s.categoryRepo.DeleteInTx(ctx, tx, id); err != nil {
			return err
		}

		result = &dto.CategoryDeleteDTO{ID: id, IsActive: false, UpdatedAt: time.Now().UTC()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
