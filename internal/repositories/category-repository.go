package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

// CategoryWithCount pairs a category with its live equipment count for
// the list endpoint.
type CategoryWithCount struct {
	Category       entities.EquipmentCategory
	EquipmentCount int
}

type CategoryRepositoryInterface interface {
	ListWithCounts(ctx context.Context) ([]CategoryWithCount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.EquipmentCategory, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entities.EquipmentCategory, error)
	FindByName(ctx context.Context, name string) (*entities.EquipmentCategory, error)
	Create(ctx context.Context, category *entities.EquipmentCategory) error
	Rename(ctx context.Context, id uuid.UUID, name string) error
	DeleteInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

type CategoryRepository struct {
	storage *pgxpool.Pool
}

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &CategoryRepository{storage: storage}
}

func (r *CategoryRepository) ListWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	sqlStr, args, err := psql.Select("c.id", "c.name", "COUNT(e.id)").
		From("equipment_categories c").
		LeftJoin("equipment e ON e.category_id = c.id").
		GroupBy("c.id", "c.name").
		OrderBy("c.name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryWithCount
	for rows.Next() {
		var item CategoryWithCount
		if err := rows.Scan(&item.Category.ID, &item.Category.Name, &item.EquipmentCount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.EquipmentCategory, error) {
	return findCategory(ctx, r.storage, sq.Eq{"id": id})
}

func (r *CategoryRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entities.EquipmentCategory, error) {
	return findCategory(ctx, tx, sq.Eq{"id": id})
}

func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	return findCategory(ctx, r.storage, sq.Eq{"name": name})
}

func findCategory(ctx context.Context, q querier, where sq.Eq) (*entities.EquipmentCategory, error) {
	sqlStr, args, err := psql.Select("id", "name").
		From("equipment_categories").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var category entities.EquipmentCategory
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&category.ID, &category.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entities.EquipmentCategory) error {
	sqlStr, args, err := psql.Insert("equipment_categories").
		Columns("id", "name").
		Values(category.ID, category.Name).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, sqlStr, args...)
	return err
}

func (r *CategoryRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	sqlStr, args, err := psql.Update("equipment_categories").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteInTx removes the row outright; categories are not soft-deleted.
func (r *CategoryRepository) DeleteInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	sqlStr, args, err := psql.Delete("equipment_categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
