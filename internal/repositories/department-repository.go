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

type DepartmentRepositoryInterface interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Department, error)
	FindByName(ctx context.Context, companyID uuid.UUID, name string) (*entities.Department, error)
}

type DepartmentRepository struct {
	storage *pgxpool.Pool
}

func NewDepartmentRepository(storage *pgxpool.Pool) DepartmentRepositoryInterface {
	return &DepartmentRepository{storage: storage}
}

func (r *DepartmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Department, error) {
	return findDepartment(ctx, r.storage, sq.Eq{"id": id, "company_id": companyID})
}

func (r *DepartmentRepository) FindByName(ctx context.Context, companyID uuid.UUID, name string) (*entities.Department, error) {
	return findDepartment(ctx, r.storage, sq.Eq{"name": name, "company_id": companyID})
}

func findDepartment(ctx context.Context, q querier, where sq.Eq) (*entities.Department, error) {
	sqlStr, args, err := psql.Select("id", "name", "company_id").
		From("departments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, err
	}

	var dept entities.Department
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&dept.ID, &dept.Name, &dept.CompanyID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &dept, nil
}
