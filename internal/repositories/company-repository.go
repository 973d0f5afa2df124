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

type CompanyRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	FindByName(ctx context.Context, name string) (*entities.Company, error)
	Create(ctx context.Context, company *entities.Company) error
}

type CompanyRepository struct {
	storage *pgxpool.Pool
}

func NewCompanyRepository(storage *pgxpool.Pool) CompanyRepositoryInterface {
	return &CompanyRepository{storage: storage}
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return findCompany(ctx, r.storage, sq.Eq{"id": id})
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*entities.Company, error) {
	return findCompany(ctx, r.storage, sq.Eq{"name": name})
}

func findCompany(ctx context.Context, q querier, where sq.Eq) (*entities.Company, error) {
	sqlStr, args, err := psql.Select("id", "name").From("companies").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var company entities.Company
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&company.ID, &company.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	sqlStr, args, err := psql.Insert("companies").
		Columns("id", "name").
		Values(company.ID, company.Name).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, sqlStr, args...)
	return err
}
