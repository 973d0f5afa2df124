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

type WorkcenterRepositoryInterface interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Workcenter, error)
}

type WorkcenterRepository struct {
	storage *pgxpool.Pool
}

func NewWorkcenterRepository(storage *pgxpool.Pool) WorkcenterRepositoryInterface {
	return &WorkcenterRepository{storage: storage}
}

func (r *WorkcenterRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Workcenter, error) {
	sqlStr, args, err := psql.Select("id", "name", "code", "company_id").
		From("workcenters").
		Where(sq.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var wc entities.Workcenter
	err = r.storage.QueryRow(ctx, sqlStr, args...).Scan(&wc.ID, &wc.Name, &wc.Code, &wc.CompanyID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &wc, nil
}
