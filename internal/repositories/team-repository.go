package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

type TeamRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID) ([]entities.Team, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Team, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Team, error)
	CreateInTx(ctx context.Context, tx pgx.Tx, team *entities.Team) error
	SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func (r *TeamRepository) List(ctx context.Context, companyID uuid.UUID) ([]entities.Team, error) {
	sqlStr, args, err := psql.Select("id", "name", "description", "is_active",
		"company_id", "created_at", "updated_at").
		From("teams").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []entities.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Team, error) {
	return findTeam(ctx, r.storage, companyID, id)
}

func (r *TeamRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Team, error) {
	return findTeam(ctx, tx, companyID, id)
}

func findTeam(ctx context.Context, q querier, companyID, id uuid.UUID) (*entities.Team, error) {
	sqlStr, args, err := psql.Select("id", "name", "description", "is_active",
		"company_id", "created_at", "updated_at").
		From("teams").
		Where(sq.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	team, err := scanTeam(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func scanTeam(row pgx.Row) (*entities.Team, error) {
	var (
		team        entities.Team
		description null.String
	)
	err := row.Scan(&team.ID, &team.Name, &description, &team.IsActive,
		&team.CompanyID, &team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return nil, err
	}
	team.Description = description.String
	return &team, nil
}

func (r *TeamRepository) CreateInTx(ctx context.Context, tx pgx.Tx, team *entities.Team) error {
	sqlStr, args, err := psql.Insert("teams").
		Columns("id", "name", "description", "is_active", "company_id",
			"created_at", "updated_at").
		Values(team.ID, team.Name, team.Description, team.IsActive,
			team.CompanyID, team.CreatedAt, team.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	return err
}

func (r *TeamRepository) SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error {
	sqlStr, args, err := psql.Update("teams").
		Set("is_active", false).
		Set("updated_at", when).
		Where(sq.Eq{"id": id, "company_id": companyID}).
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
