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

const userColumns = "id, full_name, email, hashed_password, role, company_id, department_id, team_id"

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) error
	AssignTeamInTx(ctx context.Context, tx pgx.Tx, companyID, userID, teamID uuid.UUID) error
	CountTechnicians(ctx context.Context, companyID uuid.UUID) (int, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return findUser(ctx, r.storage, sq.Eq{"id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return findUser(ctx, r.storage, sq.Eq{"email": email})
}

func findUser(ctx context.Context, q querier, where sq.Eq) (*entities.User, error) {
	sqlStr, args, err := psql.Select(userColumns).From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	var (
		user entities.User
		role string
	)
	err = q.QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.FullName, &user.Email, &user.HashedPassword, &role,
		&user.CompanyID, &user.DepartmentID, &user.TeamID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	user.Role = entities.Role(role)
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	sqlStr, args, err := psql.Insert("users").
		Columns("id", "full_name", "email", "hashed_password", "role",
			"company_id", "department_id", "team_id").
		Values(user.ID, user.FullName, user.Email, user.HashedPassword,
			string(user.Role), user.CompanyID, user.DepartmentID, user.TeamID).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, sqlStr, args...)
	return err
}

// AssignTeamInTx links an existing user to a team during team creation;
// users outside the caller's tenant are left untouched.
func (r *UserRepository) AssignTeamInTx(ctx context.Context, tx pgx.Tx, companyID, userID, teamID uuid.UUID) error {
	sqlStr, args, err := psql.Update("users").
		Set("team_id", teamID).
		Where(sq.Eq{"id": userID, "company_id": companyID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	return err
}

func (r *UserRepository) CountTechnicians(ctx context.Context, companyID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").
		From("users").
		Where(sq.Eq{"company_id": companyID, "role": string(entities.RoleTechnician)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = r.storage.QueryRow(ctx, sqlStr, args...).Scan(&count)
	return count, err
}
