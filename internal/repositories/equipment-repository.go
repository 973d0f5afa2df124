package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	apperrors "maintenance-system/pkg/errors"
)

const equipmentColumns = `id, name, serial_number, location, category_id, department_id,
	company_id, team_id, employee_id, technician_id, is_unusable, purchase_date,
	created_at, updated_at`

// EquipmentRow is an equipment record together with the display names of
// its references, resolved in one query so list and detail responses do
// not fan out into per-row lookups.
type EquipmentRow struct {
	entities.Equipment
	CategoryName   string
	DepartmentName string
	TeamName       string
	TechnicianName null.String
	EmployeeName   null.String
}

type EquipmentRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID, filter dto.EquipmentListFilter) ([]EquipmentRow, int, error)
	FindRowByID(ctx context.Context, companyID, id uuid.UUID) (*EquipmentRow, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Equipment, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Equipment, error)
	Create(ctx context.Context, eq *entities.Equipment) error
	Update(ctx context.Context, eq *entities.Equipment) error
	MarkUnusableInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) error
	CountByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error)
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
	CountByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID uuid.UUID) (int, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func (r *EquipmentRepository) List(ctx context.Context, companyID uuid.UUID, filter dto.EquipmentListFilter) ([]EquipmentRow, int, error) {
	conds := []sq.Sqlizer{sq.Eq{"e.company_id": companyID}}

	if filter.Category != "" {
		conds = append(conds, sq.Eq{"c.name": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"e.name": pattern},
			sq.ILike{"e.serial_number": pattern},
		})
	}

	countQuery := psql.Select("COUNT(*)").
		From("equipment e").
		LeftJoin("equipment_categories c ON c.id = e.category_id")
	for _, c := range conds {
		countQuery = countQuery.Where(c)
	}
	sqlStr, args, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.storage.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := equipmentRowQuery().
		OrderBy("e.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit))
	for _, c := range conds {
		listQuery = listQuery.Where(c)
	}
	sqlStr, args, err = listQuery.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []EquipmentRow
	for rows.Next() {
		row, err := scanEquipmentRow(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *row)
	}
	return items, total, rows.Err()
}

func equipmentRowQuery() sq.SelectBuilder {
	return psql.Select(
		"e.id", "e.name", "e.serial_number", "e.location", "e.category_id",
		"e.department_id", "e.company_id", "e.team_id", "e.employee_id",
		"e.technician_id", "e.is_unusable", "e.purchase_date", "e.created_at",
		"e.updated_at",
		"c.name", "d.name", "t.name", "tech.full_name", "emp.full_name").
		From("equipment e").
		LeftJoin("equipment_categories c ON c.id = e.category_id").
		LeftJoin("departments d ON d.id = e.department_id").
		LeftJoin("teams t ON t.id = e.team_id").
		LeftJoin("users tech ON tech.id = e.technician_id").
		LeftJoin("users emp ON emp.id = e.employee_id")
}

func scanEquipmentRow(row pgx.Row) (*EquipmentRow, error) {
	var (
		item         EquipmentRow
		location     null.String
		purchaseDate null.Time
		category     null.String
		department   null.String
		team         null.String
	)

	err := row.Scan(
		&item.ID, &item.Name, &item.SerialNumber, &location, &item.CategoryID,
		&item.DepartmentID, &item.CompanyID, &item.TeamID, &item.EmployeeID,
		&item.TechnicianID, &item.IsUnusable, &purchaseDate, &item.CreatedAt,
		&item.UpdatedAt,
		&category, &department, &team, &item.TechnicianName, &item.EmployeeName,
	)
	if err != nil {
		return nil, err
	}

	item.Location = location.String
	if purchaseDate.Valid {
		t := purchaseDate.Time
		item.PurchaseDate = &t
	}
	item.CategoryName = category.String
	item.DepartmentName = department.String
	item.TeamName = team.String
	return &item, nil
}

func (r *EquipmentRepository) FindRowByID(ctx context.Context, companyID, id uuid.UUID) (*EquipmentRow, error) {
	sqlStr, args, err := equipmentRowQuery().
		Where(sq.Eq{"e.id": id, "e.company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	row, err := scanEquipmentRow(r.storage.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (r *EquipmentRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Equipment, error) {
	return findEquipment(ctx, r.storage, companyID, id)
}

func (r *EquipmentRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Equipment, error) {
	return findEquipment(ctx, tx, companyID, id)
}

func findEquipment(ctx context.Context, q querier, companyID, id uuid.UUID) (*entities.Equipment, error) {
	sqlStr, args, err := psql.Select(equipmentColumns).
		From("equipment").
		Where(sq.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	eq, err := scanEquipment(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return eq, nil
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var (
		eq           entities.Equipment
		location     null.String
		purchaseDate null.Time
	)

	err := row.Scan(
		&eq.ID, &eq.Name, &eq.SerialNumber, &location, &eq.CategoryID,
		&eq.DepartmentID, &eq.CompanyID, &eq.TeamID, &eq.EmployeeID,
		&eq.TechnicianID, &eq.IsUnusable, &purchaseDate, &eq.CreatedAt,
		&eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	eq.Location = location.String
	if purchaseDate.Valid {
		t := purchaseDate.Time
		eq.PurchaseDate = &t
	}
	return &eq, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, eq *entities.Equipment) error {
	sqlStr, args, err := psql.Insert("equipment").
		Columns("id", "name", "serial_number", "location", "category_id",
			"department_id", "company_id", "team_id", "employee_id", "technician_id",
			"is_unusable", "purchase_date", "created_at", "updated_at").
		Values(eq.ID, eq.Name, eq.SerialNumber, eq.Location, eq.CategoryID,
			eq.DepartmentID, eq.CompanyID, eq.TeamID, eq.EmployeeID, eq.TechnicianID,
			eq.IsUnusable, eq.PurchaseDate, eq.CreatedAt, eq.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.storage.Exec(ctx, sqlStr, args...)
	return err
}

func (r *EquipmentRepository) Update(ctx context.Context, eq *entities.Equipment) error {
	sqlStr, args, err := psql.Update("equipment").
		SetMap(map[string]interface{}{
			"name":          eq.Name,
			"location":      eq.Location,
			"technician_id": eq.TechnicianID,
			"is_unusable":   eq.IsUnusable,
			"updated_at":    eq.UpdatedAt,
		}).
		Where(sq.Eq{"id": eq.ID, "company_id": eq.CompanyID}).
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

// MarkUnusableInTx is the scrap cascade write. Setting the flag again on
// already-unusable equipment is a no-op, which keeps the cascade
// idempotent.
func (r *EquipmentRepository) MarkUnusableInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) error {
	sqlStr, args, err := psql.Update("equipment").
		Set("is_unusable", true).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	return err
}

func (r *EquipmentRepository) CountByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"company_id": companyID, "team_id": teamID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = tx.QueryRow(ctx, sqlStr, args...).Scan(&count)
	return count, err
}

// Categories are global master data, so category counts are not
// tenant-filtered.
func (r *EquipmentRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	return countByCategory(ctx, r.storage, categoryID)
}

func (r *EquipmentRepository) CountByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID uuid.UUID) (int, error) {
	return countByCategory(ctx, tx, categoryID)
}

func countByCategory(ctx context.Context, q querier, categoryID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").
		From("equipment").
		Where(sq.Eq{"category_id": categoryID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = q.QueryRow(ctx, sqlStr, args...).Scan(&count)
	return count, err
}
