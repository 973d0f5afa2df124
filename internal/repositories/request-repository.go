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

const requestColumns = `id, subject, description, instructions, request_type, stage, priority,
	scheduled_date, duration, equipment_id, workcenter_id, team_id, category_id,
	technician_id, company_id, created_by_id, is_blocked, is_archived, is_active,
	created_at, updated_at`

type RequestRepositoryInterface interface {
	List(ctx context.Context, companyID uuid.UUID, filter dto.RequestListFilter, now time.Time) ([]entities.MaintenanceRequest, int, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error
	UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error
	SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error
	CountActiveByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error)
	RecentByEquipment(ctx context.Context, companyID, equipmentID uuid.UUID, limit int) ([]entities.MaintenanceRequest, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

// listConditions translates the wire filter into store predicates. The
// overdue and completed status words are derived pseudo-statuses, not
// stored stages.
func listConditions(companyID uuid.UUID, filter dto.RequestListFilter, now time.Time) []sq.Sqlizer {
	conds := []sq.Sqlizer{
		sq.Eq{"company_id": companyID},
		sq.Eq{"is_active": filter.IsActive},
	}

	switch filter.Status {
	case "":
	case "overdue":
		conds = append(conds,
			sq.Eq{"stage": []string{string(entities.StageNew), string(entities.StageInProgress)}},
			sq.Lt{"scheduled_date": now},
		)
	case "completed":
		conds = append(conds, sq.Eq{"stage": string(entities.StageRepaired)})
	default:
		if stage, ok := entities.StageFromStatus(filter.Status); ok {
			conds = append(conds, sq.Eq{"stage": string(stage)})
		}
	}

	if filter.Priority != "" {
		conds = append(conds, sq.Eq{"priority": entities.PriorityFromWord(filter.Priority)})
	}
	if filter.EquipmentID != nil {
		conds = append(conds, sq.Eq{"equipment_id": *filter.EquipmentID})
	}
	if filter.TeamID != nil {
		conds = append(conds, sq.Eq{"team_id": *filter.TeamID})
	}

	return conds
}

func (r *RequestRepository) List(ctx context.Context, companyID uuid.UUID, filter dto.RequestListFilter, now time.Time) ([]entities.MaintenanceRequest, int, error) {
	conds := listConditions(companyID, filter, now)

	countQuery := psql.Select("COUNT(*)").From("maintenance_requests")
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

	listQuery := psql.Select(requestColumns).
		From("maintenance_requests").
		OrderBy("created_at DESC").
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

	var requests []entities.MaintenanceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

func (r *RequestRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return findRequest(ctx, r.storage, companyID, id)
}

func (r *RequestRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return findRequest(ctx, tx, companyID, id)
}

func findRequest(ctx context.Context, q querier, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	sqlStr, args, err := psql.Select(requestColumns).
		From("maintenance_requests").
		Where(sq.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	req, err := scanRequest(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var (
		req           entities.MaintenanceRequest
		description   null.String
		instructions  null.String
		requestType   string
		stage         string
		scheduledDate null.Time
	)

	err := row.Scan(
		&req.ID, &req.Subject, &description, &instructions, &requestType, &stage,
		&req.Priority, &scheduledDate, &req.Duration, &req.EquipmentID,
		&req.WorkcenterID, &req.TeamID, &req.CategoryID, &req.TechnicianID,
		&req.CompanyID, &req.CreatedByID, &req.IsBlocked, &req.IsArchived,
		&req.IsActive, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Description = description.String
	req.Instructions = instructions.String
	req.RequestType = entities.RequestType(requestType)
	req.Stage = entities.Stage(stage)
	if scheduledDate.Valid {
		t := scheduledDate.Time
		req.ScheduledDate = &t
	}
	return &req, nil
}

func (r *RequestRepository) CreateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error {
	sqlStr, args, err := psql.Insert("maintenance_requests").
		Columns("id", "subject", "description", "instructions", "request_type", "stage",
			"priority", "scheduled_date", "duration", "equipment_id", "workcenter_id",
			"team_id", "category_id", "technician_id", "company_id", "created_by_id",
			"is_blocked", "is_archived", "is_active", "created_at", "updated_at").
		Values(req.ID, req.Subject, req.Description, req.Instructions,
			string(req.RequestType), string(req.Stage), req.Priority,
			req.ScheduledDate, req.Duration, req.EquipmentID, req.WorkcenterID,
			req.TeamID, req.CategoryID, req.TechnicianID, req.CompanyID,
			req.CreatedByID, req.IsBlocked, req.IsArchived, req.IsActive,
			req.CreatedAt, req.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sqlStr, args...)
	return err
}

// UpdateInTx writes back every mutable column; the service applies the
// partial update in memory on the row it loaded in the same transaction.
func (r *RequestRepository) UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error {
	sqlStr, args, err := psql.Update("maintenance_requests").
		SetMap(map[string]interface{}{
			"subject":        req.Subject,
			"description":    req.Description,
			"instructions":   req.Instructions,
			"stage":          string(req.Stage),
			"priority":       req.Priority,
			"scheduled_date": req.ScheduledDate,
			"technician_id":  req.TechnicianID,
			"updated_at":     req.UpdatedAt,
		}).
		Where(sq.Eq{"id": req.ID, "company_id": req.CompanyID}).
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

func (r *RequestRepository) SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error {
	sqlStr, args, err := psql.Update("maintenance_requests").
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

// CountActiveByTeamInTx feeds the team dependency guard: only requests
// still in new or in_progress block a deletion.
func (r *RequestRepository) CountActiveByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("COUNT(*)").
		From("maintenance_requests").
		Where(sq.Eq{
			"company_id": companyID,
			"team_id":    teamID,
			"stage":      []string{string(entities.StageNew), string(entities.StageInProgress)},
		}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = tx.QueryRow(ctx, sqlStr, args...).Scan(&count)
	return count, err
}

func (r *RequestRepository) RecentByEquipment(ctx context.Context, companyID, equipmentID uuid.UUID, limit int) ([]entities.MaintenanceRequest, error) {
	sqlStr, args, err := psql.Select(requestColumns).
		From("maintenance_requests").
		Where(sq.Eq{"company_id": companyID, "equipment_id": equipmentID}).
		OrderBy("updated_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []entities.MaintenanceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}
