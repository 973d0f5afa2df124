package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
)

// RequestCounts is the per-stage snapshot the dashboard is built from.
type RequestCounts struct {
	New        int
	InProgress int
	Overdue    int
}

type DashboardRepositoryInterface interface {
	CriticalEquipment(ctx context.Context, companyID uuid.UUID) ([]entities.Equipment, error)
	RequestCounts(ctx context.Context, companyID uuid.UUID, now time.Time) (*RequestCounts, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func (r *DashboardRepository) CriticalEquipment(ctx context.Context, companyID uuid.UUID) ([]entities.Equipment, error) {
	sqlStr, args, err := psql.Select(equipmentColumns).
		From("equipment").
		Where(sq.Eq{"company_id": companyID, "is_unusable": true}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *eq)
	}
	return items, rows.Err()
}

// RequestCounts computes the new/in-progress/overdue counts in a single
// pass. Overdue means a non-terminal stage with a scheduled date
// strictly before now; it overlaps the other two counts on purpose.
func (r *DashboardRepository) RequestCounts(ctx context.Context, companyID uuid.UUID, now time.Time) (*RequestCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE stage = 'new'),
			COUNT(*) FILTER (WHERE stage = 'in_progress'),
			COUNT(*) FILTER (
				WHERE stage NOT IN ('repaired', 'scrap')
				AND scheduled_date IS NOT NULL
				AND scheduled_date < $2
			)
		FROM maintenance_requests
		WHERE company_id = $1`

	counts := &RequestCounts{}
	err := r.storage.QueryRow(ctx, query, companyID, now).
		Scan(&counts.New, &counts.InProgress, &counts.Overdue)
	if err != nil {
		r.logger.Error("dashboard request counts query failed", zap.Error(err))
		return nil, err
	}
	return counts, nil
}
