package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/utils"
)

type DashboardServiceInterface interface {
	GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error)
}

type DashboardService struct {
	dashboardRepo      repositories.DashboardRepositoryInterface
	userRepo           repositories.UserRepositoryInterface
	technicianCapacity int
	logger             *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	technicianCapacity int,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo:      dashboardRepo,
		userRepo:           userRepo,
		technicianCapacity: technicianCapacity,
		logger:             logger,
	}
}

// GetMetrics aggregates the three dashboard blocks from live store state
// on every call. Nothing here is cached: a stale unusable-equipment count
// is worse than the extra queries.
func (s *DashboardService) GetMetrics(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	companyID, err := utils.GetCompanyIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	critical, err := s.dashboardRepo.CriticalEquipment(ctx, companyID)
	if err != nil {
		return nil, err
	}
	counts, err := s.dashboardRepo.RequestCounts(ctx, companyID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	technicians, err := s.userRepo.CountTechnicians(ctx, companyID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CriticalEquipmentItemDTO, 0, len(critical))
	for _, eq := range critical {
		items = append(items, dto.CriticalEquipmentItemDTO{
			ID:     eq.ID,
			Name:   eq.Name,
			Status: "Out of Service",
		})
	}

	active := counts.New + counts.InProgress

	return &dto.DashboardMetricsDTO{
		CriticalEquipment: dto.CriticalEquipmentDTO{
			Count: len(items),
			Items: items,
		},
		TechnicianLoad: dto.TechnicianLoadDTO{
			Percentage:       loadPercentage(active, technicians, s.technicianCapacity),
			TotalTechnicians: technicians,
			ActiveRequests:   active,
		},
		OpenRequests: dto.OpenRequestsDTO{
			Total:      active,
			Overdue:    counts.Overdue,
			New:        counts.New,
			InProgress: counts.InProgress,
		},
	}, nil
}

// loadPercentage is active requests against total team capacity, capped
// at 100. A company without technicians reports zero load rather than
// dividing by zero.
func loadPercentage(activeRequests, technicians, capacity int) int {
	if technicians <= 0 || capacity <= 0 {
		return 0
	}
	pct := float64(activeRequests) / float64(technicians*capacity) * 100
	if pct > 100 {
		return 100
	}
	return int(math.Round(pct))
}
