package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
)

// The mocks below implement the repository interfaces with overridable
// function fields. The transaction manager just invokes the callback, so
// service logic runs exactly as it would inside a real transaction.

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

func testCtx(userID, companyID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.CompanyIDKey, companyID)
}

type mockRequestRepo struct {
	ListFn                  func(companyID uuid.UUID, filter dto.RequestListFilter) ([]entities.MaintenanceRequest, int, error)
	FindByIDFn              func(companyID, id uuid.UUID) (*entities.MaintenanceRequest, error)
	CreateInTxFn            func(req *entities.MaintenanceRequest) error
	UpdateInTxFn            func(req *entities.MaintenanceRequest) error
	SoftDeleteInTxFn        func(companyID, id uuid.UUID) error
	CountActiveByTeamInTxFn func(companyID, teamID uuid.UUID) (int, error)
	RecentByEquipmentFn     func(companyID, equipmentID uuid.UUID, limit int) ([]entities.MaintenanceRequest, error)
}

func (m *mockRequestRepo) List(ctx context.Context, companyID uuid.UUID, filter dto.RequestListFilter, now time.Time) ([]entities.MaintenanceRequest, int, error) {
	if m.ListFn != nil {
		return m.ListFn(companyID, filter)
	}
	return nil, 0, nil
}

func (m *mockRequestRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockRequestRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.MaintenanceRequest, error) {
	return m.FindByID(ctx, companyID, id)
}

func (m *mockRequestRepo) CreateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error {
	if m.CreateInTxFn != nil {
		return m.CreateInTxFn(req)
	}
	return nil
}

func (m *mockRequestRepo) UpdateInTx(ctx context.Context, tx pgx.Tx, req *entities.MaintenanceRequest) error {
	if m.UpdateInTxFn != nil {
		return m.UpdateInTxFn(req)
	}
	return nil
}

func (m *mockRequestRepo) SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error {
	if m.SoftDeleteInTxFn != nil {
		return m.SoftDeleteInTxFn(companyID, id)
	}
	return nil
}

func (m *mockRequestRepo) CountActiveByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error) {
	if m.CountActiveByTeamInTxFn != nil {
		return m.CountActiveByTeamInTxFn(companyID, teamID)
	}
	return 0, nil
}

func (m *mockRequestRepo) RecentByEquipment(ctx context.Context, companyID, equipmentID uuid.UUID, limit int) ([]entities.MaintenanceRequest, error) {
	if m.RecentByEquipmentFn != nil {
		return m.RecentByEquipmentFn(companyID, equipmentID, limit)
	}
	return nil, nil
}

type mockEquipmentRepo struct {
	ListFn                func(companyID uuid.UUID, filter dto.EquipmentListFilter) ([]repositories.EquipmentRow, int, error)
	FindRowByIDFn         func(companyID, id uuid.UUID) (*repositories.EquipmentRow, error)
	FindByIDFn            func(companyID, id uuid.UUID) (*entities.Equipment, error)
	CreateFn              func(eq *entities.Equipment) error
	UpdateFn              func(eq *entities.Equipment) error
	MarkUnusableInTxFn    func(companyID, id uuid.UUID) error
	CountByTeamInTxFn     func(companyID, teamID uuid.UUID) (int, error)
	CountByCategoryFn     func(categoryID uuid.UUID) (int, error)
}

func (m *mockEquipmentRepo) List(ctx context.Context, companyID uuid.UUID, filter dto.EquipmentListFilter) ([]repositories.EquipmentRow, int, error) {
	if m.ListFn != nil {
		return m.ListFn(companyID, filter)
	}
	return nil, 0, nil
}

func (m *mockEquipmentRepo) FindRowByID(ctx context.Context, companyID, id uuid.UUID) (*repositories.EquipmentRow, error) {
	if m.FindRowByIDFn != nil {
		return m.FindRowByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockEquipmentRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Equipment, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockEquipmentRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Equipment, error) {
	return m.FindByID(ctx, companyID, id)
}

func (m *mockEquipmentRepo) Create(ctx context.Context, eq *entities.Equipment) error {
	if m.CreateFn != nil {
		return m.CreateFn(eq)
	}
	return nil
}

func (m *mockEquipmentRepo) Update(ctx context.Context, eq *entities.Equipment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(eq)
	}
	return nil
}

func (m *mockEquipmentRepo) MarkUnusableInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) error {
	if m.MarkUnusableInTxFn != nil {
		return m.MarkUnusableInTxFn(companyID, id)
	}
	return nil
}

func (m *mockEquipmentRepo) CountByTeamInTx(ctx context.Context, tx pgx.Tx, companyID, teamID uuid.UUID) (int, error) {
	if m.CountByTeamInTxFn != nil {
		return m.CountByTeamInTxFn(companyID, teamID)
	}
	return 0, nil
}

func (m *mockEquipmentRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	if m.CountByCategoryFn != nil {
		return m.CountByCategoryFn(categoryID)
	}
	return 0, nil
}

func (m *mockEquipmentRepo) CountByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID uuid.UUID) (int, error) {
	return m.CountByCategory(ctx, categoryID)
}

type mockDepartmentRepo struct {
	FindByIDFn   func(companyID, id uuid.UUID) (*entities.Department, error)
	FindByNameFn func(companyID uuid.UUID, name string) (*entities.Department, error)
}

func (m *mockDepartmentRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Department, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockDepartmentRepo) FindByName(ctx context.Context, companyID uuid.UUID, name string) (*entities.Department, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(companyID, name)
	}
	return nil, apperrors.ErrNotFound
}

type mockWorkcenterRepo struct {
	FindByIDFn func(companyID, id uuid.UUID) (*entities.Workcenter, error)
}

func (m *mockWorkcenterRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Workcenter, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

type mockTeamRepo struct {
	ListFn           func(companyID uuid.UUID) ([]entities.Team, error)
	FindByIDFn       func(companyID, id uuid.UUID) (*entities.Team, error)
	CreateInTxFn     func(team *entities.Team) error
	SoftDeleteInTxFn func(companyID, id uuid.UUID) error
}

func (m *mockTeamRepo) List(ctx context.Context, companyID uuid.UUID) ([]entities.Team, error) {
	if m.ListFn != nil {
		return m.ListFn(companyID)
	}
	return nil, nil
}

func (m *mockTeamRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*entities.Team, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(companyID, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockTeamRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID) (*entities.Team, error) {
	return m.FindByID(ctx, companyID, id)
}

func (m *mockTeamRepo) CreateInTx(ctx context.Context, tx pgx.Tx, team *entities.Team) error {
	if m.CreateInTxFn != nil {
		return m.CreateInTxFn(team)
	}
	return nil
}

func (m *mockTeamRepo) SoftDeleteInTx(ctx context.Context, tx pgx.Tx, companyID, id uuid.UUID, when time.Time) error {
	if m.SoftDeleteInTxFn != nil {
		return m.SoftDeleteInTxFn(companyID, id)
	}
	return nil
}

type mockCategoryRepo struct {
	ListWithCountsFn func() ([]repositories.CategoryWithCount, error)
	FindByIDFn       func(id uuid.UUID) (*entities.EquipmentCategory, error)
	FindByNameFn     func(name string) (*entities.EquipmentCategory, error)
	CreateFn         func(category *entities.EquipmentCategory) error
	RenameFn         func(id uuid.UUID, name string) error
	DeleteInTxFn     func(id uuid.UUID) error
}

func (m *mockCategoryRepo) ListWithCounts(ctx context.Context) ([]repositories.CategoryWithCount, error) {
	if m.ListWithCountsFn != nil {
		return m.ListWithCountsFn()
	}
	return nil, nil
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.EquipmentCategory, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCategoryRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*entities.EquipmentCategory, error) {
	return m.FindByID(ctx, id)
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*entities.EquipmentCategory, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(name)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *entities.EquipmentCategory) error {
	if m.CreateFn != nil {
		return m.CreateFn(category)
	}
	return nil
}

func (m *mockCategoryRepo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if m.RenameFn != nil {
		return m.RenameFn(id, name)
	}
	return nil
}

func (m *mockCategoryRepo) DeleteInTx(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	if m.DeleteInTxFn != nil {
		return m.DeleteInTxFn(id)
	}
	return nil
}

type mockUserRepo struct {
	FindByIDFn         func(id uuid.UUID) (*entities.User, error)
	FindByEmailFn      func(email string) (*entities.User, error)
	CreateFn           func(user *entities.User) error
	AssignTeamInTxFn   func(companyID, userID, teamID uuid.UUID) error
	CountTechniciansFn func(companyID uuid.UUID) (int, error)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	if m.FindByEmailFn != nil {
		return m.FindByEmailFn(email)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	return nil
}

func (m *mockUserRepo) AssignTeamInTx(ctx context.Context, tx pgx.Tx, companyID, userID, teamID uuid.UUID) error {
	if m.AssignTeamInTxFn != nil {
		return m.AssignTeamInTxFn(companyID, userID, teamID)
	}
	return nil
}

func (m *mockUserRepo) CountTechnicians(ctx context.Context, companyID uuid.UUID) (int, error) {
	if m.CountTechniciansFn != nil {
		return m.CountTechniciansFn(companyID)
	}
	return 0, nil
}

type mockCompanyRepo struct {
	FindByIDFn   func(id uuid.UUID) (*entities.Company, error)
	FindByNameFn func(name string) (*entities.Company, error)
	CreateFn     func(company *entities.Company) error
}

func (m *mockCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCompanyRepo) FindByName(ctx context.Context, name string) (*entities.Company, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(name)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockCompanyRepo) Create(ctx context.Context, company *entities.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(company)
	}
	return nil
}

type mockDashboardRepo struct {
	CriticalEquipmentFn func(companyID uuid.UUID) ([]entities.Equipment, error)
	RequestCountsFn     func(companyID uuid.UUID) (*repositories.RequestCounts, error)
}

func (m *mockDashboardRepo) CriticalEquipment(ctx context.Context, companyID uuid.UUID) ([]entities.Equipment, error) {
	if m.CriticalEquipmentFn != nil {
		return m.CriticalEquipmentFn(companyID)
	}
	return nil, nil
}

func (m *mockDashboardRepo) RequestCounts(ctx context.Context, companyID uuid.UUID, now time.Time) (*repositories.RequestCounts, error) {
	if m.RequestCountsFn != nil {
		return m.RequestCountsFn(companyID)
	}
	return &repositories.RequestCounts{}, nil
}
