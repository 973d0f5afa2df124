package entities

import (
	"time"

	"github.com/google/uuid"
)

// All cross-entity links are stored as identifier references resolved
// through the repositories, never as embedded structs: the reference
// graph between company, user, team, equipment and request is cyclic.

type Company struct {
	ID   uuid.UUID
	Name string
}

type Department struct {
	ID        uuid.UUID
	Name      string
	CompanyID uuid.UUID
}

type Team struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CompanyID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EquipmentCategory is global master data, not tenant-scoped.
type EquipmentCategory struct {
	ID   uuid.UUID
	Name string
}

type Workcenter struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CompanyID uuid.UUID
}

type Role string

const (
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleEmployee   Role = "employee"
)

type User struct {
	ID             uuid.UUID
	FullName       string
	Email          string
	HashedPassword string
	Role           Role
	CompanyID      uuid.UUID
	DepartmentID   *uuid.UUID
	TeamID         *uuid.UUID
}

type Equipment struct {
	ID           uuid.UUID
	Name         string
	SerialNumber string
	Location     string
	CategoryID   uuid.UUID
	DepartmentID uuid.UUID
	CompanyID    uuid.UUID
	TeamID       uuid.UUID
	EmployeeID   *uuid.UUID
	TechnicianID *uuid.UUID
	IsUnusable   bool
	PurchaseDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
