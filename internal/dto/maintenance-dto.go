package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMaintenanceRequestDTO struct {
	Subject         string     `json:"subject" validate:"required,min=3,max=255"`
	EquipmentID     *uuid.UUID `json:"equipmentId,omitempty"`
	WorkcenterID    *uuid.UUID `json:"workcenterId,omitempty"`
	TeamID          *uuid.UUID `json:"teamId,omitempty"`
	CategoryID      *uuid.UUID `json:"categoryId,omitempty"`
	TechnicianID    *uuid.UUID `json:"technicianId,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	MaintenanceType string     `json:"maintenanceType,omitempty" validate:"omitempty,maintenance_type"`
	ScheduledDate   *time.Time `json:"scheduledDate,omitempty"`
	Duration        string     `json:"duration,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Instructions    string     `json:"instructions,omitempty"`
}

// UpdateMaintenanceRequestDTO is a partial update: every field is
// optional and applied only when present. Absent fields stay untouched.
type UpdateMaintenanceRequestDTO struct {
	Subject       *string    `json:"subject,omitempty" validate:"omitempty,min=3,max=255"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,status_word"`
	TechnicianID  *uuid.UUID `json:"technicianId,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	Instructions  *string    `json:"instructions,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
}

// RequestListFilter is the parsed query of GET /maintenance/requests.
type RequestListFilter struct {
	Status      string
	Priority    string
	EquipmentID *uuid.UUID
	TeamID      *uuid.UUID
	IsActive    bool
	Page        int
	Limit       int
}

type MaintenanceRequestDTO struct {
	ID              uuid.UUID  `json:"id"`
	Subject         string     `json:"subject"`
	EquipmentID     *uuid.UUID `json:"equipmentId"`
	TeamID          uuid.UUID  `json:"teamId"`
	TechnicianID    *uuid.UUID `json:"technicianId"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	CompanyID       uuid.UUID  `json:"companyId"`
	MaintenanceFor  string     `json:"maintenanceFor"`
	WorkcenterID    *uuid.UUID `json:"workCenter"`
	MaintenanceType string     `json:"maintenanceType"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	RequestDate     time.Time  `json:"requestDate"`
	ScheduledDate   *time.Time `json:"scheduledDate"`
	Duration        int        `json:"duration"`
	Notes           string     `json:"notes"`
	Instructions    string     `json:"instructions"`
	IsBlocked       bool       `json:"isBlocked"`
	IsArchived      bool       `json:"isArchived"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type RequestListDTO struct {
	Requests   []MaintenanceRequestDTO `json:"requests"`
	Pagination Pagination              `json:"pagination"`
}

type RequestDetailDTO struct {
	MaintenanceRequestDTO
	Equipment  *EquipmentShortDTO `json:"equipment,omitempty"`
	Team       *TeamShortDTO      `json:"team,omitempty"`
	Technician *UserShortDTO      `json:"technician,omitempty"`
}

type RequestDeleteDTO struct {
	ID        uuid.UUID `json:"id"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}
