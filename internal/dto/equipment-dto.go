package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	SerialNumber string `json:"serialNumber" validate:"required,min=2,max=100"`
	Category     string `json:"category" validate:"required"`
	Department   string `json:"department" validate:"required"`
	Location     string `json:"location,omitempty"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Location     *string `json:"location,omitempty"`
	Status       *string `json:"status,omitempty"`
	TechnicianID *uuid.UUID `json:"technicianId,omitempty"`
}

type EquipmentListFilter struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

type EquipmentDTO struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Category       string     `json:"category"`
	SerialNumber   string     `json:"serialNumber"`
	Department     string     `json:"department"`
	TechnicianID   *uuid.UUID `json:"technicianId"`
	TechnicianName string     `json:"technicianName,omitempty"`
	EmployeeID     *uuid.UUID `json:"assignedEmployeeId"`
	EmployeeName   string     `json:"assignedEmployeeName,omitempty"`
	Location       string     `json:"location"`
	Status         string     `json:"status"`
	MaintenanceTeam string    `json:"maintenanceTeam,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type EquipmentShortDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SerialNumber string    `json:"serialNumber"`
}

type EquipmentListDTO struct {
	Equipment  []EquipmentDTO `json:"equipment"`
	Pagination Pagination     `json:"pagination"`
}

// EquipmentHistoryItemDTO is one row of the recent-maintenance block on
// the equipment detail response.
type EquipmentHistoryItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CompletedAt time.Time `json:"completedAt"`
}

type EquipmentDetailDTO struct {
	EquipmentDTO
	MaintenanceHistory []EquipmentHistoryItemDTO `json:"maintenanceHistory"`
}

// UploadedDocumentDTO is the mock payload of the document-upload stub;
// nothing is stored.
type UploadedDocumentDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}
