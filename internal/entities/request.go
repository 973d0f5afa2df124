package entities

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceRequest is the central entity of the system. TeamID and
// CategoryID are always set after creation; EquipmentID and WorkcenterID
// are the two possible targets, at least one of which is present.
type MaintenanceRequest struct {
	ID            uuid.UUID
	Subject       string
	Description   string
	Instructions  string
	RequestType   RequestType
	Stage         Stage
	Priority      int
	ScheduledDate *time.Time
	Duration      int // whole hours
	EquipmentID   *uuid.UUID
	WorkcenterID  *uuid.UUID
	TeamID        uuid.UUID
	CategoryID    uuid.UUID
	TechnicianID  *uuid.UUID
	CompanyID     uuid.UUID
	CreatedByID   uuid.UUID
	IsBlocked     bool
	IsArchived    bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaintenanceTarget names which kind of asset the request is for.
func (r *MaintenanceRequest) MaintenanceTarget() string {
	if r.EquipmentID != nil {
		return "equipment"
	}
	return "workcenter"
}

// IsOverdue reports whether the request counts as overdue at the given
// instant: non-terminal stage with a scheduled date strictly in the past.
func (r *MaintenanceRequest) IsOverdue(now time.Time) bool {
	if r.Stage.IsTerminal() {
		return false
	}
	return r.ScheduledDate != nil && r.ScheduledDate.Before(now)
}
