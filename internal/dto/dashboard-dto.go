package dto

import "github.com/google/uuid"

type CriticalEquipmentItemDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

type CriticalEquipmentDTO struct {
	Count int                        `json:"count"`
	Items []CriticalEquipmentItemDTO `json:"items"`
}

type TechnicianLoadDTO struct {
	Percentage       int `json:"percentage"`
	TotalTechnicians int `json:"totalTechnicians"`
	ActiveRequests   int `json:"activeRequests"`
}

type OpenRequestsDTO struct {
	Total      int `json:"total"`
	Overdue    int `json:"overdue"`
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
}

type DashboardMetricsDTO struct {
	CriticalEquipment CriticalEquipmentDTO `json:"criticalEquipment"`
	TechnicianLoad    TechnicianLoadDTO    `json:"technicianLoad"`
	OpenRequests      OpenRequestsDTO      `json:"openRequests"`
}
