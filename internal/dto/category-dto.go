package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryDTO struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateCategoryDTO struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
}

type CategoryDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	EquipmentCount int       `json:"equipmentCount"`
	IsActive       bool      `json:"isActive"`
}

type CategoryListDTO struct {
	Categories []CategoryDTO `json:"categories"`
}

type CategoryDeleteDTO struct {
	ID        uuid.UUID `json:"id"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}
