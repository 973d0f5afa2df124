package dto

import (
	"time"

	"github.com/google/uuid"
)

type TeamMemberInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

type CreateTeamDTO struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Description string            `json:"description,omitempty"`
	Company     string            `json:"company,omitempty"`
	Members     []TeamMemberInput `json:"members,omitempty" validate:"omitempty,dive"`
}

type TeamMemberDTO struct {
	UserID uuid.UUID `json:"userId"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type TeamDTO struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company,omitempty"`
	Description string          `json:"description"`
	Members     []TeamMemberDTO `json:"members,omitempty"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type TeamShortDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TeamDeleteDTO struct {
	ID        uuid.UUID `json:"id"`
	IsActive  bool      `json:"isActive"`
	UpdatedAt time.Time `json:"updatedAt"`
}
