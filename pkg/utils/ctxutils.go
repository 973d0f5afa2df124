package utils

import (
	"context"

	"github.com/google/uuid"

	"maintenance-system/pkg/contextkeys"
	apperrors "maintenance-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return id, nil
}

// GetCompanyIDFromCtx resolves the caller's tenant. Every repository read
// and write is filtered by it.
func GetCompanyIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(contextkeys.CompanyIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, apperrors.ErrCompanyIDNotFoundInContext
	}
	return id, nil
}
