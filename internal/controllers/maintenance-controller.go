package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/utils"
)

type MaintenanceController struct {
	maintenanceService services.MaintenanceServiceInterface
	logger             *zap.Logger
}

func NewMaintenanceController(
	maintenanceService services.MaintenanceServiceInterface,
	logger *zap.Logger,
) *MaintenanceController {
	return &MaintenanceController{
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

func (c *MaintenanceController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "malformed request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	res, err := c.maintenanceService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("failed to create maintenance request", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance request created", http.StatusCreated)
}

func (c *MaintenanceController) GetRequests(ctx echo.Context) error {
	filter := parseRequestListFilter(ctx)

	res, err := c.maintenanceService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("failed to list maintenance requests", zap.Error(err))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *MaintenanceController) FindRequest(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request id"))
	}

	res, err := c.maintenanceService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to find maintenance request", zap.Error(err), zap.String("id", id.String()))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Successfully", http.StatusOK)
}

func (c *MaintenanceController) UpdateRequest(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request id"))
	}

	var payload dto.UpdateMaintenanceRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "malformed request body"))
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	res, err := c.maintenanceService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("failed to update maintenance request", zap.Error(err), zap.String("id", id.String()))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance request updated", http.StatusOK)
}

func (c *MaintenanceController) DeleteRequest(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request id"))
	}

	res, err := c.maintenanceService.SoftDeleteRequest(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("failed to delete maintenance request", zap.Error(err), zap.String("id", id.String()))
		return utils.ErrorResponse(ctx, err)
	}

	return utils.SuccessResponse(ctx, res, "Maintenance request deleted", http.StatusOK)
}

func parseRequestListFilter(ctx echo.Context) dto.RequestListFilter {
	page, limit := utils.ParsePaginationParams(ctx.QueryParams())

	filter := dto.RequestListFilter{
		Status:   ctx.QueryParam("status"),
		Priority: ctx.QueryParam("priority"),
		IsActive: true,
		Page:     page,
		Limit:    limit,
	}

	if raw := ctx.QueryParam("isActive"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = active
		}
	}
	if raw := ctx.QueryParam("equipmentId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.EquipmentID = &id
		}
	}
	if raw := ctx.QueryParam("teamId"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			filter.TeamID = &id
		}
	}

	return filter
}
