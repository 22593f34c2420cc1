package controller

import (
	"availability-api/core/controller"
	"availability-api/core/errors"
	"availability-api/modules/preference/dto"
	"availability-api/modules/preference/service"

	"github.com/labstack/echo/v4"
)

// PreferenceController handles preference HTTP requests
type PreferenceController struct {
	controller.BaseController
	PreferenceService service.PreferenceServiceInterface
}

func NewPreferenceController(svc service.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		BaseController:    controller.NewBaseController(),
		PreferenceService: svc,
	}
}

// Get handles GET /preferences/:client_id
// @Summary Get a client's stored selection
// @Tags Preference
// @Produce json
// @Param client_id path string true "Client ID"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 404 {object} errors.AppError
// @Router /preferences/{client_id} [get]
func (c *PreferenceController) Get(ctx echo.Context) error {
	clientID := ctx.Param("client_id")
	if clientID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing client id")
	}

	result, appErr := c.PreferenceService.Get(ctx.Request().Context(), clientID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Preference loaded")
}

// Set handles PUT /preferences/:client_id
// @Summary Save a client's selection
// @Tags Preference
// @Accept json
// @Produce json
// @Param client_id path string true "Client ID"
// @Param request body dto.SetPreferenceRequest true "Selected user and event"
// @Success 200 {object} dto.PreferenceResponse
// @Router /preferences/{client_id} [put]
func (c *PreferenceController) Set(ctx echo.Context) error {
	clientID := ctx.Param("client_id")
	if clientID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing client id")
	}

	var req dto.SetPreferenceRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.UserID == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "user_id is required")
	}

	result, appErr := c.PreferenceService.Set(ctx.Request().Context(), clientID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Preference saved")
}

// Delete handles DELETE /preferences/:client_id
// @Summary Delete a client's stored selection
// @Tags Preference
// @Param client_id path string true "Client ID"
// @Success 200
// @Router /preferences/{client_id} [delete]
func (c *PreferenceController) Delete(ctx echo.Context) error {
	clientID := ctx.Param("client_id")
	if clientID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing client id")
	}

	if appErr := c.PreferenceService.Delete(ctx.Request().Context(), clientID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Preference deleted")
}
