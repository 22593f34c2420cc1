package controller

import (
	"availability-api/core/controller"
	"availability-api/core/errors"
	"availability-api/modules/slot/dto"
	"availability-api/modules/slot/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SlotController handles slot template HTTP requests
type SlotController struct {
	controller.BaseController
	SlotService service.SlotServiceInterface
}

func NewSlotController(svc service.SlotServiceInterface) *SlotController {
	return &SlotController{
		BaseController: controller.NewBaseController(),
		SlotService:    svc,
	}
}

// Create handles POST /events/:id/slots
// @Summary Add a weekly slot template
// @Tags Slot
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.CreateSlotRequest true "Slot details"
// @Success 200 {object} dto.SlotResponse
// @Failure 400 {object} errors.AppError
// @Router /events/{id}/slots [post]
func (c *SlotController) Create(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.CreateSlotRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.SlotService.Create(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slot created successfully")
}

// ListForEvent handles GET /events/:id/slots
// @Summary List an event's slot templates
// @Tags Slot
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.SlotListResponse
// @Router /events/{id}/slots [get]
func (c *SlotController) ListForEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, appErr := c.SlotService.GetByEventID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Slots loaded successfully")
}

// Delete handles DELETE /slots/:id
// @Summary Delete a slot template
// @Tags Slot
// @Param id path string true "Slot ID"
// @Success 200
// @Router /slots/{id} [delete]
func (c *SlotController) Delete(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid slot id")
	}

	if appErr := c.SlotService.Delete(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Slot deleted successfully")
}
