package controller

import (
	"availability-api/core/controller"
	"availability-api/core/errors"
	"availability-api/modules/availability/dto"
	availEntity "availability-api/modules/availability/entity"
	"availability-api/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

// Calendar handles GET /events/:id/calendar?user_id=
// @Summary Project the availability calendar
// @Description 5-week grid of visible slot occurrences annotated for the viewing user
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Param user_id query string true "Viewing user ID"
// @Success 200 {object} dto.CalendarResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id}/calendar [get]
func (c *AvailabilityController) Calendar(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	userID, err := uuid.Parse(ctx.QueryParam("user_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing user_id")
	}

	result, appErr := c.AvailabilityService.Calendar(ctx.Request().Context(), eventID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Calendar loaded successfully")
}

// Vote handles PUT /events/:id/votes
// @Summary Save an availability vote
// @Tags Availability
// @Accept json
// @Param id path string true "Event ID"
// @Param request body dto.VoteRequest true "Vote details"
// @Success 200
// @Failure 400 {object} errors.AppError
// @Router /events/{id}/votes [put]
func (c *AvailabilityController) Vote(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.VoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.Vote(ctx.Request().Context(), eventID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Vote saved successfully")
}

// Unvote handles DELETE /events/:id/votes
// @Summary Delete an availability vote
// @Description Returns the user to "no opinion" on the occurrence
// @Tags Availability
// @Accept json
// @Param id path string true "Event ID"
// @Param request body dto.VoteDeleteRequest true "Vote coordinates"
// @Success 200
// @Router /events/{id}/votes [delete]
func (c *AvailabilityController) Unvote(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.VoteDeleteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.AvailabilityService.Unvote(ctx.Request().Context(), eventID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Vote deleted successfully")
}

// SetWeek handles POST /events/:id/weeks/set
// @Summary Set a uniform vote across a week
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.WeekSetRequest true "Week target"
// @Success 200 {object} dto.WeekMutationResponse
// @Failure 400 {object} errors.AppError
// @Router /events/{id}/weeks/set [post]
func (c *AvailabilityController) SetWeek(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.WeekSetRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.SetWeek(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Week votes saved")
}

// ClearWeek handles POST /events/:id/weeks/clear
// @Summary Clear a week's votes
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.WeekClearRequest true "Week target"
// @Success 200 {object} dto.WeekMutationResponse
// @Router /events/{id}/weeks/clear [post]
func (c *AvailabilityController) ClearWeek(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.WeekClearRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.ClearWeek(ctx.Request().Context(), eventID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Week votes cleared")
}

// WeekStatus handles GET /events/:id/weeks/status?user_id=&week_start=
// @Summary Classify a user's week
// @Tags Availability
// @Produce json
// @Param id path string true "Event ID"
// @Param user_id query string true "User ID"
// @Param week_start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} dto.WeekStatusResponse
// @Router /events/{id}/weeks/status [get]
func (c *AvailabilityController) WeekStatus(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	userID, err := uuid.Parse(ctx.QueryParam("user_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing user_id")
	}

	weekStart, err := availEntity.ParseDate(ctx.QueryParam("week_start"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid or missing week_start")
	}

	result, appErr := c.AvailabilityService.WeekStatus(ctx.Request().Context(), eventID, userID, weekStart)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Week status loaded")
}
