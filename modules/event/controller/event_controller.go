package controller

import (
	"availability-api/core/controller"
	"availability-api/core/errors"
	"availability-api/modules/event/dto"
	"availability-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

func parseIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param(name))
}

// Create handles POST /events
// @Summary Create an event
// @Description Create an event and seed its members
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /events [post]
func (c *EventController) Create(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Name == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Name is required")
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event created successfully")
}

// Get handles GET /events/:id
// @Summary Get an event
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /events/{id} [get]
func (c *EventController) Get(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	result, appErr := c.EventService.GetEventByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event loaded successfully")
}

// ListForUser handles GET /users/:id/events
// @Summary List a user's events
// @Description Events the user is a member of, oldest first
// @Tags Event
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.EventListResponse
// @Router /users/{id}/events [get]
func (c *EventController) ListForUser(ctx echo.Context) error {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user id")
	}

	result, appErr := c.EventService.GetEventsByUserID(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Events loaded successfully")
}

// Update handles PUT /events/:id
// @Summary Update an event
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Updated fields"
// @Success 200 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /events/{id} [put]
func (c *EventController) Update(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated successfully")
}

// Delete handles DELETE /events/:id
// @Summary Delete an event
// @Tags Event
// @Param id path string true "Event ID"
// @Success 200
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}

// AddMember handles POST /events/:id/members
// @Summary Add a member
// @Description Add a member or update their required flag
// @Tags Event
// @Accept json
// @Param id path string true "Event ID"
// @Param request body dto.AddMemberRequest true "Member details"
// @Success 200
// @Router /events/{id}/members [post]
func (c *EventController) AddMember(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.AddMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.EventService.AddMember(ctx.Request().Context(), id, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member added successfully")
}

// RemoveMember handles DELETE /events/:id/members/:user_id
// @Summary Remove a member
// @Tags Event
// @Param id path string true "Event ID"
// @Param user_id path string true "User ID"
// @Success 200
// @Router /events/{id}/members/{user_id} [delete]
func (c *EventController) RemoveMember(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	userID, err := parseIDParam(ctx, "user_id")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user id")
	}

	if appErr := c.EventService.RemoveMember(ctx.Request().Context(), id, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member removed successfully")
}
