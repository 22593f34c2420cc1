package controller

import (
	"availability-api/core/controller"
	"availability-api/core/errors"
	"availability-api/core/params"
	"availability-api/modules/user/dto"
	"availability-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserController handles user HTTP requests
type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(svc service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
	}
}

// List handles GET /users?page=&page_size=
// @Summary List users
// @Description One page of users ordered by name, for the user picker
// @Tags User
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (c *UserController) List(ctx echo.Context) error {
	p := params.ParseQueryParams(ctx.QueryParam("page"), ctx.QueryParam("page_size"))

	result, appErr := c.UserService.List(ctx.Request().Context(), p)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Users loaded successfully")
}

// Get handles GET /users/:id
// @Summary Get a user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} errors.AppError
// @Router /users/{id} [get]
func (c *UserController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user id")
	}

	result, appErr := c.UserService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "User loaded successfully")
}

// Create handles POST /users
// @Summary Create a user
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.AppError
// @Router /users [post]
func (c *UserController) Create(ctx echo.Context) error {
	var req dto.CreateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if req.Name == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Name is required")
	}

	result, appErr := c.UserService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "User created successfully")
}
