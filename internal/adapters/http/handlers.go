package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/infrastructure/logger"
	"github.com/taskdesk/core/internal/ports"
)

// RequesterContextKey is the echo context key under which the auth middleware
// stores the verified requester.
const RequesterContextKey = "requester"

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService ports.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.Warn("Login failed", "email", req.Email)
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// UserHandler handles account management requests
type UserHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles listing all accounts (boss only)
func (h *UserHandler) ListUsers(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	users, err := h.userService.ListUsers(c.Request().Context(), requester)
	if err != nil {
		return mapUserError(c, h.logger, err, "List users failed")
	}

	return c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// CreateUser handles account creation (boss only)
func (h *UserHandler) CreateUser(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req ports.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateUser(c.Request().Context(), requester, req)
	if err != nil {
		return mapUserError(c, h.logger, err, "Create user failed")
	}

	return c.JSON(http.StatusCreated, UserResponse{Success: true, User: user})
}

// UpdateUserRole handles role changes (boss only)
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	requester, ok := requesterFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	var req ports.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.userService.UpdateUserRole(c.Request().Context(), requester, c.Param("id"), req.Role)
	if err != nil {
		return mapUserError(c, h.logger, err, "Update user role failed")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// mapUserError converts account-management errors to the uniform error
// payload: policy denials get 403, user-correctable input gets 400, anything
// else is logged and returned as 500.
func mapUserError(c echo.Context, log *logger.Logger, err error, msg string) error {
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not authorized"})
	case errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, entities.ErrInvalidRole),
		errors.Is(err, entities.ErrOwnRoleChange),
		errors.Is(err, entities.ErrUserNotFound):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.Error(msg, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requesterFromContext extracts the verified requester stored by the auth
// middleware. Services never see caller-supplied identity.
func requesterFromContext(c echo.Context) (entities.Requester, bool) {
	requester, ok := c.Get(RequesterContextKey).(entities.Requester)
	return requester, ok
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type UserResponse struct {
	Success bool           `json:"success"`
	User    *entities.User `json:"user"`
}

type UsersResponse struct {
	Success bool             `json:"success"`
	Users   []*entities.User `json:"users"`
}

type TasksByDateResponse struct {
	Success     bool                        `json:"success"`
	TasksByDate map[string][]*entities.Task `json:"tasksByDate"`
}
