package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/companycatalog/catalog-api/internal/api/metrics"
	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User registration details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterUserInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("user", registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("user", "success").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: user})
}

// Authenticate verifies credentials and returns a bearer token.
//
// @Summary      Authenticate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateUserRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/users/authenticate [post]
func (h *UserHandler) Authenticate(c echo.Context) error {
	var req authenticateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	token, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	metrics.LoginDuration.WithLabelValues("user").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("user", "failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("user", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Message: "authentication successful", Token: token})
}

// List returns a page of users, optionally filtered by role.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "Page number (default 1)"
// @Param        limit  query     int     false  "Page size (default 10)"
// @Param        role   query     string  false  "Filter by role"
// @Success      200    {object}  userPageResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := ports.UserFilter{
		Role:  c.QueryParam("role"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	users := page.Users
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, userPageResponse{
		Data:        users,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	})
}

// Get returns a single user by username.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dataResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: user})
}

// Create is the admin-only variant of Register.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	return h.Register(c)
}

// Update mutates a user's profile fields; a supplied password is rehashed.
//
// @Summary      Update a user by username
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string             true  "Username"
// @Param        body      body      updateUserRequest  true  "Fields to update"
// @Success      200       {object}  dataResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("username"), ports.UpdateUserInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: user})
}

// Delete removes a user by username.
//
// @Summary      Delete a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  dataResponse
// @Failure      404       {object}  map[string]string
// @Router       /api/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.Delete(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: user})
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists), errors.Is(err, domain.ErrCompanyExists):
		return "duplicate"
	default:
		return "invalid"
	}
}

func queryInt(c echo.Context, name string, fallback int64) int64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
