package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/companycatalog/catalog-api/internal/api/metrics"
	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company accounts.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// Register creates a new company account.
//
// @Summary      Register a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      registerCompanyRequest  true  "Company registration details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/company/register [post]
func (h *CompanyHandler) Register(c echo.Context) error {
	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Register(c.Request().Context(), ports.RegisterCompanyInput{
		CompanyName: req.CompanyName,
		Password:    req.Password,
		Email:       req.Email,
		Address:     domain.Address{Area: req.Address.Area, Road: req.Address.Road},
		Phone:       phonesFromRequest(req.Phone),
		Role:        req.Role,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("company", registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("company", "success").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Data: company})
}

// Authenticate verifies credentials and returns a bearer token.
//
// @Summary      Authenticate a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateCompanyRequest  true  "Login credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/company/authenticate [post]
func (h *CompanyHandler) Authenticate(c echo.Context) error {
	var req authenticateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	token, err := h.service.Authenticate(c.Request().Context(), req.CompanyName, req.Password)
	metrics.LoginDuration.WithLabelValues("company").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("company", "failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("company", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Message: "authentication successful", Token: token})
}

// List returns a page of companies, optionally filtered by name pattern.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Page size (default 10)"
// @Param        companyName  query     string  false  "Case-insensitive name filter"
// @Success      200          {object}  companyPageResponse
// @Router       /api/company [get]
func (h *CompanyHandler) List(c echo.Context) error {
	filter := ports.CompanyFilter{
		Name:  c.QueryParam("companyName"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	page, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	companies := page.Companies
	if companies == nil {
		companies = []domain.Company{}
	}
	return c.JSON(http.StatusOK, companyPageResponse{
		Data:        companies,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	})
}

// Get returns a single company by name.
//
// @Summary      Get a company by name
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        companyName  path      string  true  "Company name"
// @Success      200          {object}  dataResponse
// @Failure      404          {object}  map[string]string
// @Router       /api/company/{companyName} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("companyName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: company})
}

// Create is the write-role variant of Register.
//
// @Summary      Create a new company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerCompanyRequest  true  "Company details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/company [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	return h.Register(c)
}

// Update mutates a company's profile fields; a supplied password is rehashed.
//
// @Summary      Update a company by name
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyName  path      string                true  "Company name"
// @Param        body         body      updateCompanyRequest  true  "Fields to update"
// @Success      200          {object}  dataResponse
// @Failure      404          {object}  map[string]string
// @Router       /api/company/{companyName} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateCompanyInput{Email: req.Email, Password: req.Password}
	if req.Address != nil {
		input.Address = &domain.Address{Area: req.Address.Area, Road: req.Address.Road}
	}
	if req.Phone != nil {
		phones := phonesFromRequest(*req.Phone)
		input.Phone = &phones
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("companyName"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: company})
}

// Delete removes a company by name.
//
// @Summary      Delete a company by name
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        companyName  path      string  true  "Company name"
// @Success      200          {object}  dataResponse
// @Failure      404          {object}  map[string]string
// @Router       /api/company/{companyName} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	company, err := h.service.Delete(c.Request().Context(), c.Param("companyName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Data: company})
}
