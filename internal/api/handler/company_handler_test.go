package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/companycatalog/catalog-api/internal/core/domain"
	"github.com/companycatalog/catalog-api/internal/core/ports"
)

type stubCompanyService struct {
	registerFn     func(ctx context.Context, input ports.RegisterCompanyInput) (*domain.Company, error)
	authenticateFn func(ctx context.Context, name, password string) (string, error)
	listFn         func(ctx context.Context, filter ports.CompanyFilter) (*ports.CompanyPage, error)
	getFn          func(ctx context.Context, name string) (*domain.Company, error)
	updateFn       func(ctx context.Context, name string, input ports.UpdateCompanyInput) (*domain.Company, error)
	deleteFn       func(ctx context.Context, name string) (*domain.Company, error)
}

func (s *stubCompanyService) Register(ctx context.Context, input ports.RegisterCompanyInput) (*domain.Company, error) {
	return s.registerFn(ctx, input)
}

func (s *stubCompanyService) Authenticate(ctx context.Context, name, password string) (string, error) {
	return s.authenticateFn(ctx, name, password)
}

func (s *stubCompanyService) List(ctx context.Context, filter ports.CompanyFilter) (*ports.CompanyPage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubCompanyService) Get(ctx context.Context, name string) (*domain.Company, error) {
	return s.getFn(ctx, name)
}

func (s *stubCompanyService) Update(ctx context.Context, name string, input ports.UpdateCompanyInput) (*domain.Company, error) {
	return s.updateFn(ctx, name, input)
}

func (s *stubCompanyService) Delete(ctx context.Context, name string) (*domain.Company, error) {
	return s.deleteFn(ctx, name)
}

func TestCompanyHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		registerFn: func(_ context.Context, input ports.RegisterCompanyInput) (*domain.Company, error) {
			if input.CompanyName != "Acme Corp" {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Address.Area != "Center" || len(input.Phone) != 1 || input.Phone[0].Number != "555-0100" {
				t.Fatalf("profile fields not carried over: %+v", input)
			}
			return &domain.Company{ID: "id_1", CompanyName: input.CompanyName, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewCompanyHandler(stub)

	body := strings.NewReader(`{
		"companyName": "Acme Corp",
		"password": "secret1",
		"email": "ops@acme.example",
		"address": {"area": "Center", "road": "Main St 1"},
		"phone": [{"type": "work", "number": "555-0100"}],
		"role": "company"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/company/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["companyName"] != "Acme Corp" {
		t.Fatalf("unexpected payload: %+v", data)
	}
}

func TestCompanyHandler_Register_MissingName(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		registerFn: func(context.Context, ports.RegisterCompanyInput) (*domain.Company, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewCompanyHandler(stub)

	body := strings.NewReader(`{"password":"secret1","email":"ops@acme.example","role":"company"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/company/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCompanyHandler_Authenticate_ErrorPassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrSecretMismatch
		},
	}
	h := NewCompanyHandler(stub)

	body := strings.NewReader(`{"companyName":"Acme Corp","password":"wrong-pass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/company/authenticate", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Authenticate(c); err != domain.ErrSecretMismatch {
		t.Fatalf("expected ErrSecretMismatch to pass through, got %v", err)
	}
}

func TestCompanyHandler_List_NameFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		listFn: func(_ context.Context, filter ports.CompanyFilter) (*ports.CompanyPage, error) {
			if filter.Name != "acme" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &ports.CompanyPage{CurrentPage: 1, TotalPages: 1}, nil
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/company?companyName=acme", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty listing must render an empty array: %s", rec.Body.String())
	}
}

func TestCompanyHandler_Update_ProfileFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		updateFn: func(_ context.Context, name string, input ports.UpdateCompanyInput) (*domain.Company, error) {
			if name != "Acme Corp" {
				t.Fatalf("unexpected name: %s", name)
			}
			if input.Address == nil || input.Address.Road != "New Rd 5" {
				t.Fatalf("expected address update, got %+v", input)
			}
			if input.Phone == nil || len(*input.Phone) != 2 {
				t.Fatalf("expected phone update, got %+v", input)
			}
			if input.Password != nil {
				t.Fatalf("absent password must stay nil")
			}
			return &domain.Company{CompanyName: name}, nil
		},
	}
	h := NewCompanyHandler(stub)

	body := strings.NewReader(`{
		"address": {"area": "North", "road": "New Rd 5"},
		"phone": [{"type": "work", "number": "555-0100"}, {"type": "mobile", "number": "555-0101"}]
	}`)
	req := httptest.NewRequest(http.MethodPut, "/api/company/Acme%20Corp", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("companyName")
	c.SetParamValues("Acme Corp")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCompanyHandler_Get_NotFoundPassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubCompanyService{
		getFn: func(context.Context, string) (*domain.Company, error) {
			return nil, domain.ErrCompanyNotFound
		},
	}
	h := NewCompanyHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/company/Ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("companyName")
	c.SetParamValues("Ghost")

	if err := h.Get(c); err != domain.ErrCompanyNotFound {
		t.Fatalf("expected ErrCompanyNotFound to pass through, got %v", err)
	}
}
