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

type stubUserService struct {
	registerFn     func(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error)
	authenticateFn func(ctx context.Context, username, password string) (string, error)
	listFn         func(ctx context.Context, filter ports.UserFilter) (*ports.UserPage, error)
	getFn          func(ctx context.Context, username string) (*domain.User, error)
	updateFn       func(ctx context.Context, username string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn       func(ctx context.Context, username string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubUserService) List(ctx context.Context, filter ports.UserFilter) (*ports.UserPage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubUserService) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func (s *stubUserService) Update(ctx context.Context, username string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, username, input)
}

func (s *stubUserService) Delete(ctx context.Context, username string) (*domain.User, error) {
	return s.deleteFn(ctx, username)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterUserInput) (*domain.User, error) {
			if input.Username != "alice" || input.Role != "user" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "id_1", Username: input.Username, Email: input.Email, Role: input.Role}, nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret1","email":"alice@example.com","role":"user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", body)
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
	if data["username"] != "alice" || data["role"] != "user" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, present := data["password"]; present {
		t.Fatalf("password must never be echoed")
	}
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	// Password below the minimum length.
	body := strings.NewReader(`{"username":"alice","password":"short","email":"alice@example.com","role":"user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", body)
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

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("not-json"))
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

func TestUserHandler_Register_ServiceErrorPassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		registerFn: func(context.Context, ports.RegisterUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret1","email":"alice@example.com","role":"user"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to pass through, got %v", err)
	}
}

func TestUserHandler_Authenticate_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		authenticateFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "token123", nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"username":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/authenticate", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in response, got %+v", resp)
	}
}

func TestUserHandler_List_Defaults(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(_ context.Context, filter ports.UserFilter) (*ports.UserPage, error) {
			if filter.Page != 1 || filter.Limit != 10 {
				t.Fatalf("unexpected defaults: %+v", filter)
			}
			return &ports.UserPage{Users: nil, TotalPages: 0, CurrentPage: 1}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("empty listing must render an empty array: %s", rec.Body.String())
	}
}

func TestUserHandler_List_QueryParams(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(_ context.Context, filter ports.UserFilter) (*ports.UserPage, error) {
			if filter.Page != 2 || filter.Limit != 5 || filter.Role != "admin" {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &ports.UserPage{CurrentPage: 2, TotalPages: 3}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/users?page=2&limit=5&role=admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestUserHandler_Update_PartialBody(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(_ context.Context, username string, input ports.UpdateUserInput) (*domain.User, error) {
			if username != "alice" {
				t.Fatalf("unexpected username: %s", username)
			}
			if input.Name == nil || *input.Name != "Alicia" {
				t.Fatalf("expected name update, got %+v", input)
			}
			if input.Email != nil || input.Password != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			return &domain.User{Username: "alice", Name: "Alicia"}, nil
		},
	}
	h := NewUserHandler(stub)

	body := strings.NewReader(`{"name":"Alicia"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/users/alice", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("alice")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFoundPassedThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("username")
	c.SetParamValues("ghost")

	if err := h.Delete(c); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound to pass through, got %v", err)
	}
}
