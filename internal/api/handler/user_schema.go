package handler

import "github.com/companycatalog/catalog-api/internal/core/domain"

type registerUserRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
}

type authenticateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
}

// dataResponse is the envelope for single-record responses.
type dataResponse struct {
	Data any `json:"data"`
}

type userPageResponse struct {
	Data        []domain.User `json:"data"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
