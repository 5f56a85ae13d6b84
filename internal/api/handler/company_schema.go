package handler

import "github.com/companycatalog/catalog-api/internal/core/domain"

type addressRequest struct {
	Area string `json:"area"`
	Road string `json:"road"`
}

type phoneRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type registerCompanyRequest struct {
	CompanyName string         `json:"companyName" validate:"required"`
	Password    string         `json:"password" validate:"required,min=6,max=72"`
	Email       string         `json:"email" validate:"required,email"`
	Address     addressRequest `json:"address"`
	Phone       []phoneRequest `json:"phone"`
	Role        string         `json:"role" validate:"required"`
}

type authenticateCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type updateCompanyRequest struct {
	Email    *string         `json:"email" validate:"omitempty,email"`
	Address  *addressRequest `json:"address"`
	Phone    *[]phoneRequest `json:"phone"`
	Password *string         `json:"password" validate:"omitempty,min=6,max=72"`
}

type companyPageResponse struct {
	Data        []domain.Company `json:"data"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int64            `json:"currentPage"`
}

func phonesFromRequest(phones []phoneRequest) []domain.Phone {
	if len(phones) == 0 {
		return nil
	}
	out := make([]domain.Phone, 0, len(phones))
	for _, p := range phones {
		out = append(out, domain.Phone{Type: p.Type, Number: p.Number})
	}
	return out
}
