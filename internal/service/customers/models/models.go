package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// ErrInvalidPagination возвращается при некорректных параметрах страницы
var ErrInvalidPagination = errors.New("invalid pagination")

// ListCustomersRequest запрос на получение страницы клиентов
type ListCustomersRequest struct {
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Search   string `json:"search,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCustomersRequest) ToDomainFilter(defaultPageSize, maxPageSize int) (domain.CustomersFilter, error) {
	filter := domain.CustomersFilter{
		Page:     r.Page,
		PageSize: r.PageSize,
		Search:   strings.TrimSpace(r.Search),
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.Page < 1 || filter.PageSize < 1 || filter.PageSize > maxPageSize {
		return filter, ErrInvalidPagination
	}

	return filter, nil
}

// CustomerResponse карточка клиента
type CustomerResponse struct {
	ID               int64                   `json:"id"`
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	FullName         string                  `json:"fullName"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	PhoneCountryCode string                  `json:"phoneCountryCode,omitempty"`
	DateOfBirth      string                  `json:"dateOfBirth,omitempty"`
	Gender           string                  `json:"gender,omitempty"`
	UserType         string                  `json:"userType"`
	Country          string                  `json:"country,omitempty"`
	Address          domain.CustomerAddress  `json:"address"`
	Passport         domain.CustomerPassport `json:"passport"`
	IsActive         bool                    `json:"isActive"`
	IsDisabled       bool                    `json:"isDisabled"`
	IsVerified       bool                    `json:"isVerified"`
	SocialProvider   string                  `json:"socialProvider,omitempty"`
	ReferralCode     string                  `json:"referralCode,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// CustomerListResponse ответ со страницей клиентов
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalCount int                `json:"totalCount"`
	TotalPages int                `json:"totalPages"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		FullName:         c.FullName(),
		Email:            c.Email,
		Phone:            c.Phone,
		PhoneCountryCode: c.PhoneCountryCode,
		DateOfBirth:      c.DateOfBirth,
		Gender:           c.Gender,
		UserType:         c.DisplayUserType(),
		Country:          c.Country,
		Address:          c.Address,
		Passport:         c.Passport,
		IsActive:         c.IsActive,
		IsDisabled:       c.IsDisabled,
		IsVerified:       c.IsVerified,
		SocialProvider:   c.SocialProvider,
		ReferralCode:     c.ReferralCode,
		CreatedAt:        c.CreatedAt,
	}
}

// FromDomainCustomerList конвертирует страницу domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer, filter domain.CustomersFilter, total int) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers:  make([]CustomerResponse, 0, len(customers)),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: total,
		TotalPages: domain.TotalPages(total, filter.PageSize),
	}

	for _, c := range customers {
		resp.Customers = append(resp.Customers, *FromDomainCustomer(c))
	}

	return resp
}
