package domain

import (
	"strings"
	"time"
)

// Customer represents a registered user profile.
// It is distinct from the traveller details stored on a booking.
type Customer struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	PhoneCountryCode string
	DateOfBirth      string
	Gender           string
	UserType         string
	Country          string
	Address          CustomerAddress
	Passport         CustomerPassport
	IsActive         bool
	IsDisabled       bool
	IsVerified       bool
	SocialProvider   string
	SocialID         string
	ReferralCode     string
	CreatedAt        time.Time
}

// CustomerAddress is stored as a JSON object
type CustomerAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// CustomerPassport is stored as a JSON object
type CustomerPassport struct {
	Number       string `json:"number,omitempty"`
	IssueCountry string `json:"issueCountry,omitempty"`
	IssueDate    string `json:"issueDate,omitempty"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}

// FullName returns "First Last" with extra spaces trimmed
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// DisplayUserType returns the user type, "Traveler" when not set
func (c *Customer) DisplayUserType() string {
	if c.UserType == "" {
		return DefaultUserType
	}
	return c.UserType
}

// CustomersFilter фильтр для постраничного списка клиентов
type CustomersFilter struct {
	Page     int
	PageSize int
	Search   string // подстрока по имени, email или телефону (опционально)
}

// Offset возвращает смещение для SQL по номеру страницы
func (f CustomersFilter) Offset() uint64 {
	return pageOffset(f.Page, f.PageSize)
}
