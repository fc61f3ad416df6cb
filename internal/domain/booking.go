package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a flight booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusPending   BookingStatus = "Pending"
	StatusCancelled BookingStatus = "Cancelled"
)

// IsValid reports whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusPending || s == StatusCancelled
}

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPending  PaymentStatus = "Pending"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentPaid || s == PaymentPending || s == PaymentRefunded
}

// TripType represents the itinerary shape
type TripType string

const (
	TripOneWay    TripType = "One Way"
	TripRoundTrip TripType = "Round Trip"
	TripMultiCity TripType = "Multi City"
)

func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripRoundTrip || t == TripMultiCity
}

// FlightClass represents the cabin class
type FlightClass string

const (
	ClassEconomy        FlightClass = "Economy"
	ClassPremiumEconomy FlightClass = "Premium Economy"
	ClassBusiness       FlightClass = "Business"
	ClassFirst          FlightClass = "First Class"
)

func (c FlightClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
		return true
	}
	return false
}

// PartyType tells whether the contact (or the customer) of a booking is
// an already registered one or is entered by hand
type PartyType string

const (
	PartyExisting PartyType = "existing"
	PartyNew      PartyType = "new"
)

func (p PartyType) IsValid() bool {
	return p == PartyExisting || p == PartyNew
}

// Addon is an optional ancillary service attachable to a booking
type Addon string

const (
	AddonMeals      Addon = "meals"
	AddonWheelchair Addon = "wheelchair"
	AddonPickup     Addon = "pickup"
	AddonDropoff    Addon = "dropoff"
	AddonLuggage    Addon = "luggage"
)

// Addons lists every add-on in display order
var Addons = []Addon{
	AddonMeals,
	AddonWheelchair,
	AddonPickup,
	AddonDropoff,
	AddonLuggage,
}

func (a Addon) IsValid() bool {
	for _, known := range Addons {
		if a == known {
			return true
		}
	}
	return false
}

// Booking is a flight booking as stored by the backend.
// JSON names follow the storage schema, including its casing quirks (PNR, IssueDay).
type Booking struct {
	ID int64 `json:"id,omitempty"`

	// Traveller
	TravellerFirstName string `json:"travellerFirstName"`
	TravellerLastName  string `json:"travellerLastName"`
	PassportNumber     string `json:"passportNumber"`
	PassportExpiry     string `json:"passportExpiry"`
	Nationality        string `json:"nationality"`
	DateOfBirth        string `json:"dob"`

	// Contact
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ContactType  PartyType `json:"contactType"`
	CustomerType PartyType `json:"customerType"`

	// Itinerary
	TripType          TripType `json:"tripType"`
	TravelDate        string   `json:"travelDate"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Transit           string   `json:"transit,omitempty"` // legacy column, read only
	StopoverLocation  string   `json:"stopoverLocation"`
	StopoverArrival   string   `json:"stopoverArrival"`
	StopoverDeparture string   `json:"stopoverDeparture"`

	// Flight
	Airlines     string      `json:"airlines"`
	FlightNumber string      `json:"flightNumber"`
	FlightClass  FlightClass `json:"flightClass"`

	// Reference
	PNR           string `json:"PNR"`
	TicketNumber  string `json:"ticketNumber"`
	FrequentFlyer string `json:"frequentFlyer"`

	// Administrative
	Agency     string        `json:"agency"`
	HandledBy  string        `json:"handledBy"`
	Status     BookingStatus `json:"status"`
	IssueMonth string        `json:"issueMonth"`
	IssueDay   string        `json:"IssueDay"`
	IssueYear  string        `json:"issueYear"`

	// Add-ons: selection flags and prices share the same keys
	Addons map[Addon]bool   `json:"addons"`
	Prices map[Addon]string `json:"prices"`

	// Financials
	BuyingPrice   string        `json:"buyingPrice"`
	SellingPrice  string        `json:"sellingPrice"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Payment       PaymentStatus `json:"payment"` // legacy alias of PaymentStatus

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsNew returns true if the booking has not been stored yet
func (b *Booking) IsNew() bool {
	return b.ID == 0
}

// IsCancelled returns true if the booking was cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// TravellerName returns "First Last" with extra spaces trimmed
func (b *Booking) TravellerName() string {
	return strings.TrimSpace(b.TravellerFirstName + " " + b.TravellerLastName)
}

// SelectedAddons returns the selected add-ons in display order
func (b *Booking) SelectedAddons() []Addon {
	selected := make([]Addon, 0, len(Addons))
	for _, a := range Addons {
		if b.Addons[a] {
			selected = append(selected, a)
		}
	}
	return selected
}

// BookingsFilter фильтр для постраничного списка бронирований
type BookingsFilter struct {
	Page     int            // с 1
	PageSize int            // > 0
	Search   string         // подстрока по имени, PNR, билету, авиакомпании и маршруту (опционально)
	Status   *BookingStatus // фильтр по статусу (опционально)
}

// Offset возвращает смещение для SQL по номеру страницы
func (f BookingsFilter) Offset() uint64 {
	return pageOffset(f.Page, f.PageSize)
}

func pageOffset(page, pageSize int) uint64 {
	if page < 1 || pageSize < 1 {
		return 0
	}
	return uint64((page - 1) * pageSize)
}

// TotalPages возвращает количество страниц для totalCount записей
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
