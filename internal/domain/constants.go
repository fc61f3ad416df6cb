package domain

// Default values of a blank booking
const (
	DefaultNationality   = "Nepalese"
	DefaultAgency        = "SkyHigh Agency Ltd."
	DefaultTripType      = TripOneWay
	DefaultFlightClass   = ClassEconomy
	DefaultStatus        = StatusConfirmed
	DefaultPaymentStatus = PaymentPending
	DefaultPartyType     = PartyExisting
	DefaultAmount        = "0.00"
	DefaultUserType      = "Traveler"
)

// TicketNumberSuffix is appended to the PNR when no ticket number was entered
const TicketNumberSuffix = "01"

// Pagination limits
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
