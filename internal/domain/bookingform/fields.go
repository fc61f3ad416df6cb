package bookingform

import "github.com/m04kA/SkyTrips-AdminService/internal/domain"

// Имена полей формы
const (
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldContactType       = "contactType"
	FieldCustomerType      = "customerType"
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldPassportNumber    = "passportNumber"
	FieldPassportExpiry    = "passportExpiry"
	FieldNationality       = "nationality"
	FieldDateOfBirth       = "dateOfBirth"
	FieldTripType          = "tripType"
	FieldTravelDate        = "travelDate"
	FieldOrigin            = "origin"
	FieldDestination       = "destination"
	FieldStopoverLocation  = "stopoverLocation"
	FieldStopoverArrival   = "stopoverArrival"
	FieldStopoverDeparture = "stopoverDeparture"
	FieldAirlines          = "airlines"
	FieldFlightNumber      = "flightNumber"
	FieldFlightClass       = "flightClass"
	FieldPNR               = "pnr"
	FieldTicketNumber      = "ticketNumber"
	FieldFrequentFlyer     = "frequentFlyer"
	FieldAgency            = "agency"
	FieldHandledBy         = "handledBy"
	FieldStatus            = "status"
	FieldIssueMonth        = "issueMonth"
	FieldIssueDay          = "issueDay"
	FieldIssueYear         = "issueYear"
	FieldCostPrice         = "costPrice"
	FieldSellingPrice      = "sellingPrice"
	FieldPaymentStatus     = "paymentStatus"
	FieldPayment           = "payment"
)

// fallback что делает Merge, если в сохранённой записи поля нет
type fallback int

const (
	useDefault   fallback = iota // значение пустой формы
	keepPrevious                 // значение формы до слияния
)

// binding связь скалярного поля формы с полем хранилища.
// Таблица ниже единственное место, где встречаются две схемы.
type binding struct {
	form      string
	persisted string
	numeric   bool
	fallback  fallback
	valid     func(string) bool // nil принимает любое значение

	formValue   func(*State) *string
	recordValue func(*domain.Booking) *string
}

var bindings = []binding{
	{form: FieldEmail, persisted: "email",
		formValue: func(s *State) *string { return &s.Email }, recordValue: func(b *domain.Booking) *string { return &b.Email }},
	{form: FieldPhone, persisted: "phone",
		formValue: func(s *State) *string { return &s.Phone }, recordValue: func(b *domain.Booking) *string { return &b.Phone }},
	{form: FieldContactType, persisted: "contactType", valid: validParty,
		formValue: func(s *State) *string { return &s.ContactType }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.ContactType) }},
	{form: FieldCustomerType, persisted: "customerType", valid: validParty,
		formValue: func(s *State) *string { return &s.CustomerType }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.CustomerType) }},
	{form: FieldFirstName, persisted: "travellerFirstName",
		formValue: func(s *State) *string { return &s.FirstName }, recordValue: func(b *domain.Booking) *string { return &b.TravellerFirstName }},
	{form: FieldLastName, persisted: "travellerLastName",
		formValue: func(s *State) *string { return &s.LastName }, recordValue: func(b *domain.Booking) *string { return &b.TravellerLastName }},
	{form: FieldPassportNumber, persisted: "passportNumber",
		formValue: func(s *State) *string { return &s.PassportNumber }, recordValue: func(b *domain.Booking) *string { return &b.PassportNumber }},
	{form: FieldPassportExpiry, persisted: "passportExpiry",
		formValue: func(s *State) *string { return &s.PassportExpiry }, recordValue: func(b *domain.Booking) *string { return &b.PassportExpiry }},
	{form: FieldNationality, persisted: "nationality",
		formValue: func(s *State) *string { return &s.Nationality }, recordValue: func(b *domain.Booking) *string { return &b.Nationality }},
	{form: FieldDateOfBirth, persisted: "dob",
		formValue: func(s *State) *string { return &s.DateOfBirth }, recordValue: func(b *domain.Booking) *string { return &b.DateOfBirth }},
	{form: FieldTripType, persisted: "tripType", valid: validTripType,
		formValue: func(s *State) *string { return &s.TripType }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.TripType) }},
	{form: FieldTravelDate, persisted: "travelDate",
		formValue: func(s *State) *string { return &s.TravelDate }, recordValue: func(b *domain.Booking) *string { return &b.TravelDate }},
	{form: FieldOrigin, persisted: "origin",
		formValue: func(s *State) *string { return &s.Origin }, recordValue: func(b *domain.Booking) *string { return &b.Origin }},
	{form: FieldDestination, persisted: "destination",
		formValue: func(s *State) *string { return &s.Destination }, recordValue: func(b *domain.Booking) *string { return &b.Destination }},
	{form: FieldStopoverLocation, persisted: "stopoverLocation",
		formValue: func(s *State) *string { return &s.StopoverLocation }, recordValue: func(b *domain.Booking) *string { return &b.StopoverLocation }},
	{form: FieldStopoverArrival, persisted: "stopoverArrival",
		formValue: func(s *State) *string { return &s.StopoverArrival }, recordValue: func(b *domain.Booking) *string { return &b.StopoverArrival }},
	{form: FieldStopoverDeparture, persisted: "stopoverDeparture",
		formValue: func(s *State) *string { return &s.StopoverDeparture }, recordValue: func(b *domain.Booking) *string { return &b.StopoverDeparture }},
	{form: FieldAirlines, persisted: "airlines",
		formValue: func(s *State) *string { return &s.Airlines }, recordValue: func(b *domain.Booking) *string { return &b.Airlines }},
	{form: FieldFlightNumber, persisted: "flightNumber",
		formValue: func(s *State) *string { return &s.FlightNumber }, recordValue: func(b *domain.Booking) *string { return &b.FlightNumber }},
	{form: FieldFlightClass, persisted: "flightClass", valid: validFlightClass,
		formValue: func(s *State) *string { return &s.FlightClass }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.FlightClass) }},
	{form: FieldPNR, persisted: "PNR", fallback: keepPrevious,
		formValue: func(s *State) *string { return &s.PNR }, recordValue: func(b *domain.Booking) *string { return &b.PNR }},
	{form: FieldTicketNumber, persisted: "ticketNumber",
		formValue: func(s *State) *string { return &s.TicketNumber }, recordValue: func(b *domain.Booking) *string { return &b.TicketNumber }},
	{form: FieldFrequentFlyer, persisted: "frequentFlyer",
		formValue: func(s *State) *string { return &s.FrequentFlyer }, recordValue: func(b *domain.Booking) *string { return &b.FrequentFlyer }},
	{form: FieldAgency, persisted: "agency",
		formValue: func(s *State) *string { return &s.Agency }, recordValue: func(b *domain.Booking) *string { return &b.Agency }},
	{form: FieldHandledBy, persisted: "handledBy",
		formValue: func(s *State) *string { return &s.HandledBy }, recordValue: func(b *domain.Booking) *string { return &b.HandledBy }},
	{form: FieldStatus, persisted: "status", valid: validStatus,
		formValue: func(s *State) *string { return &s.Status }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.Status) }},
	{form: FieldIssueMonth, persisted: "issueMonth",
		formValue: func(s *State) *string { return &s.IssueMonth }, recordValue: func(b *domain.Booking) *string { return &b.IssueMonth }},
	{form: FieldIssueDay, persisted: "IssueDay",
		formValue: func(s *State) *string { return &s.IssueDay }, recordValue: func(b *domain.Booking) *string { return &b.IssueDay }},
	{form: FieldIssueYear, persisted: "issueYear",
		formValue: func(s *State) *string { return &s.IssueYear }, recordValue: func(b *domain.Booking) *string { return &b.IssueYear }},
	{form: FieldCostPrice, persisted: "buyingPrice", numeric: true,
		formValue: func(s *State) *string { return &s.CostPrice }, recordValue: func(b *domain.Booking) *string { return &b.BuyingPrice }},
	{form: FieldSellingPrice, persisted: "sellingPrice", numeric: true,
		formValue: func(s *State) *string { return &s.SellingPrice }, recordValue: func(b *domain.Booking) *string { return &b.SellingPrice }},
	{form: FieldPaymentStatus, persisted: "paymentStatus", valid: validPayment,
		formValue: func(s *State) *string { return &s.PaymentStatus }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.PaymentStatus) }},
	{form: FieldPayment, persisted: "payment", valid: validPayment,
		formValue: func(s *State) *string { return &s.Payment }, recordValue: func(b *domain.Booking) *string { return (*string)(&b.Payment) }},
}

var bindingsByForm = indexBindings()

func indexBindings() map[string]*binding {
	idx := make(map[string]*binding, len(bindings))
	for i := range bindings {
		idx[bindings[i].form] = &bindings[i]
	}
	return idx
}

func validParty(v string) bool       { return domain.PartyType(v).IsValid() }
func validTripType(v string) bool    { return domain.TripType(v).IsValid() }
func validFlightClass(v string) bool { return domain.FlightClass(v).IsValid() }
func validStatus(v string) bool      { return domain.BookingStatus(v).IsValid() }
func validPayment(v string) bool     { return domain.PaymentStatus(v).IsValid() }
