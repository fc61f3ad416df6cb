// Package bookingform состояние формы бронирования и чистые операции над ним:
// шаблон по умолчанию, слияние с сохранённой записью, изменения полей,
// итоги и преобразование обратно в запись хранилища.
//
// Каждая операция возвращает новый State, входной никогда не изменяется.
package bookingform

import "github.com/m04kA/SkyTrips-AdminService/internal/domain"

// State редактируемое бронирование в именах полей формы.
//
// Текстовые поля и цены доп. услуг хранятся строками как введены, поэтому
// промежуточный ввод цены вроде "12." доживает до сохранения.
// Себестоимость и цена продажи приводятся к сумме с двумя знаками.
type State struct {
	ID int64 `json:"id,omitempty"` // 0 у ещё не сохранённого бронирования

	// Contact
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ContactType  string `json:"contactType"`
	CustomerType string `json:"customerType"`

	// Traveller
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	PassportNumber string `json:"passportNumber"`
	PassportExpiry string `json:"passportExpiry"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"dateOfBirth"`

	// Itinerary
	TripType          string `json:"tripType"`
	TravelDate        string `json:"travelDate"`
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	ShowStopover      bool   `json:"showStopover"` // только видимость, значения пересадки не очищает
	StopoverLocation  string `json:"stopoverLocation"`
	StopoverArrival   string `json:"stopoverArrival"`
	StopoverDeparture string `json:"stopoverDeparture"`

	// Flight
	Airlines     string `json:"airlines"`
	FlightNumber string `json:"flightNumber"`
	FlightClass  string `json:"flightClass"`

	// Reference
	PNR           string `json:"pnr"`
	TicketNumber  string `json:"ticketNumber"`
	FrequentFlyer string `json:"frequentFlyer"`

	// Administrative
	Agency     string `json:"agency"`
	HandledBy  string `json:"handledBy"`
	Status     string `json:"status"`
	IssueMonth string `json:"issueMonth"`
	IssueDay   string `json:"issueDay"`
	IssueYear  string `json:"issueYear"`

	Addons map[domain.Addon]bool   `json:"addons"`
	Prices map[domain.Addon]string `json:"prices"`

	// Financials
	CostPrice     string `json:"costPrice"`
	SellingPrice  string `json:"sellingPrice"`
	PaymentStatus string `json:"paymentStatus"`
	Payment       string `json:"payment"`
}

// New возвращает пустую форму нового бронирования.
// Она же база, поверх которой Load накладывает сохранённую запись.
func New() State {
	return State{
		ContactType:   string(domain.DefaultPartyType),
		CustomerType:  string(domain.DefaultPartyType),
		Nationality:   domain.DefaultNationality,
		TripType:      string(domain.DefaultTripType),
		FlightClass:   string(domain.DefaultFlightClass),
		Agency:        domain.DefaultAgency,
		Status:        string(domain.DefaultStatus),
		Addons:        defaultAddons(),
		Prices:        defaultPrices(),
		CostPrice:     domain.DefaultAmount,
		SellingPrice:  domain.DefaultAmount,
		PaymentStatus: string(domain.DefaultPaymentStatus),
		Payment:       string(domain.DefaultPaymentStatus),
	}
}

// IsNew возвращает true, если бронирование ещё не сохранено
func (s State) IsNew() bool {
	return s.ID == 0
}

// Normalize дополняет addons и prices до полного набора ключей и убирает неизвестные.
// Нужен для состояния, пришедшего от клиента.
func Normalize(s State) State {
	out := s
	out.Addons = completeAddons(s.Addons)
	out.Prices = completePrices(s.Prices)
	return out
}

// clone копия без общих map с исходным состоянием
func (s State) clone() State {
	out := s
	out.Addons = make(map[domain.Addon]bool, len(s.Addons))
	for k, v := range s.Addons {
		out.Addons[k] = v
	}
	out.Prices = make(map[domain.Addon]string, len(s.Prices))
	for k, v := range s.Prices {
		out.Prices[k] = v
	}
	return out
}

func defaultAddons() map[domain.Addon]bool {
	m := make(map[domain.Addon]bool, len(domain.Addons))
	for _, a := range domain.Addons {
		m[a] = false
	}
	return m
}

func defaultPrices() map[domain.Addon]string {
	m := make(map[domain.Addon]string, len(domain.Addons))
	for _, a := range domain.Addons {
		m[a] = domain.DefaultAmount
	}
	return m
}

// completeAddons возвращает map ровно с известными ключами доп. услуг.
// Для nil возвращается полный map по умолчанию.
func completeAddons(in map[domain.Addon]bool) map[domain.Addon]bool {
	out := defaultAddons()
	for _, a := range domain.Addons {
		if v, ok := in[a]; ok {
			out[a] = v
		}
	}
	return out
}

// completePrices то же для цен
func completePrices(in map[domain.Addon]string) map[domain.Addon]string {
	out := defaultPrices()
	for _, a := range domain.Addons {
		if v, ok := in[a]; ok {
			out[a] = v
		}
	}
	return out
}
