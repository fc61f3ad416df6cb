package booking

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/pkg/psqlbuilder"
)

const table = "bookings"

// JSONB колонки
const (
	columnAddons = "addons"
	columnPrices = "prices"
)

// column текстовая колонка таблицы bookings и поле записи
type column struct {
	name     string
	readOnly bool // только чтение (устаревшая колонка transit)
	field    func(b *domain.Booking) *string
}

// textColumns порядок колонок в SELECT, INSERT и UPDATE
var textColumns = []column{
	{name: "travellerFirstName", field: func(b *domain.Booking) *string { return &b.TravellerFirstName }},
	{name: "travellerLastName", field: func(b *domain.Booking) *string { return &b.TravellerLastName }},
	{name: "passportNumber", field: func(b *domain.Booking) *string { return &b.PassportNumber }},
	{name: "passportExpiry", field: func(b *domain.Booking) *string { return &b.PassportExpiry }},
	{name: "nationality", field: func(b *domain.Booking) *string { return &b.Nationality }},
	{name: "dob", field: func(b *domain.Booking) *string { return &b.DateOfBirth }},
	{name: "email", field: func(b *domain.Booking) *string { return &b.Email }},
	{name: "phone", field: func(b *domain.Booking) *string { return &b.Phone }},
	{name: "contactType", field: func(b *domain.Booking) *string { return (*string)(&b.ContactType) }},
	{name: "customerType", field: func(b *domain.Booking) *string { return (*string)(&b.CustomerType) }},
	{name: "tripType", field: func(b *domain.Booking) *string { return (*string)(&b.TripType) }},
	{name: "travelDate", field: func(b *domain.Booking) *string { return &b.TravelDate }},
	{name: "origin", field: func(b *domain.Booking) *string { return &b.Origin }},
	{name: "destination", field: func(b *domain.Booking) *string { return &b.Destination }},
	{name: "transit", readOnly: true, field: func(b *domain.Booking) *string { return &b.Transit }},
	{name: "stopoverLocation", field: func(b *domain.Booking) *string { return &b.StopoverLocation }},
	{name: "stopoverArrival", field: func(b *domain.Booking) *string { return &b.StopoverArrival }},
	{name: "stopoverDeparture", field: func(b *domain.Booking) *string { return &b.StopoverDeparture }},
	{name: "airlines", field: func(b *domain.Booking) *string { return &b.Airlines }},
	{name: "flightNumber", field: func(b *domain.Booking) *string { return &b.FlightNumber }},
	{name: "flightClass", field: func(b *domain.Booking) *string { return (*string)(&b.FlightClass) }},
	{name: "PNR", field: func(b *domain.Booking) *string { return &b.PNR }},
	{name: "ticketNumber", field: func(b *domain.Booking) *string { return &b.TicketNumber }},
	{name: "frequentFlyer", field: func(b *domain.Booking) *string { return &b.FrequentFlyer }},
	{name: "agency", field: func(b *domain.Booking) *string { return &b.Agency }},
	{name: "handledBy", field: func(b *domain.Booking) *string { return &b.HandledBy }},
	{name: "status", field: func(b *domain.Booking) *string { return (*string)(&b.Status) }},
	{name: "issueMonth", field: func(b *domain.Booking) *string { return &b.IssueMonth }},
	{name: "IssueDay", field: func(b *domain.Booking) *string { return &b.IssueDay }},
	{name: "issueYear", field: func(b *domain.Booking) *string { return &b.IssueYear }},
	{name: "buyingPrice", field: func(b *domain.Booking) *string { return &b.BuyingPrice }},
	{name: "sellingPrice", field: func(b *domain.Booking) *string { return &b.SellingPrice }},
	{name: "paymentStatus", field: func(b *domain.Booking) *string { return (*string)(&b.PaymentStatus) }},
	{name: "payment", field: func(b *domain.Booking) *string { return (*string)(&b.Payment) }},
}

// searchColumns колонки для поиска подстроки в списке
var searchColumns = []string{
	"travellerFirstName",
	"travellerLastName",
	"PNR",
	"ticketNumber",
	"airlines",
	"origin",
	"destination",
}

// selectColumns выражения SELECT в порядке сканирования scanBooking
func selectColumns() []string {
	cols := make([]string, 0, len(textColumns)+5)
	cols = append(cols, "id")
	for _, c := range textColumns {
		cols = append(cols, coalesceText(c.name))
	}
	cols = append(cols,
		fmt.Sprintf("COALESCE(%s, '{}')", columnAddons),
		fmt.Sprintf("COALESCE(%s, '{}')", columnPrices),
		"created_at",
		"updated_at",
	)
	return cols
}

// writableColumns имена колонок INSERT/UPDATE без JSONB
func writableColumns() []column {
	cols := make([]column, 0, len(textColumns))
	for _, c := range textColumns {
		if !c.readOnly {
			cols = append(cols, c)
		}
	}
	return cols
}

func coalesceText(name string) string {
	return fmt.Sprintf("COALESCE(%s, '')", psqlbuilder.Quote(name))
}

// encodeAddons сериализует map в строку JSON (lib/pq передаёт []byte как bytea)
func encodeAddons(addons map[domain.Addon]bool) (string, error) {
	if addons == nil {
		addons = map[domain.Addon]bool{}
	}
	data, err := json.Marshal(addons)
	return string(data), err
}

func encodePrices(prices map[domain.Addon]string) (string, error) {
	if prices == nil {
		prices = map[domain.Addon]string{}
	}
	data, err := json.Marshal(prices)
	return string(data), err
}

// decodeAddons принимает как булевы значения, так и строки "true"/"false".
// Нераспознанная строка пропускается: услуга без флага считается невыбранной.
func decodeAddons(data []byte) (map[domain.Addon]bool, error) {
	raw := map[string]interface{}{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	addons := make(map[domain.Addon]bool, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case bool:
			addons[domain.Addon(k)] = val
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(val))
			if err != nil {
				continue
			}
			addons[domain.Addon(k)] = parsed
		}
	}
	return addons, nil
}

// decodePrices принимает как строки, так и числа
func decodePrices(data []byte) (map[domain.Addon]string, error) {
	raw := map[string]interface{}{}
	if len(data) > 0 {
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	}

	prices := make(map[domain.Addon]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			prices[domain.Addon(k)] = val
		case json.Number:
			prices[domain.Addon(k)] = val.String()
		}
	}
	return prices, nil
}

// escapeLike экранирует спецсимволы шаблона ILIKE
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
