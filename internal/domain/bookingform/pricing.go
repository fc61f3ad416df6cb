package bookingform

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// Totals вычисляемые итоги формы, никогда не сохраняются
type Totals struct {
	AddonsSubtotal string `json:"addonsSubtotal"`
	GrandTotal     string `json:"grandTotal"`
}

// ParseAmount разбирает денежную строку. Некорректные и отрицательные значения дают ноль.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount форматирует сумму ровно с двумя знаками после запятой
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// AddonsSubtotal сумма цен всех доп. услуг
func AddonsSubtotal(s State) decimal.Decimal {
	return sumPrices(s.Prices)
}

// GrandTotal цена продажи плюс сумма доп. услуг
func GrandTotal(s State) decimal.Decimal {
	return ParseAmount(s.SellingPrice).Add(AddonsSubtotal(s))
}

// ComputeTotals итоги формы в виде строк
func ComputeTotals(s State) Totals {
	return Totals{
		AddonsSubtotal: FormatAmount(AddonsSubtotal(s)),
		GrandTotal:     FormatAmount(GrandTotal(s)),
	}
}

// RecordTotals итоги сохранённой записи по тем же правилам, что и для формы.
// Цены с ключами вне списка доп. услуг не учитываются, как и при Load.
func RecordTotals(b *domain.Booking) Totals {
	subtotal := sumPrices(completePrices(b.Prices))
	return Totals{
		AddonsSubtotal: FormatAmount(subtotal),
		GrandTotal:     FormatAmount(ParseAmount(b.SellingPrice).Add(subtotal)),
	}
}

// RecordGrandTotal итог записи без форматирования
func RecordGrandTotal(b *domain.Booking) decimal.Decimal {
	return ParseAmount(b.SellingPrice).Add(sumPrices(completePrices(b.Prices)))
}

func sumPrices(prices map[domain.Addon]string) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(ParseAmount(p))
	}
	return sum
}
