package bookingform

import (
	"strconv"
	"time"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

// ToPersistedRecord переводит форму в запись хранилища.
//
// Значения по умолчанию подставляются в момент сохранения: пустой номер билета
// становится PNR + "01", пустые части даты выписки берутся из now.
// Значения перечислений не перепроверяются.
func ToPersistedRecord(s State, now time.Time) *domain.Booking {
	record := &domain.Booking{ID: s.ID}
	for i := range bindings {
		b := &bindings[i]
		*b.recordValue(record) = *b.formValue(&s)
	}

	record.Addons = completeAddons(s.Addons)
	record.Prices = completePrices(s.Prices)

	if record.TicketNumber == "" {
		record.TicketNumber = record.PNR + domain.TicketNumberSuffix
	}
	if record.IssueMonth == "" {
		record.IssueMonth = strconv.Itoa(int(now.Month()))
	}
	if record.IssueDay == "" {
		record.IssueDay = strconv.Itoa(now.Day())
	}
	if record.IssueYear == "" {
		record.IssueYear = strconv.Itoa(now.Year())
	}
	record.Payment = record.PaymentStatus

	return record
}
