package documents

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	bookingRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/booking"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newService(repo BookingRepository) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTime{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	return svc
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:                 42,
		TravellerFirstName: "Sita",
		TravellerLastName:  "Sharma",
		Email:              "sita@example.com",
		Origin:             "KTM",
		Destination:        "DXB",
		StopoverLocation:   "DOH",
		Airlines:           "Qatar Airways",
		FlightNumber:       "QR 651",
		FlightClass:        domain.ClassEconomy,
		PNR:                "ab12cd",
		TicketNumber:       "ab12cd01",
		Status:             domain.StatusConfirmed,
		SellingPrice:       "700",
		PaymentStatus:      domain.PaymentPaid,
		Addons:             map[domain.Addon]bool{domain.AddonMeals: true},
		Prices:             map[domain.Addon]string{domain.AddonMeals: "15"},
	}
}

func TestGenerate_Ticket(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)

	doc, err := newService(repo).Generate(context.Background(), 42, KindTicket)
	require.NoError(t, err)

	assert.Equal(t, "TICKET_42_ab12cd.pdf", doc.Filename)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))
	repo.AssertExpectations(t)
}

func TestGenerate_Invoice(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(sampleBooking(), nil)

	doc, err := newService(repo).Generate(context.Background(), 42, KindInvoice)
	require.NoError(t, err)

	assert.Equal(t, "INVOICE_42_Sita_Sharma.pdf", doc.Filename)
	assert.True(t, bytes.HasPrefix(doc.Content, []byte("%PDF")))
}

func TestGenerate_Errors(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, errors.New("connection reset"))
	svc := newService(repo)

	_, err := svc.Generate(context.Background(), 1, KindTicket)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.Generate(context.Background(), 2, KindInvoice)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Generate(context.Background(), 3, Kind("receipt"))
	assert.ErrorIs(t, err, ErrUnknownKind)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, int64(3))
}

func TestInvoiceLines_SumToTotal(t *testing.T) {
	b := sampleBooking()
	b.Prices[domain.AddonLuggage] = "25.50"
	b.Prices[domain.AddonPickup] = "0.00"
	b.Prices["spa"] = "5"

	lines := invoiceLines(b)

	require.Len(t, lines, 3)
	assert.Equal(t, "Add-on: meals", lines[1].Description)
	assert.Equal(t, "Add-on: luggage (not selected)", lines[2].Description)

	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Amount)
	}
	assert.Equal(t, "740.50", bookingform.RecordTotals(b).GrandTotal)
	assert.True(t, sum.Equal(bookingform.RecordGrandTotal(b)), "rows %s", sum)
}

func TestTicketLines_MarksCancelled(t *testing.T) {
	b := sampleBooking()
	assert.NotContains(t, ticketLines(b)[0], "CANCELLED")

	b.Status = domain.StatusCancelled
	lines := ticketLines(b)
	assert.Equal(t, "*** CANCELLED - NOT VALID FOR TRAVEL ***", lines[0])
	assert.Equal(t, "Status        : Cancelled", lines[len(lines)-1])
}

func TestSafeFilenamePart(t *testing.T) {
	assert.Equal(t, "booking", safeFilenamePart("  "))
	assert.Equal(t, "Ram_Bahadur", safeFilenamePart("Ram Bahadur"))
	assert.Equal(t, "a_b", safeFilenamePart("a/../b"))
}
