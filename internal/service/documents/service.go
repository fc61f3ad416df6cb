package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/internal/domain/bookingform"
	bookingRepo "github.com/m04kA/SkyTrips-AdminService/internal/infra/storage/booking"
)

// Kind тип документа по бронированию
type Kind string

const (
	KindTicket  Kind = "ticket"
	KindInvoice Kind = "invoice"
)

// ContentTypePDF MIME тип документов
const ContentTypePDF = "application/pdf"

// Document сформированный файл
type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Service формирует PDF билета и счёта по сохранённому бронированию
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса документов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Generate формирует документ указанного типа
func (s *Service) Generate(ctx context.Context, id int64, kind Kind) (*Document, error) {
	s.logger.Info("Generate: %s for booking id=%d", kind, id)

	if kind != KindTicket && kind != KindInvoice {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Generate: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Generate: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}

	var doc *Document
	switch kind {
	case KindTicket:
		doc, err = s.buildTicket(booking)
	case KindInvoice:
		doc, err = s.buildInvoice(booking)
	}
	if err != nil {
		s.logger.Error("Generate: failed to render %s for booking id=%d: %v", kind, id, err)
		return nil, fmt.Errorf("%w: render %s: %v", ErrInternal, kind, err)
	}

	return doc, nil
}

func (s *Service) buildTicket(b *domain.Booking) (*Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := ticketLines(b)

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this e-ticket together with a valid passport at check-in.", "", "", false)

	return output(pdf, fmt.Sprintf("TICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.PNR)))
}

// ticketLines строки билета; у отменённого бронирования первой идёт отметка об отмене
func ticketLines(b *domain.Booking) []string {
	lines := make([]string, 0, 16)
	if b.IsCancelled() {
		lines = append(lines, "*** CANCELLED - NOT VALID FOR TRAVEL ***")
	}
	lines = append(lines,
		"Agency        : "+safe(b.Agency, domain.DefaultAgency),
		"Passenger     : "+safe(b.TravellerName(), "-"),
		"Passport      : "+safe(b.PassportNumber, "-"),
		"PNR           : "+safe(strings.ToUpper(b.PNR), "-"),
		"Ticket number : "+safe(b.TicketNumber, "-"),
		"Airline       : "+safe(b.Airlines, "-")+" "+b.FlightNumber,
		"Class         : "+safe(string(b.FlightClass), "-"),
		"Trip          : "+safe(string(b.TripType), "-"),
		"From          : "+safe(b.Origin, "-"),
		"To            : "+safe(b.Destination, "-"),
		"Travel date   : "+safe(b.TravelDate, "-"),
	)
	if b.StopoverLocation != "" {
		lines = append(lines, fmt.Sprintf("Stopover      : %s (%s - %s)",
			b.StopoverLocation, safe(b.StopoverArrival, "-"), safe(b.StopoverDeparture, "-")))
	}
	if b.FrequentFlyer != "" {
		lines = append(lines, "Frequent flyer: "+b.FrequentFlyer)
	}
	return append(lines, "Status        : "+safe(string(b.Status), "-"))
}

func (s *Service) buildInvoice(b *domain.Booking) (*Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice no : INV-%06d", b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+s.timeProvider.Now().Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued by  : "+safe(b.Agency, domain.DefaultAgency))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Bill to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+safe(b.TravellerName(), "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+safe(b.Email, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Phone : "+safe(b.Phone, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range invoiceLines(b) {
		invoiceRow(pdf, line.Description, bookingform.FormatAmount(line.Amount))
	}

	totals := bookingform.RecordTotals(b)
	pdf.Ln(4)
	pdf.Cell(0, 7, "Add-ons subtotal: "+totals.AddonsSubtotal)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+totals.GrandTotal)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment status: "+safe(string(b.PaymentStatus), "-"), "", "", false)

	return output(pdf, fmt.Sprintf("INVOICE_%d_%s.pdf", b.ID, safeFilenamePart(b.TravellerName())))
}

type invoiceLine struct {
	Description string
	Amount      decimal.Decimal
}

// invoiceLines строки счёта: перелёт и каждая доп. услуга с ненулевой ценой.
// Невыбранные услуги с ценой входят в итог и выводятся с пометкой.
func invoiceLines(b *domain.Booking) []invoiceLine {
	fare := fmt.Sprintf("Flight %s %s, %s - %s, %s (PNR %s)",
		safe(b.Airlines, "-"), b.FlightNumber, safe(b.Origin, "-"), safe(b.Destination, "-"),
		safe(b.TravelDate, "-"), safe(strings.ToUpper(b.PNR), "-"))

	lines := []invoiceLine{{Description: fare, Amount: bookingform.ParseAmount(b.SellingPrice)}}
	for _, addon := range domain.Addons {
		amount := bookingform.ParseAmount(b.Prices[addon])
		if amount.IsZero() {
			continue
		}
		description := "Add-on: " + string(addon)
		if !b.Addons[addon] {
			description += " (not selected)"
		}
		lines = append(lines, invoiceLine{Description: description, Amount: amount})
	}
	return lines
}

func invoiceRow(pdf *gofpdf.Fpdf, description, amount string) {
	pdf.CellFormat(150, 7, description, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, amount, "", 1, "R", false, 0, "")
}

func output(pdf *gofpdf.Fpdf, filename string) (*Document, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Document{
		Filename:    filename,
		ContentType: ContentTypePDF,
		Content:     buf.Bytes(),
	}, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "booking"
	}
	return s
}
