package booking

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func rowColumns() []string {
	cols := []string{"id"}
	for _, c := range textColumns {
		cols = append(cols, c.name)
	}
	return append(cols, "addons", "prices", "created_at", "updated_at")
}

func bookingRows(t *testing.T, bookings ...*domain.Booking) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows(rowColumns())
	for _, b := range bookings {
		addons, err := json.Marshal(b.Addons)
		require.NoError(t, err)
		prices, err := json.Marshal(b.Prices)
		require.NoError(t, err)

		values := []driver.Value{b.ID}
		for _, c := range textColumns {
			values = append(values, *c.field(b))
		}
		values = append(values, addons, prices, b.CreatedAt, b.UpdatedAt)
		rows.AddRow(values...)
	}
	return rows
}

func sampleBooking() *domain.Booking {
	created := time.Date(2026, time.February, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:                 7,
		TravellerFirstName: "Sita",
		TravellerLastName:  "Sharma",
		PNR:                "ABC123",
		TicketNumber:       "ABC12301",
		IssueDay:           "12",
		TripType:           domain.TripOneWay,
		Status:             domain.StatusConfirmed,
		BuyingPrice:        "500.00",
		SellingPrice:       "700.00",
		Addons:             map[domain.Addon]bool{domain.AddonMeals: true},
		Prices:             map[domain.Addon]string{domain.AddonMeals: "15.00"},
		CreatedAt:          created,
		UpdatedAt:          created,
	}
}

func TestGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	want := sampleBooking()

	mock.ExpectQuery(regexp.QuoteMeta(`COALESCE("PNR", '')`) + `.*` + regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(bookingRows(t, want))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "Sita", got.TravellerFirstName)
	assert.Equal(t, "ABC123", got.PNR)
	assert.Equal(t, "12", got.IssueDay)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.Equal(t, "500.00", got.BuyingPrice)
	assert.True(t, got.Addons[domain.AddonMeals])
	assert.Equal(t, "15.00", got.Prices[domain.AddonMeals])
	assert.Equal(t, want.CreatedAt, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(rowColumns()))

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, time.March, 7, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO bookings \(.*"PNR".*"IssueDay".*"buyingPrice".*addons,prices\) VALUES .* RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), created, created))

	b := sampleBooking()
	b.ID = 0
	got, err := repo.Create(context.Background(), b)
	require.NoError(t, err)

	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, created, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DoesNotWriteTransit(t *testing.T) {
	for _, c := range writableColumns() {
		assert.NotEqual(t, "transit", c.name)
	}
}

func TestUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)
	updated := time.Date(2026, time.March, 8, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE bookings SET "travellerFirstName" = \$1.*updated_at = NOW\(\) WHERE id = \$\d+ RETURNING created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(updated, updated))

	got, err := repo.Update(context.Background(), sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, updated, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`UPDATE bookings SET`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.ErrorIs(t, repo.Delete(context.Background(), 4), ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_FilterAndPagination(t *testing.T) {
	repo, mock := newMockRepo(t)
	status := domain.StatusPending
	filter := domain.BookingsFilter{Page: 2, PageSize: 10, Search: "abc", Status: &status}

	args := []driver.Value{"Pending"}
	for range searchColumns {
		args = append(args, "%abc%")
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE "status" = \$1 AND \("travellerFirstName" ILIKE \$2 OR`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery(`FROM bookings WHERE "status" = \$1 AND \(.*\) ORDER BY id ASC LIMIT 10 OFFSET 10`).
		WithArgs(args...).
		WillReturnRows(bookingRows(t, sampleBooking()))

	items, total, err := repo.List(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, 11, total)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_NoFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings ORDER BY id ASC LIMIT 10 OFFSET 0")).
		WillReturnRows(sqlmock.NewRows(rowColumns()))

	items, total, err := repo.List(context.Background(), domain.BookingsFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)

	assert.Zero(t, total)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY COALESCE("status", '')`)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Confirmed", 3).
			AddRow("Pending", 2))

	counts, err := repo.CountByStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, counts[domain.StatusConfirmed])
	assert.Equal(t, 2, counts[domain.StatusPending])
	assert.Zero(t, counts[domain.StatusCancelled])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountCreatedSince(t *testing.T) {
	repo, mock := newMockRepo(t)
	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE created_at >= $1")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountCreatedSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFinancials(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE ("status" <> $1 OR "status" IS NULL)`)).
		WithArgs("Cancelled").
		WillReturnRows(sqlmock.NewRows([]string{"sellingPrice", "prices"}).
			AddRow("700.00", []byte(`{"meals":"15.00","luggage":5}`)))

	items, err := repo.ListFinancials(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "700.00", items[0].SellingPrice)
	assert.Equal(t, "15.00", items[0].Prices[domain.AddonMeals])
	assert.Equal(t, "5", items[0].Prices[domain.AddonLuggage])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecodeAddons_AcceptsStrings(t *testing.T) {
	addons, err := decodeAddons([]byte(`{"meals":"true","pickup":false,"dropoff":true}`))
	require.NoError(t, err)

	assert.True(t, addons[domain.AddonMeals])
	assert.False(t, addons[domain.AddonPickup])
	assert.True(t, addons[domain.AddonDropoff])

	_, err = decodeAddons([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeAddons_MalformedFlagIsNotSelected(t *testing.T) {
	addons, err := decodeAddons([]byte(`{"meals":"yes","pickup":" true ","luggage":null}`))
	require.NoError(t, err)

	_, ok := addons[domain.AddonMeals]
	assert.False(t, ok)
	assert.True(t, addons[domain.AddonPickup])
	_, ok = addons[domain.AddonLuggage]
	assert.False(t, ok)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off`, escapeLike("50%_off"))
}
