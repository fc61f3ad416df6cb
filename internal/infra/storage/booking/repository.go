package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование и заполняет ID и временные метки
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	addons, err := encodeAddons(booking.Addons)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode addons: %v", ErrEncode, err)
	}
	prices, err := encodePrices(booking.Prices)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode prices: %v", ErrEncode, err)
	}

	cols := writableColumns()
	names := make([]string, 0, len(cols)+2)
	values := make([]interface{}, 0, len(cols)+2)
	for _, c := range cols {
		names = append(names, c.name)
		values = append(values, *c.field(booking))
	}
	names = append(psqlbuilder.QuoteAll(names), columnAddons, columnPrices)
	values = append(values, addons, prices)

	query, args, err := psqlbuilder.Insert(table).
		Columns(names...).
		Values(values...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(selectColumns()...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает страницу бронирований по возрастанию id и общее количество по фильтру
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int, error) {
	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count bookings: %v", ErrExecQuery, err)
	}

	selectBuilder := applyFilter(psqlbuilder.Select(selectColumns()...).From(table), filter).
		OrderBy("id ASC")
	if filter.PageSize > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.PageSize)).Offset(filter.Offset())
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Update перезаписывает все редактируемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	addons, err := encodeAddons(booking.Addons)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - encode addons: %v", ErrEncode, err)
	}
	prices, err := encodePrices(booking.Prices)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - encode prices: %v", ErrEncode, err)
	}

	updateBuilder := psqlbuilder.Update(table)
	for _, c := range writableColumns() {
		updateBuilder = updateBuilder.Set(psqlbuilder.Quote(c.name), *c.field(booking))
	}

	query, args, err := updateBuilder.
		Set(columnAddons, addons).
		Set(columnPrices, prices).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus количество бронирований по статусам.
// Бронирования без статуса попадают под пустой ключ.
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	statusExpr := coalesceText("status")
	query, args, err := psqlbuilder.Select(statusExpr, "COUNT(*)").
		From(table).
		GroupBy(statusExpr).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[domain.BookingStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountCreatedSince количество бронирований, созданных начиная с since
func (r *Repository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedSince - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// ListFinancials цена продажи и цены доп. услуг всех неотменённых бронирований
func (r *Repository) ListFinancials(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		coalesceText("sellingPrice"),
		fmt.Sprintf("COALESCE(%s, '{}')", columnPrices),
	).
		From(table).
		Where(squirrel.Or{
			squirrel.NotEq{psqlbuilder.Quote("status"): string(domain.StatusCancelled)},
			squirrel.Eq{psqlbuilder.Quote("status"): nil},
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFinancials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFinancials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		var prices []byte
		if err := rows.Scan(&b.SellingPrice, &prices); err != nil {
			return nil, fmt.Errorf("%w: ListFinancials - scan row: %v", ErrScanRow, err)
		}
		if b.Prices, err = decodePrices(prices); err != nil {
			return nil, fmt.Errorf("%w: ListFinancials - decode prices: %v", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFinancials - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// applyFilter добавляет условия фильтра к запросу
func applyFilter(sb squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{psqlbuilder.Quote("status"): string(*filter.Status)})
	}

	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		or := make(squirrel.Or, 0, len(searchColumns))
		for _, name := range searchColumns {
			or = append(or, squirrel.ILike{psqlbuilder.Quote(name): pattern})
		}
		sb = sb.Where(or)
	}

	return sb
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBooking сканирует строку в порядке selectColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var addons, prices []byte
	var createdAt, updatedAt sql.NullTime

	dest := make([]interface{}, 0, len(textColumns)+5)
	dest = append(dest, &booking.ID)
	for _, c := range textColumns {
		dest = append(dest, c.field(&booking))
	}
	dest = append(dest, &addons, &prices, &createdAt, &updatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if booking.Addons, err = decodeAddons(addons); err != nil {
		return nil, fmt.Errorf("decode addons: %w", err)
	}
	if booking.Prices, err = decodePrices(prices); err != nil {
		return nil, fmt.Errorf("decode prices: %w", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
