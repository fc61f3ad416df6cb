package customer

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SkyTrips-AdminService/internal/domain"
	"github.com/m04kA/SkyTrips-AdminService/pkg/psqlbuilder"
)

const table = "customers"

var searchColumns = []string{"firstName", "lastName", "email", "phone"}

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query, args, err := psqlbuilder.Select(selectColumns()...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	customer, err := scanCustomer(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %v", ErrScanRow, err)
	}

	return customer, nil
}

// List возвращает страницу клиентов по возрастанию id и общее количество по фильтру
func (r *Repository) List(ctx context.Context, filter domain.CustomersFilter) ([]*domain.Customer, int, error) {
	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count customers: %v", ErrExecQuery, err)
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

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, customer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return customers, total, nil
}

// Count общее количество клиентов
func (r *Repository) Count(ctx context.Context) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// Delete удаляет клиента
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
		return ErrCustomerNotFound
	}

	return nil
}

func applyFilter(sb squirrel.SelectBuilder, filter domain.CustomersFilter) squirrel.SelectBuilder {
	if filter.Search == "" {
		return sb
	}

	pattern := "%" + strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(filter.Search) + "%"
	or := make(squirrel.Or, 0, len(searchColumns))
	for _, name := range searchColumns {
		or = append(or, squirrel.ILike{psqlbuilder.Quote(name): pattern})
	}
	return sb.Where(or)
}

// selectColumns порядок колонок соответствует scanCustomer
func selectColumns() []string {
	text := func(name string) string {
		return fmt.Sprintf("COALESCE(%s, '')", psqlbuilder.Quote(name))
	}
	return []string{
		"id",
		text("firstName"),
		text("lastName"),
		text("email"),
		text("phone"),
		text("phoneCountryCode"),
		text("dateOfBirth"),
		text("gender"),
		text("userType"),
		text("country"),
		"COALESCE(address::text, '')",
		"COALESCE(passport::text, '')",
		"COALESCE(\"isActive\"::text, '')",
		"COALESCE(\"isDisabled\"::text, '')",
		"COALESCE(\"isVerified\"::text, '')",
		text("socialProvider"),
		text("socialId"),
		text("referralCode"),
		"created_at",
	}
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var address, passport string
	var isActive, isDisabled, isVerified string
	var createdAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.PhoneCountryCode,
		&c.DateOfBirth,
		&c.Gender,
		&c.UserType,
		&c.Country,
		&address,
		&passport,
		&isActive,
		&isDisabled,
		&isVerified,
		&c.SocialProvider,
		&c.SocialID,
		&c.ReferralCode,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeJSONObject(address, &c.Address); err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	if err := decodeJSONObject(passport, &c.Passport); err != nil {
		return nil, fmt.Errorf("decode passport: %w", err)
	}

	c.IsActive = parseFlag(isActive)
	c.IsDisabled = parseFlag(isDisabled)
	c.IsVerified = parseFlag(isVerified)
	c.CreatedAt = createdAt.Time

	return &c, nil
}

// decodeJSONObject разбирает объект, в том числе сохранённый как JSON-строка с объектом внутри
func decodeJSONObject(raw string, dst interface{}) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err != nil {
			return err
		}
		return decodeJSONObject(inner, dst)
	}

	return json.Unmarshal([]byte(raw), dst)
}

// parseFlag флаги хранятся строками "true"/"false"
func parseFlag(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
