package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения unique constraint
const uniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"client_id",
	"stylist_id",
	"service_id",
	"appointment_date",
	"start_time",
	"status",
	"service_name",
	"service_price",
	"service_duration_minutes",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на услуги
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Уникальность слота (stylist_id, appointment_date, start_time) для неотменённых
// записей защищена двумя механизмами:
// - проверкой занятости в сериализуемой транзакции (usecase уровень)
// - частичным unique-индексом в БД; нарушение маппится в ErrSlotTaken
// Создание атомарно: либо запись вставлена целиком, либо возвращается ошибка
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"stylist_id",
			"service_id",
			"appointment_date",
			"start_time",
			"status",
			"service_name",
			"service_price",
			"service_duration_minutes",
			"notes",
		).
		Values(
			appt.ClientID,
			appt.StylistID,
			appt.ServiceID,
			appt.AppointmentDate,
			appt.StartTime,
			appt.Status,
			appt.ServiceName,
			appt.ServicePrice,
			appt.ServiceDurationMinutes,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetActiveByStylistAndDate получает все неотменённые записи стилиста на дату
// Внутри транзакции добавляет FOR UPDATE для блокировки на время проверки слота
func (r *Repository) GetActiveByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	// Блокируем строки при проверке занятости слота в транзакции создания записи
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStylistAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStylistAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByClientID получает записи клиента, опционально фильтруя по статусу
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return r.list(ctx, "GetByClientID", squirrel.Eq{"client_id": clientID}, status)
}

// GetByStylistID получает записи стилиста, опционально фильтруя по статусу
func (r *Repository) GetByStylistID(ctx context.Context, stylistID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	return r.list(ctx, "GetByStylistID", squirrel.Eq{"stylist_id": stylistID}, status)
}

// GetByDate получает все записи на дату (дневная ведомость для администратора)
func (r *Repository) GetByDate(ctx context.Context, date time.Time, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"appointment_date": date}).
		OrderBy("start_time ASC, stylist_id ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// list общий код списочных запросов по одному условию
func (r *Repository) list(ctx context.Context, op string, where squirrel.Eq, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		OrderBy("appointment_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// UpdateStatusFrom атомарно переводит запись из ожидаемого статуса в новый
// (compare-and-set). Если запись не в ожидаемом статусе, возвращает
// ErrStatusConflict; если записи нет - ErrAppointmentNotFound
func (r *Repository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет записи" и "статус изменился конкурентно"
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			if errors.Is(getErr, ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return getErr
		}
		return ErrStatusConflict
	}

	return nil
}

// Delete физически удаляет запись (только для администратора)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну запись
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientID,
		&appt.StylistID,
		&appt.ServiceID,
		&appt.AppointmentDate,
		&appt.StartTime,
		&appt.Status,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.ServiceDurationMinutes,
		&appt.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
