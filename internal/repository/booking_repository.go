package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrBookingOverlap означает что интервал новой записи пересекается
// с существующей confirmed записью того же тренера на ту же дату
var ErrBookingOverlap = errors.New("booking interval overlaps an existing confirmed booking")

// код exclusion_violation у constraint bookings_no_overlap
const exclusionViolationCode = "23P01"

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// BookingFilter задаёт необязательные фильтры выборки записей
type BookingFilter struct {
	CoachID      *int64
	StudentEmail *string
	Date         *time.Time
	Status       *model.BookingStatus
	Limit        int
	Offset       int
}

const bookingColumns = `b.id, b.reference, b.student_id, b.coach_id, b.booking_date, b.start_minute, b.end_minute, b.class_type, b.status, b.notes, b.created_at, b.updated_at`

func scanBooking(row pgx.Row, withNames bool) (*model.Booking, error) {
	var b model.Booking
	dest := []interface{}{
		&b.ID,
		&b.Reference,
		&b.StudentID,
		&b.CoachID,
		&b.BookingDate,
		&b.StartMinute,
		&b.EndMinute,
		&b.ClassType,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &b.CoachName, &b.StudentName, &b.StudentEmail)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &b, nil
}

// InsertConfirmed атомарно создаёт confirmed запись.
// Проверка пересечений и вставка выполняются в одной транзакции под
// advisory-локом на пару (тренер, дата): конкурирующие записи к одному
// тренеру на одну дату сериализуются, записи к разным тренерам или на
// разные даты не конкурируют. Exclusion constraint в схеме страхует
// от пересечений на случай записи мимо этого метода.
func (r *BookingRepository) InsertConfirmed(ctx context.Context, booking *model.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock($1::int, hashtext($2::text))`,
		booking.CoachID, booking.BookingDate.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("acquire admission lock: %w", err)
	}

	var conflicts int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE coach_id = $1
		  AND booking_date = $2
		  AND status = 'confirmed'
		  AND start_minute < $4
		  AND end_minute > $3
	`, booking.CoachID, booking.BookingDate, booking.StartMinute, booking.EndMinute).Scan(&conflicts)
	if err != nil {
		return fmt.Errorf("check booking conflicts: %w", err)
	}

	if conflicts > 0 {
		return ErrBookingOverlap
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (reference, student_id, coach_id, booking_date, start_minute, end_minute, class_type, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'confirmed', $8)
		RETURNING id, status, created_at, updated_at
	`,
		booking.Reference,
		booking.StudentID,
		booking.CoachID,
		booking.BookingDate,
		booking.StartMinute,
		booking.EndMinute,
		booking.ClassType,
		booking.Notes,
	).Scan(&booking.ID, &booking.Status, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolationCode {
			return ErrBookingOverlap
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetConfirmed получает confirmed записи на дату,
// опционально отфильтрованные по тренеру
func (r *BookingRepository) GetConfirmed(ctx context.Context, date time.Time, coachID *int64) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `, c.name, s.name, s.email
		FROM bookings b
		JOIN coaches c ON b.coach_id = c.id
		JOIN students s ON b.student_id = s.id
		WHERE b.booking_date = $1 AND b.status = 'confirmed'
	`
	args := []interface{}{date}

	if coachID != nil {
		query += ` AND b.coach_id = $2`
		args = append(args, *coachID)
	}

	query += ` ORDER BY b.coach_id, b.start_minute`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get confirmed bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, true)
}

// List получает записи с фильтрами, новые первыми
func (r *BookingRepository) List(ctx context.Context, filter BookingFilter) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `, c.name, s.name, s.email
		FROM bookings b
		JOIN coaches c ON b.coach_id = c.id
		JOIN students s ON b.student_id = s.id
		WHERE 1=1
	`
	var args []interface{}

	if filter.CoachID != nil {
		args = append(args, *filter.CoachID)
		query += fmt.Sprintf(" AND b.coach_id = $%d", len(args))
	}
	if filter.StudentEmail != nil {
		args = append(args, *filter.StudentEmail)
		query += fmt.Sprintf(" AND s.email = $%d", len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND b.booking_date = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND b.status = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY b.booking_date DESC, b.start_minute DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, true)
}

// GetByID получает запись по ID вместе с данными тренера и студента
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `, c.name, s.name, s.email
		FROM bookings b
		JOIN coaches c ON b.coach_id = c.id
		JOIN students s ON b.student_id = s.id
		WHERE b.id = $1
	`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// GetUpcomingByCoachID получает будущие confirmed записи тренера
func (r *BookingRepository) GetUpcomingByCoachID(ctx context.Context, coachID int64, after time.Time, afterMinute int, limit int) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `, c.name, s.name, s.email
		FROM bookings b
		JOIN coaches c ON b.coach_id = c.id
		JOIN students s ON b.student_id = s.id
		WHERE b.coach_id = $1
		  AND b.status = 'confirmed'
		  AND (b.booking_date > $2 OR (b.booking_date = $2 AND b.start_minute > $3))
		ORDER BY b.booking_date, b.start_minute
		LIMIT $4
	`

	rows, err := r.pool.Query(ctx, query, coachID, after, afterMinute, limit)
	if err != nil {
		return nil, fmt.Errorf("get upcoming bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows, true)
}

// UpdateStatus обновляет статус записи, опционально вместе с заметками
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus, notes *string) error {
	query := `
		UPDATE bookings
		SET status = $1, notes = COALESCE($2, notes), updated_at = NOW()
		WHERE id = $3
	`

	tag, err := r.pool.Exec(ctx, query, status, notes, id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Cancel отменяет confirmed запись
func (r *BookingRepository) Cancel(ctx context.Context, id int64) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func collectBookings(rows pgx.Rows, withNames bool) ([]*model.Booking, error) {
	var bookings []*model.Booking
	for rows.Next() {
		b, err := scanBooking(rows, withNames)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
