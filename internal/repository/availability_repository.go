package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityRepository управляет окнами доступности тренеров в базе данных
type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

// NewAvailabilityRepository создаёт новый репозиторий
func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

const availabilityColumns = `id, group_id, coach_id, day_of_week, start_minute, end_minute, slot_duration, is_active, created_at, updated_at`

func scanWindow(row pgx.Row) (*model.AvailabilityWindow, error) {
	var w model.AvailabilityWindow
	err := row.Scan(
		&w.ID,
		&w.GroupID,
		&w.CoachID,
		&w.DayOfWeek,
		&w.StartMinute,
		&w.EndMinute,
		&w.SlotDuration,
		&w.IsActive,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create создаёт новое окно доступности
func (r *AvailabilityRepository) Create(ctx context.Context, w *model.AvailabilityWindow) error {
	query := `
		INSERT INTO availability_windows (group_id, coach_id, day_of_week, start_minute, end_minute, slot_duration, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		w.GroupID,
		w.CoachID,
		w.DayOfWeek,
		w.StartMinute,
		w.EndMinute,
		w.SlotDuration,
		w.IsActive,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create availability window: %w", err)
	}

	return nil
}

// GetByID получает окно доступности по ID
func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*model.AvailabilityWindow, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_windows
		WHERE id = $1
	`

	w, err := scanWindow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability window by id: %w", err)
	}

	return w, nil
}

// GetActiveByCoachID получает все активные окна тренера
func (r *AvailabilityRepository) GetActiveByCoachID(ctx context.Context, coachID int64) ([]*model.AvailabilityWindow, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_windows
		WHERE coach_id = $1 AND is_active = TRUE
		ORDER BY day_of_week, start_minute
	`

	rows, err := r.pool.Query(ctx, query, coachID)
	if err != nil {
		return nil, fmt.Errorf("get availability by coach: %w", err)
	}
	defer rows.Close()

	return collectWindows(rows)
}

// GetActiveByWeekday получает активные окна на день недели,
// опционально отфильтрованные по тренеру
func (r *AvailabilityRepository) GetActiveByWeekday(ctx context.Context, dayOfWeek int, coachID *int64) ([]*model.AvailabilityWindow, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM availability_windows
		WHERE day_of_week = $1 AND is_active = TRUE
	`
	args := []interface{}{dayOfWeek}

	if coachID != nil {
		query += ` AND coach_id = $2`
		args = append(args, *coachID)
	}

	query += ` ORDER BY coach_id, start_minute`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get availability by weekday: %w", err)
	}
	defer rows.Close()

	return collectWindows(rows)
}

// Update обновляет поля активного окна доступности
func (r *AvailabilityRepository) Update(ctx context.Context, w *model.AvailabilityWindow) error {
	query := `
		UPDATE availability_windows
		SET day_of_week = $1, start_minute = $2, end_minute = $3, slot_duration = $4, updated_at = NOW()
		WHERE id = $5 AND is_active = TRUE
	`

	tag, err := r.pool.Exec(ctx, query, w.DayOfWeek, w.StartMinute, w.EndMinute, w.SlotDuration, w.ID)
	if err != nil {
		return fmt.Errorf("update availability window: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Deactivate выполняет мягкое удаление окна доступности
func (r *AvailabilityRepository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE availability_windows
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate availability window: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func collectWindows(rows pgx.Rows) ([]*model.AvailabilityWindow, error) {
	var windows []*model.AvailabilityWindow
	for rows.Next() {
		w, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan availability window: %w", err)
		}
		windows = append(windows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability windows: %w", err)
	}

	return windows, nil
}
