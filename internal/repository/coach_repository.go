package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoachRepository struct {
	pool *pgxpool.Pool
}

func NewCoachRepository(pool *pgxpool.Pool) *CoachRepository {
	return &CoachRepository{pool: pool}
}

const coachColumns = `id, name, email, phone, bio, background, specialties, years_experience, photo_url, is_active, created_at, updated_at`

func scanCoach(row pgx.Row) (*model.Coach, error) {
	var coach model.Coach
	err := row.Scan(
		&coach.ID,
		&coach.Name,
		&coach.Email,
		&coach.Phone,
		&coach.Bio,
		&coach.Background,
		&coach.Specialties,
		&coach.YearsExperience,
		&coach.PhotoURL,
		&coach.IsActive,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if coach.Specialties == nil {
		coach.Specialties = []string{}
	}
	return &coach, nil
}

// GetAllActive получает всех активных тренеров, отсортированных по имени
func (r *CoachRepository) GetAllActive(ctx context.Context) ([]*model.Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches
		WHERE is_active = TRUE
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get active coaches: %w", err)
	}
	defer rows.Close()

	var coaches []*model.Coach
	for rows.Next() {
		coach, err := scanCoach(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coach: %w", err)
		}
		coaches = append(coaches, coach)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coaches: %w", err)
	}

	return coaches, nil
}

// GetByID получает активного тренера по ID
func (r *CoachRepository) GetByID(ctx context.Context, id int64) (*model.Coach, error) {
	query := `
		SELECT ` + coachColumns + `
		FROM coaches
		WHERE id = $1 AND is_active = TRUE
	`

	coach, err := scanCoach(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get coach by id: %w", err)
	}

	return coach, nil
}

// Create создаёт нового тренера
func (r *CoachRepository) Create(ctx context.Context, coach *model.Coach) error {
	query := `
		INSERT INTO coaches (name, email, phone, bio, background, specialties, years_experience, photo_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		RETURNING id, is_active, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		coach.Name,
		coach.Email,
		coach.Phone,
		coach.Bio,
		coach.Background,
		coach.Specialties,
		coach.YearsExperience,
		coach.PhotoURL,
	).Scan(&coach.ID, &coach.IsActive, &coach.CreatedAt, &coach.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create coach: %w", err)
	}

	return nil
}

// Update обновляет поля активного тренера
func (r *CoachRepository) Update(ctx context.Context, coach *model.Coach) error {
	query := `
		UPDATE coaches
		SET name = $1, email = $2, phone = $3, bio = $4, background = $5, specialties = $6, years_experience = $7, photo_url = $8, updated_at = NOW()
		WHERE id = $9 AND is_active = TRUE
	`

	tag, err := r.pool.Exec(
		ctx, query,
		coach.Name,
		coach.Email,
		coach.Phone,
		coach.Bio,
		coach.Background,
		coach.Specialties,
		coach.YearsExperience,
		coach.PhotoURL,
		coach.ID,
	)
	if err != nil {
		return fmt.Errorf("update coach: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Deactivate выполняет мягкое удаление тренера
func (r *CoachRepository) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE coaches
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND is_active = TRUE
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deactivate coach: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
