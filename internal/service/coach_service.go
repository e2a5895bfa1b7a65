package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"github.com/Freeeeeet/studio_booking/internal/repository/base"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CoachService struct {
	coachStore CoachStore
	availStore AvailabilityStore
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewCoachService(coachStore CoachStore, availStore AvailabilityStore, logger *zap.Logger) *CoachService {
	return &CoachService{
		coachStore: coachStore,
		availStore: availStore,
		validate:   validator.New(),
		logger:     logger,
	}
}

// List возвращает всех активных тренеров, отсортированных по имени
func (s *CoachService) List(ctx context.Context) ([]*model.Coach, error) {
	coaches, err := s.coachStore.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coaches: %w", err)
	}
	if coaches == nil {
		coaches = []*model.Coach{}
	}
	return coaches, nil
}

// Get возвращает активного тренера вместе с его окнами доступности
func (s *CoachService) Get(ctx context.Context, id int64) (*model.Coach, error) {
	coach, err := s.coachStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	if coach == nil {
		return nil, ErrNotFound
	}

	windows, err := s.availStore.GetActiveByCoachID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coach availability: %w", err)
	}
	if windows == nil {
		windows = []*model.AvailabilityWindow{}
	}
	coach.Availability = windows

	return coach, nil
}

// CreateCoachInput — запрос на создание тренера
type CreateCoachInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string
	Bio             string
	Background      string `validate:"required"`
	Specialties     []string
	YearsExperience int `validate:"gte=0"`
	PhotoURL        string
}

// Create создаёт нового тренера
func (s *CoachService) Create(ctx context.Context, input CreateCoachInput) (*model.Coach, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, validationErr(fe.Field(), fmt.Sprintf("failed on %q", fe.Tag()))
		}
		return nil, validationErr("", err.Error())
	}

	specialties := input.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	coach := &model.Coach{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Bio:             input.Bio,
		Background:      input.Background,
		Specialties:     specialties,
		YearsExperience: input.YearsExperience,
		PhotoURL:        input.PhotoURL,
	}

	if err := s.coachStore.Create(ctx, coach); err != nil {
		return nil, fmt.Errorf("create coach: %w", err)
	}

	s.logger.Info("Coach created",
		zap.Int64("coach_id", coach.ID),
		zap.String("name", coach.Name),
	)

	return coach, nil
}

// UpdateCoachInput — частичное обновление тренера, nil поля не меняются
type UpdateCoachInput struct {
	Name            *string
	Email           *string
	Phone           *string
	Bio             *string
	Background      *string
	Specialties     []string
	YearsExperience *int
	PhotoURL        *string
}

func (in UpdateCoachInput) empty() bool {
	return in.Name == nil && in.Email == nil && in.Phone == nil && in.Bio == nil &&
		in.Background == nil && in.Specialties == nil && in.YearsExperience == nil && in.PhotoURL == nil
}

// Update обновляет активного тренера
func (s *CoachService) Update(ctx context.Context, id int64, input UpdateCoachInput) (*model.Coach, error) {
	if input.empty() {
		return nil, validationErr("", "no fields to update")
	}

	coach, err := s.coachStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}
	if coach == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, validationErr("name", "must not be empty")
		}
		coach.Name = *input.Name
	}
	if input.Email != nil {
		if err := s.validate.Var(*input.Email, "required,email"); err != nil {
			return nil, validationErr("email", "must be a valid email address")
		}
		coach.Email = *input.Email
	}
	if input.Phone != nil {
		coach.Phone = *input.Phone
	}
	if input.Bio != nil {
		coach.Bio = *input.Bio
	}
	if input.Background != nil {
		if *input.Background == "" {
			return nil, validationErr("martial_arts_background", "must not be empty")
		}
		coach.Background = *input.Background
	}
	if input.Specialties != nil {
		coach.Specialties = input.Specialties
	}
	if input.YearsExperience != nil {
		if *input.YearsExperience < 0 {
			return nil, validationErr("years_experience", "must not be negative")
		}
		coach.YearsExperience = *input.YearsExperience
	}
	if input.PhotoURL != nil {
		coach.PhotoURL = *input.PhotoURL
	}

	if err := s.coachStore.Update(ctx, coach); err != nil {
		if base.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update coach: %w", err)
	}

	s.logger.Info("Coach updated", zap.Int64("coach_id", coach.ID))
	return coach, nil
}

// Remove выполняет мягкое удаление тренера.
// Его окна доступности перестают отдавать слоты вместе с ним.
func (s *CoachService) Remove(ctx context.Context, id int64) error {
	if err := s.coachStore.Deactivate(ctx, id); err != nil {
		if base.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("deactivate coach: %w", err)
	}

	s.logger.Info("Coach removed", zap.Int64("coach_id", id))
	return nil
}
