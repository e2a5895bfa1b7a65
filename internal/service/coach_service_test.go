package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Freeeeeet/studio_booking/internal/model"
	"go.uber.org/zap"
)

func newCoachService(t *testing.T) (*CoachService, *mockCoachStore, *mockAvailabilityStore) {
	t.Helper()
	coaches := &mockCoachStore{}
	windows := &mockAvailabilityStore{}
	return NewCoachService(coaches, windows, zap.NewNop()), coaches, windows
}

func TestCoachList(t *testing.T) {
	svc, coaches, _ := newCoachService(t)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() on empty store = %v, want empty slice", got)
	}

	coaches.add(&model.Coach{Name: "Сергей Волков"})
	coaches.add(&model.Coach{Name: "Анна Петрова"})

	got, err = svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Анна Петрова" {
		t.Errorf("List() = %d coaches, first %q; want 2 sorted by name", len(got), got[0].Name)
	}
}

func TestCoachGetAttachesAvailability(t *testing.T) {
	svc, coaches, windows := newCoachService(t)
	coach := coaches.add(&model.Coach{Name: "Анна Петрова"})
	windows.add(&model.AvailabilityWindow{
		CoachID:      coach.ID,
		DayOfWeek:    1,
		StartMinute:  9 * 60,
		EndMinute:    11 * 60,
		SlotDuration: 60,
		IsActive:     true,
	})

	got, err := svc.Get(context.Background(), coach.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Availability) != 1 {
		t.Errorf("availability windows = %d, want 1", len(got.Availability))
	}

	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(999) error = %v, want ErrNotFound", err)
	}
}

func TestCoachCreate(t *testing.T) {
	svc, _, _ := newCoachService(t)

	input := CreateCoachInput{
		Name:       "Анна Петрова",
		Email:      "anna@example.com",
		Background: "КМС по боксу, 8 лет тренерского стажа",
	}

	coach, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if coach.ID == 0 {
		t.Error("coach id is not assigned")
	}
	if coach.Specialties == nil {
		t.Error("specialties = nil, want empty slice")
	}

	tests := []struct {
		name   string
		mutate func(*CreateCoachInput)
	}{
		{"missing name", func(in *CreateCoachInput) { in.Name = "" }},
		{"bad email", func(in *CreateCoachInput) { in.Email = "anna" }},
		{"missing background", func(in *CreateCoachInput) { in.Background = "" }},
		{"negative experience", func(in *CreateCoachInput) { in.YearsExperience = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := input
			tt.mutate(&bad)

			_, err := svc.Create(context.Background(), bad)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("Create() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCoachUpdate(t *testing.T) {
	svc, coaches, _ := newCoachService(t)
	coach := coaches.add(&model.Coach{
		Name:       "Анна Петрова",
		Email:      "anna@example.com",
		Background: "КМС по боксу",
	})

	// частичное обновление: остальные поля не меняются
	bio := "Чемпионка города 2019"
	years := 8
	got, err := svc.Update(context.Background(), coach.ID, UpdateCoachInput{
		Bio:             &bio,
		YearsExperience: &years,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if got.Bio != bio || got.YearsExperience != 8 {
		t.Errorf("updated coach = %+v", got)
	}
	if got.Name != "Анна Петрова" || got.Email != "anna@example.com" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	if _, err := svc.Update(context.Background(), coach.ID, UpdateCoachInput{}); err == nil {
		t.Error("Update() with no fields did not fail")
	}

	badEmail := "not-an-email"
	if _, err := svc.Update(context.Background(), coach.ID, UpdateCoachInput{Email: &badEmail}); err == nil {
		t.Error("Update() with bad email did not fail")
	}

	negative := -1
	if _, err := svc.Update(context.Background(), coach.ID, UpdateCoachInput{YearsExperience: &negative}); err == nil {
		t.Error("Update() with negative experience did not fail")
	}

	if _, err := svc.Update(context.Background(), 999, UpdateCoachInput{Bio: &bio}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(999) error = %v, want ErrNotFound", err)
	}
}

func TestCoachRemove(t *testing.T) {
	svc, coaches, _ := newCoachService(t)
	coach := coaches.add(&model.Coach{Name: "Анна Петрова"})

	if err := svc.Remove(context.Background(), coach.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	// деактивированный тренер пропадает из каталога
	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() after removal = %d coaches, want 0", len(got))
	}
	if _, err := svc.Get(context.Background(), coach.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after removal error = %v, want ErrNotFound", err)
	}

	// повторное удаление — not found
	if err := svc.Remove(context.Background(), coach.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Remove() error = %v, want ErrNotFound", err)
	}

	// обновление деактивированного тренера — not found
	bio := "bio"
	if _, err := svc.Update(context.Background(), coach.ID, UpdateCoachInput{Bio: &bio}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() after removal error = %v, want ErrNotFound", err)
	}
}
