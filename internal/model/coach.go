package model

import "time"

// Coach представляет тренера студии
type Coach struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Background      string    `json:"martial_arts_background"`
	Specialties     []string  `json:"specialties"`      // упорядоченный список тегов
	YearsExperience int       `json:"years_experience"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	IsActive        bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Заполняется при запросе тренера с расписанием (не из БД)
	Availability []*AvailabilityWindow `json:"availability,omitempty"`
}
