package domain

import "time"

type TourStatus string

const (
	TourStatusPublished   TourStatus = "published"
	TourStatusUnpublished TourStatus = "unpublished"
	TourStatusDraft       TourStatus = "draft"
)

func (s TourStatus) Valid() bool {
	switch s {
	case TourStatusPublished, TourStatusUnpublished, TourStatusDraft:
		return true
	}
	return false
}

type Tour struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Price               int64      `json:"price"`
	DepartureDate       time.Time  `json:"departure_date"`
	Status              TourStatus `json:"status"`
	MaxParticipants     int        `json:"max_participants"`
	CurrentParticipants int        `json:"current_participants"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (t *Tour) AvailableSeats() int {
	return t.MaxParticipants - t.CurrentParticipants
}

// TourSnapshot is the part of a tour frozen into a booking at reservation time.
type TourSnapshot struct {
	TourID        string
	Title         string
	Price         int64
	DepartureDate time.Time
}

type CreateTourInput struct {
	Title           string
	Price           int64
	DepartureDate   time.Time
	Status          TourStatus
	MaxParticipants int
}
