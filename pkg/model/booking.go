package model

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the three booking statuses. Nothing
// outside this set may ever be persisted.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// Booking is a client's shoot-scheduling request. The id is generated by the
// service at creation and is the sole lookup key; only the status field is
// mutable afterwards.
type Booking struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Phone           string    `json:"phone" bson:"phone"`
	PreferredDate   string    `json:"preferred_date" bson:"preferred_date"`
	PreferredTime   string    `json:"preferred_time" bson:"preferred_time"`
	EventType       string    `json:"event_type" bson:"event_type"`
	Location        string    `json:"location" bson:"location"`
	ImportantInfo   string    `json:"important_info" bson:"important_info"`
	SelectedPackage string    `json:"selected_package" bson:"selected_package"`
	Status          string    `json:"status" bson:"status"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// BookingInput is the public creation payload. Dates, times and phone numbers
// are accepted as opaque strings; unknown fields are ignored.
type BookingInput struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	PreferredDate   string `json:"preferred_date" validate:"required"`
	PreferredTime   string `json:"preferred_time" validate:"required"`
	EventType       string `json:"event_type" validate:"required"`
	Location        string `json:"location"`
	ImportantInfo   string `json:"important_info"`
	SelectedPackage string `json:"selected_package"`
}

type BookingStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed"`
}
