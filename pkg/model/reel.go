package model

import "time"

// Reel is a promotional video reference shown in the public gallery. Reels are
// created and deleted by the administrator and never mutated in between.
type Reel struct {
	ID        string    `json:"id" bson:"id"`
	URL       string    `json:"url" bson:"url"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// The url is stored opaquely; it is not validated as a reachable URL.
type ReelInput struct {
	URL   string `json:"url" validate:"required"`
	Title string `json:"title"`
}
