package models

import "time"

// Program is a training programme offered by the academy.
type Program struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	AgeGroup      string    `bson:"age_group" json:"age_group"` // e.g. "U-12", "U-16", "Senior"
	Price         float64   `bson:"price" json:"price"`
	DurationWeeks int       `bson:"duration_weeks" json:"duration_weeks"`
	Schedule      string    `bson:"schedule" json:"schedule"` // free-text, e.g. "Mon/Wed/Fri evenings"
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ProgramInput is the admin create/update payload for a programme.
type ProgramInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	AgeGroup      string  `json:"age_group"`
	Price         float64 `json:"price"`
	DurationWeeks int     `json:"duration_weeks"`
	Schedule      string  `json:"schedule"`
	Active        *bool   `json:"active"`
}
