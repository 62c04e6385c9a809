package models

import "time"

// Coach is a member of the academy's coaching staff.
type Coach struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Title           string    `bson:"title" json:"title"` // e.g. "Head Coach", "Batting Coach"
	Bio             string    `bson:"bio" json:"bio"`
	Specialty       string    `bson:"specialty" json:"specialty"` // batting, bowling, fielding, wicket-keeping
	ExperienceYears int       `bson:"experience_years" json:"experience_years"`
	PhotoURL        string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// CoachInput is the admin create/update payload for a coach.
type CoachInput struct {
	Name            string `json:"name" binding:"required"`
	Title           string `json:"title"`
	Bio             string `json:"bio"`
	Specialty       string `json:"specialty"`
	ExperienceYears int    `json:"experience_years"`
	PhotoURL        string `json:"photo_url"`
	Active          *bool  `json:"active"`
}
