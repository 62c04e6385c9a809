package models

import "time"

// Facility is a training facility shown on the marketing site.
type Facility struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Features    []string  `bson:"features,omitempty" json:"features,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// FacilityInput is the admin create/update payload for a facility.
type FacilityInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
}

// Testimonial is a quote from a student or parent.
type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Author    string    `bson:"author" json:"author"`
	Role      string    `bson:"role" json:"role"` // e.g. "Parent", "U-16 student"
	Quote     string    `bson:"quote" json:"quote"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Published bool      `bson:"published" json:"published"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// TestimonialInput is the admin create/update payload for a testimonial.
type TestimonialInput struct {
	Author    string `json:"author" binding:"required"`
	Role      string `json:"role"`
	Quote     string `json:"quote" binding:"required"`
	Rating    int    `json:"rating" binding:"min=1,max=5"`
	Published *bool  `json:"published"`
}

// GalleryImage is a photo in the site gallery.
type GalleryImage struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Category  string    `bson:"category" json:"category"` // e.g. "matches", "training", "events"
	ImageURL  string    `bson:"image_url" json:"image_url"`
	PublicID  string    `bson:"public_id,omitempty" json:"-"` // cloudinary identifier
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// GalleryImageInput is the admin create/update payload for a gallery image.
type GalleryImageInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	ImageURL string `json:"image_url" binding:"required"`
	PublicID string `json:"public_id"`
}

// Achievement is a notable academy result (trophies, selections).
type Achievement struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Year        int       `bson:"year" json:"year"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// AchievementInput is the admin create/update payload for an achievement.
type AchievementInput struct {
	Title       string `json:"title" binding:"required"`
	Year        int    `json:"year"`
	Description string `json:"description"`
}
