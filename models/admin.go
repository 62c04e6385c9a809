package models

import "time"

// Admin is a back-office account.
type Admin struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// AdminLoginInput is the admin login payload.
type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ReminderPayload is the asynq task body for booking reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	CoachID   string `json:"coachId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}
