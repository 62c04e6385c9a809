package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Completed is terminal; cancelled is reachable from pending
// and confirmed only.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled || to == BookingCompleted
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	}
	return false
}

// Occupies reports whether a status counts toward conflict and
// availability computation.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

// Booking represents a coach session booking record.
// Times of day are zero-padded "HH:MM" strings, so lexicographic
// comparison agrees with chronological order.
type Booking struct {
	ID        string        `bson:"id" json:"id"`
	StudentID string        `bson:"student_id" json:"student_id"`
	ProgramID string        `bson:"program_id" json:"program_id"`
	CoachID   string        `bson:"coach_id" json:"coach_id"`
	Date      string        `bson:"date" json:"booking_date"` // "YYYY-MM-DD"
	StartTime string        `bson:"start_time" json:"start_time"`
	EndTime   string        `bson:"end_time" json:"end_time"`
	Status    BookingStatus `bson:"status" json:"status"`
	// Occupies mirrors Status.Occupies() so the partial unique index on
	// (coach_id, date, start_time) only covers slot-holding bookings.
	Occupies  bool      `bson:"occupies" json:"-"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingCreateInput is the public booking creation payload.
type BookingCreateInput struct {
	StudentID string `json:"student_id" binding:"required"`
	ProgramID string `json:"program_id" binding:"required"`
	CoachID   string `json:"coach_id" binding:"required"`
	Date      string `json:"booking_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
}

// BookingUpdateInput is the admin partial-update payload. Nil fields are
// left untouched.
type BookingUpdateInput struct {
	Status *BookingStatus `json:"status"`
	Notes  *string        `json:"notes"`
}

// BookingListFilter narrows booking listings. Zero values mean no filter.
type BookingListFilter struct {
	Status BookingStatus
	Date   string
	Page   int
	Limit  int
}
