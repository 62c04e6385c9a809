// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"pitchside/database"
	"pitchside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the given id.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotTaken is returned when an insert loses to an occupying
	// booking, either in the transactional overlap check or on the
	// unique index.
	ErrSlotTaken = errors.New("time slot is already booked")
)

// BookingRepository is the data access contract for bookings.
type BookingRepository interface {
	// CreateIfFree inserts the booking inside a transaction after
	// re-checking that no occupying booking for the same coach and date
	// overlaps it. Returns ErrSlotTaken when the slot is held.
	CreateIfFree(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateFields(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, int64, error)
	// FindOccupying returns all pending/confirmed bookings for a coach
	// on a date, ascending by start time.
	FindOccupying(ctx context.Context, coachID, date string) ([]models.Booking, error)
	// CountOverlapping counts occupying bookings for coachID/date whose
	// interval overlaps [start, end). excludeID, when non-empty, leaves
	// that booking out of the count.
	CountOverlapping(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
