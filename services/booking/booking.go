// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"

	bookingRepo "pitchside/database/repository/booking"
	"pitchside/models"
	"pitchside/utils"

	"go.uber.org/zap"
)

// SlotTakenMessage is the user-facing conflict message.
const SlotTakenMessage = "Time slot is already booked"

// BookingService owns the booking lifecycle: slot availability,
// conflict detection and status transitions.
type BookingService interface {
	AvailableSlots(ctx context.Context, coachID, date string) ([]models.Slot, error)
	CheckConflict(ctx context.Context, coachID, date, start, end string) (bool, error)
	Create(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, models.Pagination, error)
	Update(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error)
	Cancel(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService is the concrete implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Grid      models.SlotGrid
	Reminders ReminderScheduler // nil disables reminder scheduling
}

// AvailableSlots computes the bookable slots for a coach on a date:
// the configured candidate grid minus everything overlapping an
// occupying booking. Recomputed fresh on every call.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, coachID, date string) ([]models.Slot, error) {
	if coachID == "" {
		return nil, utils.ValidationError("coach_id is required")
	}
	if date == "" {
		return nil, utils.ValidationError("date is required")
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, utils.ValidationError(err.Error())
	}

	booked, err := s.Repo.FindOccupying(ctx, coachID, date)
	if err != nil {
		return nil, utils.StoreError("failed to load bookings", err)
	}
	return filterAvailable(candidateSlots(s.Grid), booked), nil
}

// CheckConflict reports whether [start, end) overlaps any occupying
// booking for the coach on the date. Read-only.
func (s *DefaultBookingService) CheckConflict(ctx context.Context, coachID, date, start, end string) (bool, error) {
	n, err := s.Repo.CountOverlapping(ctx, coachID, date, start, end, "")
	if err != nil {
		return false, utils.StoreError("failed to check conflicts", err)
	}
	return n > 0, nil
}

func (s *DefaultBookingService) Create(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error) {
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	conflict, err := s.CheckConflict(ctx, in.CoachID, in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, utils.ConflictError(SlotTakenMessage)
	}

	b := &models.Booking{
		StudentID: in.StudentID,
		ProgramID: in.ProgramID,
		CoachID:   in.CoachID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Status:    models.BookingPending,
		Notes:     in.Notes,
	}
	// The repository re-checks inside a transaction; a concurrent
	// winner surfaces as ErrSlotTaken here rather than a double insert.
	if err := s.Repo.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, utils.ConflictError(SlotTakenMessage)
		}
		return nil, utils.StoreError("failed to create booking", err)
	}

	zap.L().Info("booking created",
		zap.String("id", b.ID),
		zap.String("coach_id", b.CoachID),
		zap.String("date", b.Date),
		zap.String("start_time", b.StartTime),
	)
	return b, nil
}

func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NotFoundError("booking", id)
		}
		return nil, utils.StoreError("failed to load booking", err)
	}
	return b, nil
}

func (s *DefaultBookingService) List(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Status != "" && !models.ValidStatus(filter.Status) {
		return nil, models.Pagination{}, utils.ValidationError("unknown status filter")
	}

	bookings, total, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, utils.StoreError("failed to list bookings", err)
	}
	return bookings, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Update applies a partial status/notes change. Status changes go
// through the transition table; illegal moves fail with InvalidState.
func (s *DefaultBookingService) Update(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		if !models.ValidStatus(*in.Status) {
			return nil, utils.ValidationError("unknown booking status")
		}
		if !models.CanTransition(current.Status, *in.Status) {
			return nil, utils.InvalidStateError("cannot move booking from " + string(current.Status) + " to " + string(*in.Status))
		}
	}

	updated, err := s.Repo.UpdateFields(ctx, id, in.Status, in.Notes)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NotFoundError("booking", id)
		}
		return nil, utils.StoreError("failed to update booking", err)
	}

	if in.Status != nil && *in.Status == models.BookingConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, updated); err != nil {
			zap.L().Warn("failed to schedule booking reminder", zap.String("id", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}

// Cancel sets a booking to cancelled. Completed bookings are terminal
// and refuse cancellation.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == models.BookingCompleted {
		return nil, utils.InvalidStateError("completed bookings cannot be cancelled")
	}

	cancelled := models.BookingCancelled
	updated, err := s.Repo.UpdateFields(ctx, id, &cancelled, nil)
	if err != nil {
		return nil, utils.StoreError("failed to cancel booking", err)
	}
	return updated, nil
}

func validateCreateInput(in models.BookingCreateInput) error {
	if in.StudentID == "" || in.ProgramID == "" || in.CoachID == "" ||
		in.Date == "" || in.StartTime == "" || in.EndTime == "" {
		return utils.ValidationError("student_id, program_id, coach_id, booking_date, start_time and end_time are required")
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return utils.ValidationError(err.Error())
	}
	if _, err := utils.ParseClock(in.StartTime); err != nil {
		return utils.ValidationError(err.Error())
	}
	if _, err := utils.ParseClock(in.EndTime); err != nil {
		return utils.ValidationError(err.Error())
	}
	if in.StartTime >= in.EndTime {
		return utils.ValidationError("start_time must be before end_time")
	}
	return nil
}
