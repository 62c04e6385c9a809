// File: services/booking/booking_test.go
package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "pitchside/database/repository/booking"
	"pitchside/models"
	"pitchside/utils"
)

// mockBookingRepo implements bookingRepo.BookingRepository with
// overridable function fields.
type mockBookingRepo struct {
	createIfFree     func(ctx context.Context, b *models.Booking) error
	getByID          func(ctx context.Context, id string) (*models.Booking, error)
	updateFields     func(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error)
	list             func(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, int64, error)
	findOccupying    func(ctx context.Context, coachID, date string) ([]models.Booking, error)
	countOverlapping func(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error)
}

func (m *mockBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	return m.createIfFree(ctx, b)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return m.getByID(ctx, id)
}

func (m *mockBookingRepo) UpdateFields(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error) {
	return m.updateFields(ctx, id, status, notes)
}

func (m *mockBookingRepo) List(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, int64, error) {
	return m.list(ctx, filter)
}

func (m *mockBookingRepo) FindOccupying(ctx context.Context, coachID, date string) ([]models.Booking, error) {
	return m.findOccupying(ctx, coachID, date)
}

func (m *mockBookingRepo) CountOverlapping(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error) {
	return m.countOverlapping(ctx, coachID, date, start, end, excludeID)
}

func (m *mockBookingRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newService(repo *mockBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Grid: defaultGrid()}
}

func validInput() models.BookingCreateInput {
	return models.BookingCreateInput{
		StudentID: "s1",
		ProgramID: "p1",
		CoachID:   "c1",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, kind, appErr.Kind)
}

func TestCreateSuccess(t *testing.T) {
	repo := &mockBookingRepo{
		countOverlapping: func(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error) {
			return 0, nil
		},
		createIfFree: func(ctx context.Context, b *models.Booking) error {
			b.ID = "b1"
			return nil
		},
	}

	b, err := newService(repo).Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
}

func TestCreateConflictOnPreCheck(t *testing.T) {
	repo := &mockBookingRepo{
		countOverlapping: func(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error) {
			return 1, nil
		},
	}

	_, err := newService(repo).Create(context.Background(), validInput())
	assertKind(t, err, utils.KindConflict)
	assert.Equal(t, SlotTakenMessage, utils.AsAppError(err).Message)
}

func TestCreateConflictFromConcurrentInsert(t *testing.T) {
	// The pre-check passes but a concurrent create wins inside the
	// repository transaction.
	repo := &mockBookingRepo{
		countOverlapping: func(ctx context.Context, coachID, date, start, end, excludeID string) (int64, error) {
			return 0, nil
		},
		createIfFree: func(ctx context.Context, b *models.Booking) error {
			return bookingRepo.ErrSlotTaken
		},
	}

	_, err := newService(repo).Create(context.Background(), validInput())
	assertKind(t, err, utils.KindConflict)
	assert.Equal(t, SlotTakenMessage, utils.AsAppError(err).Message)
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.BookingCreateInput)
	}{
		{"missing student", func(in *models.BookingCreateInput) { in.StudentID = "" }},
		{"missing coach", func(in *models.BookingCreateInput) { in.CoachID = "" }},
		{"bad date", func(in *models.BookingCreateInput) { in.Date = "01-09-2026" }},
		{"bad start time", func(in *models.BookingCreateInput) { in.StartTime = "10am" }},
		{"start after end", func(in *models.BookingCreateInput) { in.StartTime = "11:00"; in.EndTime = "10:00" }},
		{"zero length", func(in *models.BookingCreateInput) { in.EndTime = in.StartTime }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := newService(&mockBookingRepo{}).Create(context.Background(), in)
			assertKind(t, err, utils.KindValidation)
		})
	}
}

func TestAvailableSlotsRequiresParams(t *testing.T) {
	svc := newService(&mockBookingRepo{})

	_, err := svc.AvailableSlots(context.Background(), "", "2026-09-01")
	assertKind(t, err, utils.KindValidation)

	_, err = svc.AvailableSlots(context.Background(), "c1", "")
	assertKind(t, err, utils.KindValidation)

	_, err = svc.AvailableSlots(context.Background(), "c1", "not-a-date")
	assertKind(t, err, utils.KindValidation)
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	repo := &mockBookingRepo{
		findOccupying: func(ctx context.Context, coachID, date string) ([]models.Booking, error) {
			return nil, nil
		},
	}

	slots, err := newService(repo).AvailableSlots(context.Background(), "c1", "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, slots, 9)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "17:00", slots[8].StartTime)
}

func TestAvailableSlotsExcludesOccupied(t *testing.T) {
	repo := &mockBookingRepo{
		findOccupying: func(ctx context.Context, coachID, date string) ([]models.Booking, error) {
			return []models.Booking{
				{CoachID: coachID, Date: date, StartTime: "10:00", EndTime: "11:00", Status: models.BookingPending},
			}, nil
		},
	}

	slots, err := newService(repo).AvailableSlots(context.Background(), "c1", "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, slots, 8)
}

func TestAvailableSlotsIgnoresCancelledBooking(t *testing.T) {
	// Even if a cancelled booking slips past the repository's
	// occupies filter, it must not hide a slot.
	repo := &mockBookingRepo{
		findOccupying: func(ctx context.Context, coachID, date string) ([]models.Booking, error) {
			return []models.Booking{
				{CoachID: coachID, Date: date, StartTime: "10:00", EndTime: "11:00", Status: models.BookingCancelled},
			}, nil
		},
	}

	slots, err := newService(repo).AvailableSlots(context.Background(), "c1", "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, slots, 9)
}

func TestUpdateRejectsIllegalTransition(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.BookingCancelled}, nil
		},
	}

	confirmed := models.BookingConfirmed
	_, err := newService(repo).Update(context.Background(), "b1", models.BookingUpdateInput{Status: &confirmed})
	assertKind(t, err, utils.KindInvalidState)
}

func TestUpdateConfirmSchedulesReminder(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.BookingPending}, nil
		},
		updateFields: func(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: *status}, nil
		},
	}
	scheduled := 0
	svc := newService(repo)
	svc.Reminders = reminderFunc(func(ctx context.Context, b *models.Booking) error {
		scheduled++
		return nil
	})

	confirmed := models.BookingConfirmed
	b, err := svc.Update(context.Background(), "b1", models.BookingUpdateInput{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, b.Status)
	assert.Equal(t, 1, scheduled)
}

// reminderFunc adapts a function to the ReminderScheduler interface.
type reminderFunc func(ctx context.Context, b *models.Booking) error

func (f reminderFunc) ScheduleReminder(ctx context.Context, b *models.Booking) error {
	return f(ctx, b)
}

func TestCancelPendingBooking(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.BookingPending}, nil
		},
		updateFields: func(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: *status}, nil
		},
	}

	b, err := newService(repo).Cancel(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, b.Status)
}

func TestCancelCompletedBookingRefused(t *testing.T) {
	updates := 0
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id string) (*models.Booking, error) {
			return &models.Booking{ID: id, Status: models.BookingCompleted}, nil
		},
		updateFields: func(ctx context.Context, id string, status *models.BookingStatus, notes *string) (*models.Booking, error) {
			updates++
			return nil, nil
		},
	}

	_, err := newService(repo).Cancel(context.Background(), "b1")
	assertKind(t, err, utils.KindInvalidState)
	assert.Zero(t, updates, "a refused cancel must not touch the store")
}

func TestGetNotFound(t *testing.T) {
	repo := &mockBookingRepo{
		getByID: func(ctx context.Context, id string) (*models.Booking, error) {
			return nil, bookingRepo.ErrNotFound
		},
	}

	_, err := newService(repo).Get(context.Background(), "missing")
	assertKind(t, err, utils.KindNotFound)
}

func TestListClampsPaging(t *testing.T) {
	var got models.BookingListFilter
	repo := &mockBookingRepo{
		list: func(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, int64, error) {
			got = filter
			return nil, 25, nil
		},
	}

	_, pagination, err := newService(repo).List(context.Background(), models.BookingListFilter{Page: 0, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 100, got.Limit)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	_, _, err := newService(&mockBookingRepo{}).List(context.Background(), models.BookingListFilter{Status: "snoozed"})
	assertKind(t, err, utils.KindValidation)
}
