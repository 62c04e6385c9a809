// File: handlers/booking_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchside/models"
	"pitchside/utils"
)

// mockBookingService implements bookingSvc.BookingService with
// overridable function fields.
type mockBookingService struct {
	availableSlots func(ctx context.Context, coachID, date string) ([]models.Slot, error)
	create         func(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error)
	get            func(ctx context.Context, id string) (*models.Booking, error)
	list           func(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, models.Pagination, error)
	update         func(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error)
	cancel         func(ctx context.Context, id string) (*models.Booking, error)
}

func (m *mockBookingService) AvailableSlots(ctx context.Context, coachID, date string) ([]models.Slot, error) {
	return m.availableSlots(ctx, coachID, date)
}

func (m *mockBookingService) CheckConflict(ctx context.Context, coachID, date, start, end string) (bool, error) {
	return false, nil
}

func (m *mockBookingService) Create(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error) {
	return m.create(ctx, in)
}

func (m *mockBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return m.get(ctx, id)
}

func (m *mockBookingService) List(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, models.Pagination, error) {
	return m.list(ctx, filter)
}

func (m *mockBookingService) Update(ctx context.Context, id string, in models.BookingUpdateInput) (*models.Booking, error) {
	return m.update(ctx, id, in)
}

func (m *mockBookingService) Cancel(ctx context.Context, id string) (*models.Booking, error) {
	return m.cancel(ctx, id)
}

func bookingRouter(svc *mockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &BookingHandler{Service: svc}
	r := gin.New()
	r.GET("/api/bookings", h.ListBookingsHandler)
	r.GET("/api/bookings/available-slots", h.AvailableSlotsHandler)
	r.GET("/api/bookings/:id", h.GetBookingHandler)
	r.POST("/api/bookings", h.CreateBookingHandler)
	return r
}

func TestCreateBookingHandlerCreated(t *testing.T) {
	svc := &mockBookingService{
		create: func(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error) {
			return &models.Booking{ID: "b1", CoachID: in.CoachID, Status: models.BookingPending}, nil
		},
	}
	body := `{"student_id":"s1","program_id":"p1","coach_id":"c1","booking_date":"2026-09-01","start_time":"10:00","end_time":"11:00"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	bookingRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.Booking.ID)
	assert.Equal(t, models.BookingPending, resp.Booking.Status)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	svc := &mockBookingService{
		create: func(ctx context.Context, in models.BookingCreateInput) (*models.Booking, error) {
			return nil, utils.ConflictError("Time slot is already booked")
		},
	}
	body := `{"student_id":"s1","program_id":"p1","coach_id":"c1","booking_date":"2026-09-01","start_time":"10:00","end_time":"11:00"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	bookingRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Time slot is already booked", resp.Message)
}

func TestCreateBookingHandlerMissingFields(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"student_id":"s1"}`))
	req.Header.Set("Content-Type", "application/json")
	bookingRouter(&mockBookingService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailableSlotsHandlerOK(t *testing.T) {
	svc := &mockBookingService{
		availableSlots: func(ctx context.Context, coachID, date string) ([]models.Slot, error) {
			assert.Equal(t, "c1", coachID)
			assert.Equal(t, "2026-09-01", date)
			return []models.Slot{{StartTime: "09:00", EndTime: "10:00"}}, nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots?coach_id=c1&date=2026-09-01", nil)
	bookingRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		AvailableSlots []models.Slot `json:"availableSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.AvailableSlots, 1)
	assert.Equal(t, "09:00", resp.AvailableSlots[0].StartTime)
}

func TestAvailableSlotsHandlerMissingParams(t *testing.T) {
	svc := &mockBookingService{
		availableSlots: func(ctx context.Context, coachID, date string) ([]models.Slot, error) {
			return nil, utils.ValidationError("coach_id is required")
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/available-slots?date=2026-09-01", nil)
	bookingRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingHandlerNotFound(t *testing.T) {
	svc := &mockBookingService{
		get: func(ctx context.Context, id string) (*models.Booking, error) {
			return nil, utils.NotFoundError("booking", id)
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	bookingRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsHandlerShape(t *testing.T) {
	svc := &mockBookingService{
		list: func(ctx context.Context, filter models.BookingListFilter) ([]models.Booking, models.Pagination, error) {
			assert.Equal(t, models.BookingConfirmed, filter.Status)
			assert.Equal(t, 2, filter.Page)
			return []models.Booking{{ID: "b1"}}, models.NewPagination(2, 10, 11), nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=confirmed&page=2", nil)
	bookingRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Bookings   []models.Booking  `json:"bookings"`
		Pagination models.Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}
