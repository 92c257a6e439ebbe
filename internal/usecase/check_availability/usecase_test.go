package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	failWith error
}

func (f *fakeBookingRepo) GetBlockingByDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Booking, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	// Хранилище отдает только блокирующие статусы
	blocking := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if b.IsBlocking() {
			blocking = append(blocking, b)
		}
	}
	return blocking, nil
}

type fakeResolver struct {
	resolution *catalog.Resolution
}

func (f *fakeResolver) ResolveForQuery(_ context.Context, explicitMinutes *int, _, _ *int64) *catalog.Resolution {
	if explicitMinutes != nil && *explicitMinutes > 0 {
		return &catalog.Resolution{DurationMinutes: *explicitMinutes}
	}
	if f.resolution != nil {
		return f.resolution
	}
	return &catalog.Resolution{DurationMinutes: domain.DefaultDurationMinutes, UsedFallback: true}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func confirmedBooking(start types.TimeString, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		TherapistID:     7,
		BookingDate:     testDate(),
		StartTime:       start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestExecute_OverlappingSlotUnavailable(t *testing.T) {
	// Подтвержденная бронь 10:00-11:00, запрос 10:30 на 30 минут
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:00", 60)}}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		StartTime:       "10:30",
		DurationMinutes: ptr.Ptr(30),
		TherapistID:     ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 1, resp.ConflictCount)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 630, resp.Requested.StartMinutes)
	assert.Equal(t, 660, resp.Requested.EndMinutes)
}

func TestExecute_AdjacentSlotAvailable(t *testing.T) {
	// Запрос 11:00 на 30 минут сразу после брони 10:00-11:00
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:00", 60)}}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		StartTime:       "11:00",
		DurationMinutes: ptr.Ptr(30),
		TherapistID:     ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 0, resp.ConflictCount)
}

func TestExecute_SlotEndingAtBookingStartAvailable(t *testing.T) {
	// Запрос 09:00 на 60 минут заканчивается ровно в начале брони 10:00
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:00", 60)}}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		StartTime:       "09:00",
		DurationMinutes: ptr.Ptr(60),
		TherapistID:     ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_InactiveBookingsDoNotBlock(t *testing.T) {
	completed := confirmedBooking("10:00", 60)
	completed.Status = domain.StatusCompleted
	cancelled := confirmedBooking("10:00", 60)
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{completed, cancelled}}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		StartTime:       "10:30",
		DurationMinutes: ptr.Ptr(30),
		TherapistID:     ptr.Ptr(int64(7)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_FallbackDurationForQuery(t *testing.T) {
	// Без явной длительности и каталожных ссылок запрос считается на 60 минут
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking("10:30", 30)}}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testDate(),
		StartTime: "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.Requested.DurationMinutes)
	assert.False(t, resp.Available)
}

func TestExecute_StorageFailureDegradesToUnavailable(t *testing.T) {
	repo := &fakeBookingRepo{failWith: errors.New("connection refused")}
	uc := NewUseCase(repo, &fakeResolver{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		StartTime:       "10:00",
		DurationMinutes: ptr.Ptr(60),
	})

	// Сбой хранилища не становится ложным "свободно"
	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.True(t, resp.Degraded)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeResolver{}, nopLogger{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: testDate(), StartTime: "25:99"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: testDate(), StartTime: "10:00", DurationMinutes: ptr.Ptr(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: testDate(), StartTime: "10:00", TherapistID: ptr.Ptr(int64(-1))})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Слот, уходящий за полночь, непредставим в дневной модели
	_, err = uc.Execute(ctx, &Request{Date: testDate(), StartTime: "23:30", DurationMinutes: ptr.Ptr(480)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
