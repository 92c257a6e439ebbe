package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// fakeBookingRepo in-memory хранилище бронирований
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
	failWith error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingRepo) GetBlockingByDate(_ context.Context, date time.Time, therapistID *int64) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != nil {
		return nil, f.failWith
	}

	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if !b.IsBlocking() || !b.BookingDate.Equal(date) {
			continue
		}
		if therapistID != nil && b.TherapistID != *therapistID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// fakeTxManager сериализует транзакции мьютексом, имитируя
// блокировку therapist-day
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

type fakeResolver struct {
	resolution *catalog.Resolution
	failWith   error
}

func (f *fakeResolver) ResolveForCommit(_ context.Context, explicitMinutes *int, _, _ *int64, _ time.Time) (*catalog.Resolution, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.resolution != nil {
		return f.resolution, nil
	}
	if explicitMinutes != nil && *explicitMinutes > 0 {
		return &catalog.Resolution{DurationMinutes: *explicitMinutes}, nil
	}
	return nil, catalog.ErrDurationNotResolved
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		CustomerID:  100,
		TherapistID: 7,
		Date:        testDate(),
		StartTime:   "10:00",
		Duration:    ptr.Ptr(60),
	}
}

func newTestUseCase(repo *fakeBookingRepo, resolver *fakeResolver) *UseCase {
	return NewUseCase(repo, resolver, &fakeTxManager{}, nopLogger{})
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_ConflictOnOverlap(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй запрос пересекается с первым: 10:30-11:00 внутри 10:00-11:00
	req := validRequest()
	req.StartTime = "10:30"
	req.Duration = ptr.Ptr(30)

	_, err = uc.Execute(context.Background(), req)
	require.Error(t, err)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, 1, conflictErr.ConflictCount)
	assert.Equal(t, 630, conflictErr.Requested.StartMinutes)
	assert.Equal(t, 660, conflictErr.Requested.EndMinutes)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_AdjacentSlotSucceeds(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 11:00 сразу после 10:00-11:00 - границы соприкасаются, конфликта нет
	req := validRequest()
	req.StartTime = "11:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_OtherTherapistDoesNotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.TherapistID = 8

	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ConcurrentRequestsOneWins(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	// Все запросы претендуют на один и тот же слот одного мастера
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
	}

	assert.Equal(t, 1, succeeded, "exactly one concurrent create must win the slot")
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	repo.mu.Lock()
	repo.bookings[0].Status = domain.StatusCancelled
	repo.mu.Unlock()

	// Слот освободился - повторное создание проходит
	resp2, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp2.ID)
}

func TestExecute_ResolveErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		failWith error
		wantErr  error
	}{
		{"service not found", catalog.ErrServiceNotFound, ErrServiceNotFound},
		{"package not found", catalog.ErrPackageNotFound, ErrPackageNotFound},
		{"package not available", catalog.ErrPackageNotAvailable, ErrPackageNotAvailable},
		{"duration not resolved", catalog.ErrDurationNotResolved, ErrDurationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{failWith: tt.failWith})
			_, err := uc.Execute(ctx, validRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_StorageFailureIsTransient(t *testing.T) {
	repo := &fakeBookingRepo{failWith: errors.New("connection refused")}
	uc := newTestUseCase(repo, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTransient)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeResolver{})
	ctx := context.Background()

	t.Run("service and package are mutually exclusive", func(t *testing.T) {
		req := validRequest()
		req.ServiceID = ptr.Ptr(int64(1))
		req.PackageID = ptr.Ptr(int64(2))
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing customer", func(t *testing.T) {
		req := validRequest()
		req.CustomerID = 0
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("malformed start time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "29:99"
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		req := validRequest()
		req.Price = ptr.Ptr(-10.0)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("slot crossing midnight", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "23:30"
		req.Duration = ptr.Ptr(480)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
