package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	packages map[int64]*domain.Package
	failWith error
}

func (f *fakeRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetPackageByID(_ context.Context, id int64) (*domain.Package, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	pkg, ok := f.packages[id]
	if !ok {
		return nil, catalogRepo.ErrPackageNotFound
	}
	return pkg, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, nopLogger{})
}

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestResolveForQuery_Precedence(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Massage", Duration: 45, Price: 80},
		},
		packages: map[int64]*domain.Package{
			2: {ID: 2, Name: "Spa Day", Duration: 120, Price: 200, IsActive: true},
		},
	}
	svc := newTestService(repo)

	t.Run("explicit duration wins over package and service", func(t *testing.T) {
		res := svc.ResolveForQuery(ctx, ptr.Ptr(30), ptr.Ptr(int64(2)), ptr.Ptr(int64(1)))
		assert.Equal(t, 30, res.DurationMinutes)
		assert.False(t, res.UsedFallback)
	})

	t.Run("package wins over service", func(t *testing.T) {
		res := svc.ResolveForQuery(ctx, nil, ptr.Ptr(int64(2)), ptr.Ptr(int64(1)))
		assert.Equal(t, 120, res.DurationMinutes)
		assert.Equal(t, "Spa Day", res.OfferingName)
		assert.Equal(t, 200.0, res.Price)
	})

	t.Run("service duration", func(t *testing.T) {
		res := svc.ResolveForQuery(ctx, nil, nil, ptr.Ptr(int64(1)))
		assert.Equal(t, 45, res.DurationMinutes)
		assert.Equal(t, "Massage", res.OfferingName)
	})

	t.Run("no source falls back to default", func(t *testing.T) {
		res := svc.ResolveForQuery(ctx, nil, nil, nil)
		assert.Equal(t, domain.DefaultDurationMinutes, res.DurationMinutes)
		assert.True(t, res.UsedFallback)
	})
}

func TestResolveForQuery_DegradesOnLookupFailure(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{failWith: errors.New("connection refused")}
	svc := newTestService(repo)

	// Недоступный каталог не фатален для advisory-запроса
	res := svc.ResolveForQuery(ctx, nil, ptr.Ptr(int64(2)), nil)
	assert.Equal(t, domain.DefaultDurationMinutes, res.DurationMinutes)
	assert.True(t, res.UsedFallback)
}

func TestResolveForCommit(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{
		services: map[int64]*domain.Service{
			1: {ID: 1, Name: "Massage", Duration: 45, Price: 80},
		},
		packages: map[int64]*domain.Package{
			2: {ID: 2, Name: "Spa Day", Duration: 120, Price: 200, IsActive: true},
			3: {ID: 3, Name: "Expired", Duration: 120, Price: 150, IsActive: true,
				EndDate: ptr.Ptr(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC))},
			4: {ID: 4, Name: "Disabled", Duration: 120, Price: 150, IsActive: false},
		},
	}
	svc := newTestService(repo)

	t.Run("resolves from package", func(t *testing.T) {
		res, err := svc.ResolveForCommit(ctx, nil, ptr.Ptr(int64(2)), nil, testDate())
		require.NoError(t, err)
		assert.Equal(t, 120, res.DurationMinutes)
		assert.Equal(t, "Spa Day", res.OfferingName)
		assert.Equal(t, 200.0, res.Price)
	})

	t.Run("resolves from service", func(t *testing.T) {
		res, err := svc.ResolveForCommit(ctx, nil, nil, ptr.Ptr(int64(1)), testDate())
		require.NoError(t, err)
		assert.Equal(t, 45, res.DurationMinutes)
	})

	t.Run("explicit duration overrides catalog, keeps price", func(t *testing.T) {
		res, err := svc.ResolveForCommit(ctx, ptr.Ptr(90), nil, ptr.Ptr(int64(1)), testDate())
		require.NoError(t, err)
		assert.Equal(t, 90, res.DurationMinutes)
		assert.Equal(t, 80.0, res.Price)
		assert.Equal(t, "Massage", res.OfferingName)
	})

	t.Run("missing service is an error", func(t *testing.T) {
		_, err := svc.ResolveForCommit(ctx, nil, nil, ptr.Ptr(int64(99)), testDate())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("missing package is an error", func(t *testing.T) {
		_, err := svc.ResolveForCommit(ctx, nil, ptr.Ptr(int64(99)), nil, testDate())
		assert.ErrorIs(t, err, ErrPackageNotFound)
	})

	t.Run("package outside validity window is an error", func(t *testing.T) {
		_, err := svc.ResolveForCommit(ctx, nil, ptr.Ptr(int64(3)), nil, testDate())
		assert.ErrorIs(t, err, ErrPackageNotAvailable)
	})

	t.Run("inactive package is an error", func(t *testing.T) {
		_, err := svc.ResolveForCommit(ctx, nil, ptr.Ptr(int64(4)), nil, testDate())
		assert.ErrorIs(t, err, ErrPackageNotAvailable)
	})

	t.Run("no duration source never falls back", func(t *testing.T) {
		_, err := svc.ResolveForCommit(ctx, nil, nil, nil, testDate())
		assert.ErrorIs(t, err, ErrDurationNotResolved)
	})

	t.Run("storage failure is internal, not a fallback", func(t *testing.T) {
		broken := newTestService(&fakeRepo{failWith: errors.New("connection refused")})
		_, err := broken.ResolveForCommit(ctx, nil, nil, ptr.Ptr(int64(1)), testDate())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
