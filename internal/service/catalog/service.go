package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
)

// Resolution результат разрешения длительности и цены для запроса бронирования
type Resolution struct {
	DurationMinutes int
	Price           float64
	OfferingName    string
	UsedFallback    bool // true, если длительность взята из дефолтного фолбэка
}

// Service разрешает эффективную длительность и цену запроса бронирования
// Приоритет источников: явная длительность -> пакет -> услуга -> фолбэк 60 минут
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ResolveForQuery разрешает длительность для advisory-запроса доступности
// Ошибки разрешения не фатальны: при недоступном каталоге или отсутствующих
// ссылках деградирует до фолбэка domain.DefaultDurationMinutes
func (s *Service) ResolveForQuery(ctx context.Context, explicitMinutes *int, packageID, serviceID *int64) *Resolution {
	// Явная длительность всегда побеждает
	if explicitMinutes != nil && *explicitMinutes > 0 {
		return &Resolution{DurationMinutes: *explicitMinutes}
	}

	if packageID != nil {
		pkg, err := s.repo.GetPackageByID(ctx, *packageID)
		if err == nil && pkg.Duration > 0 {
			return &Resolution{
				DurationMinutes: pkg.Duration,
				Price:           pkg.Price,
				OfferingName:    pkg.Name,
			}
		}
		if err != nil {
			s.logger.Warn("ResolveForQuery: package id=%d lookup failed, falling back: %v", *packageID, err)
		}
	}

	if serviceID != nil {
		svc, err := s.repo.GetServiceByID(ctx, *serviceID)
		if err == nil && svc.Duration > 0 {
			return &Resolution{
				DurationMinutes: svc.Duration,
				Price:           svc.Price,
				OfferingName:    svc.Name,
			}
		}
		if err != nil {
			s.logger.Warn("ResolveForQuery: service id=%d lookup failed, falling back: %v", *serviceID, err)
		}
	}

	return &Resolution{
		DurationMinutes: domain.DefaultDurationMinutes,
		UsedFallback:    true,
	}
}

// ResolveForCommit разрешает длительность и цену для создания бронирования
// В отличие от ResolveForQuery не деградирует: отсутствующая ссылка или
// неразрешимая длительность — ошибка, фолбэк на коммите запрещен
func (s *Service) ResolveForCommit(ctx context.Context, explicitMinutes *int, packageID, serviceID *int64, date time.Time) (*Resolution, error) {
	resolution := &Resolution{}

	// Цена и название берутся из каталога даже при явной длительности
	switch {
	case packageID != nil:
		pkg, err := s.repo.GetPackageByID(ctx, *packageID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrPackageNotFound) {
				return nil, ErrPackageNotFound
			}
			return nil, fmt.Errorf("%w: failed to get package id=%d: %v", ErrInternal, *packageID, err)
		}

		if !pkg.IsAvailableOn(date) {
			s.logger.Warn("ResolveForCommit: package id=%d is not available on %s",
				*packageID, date.Format(domain.DateFormat))
			return nil, ErrPackageNotAvailable
		}

		resolution.DurationMinutes = pkg.Duration
		resolution.Price = pkg.Price
		resolution.OfferingName = pkg.Name

	case serviceID != nil:
		svc, err := s.repo.GetServiceByID(ctx, *serviceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, fmt.Errorf("%w: failed to get service id=%d: %v", ErrInternal, *serviceID, err)
		}

		resolution.DurationMinutes = svc.Duration
		resolution.Price = svc.Price
		resolution.OfferingName = svc.Name
	}

	// Явная длительность перекрывает длительность из каталога
	if explicitMinutes != nil && *explicitMinutes > 0 {
		resolution.DurationMinutes = *explicitMinutes
	}

	if resolution.DurationMinutes <= 0 {
		return nil, ErrDurationNotResolved
	}

	return resolution, nil
}
