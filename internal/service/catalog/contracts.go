package catalog

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг и пакетов
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	GetPackageByID(ctx context.Context, id int64) (*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
