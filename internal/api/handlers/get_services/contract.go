package get_services

import (
	"context"

	"github.com/tyrehub/appointment-service/internal/domain"
)

type ServiceProvider interface {
	GetAll(ctx context.Context) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
