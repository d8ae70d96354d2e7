package get_branches

import (
	"context"

	"github.com/tyrehub/appointment-service/internal/domain"
)

type BranchProvider interface {
	GetAllActive(ctx context.Context) ([]domain.Branch, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
