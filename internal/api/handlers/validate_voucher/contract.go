package validate_voucher

import (
	"context"

	"github.com/tyrehub/appointment-service/internal/service/vouchers"
)

type VoucherService interface {
	Validate(ctx context.Context, code string) (*vouchers.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
