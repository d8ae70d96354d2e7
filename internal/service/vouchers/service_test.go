package vouchers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyrehub/appointment-service/internal/domain"
	"github.com/tyrehub/appointment-service/internal/infra/storage/voucher"
	"github.com/tyrehub/appointment-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeVoucherRepo struct {
	voucher *domain.Voucher
	err     error
}

func (r *fakeVoucherRepo) GetByCode(_ context.Context, _ string) (*domain.Voucher, error) {
	return r.voucher, r.err
}

var now = time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)

func newService(v *domain.Voucher, err error) *Service {
	return New(&fakeVoucherRepo{voucher: v, err: err}, fixedClock{now: now}, nopLogger{})
}

func TestValidate_ActiveVoucherReturnsContactDetails(t *testing.T) {
	svc := newService(&domain.Voucher{
		Code:          "PROMO2026",
		CustomerName:  "Alice Example",
		CustomerEmail: ptr.Ptr("alice@example.com"),
		Status:        domain.VoucherActive,
		ValidUntil:    now.Add(24 * time.Hour),
	}, nil)

	result, err := svc.Validate(context.Background(), "PROMO2026")

	require.NoError(t, err)
	assert.Equal(t, "PROMO2026", result.Code)
	assert.Equal(t, "Alice Example", result.CustomerName)
	require.NotNil(t, result.CustomerEmail)
	assert.Equal(t, "alice@example.com", *result.CustomerEmail)
}

func TestValidate_UnknownCode(t *testing.T) {
	svc := newService(nil, voucher.ErrVoucherNotFound)

	_, err := svc.Validate(context.Background(), "NOPE")

	assert.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestValidate_EmptyCode(t *testing.T) {
	svc := newService(nil, nil)

	_, err := svc.Validate(context.Background(), "")

	assert.ErrorIs(t, err, ErrVoucherNotFound)
}

func TestValidate_RedeemedVoucher(t *testing.T) {
	svc := newService(&domain.Voucher{
		Code:       "USED",
		Status:     domain.VoucherRedeemed,
		ValidUntil: now.Add(24 * time.Hour),
	}, nil)

	_, err := svc.Validate(context.Background(), "USED")

	assert.ErrorIs(t, err, ErrVoucherRedeemed)
}

func TestValidate_ExpiredStatus(t *testing.T) {
	svc := newService(&domain.Voucher{
		Code:       "OLD",
		Status:     domain.VoucherExpired,
		ValidUntil: now.Add(24 * time.Hour),
	}, nil)

	_, err := svc.Validate(context.Background(), "OLD")

	assert.ErrorIs(t, err, ErrVoucherExpired)
}

// A stale row can still read active after valid_until passed; the
// clock wins.
func TestValidate_ClockExpiryBeatsStaleActiveStatus(t *testing.T) {
	svc := newService(&domain.Voucher{
		Code:       "PROMO2024",
		Status:     domain.VoucherActive,
		ValidUntil: now.Add(-time.Hour),
	}, nil)

	_, err := svc.Validate(context.Background(), "PROMO2024")

	assert.ErrorIs(t, err, ErrVoucherExpired)
}

func TestValidate_ValidUntilBoundaryIsInclusive(t *testing.T) {
	svc := newService(&domain.Voucher{
		Code:       "EDGE",
		Status:     domain.VoucherActive,
		ValidUntil: now,
	}, nil)

	_, err := svc.Validate(context.Background(), "EDGE")

	assert.NoError(t, err, "a voucher expiring exactly now is still usable")
}

func TestValidate_RepositoryError(t *testing.T) {
	svc := newService(nil, assert.AnError)

	_, err := svc.Validate(context.Background(), "ANY")

	assert.ErrorIs(t, err, ErrInternal)
}
