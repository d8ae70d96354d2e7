package domain

import "time"

// VoucherStatus represents the lifecycle state of a voucher
type VoucherStatus string

const (
	VoucherActive   VoucherStatus = "active"
	VoucherRedeemed VoucherStatus = "redeemed"
	VoucherExpired  VoucherStatus = "expired"
)

// Voucher is a discount code with a lifecycle independent of any
// single appointment. The booking flow only validates vouchers; it
// never mutates them.
type Voucher struct {
	Code          string
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Status        VoucherStatus
	ValidUntil    time.Time
}

// IsExpiredAt reports whether the voucher is past its validity window
// at the given moment. The stored status may lag behind the clock when
// the backing store does not auto-expire rows, so callers must check
// this regardless of Status.
func (v *Voucher) IsExpiredAt(now time.Time) bool {
	return now.After(v.ValidUntil)
}
