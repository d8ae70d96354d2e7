package vouchers

import "errors"

var (
	// ErrVoucherNotFound is returned when the code is not recognized
	ErrVoucherNotFound = errors.New("vouchers: code not recognized")

	// ErrVoucherRedeemed is returned when the voucher has already been used
	ErrVoucherRedeemed = errors.New("vouchers: voucher already redeemed")

	// ErrVoucherExpired is returned when the voucher is past its
	// validity window, whether by stored status or by the clock
	ErrVoucherExpired = errors.New("vouchers: voucher expired")

	// ErrInternal is returned on lookup errors
	ErrInternal = errors.New("vouchers: internal error")
)
