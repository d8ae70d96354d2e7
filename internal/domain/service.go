package domain

// Service represents an entry in the fixed service catalog (tire
// change, balancing, alignment and so on). The catalog is reference
// data: it is not editable at runtime.
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	VoucherEligible bool
}
