package domain

// Slot rules
const (
	// SlotCapacity is the maximum number of non-cancelled appointments
	// that may share one (branch, date, time) slot. Capacity is not
	// configurable per branch in the current data model.
	SlotCapacity = 2

	// SlotIntervalMinutes is the grid step between candidate times.
	SlotIntervalMinutes = 30

	// FirstSlotTime and LastSlotTime bound the candidate grid.
	FirstSlotTime = "09:00"
	LastSlotTime  = "17:30"
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 120
	MinVehicleYear        = 1950
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
