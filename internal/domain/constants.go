package domain

// Default configuration values
const (
	DefaultMaxEventsPerDay = 2
)

// Business validation constants
const (
	MinEventsPerDay   = 1
	MaxEventsPerDay   = 10
	MaxBookingNameLen = 200
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
