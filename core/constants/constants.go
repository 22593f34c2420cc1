package constants

// Database pool defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Echo context keys
const (
	ContextRequestID = "request_id"
)

// HTTP headers
const (
	HeaderRequestID = "X-Request-ID"
)

// DateLayout is the calendar-date format used everywhere a date crosses
// a boundary (DB, JSON, URL). Dates have no time or timezone component.
const DateLayout = "2006-01-02"

// Calendar window: 5 weeks starting at the Monday on/before today.
const (
	CalendarWeeks = 5
	DaysPerWeek   = 7
)

// Retention defaults
const (
	DefaultVoteRetentionDays = 90
)
