package domain

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinIntervalMinutes        = 5
	MaxIntervalMinutes        = 240
	MinBufferMinutes          = 0
	MaxBufferMinutes          = 120
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// LocalDateTimeFormat ISO 8601 без смещения - канонический wire-формат
	// меток времени сервиса (tenant-local)
	LocalDateTimeFormat = "2006-01-02T15:04:05"
)

// BlockingStatuses статусы, при которых бронирование занимает свой слот
var BlockingStatuses = []BookingStatus{
	StatusRequested,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses статусы, из которых нет переходов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
	StatusNoShow,
}
