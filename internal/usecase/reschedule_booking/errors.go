package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается, когда статус бронирования не
	// допускает перенос (переносить можно только CONFIRMED)
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrSlotNotAvailable возвращается, когда новое время не является
	// доступным слотом
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrTimeInPast возвращается при попытке переноса на прошедшее время
	ErrTimeInPast = errors.New("reschedule_booking: start time is in the past")

	// ErrMisconfiguredRule возвращается при некорректной конфигурации правила слотов
	ErrMisconfiguredRule = errors.New("reschedule_booking: slot rule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
