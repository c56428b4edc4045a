package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidTransition возвращается, когда переход статуса не разрешён
	// графом жизненного цикла
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnknownAction возвращается при неизвестном действии перехода
	ErrUnknownAction = errors.New("unknown transition action")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
