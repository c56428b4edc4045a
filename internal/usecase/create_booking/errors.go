package create_booking

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге тенанта
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена профессионалу
	ErrServiceNotAssigned = errors.New("create_booking: service is not assigned to professional")

	// ErrSlotNotAvailable возвращается, когда запрошенное время не является
	// доступным слотом: вне открытых интервалов, не по правилу генерации
	// или занято другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTimeInPast возвращается при попытке забронировать прошедшее время
	ErrTimeInPast = errors.New("create_booking: start time is in the past")

	// ErrMisconfiguredRule возвращается при некорректной конфигурации правила слотов
	ErrMisconfiguredRule = errors.New("create_booking: slot rule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
