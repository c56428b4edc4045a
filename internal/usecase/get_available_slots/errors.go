package get_available_slots

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда профессионал не найден
	ErrProfessionalNotFound = errors.New("get_available_slots: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге тенанта
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена профессионалу
	ErrServiceNotAssigned = errors.New("get_available_slots: service is not assigned to professional")

	// ErrMisconfiguredRule возвращается при некорректной конфигурации правила слотов
	ErrMisconfiguredRule = errors.New("get_available_slots: slot rule is misconfigured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
