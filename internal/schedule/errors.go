package schedule

import "errors"

var (
	// ErrMisconfiguredRule возвращается, когда активное правило слотов не
	// содержит обязательных для своего режима полей
	ErrMisconfiguredRule = errors.New("schedule: slot rule is misconfigured for its mode")

	// ErrInvalidDuration возвращается при нулевой или отрицательной суммарной длительности
	ErrInvalidDuration = errors.New("schedule: total duration must be positive")

	// ErrServiceNotAssigned возвращается, когда услуга не назначена профессионалу
	ErrServiceNotAssigned = errors.New("schedule: service is not assigned to professional")

	// ErrServiceUnknown возвращается, когда услуга отсутствует в каталоге
	ErrServiceUnknown = errors.New("schedule: unknown service")
)
