package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotConflict возвращается, когда запись нарушает ограничение
	// непересечения слотов (конкурентное бронирование того же времени)
	ErrSlotConflict = errors.New("booking.repository: slot conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrEncodeServices возвращается при ошибке сериализации списка услуг
	ErrEncodeServices = errors.New("booking.repository: failed to encode services")
)

// Postgres error codes, по которым конкурентная запись распознается как
// конфликт слота: unique_violation, exclusion_violation (EXCLUDE USING gist
// на диапазоне времени) и serialization_failure.
const (
	pqUniqueViolation      = "23505"
	pqExclusionViolation   = "23P01"
	pqSerializationFailure = "40001"
)

// IsConflictError проверяет, является ли ошибка (в том числе ошибка commit
// из транзакционного менеджера) конфликтом конкурентной записи
func IsConflictError(err error) bool {
	if errors.Is(err, ErrSlotConflict) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation, pqExclusionViolation, pqSerializationFailure:
			return true
		}
	}
	return false
}
