package reschedule_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на перенос бронирования
type Request struct {
	TenantID     uuid.UUID // ID тенанта
	BookingID    uuid.UUID // ID бронирования
	NewStartTime time.Time // Новое начало (локальное время, минутная точность)
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID        uuid.UUID // ID бронирования
	StartTime time.Time // Новое начало
	EndTime   time.Time // Новый конец (длина занятия сохранена)
	Status    string    // Статус бронирования (не меняется при переносе)
}
