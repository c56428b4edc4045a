package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	TenantID       uuid.UUID   // ID тенанта
	CustomerID     uuid.UUID   // ID клиента
	ProfessionalID uuid.UUID   // ID профессионала
	ServiceIDs     []uuid.UUID // Услуги в порядке выполнения
	StartTime      time.Time   // Начало слота (локальное время, минутная точность)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             uuid.UUID // ID созданного бронирования
	TenantID       uuid.UUID // ID тенанта
	CustomerID     uuid.UUID // ID клиента
	ProfessionalID uuid.UUID // ID профессионала

	StartTime time.Time // Начало бронирования
	EndTime   time.Time // Конец бронирования (услуги + буфер)
	Status    string    // Статус бронирования

	// Денормализованные данные
	CustomerName     string                      // Имя клиента
	ProfessionalName string                      // Имя профессионала
	Services         []domain.BookingServiceInfo // Снапшот услуг
	TotalPrice       float64                     // Суммарная цена

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
