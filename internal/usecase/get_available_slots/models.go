package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	TenantID       uuid.UUID   // ID тенанта
	ProfessionalID uuid.UUID   // ID профессионала
	ServiceIDs     []uuid.UUID // Услуги в порядке выполнения
	Date           time.Time   // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date                 time.Time // Дата, на которую запрашивались слоты
	ProfessionalID       uuid.UUID // ID профессионала
	TotalDurationMinutes int       // Суммарная длительность услуг
	Slots                []Slot    // Все кандидаты с признаком доступности
}

// Slot модель временного слота.
// Времена в локальном ISO 8601 без смещения ("2026-03-15T10:00:00").
type Slot struct {
	StartTime string // Начало слота
	EndTime   string // Конец слота (начало + суммарная длительность услуг)
	Available bool   // Свободен ли слот
}
