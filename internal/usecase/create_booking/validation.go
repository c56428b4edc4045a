package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantID == uuid.Nil {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one serviceID is required", ErrInvalidInput)
	}
	for _, id := range req.ServiceIDs {
		if id == uuid.Nil {
			return fmt.Errorf("%w: serviceID must not be empty", ErrInvalidInput)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Слоты имеют минутную точность
	if req.StartTime.Second() != 0 || req.StartTime.Nanosecond() != 0 {
		return fmt.Errorf("%w: startTime must have minute precision", ErrInvalidInput)
	}

	return nil
}

// validateStartTime проверяет, что начало бронирования ещё не прошло
func validateStartTime(startTime, now time.Time) error {
	if !startTime.After(now) {
		return ErrTimeInPast
	}
	return nil
}
