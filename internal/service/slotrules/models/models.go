package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

var (
	// ErrInvalidMode возвращается при неизвестном режиме генерации слотов
	ErrInvalidMode = errors.New("invalid slot mode")

	// ErrInvalidInterval возвращается при некорректном шаге для режима INTERVAL
	ErrInvalidInterval = errors.New("invalid interval minutes")

	// ErrInvalidFixedTimes возвращается при некорректном списке фиксированных времён
	ErrInvalidFixedTimes = errors.New("invalid fixed times")

	// ErrInvalidBuffer возвращается при некорректном буфере между услугами
	ErrInvalidBuffer = errors.New("invalid buffer minutes")
)

// CreateSlotRuleRequest запрос на создание правила слотов.
// Новое правило становится активным, прежнее активное деактивируется.
type CreateSlotRuleRequest struct {
	Mode                         string   `json:"mode"`
	IntervalMinutes              *int     `json:"intervalMinutes,omitempty"`
	FixedTimes                   []string `json:"fixedTimes,omitempty"`
	BufferBetweenServicesMinutes int      `json:"bufferBetweenServicesMinutes"`
}

// ToDomain валидирует запрос и конвертирует в domain модель
func (r *CreateSlotRuleRequest) ToDomain(tenantID uuid.UUID) (*domain.SlotRule, error) {
	mode := domain.SlotMode(r.Mode)
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, r.Mode)
	}

	if r.BufferBetweenServicesMinutes < domain.MinBufferMinutes || r.BufferBetweenServicesMinutes > domain.MaxBufferMinutes {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBuffer, r.BufferBetweenServicesMinutes)
	}

	rule := &domain.SlotRule{
		TenantID:                     tenantID,
		Mode:                         mode,
		BufferBetweenServicesMinutes: r.BufferBetweenServicesMinutes,
		Active:                       true,
	}

	switch mode {
	case domain.ModeInterval:
		if r.IntervalMinutes == nil || *r.IntervalMinutes < domain.MinIntervalMinutes || *r.IntervalMinutes > domain.MaxIntervalMinutes {
			return nil, ErrInvalidInterval
		}
		rule.IntervalMinutes = r.IntervalMinutes
	case domain.ModeFixed:
		if len(r.FixedTimes) == 0 {
			return nil, fmt.Errorf("%w: empty list", ErrInvalidFixedTimes)
		}
		rule.FixedTimes = make([]types.TimeString, 0, len(r.FixedTimes))
		for _, ft := range r.FixedTimes {
			ts := types.TimeString(ft)
			if err := ts.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidFixedTimes, ft)
			}
			rule.FixedTimes = append(rule.FixedTimes, ts)
		}
	}

	return rule, nil
}

// SlotRuleResponse ответ с данными правила слотов
type SlotRuleResponse struct {
	ID                           uuid.UUID `json:"id"`
	TenantID                     uuid.UUID `json:"tenantId"`
	Mode                         string    `json:"mode"`
	IntervalMinutes              *int      `json:"intervalMinutes,omitempty"`
	FixedTimes                   []string  `json:"fixedTimes,omitempty"`
	BufferBetweenServicesMinutes int       `json:"bufferBetweenServicesMinutes"`
	Active                       bool      `json:"active"`
	CreatedAt                    time.Time `json:"createdAt"`
	UpdatedAt                    time.Time `json:"updatedAt"`
}

// FromDomainSlotRule конвертирует domain модель в DTO
func FromDomainSlotRule(rule *domain.SlotRule) *SlotRuleResponse {
	if rule == nil {
		return nil
	}

	resp := &SlotRuleResponse{
		ID:                           rule.ID,
		TenantID:                     rule.TenantID,
		Mode:                         string(rule.Mode),
		IntervalMinutes:              rule.IntervalMinutes,
		BufferBetweenServicesMinutes: rule.BufferBetweenServicesMinutes,
		Active:                       rule.Active,
		CreatedAt:                    rule.CreatedAt,
		UpdatedAt:                    rule.UpdatedAt,
	}

	if len(rule.FixedTimes) > 0 {
		resp.FixedTimes = make([]string, 0, len(rule.FixedTimes))
		for _, ft := range rule.FixedTimes {
			resp.FixedTimes = append(resp.FixedTimes, ft.String())
		}
	}

	return resp
}
