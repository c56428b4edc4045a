package slotrules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	slotruleRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/slotrule"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/slotrules/models"
)

// Service сервис правил генерации слотов
type Service struct {
	slotRuleRepo SlotRuleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса правил слотов
func NewService(
	slotRuleRepo SlotRuleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRuleRepo: slotRuleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetActive получает активное правило тенанта.
// Если у тенанта нет ни одного правила, возвращается правило по умолчанию:
// SERVICE_DURATION без буфера. Так генерация слотов работает для тенанта
// сразу, без предварительной настройки.
func (s *Service) GetActive(ctx context.Context, tenantID uuid.UUID) (*models.SlotRuleResponse, error) {
	s.logger.Info("GetActive: fetching active slot rule for tenant=%s", tenantID)

	rule, err := s.slotRuleRepo.GetActiveByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, slotruleRepo.ErrRuleNotFound) {
			s.logger.Info("GetActive: no rule for tenant=%s, using default", tenantID)
			return models.FromDomainSlotRule(domain.DefaultSlotRule(tenantID)), nil
		}
		s.logger.Error("GetActive: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotRule(rule), nil
}

// Create создает новое правило тенанта и делает его активным.
// Прежнее активное правило деактивируется в той же транзакции: у тенанта
// не бывает двух активных правил одновременно.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req *models.CreateSlotRuleRequest) (*models.SlotRuleResponse, error) {
	s.logger.Info("Create: creating slot rule for tenant=%s mode=%s", tenantID, req.Mode)

	rule, err := req.ToDomain(tenantID)
	if err != nil {
		s.logger.Warn("Create: invalid request for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.slotRuleRepo.DeactivateByTenant(txCtx, tenantID); err != nil {
			return err
		}
		_, err := s.slotRuleRepo.Create(txCtx, rule)
		return err
	})

	if err != nil {
		s.logger.Error("Create: failed to create rule for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created slot rule id=%s for tenant=%s", rule.ID, tenantID)
	return models.FromDomainSlotRule(rule), nil
}
