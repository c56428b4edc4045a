package scheduleblocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	availabilityRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/availability"
	catalogRepo "github.com/mavisrv/MAVI-ScheduleService/internal/infra/storage/catalog"
	"github.com/mavisrv/MAVI-ScheduleService/internal/service/scheduleblocks/models"
)

// Service сервис блокировок расписания профессионалов.
// Блокировка всегда перекрывает недельную доступность: резолвер открытых
// интервалов вычитает её из рабочих окон при генерации слотов.
type Service struct {
	availabilityRepo AvailabilityRepository
	catalogRepo      CatalogRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса блокировок расписания
func NewService(
	availabilityRepo AvailabilityRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		catalogRepo:      catalogRepo,
		logger:           logger,
	}
}

// Create создает блокировку расписания профессионала
func (s *Service) Create(ctx context.Context, tenantID, professionalID uuid.UUID, req *models.CreateScheduleBlockRequest) (*models.ScheduleBlockResponse, error) {
	s.logger.Info("Create: creating schedule block for professional=%s tenant=%s", professionalID, tenantID)

	professional, err := s.catalogRepo.GetProfessional(ctx, tenantID, professionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("Create: professional id=%s not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Create: failed to get professional id=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if !professional.Active {
		s.logger.Warn("Create: professional id=%s is inactive", professionalID)
		return nil, ErrProfessionalNotFound
	}

	block, err := req.ToDomain(tenantID, professionalID)
	if err != nil {
		s.logger.Warn("Create: invalid request for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.availabilityRepo.CreateBlock(ctx, block)
	if err != nil {
		s.logger.Error("Create: failed to create block for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created schedule block id=%s for professional=%s", created.ID, professionalID)
	return models.FromDomainScheduleBlock(created), nil
}

// Delete удаляет блокировку расписания тенанта
func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	s.logger.Info("Delete: deleting schedule block id=%s tenant=%s", id, tenantID)

	if err := s.availabilityRepo.DeleteBlock(ctx, tenantID, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrBlockNotFound) {
			s.logger.Warn("Delete: schedule block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Delete: failed to delete block id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted schedule block id=%s", id)
	return nil
}
