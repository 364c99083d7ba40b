package addons

import (
	"context"
	"errors"
	"fmt"

	propertyClient "github.com/staysuite/pricing-service/internal/integrations/propertyservice"
	"github.com/staysuite/pricing-service/internal/service/addons/models"
)

// Service сервис каталога дополнительных услуг
type Service struct {
	addonRepo      AddonRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса дополнительных услуг
func NewService(
	addonRepo AddonRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		addonRepo:      addonRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// GetByProperty получает активные дополнительные услуги объекта размещения
// Публичный метод - доступен всем
// При недоступности PropertyService каталог отдается по локальным данным
func (s *Service) GetByProperty(ctx context.Context, propertyID int64) (*models.AddonListResponse, error) {
	s.logger.Info("GetByProperty: fetching addons for property=%d", propertyID)

	// 1. Проверяем объект размещения (graceful degradation)
	if _, err := s.propertyClient.GetPropertyWithGracefulDegradation(ctx, propertyID); err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			// Несуществующий объект дает пустой каталог, а не ошибку
			s.logger.Warn("GetByProperty: property id=%d not found, returning empty catalog", propertyID)
			return models.FromDomainAddonList(nil), nil
		}

		// PropertyService недоступен - каталог продолжает работать по
		// локальным данным
		s.logger.Warn("GetByProperty: property check degraded for property=%d: %v", propertyID, err)
	}

	// 2. Получаем услуги
	addons, err := s.addonRepo.GetActiveByPropertyID(ctx, propertyID)
	if err != nil {
		s.logger.Error("GetByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProperty: successfully fetched %d addons for property=%d", len(addons), propertyID)
	return models.FromDomainAddonList(addons), nil
}
