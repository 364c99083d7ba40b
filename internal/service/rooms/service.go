package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/staysuite/pricing-service/internal/domain"
	roomRepo "github.com/staysuite/pricing-service/internal/infra/storage/room"
	propertyClient "github.com/staysuite/pricing-service/internal/integrations/propertyservice"
	"github.com/staysuite/pricing-service/internal/service/rooms/models"
)

// Service сервис для работы с ценовой конфигурацией комнат
type Service struct {
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		logger:         logger,
	}
}

// GetPricingConfig получает ценовую конфигурацию комнаты
// Доступно только менеджерам объекта размещения
func (s *Service) GetPricingConfig(ctx context.Context, roomID int64, userID int64) (*models.PricingConfigResponse, error) {
	s.logger.Info("GetPricingConfig: fetching pricing config for room=%d by user=%d", roomID, userID)

	// 1. Получаем комнату
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetPricingConfig: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetPricingConfig: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: GetPricingConfig - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер объекта)
	if err := s.checkManagerAccess(ctx, room.PropertyID, userID); err != nil {
		return nil, err
	}

	s.logger.Info("GetPricingConfig: successfully fetched pricing config for room=%d", roomID)
	return models.FromDomainRoom(room), nil
}

// UpdatePricingConfig заменяет ценовую конфигурацию комнаты
// Доступно только менеджерам объекта размещения
func (s *Service) UpdatePricingConfig(ctx context.Context, roomID int64, req *models.UpdatePricingConfigRequest) (*models.PricingConfigResponse, error) {
	s.logger.Info("UpdatePricingConfig: updating pricing config for room=%d by user=%d", roomID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validatePricingData(req); err != nil {
		s.logger.Warn("UpdatePricingConfig: validation failed for room=%d: %v", roomID, err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdatePricingConfig: room id=%d not found", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdatePricingConfig: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: UpdatePricingConfig - repository error: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа (только менеджер объекта)
	if err := s.checkManagerAccess(ctx, room.PropertyID, req.UserID); err != nil {
		return nil, err
	}

	// 4. Применяем новую конфигурацию и сохраняем
	req.ApplyToRoom(room)
	if err := s.roomRepo.UpdatePricing(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdatePricingConfig: room id=%d not found during update", roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdatePricingConfig: repository error for room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: UpdatePricingConfig - repository error: %v", ErrInternal, err)
	}

	// 5. Перечитываем комнату, чтобы вернуть актуальные данные
	updated, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		s.logger.Error("UpdatePricingConfig: failed to reload room id=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: UpdatePricingConfig - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePricingConfig: successfully updated pricing config for room=%d", roomID)
	return models.FromDomainRoom(updated), nil
}

// validatePricingData проверяет корректность ценовой конфигурации
func (s *Service) validatePricingData(req *models.UpdatePricingConfigRequest) error {
	mode := domain.PricingMode(req.PricingMode)
	if !mode.IsValid() {
		return fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidInput, req.PricingMode)
	}

	if req.BasePricePerNight < 0 {
		return fmt.Errorf("%w: base price per night must be non-negative", ErrInvalidInput)
	}

	if req.AdditionalPersonRate != nil && *req.AdditionalPersonRate < 0 {
		return fmt.Errorf("%w: additional person rate must be non-negative", ErrInvalidInput)
	}

	if mode == domain.PricingPerPersonSharing && req.AdditionalPersonRate == nil {
		return fmt.Errorf("%w: additional person rate is required for per_person_sharing mode", ErrInvalidInput)
	}

	if req.ChildPricePerNight != nil && *req.ChildPricePerNight < 0 {
		return fmt.Errorf("%w: child price per night must be non-negative", ErrInvalidInput)
	}

	if req.ChildFreeUntilAge != nil && (*req.ChildFreeUntilAge < 0 || *req.ChildFreeUntilAge > domain.MaxGuestAge) {
		return fmt.Errorf("%w: child free until age must be between 0 and %d", ErrInvalidInput, domain.MaxGuestAge)
	}

	if req.ChildAgeLimit != nil && (*req.ChildAgeLimit < 1 || *req.ChildAgeLimit > domain.MaxGuestAge+1) {
		return fmt.Errorf("%w: child age limit must be between 1 and %d", ErrInvalidInput, domain.MaxGuestAge+1)
	}

	if req.MaxGuests < 1 {
		return fmt.Errorf("%w: max guests must be positive", ErrInvalidInput)
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером объекта размещения
func (s *Service) checkManagerAccess(ctx context.Context, propertyID int64, userID int64) error {
	property, err := s.propertyClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("checkManagerAccess: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get property id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of property=%d", userID, propertyID)
		return ErrAccessDenied
	}

	return nil
}
