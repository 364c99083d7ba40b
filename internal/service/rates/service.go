package rates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	rateRepo "github.com/staysuite/pricing-service/internal/infra/storage/rate"
	roomRepo "github.com/staysuite/pricing-service/internal/infra/storage/room"
	propertyClient "github.com/staysuite/pricing-service/internal/integrations/propertyservice"
	"github.com/staysuite/pricing-service/internal/service/rates/models"
)

// Service сервис для работы с сезонными ставками
type Service struct {
	rateRepo       RateRepository
	roomRepo       RoomRepository
	propertyClient PropertyServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса сезонных ставок
func NewService(
	rateRepo RateRepository,
	roomRepo RoomRepository,
	propertyClient PropertyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		rateRepo:       rateRepo,
		roomRepo:       roomRepo,
		propertyClient: propertyClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// ListByRoom получает все сезонные ставки комнаты
// Доступно только менеджерам объекта размещения
func (s *Service) ListByRoom(ctx context.Context, roomID int64, userID int64) (*models.RateListResponse, error) {
	s.logger.Info("ListByRoom: fetching rates for room=%d by user=%d", roomID, userID)

	// 1. Получаем комнату для проверки прав доступа
	if _, err := s.getRoomWithAccess(ctx, roomID, userID, "ListByRoom"); err != nil {
		return nil, err
	}

	// 2. Получаем ставки
	rates, err := s.rateRepo.GetByRoomID(ctx, roomID)
	if err != nil {
		s.logger.Error("ListByRoom: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByRoom: successfully fetched %d rates for room=%d", len(rates), roomID)
	return models.FromDomainRateList(rates), nil
}

// Create создает новую сезонную ставку
// Доступно только менеджерам объекта размещения
// Диапазон, пересекающийся с существующей ставкой того же приоритета, отклоняется
func (s *Service) Create(ctx context.Context, roomID int64, req *models.CreateRateRequest) (*models.RateResponse, error) {
	s.logger.Info("Create: creating rate for room=%d by user=%d", roomID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateRateData(req.Name, req.StartDate, req.EndDate, req.PricePerNight); err != nil {
		s.logger.Warn("Create: validation failed for room=%d: %v", roomID, err)
		return nil, err
	}

	// 2. Получаем комнату для проверки прав доступа
	if _, err := s.getRoomWithAccess(ctx, roomID, req.UserID, "Create"); err != nil {
		return nil, err
	}

	// 3. Проверка пересечения и вставка выполняются в одной SERIALIZABLE
	// транзакции, иначе два конкурентных запроса могут создать
	// пересекающиеся ставки одного приоритета
	rate := req.ToDomainRate(roomID)
	var created *domain.SeasonalRate

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем пересечение с существующими ставками того же приоритета
		if err := s.checkOverlap(txCtx, rate, nil); err != nil {
			return err
		}

		// 3.2. Создаем ставку
		var err error
		created, err = s.rateRepo.Create(txCtx, rate)
		if err != nil {
			s.logger.Error("Create: repository error for room=%d: %v", roomID, err)
			return fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created rate id=%d for room=%d", created.ID, roomID)
	return models.FromDomainRate(created), nil
}

// Update обновляет существующую сезонную ставку
// Доступно только менеджерам объекта размещения
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, roomID, rateID int64, req *models.UpdateRateRequest) (*models.RateResponse, error) {
	s.logger.Info("Update: updating rate id=%d for room=%d by user=%d", rateID, roomID, req.UserID)

	// 1. Получаем существующую ставку
	rate, err := s.getRateForRoom(ctx, roomID, rateID, "Update")
	if err != nil {
		return nil, err
	}

	// 2. Применяем обновления к копии и валидируем результат
	updated := *rate
	req.ApplyToRate(&updated)
	if err := s.validateRateData(updated.Name, updated.StartDate, updated.EndDate, updated.PricePerNight); err != nil {
		s.logger.Warn("Update: validation failed for rate id=%d: %v", rateID, err)
		return nil, err
	}

	// 3. Получаем комнату для проверки прав доступа
	if _, err := s.getRoomWithAccess(ctx, roomID, req.UserID, "Update"); err != nil {
		return nil, err
	}

	// 4. Проверка пересечения и запись выполняются в одной SERIALIZABLE
	// транзакции, как и при создании ставки
	var fresh *domain.SeasonalRate

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем пересечение, исключая саму ставку
		if err := s.checkOverlap(txCtx, &updated, &rateID); err != nil {
			return err
		}

		// 4.2. Обновляем ставку в БД
		if err := s.rateRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, rateRepo.ErrRateNotFound) {
				s.logger.Warn("Update: rate id=%d not found during update", rateID)
				return ErrRateNotFound
			}
			s.logger.Error("Update: repository error for rate id=%d: %v", rateID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		// 4.3. Перечитываем ставку, чтобы вернуть актуальные данные
		var err error
		fresh, err = s.rateRepo.GetByID(txCtx, rateID)
		if err != nil {
			s.logger.Error("Update: failed to reload rate id=%d: %v", rateID, err)
			return fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated rate id=%d for room=%d", rateID, roomID)
	return models.FromDomainRate(fresh), nil
}

// Delete удаляет сезонную ставку
// Доступно только менеджерам объекта размещения
func (s *Service) Delete(ctx context.Context, roomID, rateID int64, userID int64) error {
	s.logger.Info("Delete: deleting rate id=%d for room=%d by user=%d", rateID, roomID, userID)

	// 1. Убеждаемся, что ставка существует и принадлежит комнате
	if _, err := s.getRateForRoom(ctx, roomID, rateID, "Delete"); err != nil {
		return err
	}

	// 2. Получаем комнату для проверки прав доступа
	if _, err := s.getRoomWithAccess(ctx, roomID, userID, "Delete"); err != nil {
		return err
	}

	// 3. Удаляем ставку
	if err := s.rateRepo.Delete(ctx, roomID, rateID); err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			s.logger.Warn("Delete: rate id=%d not found during deletion", rateID)
			return ErrRateNotFound
		}
		s.logger.Error("Delete: repository error for rate id=%d: %v", rateID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rate id=%d for room=%d", rateID, roomID)
	return nil
}

// validateRateData проверяет корректность данных сезонной ставки
func (s *Service) validateRateData(name string, start, end time.Time, pricePerNight float64) error {
	if name == "" {
		return fmt.Errorf("%w: rate name must not be empty", ErrInvalidInput)
	}

	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: rate name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if domain.DateOnly(end).Before(domain.DateOnly(start)) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}

	if pricePerNight < 0 {
		return fmt.Errorf("%w: price per night must be non-negative", ErrInvalidInput)
	}

	return nil
}

// checkOverlap отклоняет ставку, пересекающуюся по датам с существующей
// ставкой того же приоритета. excludeID исключает саму ставку при обновлении.
func (s *Service) checkOverlap(ctx context.Context, rate *domain.SeasonalRate, excludeID *int64) error {
	overlapping, err := s.rateRepo.GetOverlapping(ctx, rate.RoomID, rate.StartDate, rate.EndDate, rate.Priority, excludeID)
	if err != nil {
		s.logger.Error("checkOverlap: repository error for room=%d: %v", rate.RoomID, err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	if len(overlapping) > 0 {
		s.logger.Warn("checkOverlap: rate [%s, %s] priority=%d overlaps rate id=%d for room=%d",
			rate.StartDate.Format(domain.DateFormat), rate.EndDate.Format(domain.DateFormat),
			rate.Priority, overlapping[0].ID, rate.RoomID)
		return ErrRateOverlap
	}

	return nil
}

// getRateForRoom получает ставку и проверяет её принадлежность комнате
func (s *Service) getRateForRoom(ctx context.Context, roomID, rateID int64, op string) (*domain.SeasonalRate, error) {
	rate, err := s.rateRepo.GetByID(ctx, rateID)
	if err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			s.logger.Warn("%s: rate id=%d not found", op, rateID)
			return nil, ErrRateNotFound
		}
		s.logger.Error("%s: repository error for rate id=%d: %v", op, rateID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if rate.RoomID != roomID {
		s.logger.Warn("%s: rate id=%d belongs to room=%d, not room=%d", op, rateID, rate.RoomID, roomID)
		return nil, ErrRateNotFound
	}

	return rate, nil
}

// getRoomWithAccess получает комнату и проверяет права менеджера объекта
func (s *Service) getRoomWithAccess(ctx context.Context, roomID int64, userID int64, op string) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, roomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("%s: repository error for room id=%d: %v", op, roomID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	property, err := s.propertyClient.GetProperty(ctx, room.PropertyID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrPropertyNotFound) {
			s.logger.Warn("%s: property id=%d not found", op, room.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("%s: failed to get property id=%d: %v", op, room.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if !property.IsManagedBy(userID) {
		s.logger.Warn("%s: user=%d is not a manager of property=%d", op, userID, room.PropertyID)
		return nil, ErrAccessDenied
	}

	return room, nil
}
