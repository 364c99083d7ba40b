package get_stay_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/staysuite/pricing-service/internal/domain"
	roomRepo "github.com/staysuite/pricing-service/internal/infra/storage/room"
	"github.com/staysuite/pricing-service/internal/pricing"
)

// UseCase use case расчета стоимости проживания
type UseCase struct {
	roomRepo RoomRepository
	rateRepo RateRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	rateRepo RateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		rateRepo: rateRepo,
		logger:   logger,
	}
}

// Execute выполняет расчет стоимости проживания
// Если сезонные ставки недоступны, возвращает приблизительный расчет по базовой
// цене с пометкой source=estimated вместо ошибки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStayQuote: tenant=%d, room=%d, checkIn=%s, checkOut=%s, adults=%d, children=%d",
		req.TenantID, req.RoomID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.Adults, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStayQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetStayQuote: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetStayQuote: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем принадлежность комнаты арендатору
	// Чужая комната неотличима от несуществующей, чтобы не раскрывать
	// данные других арендаторов
	if !room.BelongsToTenant(req.TenantID) {
		uc.logger.Warn("GetStayQuote: room id=%d belongs to tenant=%d, not tenant=%d",
			req.RoomID, room.TenantID, req.TenantID)
		return nil, ErrRoomNotFound
	}

	// 4. Проверяем, что комната в продаже
	if !room.IsActive {
		uc.logger.Warn("GetStayQuote: room id=%d is not active", req.RoomID)
		return nil, ErrRoomInactive
	}

	// 5. Проверяем вместимость комнаты
	if !room.CanHost(req.Adults + req.Children) {
		uc.logger.Warn("GetStayQuote: room id=%d cannot host %d guests (max %d)",
			req.RoomID, req.Adults+req.Children, room.MaxGuests)
		return nil, ErrTooManyGuests
	}

	stay := pricing.StayRequest{
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Adults:       req.Adults,
		Children:     req.Children,
		ChildrenAges: req.ChildrenAges,
	}

	// 6. Получаем сезонные ставки
	rates, err := uc.rateRepo.GetByRoomID(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("GetStayQuote: failed to get rates for room id=%d, serving estimate: %v",
			req.RoomID, err)
		return fromQuote(pricing.Estimate(room, stay)), nil
	}

	// 7. Строим полный расчет
	quote := pricing.BuildQuote(room, rates, stay)

	for _, night := range quote.Nights {
		rateName := "base"
		if night.RateName != nil {
			rateName = *night.RateName
		}
		uc.logger.Debug("GetStayQuote: room=%d night=%s rate=%q price=%.2f",
			req.RoomID, night.Date.Format(domain.DateFormat), rateName, night.Price)
	}

	uc.logger.Info("GetStayQuote: room=%d, %d nights, subtotal=%.2f %s",
		req.RoomID, quote.NightCount, quote.Subtotal, quote.Currency)
	return fromQuote(quote), nil
}
