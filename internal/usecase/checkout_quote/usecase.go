package checkout_quote

import (
	"context"
	"fmt"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/pricing"
)

// UseCase use case расчета корзины из нескольких комнат и услуг
type UseCase struct {
	roomRepo  RoomRepository
	rateRepo  RateRepository
	addonRepo AddonRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	rateRepo RateRepository,
	addonRepo AddonRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:  roomRepo,
		rateRepo:  rateRepo,
		addonRepo: addonRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет расчет корзины
// В отличие от одиночного расчета, корзина никогда не использует
// приблизительный расчет: итог корзины сверяется при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckoutQuote: tenant=%d, property=%d, checkIn=%s, checkOut=%s, rooms=%d, addons=%d",
		req.TenantID, req.PropertyID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), len(req.Rooms), len(req.Addons))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckoutQuote: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var resp *Response

	// 2. Расчет выполняется в read-only транзакции: комнаты, ставки и
	// услуги читаются из одного согласованного снимка
	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем все комнаты заказа
		rooms, err := uc.loadRooms(txCtx, req)
		if err != nil {
			return err
		}

		// 2.2. Проверяем, что валюта комнат совпадает
		currency := rooms[req.Rooms[0].RoomID].Currency
		for _, roomReq := range req.Rooms {
			if rooms[roomReq.RoomID].Currency != currency {
				uc.logger.Warn("CheckoutQuote: room id=%d currency %s differs from %s",
					roomReq.RoomID, rooms[roomReq.RoomID].Currency, currency)
				return ErrMixedCurrencies
			}
		}

		nightCount := pricing.StayRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut}.NightCount()

		// 2.3. Рассчитываем каждую комнату по полным данным
		roomQuotes := make([]RoomQuote, 0, len(req.Rooms))
		roomCharges := make([]pricing.RoomCharge, 0, len(req.Rooms))

		for _, roomReq := range req.Rooms {
			room := rooms[roomReq.RoomID]

			rates, err := uc.rateRepo.GetByRoomID(txCtx, room.ID)
			if err != nil {
				uc.logger.Error("CheckoutQuote: failed to get rates for room id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
			}

			quote := pricing.BuildQuote(room, rates, pricing.StayRequest{
				CheckIn:      req.CheckIn,
				CheckOut:     req.CheckOut,
				Adults:       roomReq.Adults,
				Children:     roomReq.Children,
				ChildrenAges: roomReq.ChildrenAges,
			})

			charge := pricing.RoomCharge{Subtotal: quote.Subtotal, AdjustedTotal: roomReq.AdjustedTotal}
			roomCharges = append(roomCharges, charge)
			roomQuotes = append(roomQuotes, RoomQuote{
				RoomID:        quote.RoomID,
				RoomName:      quote.RoomName,
				Nights:        quote.Nights,
				Subtotal:      quote.Subtotal,
				AdjustedTotal: roomReq.AdjustedTotal,
				Total:         charge.Amount(),
				Source:        string(quote.Source),
			})
		}

		// 2.4. Рассчитываем дополнительные услуги
		guestCount := guestTotal(req.Rooms)
		addonLines, addonCharges, err := uc.priceAddons(txCtx, req, nightCount, guestCount)
		if err != nil {
			return err
		}

		// 2.5. Сводим итоги корзины
		totals := pricing.Totalize(roomCharges, addonCharges, req.DiscountAmount)

		resp = &Response{
			Rooms:          roomQuotes,
			Addons:         addonLines,
			RoomsSubtotal:  totals.RoomsSubtotal,
			AddonsSubtotal: totals.AddonsSubtotal,
			DiscountAmount: req.DiscountAmount,
			GrandTotal:     totals.GrandTotal,
			Currency:       currency,
			NightCount:     nightCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckoutQuote: %d rooms, %d addons, grand total=%.2f %s",
		len(resp.Rooms), len(resp.Addons), resp.GrandTotal, resp.Currency)

	return resp, nil
}

// loadRooms получает комнаты заказа и проверяет каждую
// Чужие комнаты и комнаты других объектов неотличимы от несуществующих
func (uc *UseCase) loadRooms(ctx context.Context, req *Request) (map[int64]*domain.Room, error) {
	ids := make([]int64, 0, len(req.Rooms))
	for _, roomReq := range req.Rooms {
		ids = append(ids, roomReq.RoomID)
	}

	found, err := uc.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CheckoutQuote: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	rooms := make(map[int64]*domain.Room, len(found))
	for _, room := range found {
		rooms[room.ID] = room
	}

	for _, roomReq := range req.Rooms {
		room, ok := rooms[roomReq.RoomID]
		if !ok {
			uc.logger.Warn("CheckoutQuote: room id=%d not found", roomReq.RoomID)
			return nil, ErrRoomNotFound
		}

		if !room.BelongsToTenant(req.TenantID) || room.PropertyID != req.PropertyID {
			uc.logger.Warn("CheckoutQuote: room id=%d does not belong to tenant=%d property=%d",
				roomReq.RoomID, req.TenantID, req.PropertyID)
			return nil, ErrRoomNotFound
		}

		if !room.IsActive {
			uc.logger.Warn("CheckoutQuote: room id=%d is not active", roomReq.RoomID)
			return nil, ErrRoomInactive
		}

		if !room.CanHost(roomReq.Adults + roomReq.Children) {
			uc.logger.Warn("CheckoutQuote: room id=%d cannot host %d guests (max %d)",
				roomReq.RoomID, roomReq.Adults+roomReq.Children, room.MaxGuests)
			return nil, ErrTooManyGuests
		}
	}

	return rooms, nil
}

// priceAddons получает услуги заказа, проверяет их доступность и считает
// стоимость каждой строки
func (uc *UseCase) priceAddons(ctx context.Context, req *Request, nightCount, guestCount int) ([]AddonLine, []float64, error) {
	lines := make([]AddonLine, 0, len(req.Addons))
	charges := make([]float64, 0, len(req.Addons))

	if len(req.Addons) == 0 {
		return lines, charges, nil
	}

	ids := make([]int64, 0, len(req.Addons))
	for _, addonReq := range req.Addons {
		ids = append(ids, addonReq.AddonID)
	}

	found, err := uc.addonRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CheckoutQuote: failed to get addons: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	addons := make(map[int64]*domain.Addon, len(found))
	for _, addon := range found {
		addons[addon.ID] = addon
	}

	checkoutRooms := make(map[int64]struct{}, len(req.Rooms))
	for _, roomReq := range req.Rooms {
		checkoutRooms[roomReq.RoomID] = struct{}{}
	}

	for _, addonReq := range req.Addons {
		addon, ok := addons[addonReq.AddonID]
		if !ok || !addon.IsActive || addon.PropertyID != req.PropertyID {
			uc.logger.Warn("CheckoutQuote: addon id=%d not available for property=%d",
				addonReq.AddonID, req.PropertyID)
			return nil, nil, ErrAddonNotFound
		}

		// Услуга, привязанная к комнате, требует эту комнату в заказе
		if addon.RoomID != nil {
			if _, ok := checkoutRooms[*addon.RoomID]; !ok {
				uc.logger.Warn("CheckoutQuote: addon id=%d requires room id=%d which is not in the checkout",
					addonReq.AddonID, *addon.RoomID)
				return nil, nil, ErrAddonNotAvailable
			}
		}

		quantity := addon.ClampQuantity(addonReq.Quantity)
		charge := pricing.AddonCharge(addon, quantity, nightCount, guestCount)

		charges = append(charges, charge)
		lines = append(lines, AddonLine{
			AddonID:     addon.ID,
			Name:        addon.Name,
			PricingType: string(addon.PricingType),
			UnitPrice:   addon.Price,
			Quantity:    quantity,
			Charge:      charge,
		})
	}

	return lines, charges, nil
}
