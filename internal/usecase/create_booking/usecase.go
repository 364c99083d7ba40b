package create_booking

import (
	"context"
	"fmt"
	"math"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/pricing"
)

// priceTolerance допуск на погрешность float64 при передаче итога через JSON.
// Расхождение больше допуска считается изменением цены.
const priceTolerance = 0.01

// UseCase use case создания бронирования
type UseCase struct {
	roomRepo     RoomRepository
	rateRepo     RateRepository
	addonRepo    AddonRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	rateRepo RateRepository,
	addonRepo AddonRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		rateRepo:     rateRepo,
		addonRepo:    addonRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Итог пересчитывается по актуальным данным внутри сериализуемой транзакции
// и сверяется с итогом клиента: расхождение отклоняет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, tenant=%d, property=%d, checkIn=%s, checkOut=%s, rooms=%d",
		req.UserID, req.TenantID, req.PropertyID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), len(req.Rooms))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что заезд еще не прошел
	now := uc.timeProvider.Now()
	if err := validateCheckInNotPast(req.CheckIn, now); err != nil {
		uc.logger.Warn("CreateBooking: check-in %s is in the past", req.CheckIn.Format(domain.DateFormat))
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 3. Пересчет и сохранение в сериализуемой транзакции, чтобы проверенный
	// итог и зафиксированный снимок не разошлись
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем и проверяем комнаты
		rooms, err := uc.loadRooms(txCtx, req)
		if err != nil {
			return err
		}

		// 3.2. Проверяем, что валюта комнат совпадает
		currency := rooms[req.Rooms[0].RoomID].Currency
		for _, roomReq := range req.Rooms {
			if rooms[roomReq.RoomID].Currency != currency {
				uc.logger.Warn("CreateBooking: room id=%d currency %s differs from %s",
					roomReq.RoomID, rooms[roomReq.RoomID].Currency, currency)
				return ErrMixedCurrencies
			}
		}

		nightCount := pricing.StayRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut}.NightCount()

		// 3.3. Пересчитываем каждую комнату по актуальным данным
		bookingRooms := make([]domain.BookingRoom, 0, len(req.Rooms))
		roomCharges := make([]pricing.RoomCharge, 0, len(req.Rooms))

		for _, roomReq := range req.Rooms {
			room := rooms[roomReq.RoomID]

			rates, err := uc.rateRepo.GetByRoomID(txCtx, room.ID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get rates for room id=%d: %v", room.ID, err)
				return fmt.Errorf("%w: failed to get rates: %v", ErrInternal, err)
			}

			quote := pricing.BuildQuote(room, rates, pricing.StayRequest{
				CheckIn:      req.CheckIn,
				CheckOut:     req.CheckOut,
				Adults:       roomReq.Adults,
				Children:     roomReq.Children,
				ChildrenAges: roomReq.ChildrenAges,
			})

			roomCharges = append(roomCharges, pricing.RoomCharge{
				Subtotal:      quote.Subtotal,
				AdjustedTotal: roomReq.AdjustedTotal,
			})
			bookingRooms = append(bookingRooms, domain.BookingRoom{
				RoomID:        room.ID,
				RoomName:      room.Name,
				Adults:        roomReq.Adults,
				Children:      roomReq.Children,
				ChildrenAges:  agesToInt64(roomReq.ChildrenAges),
				Subtotal:      quote.Subtotal,
				AdjustedTotal: roomReq.AdjustedTotal,
			})
		}

		// 3.4. Пересчитываем дополнительные услуги
		bookingAddons, addonCharges, err := uc.priceAddons(txCtx, req, nightCount, guestTotal(req.Rooms))
		if err != nil {
			return err
		}

		// 3.5. Сводим итоги
		totals := pricing.Totalize(roomCharges, addonCharges, req.DiscountAmount)

		// 3.6. Сверяем итог клиента с пересчитанным итогом
		if math.Abs(totals.GrandTotal-req.ClientTotal) > priceTolerance {
			uc.logger.Warn("CreateBooking: client total %.2f does not match server total %.2f",
				req.ClientTotal, totals.GrandTotal)
			return ErrPriceMismatch
		}

		// 3.7. Создаем бронирование со снимком расчета
		booking := &domain.Booking{
			TenantID:       req.TenantID,
			PropertyID:     req.PropertyID,
			UserID:         req.UserID,
			GuestEmail:     req.GuestEmail,
			CheckIn:        domain.DateOnly(req.CheckIn),
			CheckOut:       domain.DateOnly(req.CheckOut),
			Status:         domain.StatusPending,
			RoomsSubtotal:  totals.RoomsSubtotal,
			AddonsSubtotal: totals.AddonsSubtotal,
			DiscountAmount: req.DiscountAmount,
			GrandTotal:     totals.GrandTotal,
			Currency:       currency,
			Notes:          req.Notes,
			Rooms:          bookingRooms,
			Addons:         bookingAddons,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, grand total=%.2f %s",
		result.ID, result.GrandTotal, result.Currency)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		TenantID:       result.TenantID,
		PropertyID:     result.PropertyID,
		GuestEmail:     result.GuestEmail,
		CheckIn:        result.CheckIn,
		CheckOut:       result.CheckOut,
		Status:         string(result.Status),
		RoomsSubtotal:  result.RoomsSubtotal,
		AddonsSubtotal: result.AddonsSubtotal,
		DiscountAmount: result.DiscountAmount,
		GrandTotal:     result.GrandTotal,
		Currency:       result.Currency,
		Notes:          result.Notes,
		Rooms:          result.Rooms,
		Addons:         result.Addons,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// loadRooms получает комнаты бронирования и проверяет каждую
// Чужие комнаты и комнаты других объектов неотличимы от несуществующих
func (uc *UseCase) loadRooms(ctx context.Context, req *Request) (map[int64]*domain.Room, error) {
	ids := make([]int64, 0, len(req.Rooms))
	for _, roomReq := range req.Rooms {
		ids = append(ids, roomReq.RoomID)
	}

	found, err := uc.roomRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	rooms := make(map[int64]*domain.Room, len(found))
	for _, room := range found {
		rooms[room.ID] = room
	}

	for _, roomReq := range req.Rooms {
		room, ok := rooms[roomReq.RoomID]
		if !ok {
			uc.logger.Warn("CreateBooking: room id=%d not found", roomReq.RoomID)
			return nil, ErrRoomNotFound
		}

		if !room.BelongsToTenant(req.TenantID) || room.PropertyID != req.PropertyID {
			uc.logger.Warn("CreateBooking: room id=%d does not belong to tenant=%d property=%d",
				roomReq.RoomID, req.TenantID, req.PropertyID)
			return nil, ErrRoomNotFound
		}

		if !room.IsActive {
			uc.logger.Warn("CreateBooking: room id=%d is not active", roomReq.RoomID)
			return nil, ErrRoomInactive
		}

		if !room.CanHost(roomReq.Adults + roomReq.Children) {
			uc.logger.Warn("CreateBooking: room id=%d cannot host %d guests (max %d)",
				roomReq.RoomID, roomReq.Adults+roomReq.Children, room.MaxGuests)
			return nil, ErrTooManyGuests
		}
	}

	return rooms, nil
}

// priceAddons получает услуги бронирования, проверяет их доступность и
// формирует снимки строк
func (uc *UseCase) priceAddons(ctx context.Context, req *Request, nightCount, guestCount int) ([]domain.BookingAddon, []float64, error) {
	lines := make([]domain.BookingAddon, 0, len(req.Addons))
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
		uc.logger.Error("CreateBooking: failed to get addons: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to get addons: %v", ErrInternal, err)
	}

	addons := make(map[int64]*domain.Addon, len(found))
	for _, addon := range found {
		addons[addon.ID] = addon
	}

	bookingRooms := make(map[int64]struct{}, len(req.Rooms))
	for _, roomReq := range req.Rooms {
		bookingRooms[roomReq.RoomID] = struct{}{}
	}

	for _, addonReq := range req.Addons {
		addon, ok := addons[addonReq.AddonID]
		if !ok || !addon.IsActive || addon.PropertyID != req.PropertyID {
			uc.logger.Warn("CreateBooking: addon id=%d not available for property=%d",
				addonReq.AddonID, req.PropertyID)
			return nil, nil, ErrAddonNotFound
		}

		// Услуга, привязанная к комнате, требует эту комнату в бронировании
		if addon.RoomID != nil {
			if _, ok := bookingRooms[*addon.RoomID]; !ok {
				uc.logger.Warn("CreateBooking: addon id=%d requires room id=%d which is not in the booking",
					addonReq.AddonID, *addon.RoomID)
				return nil, nil, ErrAddonNotAvailable
			}
		}

		quantity := addon.ClampQuantity(addonReq.Quantity)
		charge := pricing.AddonCharge(addon, quantity, nightCount, guestCount)

		charges = append(charges, charge)
		lines = append(lines, domain.BookingAddon{
			AddonID:     addon.ID,
			Name:        addon.Name,
			PricingType: addon.PricingType,
			UnitPrice:   addon.Price,
			Quantity:    quantity,
			Charge:      charge,
		})
	}

	return lines, charges, nil
}

// agesToInt64 конвертирует возраст детей для хранения в integer[]
func agesToInt64(ages []int) []int64 {
	if len(ages) == 0 {
		return []int64{}
	}

	out := make([]int64, len(ages))
	for i, age := range ages {
		out[i] = int64(age)
	}
	return out
}
