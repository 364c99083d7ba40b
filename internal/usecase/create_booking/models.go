package create_booking

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// RoomRequest комната в составе бронирования
type RoomRequest struct {
	RoomID        int64    // ID комнаты
	Adults        int      // Количество взрослых
	Children      int      // Количество детей
	ChildrenAges  []int    // Возраст каждого ребенка (опционально)
	AdjustedTotal *float64 // Ручная корректировка стоимости комнаты (опционально)
}

// AddonRequest дополнительная услуга в составе бронирования
type AddonRequest struct {
	AddonID  int64 // ID услуги
	Quantity int   // Количество (ограничивается maxQuantity услуги)
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64          // ID пользователя
	TenantID       int64          // ID арендатора платформы
	PropertyID     int64          // ID объекта размещения
	GuestEmail     string         // Email гостя для связи
	CheckIn        time.Time      // Дата заезда
	CheckOut       time.Time      // Дата выезда
	Rooms          []RoomRequest  // Комнаты бронирования
	Addons         []AddonRequest // Дополнительные услуги
	DiscountAmount float64        // Уже рассчитанная скидка
	ClientTotal    float64        // Итог, который видел клиент при оформлении
	Notes          *string        // Пожелания гостя (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	UserID     int64     // ID пользователя
	TenantID   int64     // ID арендатора
	PropertyID int64     // ID объекта размещения
	GuestEmail string    // Email гостя
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда
	Status     string    // Статус бронирования

	// Зафиксированный расчет
	RoomsSubtotal  float64 // Сумма по комнатам
	AddonsSubtotal float64 // Сумма по дополнительным услугам
	DiscountAmount float64 // Скидка
	GrandTotal     float64 // Итог к оплате
	Currency       string  // Валюта бронирования
	Notes          *string // Пожелания гостя

	Rooms  []domain.BookingRoom  // Снимки комнат
	Addons []domain.BookingAddon // Снимки дополнительных услуг

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
