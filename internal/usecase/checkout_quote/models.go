package checkout_quote

import (
	"time"

	"github.com/staysuite/pricing-service/internal/pricing"
)

// RoomRequest комната в составе заказа
type RoomRequest struct {
	RoomID        int64    // ID комнаты
	Adults        int      // Количество взрослых
	Children      int      // Количество детей
	ChildrenAges  []int    // Возраст каждого ребенка (опционально)
	AdjustedTotal *float64 // Ручная корректировка стоимости комнаты (опционально)
}

// AddonRequest дополнительная услуга в составе заказа
type AddonRequest struct {
	AddonID  int64 // ID услуги
	Quantity int   // Количество (ограничивается maxQuantity услуги)
}

// Request модель запроса на расчет корзины
type Request struct {
	TenantID       int64          // ID арендатора платформы
	PropertyID     int64          // ID объекта размещения
	CheckIn        time.Time      // Дата заезда (общая для всех комнат)
	CheckOut       time.Time      // Дата выезда (общая для всех комнат)
	Rooms          []RoomRequest  // Комнаты заказа
	Addons         []AddonRequest // Дополнительные услуги заказа
	DiscountAmount float64        // Уже рассчитанная скидка
}

// RoomQuote расчет стоимости одной комнаты заказа
type RoomQuote struct {
	RoomID        int64               // ID комнаты
	RoomName      string              // Название комнаты
	Nights        []pricing.NightLine // Постатейный расчет по ночам
	Subtotal      float64             // Расчетная стоимость проживания
	AdjustedTotal *float64            // Ручная корректировка (если была)
	Total         float64             // Итог по комнате с учетом корректировки
	Source        string              // "full" или "estimated"
}

// AddonLine рассчитанная строка дополнительной услуги
type AddonLine struct {
	AddonID     int64   // ID услуги
	Name        string  // Название услуги
	PricingType string  // База тарификации
	UnitPrice   float64 // Цена за единицу
	Quantity    int     // Количество после ограничения maxQuantity
	Charge      float64 // Итоговая стоимость строки
}

// Response модель ответа с расчетом корзины
type Response struct {
	Rooms  []RoomQuote // Расчеты по комнатам
	Addons []AddonLine // Строки дополнительных услуг

	RoomsSubtotal  float64 // Сумма по комнатам с учетом корректировок
	AddonsSubtotal float64 // Сумма по дополнительным услугам
	DiscountAmount float64 // Примененная скидка
	GrandTotal     float64 // Итог к оплате (не меньше нуля)
	Currency       string  // Общая валюта заказа
	NightCount     int     // Количество ночей
}
