package get_stay_quote

import (
	"time"

	"github.com/staysuite/pricing-service/internal/pricing"
)

// Request модель запроса на расчет стоимости проживания
type Request struct {
	TenantID     int64     // ID арендатора платформы
	RoomID       int64     // ID комнаты
	CheckIn      time.Time // Дата заезда
	CheckOut     time.Time // Дата выезда (не включается в проживание)
	Adults       int       // Количество взрослых
	Children     int       // Количество детей
	ChildrenAges []int     // Возраст каждого ребенка (опционально)
}

// Response модель ответа с расчетом стоимости
type Response struct {
	RoomID     int64               // ID комнаты
	RoomName   string              // Название комнаты
	Nights     []pricing.NightLine // Постатейный расчет по ночам
	Subtotal   float64             // Итоговая стоимость проживания
	Currency   string              // Валюта комнаты
	NightCount int                 // Количество ночей
	Source     string              // "full" или "estimated"
}

// fromQuote конвертирует расчет движка в response
func fromQuote(quote *pricing.Quote) *Response {
	return &Response{
		RoomID:     quote.RoomID,
		RoomName:   quote.RoomName,
		Nights:     quote.Nights,
		Subtotal:   quote.Subtotal,
		Currency:   quote.Currency,
		NightCount: quote.NightCount,
		Source:     string(quote.Source),
	}
}
