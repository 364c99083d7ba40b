package get_stay_quote

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	getStayQuote "github.com/staysuite/pricing-service/internal/usecase/get_stay_quote"
)

// NightResponse HTTP model строки расчета за одну ночь
type NightResponse struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	RateName *string `json:"rateName,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID     int64           `json:"roomId"`
	RoomName   string          `json:"roomName"`
	Nights     []NightResponse `json:"nights"`
	Subtotal   float64         `json:"subtotal"`
	Currency   string          `json:"currency"`
	NightCount int             `json:"nightCount"`
	Source     string          `json:"source"`
}

// ToUseCaseRequest формирует запрос use case с парсингом дат
func ToUseCaseRequest(tenantID, roomID int64, checkInStr, checkOutStr string, adults, children int, childrenAges []int) (*getStayQuote.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		return nil, err
	}

	return &getStayQuote.Request{
		TenantID:     tenantID,
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Adults:       adults,
		Children:     children,
		ChildrenAges: childrenAges,
	}, nil
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(result *getStayQuote.Response) *QuoteResponse {
	nights := make([]NightResponse, 0, len(result.Nights))
	for _, night := range result.Nights {
		nights = append(nights, NightResponse{
			Date:     night.Date.Format(domain.DateFormat),
			Price:    night.Price,
			RateName: night.RateName,
		})
	}

	return &QuoteResponse{
		RoomID:     result.RoomID,
		RoomName:   result.RoomName,
		Nights:     nights,
		Subtotal:   result.Subtotal,
		Currency:   result.Currency,
		NightCount: result.NightCount,
		Source:     result.Source,
	}
}
