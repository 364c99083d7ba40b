package get_stay_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	storageroom "github.com/staysuite/pricing-service/internal/infra/storage/room"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, storageroom.ErrRoomNotFound
	}
	return room, nil
}

type fakeRateRepo struct {
	rates map[int64][]*domain.SeasonalRate
	err   error
}

func (f *fakeRateRepo) GetByRoomID(_ context.Context, roomID int64) ([]*domain.SeasonalRate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rates[roomID], nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func gardenStudio() *domain.Room {
	return &domain.Room{
		ID:                101,
		TenantID:          1,
		PropertyID:        11,
		Name:              "Garden Studio",
		Currency:          "EUR",
		PricingMode:       domain.PricingPerUnit,
		BasePricePerNight: 1000,
		ChildAgeLimit:     domain.DefaultChildAgeLimit,
		MaxGuests:         4,
		IsActive:          true,
	}
}

func newTestUseCase(room *domain.Room, rates []*domain.SeasonalRate, ratesErr error) *UseCase {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{}}
	if room != nil {
		rooms.rooms[room.ID] = room
	}
	return NewUseCase(rooms, &fakeRateRepo{rates: map[int64][]*domain.SeasonalRate{101: rates}, err: ratesErr}, nopLogger{})
}

func quoteRequest() *Request {
	return &Request{
		TenantID: 1,
		RoomID:   101,
		CheckIn:  day(2026, time.July, 10),
		CheckOut: day(2026, time.July, 13),
		Adults:   2,
	}
}

func TestExecuteFullQuoteWithSeasonalOverride(t *testing.T) {
	t.Parallel()

	rates := []*domain.SeasonalRate{
		{
			ID:     1,
			RoomID: 101,
			Name:   "Festival",
			StartDate: day(2026, time.July, 11), EndDate: day(2026, time.July, 11),
			PricePerNight: 1500,
			Priority:      10,
		},
	}
	uc := newTestUseCase(gardenStudio(), rates, nil)

	resp, err := uc.Execute(context.Background(), quoteRequest())
	require.NoError(t, err)
	require.Equal(t, "full", resp.Source)
	require.Equal(t, 3, resp.NightCount)
	require.Equal(t, 3500.0, resp.Subtotal)
	require.Len(t, resp.Nights, 3)
	require.Nil(t, resp.Nights[0].RateName)
	require.NotNil(t, resp.Nights[1].RateName)
	require.Equal(t, "Festival", *resp.Nights[1].RateName)
	require.Nil(t, resp.Nights[2].RateName)
}

func TestExecuteRoomNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.Execute(context.Background(), quoteRequest())
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteTenantMismatchLooksLikeNotFound(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(gardenStudio(), nil, nil)

	req := quoteRequest()
	req.TenantID = 2

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteInactiveRoom(t *testing.T) {
	t.Parallel()

	room := gardenStudio()
	room.IsActive = false
	uc := newTestUseCase(room, nil, nil)

	_, err := uc.Execute(context.Background(), quoteRequest())
	require.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecuteInvalidDateRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"checkOut before checkIn", day(2026, time.July, 13), day(2026, time.July, 10)},
		{"same day", day(2026, time.July, 10), day(2026, time.July, 10)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := newTestUseCase(gardenStudio(), nil, nil)
			req := quoteRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}
}

func TestExecuteStayTooLong(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(gardenStudio(), nil, nil)
	req := quoteRequest()
	req.CheckOut = req.CheckIn.AddDate(0, 0, domain.MaxStayNights+1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrStayTooLong)
}

func TestExecuteTooManyGuests(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(gardenStudio(), nil, nil)
	req := quoteRequest()
	req.Adults = 3
	req.Children = 2

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrTooManyGuests)
}

func TestExecuteChildAgeOutOfRange(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(gardenStudio(), nil, nil)
	req := quoteRequest()
	req.Children = 1
	req.ChildrenAges = []int{domain.MaxGuestAge + 1}

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteRatesUnavailableServesEstimate(t *testing.T) {
	t.Parallel()

	room := gardenStudio()
	room.PricingMode = domain.PricingPerPerson
	room.ChildPricePerNight = ptr.Ptr(200.0)
	uc := newTestUseCase(room, nil, errors.New("connection refused"))

	resp, err := uc.Execute(context.Background(), quoteRequest())
	require.NoError(t, err)
	require.Equal(t, "estimated", resp.Source)
	// Приблизительный расчет игнорирует режим per_person и сезонные ставки:
	// плоская базовая цена за каждую ночь.
	require.Equal(t, 3000.0, resp.Subtotal)
	require.Equal(t, 3, resp.NightCount)
}
