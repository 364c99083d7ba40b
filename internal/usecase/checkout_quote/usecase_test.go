package checkout_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (f *fakeRoomRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, id := range ids {
		if room, ok := f.rooms[id]; ok {
			out = append(out, room)
		}
	}
	return out, nil
}

type fakeRateRepo struct {
	rates map[int64][]*domain.SeasonalRate
}

func (f *fakeRateRepo) GetByRoomID(_ context.Context, roomID int64) ([]*domain.SeasonalRate, error) {
	return f.rates[roomID], nil
}

type fakeAddonRepo struct {
	addons map[int64]*domain.Addon
}

func (f *fakeAddonRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Addon, error) {
	var out []*domain.Addon
	for _, id := range ids {
		if addon, ok := f.addons[id]; ok {
			out = append(out, addon)
		}
	}
	return out, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRooms() map[int64]*domain.Room {
	return map[int64]*domain.Room{
		101: {
			ID: 101, TenantID: 1, PropertyID: 11,
			Name: "Garden Studio", Currency: "EUR",
			PricingMode:       domain.PricingPerUnit,
			BasePricePerNight: 1000,
			ChildAgeLimit:     domain.DefaultChildAgeLimit,
			MaxGuests:         4, IsActive: true,
		},
		102: {
			ID: 102, TenantID: 1, PropertyID: 11,
			Name: "Loft Suite", Currency: "EUR",
			PricingMode:       domain.PricingPerUnit,
			BasePricePerNight: 800,
			ChildAgeLimit:     domain.DefaultChildAgeLimit,
			MaxGuests:         2, IsActive: true,
		},
	}
}

func testAddons() map[int64]*domain.Addon {
	return map[int64]*domain.Addon{
		201: {
			ID: 201, PropertyID: 11,
			Name: "Breakfast", Price: 50,
			PricingType: domain.AddonPerGuestPerNight,
			MaxQuantity: 1, IsActive: true,
		},
		202: {
			ID: 202, PropertyID: 11, RoomID: ptr.Ptr(int64(102)),
			Name: "Loft minibar", Price: 30,
			PricingType: domain.AddonPerNight,
			MaxQuantity: 2, IsActive: true,
		},
	}
}

func newTestUseCase(rooms map[int64]*domain.Room, addons map[int64]*domain.Addon) *UseCase {
	return NewUseCase(
		&fakeRoomRepo{rooms: rooms},
		&fakeRateRepo{rates: map[int64][]*domain.SeasonalRate{}},
		&fakeAddonRepo{addons: addons},
		passthroughTxManager{},
		nopLogger{},
	)
}

func checkoutRequest() *Request {
	return &Request{
		TenantID:   1,
		PropertyID: 11,
		CheckIn:    day(2026, time.July, 10),
		CheckOut:   day(2026, time.July, 13),
		Rooms: []RoomRequest{
			{RoomID: 101, Adults: 2, Children: 1, ChildrenAges: []int{6}},
			{RoomID: 102, Adults: 2},
		},
	}
}

func TestExecuteMultiRoomWithAddonsAndDiscount(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), testAddons())

	req := checkoutRequest()
	req.Addons = []AddonRequest{{AddonID: 201, Quantity: 1}}
	req.DiscountAmount = 100

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Комнаты: 1000*3 + 800*3; завтрак: 50 * 1 * 5 гостей * 3 ночи.
	require.Equal(t, 5400.0, resp.RoomsSubtotal)
	require.Equal(t, 750.0, resp.AddonsSubtotal)
	require.Equal(t, 100.0, resp.DiscountAmount)
	require.Equal(t, 6050.0, resp.GrandTotal)
	require.Equal(t, "EUR", resp.Currency)
	require.Equal(t, 3, resp.NightCount)
	require.Len(t, resp.Rooms, 2)
	require.Len(t, resp.Addons, 1)
	require.Equal(t, "full", resp.Rooms[0].Source)
}

func TestExecuteAdjustedTotalOverridesRoomSubtotal(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), nil)

	req := checkoutRequest()
	req.Rooms[0].AdjustedTotal = ptr.Ptr(2500.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 2500 вместо расчетных 3000 плюс нетронутые 2400 второй комнаты.
	require.Equal(t, 4900.0, resp.RoomsSubtotal)
	require.Equal(t, 3000.0, resp.Rooms[0].Subtotal)
	require.Equal(t, 2500.0, resp.Rooms[0].Total)
}

func TestExecuteDiscountNeverPushesTotalBelowZero(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), nil)

	req := checkoutRequest()
	req.Rooms = req.Rooms[:1]
	req.DiscountAmount = 10000

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 0.0, resp.GrandTotal)
}

func TestExecuteMixedCurrenciesRejected(t *testing.T) {
	t.Parallel()

	rooms := testRooms()
	rooms[102].Currency = "USD"
	uc := newTestUseCase(rooms, nil)

	_, err := uc.Execute(context.Background(), checkoutRequest())
	require.ErrorIs(t, err, ErrMixedCurrencies)
}

func TestExecuteForeignPropertyRoomLooksLikeNotFound(t *testing.T) {
	t.Parallel()

	rooms := testRooms()
	rooms[102].PropertyID = 99
	uc := newTestUseCase(rooms, nil)

	_, err := uc.Execute(context.Background(), checkoutRequest())
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteInactiveRoomRejected(t *testing.T) {
	t.Parallel()

	rooms := testRooms()
	rooms[101].IsActive = false
	uc := newTestUseCase(rooms, nil)

	_, err := uc.Execute(context.Background(), checkoutRequest())
	require.ErrorIs(t, err, ErrRoomInactive)
}

func TestExecuteDuplicateRoomRejected(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), nil)

	req := checkoutRequest()
	req.Rooms = append(req.Rooms, RoomRequest{RoomID: 101, Adults: 1})

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAddonQuantityClampedToMax(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), testAddons())

	req := checkoutRequest()
	req.Addons = []AddonRequest{{AddonID: 202, Quantity: 10}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Addons, 1)
	require.Equal(t, 2, resp.Addons[0].Quantity)
	// 30 * 2 шт * 3 ночи.
	require.Equal(t, 180.0, resp.Addons[0].Charge)
}

func TestExecuteRoomScopedAddonRequiresItsRoom(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(testRooms(), testAddons())

	req := checkoutRequest()
	req.Rooms = req.Rooms[:1] // только комната 101
	req.Addons = []AddonRequest{{AddonID: 202, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAddonNotAvailable)
}

func TestExecuteForeignPropertyAddonRejected(t *testing.T) {
	t.Parallel()

	addons := testAddons()
	addons[201].PropertyID = 99
	uc := newTestUseCase(testRooms(), addons)

	req := checkoutRequest()
	req.Addons = []AddonRequest{{AddonID: 201, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrAddonNotFound)
}
