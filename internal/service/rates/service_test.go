package rates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	storagerate "github.com/staysuite/pricing-service/internal/infra/storage/rate"
	storageroom "github.com/staysuite/pricing-service/internal/infra/storage/room"
	"github.com/staysuite/pricing-service/internal/integrations/propertyservice"
	"github.com/staysuite/pricing-service/internal/service/rates/models"
	"github.com/staysuite/pricing-service/pkg/ptr"
)

const (
	managerID  = int64(7)
	strangerID = int64(99)
)

type fakeRateRepo struct {
	rates  map[int64]*domain.SeasonalRate
	nextID int64
}

func newFakeRateRepo(rates ...*domain.SeasonalRate) *fakeRateRepo {
	repo := &fakeRateRepo{rates: make(map[int64]*domain.SeasonalRate), nextID: 1}
	for _, rate := range rates {
		repo.rates[rate.ID] = rate
		if rate.ID >= repo.nextID {
			repo.nextID = rate.ID + 1
		}
	}
	return repo
}

func (f *fakeRateRepo) GetByRoomID(_ context.Context, roomID int64) ([]*domain.SeasonalRate, error) {
	var out []*domain.SeasonalRate
	for _, rate := range f.rates {
		if rate.RoomID == roomID {
			out = append(out, rate)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) GetByID(_ context.Context, id int64) (*domain.SeasonalRate, error) {
	rate, ok := f.rates[id]
	if !ok {
		return nil, storagerate.ErrRateNotFound
	}
	copied := *rate
	return &copied, nil
}

func (f *fakeRateRepo) GetOverlapping(_ context.Context, roomID int64, start, end time.Time, priority int, excludeID *int64) ([]*domain.SeasonalRate, error) {
	var out []*domain.SeasonalRate
	for _, rate := range f.rates {
		if rate.RoomID != roomID || rate.Priority != priority {
			continue
		}
		if excludeID != nil && rate.ID == *excludeID {
			continue
		}
		if rate.OverlapsRange(start, end) {
			out = append(out, rate)
		}
	}
	return out, nil
}

func (f *fakeRateRepo) Create(_ context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error) {
	created := *rate
	created.ID = f.nextID
	f.nextID++
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.rates[created.ID] = &created
	return &created, nil
}

func (f *fakeRateRepo) Update(_ context.Context, rate *domain.SeasonalRate) error {
	existing, ok := f.rates[rate.ID]
	if !ok || existing.RoomID != rate.RoomID {
		return storagerate.ErrRateNotFound
	}
	updated := *rate
	updated.UpdatedAt = time.Now()
	f.rates[rate.ID] = &updated
	return nil
}

func (f *fakeRateRepo) Delete(_ context.Context, roomID, id int64) error {
	existing, ok := f.rates[id]
	if !ok || existing.RoomID != roomID {
		return storagerate.ErrRateNotFound
	}
	delete(f.rates, id)
	return nil
}

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

type fakePropertyClient struct {
	properties map[int64]*propertyservice.Property
}

func (f *fakePropertyClient) GetProperty(_ context.Context, propertyID int64) (*propertyservice.Property, error) {
	property, ok := f.properties[propertyID]
	if !ok {
		return nil, propertyservice.ErrPropertyNotFound
	}
	return property, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(rateRepo *fakeRateRepo) *Service {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, TenantID: 1, PropertyID: 11, Name: "Garden Studio", Currency: "EUR", MaxGuests: 4},
	}}
	properties := &fakePropertyClient{properties: map[int64]*propertyservice.Property{
		11: {ID: 11, TenantID: 1, Name: "Seaside Villa", IsActive: true, ManagerIDs: []int64{managerID}},
	}}
	return NewService(rateRepo, rooms, properties, passthroughTxManager{}, nopLogger{})
}

func summerRate(id int64, priority int) *domain.SeasonalRate {
	return &domain.SeasonalRate{
		ID:            id,
		RoomID:        101,
		Name:          "Summer",
		StartDate:     day(2026, time.July, 1),
		EndDate:       day(2026, time.August, 31),
		PricePerNight: 1500,
		Priority:      priority,
	}
}

func TestCreateRejectsOverlapWithSamePriority(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	_, err := svc.Create(context.Background(), 101, &models.CreateRateRequest{
		UserID:        managerID,
		Name:          "Mid-summer peak",
		StartDate:     day(2026, time.July, 15),
		EndDate:       day(2026, time.September, 15),
		PricePerNight: 1800,
		Priority:      10,
	})
	require.ErrorIs(t, err, ErrRateOverlap)
}

func TestCreateAllowsOverlapWithDifferentPriority(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	created, err := svc.Create(context.Background(), 101, &models.CreateRateRequest{
		UserID:        managerID,
		Name:          "Mid-summer peak",
		StartDate:     day(2026, time.July, 15),
		EndDate:       day(2026, time.September, 15),
		PricePerNight: 1800,
		Priority:      20,
	})
	require.NoError(t, err)
	require.Equal(t, "Mid-summer peak", created.Name)
	require.Equal(t, 20, created.Priority)
}

func TestCreateRejectsTouchingBoundary(t *testing.T) {
	t.Parallel()

	// Диапазоны включительные: ставка, начинающаяся в день окончания
	// существующей, пересекается с ней.
	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	_, err := svc.Create(context.Background(), 101, &models.CreateRateRequest{
		UserID:        managerID,
		Name:          "Autumn",
		StartDate:     day(2026, time.August, 31),
		EndDate:       day(2026, time.September, 30),
		PricePerNight: 900,
		Priority:      10,
	})
	require.ErrorIs(t, err, ErrRateOverlap)
}

func TestCreateDeniedForNonManager(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo())

	_, err := svc.Create(context.Background(), 101, &models.CreateRateRequest{
		UserID:        strangerID,
		Name:          "Summer",
		StartDate:     day(2026, time.July, 1),
		EndDate:       day(2026, time.August, 31),
		PricePerNight: 1500,
		Priority:      10,
	})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateValidatesInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  models.CreateRateRequest
	}{
		{
			name: "empty name",
			req: models.CreateRateRequest{
				UserID:    managerID,
				StartDate: day(2026, time.July, 1), EndDate: day(2026, time.August, 31),
				PricePerNight: 1500, Priority: 10,
			},
		},
		{
			name: "end before start",
			req: models.CreateRateRequest{
				UserID: managerID, Name: "Backwards",
				StartDate: day(2026, time.August, 31), EndDate: day(2026, time.July, 1),
				PricePerNight: 1500, Priority: 10,
			},
		},
		{
			name: "negative price",
			req: models.CreateRateRequest{
				UserID: managerID, Name: "Negative",
				StartDate: day(2026, time.July, 1), EndDate: day(2026, time.August, 31),
				PricePerNight: -1, Priority: 10,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(newFakeRateRepo())
			_, err := svc.Create(context.Background(), 101, &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateExcludesItselfFromOverlapCheck(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	updated, err := svc.Update(context.Background(), 101, 1, &models.UpdateRateRequest{
		UserID:        managerID,
		PricePerNight: ptr.Ptr(1650.0),
	})
	require.NoError(t, err)
	require.Equal(t, 1650.0, updated.PricePerNight)
	require.Equal(t, "2026-07-01", updated.StartDate)
}

func TestUpdateRejectsMoveOntoSamePriorityRate(t *testing.T) {
	t.Parallel()

	autumn := &domain.SeasonalRate{
		ID:     2,
		RoomID: 101,
		Name:   "Autumn",
		StartDate: day(2026, time.September, 1), EndDate: day(2026, time.October, 31),
		PricePerNight: 900,
		Priority:      10,
	}
	svc := newTestService(newFakeRateRepo(summerRate(1, 10), autumn))

	_, err := svc.Update(context.Background(), 101, 2, &models.UpdateRateRequest{
		UserID:    managerID,
		StartDate: ptr.Ptr(day(2026, time.August, 15)),
	})
	require.ErrorIs(t, err, ErrRateOverlap)
}

func TestUpdateRateOfAnotherRoomNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	_, err := svc.Update(context.Background(), 202, 1, &models.UpdateRateRequest{
		UserID:        managerID,
		PricePerNight: ptr.Ptr(1650.0),
	})
	require.ErrorIs(t, err, ErrRateNotFound)
}

func TestDeleteRemovesRate(t *testing.T) {
	t.Parallel()

	repo := newFakeRateRepo(summerRate(1, 10))
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), 101, 1, managerID))
	require.Empty(t, repo.rates)
}

func TestDeleteDeniedForNonManager(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeRateRepo(summerRate(1, 10)))

	err := svc.Delete(context.Background(), 101, 1, strangerID)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestListByRoomPropertyMissingFailsClosed(t *testing.T) {
	t.Parallel()

	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		101: {ID: 101, TenantID: 1, PropertyID: 404, Name: "Orphan", Currency: "EUR"},
	}}
	properties := &fakePropertyClient{properties: map[int64]*propertyservice.Property{}}
	svc := NewService(newFakeRateRepo(), rooms, properties, passthroughTxManager{}, nopLogger{})

	_, err := svc.ListByRoom(context.Background(), 101, managerID)
	require.ErrorIs(t, err, ErrPropertyNotFound)
}
