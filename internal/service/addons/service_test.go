package addons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/integrations/propertyservice"
)

type fakeAddonRepo struct {
	addons []*domain.Addon
	err    error
}

func (f *fakeAddonRepo) GetActiveByPropertyID(_ context.Context, propertyID int64) ([]*domain.Addon, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []*domain.Addon
	for _, addon := range f.addons {
		if addon.PropertyID == propertyID {
			out = append(out, addon)
		}
	}
	return out, nil
}

type fakePropertyClient struct {
	properties map[int64]*propertyservice.Property
	degraded   bool
}

func (f *fakePropertyClient) GetPropertyWithGracefulDegradation(_ context.Context, propertyID int64) (*propertyservice.Property, error) {
	if f.degraded {
		return nil, propertyservice.ErrServiceDegraded
	}

	property, ok := f.properties[propertyID]
	if !ok {
		return nil, propertyservice.ErrPropertyNotFound
	}
	return property, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func breakfastAddon() *domain.Addon {
	return &domain.Addon{
		ID:          1,
		PropertyID:  11,
		Name:        "Breakfast",
		Price:       25,
		PricingType: domain.AddonPerGuestPerNight,
		MaxQuantity: 1,
		IsActive:    true,
	}
}

func seasideVilla() *propertyservice.Property {
	return &propertyservice.Property{ID: 11, TenantID: 1, Name: "Seaside Villa", IsActive: true}
}

func TestGetByPropertyReturnsCatalog(t *testing.T) {
	t.Parallel()

	repo := &fakeAddonRepo{addons: []*domain.Addon{breakfastAddon()}}
	client := &fakePropertyClient{properties: map[int64]*propertyservice.Property{11: seasideVilla()}}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.GetByProperty(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, resp.Addons, 1)
	require.Equal(t, "Breakfast", resp.Addons[0].Name)
	require.Equal(t, "per_guest_per_night", resp.Addons[0].PricingType)
}

func TestGetByPropertyUnknownPropertyGivesEmptyCatalog(t *testing.T) {
	t.Parallel()

	repo := &fakeAddonRepo{addons: []*domain.Addon{breakfastAddon()}}
	client := &fakePropertyClient{properties: map[int64]*propertyservice.Property{}}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.GetByProperty(context.Background(), 404)
	require.NoError(t, err)
	require.Empty(t, resp.Addons)
}

func TestGetByPropertyServesLocalDataWhenPropertyServiceIsDown(t *testing.T) {
	t.Parallel()

	repo := &fakeAddonRepo{addons: []*domain.Addon{breakfastAddon()}}
	client := &fakePropertyClient{degraded: true}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.GetByProperty(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, resp.Addons, 1, "degraded property check must not block the catalog")
}

func TestGetByPropertyRepositoryErrorFails(t *testing.T) {
	t.Parallel()

	repo := &fakeAddonRepo{err: context.DeadlineExceeded}
	client := &fakePropertyClient{properties: map[int64]*propertyservice.Property{11: seasideVilla()}}
	svc := NewService(repo, client, nopLogger{})

	_, err := svc.GetByProperty(context.Background(), 11)
	require.ErrorIs(t, err, ErrInternal)
}
