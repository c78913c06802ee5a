package catalogindex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
)

type fakeCatalogClient struct {
	getServiceFn   func(ctx context.Context, serviceID int64) (*catalog.Service, error)
	getStylistFn   func(ctx context.Context, stylistID int64) (*catalog.Stylist, error)
	listStylistsFn func(ctx context.Context) ([]*catalog.Stylist, error)
}

func (f *fakeCatalogClient) GetService(ctx context.Context, serviceID int64) (*catalog.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, serviceID)
}

func (f *fakeCatalogClient) GetStylist(ctx context.Context, stylistID int64) (*catalog.Stylist, error) {
	if f.getStylistFn == nil {
		panic("GetStylist not configured")
	}
	return f.getStylistFn(ctx, stylistID)
}

func (f *fakeCatalogClient) ListStylists(ctx context.Context) ([]*catalog.Stylist, error) {
	if f.listStylistsFn == nil {
		panic("ListStylists not configured")
	}
	return f.listStylistsFn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetService(t *testing.T) {
	cli := &fakeCatalogClient{
		getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
			return &catalog.Service{ID: serviceID, Name: "Стрижка", Price: 1500}, nil
		},
	}
	svc := NewService(cli, nopLogger{})

	service, err := svc.GetService(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Стрижка", service.Name)
}

func TestGetService_NotFound(t *testing.T) {
	cli := &fakeCatalogClient{
		getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
			return nil, catalog.ErrServiceNotFound
		},
	}
	svc := NewService(cli, nopLogger{})

	_, err := svc.GetService(context.Background(), 1)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestStylistsForService_FiltersInactiveAndUnqualified(t *testing.T) {
	cli := &fakeCatalogClient{
		getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
			return &catalog.Service{ID: serviceID}, nil
		},
		listStylistsFn: func(ctx context.Context) ([]*catalog.Stylist, error) {
			return []*catalog.Stylist{
				{ID: 1, Name: "Мария", Status: catalog.StylistAvailable, ServiceIDs: []int64{5}},
				{ID: 2, Name: "Ольга", Status: catalog.StylistInactive, ServiceIDs: []int64{5}},
				{ID: 3, Name: "Ирина", Status: catalog.StylistAvailable, ServiceIDs: []int64{7}},
				{ID: 4, Name: "Елена", Status: catalog.StylistBusy, ServiceIDs: []int64{5, 7}},
			}, nil
		},
	}
	svc := NewService(cli, nopLogger{})

	stylists, err := svc.StylistsForService(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, stylists, 2, "inactive and unqualified stylists must be excluded")
	assert.Equal(t, int64(1), stylists[0].ID)
	assert.Equal(t, int64(4), stylists[1].ID, "busy stylist is still bookable")
}

func TestStylistsForService_UnknownService(t *testing.T) {
	// Неизвестная услуга отличима от услуги без исполнителей
	cli := &fakeCatalogClient{
		getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
			return nil, catalog.ErrServiceNotFound
		},
	}
	svc := NewService(cli, nopLogger{})

	_, err := svc.StylistsForService(context.Background(), 5)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestStylistsForService_EmptyResultIsValid(t *testing.T) {
	cli := &fakeCatalogClient{
		getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
			return &catalog.Service{ID: serviceID}, nil
		},
		listStylistsFn: func(ctx context.Context) ([]*catalog.Stylist, error) {
			return nil, nil
		},
	}
	svc := NewService(cli, nopLogger{})

	stylists, err := svc.StylistsForService(context.Background(), 5)

	require.NoError(t, err)
	assert.Empty(t, stylists)
}

func TestEligibleStylist(t *testing.T) {
	tests := []struct {
		name    string
		stylist *catalog.Stylist
		getErr  error
		wantErr error
	}{
		{
			name:    "qualified and available",
			stylist: &catalog.Stylist{ID: 1, Status: catalog.StylistAvailable, ServiceIDs: []int64{5}},
		},
		{
			name:    "inactive",
			stylist: &catalog.Stylist{ID: 1, Status: catalog.StylistInactive, ServiceIDs: []int64{5}},
			wantErr: ErrStylistNotQualified,
		},
		{
			name:    "not qualified",
			stylist: &catalog.Stylist{ID: 1, Status: catalog.StylistAvailable, ServiceIDs: []int64{7}},
			wantErr: ErrStylistNotQualified,
		},
		{
			name:    "not found",
			getErr:  catalog.ErrStylistNotFound,
			wantErr: ErrStylistNotFound,
		},
		{
			name:    "catalog unavailable",
			getErr:  errors.New("connection refused"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := &fakeCatalogClient{
				getStylistFn: func(ctx context.Context, stylistID int64) (*catalog.Stylist, error) {
					return tt.stylist, tt.getErr
				},
			}
			svc := NewService(cli, nopLogger{})

			stylist, err := svc.EligibleStylist(context.Background(), 5, 1)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, int64(1), stylist.ID)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
