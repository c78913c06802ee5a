package book_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
	"github.com/m04kA/SMC-SalonService/internal/integrations/identity"
	"github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	createFn func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appt)
}

type fakeClientRepo struct {
	getByUserIDFn func(ctx context.Context, userID int64) (*domain.Client, error)
	createFn      func(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

func (f *fakeClientRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Client, error) {
	if f.getByUserIDFn == nil {
		panic("GetByUserID not configured")
	}
	return f.getByUserIDFn(ctx, userID)
}

func (f *fakeClientRepo) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, c)
}

type fakeCatalogIndex struct {
	getServiceFn      func(ctx context.Context, serviceID int64) (*catalog.Service, error)
	eligibleStylistFn func(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error)
}

func (f *fakeCatalogIndex) GetService(ctx context.Context, serviceID int64) (*catalog.Service, error) {
	if f.getServiceFn == nil {
		panic("GetService not configured")
	}
	return f.getServiceFn(ctx, serviceID)
}

func (f *fakeCatalogIndex) EligibleStylist(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
	if f.eligibleStylistFn == nil {
		panic("EligibleStylist not configured")
	}
	return f.eligibleStylistFn(ctx, serviceID, stylistID)
}

type fakeAvailability struct {
	isSalonClosedFn bool
	isValidSlotFn   bool
	isSlotInPastFn  bool
	isSlotFreeFn    func(ctx context.Context, stylistID int64, date time.Time, slot types.TimeString) (bool, error)
}

func (f *fakeAvailability) IsSalonClosed(date time.Time) bool {
	return f.isSalonClosedFn
}

func (f *fakeAvailability) IsValidSlot(slot types.TimeString) bool {
	return f.isValidSlotFn
}

func (f *fakeAvailability) IsSlotInPast(date time.Time, slot types.TimeString, now time.Time) bool {
	return f.isSlotInPastFn
}

func (f *fakeAvailability) IsSlotFree(ctx context.Context, stylistID int64, date time.Time, slot types.TimeString) (bool, error) {
	if f.isSlotFreeFn == nil {
		return true, nil
	}
	return f.isSlotFreeFn(ctx, stylistID, date, slot)
}

type fakeIdentityClient struct {
	getUserFn func(ctx context.Context, userID int64) (*identity.User, error)
}

func (f *fakeIdentityClient) GetUser(ctx context.Context, userID int64) (*identity.User, error) {
	if f.getUserFn == nil {
		panic("GetUser not configured")
	}
	return f.getUserFn(ctx, userID)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testDate() time.Time {
	return time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		UserID:    42,
		ServiceID: 1,
		StylistID: 2,
		Date:      testDate(),
		StartTime: "10:00",
	}
}

// deps собирает use case с дефолтными happy-path фейками,
// отдельные тесты перенастраивают нужный компонент
type deps struct {
	apptRepo     *fakeAppointmentRepo
	clientRepo   *fakeClientRepo
	catalogIdx   *fakeCatalogIndex
	availability *fakeAvailability
	identity     *fakeIdentityClient
}

func defaultDeps() *deps {
	return &deps{
		apptRepo: &fakeAppointmentRepo{
			createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
				created := *appt
				created.ID = 100
				created.CreatedAt = time.Now()
				created.UpdatedAt = created.CreatedAt
				return &created, nil
			},
		},
		clientRepo: &fakeClientRepo{
			getByUserIDFn: func(ctx context.Context, userID int64) (*domain.Client, error) {
				return &domain.Client{ID: 7, UserID: userID, Name: "Анна"}, nil
			},
		},
		catalogIdx: &fakeCatalogIndex{
			getServiceFn: func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
				return &catalog.Service{ID: serviceID, Name: "Стрижка", Price: 1500, DurationMinutes: 60}, nil
			},
			eligibleStylistFn: func(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
				return &catalog.Stylist{ID: stylistID, Name: "Мария", Status: catalog.StylistAvailable, ServiceIDs: []int64{serviceID}}, nil
			},
		},
		availability: &fakeAvailability{isValidSlotFn: true},
		identity:     &fakeIdentityClient{},
	}
}

func newTestUseCase(d *deps) *UseCase {
	uc := NewUseCase(d.apptRepo, d.clientRepo, d.catalogIdx, d.availability, d.identity, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	d := defaultDeps()
	uc := newTestUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.ClientID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	assert.Equal(t, 60, resp.ServiceDurationMinutes)
	assert.Equal(t, "Мария", resp.StylistName)
}

func TestExecute_SnapshotsServiceData(t *testing.T) {
	d := defaultDeps()
	var created *domain.Appointment
	d.apptRepo.createFn = func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
		created = appt
		out := *appt
		out.ID = 100
		return &out, nil
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Стрижка", created.ServiceName)
	assert.Equal(t, 1500.0, created.ServicePrice)
	assert.Equal(t, 60, created.ServiceDurationMinutes)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(defaultDeps())

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }, ErrUnauthenticated},
		{"negative service", func(r *Request) { r.ServiceID = -1 }, ErrInvalidInput},
		{"zero stylist", func(r *Request) { r.StylistID = 0 }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidInput},
		{"empty start time", func(r *Request) { r.StartTime = "" }, ErrInvalidInput},
		{"malformed start time", func(r *Request) { r.StartTime = "10am" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc := newTestUseCase(defaultDeps())

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}
	req := validRequest()
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownService(t *testing.T) {
	d := defaultDeps()
	d.catalogIdx.getServiceFn = func(ctx context.Context, serviceID int64) (*catalog.Service, error) {
		return nil, catalogindex.ErrServiceNotFound
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestExecute_StylistNotQualified(t *testing.T) {
	for _, cause := range []error{catalogindex.ErrStylistNotQualified, catalogindex.ErrStylistNotFound} {
		d := defaultDeps()
		d.catalogIdx.eligibleStylistFn = func(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
			return nil, cause
		}
		uc := newTestUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrStylistNotQualified)
	}
}

func TestExecute_SalonClosed(t *testing.T) {
	d := defaultDeps()
	d.availability.isSalonClosedFn = true
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_SlotOffGrid(t *testing.T) {
	d := defaultDeps()
	d.availability.isValidSlotFn = false
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotInPast(t *testing.T) {
	d := defaultDeps()
	d.availability.isSlotInPastFn = true
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_SlotTaken(t *testing.T) {
	d := defaultDeps()
	d.availability.isSlotFreeFn = func(ctx context.Context, stylistID int64, date time.Time, slot types.TimeString) (bool, error) {
		return false, nil
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotTakenOnConcurrentInsert(t *testing.T) {
	// Проверка прошла, но конкурентная вставка выиграла гонку:
	// уникальный индекс отдаёт ошибку, она маппится в ErrSlotTaken
	d := defaultDeps()
	d.apptRepo.createFn = func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
		return nil, apptRepo.ErrSlotTaken
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ProvisionsClientOnFirstBooking(t *testing.T) {
	d := defaultDeps()
	var provisioned *domain.Client
	d.clientRepo.getByUserIDFn = func(ctx context.Context, userID int64) (*domain.Client, error) {
		return nil, clientRepo.ErrClientNotFound
	}
	d.clientRepo.createFn = func(ctx context.Context, c *domain.Client) (*domain.Client, error) {
		created := *c
		created.ID = 55
		provisioned = &created
		return &created, nil
	}
	d.identity.getUserFn = func(ctx context.Context, userID int64) (*identity.User, error) {
		return &identity.User{ID: userID, Name: "Анна", Phone: ptr.Ptr("+79990001122")}, nil
	}
	uc := newTestUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, provisioned)
	assert.Equal(t, int64(42), provisioned.UserID)
	assert.Equal(t, "Анна", provisioned.Name)
	assert.Equal(t, int64(55), resp.ClientID)
}

func TestExecute_UnknownUser(t *testing.T) {
	d := defaultDeps()
	d.clientRepo.getByUserIDFn = func(ctx context.Context, userID int64) (*domain.Client, error) {
		return nil, clientRepo.ErrClientNotFound
	}
	d.identity.getUserFn = func(ctx context.Context, userID int64) (*identity.User, error) {
		return nil, identity.ErrUserNotFound
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestExecute_PersistenceErrorWrapped(t *testing.T) {
	d := defaultDeps()
	d.apptRepo.createFn = func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
		return nil, errors.New("connection refused")
	}
	uc := newTestUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPersistence)
}
