package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	getActiveByStylistAndDateFn func(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error)
}

func (f *fakeAppointmentRepo) GetActiveByStylistAndDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error) {
	if f.getActiveByStylistAndDateFn == nil {
		return nil, nil
	}
	return f.getActiveByStylistAndDateFn(ctx, stylistID, date)
}

type fakeCatalogIndex struct {
	eligibleStylistFn func(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error)
}

func (f *fakeCatalogIndex) EligibleStylist(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
	if f.eligibleStylistFn == nil {
		return &catalog.Stylist{ID: stylistID, Status: catalog.StylistAvailable, ServiceIDs: []int64{serviceID}}, nil
	}
	return f.eligibleStylistFn(ctx, serviceID, stylistID)
}

type fakeSchedule struct {
	schedule domain.SalonSchedule
}

func (f *fakeSchedule) Schedule() domain.SalonSchedule {
	return f.schedule
}

func (f *fakeSchedule) IsSalonClosed(date time.Time) bool {
	return f.schedule.IsClosedOn(date)
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

func testSchedule() *fakeSchedule {
	return &fakeSchedule{schedule: domain.SalonSchedule{
		OpenTime:            "09:00",
		CloseTime:           "13:00",
		SlotDurationMinutes: 60,
		ClosedWeekday:       time.Sunday,
	}}
}

func newTestUseCase(repo *fakeAppointmentRepo, idx *fakeCatalogIndex, now time.Time) *UseCase {
	uc := NewUseCase(repo, idx, testSchedule(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func availableTimes(slots []Slot) []types.TimeString {
	out := make([]types.TimeString, 0)
	for _, s := range slots {
		if s.Available {
			out = append(out, s.StartTime)
		}
	}
	return out
}

func TestExecute_FullGridOnFreeDay(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "12:00"}, availableTimes(resp.Slots))
}

func TestExecute_TakenSlotsUnavailable(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{
		getActiveByStylistAndDateFn: func(ctx context.Context, stylistID int64, date time.Time) ([]*domain.Appointment, error) {
			return []*domain.Appointment{
				{StylistID: stylistID, StartTime: "10:00", Status: domain.StatusPending},
				{StylistID: stylistID, StartTime: "11:00", Status: domain.StatusCancelled},
			}, nil
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogIndex{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// Занятый pending слот недоступен, отменённый - снова свободен
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "12:00"}, availableTimes(resp.Slots))
}

func TestExecute_PastSlotsUnavailableToday(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	// 09:00 и 10:00 уже прошли, будущие слоты сегодня доступны
	assert.Equal(t, []types.TimeString{"11:00", "12:00"}, availableTimes(resp.Slots))
}

func TestExecute_TodayOnServerWestOfUTC(t *testing.T) {
	// Дата запроса в UTC, серверные часы западнее UTC: сегодняшняя сетка
	// не должна целиком помечаться прошедшей
	est := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, 10, 15, 10, 30, 0, 0, est)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:00", "12:00"}, availableTimes(resp.Slots))
}

func TestExecute_TodayOnServerEastOfUTC(t *testing.T) {
	// Серверные часы восточнее UTC: прошедшие утренние слоты недоступны
	msk := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 10, 15, 10, 30, 0, 0, msk)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"11:00", "12:00"}, availableTimes(resp.Slots))
}

func TestExecute_EmptyGridOnClosedDay(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{StylistID: 2, ServiceID: 1, Date: sunday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StylistNotQualified(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	idx := &fakeCatalogIndex{
		eligibleStylistFn: func(ctx context.Context, serviceID, stylistID int64) (*catalog.Stylist, error) {
			return nil, catalogindex.ErrStylistNotQualified
		},
	}
	uc := newTestUseCase(&fakeAppointmentRepo{}, idx, now)

	_, err := uc.Execute(context.Background(), &Request{
		StylistID: 2,
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrStylistNotQualified)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogIndex{}, now)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{StylistID: 0, ServiceID: 1, Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StylistID: 2, ServiceID: 0, Date: date})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StylistID: 2, ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
