package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
)

// UseCase use case получения доступных слотов стилиста на дату
type UseCase struct {
	apptRepo     AppointmentRepository
	catalogIdx   CatalogIndex
	schedule     ScheduleProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalogIdx CatalogIndex,
	schedule ScheduleProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		catalogIdx:   catalogIdx,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает дневную сетку слотов с признаком доступности
// Слот недоступен, если он занят активной записью или уже прошёл (для сегодняшней даты)
// На выходной день салона список слотов пуст
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: stylist=%d, service=%d, date=%s",
		req.StylistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// Стилист должен существовать, быть активным и выполнять услугу
	if _, err := uc.catalogIdx.EligibleStylist(ctx, req.ServiceID, req.StylistID); err != nil {
		if errors.Is(err, catalogindex.ErrStylistNotQualified) || errors.Is(err, catalogindex.ErrStylistNotFound) {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d not qualified for service id=%d",
				req.StylistID, req.ServiceID)
			return nil, ErrStylistNotQualified
		}
		uc.logger.Error("GetAvailableSlots: failed to check stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to check stylist: %v", ErrInternal, err)
	}

	resp := &Response{
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Slots:     []Slot{},
	}

	// Выходной день - сетка пустая
	if uc.schedule.IsSalonClosed(req.Date) {
		uc.logger.Info("GetAvailableSlots: salon closed on %s", req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	appts, err := uc.apptRepo.GetActiveByStylistAndDate(ctx, req.StylistID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	resp.Slots = uc.buildSlots(req.Date, appts)

	uc.logger.Info("GetAvailableSlots: stylist=%d, date=%s: %d slots on grid",
		req.StylistID, req.Date.Format(domain.DateFormat), len(resp.Slots))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
