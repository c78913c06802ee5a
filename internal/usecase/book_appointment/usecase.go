package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	identityClient "github.com/m04kA/SMC-SalonService/internal/integrations/identity"
	"github.com/m04kA/SMC-SalonService/internal/service/catalogindex"
)

// UseCase use case создания записи на услугу
// Единая точка входа для бронирования: проверки выполняются по порядку
// с остановкой на первой ошибке, результат детерминирован для одних и тех же входов
type UseCase struct {
	apptRepo       AppointmentRepository
	clientRepo     ClientRepository
	catalogIdx     CatalogIndex
	availability   AvailabilityChecker
	identityClient IdentityClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	clientRepo ClientRepository,
	catalogIdx CatalogIndex,
	availability AvailabilityChecker,
	identityClient IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:       apptRepo,
		clientRepo:     clientRepo,
		catalogIdx:     catalogIdx,
		availability:   availability,
		identityClient: identityClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции,
// поэтому из конкурентных запросов на один слот выигрывает ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: user=%d, service=%d, stylist=%d, date=%s, slot=%s",
		req.UserID, req.ServiceID, req.StylistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Разрешаем актора в клиента (с ленивым созданием при первом бронировании)
	client, err := uc.resolveClient(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalogIdx.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogindex.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrUnknownService
		}
		uc.logger.Error("BookAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrPersistence, err)
	}

	// 5. Проверяем квалификацию стилиста (включая статус inactive)
	stylist, err := uc.catalogIdx.EligibleStylist(ctx, req.ServiceID, req.StylistID)
	if err != nil {
		if errors.Is(err, catalogindex.ErrStylistNotQualified) || errors.Is(err, catalogindex.ErrStylistNotFound) {
			uc.logger.Warn("BookAppointment: stylist id=%d not qualified for service id=%d",
				req.StylistID, req.ServiceID)
			return nil, ErrStylistNotQualified
		}
		uc.logger.Error("BookAppointment: failed to check stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to check stylist: %v", ErrPersistence, err)
	}

	// 6. Выходной день салона
	if uc.availability.IsSalonClosed(req.Date) {
		uc.logger.Warn("BookAppointment: salon closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrSalonClosed
	}

	// 7. Слот должен принадлежать дневной сетке
	if !uc.availability.IsValidSlot(req.StartTime) {
		uc.logger.Warn("BookAppointment: slot %s is not on the daily grid", req.StartTime)
		return nil, fmt.Errorf("%w: slot %s is not on the daily grid", ErrInvalidInput, req.StartTime)
	}

	// 8. Слот не должен быть в прошлом (будущие слоты сегодня разрешены)
	if uc.availability.IsSlotInPast(req.Date, req.StartTime, now) {
		uc.logger.Warn("BookAppointment: slot %s %s is in the past",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, ErrSlotInPast
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 9. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		free, err := uc.availability.IsSlotFree(txCtx, req.StylistID, req.Date, req.StartTime)
		if err != nil {
			uc.logger.Error("BookAppointment: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrPersistence, err)
		}
		if !free {
			uc.logger.Warn("BookAppointment: slot %s %s taken for stylist=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.StylistID)
			return ErrSlotTaken
		}

		// Создаем запись со снимком данных услуги
		appt := &domain.Appointment{
			ClientID:        client.ID,
			StylistID:       req.StylistID,
			ServiceID:       req.ServiceID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			Status:          domain.StatusPending,
			// Снимок услуги: последующие изменения каталога не меняют историю
			ServiceName:            service.Name,
			ServicePrice:           service.Price,
			ServiceDurationMinutes: service.DurationMinutes,
			Notes:                  req.Notes,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				// Конкурентная вставка выиграла гонку - уникальный индекс сработал
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrPersistence, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d (client=%d, stylist=%d)",
		result.ID, client.ID, req.StylistID)

	return &Response{
		ID:                     result.ID,
		ClientID:               result.ClientID,
		StylistID:              result.StylistID,
		ServiceID:              result.ServiceID,
		Date:                   result.AppointmentDate,
		StartTime:              result.StartTime,
		Status:                 string(result.Status),
		ServiceName:            result.ServiceName,
		ServicePrice:           result.ServicePrice,
		ServiceDurationMinutes: result.ServiceDurationMinutes,
		StylistName:            stylist.Name,
		Notes:                  result.Notes,
		CreatedAt:              result.CreatedAt,
		UpdatedAt:              result.UpdatedAt,
	}, nil
}

// resolveClient разрешает пользователя в клиента салона
// Если записи клиента нет, создает её по данным IdentityService
// (провижининг при первом бронировании)
func (uc *UseCase) resolveClient(ctx context.Context, userID int64) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByUserID(ctx, userID)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("BookAppointment: failed to get client for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrPersistence, err)
	}

	user, err := uc.identityClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("BookAppointment: user id=%d not found in identity service", userID)
			return nil, ErrUnauthenticated
		}
		uc.logger.Error("BookAppointment: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrPersistence, err)
	}

	created, err := uc.clientRepo.Create(ctx, &domain.Client{
		UserID:  user.ID,
		Name:    user.Name,
		Phone:   user.Phone,
		Address: user.Address,
	})
	if err != nil {
		uc.logger.Error("BookAppointment: failed to provision client for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to provision client: %v", ErrPersistence, err)
	}

	uc.logger.Info("BookAppointment: provisioned client id=%d for user=%d on first booking", created.ID, userID)
	return created, nil
}
