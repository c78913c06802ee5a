package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonService/internal/integrations/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service управляет жизненным циклом записей: машина состояний,
// авторизация переходов, списки по клиенту/стилисту/дате и удаление
type Service struct {
	apptRepo      AppointmentRepository
	clientRepo    ClientRepository
	catalogClient CatalogClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	clientRepo ClientRepository,
	catalogClient CatalogClient,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:      apptRepo,
		clientRepo:    clientRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByID получает запись по ID
// Доступ: владелец записи, назначенный стилист или администратор
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(ctx, appt, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainAppointment(appt, s.displayNames(ctx, appt)), nil
}

// ListMine получает записи актора: для клиента - его записи,
// для стилиста - назначенные на него. Выборка всегда ограничена
// на стороне хранилища, чужие записи через эту операцию не видны
func (s *Service) ListMine(ctx context.Context, actor domain.Actor, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListMine: fetching appointments for user=%d role=%s", actor.UserID, actor.Role)

	domainStatus, err := s.toOptionalStatus(status)
	if err != nil {
		s.logger.Warn("ListMine: invalid status filter for user=%d", actor.UserID)
		return nil, err
	}

	var appointments []*domain.Appointment

	switch actor.Role {
	case domain.RoleClient:
		client, err := s.clientRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				// Клиент ещё ничего не бронировал
				return s.toListResponse(ctx, nil), nil
			}
			s.logger.Error("ListMine: failed to resolve client for user=%d: %v", actor.UserID, err)
			return nil, fmt.Errorf("%w: ListMine - client lookup: %v", ErrInternal, err)
		}
		appointments, err = s.apptRepo.GetByClientID(ctx, client.ID, domainStatus)
		if err != nil {
			s.logger.Error("ListMine: repository error for client=%d: %v", client.ID, err)
			return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
		}

	case domain.RoleStylist:
		stylist, err := s.catalogClient.GetStylistByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, catalog.ErrStylistNotFound) {
				s.logger.Warn("ListMine: no stylist record for user=%d", actor.UserID)
				return s.toListResponse(ctx, nil), nil
			}
			s.logger.Error("ListMine: failed to resolve stylist for user=%d: %v", actor.UserID, err)
			return nil, fmt.Errorf("%w: ListMine - stylist lookup: %v", ErrInternal, err)
		}
		appointments, err = s.apptRepo.GetByStylistID(ctx, stylist.ID, domainStatus)
		if err != nil {
			s.logger.Error("ListMine: repository error for stylist=%d: %v", stylist.ID, err)
			return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
		}

	default:
		// Администратор пользуется дневной ведомостью
		return nil, fmt.Errorf("%w: unsupported role %q", ErrInvalidInput, actor.Role)
	}

	s.logger.Info("ListMine: fetched %d appointments for user=%d", len(appointments), actor.UserID)
	return s.toListResponse(ctx, appointments), nil
}

// GetDaySchedule получает все записи на дату (дневная ведомость)
// Доступно только администратору
func (s *Service) GetDaySchedule(ctx context.Context, date time.Time, actor domain.Actor, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetDaySchedule: date=%s user=%d role=%s", date.Format(domain.DateFormat), actor.UserID, actor.Role)

	if actor.Role != domain.RoleAdmin {
		s.logger.Warn("GetDaySchedule: access denied for user=%d role=%s", actor.UserID, actor.Role)
		return nil, ErrAccessDenied
	}

	domainStatus, err := s.toOptionalStatus(status)
	if err != nil {
		return nil, err
	}

	appointments, err := s.apptRepo.GetByDate(ctx, date, domainStatus)
	if err != nil {
		s.logger.Error("GetDaySchedule: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDaySchedule: fetched %d appointments for date=%s", len(appointments), date.Format(domain.DateFormat))
	return s.toListResponse(ctx, appointments), nil
}

// Transition переводит запись в целевой статус
// Порядок проверок фиксированный: существование записи, допустимость перехода
// (InvalidTransition), права актора (AccessDenied). Сам переход - одно
// условное обновление, частичных изменений не бывает
func (s *Service) Transition(ctx context.Context, id int64, actor domain.Actor, targetStatus string) (*models.AppointmentResponse, error) {
	s.logger.Info("Transition: appointment id=%d -> %s by user=%d role=%s", id, targetStatus, actor.UserID, actor.Role)

	target, err := models.ToDomainStatus(targetStatus)
	if err != nil {
		s.logger.Warn("Transition: invalid target status=%q for appointment id=%d", targetStatus, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	// 1. Допустимость перехода
	if err := s.checkTransitionLegal(appt.Status, target, actor.Role); err != nil {
		s.logger.Warn("Transition: illegal transition %s -> %s for appointment id=%d", appt.Status, target, id)
		return nil, err
	}

	// 2. Права актора
	if err := s.checkTransitionAllowed(ctx, appt, actor, target); err != nil {
		s.logger.Warn("Transition: access denied for user=%d role=%s on appointment id=%d", actor.UserID, actor.Role, id)
		return nil, err
	}

	// 3. Атомарный переход (compare-and-set по текущему статусу)
	if err := s.apptRepo.UpdateStatusFrom(ctx, id, appt.Status, target); err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, apptRepo.ErrStatusConflict):
			// Статус изменился между чтением и записью - переход больше не легален
			s.logger.Warn("Transition: concurrent status change for appointment id=%d", id)
			return nil, ErrInvalidTransition
		default:
			s.logger.Error("Transition: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Transition - repository error: %v", ErrInternal, err)
		}
	}

	appt.Status = target
	s.logger.Info("Transition: appointment id=%d moved to %s", id, target)

	return models.FromDomainAppointment(appt, s.displayNames(ctx, appt)), nil
}

// Delete физически удаляет запись в любом статусе
// Деструктивная операция, доступна только администратору
func (s *Service) Delete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: appointment id=%d by user=%d role=%s", id, actor.UserID, actor.Role)

	if actor.Role != domain.RoleAdmin {
		s.logger.Warn("Delete: access denied for user=%d role=%s", actor.UserID, actor.Role)
		return ErrAccessDenied
	}

	if err := s.apptRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}

// Вспомогательные методы

// fetch получает запись, маппя ошибку репозитория на ошибку сервиса
func (s *Service) fetch(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("fetch: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("fetch: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: fetch - repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// checkTransitionLegal проверяет допустимость перехода по машине состояний
// Администратор может установить любой статус из любого нетерминального,
// для остальных действует стандартная таблица переходов
func (s *Service) checkTransitionLegal(current, target domain.AppointmentStatus, role domain.Role) error {
	if role == domain.RoleAdmin {
		if current.IsTerminal() || current == target {
			return ErrInvalidTransition
		}
		return nil
	}

	if !current.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	return nil
}

// checkTransitionAllowed проверяет права актора на конкретный переход:
// клиент отменяет только свою pending запись; стилист подтверждает/отменяет
// назначенную ему pending запись или завершает свою confirmed
func (s *Service) checkTransitionAllowed(ctx context.Context, appt *domain.Appointment, actor domain.Actor, target domain.AppointmentStatus) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil

	case domain.RoleClient:
		if appt.Status != domain.StatusPending || target != domain.StatusCancelled {
			return ErrAccessDenied
		}
		client, err := s.clientRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: checkTransitionAllowed - client lookup: %v", ErrInternal, err)
		}
		if !appt.BelongsToClient(client.ID) {
			return ErrAccessDenied
		}
		return nil

	case domain.RoleStylist:
		stylist, err := s.catalogClient.GetStylistByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, catalog.ErrStylistNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: checkTransitionAllowed - stylist lookup: %v", ErrInternal, err)
		}
		if !appt.AssignedToStylist(stylist.ID) {
			return ErrAccessDenied
		}
		switch {
		case appt.Status == domain.StatusPending && (target == domain.StatusConfirmed || target == domain.StatusCancelled):
			return nil
		case appt.Status == domain.StatusConfirmed && target == domain.StatusCompleted:
			return nil
		default:
			return ErrAccessDenied
		}

	default:
		return ErrAccessDenied
	}
}

// checkReadAccess проверяет право актора видеть запись
func (s *Service) checkReadAccess(ctx context.Context, appt *domain.Appointment, actor domain.Actor) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil

	case domain.RoleClient:
		client, err := s.clientRepo.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: checkReadAccess - client lookup: %v", ErrInternal, err)
		}
		if !appt.BelongsToClient(client.ID) {
			return ErrAccessDenied
		}
		return nil

	case domain.RoleStylist:
		stylist, err := s.catalogClient.GetStylistByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, catalog.ErrStylistNotFound) {
				return ErrAccessDenied
			}
			return fmt.Errorf("%w: checkReadAccess - stylist lookup: %v", ErrInternal, err)
		}
		if !appt.AssignedToStylist(stylist.ID) {
			return ErrAccessDenied
		}
		return nil

	default:
		return ErrAccessDenied
	}
}

// toOptionalStatus валидирует опциональный фильтр по статусу
func (s *Service) toOptionalStatus(status *string) (*domain.AppointmentStatus, error) {
	if status == nil {
		return nil, nil
	}
	parsed, err := models.ToDomainStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}
	return &parsed, nil
}

// displayNames подтягивает отображаемые имена стилиста и клиента
// Недоступность каталога не ломает чтение записи - имена просто остаются пустыми
func (s *Service) displayNames(ctx context.Context, appt *domain.Appointment) models.DisplayNames {
	names := models.DisplayNames{}

	if stylist, err := s.catalogClient.GetStylist(ctx, appt.StylistID); err == nil {
		names.StylistName = stylist.Name
	} else {
		s.logger.Warn("displayNames: failed to resolve stylist id=%d: %v", appt.StylistID, err)
	}

	if client, err := s.clientRepo.GetByID(ctx, appt.ClientID); err == nil {
		names.ClientName = client.Name
	} else {
		s.logger.Warn("displayNames: failed to resolve client id=%d: %v", appt.ClientID, err)
	}

	return names
}

// toListResponse конвертирует список записей с мемоизацией имён
// Каталог дергается не чаще одного раза на стилиста и клиента в рамках запроса
func (s *Service) toListResponse(ctx context.Context, appointments []*domain.Appointment) *models.AppointmentListResponse {
	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(appointments)),
	}

	stylistNames := make(map[int64]string)
	clientNames := make(map[int64]string)

	for _, appt := range appointments {
		names := models.DisplayNames{}

		if name, ok := stylistNames[appt.StylistID]; ok {
			names.StylistName = name
		} else if stylist, err := s.catalogClient.GetStylist(ctx, appt.StylistID); err == nil {
			stylistNames[appt.StylistID] = stylist.Name
			names.StylistName = stylist.Name
		} else {
			stylistNames[appt.StylistID] = ""
		}

		if name, ok := clientNames[appt.ClientID]; ok {
			names.ClientName = name
		} else if client, err := s.clientRepo.GetByID(ctx, appt.ClientID); err == nil {
			clientNames[appt.ClientID] = client.Name
			names.ClientName = client.Name
		} else {
			clientNames[appt.ClientID] = ""
		}

		if apptResp := models.FromDomainAppointment(appt, names); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
