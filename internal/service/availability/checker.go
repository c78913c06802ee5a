package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Checker решает, можно ли забронировать тройку (стилист, дата, слот)
// Сетка слотов фиксированная и задаётся конфигурацией салона;
// индивидуальные графики стилистов не моделируются
type Checker struct {
	apptRepo AppointmentRepository
	schedule domain.SalonSchedule
	logger   Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(apptRepo AppointmentRepository, schedule domain.SalonSchedule, logger Logger) *Checker {
	return &Checker{
		apptRepo: apptRepo,
		schedule: schedule,
		logger:   logger,
	}
}

// Schedule возвращает расписание салона (сетку слотов)
func (c *Checker) Schedule() domain.SalonSchedule {
	return c.schedule
}

// IsSalonClosed возвращает true для фиксированного выходного дня салона
func (c *Checker) IsSalonClosed(date time.Time) bool {
	return c.schedule.IsClosedOn(date)
}

// IsValidSlot возвращает true, если слот принадлежит дневной сетке
func (c *Checker) IsValidSlot(slot types.TimeString) bool {
	return c.schedule.ContainsSlot(slot)
}

// IsSlotInPast возвращает true, если слот уже нельзя забронировать:
// дата раньше сегодняшней, либо сегодня и начало слота <= текущего времени
// Бронирование будущих слотов на сегодня разрешено
func (c *Checker) IsSlotInPast(date time.Time, slot types.TimeString, now time.Time) bool {
	if dayBefore(date, now) {
		return true
	}
	if dayBefore(now, date) {
		return false
	}

	// Сегодняшний день: слот в прошлом, если его начало не позже текущего времени
	currentTime := types.NewTimeString(now)
	return !slot.IsAfter(currentTime)
}

// IsSlotFree проверяет, что на (стилист, дата, слот) нет неотменённой записи
// Отменённая запись слот не занимает
func (c *Checker) IsSlotFree(ctx context.Context, stylistID int64, date time.Time, slot types.TimeString) (bool, error) {
	appointments, err := c.apptRepo.GetActiveByStylistAndDate(ctx, stylistID, date)
	if err != nil {
		c.logger.Error("IsSlotFree: failed to get appointments for stylist=%d date=%s: %v",
			stylistID, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: IsSlotFree - repository error: %v", ErrInternal, err)
	}

	for _, appt := range appointments {
		if !appt.OccupiesSlot() {
			continue
		}
		if appt.StartTime == slot {
			return false, nil
		}
	}

	return true, nil
}

// dayBefore возвращает true, если календарная дата a строго раньше даты b
// Сравниваются компоненты даты, поэтому location значений не важен:
// распарсенная дата запроса (UTC) корректно сравнивается с локальным now
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
