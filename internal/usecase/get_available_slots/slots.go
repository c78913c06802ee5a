package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// buildSlots строит дневную сетку слотов и отмечает доступность каждого
func (uc *UseCase) buildSlots(date time.Time, appts []*domain.Appointment) []Slot {
	grid := uc.schedule.Schedule().Slots()

	// Занятые слоты: записи в любом статусе кроме cancelled
	taken := make(map[types.TimeString]struct{}, len(appts))
	for _, appt := range appts {
		if appt.OccupiesSlot() {
			taken[appt.StartTime] = struct{}{}
		}
	}

	now := uc.timeProvider.Now()
	nowTime := types.NewTimeString(now)
	pastDay := dayBefore(date, now)
	today := sameDay(date, now)

	slots := make([]Slot, 0, len(grid))
	for _, start := range grid {
		available := true
		if _, ok := taken[start]; ok {
			available = false
		}
		if pastDay {
			available = false
		}
		// Для сегодняшней даты прошедшие слоты недоступны
		if today && !start.IsAfter(nowTime) {
			available = false
		}
		slots = append(slots, Slot{StartTime: start, Available: available})
	}

	return slots
}

// dayBefore возвращает true, если календарная дата a строго раньше даты b
// Сравнение по компонентам даты не зависит от location значений
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

// sameDay возвращает true, если a и b приходятся на одну календарную дату
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
