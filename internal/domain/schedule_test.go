package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func testSchedule() SalonSchedule {
	return SalonSchedule{
		OpenTime:            "09:00",
		CloseTime:           "19:00",
		SlotDurationMinutes: 60,
		ClosedWeekday:       time.Sunday,
	}
}

func TestSalonSchedule_Slots(t *testing.T) {
	slots := testSchedule().Slots()

	require.Len(t, slots, 10)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("18:00"), slots[len(slots)-1])
}

func TestSalonSchedule_Slots_HalfHourGrid(t *testing.T) {
	schedule := SalonSchedule{
		OpenTime:            "10:00",
		CloseTime:           "12:00",
		SlotDurationMinutes: 30,
	}

	slots := schedule.Slots()

	require.Len(t, slots, 4)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestSalonSchedule_Slots_LastSlotMustFitBeforeClose(t *testing.T) {
	schedule := SalonSchedule{
		OpenTime:            "09:00",
		CloseTime:           "10:30",
		SlotDurationMinutes: 60,
	}

	// 09:00 влезает (заканчивается в 10:00), 10:00 не влезает (закончился бы в 11:00)
	slots := schedule.Slots()

	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
}

func TestSalonSchedule_IsClosedOn(t *testing.T) {
	schedule := testSchedule()

	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	assert.True(t, schedule.IsClosedOn(sunday))
	assert.False(t, schedule.IsClosedOn(monday))
}

func TestSalonSchedule_ContainsSlot(t *testing.T) {
	schedule := testSchedule()

	assert.True(t, schedule.ContainsSlot("09:00"))
	assert.True(t, schedule.ContainsSlot("18:00"))
	assert.False(t, schedule.ContainsSlot("19:00"), "closing time is not a bookable slot")
	assert.False(t, schedule.ContainsSlot("09:30"), "off-grid time must be rejected")
	assert.False(t, schedule.ContainsSlot("08:00"))
}
