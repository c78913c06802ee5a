package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	StylistID int64     // ID стилиста
	ServiceID int64     // ID услуги (проверка квалификации)
	Date      time.Time // Дата (локальная для салона)
}

// Slot один слот дневной сетки с признаком доступности
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// Response модель ответа со слотами на дату
// На выходной день салона список пуст
type Response struct {
	StylistID int64
	ServiceID int64
	Date      time.Time
	Slots     []Slot
}
