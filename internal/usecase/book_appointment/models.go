package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID аутентифицированного пользователя (актор)
	ServiceID int64            // ID услуги
	StylistID int64            // ID стилиста
	Date      time.Time        // Дата записи (без времени, локальная для салона)
	StartTime types.TimeString // Слот из дневной сетки (например, "10:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64            // ID созданной записи
	ClientID  int64            // ID клиента (может быть создан при первом бронировании)
	StylistID int64            // ID стилиста
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	Status    string           // Статус записи (всегда pending при создании)

	// Снимок услуги на момент бронирования
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	StylistName string // Отображаемое имя стилиста
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
