package catalog

// Service модель услуги из CatalogService
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// StylistStatus статус доступности стилиста
type StylistStatus string

const (
	StylistAvailable StylistStatus = "available"
	StylistBusy      StylistStatus = "busy"
	StylistOnBreak   StylistStatus = "on-break"
	StylistInactive  StylistStatus = "inactive"
)

// Stylist модель стилиста из CatalogService
type Stylist struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"user_id"`
	Name       string        `json:"name"`
	Specialty  string        `json:"specialty"`
	Status     StylistStatus `json:"status"`
	ServiceIDs []int64       `json:"service_ids"` // услуги, которые стилист умеет выполнять
}

// IsInactive returns true if the stylist must never be offered for new bookings
func (s *Stylist) IsInactive() bool {
	return s.Status == StylistInactive
}

// IsQualifiedFor reports whether the stylist can perform the given service
func (s *Stylist) IsQualifiedFor(serviceID int64) bool {
	for _, id := range s.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
