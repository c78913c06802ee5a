package identity

// User нормализованная модель пользователя из IdentityService
// Клиент приводит любой формат ответа сервиса к этой модели,
// остальной код альтернативных форм не видит
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    string  `json:"role"` // client | stylist | admin
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// userEnvelope варианты упаковки пользователя в ответе IdentityService
// Исторически сервис отдавал payload.user, payload.data.user или payload.data
type userEnvelope struct {
	User *User `json:"user"`
	Data *struct {
		User *User `json:"user"`
		// поля пользователя могут лежать прямо в data
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"data"`
	// или прямо в корне
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// normalize извлекает пользователя из любого из поддерживаемых форматов
func (e *userEnvelope) normalize() *User {
	if e.User != nil {
		return e.User
	}
	if e.Data != nil {
		if e.Data.User != nil {
			return e.Data.User
		}
		if e.Data.ID != 0 {
			return &User{ID: e.Data.ID, Name: e.Data.Name, Email: e.Data.Email, Role: e.Data.Role}
		}
	}
	if e.ID != 0 {
		return &User{ID: e.ID, Name: e.Name, Email: e.Email, Role: e.Role}
	}
	return nil
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
