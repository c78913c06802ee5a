package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CatalogService (услуги и стилисты)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CatalogService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// get выполняет GET запрос и декодирует ответ в out
// notFoundErr возвращается при 404
func (c *Client) get(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.get(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetStylist получает стилиста по ID
func (c *Client) GetStylist(ctx context.Context, stylistID int64) (*Stylist, error) {
	url := fmt.Sprintf("%s/internal/stylists/%d", c.baseURL, stylistID)

	var stylist Stylist
	if err := c.get(ctx, url, &stylist, ErrStylistNotFound); err != nil {
		return nil, err
	}

	return &stylist, nil
}

// GetStylistByUserID получает стилиста по ID связанного пользователя
// Используется для определения "своих" записей стилиста
func (c *Client) GetStylistByUserID(ctx context.Context, userID int64) (*Stylist, error) {
	url := fmt.Sprintf("%s/internal/users/%d/stylist", c.baseURL, userID)

	var stylist Stylist
	if err := c.get(ctx, url, &stylist, ErrStylistNotFound); err != nil {
		return nil, err
	}

	return &stylist, nil
}

// ListStylists получает всех стилистов салона
func (c *Client) ListStylists(ctx context.Context) ([]*Stylist, error) {
	url := fmt.Sprintf("%s/internal/stylists", c.baseURL)

	stylists := make([]*Stylist, 0)
	if err := c.get(ctx, url, &stylists, ErrInvalidResponse); err != nil {
		return nil, err
	}

	return stylists, nil
}
