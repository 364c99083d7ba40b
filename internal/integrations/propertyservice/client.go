package propertyservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с PropertyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PropertyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProperty получает собственность по ID
func (c *Client) GetProperty(ctx context.Context, propertyID int64) (*Property, error) {
	url := fmt.Sprintf("%s/internal/properties/%d", c.baseURL, propertyID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid property ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPropertyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var property Property
	if err := json.NewDecoder(resp.Body).Decode(&property); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &property, nil
}

// GetPropertyWithGracefulDegradation получает собственность с graceful degradation
// При недоступности PropertyService возвращает ErrServiceDegraded: операции
// чтения могут продолжить работу по локальным данным, операции записи обязаны
// отказать
func (c *Client) GetPropertyWithGracefulDegradation(ctx context.Context, propertyID int64) (*Property, error) {
	c.log.Info("Fetching property property_id=%d", propertyID)

	property, err := c.GetProperty(ctx, propertyID)
	if err != nil {
		// Критичную бизнес-ошибку пробрасываем дальше
		if err == ErrPropertyNotFound {
			c.log.Info("Property not found property_id=%d", propertyID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation
		c.log.Error("PropertyService unavailable, applying graceful degradation for property_id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: property_id=%d, error=%v", ErrServiceDegraded, propertyID, err)
	}

	c.log.Info("Successfully fetched property property_id=%d, managers=%d", propertyID, len(property.ManagerIDs))
	return property, nil
}
