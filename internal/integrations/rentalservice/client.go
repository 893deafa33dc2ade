package rentalservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с rental-workflow сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RentalService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRental получает аренду по её идентификатору (ownerRef резервации)
func (c *Client) GetRental(ctx context.Context, ownerRef uuid.UUID) (*Rental, error) {
	url := fmt.Sprintf("%s/internal/rentals/%s", c.baseURL, ownerRef)

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
		return nil, fmt.Errorf("%w: invalid rental ref format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRentalNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var rental Rental
	if err := json.NewDecoder(resp.Body).Decode(&rental); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &rental, nil
}

// GetRentalWithGracefulDegradation получает аренду с graceful degradation
// При недоступности RentalService возвращает ErrServiceDegraded - отчёт
// о доступности строится без отображаемого имени арендатора, а не падает
func (c *Client) GetRentalWithGracefulDegradation(ctx context.Context, ownerRef uuid.UUID) (*Rental, error) {
	rental, err := c.GetRental(ctx, ownerRef)
	if err != nil {
		// Критичная бизнес-ошибка (аренда не найдена) пробрасывается дальше
		if err == ErrRentalNotFound {
			c.log.Info("No rental found for owner_ref=%s", ownerRef)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("RentalService unavailable, applying graceful degradation for owner_ref=%s: %v", ownerRef, err)
		return nil, fmt.Errorf("%w: owner_ref=%s, error=%v", ErrServiceDegraded, ownerRef, err)
	}

	return rental, nil
}
