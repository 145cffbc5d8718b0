package diningservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент REST API сервиса столовых. Оборачивает HTTP-контракт
// backend'а; не содержит бизнес-логики сверх формирования запросов
// и разбора ответов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента. baseURL должен включать
// префикс /api (например, http://localhost:8080/api).
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListRestaurants возвращает список всех ресторанов
func (c *Client) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var out []domain.Restaurant
	if err := c.getJSON(ctx, c.baseURL+"/restaurants", &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRestaurant возвращает ресторан по ID. При 404 возвращает ErrRestaurantNotFound.
func (c *Client) GetRestaurant(ctx context.Context, restaurantID int64) (*domain.Restaurant, error) {
	u := fmt.Sprintf("%s/restaurants/%d", c.baseURL, restaurantID)
	var out domain.Restaurant
	if err := c.getJSON(ctx, u, &out, ErrRestaurantNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchRestaurants возвращает рестораны, отфильтрованные по типу кухни
func (c *Client) SearchRestaurants(ctx context.Context, cuisine string) ([]domain.Restaurant, error) {
	u := fmt.Sprintf("%s/restaurants/search?cuisine=%s", c.baseURL, url.QueryEscape(cuisine))
	var out []domain.Restaurant
	if err := c.getJSON(ctx, u, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// MealsForDate возвращает меню ресторана на указанную дату
func (c *Client) MealsForDate(ctx context.Context, restaurantID int64, date time.Time) ([]domain.Meal, error) {
	u := fmt.Sprintf("%s/meals/restaurant/%d/date/%s", c.baseURL, restaurantID, date.Format(domain.DateFormat))
	var out []domain.Meal
	if err := c.getJSON(ctx, u, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// WeatherForecast возвращает прогноз погоды для локации на дату
func (c *Client) WeatherForecast(ctx context.Context, location string, date time.Time) (*domain.Forecast, error) {
	u := fmt.Sprintf("%s/weather/forecast?location=%s&date=%s",
		c.baseURL, url.QueryEscape(location), date.Format(domain.DateFormat))
	var out domain.Forecast
	if err := c.getJSON(ctx, u, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateReservation создает бронирование по числовому ID ресторана
func (c *Client) CreateReservation(ctx context.Context, req *CreateReservationRequest) (*domain.Reservation, error) {
	return c.postReservation(ctx, c.baseURL+"/reservations", req)
}

// CreateReservationByName создает бронирование по названию ресторана.
// Backend возвращает созданное бронирование, включая выданный токен.
func (c *Client) CreateReservationByName(ctx context.Context, req *CreateReservationByNameRequest) (*domain.Reservation, error) {
	return c.postReservation(ctx, c.baseURL+"/reservations/create-by-name", req)
}

// GetReservation возвращает бронирование по числовому ID.
// Используется только генератором нагрузки; клиентские потоки адресуют
// бронирования исключительно по токену.
func (c *Client) GetReservation(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	u := fmt.Sprintf("%s/reservations/%d", c.baseURL, reservationID)
	var out domain.Reservation
	if err := c.getJSON(ctx, u, &out, ErrReservationNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReservationByToken возвращает бронирование по токену.
// При 404 возвращает ErrReservationNotFound.
func (c *Client) GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error) {
	u := fmt.Sprintf("%s/reservations/token/%s", c.baseURL, url.PathEscape(token))
	var out domain.Reservation
	if err := c.getJSON(ctx, u, &out, ErrReservationNotFound); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReservationsByRestaurantAndDate возвращает бронирования ресторана на дату.
// Пустой список — корректный результат, не ошибка.
func (c *Client) ReservationsByRestaurantAndDate(ctx context.Context, restaurantID int64, date time.Time) ([]domain.Reservation, error) {
	u := fmt.Sprintf("%s/reservations/restaurant/%d/date?date=%s",
		c.baseURL, restaurantID, url.QueryEscape(date.Format(domain.DateTimeFormat)))
	var out []domain.Reservation
	if err := c.getJSON(ctx, u, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReservationStatus обновляет статус бронирования по токену.
// Backend принимает form-encoded тело newStatus=<status>.
func (c *Client) UpdateReservationStatus(ctx context.Context, token string, newStatus domain.ReservationStatus) (*domain.Reservation, error) {
	u := fmt.Sprintf("%s/reservations/%s/status", c.baseURL, url.PathEscape(token))

	form := url.Values{}
	form.Set("newStatus", string(newStatus))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.failure(resp)
	}

	var out domain.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &out, nil
}

// CancelReservation отменяет бронирование по токену (DELETE).
// Успехом считается и 200, и 204.
func (c *Client) CancelReservation(ctx context.Context, token string) error {
	u := fmt.Sprintf("%s/reservations/%s", c.baseURL, url.PathEscape(token))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	default:
		return c.failure(resp)
	}
}

// postReservation отправляет JSON-запрос на создание бронирования.
// Успехом считается и 200, и 201 (оригинальный backend отвечает 200 OK).
func (c *Client) postReservation(ctx context.Context, u string, body interface{}) (*domain.Reservation, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	default:
		return nil, c.failure(resp)
	}

	var out domain.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return &out, nil
}

// getJSON выполняет GET и декодирует тело ответа в out.
// notFoundErr, если задан, возвращается вместо общей ошибки при 404.
func (c *Client) getJSON(ctx context.Context, u string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		return c.failure(resp)
	default:
		return c.failure(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// failure формирует ошибку для неуспешного статуса, сохраняя код статуса
// и усеченное тело ответа
func (c *Client) failure(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}
	return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, trimmed)
}
