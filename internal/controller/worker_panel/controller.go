package worker_panel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// Пользовательские сообщения
const (
	msgEmptyToken       = "Please enter a reservation token"
	msgTokenNotFound    = "Reservation not found. Please check the token and try again."
	msgMissingCriteria  = "Please select both restaurant and date"
	msgNoReservations   = "No reservations found for the selected criteria"
	msgSearchFailed     = "Failed to fetch reservations"
	msgCompletionFailed = "Failed to update reservation status"
	msgAccessLocked     = "Worker access is locked"
)

// Controller контроллер панели работника: два взаимоисключающих режима
// поиска и массовое действие отметки о выполнении. Все операции доступны
// только после прохождения локального шлюза Access.
type Controller struct {
	client DiningClient
	log    Logger
	access *Access

	state  State
	closed bool
	gen    uint64
}

// NewController создает контроллер панели работника в фазе Idle
func NewController(client DiningClient, log Logger, access *Access) *Controller {
	return &Controller{
		client: client,
		log:    log,
		access: access,
		state:  State{Phase: PhaseIdle, Mode: ModeToken},
	}
}

// State возвращает снимок текущего состояния
func (c *Controller) State() State {
	return c.state
}

// Close помечает контроллер закрытым; ответы незавершенных запросов
// после закрытия отбрасываются
func (c *Controller) Close() {
	c.closed = true
}

// SelectMode явно выбирает режим поиска; список результатов сбрасывается
func (c *Controller) SelectMode(mode SearchMode) State {
	if !c.unlocked("SelectMode") {
		return c.state
	}
	if mode != ModeToken && mode != ModeRestaurantAndDate {
		c.log.Warn("SelectMode: unknown mode=%s", mode)
		return c.state
	}

	c.state = State{
		Phase:       PhaseIdle,
		Mode:        mode,
		Restaurants: c.state.Restaurants,
	}
	return c.state
}

// LoadRestaurants загружает каталог ресторанов для селектора.
// Best-effort: неуспех не меняет фазу панели.
func (c *Controller) LoadRestaurants(ctx context.Context) State {
	if !c.unlocked("LoadRestaurants") {
		return c.state
	}

	gen := c.gen
	restaurants, err := c.client.ListRestaurants(ctx)

	if c.closed || gen != c.gen {
		return c.state
	}

	if err != nil {
		c.log.Warn("LoadRestaurants: failed: %v", err)
		return c.state
	}

	c.state.Restaurants = restaurants
	return c.state
}

// SearchByToken ищет бронирование по токену. Результат оборачивается
// в список из одного элемента для общего контракта отображения.
func (c *Controller) SearchByToken(ctx context.Context, token string) State {
	if !c.unlocked("SearchByToken") {
		return c.state
	}

	token = strings.TrimSpace(token)
	if token == "" {
		c.state.Message = msgEmptyToken
		c.state.MessageKind = MessageError
		return c.state
	}

	c.gen++
	gen := c.gen
	c.state.Phase = PhaseSearching
	c.state.Mode = ModeToken
	c.state.Message = ""
	c.state.MessageKind = MessageNone

	reservation, err := c.client.GetReservationByToken(ctx, token)

	if c.closed || gen != c.gen {
		c.log.Info("SearchByToken: stale response discarded for token=%s", token)
		return c.state
	}

	if err != nil {
		msg := msgSearchFailed + ": " + err.Error()
		if errors.Is(err, diningservice.ErrReservationNotFound) {
			msg = msgTokenNotFound
		}
		c.log.Warn("SearchByToken: failed for token=%s: %v", token, err)
		c.state.Phase = PhaseErrored
		c.state.Reservations = nil
		c.state.Message = msg
		c.state.MessageKind = MessageError
		return c.state
	}

	c.log.Info("SearchByToken: reservation id=%d found for token=%s", reservation.ID, token)
	c.state.Phase = PhaseLoaded
	c.state.Reservations = []domain.Reservation{*reservation}
	return c.state
}

// SearchByRestaurantAndDate ищет бронирования ресторана на дату.
// Оба параметра обязательны; дата нормализуется на границу дня.
// Пустой список — корректный результат и сопровождается информационным,
// а не ошибочным сообщением.
func (c *Controller) SearchByRestaurantAndDate(ctx context.Context, restaurantID int64, date time.Time) State {
	if !c.unlocked("SearchByRestaurantAndDate") {
		return c.state
	}

	if restaurantID <= 0 || date.IsZero() {
		c.state.Message = msgMissingCriteria
		c.state.MessageKind = MessageError
		return c.state
	}

	c.gen++
	gen := c.gen
	c.state.Phase = PhaseSearching
	c.state.Mode = ModeRestaurantAndDate
	c.state.Message = ""
	c.state.MessageKind = MessageNone

	reservations, err := c.client.ReservationsByRestaurantAndDate(ctx, restaurantID, startOfDay(date))

	if c.closed || gen != c.gen {
		c.log.Info("SearchByRestaurantAndDate: stale response discarded for restaurant=%d", restaurantID)
		return c.state
	}

	if err != nil {
		c.log.Error("SearchByRestaurantAndDate: failed for restaurant=%d: %v", restaurantID, err)
		c.state.Phase = PhaseErrored
		c.state.Reservations = nil
		c.state.Message = msgSearchFailed + ": " + err.Error()
		c.state.MessageKind = MessageError
		return c.state
	}

	c.log.Info("SearchByRestaurantAndDate: %d reservations found for restaurant=%d date=%s",
		len(reservations), restaurantID, date.Format(domain.DateFormat))

	c.state.Phase = PhaseLoaded
	c.state.Reservations = reservations
	if len(reservations) == 0 {
		c.state.Message = msgNoReservations
		c.state.MessageKind = MessageInfo
	}
	return c.state
}

// MarkCompleted отмечает бронирование из текущего списка выполненным.
// При успехе обновляется только запись с совпадающим токеном — на месте,
// без повторного поиска. Известная брешь согласованности: параллельное
// действие другого работника над тем же токеном не отразится в списке
// до следующего полного поиска.
func (c *Controller) MarkCompleted(ctx context.Context, token string) State {
	if !c.unlocked("MarkCompleted") {
		return c.state
	}

	idx := c.findByToken(token)
	if idx < 0 {
		c.log.Warn("MarkCompleted: token=%s is not in the current result list", token)
		return c.state
	}
	if !c.state.Reservations[idx].CanBeCompleted() {
		c.log.Warn("MarkCompleted: reservation token=%s is already in terminal status %s",
			token, c.state.Reservations[idx].Status)
		return c.state
	}

	gen := c.gen
	_, err := c.client.UpdateReservationStatus(ctx, token, domain.StatusCompleted)

	if c.closed || gen != c.gen {
		c.log.Info("MarkCompleted: stale response discarded for token=%s", token)
		return c.state
	}

	if err != nil {
		// Список остается нетронутым
		c.log.Error("MarkCompleted: failed for token=%s: %v", token, err)
		c.state.Message = msgCompletionFailed + ": " + err.Error()
		c.state.MessageKind = MessageError
		return c.state
	}

	c.log.Info("MarkCompleted: reservation token=%s marked as completed", token)
	c.state.Reservations[idx].Status = domain.StatusCompleted
	c.state.Message = fmt.Sprintf("Reservation %s has been marked as completed", token)
	c.state.MessageKind = MessageSuccess
	return c.state
}

func (c *Controller) findByToken(token string) int {
	for i := range c.state.Reservations {
		if c.state.Reservations[i].Token == token {
			return i
		}
	}
	return -1
}

func (c *Controller) unlocked(op string) bool {
	if c.access.Unlocked() {
		return true
	}
	c.log.Warn("%s: rejected, worker access is locked", op)
	c.state.Message = msgAccessLocked
	c.state.MessageKind = MessageError
	return false
}

// startOfDay нормализует дату на границу дня
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
