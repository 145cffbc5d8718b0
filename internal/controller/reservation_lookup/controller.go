package reservation_lookup

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// Пользовательские сообщения
const (
	msgEmptyToken       = "Please enter a reservation token"
	msgNotFound         = "Reservation not found. Please check your token and try again."
	msgCancelSuccess    = "Reservation has been successfully cancelled"
	msgLookupFailed     = "Failed to fetch reservation"
	msgCancelFailed     = "Failed to cancel reservation"
	msgRestaurantAbsent = "Restaurant information not available"
)

// Controller контроллер жизненного цикла одного просмотра бронирования.
// Владеет машиной состояний из models.go; каждая операция — единственная
// функция перехода для соответствующего действия пользователя.
//
// Контроллер не потокобезопасен: по модели исполнения каждый экземпляр
// обслуживает один просмотр и вызывается последовательно.
type Controller struct {
	client DiningClient
	log    Logger

	state  State
	closed bool
	gen    uint64 // поколение lookup'а; ответы устаревших поколений отбрасываются
}

// NewController создает контроллер в фазе Idle
func NewController(client DiningClient, log Logger) *Controller {
	return &Controller{
		client: client,
		log:    log,
		state:  State{Phase: PhaseIdle},
	}
}

// State возвращает снимок текущего состояния
func (c *Controller) State() State {
	return c.state
}

// Close помечает контроллер закрытым (представление размонтировано).
// Ответы незавершенных запросов после закрытия отбрасываются и не
// применяются к состоянию.
func (c *Controller) Close() {
	c.closed = true
}

// Lookup выполняет поиск бронирования по токену.
// Пустой токен отклоняется локально, без сетевого вызова.
func (c *Controller) Lookup(ctx context.Context, token string) State {
	token = strings.TrimSpace(token)
	if token == "" {
		c.state.Message = msgEmptyToken
		c.state.MessageKind = MessageError
		return c.state
	}

	c.gen++
	gen := c.gen
	c.state = State{Phase: PhaseLoading, Token: token}

	reservation, err := c.client.GetReservationByToken(ctx, token)

	// Представление могло быть закрыто или запущен новый lookup,
	// пока запрос был в полете — такой ответ отбрасываем
	if c.closed || gen != c.gen {
		c.log.Info("Lookup: stale response discarded for token=%s", token)
		return c.state
	}

	if err != nil {
		if errors.Is(err, diningservice.ErrReservationNotFound) {
			c.log.Warn("Lookup: reservation not found for token=%s", token)
			c.state = State{
				Phase:       PhaseNotFound,
				Token:       token,
				Message:     msgNotFound,
				MessageKind: MessageError,
			}
			return c.state
		}

		c.log.Error("Lookup: failed for token=%s: %v", token, err)
		c.state = State{
			Phase:       PhaseErrored,
			Token:       token,
			Message:     msgLookupFailed + ": " + err.Error(),
			MessageKind: MessageError,
		}
		return c.state
	}

	c.log.Info("Lookup: reservation id=%d status=%s loaded for token=%s",
		reservation.ID, reservation.Status, token)

	c.state = State{
		Phase:       PhaseLoaded,
		Token:       token,
		Reservation: reservation,
	}

	// Зависимая выборка деталей ресторана — best-effort: ее неуспех
	// не откатывает успешный lookup, представление деградирует до
	// "Restaurant information not available"
	c.fetchRestaurant(ctx, gen, reservation.RestaurantID)

	return c.state
}

// RequestCancel переводит контроллер в фазу подтверждения отмены.
// Переход запрещен из любой фазы, кроме Loaded, и для бронирований
// в терминальном статусе; в этих случаях операция — no-op.
func (c *Controller) RequestCancel() State {
	if !c.state.CanCancel() {
		c.log.Warn("RequestCancel: transition disallowed in phase=%s", c.state.Phase)
		return c.state
	}

	c.state.Phase = PhaseConfirmingCancel
	c.state.Message = ""
	c.state.MessageKind = MessageNone
	return c.state
}

// AbortCancel возвращает контроллер из подтверждения отмены в Loaded
func (c *Controller) AbortCancel() State {
	if c.state.Phase != PhaseConfirmingCancel {
		c.log.Warn("AbortCancel: transition disallowed in phase=%s", c.state.Phase)
		return c.state
	}

	c.state.Phase = PhaseLoaded
	return c.state
}

// ConfirmCancel выполняет удаление бронирования по токену.
// Бронирование не убирается из представления, пока удаление не
// подтверждено backend'ом; при ошибке контроллер возвращается в Loaded.
func (c *Controller) ConfirmCancel(ctx context.Context) State {
	if c.state.Phase != PhaseConfirmingCancel {
		c.log.Warn("ConfirmCancel: transition disallowed in phase=%s", c.state.Phase)
		return c.state
	}

	gen := c.gen
	token := c.state.Token
	c.state.Phase = PhaseCancelling

	err := c.client.CancelReservation(ctx, token)

	if c.closed || gen != c.gen {
		c.log.Info("ConfirmCancel: stale response discarded for token=%s", token)
		return c.state
	}

	if err != nil {
		c.log.Error("ConfirmCancel: failed for token=%s: %v", token, err)
		c.state.Phase = PhaseLoaded
		c.state.Message = msgCancelFailed + ": " + err.Error()
		c.state.MessageKind = MessageError
		return c.state
	}

	c.log.Info("ConfirmCancel: reservation cancelled for token=%s", token)
	c.state = State{
		Phase:       PhaseCancelled,
		Message:     msgCancelSuccess,
		MessageKind: MessageSuccess,
	}
	return c.state
}

// RestaurantName возвращает название ресторана для отображения,
// с деградацией при недоступных деталях
func (c *Controller) RestaurantName() string {
	if c.state.Restaurant == nil {
		return msgRestaurantAbsent
	}
	return c.state.Restaurant.Name
}

func (c *Controller) fetchRestaurant(ctx context.Context, gen uint64, restaurantID int64) {
	restaurant, err := c.client.GetRestaurant(ctx, restaurantID)

	if c.closed || gen != c.gen {
		return
	}

	if err != nil {
		c.log.Warn("Lookup: failed to fetch restaurant id=%d: %v", restaurantID, err)
		return
	}

	c.state.Restaurant = restaurant
}
