package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

const msgSubmitFailed = "Failed to create reservation"

// Controller контроллер формы создания бронирования. Контекст ресторана
// и даты фиксируется при создании контроллера (форма открывается из
// каталога для конкретного ресторана и выбранной даты).
type Controller struct {
	client DiningClient
	log    Logger

	state  State
	closed bool
	gen    uint64
}

// NewController создает контроллер в фазе Editing
func NewController(client DiningClient, log Logger, restaurantID int64, restaurantName string, date time.Time) *Controller {
	return &Controller{
		client: client,
		log:    log,
		state: State{
			Phase:          PhaseEditing,
			RestaurantID:   restaurantID,
			RestaurantName: restaurantName,
			Date:           date,
		},
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

// Edit сохраняет значения полей формы. Из фазы Errored редактирование
// возвращает форму в Editing; введенные значения сохраняются для
// повторной отправки.
func (c *Controller) Edit(fields FormFields) State {
	switch c.state.Phase {
	case PhaseEditing, PhaseErrored:
	default:
		c.log.Warn("Edit: transition disallowed in phase=%s", c.state.Phase)
		return c.state
	}

	c.state.Phase = PhaseEditing
	c.state.Fields = fields
	c.state.Message = ""
	c.state.MessageKind = MessageNone
	return c.state
}

// Submit отправляет форму. Обязательные поля проверяются локально до
// сетевого вызова; дата нормализуется на полдень локального времени.
// При успехе захватывается выданный сервером токен, а поля формы
// сбрасываются — кроме контекста ресторана и даты.
func (c *Controller) Submit(ctx context.Context) State {
	switch c.state.Phase {
	case PhaseEditing, PhaseErrored:
	default:
		c.log.Warn("Submit: transition disallowed in phase=%s", c.state.Phase)
		return c.state
	}

	if msg, ok := validateFields(c.state.Fields); !ok {
		c.log.Warn("Submit: validation failed: %s", msg)
		c.state.Phase = PhaseErrored
		c.state.Message = msg
		c.state.MessageKind = MessageError
		return c.state
	}

	c.gen++
	gen := c.gen
	c.state.Phase = PhaseSubmitting
	c.state.Message = ""
	c.state.MessageKind = MessageNone

	reservation, err := c.client.CreateReservation(ctx, &diningservice.CreateReservationRequest{
		UserName:        c.state.Fields.UserName,
		UserEmail:       c.state.Fields.UserEmail,
		UserPhone:       c.state.Fields.UserPhone,
		ReservationDate: atNoon(c.state.Date),
		RestaurantID:    c.state.RestaurantID,
	})

	if c.closed || gen != c.gen {
		c.log.Info("Submit: stale response discarded for restaurant=%d", c.state.RestaurantID)
		return c.state
	}

	if err != nil {
		// Значения полей сохраняются для повторной отправки
		c.log.Error("Submit: failed for restaurant=%d: %v", c.state.RestaurantID, err)
		c.state.Phase = PhaseErrored
		c.state.Message = msgSubmitFailed + ": " + err.Error()
		c.state.MessageKind = MessageError
		return c.state
	}

	c.log.Info("Submit: reservation id=%d created for restaurant=%d", reservation.ID, c.state.RestaurantID)

	c.state = State{
		Phase:          PhaseSucceeded,
		RestaurantID:   c.state.RestaurantID,
		RestaurantName: c.state.RestaurantName,
		Date:           c.state.Date,
		Token:          reservation.Token,
		Message:        "Your reservation has been created. Keep the token to check or cancel it later.",
		MessageKind:    MessageSuccess,
	}
	return c.state
}

// atNoon нормализует дату на фиксированный час бронирования (12:00)
func atNoon(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		domain.ReservationHour, 0, 0, 0, date.Location())
}
