package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	created *domain.Reservation
	err     error

	calls   int
	lastReq *diningservice.CreateReservationRequest
}

func (f *fakeClient) CreateReservation(_ context.Context, req *diningservice.CreateReservationRequest) (*domain.Reservation, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func validFields() FormFields {
	return FormFields{
		UserName:  "Jane Doe",
		UserEmail: "jane@example.com",
		UserPhone: "+351912345678",
	}
}

func newTestController(client *fakeClient) *Controller {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	return NewController(client, nopLogger{}, 5, "Santiago Grill", date)
}

func TestSubmit_ValidationRejectsIncompleteForm(t *testing.T) {
	cases := []struct {
		name   string
		fields FormFields
		msg    string
	}{
		{"missing name", FormFields{UserEmail: "j@x.com", UserPhone: "+351"}, msgNameRequired},
		{"missing email", FormFields{UserName: "Jane", UserPhone: "+351"}, msgEmailRequired},
		{"missing phone", FormFields{UserName: "Jane", UserEmail: "j@x.com"}, msgPhoneRequired},
		{"blank name", FormFields{UserName: "   ", UserEmail: "j@x.com", UserPhone: "+351"}, msgNameRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{}
			ctrl := newTestController(client)

			ctrl.Edit(tc.fields)
			state := ctrl.Submit(context.Background())

			assert.Equal(t, PhaseErrored, state.Phase)
			assert.Equal(t, tc.msg, state.Message)
			assert.Equal(t, MessageError, state.MessageKind)
			assert.Zero(t, client.calls, "invalid form must not reach the network")
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	client := &fakeClient{
		created: &domain.Reservation{ID: 42, Token: "TOK-42", Status: domain.StatusPending},
	}
	ctrl := newTestController(client)

	ctrl.Edit(validFields())
	state := ctrl.Submit(context.Background())

	require.Equal(t, PhaseSucceeded, state.Phase)
	assert.Equal(t, "TOK-42", state.Token)
	assert.Equal(t, MessageSuccess, state.MessageKind)
	assert.Contains(t, state.Message, "Keep the token")

	// Контекст ресторана и даты сохраняется, поля формы сброшены
	assert.Equal(t, int64(5), state.RestaurantID)
	assert.Equal(t, "Santiago Grill", state.RestaurantName)
	assert.Equal(t, FormFields{}, state.Fields)

	// Реляционный ключ запроса — идентификатор ресторана
	require.NotNil(t, client.lastReq)
	assert.Equal(t, int64(5), client.lastReq.RestaurantID)
	assert.Equal(t, "Jane Doe", client.lastReq.UserName)
}

func TestSubmit_DateNormalizedToNoon(t *testing.T) {
	client := &fakeClient{
		created: &domain.Reservation{ID: 1, Token: "TOK-1", Status: domain.StatusPending},
	}
	ctrl := newTestController(client)

	ctrl.Edit(validFields())
	ctrl.Submit(context.Background())

	require.NotNil(t, client.lastReq)
	sent := client.lastReq.ReservationDate
	assert.Equal(t, 2025, sent.Year())
	assert.Equal(t, time.June, sent.Month())
	assert.Equal(t, 10, sent.Day())
	assert.Equal(t, domain.ReservationHour, sent.Hour())
	assert.Zero(t, sent.Minute())
}

func TestSubmit_FailurePreservesFieldsForResubmit(t *testing.T) {
	client := &fakeClient{err: diningservice.ErrRequestFailed}
	ctrl := newTestController(client)

	fields := validFields()
	ctrl.Edit(fields)
	state := ctrl.Submit(context.Background())

	require.Equal(t, PhaseErrored, state.Phase)
	assert.Contains(t, state.Message, msgSubmitFailed)
	assert.Equal(t, fields, state.Fields)

	// После устранения причины ошибки те же поля отправляются повторно
	client.err = nil
	client.created = &domain.Reservation{ID: 7, Token: "TOK-7", Status: domain.StatusPending}

	state = ctrl.Submit(context.Background())
	assert.Equal(t, PhaseSucceeded, state.Phase)
	assert.Equal(t, "TOK-7", state.Token)
	assert.Equal(t, 2, client.calls)
}

func TestEdit_ClearsErrorState(t *testing.T) {
	client := &fakeClient{err: diningservice.ErrUnavailable}
	ctrl := newTestController(client)

	ctrl.Edit(validFields())
	state := ctrl.Submit(context.Background())
	require.Equal(t, PhaseErrored, state.Phase)

	state = ctrl.Edit(validFields())
	assert.Equal(t, PhaseEditing, state.Phase)
	assert.Empty(t, state.Message)
	assert.Equal(t, MessageNone, state.MessageKind)
}

func TestSubmit_DisallowedAfterSuccess(t *testing.T) {
	client := &fakeClient{
		created: &domain.Reservation{ID: 1, Token: "TOK-1", Status: domain.StatusPending},
	}
	ctrl := newTestController(client)

	ctrl.Edit(validFields())
	state := ctrl.Submit(context.Background())
	require.Equal(t, PhaseSucceeded, state.Phase)

	// Повторная отправка из Succeeded — no-op
	state = ctrl.Submit(context.Background())
	assert.Equal(t, PhaseSucceeded, state.Phase)
	assert.Equal(t, 1, client.calls)

	state = ctrl.Edit(validFields())
	assert.Equal(t, PhaseSucceeded, state.Phase)
}

func TestSubmit_ResponseDiscardedAfterClose(t *testing.T) {
	client := &fakeClient{
		created: &domain.Reservation{ID: 1, Token: "TOK-1", Status: domain.StatusPending},
	}
	ctrl := newTestController(client)

	ctrl.Edit(validFields())
	ctrl.Close()
	state := ctrl.Submit(context.Background())

	assert.NotEqual(t, PhaseSucceeded, state.Phase)
	assert.Empty(t, state.Token)
}
