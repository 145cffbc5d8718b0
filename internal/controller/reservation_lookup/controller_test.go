package reservation_lookup

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
	reservation    *domain.Reservation
	reservationErr error
	restaurant     *domain.Restaurant
	restaurantErr  error
	cancelErr      error

	lookupCalls     int
	restaurantCalls int
	cancelCalls     int
}

func (f *fakeClient) GetReservationByToken(_ context.Context, token string) (*domain.Reservation, error) {
	f.lookupCalls++
	if f.reservationErr != nil {
		return nil, f.reservationErr
	}
	return f.reservation, nil
}

func (f *fakeClient) GetRestaurant(_ context.Context, _ int64) (*domain.Restaurant, error) {
	f.restaurantCalls++
	if f.restaurantErr != nil {
		return nil, f.restaurantErr
	}
	return f.restaurant, nil
}

func (f *fakeClient) CancelReservation(_ context.Context, _ string) error {
	f.cancelCalls++
	return f.cancelErr
}

func pendingReservation(token string) *domain.Reservation {
	return &domain.Reservation{
		ID:              1,
		Token:           token,
		UserName:        "Jane",
		UserEmail:       "j@x.com",
		UserPhone:       "+351900000000",
		ReservationDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		RestaurantID:    5,
		Status:          domain.StatusPending,
	}
}

func TestLookup_EmptyToken(t *testing.T) {
	client := &fakeClient{}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "   ")

	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, MessageError, state.MessageKind)
	assert.Equal(t, msgEmptyToken, state.Message)
	assert.Zero(t, client.lookupCalls, "empty token must not trigger a network call")
}

func TestLookup_NotFound(t *testing.T) {
	client := &fakeClient{reservationErr: diningservice.ErrReservationNotFound}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "DOESNOTEXIST")

	assert.Equal(t, PhaseNotFound, state.Phase)
	assert.Equal(t, MessageError, state.MessageKind)
	assert.Equal(t, msgNotFound, state.Message)
	assert.Nil(t, state.Reservation)
}

func TestLookup_RequestError(t *testing.T) {
	client := &fakeClient{reservationErr: diningservice.ErrRequestFailed}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "ABC123")

	assert.Equal(t, PhaseErrored, state.Phase)
	assert.Contains(t, state.Message, msgLookupFailed)
}

func TestLookup_Loaded_WithRestaurant(t *testing.T) {
	client := &fakeClient{
		reservation: pendingReservation("ABC123"),
		restaurant:  &domain.Restaurant{ID: 5, Name: "Santiago Grill"},
	}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "ABC123")

	require.Equal(t, PhaseLoaded, state.Phase)
	require.NotNil(t, state.Reservation)
	assert.Equal(t, "ABC123", state.Reservation.Token)
	require.NotNil(t, state.Restaurant)
	assert.Equal(t, "Santiago Grill", ctrl.RestaurantName())
	assert.Equal(t, 1, client.restaurantCalls)
}

func TestLookup_RestaurantFetchIsBestEffort(t *testing.T) {
	client := &fakeClient{
		reservation:   pendingReservation("ABC123"),
		restaurantErr: diningservice.ErrUnavailable,
	}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "ABC123")

	// Неуспех зависимой выборки не откатывает успешный lookup
	assert.Equal(t, PhaseLoaded, state.Phase)
	assert.Nil(t, state.Restaurant)
	assert.Equal(t, msgRestaurantAbsent, ctrl.RestaurantName())
}

func TestCancelFlow_Success(t *testing.T) {
	client := &fakeClient{
		reservation: pendingReservation("ABC123"),
		restaurant:  &domain.Restaurant{ID: 5, Name: "Santiago Grill"},
	}
	ctrl := NewController(client, nopLogger{})

	state := ctrl.Lookup(context.Background(), "ABC123")
	require.Equal(t, PhaseLoaded, state.Phase)

	state = ctrl.RequestCancel()
	require.Equal(t, PhaseConfirmingCancel, state.Phase)

	state = ctrl.ConfirmCancel(context.Background())
	assert.Equal(t, PhaseCancelled, state.Phase)
	assert.Equal(t, MessageSuccess, state.MessageKind)
	assert.Equal(t, msgCancelSuccess, state.Message)
	assert.Empty(t, state.Token, "held token is cleared after cancellation")
	assert.Nil(t, state.Reservation)
	assert.Equal(t, 1, client.cancelCalls)

	// Повторная отмена после Cancelled запрещена
	state = ctrl.RequestCancel()
	assert.Equal(t, PhaseCancelled, state.Phase)
	assert.Equal(t, 1, client.cancelCalls)
}

func TestCancelFlow_Abort(t *testing.T) {
	client := &fakeClient{reservation: pendingReservation("ABC123")}
	ctrl := NewController(client, nopLogger{})

	ctrl.Lookup(context.Background(), "ABC123")
	ctrl.RequestCancel()
	state := ctrl.AbortCancel()

	assert.Equal(t, PhaseLoaded, state.Phase)
	assert.Zero(t, client.cancelCalls)
}

func TestCancelFlow_FailureReturnsToLoaded(t *testing.T) {
	client := &fakeClient{
		reservation: pendingReservation("ABC123"),
		cancelErr:   diningservice.ErrRequestFailed,
	}
	ctrl := NewController(client, nopLogger{})

	ctrl.Lookup(context.Background(), "ABC123")
	ctrl.RequestCancel()
	state := ctrl.ConfirmCancel(context.Background())

	// Бронирование остается в представлении, пока удаление не подтверждено
	assert.Equal(t, PhaseLoaded, state.Phase)
	require.NotNil(t, state.Reservation)
	assert.Equal(t, "ABC123", state.Reservation.Token)
	assert.Equal(t, MessageError, state.MessageKind)
}

func TestRequestCancel_DisallowedForTerminalStatus(t *testing.T) {
	for _, status := range []domain.ReservationStatus{domain.StatusCompleted, domain.StatusCancelled} {
		reservation := pendingReservation("ABC123")
		reservation.Status = status
		client := &fakeClient{reservation: reservation}
		ctrl := NewController(client, nopLogger{})

		state := ctrl.Lookup(context.Background(), "ABC123")
		require.Equal(t, PhaseLoaded, state.Phase)
		assert.False(t, state.CanCancel())

		state = ctrl.RequestCancel()
		assert.Equal(t, PhaseLoaded, state.Phase, "status %s must suppress cancellation", status)
		assert.Zero(t, client.cancelCalls)
	}
}

func TestRequestCancel_DisallowedWhenNotLoaded(t *testing.T) {
	ctrl := NewController(&fakeClient{}, nopLogger{})

	state := ctrl.RequestCancel()
	assert.Equal(t, PhaseIdle, state.Phase)

	state = ctrl.ConfirmCancel(context.Background())
	assert.Equal(t, PhaseIdle, state.Phase)
}

func TestLookup_ResponseDiscardedAfterClose(t *testing.T) {
	client := &fakeClient{reservation: pendingReservation("ABC123")}
	ctrl := NewController(client, nopLogger{})

	ctrl.Close()
	state := ctrl.Lookup(context.Background(), "ABC123")

	// Ответ пришел после закрытия представления и не применяется
	assert.Nil(t, state.Reservation)
	assert.NotEqual(t, PhaseLoaded, state.Phase)
}
