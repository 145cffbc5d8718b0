package stubbackend

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Заглушка проверяется через настоящий клиент: один тест покрывает
// обе стороны HTTP-контракта.
func newStack(t *testing.T, maxPerRestaurant int) (*diningservice.Client, *Store) {
	t.Helper()

	store := NewStore(maxPerRestaurant)
	srv := NewServer(store, nopLogger{})

	router := mux.NewRouter()
	srv.Register(router)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	client := diningservice.NewClient(ts.URL+"/api", 5*time.Second, nopLogger{})
	return client, store
}

func createRequest(restaurantID int64) *diningservice.CreateReservationRequest {
	return &diningservice.CreateReservationRequest{
		UserName:        "Jane Doe",
		UserEmail:       "jane@example.com",
		UserPhone:       "+351912345678",
		ReservationDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
		RestaurantID:    restaurantID,
	}
}

func TestReservationLifecycle(t *testing.T) {
	client, _ := newStack(t, 0)
	ctx := context.Background()

	restaurants, err := client.ListRestaurants(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, restaurants)
	restaurant := restaurants[0]

	// Создание: статус PENDING, токен выдан сервером
	created, err := client.CreateReservation(ctx, createRequest(restaurant.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, restaurant.ID, created.RestaurantID)

	// Lookup по токену возвращает то же бронирование
	got, err := client.GetReservationByToken(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Отметка о выполнении через form-encoded PUT
	updated, err := client.UpdateReservationStatus(ctx, created.Token, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)

	// Терминальный статус неизменяем
	_, err = client.UpdateReservationStatus(ctx, created.Token, domain.StatusConfirmed)
	assert.ErrorIs(t, err, diningservice.ErrRequestFailed)
}

func TestCancelReservation_RemovesEntry(t *testing.T) {
	client, _ := newStack(t, 0)
	ctx := context.Background()

	created, err := client.CreateReservation(ctx, createRequest(1))
	require.NoError(t, err)

	require.NoError(t, client.CancelReservation(ctx, created.Token))

	// Последующий lookup по отмененному токену отвечает 404
	_, err = client.GetReservationByToken(ctx, created.Token)
	assert.ErrorIs(t, err, diningservice.ErrReservationNotFound)

	// Повторная отмена — тоже 404
	err = client.CancelReservation(ctx, created.Token)
	assert.ErrorIs(t, err, diningservice.ErrRequestFailed)
}

func TestCreateReservation_LimitReached(t *testing.T) {
	client, _ := newStack(t, 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.CreateReservation(ctx, createRequest(1))
		require.NoError(t, err)
	}

	_, err := client.CreateReservation(ctx, createRequest(1))
	require.ErrorIs(t, err, diningservice.ErrRequestFailed)
	assert.Contains(t, err.Error(), "status 422")

	// Лимит считается по ресторану, другой ресторан не затронут
	_, err = client.CreateReservation(ctx, createRequest(2))
	assert.NoError(t, err)
}

func TestCreateReservationByName(t *testing.T) {
	client, _ := newStack(t, 0)
	ctx := context.Background()

	restaurants, err := client.ListRestaurants(ctx)
	require.NoError(t, err)
	restaurant := restaurants[0]

	created, err := client.CreateReservationByName(ctx, &diningservice.CreateReservationByNameRequest{
		RestaurantName:  restaurant.Name,
		UserName:        "Jane Doe",
		UserEmail:       "jane@example.com",
		UserPhone:       "+351912345678",
		ReservationDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, created.RestaurantID)

	_, err = client.CreateReservationByName(ctx, &diningservice.CreateReservationByNameRequest{
		RestaurantName:  "No Such Place",
		UserName:        "Jane Doe",
		UserEmail:       "jane@example.com",
		UserPhone:       "+351912345678",
		ReservationDate: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, diningservice.ErrRequestFailed)
	assert.Contains(t, err.Error(), "status 404")
}

func TestReservationsByRestaurantAndDate_FiltersByDay(t *testing.T) {
	client, store := newStack(t, 0)
	ctx := context.Background()

	_, err := store.CreateReservation(1, "A", "a@x.com", "+1",
		time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = store.CreateReservation(1, "B", "b@x.com", "+2",
		time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = store.CreateReservation(2, "C", "c@x.com", "+3",
		time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	got, err := client.ReservationsByRestaurantAndDate(ctx,
		1, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].UserName)

	// Пустой результат — 200 с пустым списком, не ошибка
	got, err = client.ReservationsByRestaurantAndDate(ctx,
		1, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchRestaurantsAndCatalog(t *testing.T) {
	client, _ := newStack(t, 0)
	ctx := context.Background()

	all, err := client.ListRestaurants(ctx)
	require.NoError(t, err)

	// Пустой фильтр возвращает весь каталог
	found, err := client.SearchRestaurants(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, len(all))

	found, err = client.SearchRestaurants(ctx, all[0].CuisineType)
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, r := range found {
		assert.Contains(t, r.CuisineType, all[0].CuisineType)
	}

	_, err = client.GetRestaurant(ctx, 9999)
	assert.ErrorIs(t, err, diningservice.ErrRestaurantNotFound)
}

func TestMealsAndWeatherAreDeterministic(t *testing.T) {
	client, _ := newStack(t, 0)
	ctx := context.Background()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	meals1, err := client.MealsForDate(ctx, 1, date)
	require.NoError(t, err)
	require.NotEmpty(t, meals1)

	meals2, err := client.MealsForDate(ctx, 1, date)
	require.NoError(t, err)
	assert.Equal(t, meals1, meals2)

	f1, err := client.WeatherForecast(ctx, "Lisbon", date)
	require.NoError(t, err)
	f2, err := client.WeatherForecast(ctx, "Lisbon", date)
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
	assert.Equal(t, "Lisbon", f1.Location)
}
