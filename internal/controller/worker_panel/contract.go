package worker_panel

import (
	"context"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// DiningClient интерфейс клиента backend'а столовых
type DiningClient interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error)
	ReservationsByRestaurantAndDate(ctx context.Context, restaurantID int64, date time.Time) ([]domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, token string, newStatus domain.ReservationStatus) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
