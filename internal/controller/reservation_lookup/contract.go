package reservation_lookup

import (
	"context"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// DiningClient интерфейс клиента backend'а столовых
type DiningClient interface {
	GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (*domain.Restaurant, error)
	CancelReservation(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
