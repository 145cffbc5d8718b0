package loadgen

import (
	"context"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// DiningClient интерфейс клиента backend'а столовых
type DiningClient interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (*domain.Restaurant, error)
	CreateReservation(ctx context.Context, req *diningservice.CreateReservationRequest) (*domain.Reservation, error)
	CreateReservationByName(ctx context.Context, req *diningservice.CreateReservationByNameRequest) (*domain.Reservation, error)
	GetReservationByToken(ctx context.Context, token string) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
