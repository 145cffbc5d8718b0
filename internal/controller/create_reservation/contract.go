package create_reservation

import (
	"context"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// DiningClient интерфейс клиента backend'а столовых
type DiningClient interface {
	CreateReservation(ctx context.Context, req *diningservice.CreateReservationRequest) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
