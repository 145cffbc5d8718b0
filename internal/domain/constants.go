package domain

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // ISO local date-time, as the backend parses it
)

// ReservationHour фиксированный час, к которому клиент нормализует время
// бронирования перед отправкой (клиент собирает только дату)
const ReservationHour = 12

// DefaultMaxReservationsPerRestaurant лимит бронирований на ресторан,
// который применяет оригинальный бэкенд (422 при превышении)
const DefaultMaxReservationsPerRestaurant = 50
