package stubbackend

import "errors"

var (
	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("stubbackend: restaurant not found")

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("stubbackend: reservation not found")

	// ErrReservationLimitReached возвращается при превышении лимита
	// бронирований на ресторан
	ErrReservationLimitReached = errors.New("stubbackend: reservation limit reached")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("stubbackend: invalid reservation status")

	// ErrTerminalStatus возвращается при попытке изменить бронирование
	// в терминальном статусе
	ErrTerminalStatus = errors.New("stubbackend: reservation is in terminal status")
)
