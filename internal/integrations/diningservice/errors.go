package diningservice

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование с указанным
	// токеном или ID не существует (HTTP 404 на lookup)
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrRestaurantNotFound возвращается, когда ресторан не найден
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrRequestFailed возвращается при любом другом неуспешном HTTP-статусе;
	// обертка всегда содержит код статуса
	ErrRequestFailed = errors.New("diningservice client: request failed")

	// ErrUnavailable возвращается при транспортной ошибке (backend недоступен)
	ErrUnavailable = errors.New("diningservice client: backend unavailable")

	// ErrInvalidResponse возвращается, когда ответ backend'а не является
	// корректным JSON ожидаемой формы
	ErrInvalidResponse = errors.New("diningservice client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("diningservice client: internal error")
)
