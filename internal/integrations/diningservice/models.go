package diningservice

import "time"

// CreateReservationRequest запрос на создание бронирования по числовому ID ресторана
type CreateReservationRequest struct {
	UserName        string    `json:"userName"`
	UserEmail       string    `json:"userEmail"`
	UserPhone       string    `json:"userPhone"`
	ReservationDate time.Time `json:"reservationDate"`
	RestaurantID    int64     `json:"restaurantId"`
}

// CreateReservationByNameRequest запрос на создание бронирования по названию
// ресторана. Название используется backend'ом только для поиска ресторана;
// связь устанавливается по найденному ID.
type CreateReservationByNameRequest struct {
	RestaurantName  string    `json:"restaurantName"`
	UserName        string    `json:"userName"`
	UserEmail       string    `json:"userEmail"`
	UserPhone       string    `json:"userPhone"`
	ReservationDate time.Time `json:"reservationDate"`
}

// ErrorResponse модель ошибки backend'а
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
