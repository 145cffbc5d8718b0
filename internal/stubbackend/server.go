package stubbackend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Server HTTP-заглушка backend'а столовых. Реализует полный контракт
// /api, который потребляет клиентское ядро; используется для разработки
// и как цель генератора нагрузки.
type Server struct {
	store *Store
	log   Logger
}

// NewServer создает заглушку поверх указанного хранилища
func NewServer(store *Store, log Logger) *Server {
	return &Server{store: store, log: log}
}

// Register регистрирует маршруты /api на переданном роутере
func (s *Server) Register(r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/restaurants", s.handleListRestaurants).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/search", s.handleSearchRestaurants).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id:[0-9]+}", s.handleGetRestaurant).Methods(http.MethodGet)

	api.HandleFunc("/meals/restaurant/{id:[0-9]+}/date/{date}", s.handleMealsForDate).Methods(http.MethodGet)

	api.HandleFunc("/reservations", s.handleCreateReservation).Methods(http.MethodPost)
	api.HandleFunc("/reservations/create-by-name", s.handleCreateReservationByName).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", s.handleGetReservation).Methods(http.MethodGet)
	api.HandleFunc("/reservations/token/{token}", s.handleGetReservationByToken).Methods(http.MethodGet)
	api.HandleFunc("/reservations/restaurant/{id:[0-9]+}/date", s.handleReservationsByRestaurantAndDate).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{token}/status", s.handleUpdateReservationStatus).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{token}", s.handleDeleteReservation).Methods(http.MethodDelete)

	api.HandleFunc("/weather/forecast", s.handleWeatherForecast).Methods(http.MethodGet)
}

// Handle GET /api/restaurants
func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Restaurants())
}

// Handle GET /api/restaurants/search?cuisine=
func (s *Server) handleSearchRestaurants(w http.ResponseWriter, r *http.Request) {
	cuisine := r.URL.Query().Get("cuisine")
	respondJSON(w, http.StatusOK, s.store.SearchByCuisine(cuisine))
}

// Handle GET /api/restaurants/{id}
func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	restaurant, err := s.store.Restaurant(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	respondJSON(w, http.StatusOK, restaurant)
}

// Handle GET /api/meals/restaurant/{id}/date/{date}
func (s *Server) handleMealsForDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	if _, err := s.store.Restaurant(id); err != nil {
		respondError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	respondJSON(w, http.StatusOK, mealsFor(id, date))
}

type createReservationRequest struct {
	UserName        string    `json:"userName"`
	UserEmail       string    `json:"userEmail"`
	UserPhone       string    `json:"userPhone"`
	ReservationDate time.Time `json:"reservationDate"`
	RestaurantID    int64     `json:"restaurantId"`
	RestaurantName  string    `json:"restaurantName"`
}

// Handle POST /api/reservations
func (s *Server) handleCreateReservation(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCreateRequest(w, r)
	if !ok {
		return
	}
	s.createReservation(w, req.RestaurantID, req)
}

// Handle POST /api/reservations/create-by-name
func (s *Server) handleCreateReservationByName(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeCreateRequest(w, r)
	if !ok {
		return
	}

	restaurant, err := s.store.RestaurantByName(req.RestaurantName)
	if err != nil {
		s.log.Warn("POST /reservations/create-by-name - unknown restaurant name=%q", req.RestaurantName)
		respondError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	s.createReservation(w, restaurant.ID, req)
}

func (s *Server) decodeCreateRequest(w http.ResponseWriter, r *http.Request) (*createReservationRequest, bool) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if req.UserName == "" || req.UserEmail == "" || req.UserPhone == "" {
		respondError(w, http.StatusBadRequest, "userName, userEmail and userPhone are required")
		return nil, false
	}
	if req.ReservationDate.IsZero() {
		respondError(w, http.StatusBadRequest, "reservationDate is required")
		return nil, false
	}
	return &req, true
}

func (s *Server) createReservation(w http.ResponseWriter, restaurantID int64, req *createReservationRequest) {
	res, err := s.store.CreateReservation(restaurantID, req.UserName, req.UserEmail, req.UserPhone, req.ReservationDate)
	switch {
	case errors.Is(err, ErrRestaurantNotFound):
		respondError(w, http.StatusNotFound, "restaurant not found")
	case errors.Is(err, ErrReservationLimitReached):
		s.log.Warn("POST /reservations - restaurant id=%d has reached the reservation limit", restaurantID)
		respondError(w, http.StatusUnprocessableEntity, "restaurant has reached the reservation limit")
	case err != nil:
		s.log.Error("POST /reservations - failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	default:
		s.log.Info("POST /reservations - created id=%d restaurant=%d", res.ID, restaurantID)
		respondJSON(w, http.StatusCreated, res)
	}
}

// Handle GET /api/reservations/{id}
func (s *Server) handleGetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	res, err := s.store.ReservationByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "reservation not found")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Handle GET /api/reservations/token/{token}
func (s *Server) handleGetReservationByToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	res, err := s.store.ReservationByToken(token)
	if err != nil {
		respondError(w, http.StatusNotFound, "reservation not found")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// Handle GET /api/reservations/restaurant/{id}/date?date=ISO
func (s *Server) handleReservationsByRestaurantAndDate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	raw := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateTimeFormat, raw)
	if err != nil {
		// Принимаем и дату без времени
		date, err = time.Parse(domain.DateFormat, raw)
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	respondJSON(w, http.StatusOK, s.store.ReservationsByRestaurantAndDate(id, date))
}

// Handle PUT /api/reservations/{token}/status (form-encoded newStatus=)
func (s *Server) handleUpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}
	newStatus := domain.ReservationStatus(r.PostForm.Get("newStatus"))

	res, err := s.store.UpdateStatus(token, newStatus)
	switch {
	case errors.Is(err, ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid status")
	case errors.Is(err, ErrReservationNotFound):
		respondError(w, http.StatusNotFound, "reservation not found")
	case errors.Is(err, ErrTerminalStatus):
		respondError(w, http.StatusConflict, "reservation is in terminal status")
	case err != nil:
		s.log.Error("PUT /reservations/{token}/status - failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	default:
		s.log.Info("PUT /reservations/{token}/status - token=%s status=%s", token, newStatus)
		respondJSON(w, http.StatusOK, res)
	}
}

// Handle DELETE /api/reservations/{token}
func (s *Server) handleDeleteReservation(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := s.store.DeleteReservation(token); err != nil {
		respondError(w, http.StatusNotFound, "reservation not found")
		return
	}

	s.log.Info("DELETE /reservations/{token} - cancelled token=%s", token)
	w.WriteHeader(http.StatusNoContent)
}

// Handle GET /api/weather/forecast?location=&date=ISO
func (s *Server) handleWeatherForecast(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		respondError(w, http.StatusBadRequest, "location is required")
		return
	}

	raw := r.URL.Query().Get("date")
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		date, err = time.Parse(domain.DateTimeFormat, raw)
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date")
		return
	}

	respondJSON(w, http.StatusOK, forecastFor(location, date))
}
