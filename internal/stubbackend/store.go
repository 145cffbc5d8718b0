package stubbackend

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// Store потокобезопасное in-memory хранилище заглушки backend'а.
// Никакой долговременной персистентности нет и не должно быть:
// настоящее хранилище бронирований живет в невидимом backend'е.
type Store struct {
	mu sync.Mutex

	restaurants  map[int64]domain.Restaurant
	reservations map[int64]domain.Reservation
	byToken      map[string]int64

	nextReservationID int64
	maxPerRestaurant  int // 0 = без лимита
}

// NewStore создает хранилище с предзаполненным каталогом ресторанов
func NewStore(maxPerRestaurant int) *Store {
	s := &Store{
		restaurants:       make(map[int64]domain.Restaurant),
		reservations:      make(map[int64]domain.Reservation),
		byToken:           make(map[string]int64),
		nextReservationID: 1,
		maxPerRestaurant:  maxPerRestaurant,
	}
	for _, r := range seedRestaurants {
		s.restaurants[r.ID] = r
	}
	return s
}

// Restaurants возвращает каталог ресторанов, отсортированный по ID
func (s *Store) Restaurants() []domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Restaurant возвращает ресторан по ID
func (s *Store) Restaurant(id int64) (domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.restaurants[id]
	if !ok {
		return domain.Restaurant{}, ErrRestaurantNotFound
	}
	return r, nil
}

// RestaurantByName возвращает ресторан по названию (без учета регистра)
func (s *Store) RestaurantByName(name string) (domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.restaurants {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return domain.Restaurant{}, ErrRestaurantNotFound
}

// SearchByCuisine возвращает рестораны с совпадающим типом кухни.
// Пустой фильтр возвращает весь каталог.
func (s *Store) SearchByCuisine(cuisine string) []domain.Restaurant {
	all := s.Restaurants()
	if strings.TrimSpace(cuisine) == "" {
		return all
	}

	out := make([]domain.Restaurant, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.CuisineType), strings.ToLower(cuisine)) {
			out = append(out, r)
		}
	}
	return out
}

// CreateReservation создает бронирование со статусом PENDING и выданным
// сервером uuid-токеном. Возвращает ErrReservationLimitReached при
// превышении лимита активных бронирований ресторана.
func (s *Store) CreateReservation(restaurantID int64, userName, userEmail, userPhone string, date time.Time) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.restaurants[restaurantID]; !ok {
		return domain.Reservation{}, ErrRestaurantNotFound
	}

	if s.maxPerRestaurant > 0 {
		count := 0
		for _, r := range s.reservations {
			if r.RestaurantID == restaurantID && !r.Status.IsTerminal() {
				count++
			}
		}
		if count >= s.maxPerRestaurant {
			return domain.Reservation{}, ErrReservationLimitReached
		}
	}

	res := domain.Reservation{
		ID:              s.nextReservationID,
		Token:           uuid.NewString(),
		UserName:        userName,
		UserEmail:       userEmail,
		UserPhone:       userPhone,
		ReservationDate: date,
		RestaurantID:    restaurantID,
		Status:          domain.StatusPending,
	}
	s.nextReservationID++
	s.reservations[res.ID] = res
	s.byToken[res.Token] = res.ID
	return res, nil
}

// ReservationByID возвращает бронирование по числовому ID
func (s *Store) ReservationByID(id int64) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}
	return r, nil
}

// ReservationByToken возвращает бронирование по токену
func (s *Store) ReservationByToken(token string) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[token]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}
	return s.reservations[id], nil
}

// ReservationsByRestaurantAndDate возвращает бронирования ресторана
// на календарный день указанной даты
func (s *Store) ReservationsByRestaurantAndDate(restaurantID int64, date time.Time) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, m, d := date.Date()
	out := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		ry, rm, rd := r.ReservationDate.Date()
		if r.RestaurantID == restaurantID && ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateStatus обновляет статус бронирования по токену.
// Терминальные статусы неизменяемы.
func (s *Store) UpdateStatus(token string, status domain.ReservationStatus) (domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return domain.Reservation{}, ErrInvalidStatus
	}

	id, ok := s.byToken[token]
	if !ok {
		return domain.Reservation{}, ErrReservationNotFound
	}

	r := s.reservations[id]
	if r.Status.IsTerminal() {
		return domain.Reservation{}, ErrTerminalStatus
	}

	r.Status = status
	s.reservations[id] = r
	return r, nil
}

// DeleteReservation удаляет бронирование по токену (отмена клиентом).
// Последующие lookup'ы по этому токену отвечают 404.
func (s *Store) DeleteReservation(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byToken[token]
	if !ok {
		return ErrReservationNotFound
	}

	delete(s.reservations, id)
	delete(s.byToken, token)
	return nil
}
