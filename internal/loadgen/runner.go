package loadgen

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// Config параметры прогона нагрузки. Профиль повторяет оригинальный
// сценарий: разгон до плато, плато, спад; пороги по p95 и доле ошибок.
type Config struct {
	TargetVUs    int
	RampUp       time.Duration
	Steady       time.Duration
	RampDown     time.Duration
	P95Threshold time.Duration
	MaxErrorRate float64
	Tick         time.Duration // период пересчета числа VU, по умолчанию 1s
}

// Summary итог прогона
type Summary struct {
	Total     int64
	Failed    int64
	ErrorRate float64
	P50       time.Duration
	P95       time.Duration
	P99       time.Duration
	Elapsed   time.Duration
}

// Violations возвращает список нарушенных порогов; пустой список
// означает успешный прогон
func (s *Summary) Violations(cfg Config) []string {
	var out []string
	if cfg.P95Threshold > 0 && s.P95 > cfg.P95Threshold {
		out = append(out, fmt.Sprintf("p95 latency %v exceeds threshold %v", s.P95, cfg.P95Threshold))
	}
	if s.ErrorRate > cfg.MaxErrorRate {
		out = append(out, fmt.Sprintf("error rate %.4f exceeds threshold %.4f", s.ErrorRate, cfg.MaxErrorRate))
	}
	return out
}

// Runner генератор нагрузки: пул виртуальных пользователей, каждый из
// которых в цикле выполняет клиентский сценарий — создание бронирования,
// чтение по токену, чтение ресторана, изредка отмена.
type Runner struct {
	client DiningClient
	log    Logger
	cfg    Config

	registry *prometheus.Registry
	hist     prometheus.Histogram
	requests prometheus.Counter
	errors   prometheus.Counter

	mu        sync.Mutex
	durations []time.Duration
	total     int64
	failed    int64
}

// NewRunner создает генератор нагрузки
func NewRunner(client DiningClient, log Logger, cfg Config) *Runner {
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}

	registry := prometheus.NewRegistry()
	r := &Runner{
		client:   client,
		log:      log,
		cfg:      cfg,
		registry: registry,
		hist: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "loadtest_request_duration_seconds",
			Help:    "Duration of load-test requests in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .2, .5, 1, 2.5, 5},
		}),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadtest_requests_total",
			Help: "Total number of load-test requests",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loadtest_errors_total",
			Help: "Total number of failed load-test requests",
		}),
	}
	registry.MustRegister(r.hist, r.requests, r.errors)
	return r
}

// Registry возвращает реестр prometheus для экспорта метрик во время прогона
func (r *Runner) Registry() *prometheus.Registry {
	return r.registry
}

// Run выполняет прогон по сконфигурированному профилю и возвращает итог
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	restaurants, err := r.client.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("loadgen: failed to fetch restaurant catalog: %w", err)
	}
	if len(restaurants) == 0 {
		return nil, fmt.Errorf("loadgen: restaurant catalog is empty")
	}

	totalDuration := r.cfg.RampUp + r.cfg.Steady + r.cfg.RampDown
	r.log.Info("Run: target=%d VUs, profile %v/%v/%v",
		r.cfg.TargetVUs, r.cfg.RampUp, r.cfg.Steady, r.cfg.RampDown)

	start := time.Now()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var vuSeq int64
	cancels := make([]context.CancelFunc, 0, r.cfg.TargetVUs)

	ticker := time.NewTicker(r.cfg.Tick)
	defer ticker.Stop()

	for elapsed := time.Duration(0); elapsed < totalDuration; {
		desired := vusAt(elapsed, r.cfg)

		// Доращиваем пул до целевого размера
		for len(cancels) < desired {
			vuCtx, vuCancel := context.WithCancel(runCtx)
			cancels = append(cancels, vuCancel)

			id := atomic.AddInt64(&vuSeq, 1)
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				r.virtualUser(vuCtx, id, restaurants)
			}(id)
		}

		// Ужимаем пул при спаде
		for len(cancels) > desired {
			last := len(cancels) - 1
			cancels[last]()
			cancels = cancels[:last]
		}

		select {
		case <-ctx.Done():
			elapsed = totalDuration
		case <-ticker.C:
			elapsed = time.Since(start)
		}
	}

	cancel()
	wg.Wait()

	return r.summary(time.Since(start)), nil
}

// virtualUser цикл одного виртуального пользователя
func (r *Runner) virtualUser(ctx context.Context, id int64, restaurants []domain.Restaurant) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + id))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		r.iteration(ctx, rng, restaurants)

		// Пауза между итерациями, как в оригинальном сценарии
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Second):
		}
	}
}

// iteration один проход клиентского сценария
func (r *Runner) iteration(ctx context.Context, rng *rand.Rand, restaurants []domain.Restaurant) {
	restaurant := restaurants[rng.Intn(len(restaurants))]
	date := time.Now().AddDate(0, 0, 1+rng.Intn(14))

	// 1. Создаем бронирование; каждый пятый запрос идет по имени ресторана
	var (
		created *domain.Reservation
		err     error
	)
	if rng.Intn(5) == 0 {
		created, err = r.observeReservation(func() (*domain.Reservation, error) {
			return r.client.CreateReservationByName(ctx, &diningservice.CreateReservationByNameRequest{
				RestaurantName:  restaurant.Name,
				UserName:        "Load Test User",
				UserEmail:       "loadtest@example.com",
				UserPhone:       "+351912345678",
				ReservationDate: date,
			})
		})
	} else {
		created, err = r.observeReservation(func() (*domain.Reservation, error) {
			return r.client.CreateReservation(ctx, &diningservice.CreateReservationRequest{
				UserName:        "Load Test User",
				UserEmail:       "loadtest@example.com",
				UserPhone:       "+351912345678",
				ReservationDate: date,
				RestaurantID:    restaurant.ID,
			})
		})
	}
	if err != nil {
		return
	}

	// 2. Читаем созданное бронирование по токену
	if _, err := r.observeReservation(func() (*domain.Reservation, error) {
		return r.client.GetReservationByToken(ctx, created.Token)
	}); err != nil {
		return
	}

	// 3. Читаем детали ресторана
	start := time.Now()
	_, err = r.client.GetRestaurant(ctx, restaurant.ID)
	r.observe(start, err)
	if err != nil {
		return
	}

	// 4. Отменяем часть бронирований, чтобы не упереться в лимит ресторана
	if rng.Intn(3) == 0 {
		start = time.Now()
		err = r.client.CancelReservation(ctx, created.Token)
		r.observe(start, err)
	}
}

func (r *Runner) observeReservation(call func() (*domain.Reservation, error)) (*domain.Reservation, error) {
	start := time.Now()
	res, err := call()
	r.observe(start, err)
	return res, err
}

func (r *Runner) observe(start time.Time, err error) {
	elapsed := time.Since(start)

	r.requests.Inc()
	r.hist.Observe(elapsed.Seconds())

	r.mu.Lock()
	r.durations = append(r.durations, elapsed)
	r.total++
	if err != nil {
		r.failed++
	}
	r.mu.Unlock()

	if err != nil {
		r.errors.Inc()
		r.log.Warn("request failed: %v", err)
	}
}

func (r *Runner) summary(elapsed time.Duration) *Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Summary{
		Total:   r.total,
		Failed:  r.failed,
		Elapsed: elapsed,
		P50:     percentile(r.durations, 0.50),
		P95:     percentile(r.durations, 0.95),
		P99:     percentile(r.durations, 0.99),
	}
	if r.total > 0 {
		s.ErrorRate = float64(r.failed) / float64(r.total)
	}
	return s
}
