package loadgen

import (
	"sort"
	"time"
)

// vusAt возвращает целевое число виртуальных пользователей для момента
// elapsed от начала прогона: линейный разгон до плато, плато, линейный
// спад до нуля.
func vusAt(elapsed time.Duration, cfg Config) int {
	switch {
	case elapsed < 0:
		return 0
	case elapsed < cfg.RampUp:
		if cfg.RampUp <= 0 {
			return cfg.TargetVUs
		}
		return int(float64(cfg.TargetVUs) * float64(elapsed) / float64(cfg.RampUp))
	case elapsed < cfg.RampUp+cfg.Steady:
		return cfg.TargetVUs
	case elapsed < cfg.RampUp+cfg.Steady+cfg.RampDown:
		if cfg.RampDown <= 0 {
			return 0
		}
		remaining := cfg.RampUp + cfg.Steady + cfg.RampDown - elapsed
		return int(float64(cfg.TargetVUs) * float64(remaining) / float64(cfg.RampDown))
	default:
		return 0
	}
}

// percentile возвращает q-перцентиль (0..1) выборки латентностей.
// Для пустой выборки возвращает 0.
func percentile(durations []time.Duration, q float64) time.Duration {
	if len(durations) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(len(sorted))*q+0.5) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
