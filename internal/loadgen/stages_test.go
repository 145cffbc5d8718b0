package loadgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func profileConfig() Config {
	return Config{
		TargetVUs: 50,
		RampUp:    120 * time.Second,
		Steady:    300 * time.Second,
		RampDown:  120 * time.Second,
	}
}

func TestVusAt_Profile(t *testing.T) {
	cfg := profileConfig()

	assert.Equal(t, 0, vusAt(0, cfg))
	assert.Equal(t, 25, vusAt(60*time.Second, cfg))

	// Плато
	assert.Equal(t, 50, vusAt(120*time.Second, cfg))
	assert.Equal(t, 50, vusAt(300*time.Second, cfg))
	assert.Equal(t, 50, vusAt(419*time.Second, cfg))

	// Спад
	assert.Equal(t, 25, vusAt(480*time.Second, cfg))
	assert.Equal(t, 0, vusAt(540*time.Second, cfg))
	assert.Equal(t, 0, vusAt(time.Hour, cfg))
}

func TestVusAt_ZeroRampUp(t *testing.T) {
	cfg := Config{TargetVUs: 10, Steady: time.Minute}

	assert.Equal(t, 10, vusAt(time.Second, cfg))
	assert.Equal(t, 0, vusAt(2*time.Minute, cfg))
}

func TestPercentile(t *testing.T) {
	assert.Equal(t, time.Duration(0), percentile(nil, 0.95))

	durations := make([]time.Duration, 0, 100)
	for i := 1; i <= 100; i++ {
		durations = append(durations, time.Duration(i)*time.Millisecond)
	}

	assert.Equal(t, 50*time.Millisecond, percentile(durations, 0.50))
	assert.Equal(t, 95*time.Millisecond, percentile(durations, 0.95))
	assert.Equal(t, 99*time.Millisecond, percentile(durations, 0.99))

	assert.Equal(t, 7*time.Millisecond, percentile([]time.Duration{7 * time.Millisecond}, 0.95))
}

func TestSummaryViolations(t *testing.T) {
	cfg := Config{
		P95Threshold: 200 * time.Millisecond,
		MaxErrorRate: 0.01,
	}

	clean := &Summary{P95: 150 * time.Millisecond, ErrorRate: 0.005}
	assert.Empty(t, clean.Violations(cfg))

	slow := &Summary{P95: 250 * time.Millisecond, ErrorRate: 0}
	violations := slow.Violations(cfg)
	assert.Len(t, violations, 1)
	assert.Contains(t, violations[0], "p95")

	flaky := &Summary{P95: 250 * time.Millisecond, ErrorRate: 0.05}
	assert.Len(t, flaky.Violations(cfg), 2)
}
