package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// HTTP holds the request counters incremented by the logging middleware.
type HTTP struct {
	RequestsTotal Counter
	Responses2xx  Counter
	Responses4xx  Counter
	Responses5xx  Counter
}

var httpMetrics HTTP

// Requests returns the process-wide HTTP counters.
func Requests() *HTTP {
	return &httpMetrics
}

// Observe records one finished request.
func (h *HTTP) Observe(status int) {
	h.RequestsTotal.Inc()
	switch {
	case status >= 500:
		h.Responses5xx.Inc()
	case status >= 400:
		h.Responses4xx.Inc()
	case status >= 200 && status < 300:
		h.Responses2xx.Inc()
	}
}

// Snapshot is the JSON shape served on the debug endpoint.
type Snapshot struct {
	RequestsTotal uint64 `json:"requests_total"`
	Responses2xx  uint64 `json:"responses_2xx"`
	Responses4xx  uint64 `json:"responses_4xx"`
	Responses5xx  uint64 `json:"responses_5xx"`
}

func (h *HTTP) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal: h.RequestsTotal.Load(),
		Responses2xx:  h.Responses2xx.Load(),
		Responses4xx:  h.Responses4xx.Load(),
		Responses5xx:  h.Responses5xx.Load(),
	}
}
