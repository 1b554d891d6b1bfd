package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)

	d := timer.Duration()
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), d, "duration keeps growing")
}

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1000), c.Load())
}

func TestHTTPObserve(t *testing.T) {
	var h HTTP

	h.Observe(200)
	h.Observe(201)
	h.Observe(404)
	h.Observe(500)

	snap := h.Snapshot()
	assert.Equal(t, uint64(4), snap.RequestsTotal)
	assert.Equal(t, uint64(2), snap.Responses2xx)
	assert.Equal(t, uint64(1), snap.Responses4xx)
	assert.Equal(t, uint64(1), snap.Responses5xx)
}
