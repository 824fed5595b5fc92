package progress

import (
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultSteps    = 4
	DefaultInterval = 500 * time.Millisecond
)

// Indicator advances a step counter on a fixed cadence from a single
// auxiliary goroutine. It carries no data beyond the step and a loading flag.
type Indicator struct {
	steps    int
	interval time.Duration

	mu      sync.Mutex
	running bool
	wg      sync.WaitGroup

	loading atomic.Bool
	step    atomic.Int32
}

// New returns an indicator that ticks steps times, interval apart.
func New(steps int, interval time.Duration) *Indicator {
	if steps <= 0 {
		steps = DefaultSteps
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Indicator{steps: steps, interval: interval}
}

// Start marks the indicator as loading and launches the animation. Calling
// Start while an animation is in flight does nothing.
func (i *Indicator) Start() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.running {
		return false
	}
	i.running = true
	i.step.Store(0)
	i.loading.Store(true)
	i.wg.Add(1)
	go i.animate()
	return true
}

func (i *Indicator) animate() {
	defer i.wg.Done()
	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()
	for n := 1; n <= i.steps; n++ {
		<-ticker.C
		i.step.Store(int32(n))
	}
}

// Wait joins the animation goroutine and clears the loading flag.
func (i *Indicator) Wait() {
	i.wg.Wait()
	i.mu.Lock()
	i.running = false
	i.mu.Unlock()
	i.loading.Store(false)
}

// Loading reports whether an animation has started and not yet been joined.
func (i *Indicator) Loading() bool {
	return i.loading.Load()
}

// Step returns the current step, 0 through Steps.
func (i *Indicator) Step() int {
	return int(i.step.Load())
}

// Steps returns the number of steps in one animation.
func (i *Indicator) Steps() int {
	return i.steps
}

// Percent returns the step as a fraction of Steps.
func (i *Indicator) Percent() float64 {
	return float64(i.Step()) / float64(i.steps)
}
