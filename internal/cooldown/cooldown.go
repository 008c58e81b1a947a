// Package cooldown limits how often each sender may issue commands.
package cooldown

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter keeps one token bucket per sender. A sender may issue burst
// commands at once and regains one every period.
type Limiter struct {
	mu      sync.Mutex
	every   rate.Limit
	burst   int
	senders map[string]*rate.Limiter
	now     func() time.Time
}

// New creates a limiter allowing one command per period with the given
// burst. It returns nil when period is not positive, which disables the
// cooldown.
func New(period time.Duration, burst int) *Limiter {
	if period <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		every:   rate.Every(period),
		burst:   burst,
		senders: make(map[string]*rate.Limiter),
		now:     time.Now,
	}
}

// Check takes a token for sender. It returns zero when the command may run,
// or how long the sender has to wait. A rejected command takes no token.
func (l *Limiter) Check(sender string) time.Duration {
	if l == nil {
		return 0
	}

	l.mu.Lock()
	lim, ok := l.senders[sender]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.senders[sender] = lim
	}
	l.mu.Unlock()

	now := l.now()
	r := lim.ReserveN(now, 1)
	if wait := r.DelayFrom(now); wait > 0 {
		r.CancelAt(now)
		return wait
	}
	return 0
}
