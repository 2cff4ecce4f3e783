package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long a client's limiter outlives its last request.
const limiterIdleTTL = 10 * time.Minute

type limiter struct {
	*rate.Limiter
	lastSeen time.Time
}

type limiters struct {
	mu        sync.Mutex
	byIP      map[string]*limiter
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiters(perMinute, burst int) *limiters {
	return &limiters{
		byIP:      make(map[string]*limiter),
		every:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     max(burst, 1),
		idle:      limiterIdleTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *limiters) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	lim, ok := l.byIP[ip]
	if !ok {
		lim = &limiter{Limiter: rate.NewLimiter(l.every, l.burst)}
		l.byIP[ip] = lim
	}

	lim.lastSeen = now
	return lim.AllowN(now, 1)
}

// sweep drops limiters idle for l.idle; callers hold l.mu.
func (l *limiters) sweep(now time.Time) {
	for ip, lim := range l.byIP {
		if now.Sub(lim.lastSeen) >= l.idle {
			delete(l.byIP, ip)
		}
	}
	l.lastSweep = now
}

func (l *limiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byIP)
}

func (s *server) rateLimit(perMinute, burst int) fiber.Handler {
	l := newLimiters(perMinute, burst)

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !l.allow(ip) {
			s.log.Fields("ip", ip).Warnf("rate limit exceeded")
			return s.sendError(c, http.StatusTooManyRequests, "Rate limit exceeded, try again later", "")
		}
		return c.Next()
	}
}
