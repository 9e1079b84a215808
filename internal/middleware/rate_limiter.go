package middleware

import (
	"CatatUang/internal/api/assistant"
	"CatatUang/internal/entity"
	redisPkg "CatatUang/pkg/redis"
	"CatatUang/pkg/response"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const (
	rateLimitWindow = time.Minute
	rateLimitCap    = 10
)

// RateLimiter counts requests per caller in fixed windows. A full window
// means the caller waits for the next one; nothing carries over.
type RateLimiter interface {
	Allow(ctx context.Context, identity string) (bool, error)
}

type windowEntry struct {
	start time.Time
	count int
}

type memoryRateLimiter struct {
	windows map[string]*windowEntry
	window  time.Duration
	cap     int
	mutex   sync.Mutex
	now     func() time.Time
}

func NewMemoryRateLimiter() RateLimiter {
	return &memoryRateLimiter{
		windows: make(map[string]*windowEntry),
		window:  rateLimitWindow,
		cap:     rateLimitCap,
		now:     time.Now,
	}
}

func (l *memoryRateLimiter) Allow(_ context.Context, identity string) (bool, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	now := l.now()

	entry, exists := l.windows[identity]
	if !exists || now.Sub(entry.start) >= l.window {
		l.windows[identity] = &windowEntry{start: now, count: 1}
		return true, nil
	}

	entry.count++
	return entry.count <= l.cap, nil
}

type redisRateLimiter struct {
	client redisPkg.IRedis
	window time.Duration
	cap    int
}

// NewRedisRateLimiter shares one window across instances. Counting is
// INCR based, so the window boundary is set by the first request in it.
func NewRedisRateLimiter(client redisPkg.IRedis) RateLimiter {
	return &redisRateLimiter{
		client: client,
		window: rateLimitWindow,
		cap:    rateLimitCap,
	}
}

func (l *redisRateLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	count, err := l.client.IncrWindow(ctx, fmt.Sprintf("ratelimit:%s", identity), l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.cap), nil
}

func (m *middleware) NewRateLimiter(ctx *fiber.Ctx) error {
	identity := ctx.IP()
	if user, ok := ctx.Locals("user").(entity.UserLoginData); ok && user.ID != "" {
		identity = user.ID
	}

	allowed, err := m.rateLimiter.Allow(ctx.UserContext(), identity)
	if err != nil {
		m.log.Warnf("rate limiter unavailable, letting request through: %v", err)
		return ctx.Next()
	}

	if !allowed {
		m.log.Warnf("too many requests for %s", identity)
		var respErr *response.Error
		if errors.As(assistant.ErrRateLimited, &respErr) {
			return ctx.Status(respErr.Code).JSON(fiber.Map{"error": respErr.Error()})
		}
		return ctx.SendStatus(fiber.StatusTooManyRequests)
	}

	return ctx.Next()
}
