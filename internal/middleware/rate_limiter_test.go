package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"CatatUang/internal/api/assistant"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func newTestLimiter(now *time.Time) *memoryRateLimiter {
	return &memoryRateLimiter{
		windows: make(map[string]*windowEntry),
		window:  time.Minute,
		cap:     10,
		now:     func() time.Time { return *now },
	}
}

func TestMemoryRateLimiterCap(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(&now)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		allowed, err := limiter.Allow(ctx, "user-1")
		if err != nil {
			t.Fatalf("Allow returned error: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d rejected, want allowed", i+1)
		}
	}

	allowed, err := limiter.Allow(ctx, "user-1")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if allowed {
		t.Fatal("11th request in window allowed, want rejected")
	}
}

func TestMemoryRateLimiterWindowReset(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(&now)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		limiter.Allow(ctx, "user-1")
	}

	// 59s in: still the same window, still over cap.
	now = now.Add(59 * time.Second)
	if allowed, _ := limiter.Allow(ctx, "user-1"); allowed {
		t.Fatal("request allowed before the window elapsed")
	}

	// Window boundary: counting starts over, nothing carries across.
	now = now.Add(time.Second)
	if allowed, _ := limiter.Allow(ctx, "user-1"); !allowed {
		t.Fatal("request rejected after the window elapsed")
	}
}

func TestMemoryRateLimiterIsolatesIdentities(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	limiter := newTestLimiter(&now)
	ctx := context.Background()

	for i := 0; i < 11; i++ {
		limiter.Allow(ctx, "user-1")
	}

	allowed, err := limiter.Allow(ctx, "user-2")
	if err != nil {
		t.Fatalf("Allow returned error: %v", err)
	}
	if !allowed {
		t.Fatal("second identity throttled by the first identity's window")
	}
}

func TestRateLimiterMiddlewareRejection(t *testing.T) {
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := New(logger, newTestLimiter(&now))

	app := fiber.New()
	app.Get("/", m.NewRateLimiter, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 10; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		if err != nil {
			t.Fatalf("request %d failed: %v", i+1, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("11th request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("11th request status = %d, want 429", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if !strings.Contains(string(body), assistant.ErrRateLimited.Error()) {
		t.Errorf("body = %q, want the rate limit message", body)
	}
}
