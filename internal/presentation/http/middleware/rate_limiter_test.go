package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(rl *UserRateLimiter, userID uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestUserRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests within rate limit", func(t *testing.T) {
		rl := NewUserRateLimiter(RateLimiterConfig{
			RequestsPerSecond: 10,
			BurstSize:         20,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		router := limitedRouter(rl, uuid.New())

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		}
	})

	t.Run("blocks requests exceeding burst", func(t *testing.T) {
		rl := NewUserRateLimiter(RateLimiterConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})
		router := limitedRouter(rl, uuid.New())

		var lastCode int
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("different users have separate limits", func(t *testing.T) {
		rl := NewUserRateLimiter(RateLimiterConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})

		routerA := limitedRouter(rl, uuid.New())
		routerB := limitedRouter(rl, uuid.New())

		w1 := httptest.NewRecorder()
		req1, _ := http.NewRequest("GET", "/test", nil)
		routerA.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		w2 := httptest.NewRecorder()
		req2, _ := http.NewRequest("GET", "/test", nil)
		routerB.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusOK, w2.Code)
	})

	t.Run("unauthenticated requests pass through", func(t *testing.T) {
		rl := NewUserRateLimiter(RateLimiterConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
			CleanupInterval:   time.Minute,
			EntryTTL:          time.Minute,
		})

		router := gin.New()
		router.Use(rl.Middleware())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("cleanup drops stale entries", func(t *testing.T) {
		rl := NewUserRateLimiter(RateLimiterConfig{
			RequestsPerSecond: 1,
			BurstSize:         1,
			CleanupInterval:   time.Hour,
			EntryTTL:          time.Nanosecond,
		})
		rl.getLimiter(uuid.New())

		time.Sleep(time.Millisecond)
		rl.cleanup()

		rl.mu.RLock()
		defer rl.mu.RUnlock()
		assert.Empty(t, rl.limiters)
	})
}
