package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuldeephumbal/BMS-sub001/internal/domain/entity"
)

// memoryIdempotencyRepo is an in-memory IdempotencyRepository for tests
type memoryIdempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]*entity.IdempotencyKey
}

func newMemoryIdempotencyRepo() *memoryIdempotencyRepo {
	return &memoryIdempotencyRepo{keys: make(map[string]*entity.IdempotencyKey)}
}

func (r *memoryIdempotencyRepo) GetByKey(_ context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keys[key+userID.String()], nil
}

func (r *memoryIdempotencyRepo) Create(_ context.Context, ikey *entity.IdempotencyKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[ikey.Key+ikey.UserID.String()] = ikey
	return nil
}

func (r *memoryIdempotencyRepo) DeleteExpired(_ context.Context) error {
	return nil
}

func idempotentRouter(repo *memoryIdempotencyRepo, userID uuid.UUID, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.POST("/bills", IdempotencyRequired(IdempotencyConfig{Repo: repo}), handler)
	return router
}

func TestIdempotencyRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects requests without a key", func(t *testing.T) {
		router := idempotentRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bills", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("replays the cached response on retry", func(t *testing.T) {
		calls := 0
		router := idempotentRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"success": true, "call": calls})
		})

		first := httptest.NewRecorder()
		req1, _ := http.NewRequest("POST", "/bills", nil)
		req1.Header.Set(IdempotencyKeyHeader, "key-1")
		router.ServeHTTP(first, req1)
		require.Equal(t, http.StatusCreated, first.Code)

		second := httptest.NewRecorder()
		req2, _ := http.NewRequest("POST", "/bills", nil)
		req2.Header.Set(IdempotencyKeyHeader, "key-1")
		router.ServeHTTP(second, req2)

		assert.Equal(t, 1, calls)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("does not cache failed responses", func(t *testing.T) {
		calls := 0
		router := idempotentRouter(newMemoryIdempotencyRepo(), uuid.New(), func(c *gin.Context) {
			calls++
			if calls == 1 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/bills", nil)
			req.Header.Set(IdempotencyKeyHeader, "key-2")
			router.ServeHTTP(w, req)
		}

		// The failed first attempt was not stored, so the retry ran the handler.
		assert.Equal(t, 2, calls)
	})

	t.Run("expired keys are processed again", func(t *testing.T) {
		repo := newMemoryIdempotencyRepo()
		userID := uuid.New()
		_ = repo.Create(context.Background(), &entity.IdempotencyKey{
			Key:          "key-3",
			UserID:       userID,
			ResponseCode: http.StatusCreated,
			ResponseBody: `{"success":true}`,
			ExpiresAt:    time.Now().Add(-time.Hour),
		})

		calls := 0
		router := idempotentRouter(repo, userID, func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/bills", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-3")
		router.ServeHTTP(w, req)

		assert.Equal(t, 1, calls)
		assert.Empty(t, w.Header().Get("X-Idempotency-Replayed"))
	})
}
