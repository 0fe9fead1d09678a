package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	idempotencyLockTTL  = 30 * time.Second
	idempotencyReplyTTL = 24 * time.Hour
)

type cachedReply struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency guards POST handlers keyed by the Idempotency-Key header. A key
// seen while its first request is still running is rejected with 409; once
// that request finished with a non-5xx status its reply is replayed verbatim.
// Requests without the header, or a nil client, pass straight through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L().Named("middleware.idempotency"))

		cacheKey := fmt.Sprintf("idemp:%s:%s", c.Request.URL.Path, idempKey)
		lockKey := cacheKey + ":lock"

		replayed, err := replayCachedReply(c, rdb, cacheKey)
		if err != nil {
			logger.Warn("idempotency lookup failed, continuing", zap.Error(err))
			c.Next()
			return
		}
		if replayed {
			logger.Debug("idempotent replay", zap.String("key", idempKey))
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock failed, continuing", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"A request with this Idempotency-Key is already being processed", nil)
			return
		}

		// The first request may have stored its reply and released the lock
		// between the lookup above and our SetNX.
		replayed, err = replayCachedReply(c, rdb, cacheKey)
		if err != nil {
			logger.Warn("idempotency recheck failed, continuing", zap.Error(err))
		}
		if replayed {
			logger.Debug("idempotent replay after lock", zap.String("key", idempKey))
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				logger.Warn("idempotency unlock failed", zap.Error(err))
			}
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status < http.StatusInternalServerError && rec.buf.Len() > 0 {
			payload, _ := json.Marshal(cachedReply{Status: status, Body: rec.buf.Bytes()})
			if err := rdb.Set(ctx, cacheKey, payload, idempotencyReplyTTL).Err(); err != nil {
				logger.Warn("idempotency store failed", zap.Error(err))
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			logger.Warn("idempotency unlock failed", zap.Error(err))
		}
	}
}

// replayCachedReply writes and aborts with the stored reply for cacheKey if
// one exists. A missing or unreadable entry reports false.
func replayCachedReply(c *gin.Context, rdb *redis.Client, cacheKey string) (bool, error) {
	val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var reply cachedReply
	if err := json.Unmarshal([]byte(val), &reply); err != nil {
		return false, nil
	}
	c.Header("Idempotent-Replayed", "true")
	c.Data(reply.Status, "application/json; charset=utf-8", reply.Body)
	c.Abort()
	return true, nil
}
