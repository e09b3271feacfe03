package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"school/internal/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID makes sure every request carries an id, reusing the client's
// X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// ErrorLogger logs every request, with error details for failures, and
// recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, zerolog.ErrorLevel).
					Err(err).
					Str("type", "panic").
					Bytes("stack", debug.Stack()).
					Msg("request panicked")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "Internal server error",
					},
				})
				return
			}

			status := c.Writer.Status()
			switch {
			case len(c.Errors) > 0:
				ev := logRequest(c, start, zerolog.ErrorLevel)
				for i, err := range c.Errors {
					ev = ev.Str(fmt.Sprintf("error_%d", i), err.Error())
				}
				ev.Msg("request failed")
			case status >= http.StatusInternalServerError:
				logRequest(c, start, zerolog.ErrorLevel).Msg("request failed")
			case status >= http.StatusBadRequest:
				logRequest(c, start, zerolog.WarnLevel).Msg("request rejected")
			default:
				logRequest(c, start, zerolog.InfoLevel).Msg("request")
			}
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, level zerolog.Level) *zerolog.Event {
	l := logger.Get()
	return l.WithLevel(level).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("client_ip", c.ClientIP()).
		Str("request_id", c.GetString("request_id")).
		Dur("latency", time.Since(start))
}
