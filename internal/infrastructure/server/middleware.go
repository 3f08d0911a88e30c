package server

import (
	"path"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestContext assigns a request id and attaches a request-scoped logger
// to the request context.
func RequestContext(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logging.WithContext(c.Request.Context(), base)
		ctx = logging.WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AccessLog logs one line per request.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := zerolog.DebugLevel
		if c.Writer.Status() >= 500 {
			level = zerolog.ErrorLevel
		}
		logging.FromContext(c.Request.Context()).WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("http request")
	}
}

// CORS allows the configured origins. Patterns use path.Match syntax, so
// "chrome-extension://*" admits every extension id.
func CORS(allowed []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: originMatcher(allowed),
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}

func originMatcher(allowed []string) func(string) bool {
	patterns := append([]string(nil), allowed...)
	return func(origin string) bool {
		for _, pattern := range patterns {
			if pattern == "*" || pattern == origin {
				return true
			}
			if ok, err := path.Match(pattern, origin); err == nil && ok {
				return true
			}
		}
		return false
	}
}
