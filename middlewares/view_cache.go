package middlewares

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/armetcal/Meal-Tracker/cache"
	"github.com/armetcal/Meal-Tracker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ViewCache caches successful GET responses in redis under a "view:" key.
// The change bus deletes the whole view: namespace on every write, so a
// cached calendar or progress payload never outlives the data it summarizes.
// A no-op when redis is unavailable.
func ViewCache(duration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || !cache.Enabled() {
			c.Next()
			return
		}

		key := fmt.Sprintf("view:%s?%s", c.Request.URL.Path, c.Request.URL.RawQuery)

		var cached cachedResponse
		if err := cache.Get(key, &cached); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}
		c.Header("X-Cache", "MISS")

		w := &bodyCaptureWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			entry := cachedResponse{
				Status:      c.Writer.Status(),
				ContentType: c.Writer.Header().Get("Content-Type"),
				Body:        w.body.Bytes(),
			}
			if err := cache.Set(key, entry, duration); err != nil {
				utils.Logger.Warn("view_cache_set_failed",
					zap.Error(err),
					zap.String("key", key),
				)
			}
		}
	}
}
