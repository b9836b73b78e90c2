package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-viewer/internal/shared/server/respond"
	"resume-viewer/internal/shared/telemetry"
)

// Recovery turns a handler panic into a 500 error body and one error log.
// Panics after the response was written are only logged.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			resumeID, _ := c.Get(ResumeIDKey)
			telemetry.Error("http.panic", map[string]any{
				"request_id": RequestIDFromContext(c),
				"resume_id":  resumeID,
				"error":      rec,
				"stack":      string(debug.Stack()),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "unexpected server error", nil)
		}()
		c.Next()
	}
}
