package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"resume-viewer/internal/shared/telemetry"
)

func TestRecoveryWritesErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	restore := telemetry.SetLogger(zap.New(core))
	defer restore()

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/boom", func(c *gin.Context) {
		c.Set(ResumeIDKey, "resume_1_abcdefghi")
		panic("kaboom")
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"code":"internal_error"`) {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
	panics := logs.FilterMessage("http.panic").All()
	if len(panics) != 1 {
		t.Fatalf("expected one panic log, got %d", len(panics))
	}
	if panics[0].ContextMap()["resume_id"] != "resume_1_abcdefghi" {
		t.Fatalf("expected resume_id on panic log")
	}
}
