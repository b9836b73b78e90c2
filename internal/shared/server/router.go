package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-viewer/internal/resumes"
	"resume-viewer/internal/services/health"
	"resume-viewer/internal/shared/config"
	"resume-viewer/internal/shared/metrics"
	"resume-viewer/internal/shared/server/middleware"
	"resume-viewer/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if perMinute := deps.Config.UploadRatePerMinute; perMinute > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: middleware.UploadGroup,
			Rules: map[string]middleware.RateLimitRule{
				"UPLOAD": {Rate: float64(perMinute) / 60, Burst: int(min(perMinute, 10))},
			},
		}))
	}

	r.GET("/", routeIndex)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}

	r.NoRoute(noRoute)
	return r
}

func routeIndex(c *gin.Context) {
	respond.OK(c, gin.H{
		"name": "resume-viewer",
		"api": []string{
			"GET /metrics",
			"GET /api/v1/health",
			"POST /api/v1/resumes",
			"GET /api/v1/resumes",
			"GET /api/v1/resumes/:id",
			"GET /api/v1/resumes/:id/file",
			"PUT /api/v1/resumes/:id/file",
		},
		"views": []string{"/", "/resumes", "/resume/:id"},
	})
}

// noRoute answers unknown API paths with a JSON 404 and sends every other
// path back to the index.
func noRoute(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", gin.H{"path": path})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
