// internal/server/router.go
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"careers-backend/internal/common/config"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/handlers"
	"careers-backend/internal/security"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Jobs         *handlers.JobPostHandler
	Applications *handlers.ApplicationHandler
	Storage      *handlers.StorageHandler
	Auth         *handlers.AuthHandler
}

// NewRouter wires all routes. Staff endpoints sit behind the JWT gate;
// intake and auth endpoints are public but rate limited.
func NewRouter(cfg *config.Config, h Handlers, jwt *security.JWTProvider, rdb redis.Cmdable, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(Observe(log))

	corsCfg := cors.DefaultConfig()
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "Idempotency-Key")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.Use(RateLimit(rdb, cfg.RateLimit, "auth", log))
	{
		auth.POST("/signin", h.Auth.SignIn)
		auth.POST("/signup", h.Auth.SignUp)
	}

	jobs := api.Group("/jobpost")
	{
		jobs.GET("/getposts", h.Jobs.List)
		jobs.GET("/getpostid/:id", h.Jobs.Get)

		staff := jobs.Group("")
		staff.Use(AuthRequired(jwt))
		{
			staff.POST("/createpost", h.Jobs.Create)
			staff.PUT("/updatepost/:id", h.Jobs.Update)
			staff.DELETE("/deletepost/:id", h.Jobs.Delete)
		}
	}

	careers := api.Group("/careers")
	{
		submit := careers.Group("")
		submit.Use(RateLimit(rdb, cfg.RateLimit, "intake", log))
		{
			submit.POST("/submitapplication", h.Applications.Submit)
		}

		staff := careers.Group("")
		staff.Use(AuthRequired(jwt))
		{
			staff.GET("/Applicationlists", h.Applications.List)
			staff.GET("/application/:id", h.Applications.Get)
			staff.PATCH("/application/:id/status", h.Applications.UpdateStatus)
		}
	}

	storage := api.Group("/storage")
	{
		storage.POST("/upload-resume", RateLimit(rdb, cfg.RateLimit, "upload", log), h.Storage.Upload)
		storage.GET("/file-url/:fileId", h.Storage.ResolveURL)
		storage.GET("/files/:fileId", h.Storage.Download)
	}

	return router
}
