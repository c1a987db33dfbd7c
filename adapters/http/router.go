package http

import (
	"io/fs"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/khoahotran/devboard/internal/config"
	"github.com/khoahotran/devboard/pkg/logger"
)

// NewRouter wires the middleware chain and the REST routes. When webFS is
// not nil the dashboard is served for every path no API route claims.
func NewRouter(
	cfg config.Config,
	log logger.Logger,
	profileHandler *ProfileHandler,
	projectHandler *ProjectHandler,
	searchHandler *SearchHandler,
	webFS fs.FS,
) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if slices.Contains(cfg.CORS.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))
	router.Use(otelgin.Middleware("devboard-api"))
	router.Use(ErrorMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	profiles := router.Group("/profile")
	{
		profiles.GET("/:email", profileHandler.GetByEmail)
		profiles.POST("", profileHandler.Create)
		profiles.PUT("/:email", profileHandler.Update)
	}

	router.GET("/projects", projectHandler.ListBySkill)
	router.GET("/search", searchHandler.Search)

	if webFS != nil {
		router.NoRoute(gin.WrapH(http.FileServer(http.FS(webFS))))
	}

	return router
}
