package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ossu_arabic_backend/docs"
	"ossu_arabic_backend/internal/config"
	"ossu_arabic_backend/internal/middleware"
	"ossu_arabic_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.TryAuth(cfg))
	{
		api.GET("/health", c.health.HealthCheck)

		courses := api.Group("/courses")
		{
			courses.GET("", c.course.ListCourses)
			courses.GET("/:id", c.course.GetCourse)
			courses.POST("", c.course.SaveCourses)
		}

		progress := api.Group("/progress")
		{
			progress.GET("", c.progress.GetProgress)
			progress.GET("/course/:id", c.progress.GetCourseProgress)
			progress.POST("", c.progress.UpdateProgress)
			progress.PUT("", c.progress.BulkUpdateProgress)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/guest", c.auth.GuestSession)
			auth.POST("/login", c.auth.Login)
			auth.POST("/register", c.auth.Register)
			auth.GET("/profile", c.auth.GetProfile)
		}

		ai := api.Group("/ai")
		{
			ai.POST("/chat", c.ai.Chat)
			ai.POST("/code-help", c.ai.CodeHelp)
			ai.POST("/lesson-explain", c.ai.LessonExplain)
			ai.POST("/progress-analysis", c.ai.ProgressAnalysis)
		}

		media := api.Group("/media")
		{
			media.GET("/*name", c.media.GetMedia)
			media.POST("/upload", c.media.Upload)
		}
	}

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	router.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{
				"error": "API endpoint not found",
				"path":  path,
			})
			return
		}
		serveStatic(ctx, cfg.Server.StaticDir)
	})
}

// serveStatic answers non-API paths from the static directory, falling back
// to index.html so client-side routes resolve.
func serveStatic(ctx *gin.Context, dir string) {
	if dir == "" {
		dir = "static"
	}

	rel := filepath.Clean(strings.TrimPrefix(ctx.Request.URL.Path, "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "..") {
		rel = "index.html"
	}

	full := filepath.Join(dir, rel)
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		ctx.File(full)
		return
	}

	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err == nil {
		ctx.File(index)
		return
	}

	ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
