package app

import (
	"courseware_backend/docs"
	"courseware_backend/internal/config"
	"courseware_backend/internal/middleware"
	"courseware_backend/internal/model"
	"courseware_backend/internal/util"
	"courseware_backend/pkg/monitoring"
	"courseware_backend/pkg/security"
	"courseware_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	// 公共路由
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/login", c.auth.Login)
		public.POST("/auth/logout", c.auth.Logout)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	{
		authGroup.GET("/auth/me", c.auth.Me)

		a.registerProgressRoutes(authGroup, c)

		authGroup.GET("/courses/:id", c.course.GetCourse)
		authGroup.GET("/units/:id", c.unit.GetUnit)

		// 教师/管理员
		staff := authGroup.Group("")
		staff.Use(middleware.RoleMiddleware(model.Teacher))
		{
			staff.GET("/courses/:id/students", c.course.ListStudents)
			staff.POST("/courses/:id/students", c.course.AddStudent)
			staff.DELETE("/courses/:id/students/:userId", c.course.RemoveStudent)
			staff.POST("/courses/:id/progress/export", c.course.ExportProgress)
			staff.PUT("/units/:id/deadline", c.unit.SetDeadline)
		}
	}
}

func (a *App) registerProgressRoutes(rg *gin.RouterGroup, c *controllers) {
	progress := rg.Group("/progress")
	{
		progress.POST("", c.progress.CreateProgress)
		progress.PUT("/:id", c.progress.UpdateProgress)
		progress.GET("/:id", c.progress.GetProgress)
		progress.GET("/units/:unitId", c.progress.GetUnitProgress)
		progress.GET("/courses/:courseId", c.progress.GetCourseProgress)
	}
}
