package routes

import (
	"os"

	"github.com/gin-gonic/gin"

	"planet-cred-api/controllers"
	"planet-cred-api/middleware"
)

func SetupRoutes(router *gin.Engine) {
	// Stored objects (videos, certificates) are served from the upload
	// directory under /files. Object URLs returned by the API point here.
	storagePath := os.Getenv("STORAGE_PATH")
	if storagePath == "" {
		storagePath = "./uploads"
	}
	router.Static("/files", storagePath)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Static mission catalog
			public.GET("/missions", controllers.GetMissions)

			// One-time admin bootstrap status
			public.GET("/admin/setup", controllers.GetAdminSetupStatus)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Planet Cred API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Video evidence intake
			protected.POST("/videos", controllers.UploadVideo)

			// Mission submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.POST("", controllers.CreateSubmission)
			}

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}

			// Becoming the first admin only needs a login; once an admin
			// exists the service refuses everyone.
			protected.POST("/admin/setup", controllers.BootstrapAdmin)

			// Admin review queue. RequireAdmin re-reads user_roles on every
			// request so role changes apply immediately.
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/submissions", controllers.AdminListSubmissions)
				admin.POST("/submissions/:id/approve", controllers.ApproveSubmission)
				admin.POST("/submissions/:id/reject", controllers.RejectSubmission)

				// Super-admin only; the service checks the caller's email.
				admin.DELETE("/roles/:user_id", controllers.RevokeAdmin)
			}
		}
	}
}
