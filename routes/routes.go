package routes

import (
	"student-award-api/controllers"
	"student-award-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Student Award API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Reference data (all authenticated users)
			protected.GET("/campuses", controllers.GetCampuses)
			protected.GET("/faculties", controllers.GetFaculties)
			protected.GET("/departments", controllers.GetDepartments)
			protected.GET("/award-types", controllers.GetAwardTypes)
			protected.GET("/academic-periods", controllers.GetAcademicPeriods)

			// Award applications and the approval workflow
			applications := protected.Group("/applications")
			{
				applications.GET("", controllers.GetApplications)
				applications.GET("/:id", controllers.GetApplication)
				applications.GET("/:id/logs", controllers.GetApprovalHistory)
				applications.GET("/:id/voting-summary", controllers.GetVotingSummary)

				// Students manage their own drafts
				applications.POST("", controllers.CreateApplication)
				applications.PUT("/:id", controllers.UpdateApplication)
				applications.PATCH("/:id", controllers.UpdateApplication)
				applications.DELETE("/:id", controllers.DeleteApplication)
				applications.POST("/:id/submit", controllers.SubmitApplication)

				// Reviewer actions; role and scope checks happen inside the
				// handlers because they depend on the application's placement
				applications.POST("/:id/approve", controllers.ApproveApplication)
				applications.POST("/:id/vote", controllers.SubmitVote)
				applications.POST("/:id/close-voting", controllers.CloseVoting)
			}

			// Dashboard
			protected.GET("/statistics", controllers.GetStatistics)

			// Notifications
			protected.GET("/notifications", controllers.GetNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Administration
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireSystemAdmin())
			{
				admin.GET("/user-roles", controllers.GetUserRoles)
				admin.POST("/user-roles", controllers.CreateUserRole)
				admin.DELETE("/user-roles/:id", controllers.DeleteUserRole)

				admin.POST("/award-types", controllers.CreateAwardType)
				admin.PUT("/award-types/:id", controllers.UpdateAwardType)
				admin.DELETE("/award-types/:id", controllers.DeleteAwardType)

				admin.POST("/academic-periods", controllers.CreateAcademicPeriod)
				admin.PUT("/academic-periods/:id", controllers.UpdateAcademicPeriod)
				admin.DELETE("/academic-periods/:id", controllers.DeleteAcademicPeriod)
			}
		}
	}
}
