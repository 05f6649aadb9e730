package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/CornerstoneChurch/controllers"
	"github.com/CornerstoneChurch/initializers"
	"github.com/CornerstoneChurch/middlewares"
	"github.com/CornerstoneChurch/services"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectDB()
	services.InitEmailService()
	services.InitStorageService()
	services.InitPushNotificationService()
}

func main() {
	router := gin.Default()

	getKey := func(c *gin.Context) string {
		if gin.Mode() == gin.DebugMode {
			return c.FullPath()
		}
		return c.ClientIP()
	}

	api := router.Group("/api")

	// public website reads
	api.GET("/events", controllers.GetEvents)
	api.GET("/events/:event_id", controllers.GetEvent)
	api.GET("/gallery", controllers.GetGalleryImages)
	api.GET("/gallery/:gallery_image_id", controllers.GetGalleryImage)
	api.GET("/locations", controllers.GetLocations)
	api.GET("/locations/:location_id", controllers.GetLocation)
	api.GET("/pastors", controllers.GetPastors)
	api.GET("/pastors/:pastor_id", controllers.GetPastor)

	// public writes, throttled per client
	api.POST("/prayer-requests", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SubmitPrayerRequest)
	api.POST("/email/confirmation", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SendConfirmationEmail)
	api.POST("/email/notification", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.SendAdminNotificationEmail)
	api.POST("/auth/login", middlewares.RateLimitMiddleware(2, 2, getKey), controllers.AdminLogin)

	auth := api.Group("/")
	auth.Use(middlewares.CheckAuth)
	auth.Use(middlewares.RateLimitMiddleware(10, 10, getKey))
	{
		auth.GET("/auth/me", controllers.GetAdminProfile)

		admin := auth.Group("/")
		admin.Use(middlewares.CheckAdmin)
		{
			admin.POST("/events", controllers.CreateEvent)
			admin.PUT("/events/:event_id", controllers.UpdateEvent)
			admin.DELETE("/events/:event_id", controllers.DeleteEvent)

			admin.POST("/gallery/upload", controllers.UploadGalleryImage)
			admin.PUT("/gallery/:gallery_image_id", controllers.UpdateGalleryImage)
			admin.DELETE("/gallery/:gallery_image_id", controllers.DeleteGalleryImage)

			admin.POST("/locations", controllers.CreateLocation)
			admin.PUT("/locations/:location_id", controllers.UpdateLocation)
			admin.DELETE("/locations/:location_id", controllers.DeleteLocation)

			admin.POST("/pastors", controllers.CreatePastor)
			admin.PUT("/pastors/:pastor_id", controllers.UpdatePastor)
			admin.DELETE("/pastors/:pastor_id", controllers.DeletePastor)

			admin.GET("/prayer-requests", controllers.GetPrayerRequests)
			admin.GET("/prayer-requests/:prayer_request_id", controllers.GetPrayerRequest)
			admin.PATCH("/prayer-requests/:prayer_request_id/status", controllers.UpdatePrayerRequestStatus)
			admin.DELETE("/prayer-requests/:prayer_request_id", controllers.DeletePrayerRequest)

			admin.POST("/email/reply", controllers.SendReplyEmail)

			admin.GET("/dashboard", controllers.GetDashboard)

			admin.POST("/auth/device", controllers.RegisterAdminDevice)
		}
	}

	if err := router.Run(); err != nil {
		log.Fatal(err)
	}
}
