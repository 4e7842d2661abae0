package api

import (
	"GrowAGram/internal/api/middleware"
	"GrowAGram/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, logIndex string, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	logger.SetupGin(r, logIndex)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		reportGroup := apiGroup.Group("/reports")
		{
			reportGroup.GET("", group.ReportHandler.GetAllReports)

			authGroup := reportGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/own", group.ReportHandler.GetOwnReports)
				authGroup.POST("", group.ReportHandler.CreateReport)
				authGroup.PUT("/:report_id", group.ReportHandler.SaveReport)
				authGroup.DELETE("/:report_id", group.ReportHandler.DeleteReport)
			}

			reportGroup.GET("/:report_id", group.ReportHandler.GetReport)
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("/report/:report_id", group.PostHandler.GetPostsByReport)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authGroup.GET("/form/:report_id", group.PostHandler.GetPostForm)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/post/:post_id", group.CommentHandler.GetComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommentHandler.SaveComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		likeGroup := apiGroup.Group("/likes")
		{
			likeGroup.GET("/:item_type/:item_id", group.LikeHandler.GetLikes)
			likeGroup.GET("/:item_type/:item_id/count", group.LikeHandler.CountLikes)

			authGroup := likeGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:item_type/:item_id", group.LikeHandler.Like)
				authGroup.DELETE("/:item_type/:item_id", group.LikeHandler.Unlike)
			}
		}

		strainGroup := apiGroup.Group("/strains")
		{
			strainGroup.GET("", group.StrainHandler.GetAllStrains)
			strainGroup.GET("/info", group.StrainHandler.GetStrainInfo)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("/list", group.NotificationHandler.GetNotificationList)
			notificationGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/read", group.NotificationHandler.MarkRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllRead)
		}

		timelineGroup := apiGroup.Group("/timeline")
		{
			timelineGroup.GET("/date", group.TimelineHandler.DateFromDay)
			timelineGroup.GET("/day", group.TimelineHandler.DayFromDate)
			timelineGroup.POST("/form", group.TimelineHandler.Form)
		}
	}

	return r
}
