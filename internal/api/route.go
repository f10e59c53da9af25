package api

import (
	"ShareSphere/internal/api/middleware"
	"ShareSphere/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
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
				authGroup.GET("/info", group.UserHandler.GetMe)
			}
		}

		sphereGroup := apiGroup.Group("/spheres")
		{
			sphereGroup.GET("", group.SphereHandler.ListSpheres)
			sphereGroup.GET("/:sphere", group.SphereHandler.GetSphere)

			authGroup := sphereGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.SphereHandler.CreateSphere)
			}
		}

		satelliteGroup := apiGroup.Group("/spheres/id/:sphere_id/satellites")
		{
			satelliteGroup.GET("", group.SphereHandler.ListSatellites)

			authGroup := satelliteGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.SphereHandler.CreateSatellite)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/list/:sphere", group.PostHandler.ListPosts)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.GetCommentTree)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.POST("", group.CommentHandler.CreateComment)
			commentGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		voteGroup := apiGroup.Group("/votes")
		voteGroup.Use(middleware.AuthMiddleware())
		{
			voteGroup.POST("", group.VoteHandler.Vote)
		}

		modGroup := apiGroup.Group("/moderation")
		modGroup.Use(middleware.AuthMiddleware())
		{
			modGroup.POST("/bans", group.ModerationHandler.BanUser)
			modGroup.GET("/bans/:sphere_id", group.ModerationHandler.ListBans)
			modGroup.DELETE("/bans/:sphere_id/:ban_id", group.ModerationHandler.UnbanUser)
			modGroup.POST("/posts/:post_id/remove", group.ModerationHandler.ModeratePost)
			modGroup.POST("/posts/:post_id/pin", group.ModerationHandler.PinPost)
			modGroup.POST("/comments/:comment_id/remove", group.ModerationHandler.ModerateComment)
			modGroup.POST("/comments/:comment_id/pin", group.ModerationHandler.PinComment)
		}
	}

	return r
}
