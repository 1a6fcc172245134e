package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-photo-service/http/controller"
	middlewares "github.com/tnqbao/gau-photo-service/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)
	r.GET("/health", ctrl.Health)

	apiRoutes := r.Group("/api/v1")
	{
		authRoutes := apiRoutes.Group("/auth")
		{
			authRoutes.POST("/register", ctrl.Register)
			authRoutes.POST("/login", ctrl.Login)
		}

		photoRoutes := apiRoutes.Group("/photos")
		{
			// Anonymous reads; optional auth fills liked_by_user
			photoRoutes.GET("/", middles.OptionalAuthMiddleware, ctrl.ListPhotos)
			photoRoutes.GET("/:id", middles.OptionalAuthMiddleware, ctrl.GetPhoto)
			photoRoutes.GET("/:id/download", ctrl.DownloadPhoto)

			photoRoutes.POST("/", middles.AuthMiddleware, ctrl.CreatePhoto)
			photoRoutes.POST("/:id/comments", middles.AuthMiddleware, ctrl.AddComment)
			photoRoutes.PUT("/:id/like", middles.AuthMiddleware, ctrl.LikePhoto)
			photoRoutes.DELETE("/:id/like", middles.AuthMiddleware, ctrl.UnlikePhoto)
		}
	}

	return r
}
