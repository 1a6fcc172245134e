package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-photo-service/http/controller"
)

type Middlewares struct {
	CORSMiddleware         gin.HandlerFunc
	AuthMiddleware         gin.HandlerFunc
	OptionalAuthMiddleware gin.HandlerFunc
}

func NewMiddlewares(ctrl *controller.Controller) (*Middlewares, error) {
	cors := CORSMiddleware(ctrl.Config.EnvConfig)
	auth := AuthMiddleware(ctrl.Config.EnvConfig)
	optionalAuth := OptionalAuthMiddleware(ctrl.Config.EnvConfig)

	return &Middlewares{
		CORSMiddleware:         cors,
		AuthMiddleware:         auth,
		OptionalAuthMiddleware: optionalAuth,
	}, nil
}
