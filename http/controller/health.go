package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (ctrl *Controller) Health(c *gin.Context) {
	ctx := c.Request.Context()
	status := gin.H{
		"postgres": "ok",
		"redis":    "ok",
		"storage":  "ok",
	}
	healthy := true

	if sqlDB, err := ctrl.Infra.Postgres.DB.DB(); err != nil {
		status["postgres"] = err.Error()
		healthy = false
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status["postgres"] = err.Error()
		healthy = false
	}

	if err := ctrl.Infra.Redis.Client.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
		healthy = false
	}

	if _, err := ctrl.Infra.Minio.ServerInfo(ctx); err != nil {
		status["storage"] = err.Error()
		healthy = false
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
