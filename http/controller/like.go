package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-photo-service/http/controller/dto"
	"github.com/tnqbao/gau-photo-service/service"
	"github.com/tnqbao/gau-photo-service/utils"
)

func (ctrl *Controller) LikePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	photoID, err := ctrl.Likes.Like(ctx, c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Photo not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to like photo %s", c.Param("id"))
		utils.JSON500(c, "Failed to like photo")
		return
	}

	if err := ctrl.Infra.Redis.Delete(ctx, photoCacheKey(photoID)); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Like] Cache invalidation failed for %s: %v", photoID, err)
	}

	utils.JSON200(c, dto.LikeResponse{PhotoID: photoID})
}

func (ctrl *Controller) UnlikePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	photoID, err := ctrl.Likes.Unlike(ctx, c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Photo not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Like] Failed to unlike photo %s", c.Param("id"))
		utils.JSON500(c, "Failed to unlike photo")
		return
	}

	if err := ctrl.Infra.Redis.Delete(ctx, photoCacheKey(photoID)); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Like] Cache invalidation failed for %s: %v", photoID, err)
	}

	utils.JSON200(c, dto.LikeResponse{PhotoID: photoID})
}
