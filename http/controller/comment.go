package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/entity"
	"github.com/tnqbao/gau-photo-service/http/controller/dto"
	"github.com/tnqbao/gau-photo-service/service"
	"github.com/tnqbao/gau-photo-service/utils"
)

func (ctrl *Controller) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	authorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	photoID := c.Param("id")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON422(c, "Comment content is required")
		return
	}

	if _, err := ctrl.Repository.PhotoRepo.FindByID(ctx, photoID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Photo not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to look up photo %s", photoID)
		utils.JSON500(c, "Failed to add comment")
		return
	}

	comment := &entity.Comment{
		ID:       uuid.New(),
		PhotoID:  photoID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := ctrl.Repository.CommentRepo.Create(ctx, comment); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to create comment on photo %s", photoID)
		utils.JSON500(c, "Failed to add comment")
		return
	}

	// Reload so the response carries the author relation.
	created, err := ctrl.Repository.CommentRepo.FindByIDWithAuthor(ctx, comment.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to reload comment %s", comment.ID)
		utils.JSON500(c, "Failed to add comment")
		return
	}

	if err := ctrl.Infra.Redis.Delete(ctx, photoCacheKey(photoID)); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Comment] Cache invalidation failed for %s: %v", photoID, err)
	}

	utils.JSON201(c, dto.NewCommentItem(created))
}
