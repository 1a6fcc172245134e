package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tnqbao/gau-photo-service/config"
	"github.com/tnqbao/gau-photo-service/infra"
	"github.com/tnqbao/gau-photo-service/repository"
	"github.com/tnqbao/gau-photo-service/service"
	"github.com/tnqbao/gau-photo-service/utils"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository

	Ingestor *service.PhotoIngestor
	Likes    *service.LikeService
	Query    *service.PhotoQueryService
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
		Ingestor: service.NewPhotoIngestor(
			infra.Minio,
			repo.PhotoRepo,
			infra.Produce.BlobService,
			infra.Logger,
		),
		Likes: service.NewLikeService(repo.PhotoRepo, repo.LikeRepo),
		Query: service.NewPhotoQueryService(repo.PhotoRepo, infra.Minio, cfg.EnvConfig.Photo.PerPage),
	}
}

// viewerID returns the authenticated user or uuid.Nil for anonymous reads.
func viewerID(c *gin.Context) uuid.UUID {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		return uuid.Nil
	}
	return userID
}
