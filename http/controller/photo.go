package controller

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-photo-service/http/controller/dto"
	"github.com/tnqbao/gau-photo-service/infra"
	"github.com/tnqbao/gau-photo-service/service"
	"github.com/tnqbao/gau-photo-service/utils"
)

const photoCacheTTL = 5 * time.Minute

func photoCacheKey(id string) string {
	return "photo:" + id
}

func (ctrl *Controller) ListPhotos(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := ctrl.Query.List(ctx, page)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to list photos on page %d", page)
		utils.JSON500(c, "Failed to list photos")
		return
	}

	viewer := viewerID(c)
	items := make([]dto.PhotoListItem, 0, len(result.Photos))
	for i := range result.Photos {
		photo := &result.Photos[i]
		items = append(items, dto.NewPhotoListItem(photo, viewer, ctrl.Infra.Minio.PublicURL(photo.Filename)))
	}

	utils.JSON200(c, dto.PhotoListResponse{
		Data:        items,
		CurrentPage: result.Page,
		PerPage:     result.PerPage,
		Total:       result.Total,
		LastPage:    result.LastPage,
	})
}

func (ctrl *Controller) GetPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	photoID := c.Param("id")

	var detail dto.PhotoDetail
	cacheErr := ctrl.Infra.Redis.Get(ctx, photoCacheKey(photoID), &detail)
	if cacheErr != nil {
		if !errors.Is(cacheErr, infra.ErrCacheMiss) {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Cache read failed for %s: %v", photoID, cacheErr)
		}

		photo, err := ctrl.Query.Get(ctx, photoID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				utils.JSON404(c, "Photo not found")
				return
			}
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to get photo %s", photoID)
			utils.JSON500(c, "Failed to get photo")
			return
		}

		detail = *dto.NewPhotoDetail(photo, ctrl.Infra.Minio.PublicURL(photo.Filename))
		if err := ctrl.Infra.Redis.Set(ctx, photoCacheKey(photoID), detail, photoCacheTTL); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Cache write failed for %s: %v", photoID, err)
		}
	}

	detail.Personalize(viewerID(c))
	utils.JSON200(c, detail)
}

func (ctrl *Controller) DownloadPhoto(c *gin.Context) {
	ctx := c.Request.Context()
	photoID := c.Param("id")

	photo, err := ctrl.Query.Download(ctx, photoID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.JSON404(c, "Photo not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to resolve photo %s for download", photoID)
		utils.JSON500(c, "Failed to download photo")
		return
	}

	reader, size, err := ctrl.Infra.Minio.Get(ctx, photo.Filename)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to read blob %s", photo.Filename)
		utils.JSON500(c, "Failed to download photo")
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, size, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, photo.Filename),
	})
}

func (ctrl *Controller) CreatePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized: user_id not found")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		utils.JSON422(c, "A photo file is required")
		return
	}

	if fileHeader.Size > ctrl.Config.EnvConfig.Photo.MaxUploadBytes {
		utils.JSON422(c, fmt.Sprintf("File exceeds the %d byte upload limit", ctrl.Config.EnvConfig.Photo.MaxUploadBytes))
		return
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if !ctrl.extensionAllowed(extension) {
		utils.JSON422(c, "Unsupported file type: "+extension)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to open uploaded file")
		utils.JSON500(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	photo, err := ctrl.Ingestor.Ingest(ctx, ownerID, file, fileHeader.Size, extension, contentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			utils.JSON422(c, err.Error())
		case errors.Is(err, service.ErrStorageWrite):
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Blob write failed for upload by %s", ownerID)
			utils.JSON500(c, "Failed to store photo")
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Metadata write failed for upload by %s", ownerID)
			utils.JSON500(c, "Failed to store photo")
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Photo] Created photo %s for user %s", photo.ID, ownerID)
	utils.JSON201(c, dto.NewPhotoListItem(photo, ownerID, ctrl.Infra.Minio.PublicURL(photo.Filename)))
}

func (ctrl *Controller) extensionAllowed(extension string) bool {
	for _, allowed := range ctrl.Config.EnvConfig.Photo.AllowedExtensions {
		if extension == allowed {
			return true
		}
	}
	return false
}
