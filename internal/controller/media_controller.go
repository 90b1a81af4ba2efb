package controller

import (
	"strings"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 10 MiB is enough for quiz illustrations and avatars.
const maxImageSize = 10 << 20

type MediaController struct {
	StorageService *service.StorageService
}

func NewMediaController(storageService *service.StorageService) *MediaController {
	return &MediaController{StorageService: storageService}
}

// @Summary Upload an image
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "image file"
// @Param folder formData string false "target folder (quizzes, questions, answers, avatars, levels, achievements)"
// @Success 201 {object} util.Response
// @Router /api/admin/media/images [post]
func (c *MediaController) UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if header.Size > maxImageSize {
		util.BadRequest(ctx, "file exceeds the 10 MiB limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		util.BadRequest(ctx, "only image uploads are accepted")
		return
	}

	folder := ctx.DefaultPostForm("folder", "quizzes")
	switch folder {
	case "quizzes", "questions", "answers", "avatars", "levels", "achievements":
	default:
		util.BadRequest(ctx, "unknown folder")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), folder, header.Filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"url": url})
}
