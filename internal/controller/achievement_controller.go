package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

// @Summary Get my achievement progress
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/achievements [get]
func (c *AchievementController) GetMyAchievements(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	achievements, err := c.AchievementService.GetUserAchievements(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievements)
}

// @Summary List all achievement definitions
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/achievements [get]
func (c *AchievementController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.AchievementService.ListAchievements()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// @Summary Create an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param achievement body service.AchievementRequest true "achievement definition"
// @Success 201 {object} util.Response
// @Router /api/admin/achievements [post]
func (c *AchievementController) CreateAchievement(ctx *gin.Context) {
	var req service.AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	achievement, err := c.AchievementService.CreateAchievement(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, achievement)
}

// @Summary Update an achievement
// @Tags achievements
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param achievementId path int true "achievement ID"
// @Param achievement body service.AchievementRequest true "achievement fields"
// @Success 200 {object} util.Response
// @Router /api/admin/achievements/{achievementId} [put]
func (c *AchievementController) UpdateAchievement(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("achievementId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid achievement ID")
		return
	}

	var req service.AchievementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	achievement, err := c.AchievementService.UpdateAchievement(uint(id), req)
	if err != nil {
		if err == util.ErrAchievementNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, achievement)
}

// @Summary Delete an achievement
// @Tags achievements
// @Produce json
// @Security ApiKeyAuth
// @Param achievementId path int true "achievement ID"
// @Success 200 {object} util.Response
// @Router /api/admin/achievements/{achievementId} [delete]
func (c *AchievementController) DeleteAchievement(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("achievementId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid achievement ID")
		return
	}

	if err := c.AchievementService.DeleteAchievement(uint(id)); err != nil {
		if err == util.ErrAchievementNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Achievement deleted"})
}
