package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LevelController struct {
	LevelService *service.LevelService
}

func NewLevelController(levelService *service.LevelService) *LevelController {
	return &LevelController{LevelService: levelService}
}

// @Summary Get the level chain
// @Tags levels
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/levels [get]
func (c *LevelController) GetChain(ctx *gin.Context) {
	levels, err := c.LevelService.GetChain()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// @Summary Append a level to the chain
// @Tags levels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param level body service.LevelRequest true "level definition"
// @Success 201 {object} util.Response
// @Router /api/admin/levels [post]
func (c *LevelController) AppendLevel(ctx *gin.Context) {
	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.LevelService.AppendLevel(req)
	if err != nil {
		if err == util.ErrInvalidLevelChain {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, level)
}

// @Summary Delete the last level of the chain
// @Tags levels
// @Produce json
// @Security ApiKeyAuth
// @Param levelId path int true "level ID"
// @Success 200 {object} util.Response
// @Router /api/admin/levels/{levelId} [delete]
func (c *LevelController) DeleteLevel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("levelId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid level ID")
		return
	}

	if err := c.LevelService.DeleteLevel(uint(id)); err != nil {
		switch err {
		case util.ErrLevelNotFound:
			util.NotFound(ctx)
		case util.ErrInvalidLevelChain:
			util.BadRequest(ctx, "only the last level of the chain can be deleted")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Update a level
// @Tags levels
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param levelId path int true "level ID"
// @Param level body service.LevelRequest true "level fields"
// @Success 200 {object} util.Response
// @Router /api/admin/levels/{levelId} [put]
func (c *LevelController) UpdateLevel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("levelId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid level ID")
		return
	}

	var req service.LevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	level, err := c.LevelService.UpdateLevel(uint(id), req)
	if err != nil {
		switch err {
		case util.ErrLevelNotFound:
			util.NotFound(ctx)
		case util.ErrInvalidLevelChain:
			util.BadRequest(ctx, "threshold must stay between the neighboring levels")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, level)
}
