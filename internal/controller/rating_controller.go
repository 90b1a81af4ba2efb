package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	RatingService *service.RatingService
	UserService   *service.UserService
}

func NewRatingController(ratingService *service.RatingService, userService *service.UserService) *RatingController {
	return &RatingController{
		RatingService: ratingService,
		UserService:   userService,
	}
}

// @Summary Get my rating with derived progress numbers
// @Tags ratings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/rating [get]
func (c *RatingController) GetMyRating(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	view, err := c.RatingService.GetUserRating(user.ID, user.DepartmentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary Get the leaderboard
// @Tags ratings
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "number of entries" default(10)
// @Success 200 {object} util.Response
// @Router /api/rating/leaderboard [get]
func (c *RatingController) GetLeaderboard(ctx *gin.Context) {
	limit := 10
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	leaderboard, err := c.RatingService.Leaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, leaderboard)
}
