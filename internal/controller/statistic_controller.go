package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticController struct {
	StatisticService *service.StatisticService
}

func NewStatisticController(statisticService *service.StatisticService) *StatisticController {
	return &StatisticController{StatisticService: statisticService}
}

// @Summary Submit an answer to one quiz question
// @Description Grades the answer, updates the attempt statistic and, on
// @Description completion, the user's rating and achievements.
// @Tags statistics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Param answer body service.AnswerSubmissionRequest true "submitted answer"
// @Success 201 {object} util.Response
// @Router /api/quizzes/{quizId}/answers [post]
func (c *StatisticController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var req service.AnswerSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stat, err := c.StatisticService.RecordAnswer(claims.UserID, uint(quizID), req)
	if err != nil {
		switch err {
		case util.ErrQuizNotFound, util.ErrQuestionNotFound:
			util.NotFound(ctx)
		case util.ErrMismatchedQuiz:
			util.BadRequest(ctx, err.Error())
		case util.ErrUnknownQuestionType, util.ErrMissingCanonicalAnswer:
			util.UnprocessableEntity(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, stat)
}

// @Summary Get my attempt statistic for a quiz, with per-question review
// @Tags statistics
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{quizId}/statistic [get]
func (c *StatisticController) GetStatistic(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	view, err := c.StatisticService.GetStatistic(claims.UserID, uint(quizID))
	if err != nil {
		if err == util.ErrStatisticNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
