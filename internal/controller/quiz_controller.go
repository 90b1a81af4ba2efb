package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
	UserService *service.UserService
}

func NewQuizController(quizService *service.QuizService, userService *service.UserService) *QuizController {
	return &QuizController{
		QuizService: quizService,
		UserService: userService,
	}
}

func (c *QuizController) departmentOf(ctx *gin.Context) (*uint, uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, 0, false
	}
	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return nil, 0, false
	}
	return user.DepartmentID, user.ID, true
}

// @Summary List quizzes of my department
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	departmentID, userID, ok := c.departmentOf(ctx)
	if !ok {
		return
	}

	quizzes, err := c.QuizService.ListForUser(userID, departmentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// @Summary List quizzes I started but did not finish
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes/not-completed [get]
func (c *QuizController) ListNotCompleted(ctx *gin.Context) {
	departmentID, userID, ok := c.departmentOf(ctx)
	if !ok {
		return
	}

	quizzes, err := c.QuizService.ListNotCompleted(userID, departmentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// @Summary Get one quiz with its questions
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{quizId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	quiz, err := c.QuizService.GetQuiz(uint(quizID))
	if err != nil {
		if err == util.ErrQuizNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary List study materials of a quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{quizId}/volumes [get]
func (c *QuizController) GetVolumes(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	volumes, err := c.QuizService.GetVolumes(uint(quizID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, volumes)
}

// @Summary Attach a study material to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "quiz ID"
// @Param volume body service.VolumeRequest true "study material"
// @Success 201 {object} util.Response
// @Router /api/admin/quizzes/{quizId}/volumes [post]
func (c *QuizController) CreateVolume(ctx *gin.Context) {
	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	var req service.VolumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	volume, err := c.QuizService.CreateVolume(uint(quizID), req)
	if err != nil {
		if err == util.ErrQuizNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, volume)
}

// @Summary Delete a study material
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param volumeId path int true "volume ID"
// @Success 200 {object} util.Response
// @Router /api/admin/volumes/{volumeId} [delete]
func (c *QuizController) DeleteVolume(ctx *gin.Context) {
	volumeID, err := strconv.Atoi(ctx.Param("volumeId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid volume ID")
		return
	}

	if err := c.QuizService.DeleteVolume(uint(volumeID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": volumeID})
}
