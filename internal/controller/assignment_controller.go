package controller

import (
	"strconv"

	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// @Summary List quizzes assigned to me
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes/assigned [get]
func (c *AssignmentController) GetMyAssignments(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	assignments, err := c.AssignmentService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, assignments)
}

// @Summary Assign quizzes to users
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body service.BulkAssignRequest true "user and quiz IDs"
// @Success 201 {object} util.Response
// @Router /api/admin/assignments [post]
func (c *AssignmentController) BulkAssign(ctx *gin.Context) {
	var req service.BulkAssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AssignmentService.BulkAssign(req); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"message": "Quizzes assigned"})
}

// @Summary Revoke one assignment
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user ID"
// @Param quizId path int true "quiz ID"
// @Success 200 {object} util.Response
// @Router /api/admin/assignments/{userId}/{quizId} [delete]
func (c *AssignmentController) Revoke(ctx *gin.Context) {
	userID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}
	quizID, err := strconv.Atoi(ctx.Param("quizId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid quiz ID")
		return
	}

	if err := c.AssignmentService.Revoke(uint(userID), uint(quizID)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Assignment revoked"})
}
