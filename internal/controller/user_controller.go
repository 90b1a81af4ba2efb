package controller

import (
	"strconv"

	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/internal/service"
	"quiz_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary Get the current user's profile
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary Update the current user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body service.ProfileUpdateRequest true "profile fields"
// @Success 200 {object} util.Response
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary List all users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary List departments
// @Tags departments
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/departments [get]
func (c *UserController) ListDepartments(ctx *gin.Context) {
	departments, err := c.UserService.ListDepartments()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, departments)
}

type departmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// @Summary Create a department
// @Tags departments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param department body departmentRequest true "department"
// @Success 201 {object} util.Response
// @Router /api/admin/departments [post]
func (c *UserController) CreateDepartment(ctx *gin.Context) {
	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	department := &model.Department{Name: req.Name, Description: req.Description}
	if err := c.UserService.CreateDepartment(department); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, department)
}

// @Summary Update a department
// @Tags departments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param departmentId path int true "department ID"
// @Param department body departmentRequest true "department fields"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{departmentId} [put]
func (c *UserController) UpdateDepartment(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("departmentId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid department ID")
		return
	}

	var req departmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	department, err := c.UserService.UpdateDepartment(uint(id), req.Name, req.Description)
	if err != nil {
		if err == util.ErrDepartmentNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, department)
}

// @Summary Delete a department
// @Tags departments
// @Produce json
// @Security ApiKeyAuth
// @Param departmentId path int true "department ID"
// @Success 200 {object} util.Response
// @Router /api/admin/departments/{departmentId} [delete]
func (c *UserController) DeleteDepartment(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("departmentId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid department ID")
		return
	}

	if err := c.UserService.DeleteDepartment(uint(id)); err != nil {
		if err == util.ErrDepartmentNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
