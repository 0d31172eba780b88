package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/api/response"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Register 用户注册
// @Summary 用户注册
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册参数"
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Register params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, "参数校验失败: "+err.Error())
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		slog.Error("Register failed", "email", req.Email, "err", err)
		response.Error(c, http.StatusConflict, "注册失败，用户名或邮箱可能已被占用")
		return
	}

	slog.Info("User registered", "email", req.Email)
	response.Success(c, nil)
}

// Login 用户登录
// @Summary 用户登录
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	token, userID, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email, "err", err)
		// 为了防止暴力破解，提示信息模糊化
		response.Error(c, http.StatusUnauthorized, "登录失败: 账号或密码错误")
		return
	}

	slog.Info("User logged in", "userID", userID)
	response.Success(c, LoginResponse{
		Token:  token,
		UserID: userID,
	})
}
