package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/api/response"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
)

type InsightController struct {
	service *service.InsightService
}

// NewInsightController 构造函数
func NewInsightController(s *service.InsightService) *InsightController {
	return &InsightController{service: s}
}

// Generate 生成消费结论
// 注意：这个接口永远 200。上游模型挂了也返回固定的兜底结论，不给用户看错误页
// @Summary AI 消费结论
// @Tags Insight
// @Produce json
// @Security BearerAuth
// @Router /insights [post]
func (ctrl *InsightController) Generate(c *gin.Context) {
	userID := c.GetString("userID")

	insights := ctrl.service.GenerateInsights(c.Request.Context(), userID)
	response.Success(c, insights)
}

type AnswerRequest struct {
	Question string `json:"question" binding:"required"`
}

type AnswerResponse struct {
	Answer string `json:"answer"`
}

// Answer 基于消费数据的自由问答
// @Summary AI 自由问答
// @Tags Insight
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnswerRequest true "问题"
// @Router /insights/answer [post]
func (ctrl *InsightController) Answer(c *gin.Context) {
	userID := c.GetString("userID")

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "缺少问题内容")
		return
	}

	answer := ctrl.service.AnswerQuestion(c.Request.Context(), userID, req.Question)
	response.Success(c, AnswerResponse{Answer: answer})
}

type SuggestCategoryRequest struct {
	Description string `json:"description"`
}

// SuggestCategoryResponse 分类永远非空，Error 只是参考信息
type SuggestCategoryResponse struct {
	Category string `json:"category"`
	Error    string `json:"error,omitempty"`
}

// SuggestCategory 根据描述建议分类
// @Summary AI 分类建议
// @Tags Insight
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SuggestCategoryRequest true "消费描述"
// @Router /categories/suggest [post]
func (ctrl *InsightController) SuggestCategory(c *gin.Context) {
	var req SuggestCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	category, note := ctrl.service.SuggestCategory(c.Request.Context(), req.Description)
	response.Success(c, SuggestCategoryResponse{Category: category, Error: note})
}
