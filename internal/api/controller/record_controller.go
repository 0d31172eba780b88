package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/api/response"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
)

type RecordController struct {
	service *service.RecordService
}

// NewRecordController 构造函数
func NewRecordController(s *service.RecordService) *RecordController {
	return &RecordController{service: s}
}

// CreateRecordRequest 新增记录的 JSON 参数
// amount 用指针区分"没传"和"传了 0"
type CreateRecordRequest struct {
	Description string   `json:"description" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
}

// Create 新增消费记录
// @Summary 新增消费记录
// @Tags Record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRecordRequest true "记录内容"
// @Router /records [post]
func (ctrl *RecordController) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "缺少描述、金额、分类或日期")
		return
	}

	record, err := ctrl.service.AddRecord(c.Request.Context(), userID, service.RecordInput{
		Description: req.Description,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		// 日期解析失败是用户输入问题，报 400；其余按数据库错误处理
		if errors.Is(err, model.ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "日期格式无效")
			return
		}
		slog.Error("新增记录失败", "uid", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	response.Success(c, record)
}

// List 首页记录列表
// @Summary 最近的消费记录
// @Tags Record
// @Produce json
// @Security BearerAuth
// @Router /records [get]
func (ctrl *RecordController) List(c *gin.Context) {
	userID := c.GetString("userID")

	records, err := ctrl.service.ListRecords(c.Request.Context(), userID)
	if err != nil {
		slog.Error("获取记录列表失败", "uid", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	response.Success(c, records)
}

// Chart 图表数据
// @Summary 按天聚合的图表序列
// @Tags Record
// @Produce json
// @Security BearerAuth
// @Router /records/chart [get]
func (ctrl *RecordController) Chart(c *gin.Context) {
	userID := c.GetString("userID")

	days, err := ctrl.service.ChartData(c.Request.Context(), userID)
	if err != nil {
		slog.Error("获取图表数据失败", "uid", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	response.Success(c, days)
}

type DeleteRecordRequest struct {
	ID string `json:"id" binding:"required"`
}

// Delete 删除消费记录
// @Summary 删除消费记录，仅限本人
// @Tags Record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteRecordRequest true "删除参数"
// @Router /records/delete [post]
func (ctrl *RecordController) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	var req DeleteRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数错误: "+err.Error())
		return
	}

	if err := ctrl.service.DeleteRecord(c.Request.Context(), userID, req.ID); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("删除记录失败", "uid", userID, "id", req.ID, "error", err)
		response.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	response.Success(c, nil)
}

// Stats 消费总览
// @Summary 总支出与记录天数
// @Tags Record
// @Produce json
// @Security BearerAuth
// @Router /records/stats [get]
func (ctrl *RecordController) Stats(c *gin.Context) {
	userID := c.GetString("userID")

	stats, err := ctrl.service.Stats(c.Request.Context(), userID)
	if err != nil {
		slog.Error("获取统计失败", "uid", userID, "error", err)
		response.Error(c, http.StatusInternalServerError, "数据库错误")
		return
	}

	response.Success(c, stats)
}
