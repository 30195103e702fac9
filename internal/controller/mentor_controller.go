package controller

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MentorController struct {
	MentorService      *service.MentorService
	ExplanationService *service.ExplanationService
}

func NewMentorController(
	mentorService *service.MentorService,
	explanationService *service.ExplanationService,
) *MentorController {
	return &MentorController{
		MentorService:      mentorService,
		ExplanationService: explanationService,
	}
}

// @Summary 被辅导学生列表
// @Tags 导师
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/mentees [get]
func (c *MentorController) ListMentees(ctx *gin.Context) {
	util.Success(ctx, c.MentorService.ListMentees())
}

// @Summary 被辅导学生详情
// @Tags 导师
// @Produce json
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/mentees/{id} [get]
func (c *MentorController) GetMentee(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	mentee, err := c.MentorService.GetMentee(id)
	if err != nil {
		if errors.Is(err, util.ErrMenteeNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, mentee)
}

// @Summary 群体均值
// @Description 被辅导学生的平均自主性与平均进度（百分比）
// @Tags 导师
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/mentees/averages [get]
func (c *MentorController) GetAverages(ctx *gin.Context) {
	util.Success(ctx, c.MentorService.Averages())
}

// @Summary 资源建议
// @Description 按自主性百分比返回规则化学习资源建议；缺省按40处理
// @Tags 导师
// @Produce json
// @Param autonomy query number false "自主性百分比" default(40)
// @Success 200 {object} util.Response
// @Router /api/mentor/resources [get]
func (c *MentorController) GetResources(ctx *gin.Context) {
	var autonomyPct *float64
	if raw := ctx.Query("autonomy"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			autonomyPct = &v
		}
	}

	level, resources := c.MentorService.SuggestResources(autonomyPct)
	util.Success(ctx, gin.H{
		"level":     level,
		"resources": resources,
	})
}

type mentorChatRequest struct {
	MenteeID int                 `json:"menteeId"`
	Autonomy *float64            `json:"autonomy"`
	Message  string              `json:"message" binding:"required"`
	History  []model.ChatMessage `json:"history"`
}

// @Summary 导师对话
// @Description 按自主性区间构造系统指令并调用聊天补全服务；失败时降级为固定文本
// @Tags 导师
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/mentor/chat [post]
func (c *MentorController) Chat(ctx *gin.Context) {
	var req mentorChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "message is required")
		return
	}

	// 学生不存在时按"未识别模块"继续，不中断对话
	mentee, _ := c.MentorService.GetMentee(req.MenteeID)

	autonomyPct := float64(40)
	if req.Autonomy != nil {
		autonomyPct = *req.Autonomy
	} else if mentee != nil {
		autonomyPct = mentee.Autonomy * 100
	}

	_, resources := c.MentorService.SuggestResources(&autonomyPct)

	result := c.ExplanationService.MentorChat(ctx.Request.Context(), mentee, autonomyPct, resources, req.Message, req.History)
	util.Success(ctx, result)
}

// @Summary 自主性事件日志
// @Description 最近的模拟自主性更新事件，最新在前
// @Tags 导师
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/mentor/autonomy-log [get]
func (c *MentorController) GetAutonomyLog(ctx *gin.Context) {
	util.Success(ctx, c.MentorService.AutonomyLog())
}

// @Summary 自主性历史
// @Description 最近 window 条事件（时间先后序）。按学生过滤为已知缺陷，通常回退为完整日志
// @Tags 导师
// @Produce json
// @Param window query int false "窗口大小" default(10)
// @Param mentee_id query int false "学生ID"
// @Success 200 {object} util.Response
// @Router /api/mentor/autonomy-history [get]
func (c *MentorController) GetAutonomyHistory(ctx *gin.Context) {
	window := util.ParseIntOr(ctx.DefaultQuery("window", "10"), 10)
	menteeID := util.ParseIntOr(ctx.Query("mentee_id"), 0)

	util.Success(ctx, c.MentorService.AutonomyHistory(window, menteeID))
}
