package controller

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type PlanningController struct {
	PlanningService *service.PlanningService
}

func NewPlanningController(planningService *service.PlanningService) *PlanningController {
	return &PlanningController{PlanningService: planningService}
}

type planRequest struct {
	Priority  string  `json:"priority"`
	GoalHours float64 `json:"goalHours"`
}

// @Summary 生成周计划
// @Description 按优先策略(weak/strong/balanced)把周目标小时数分配到(领域, 星期几)
// @Tags 计划
// @Accept json
// @Produce json
// @Param id path int true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/plan [post]
func (c *PlanningController) BuildPlan(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	var req planRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// 空请求体按缺省处理：balanced 策略 + 学习者自身周目标
		req = planRequest{}
	}

	plan, err := c.PlanningService.BuildPlan(id, model.ParsePriority(req.Priority), req.GoalHours, time.Now())
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}
