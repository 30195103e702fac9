package controller

import (
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 学习总览
// @Description 获取群体级KPI：窗口期总分钟数、平均微分、平均周目标
// @Tags 分析
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/overview [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	overview, err := c.AnalyticsService.GetOverview(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 学习轨迹
// @Description 某学习者在某领域的逐日分钟数与微分序列
// @Tags 分析
// @Produce json
// @Param id path int true "学习者ID"
// @Param domain query string true "领域"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/trajectory [get]
func (c *AnalyticsController) GetTrajectory(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))
	domain := ctx.Query("domain")

	series, err := c.AnalyticsService.TrajectorySeries(id, domain)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, series)
}

// @Summary 近期进展
// @Description 回看窗口内按(学习者, 领域)聚合的分钟总和与微分均值
// @Tags 分析
// @Produce json
// @Param days query int false "回看天数" default(7)
// @Success 200 {object} util.Response
// @Router /api/progress/recent [get]
func (c *AnalyticsController) GetRecentProgress(ctx *gin.Context) {
	days := util.ParseIntOr(ctx.DefaultQuery("days", "7"), 7)

	aggregates, err := c.AnalyticsService.RecentProgress(time.Now(), days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, aggregates)
}
