package controller

import (
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type CohortController struct {
	CohortService *service.CohortService
}

func NewCohortController(cohortService *service.CohortService) *CohortController {
	return &CohortController{CohortService: cohortService}
}

// @Summary 学习者列表
// @Description 获取模拟学习者群体
// @Tags 群体
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/learners [get]
func (c *CohortController) ListLearners(ctx *gin.Context) {
	learners, err := c.CohortService.CohortRepo.ListLearners()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learners)
}

// @Summary 学习者详情
// @Tags 群体
// @Produce json
// @Param id path int true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id} [get]
func (c *CohortController) GetLearner(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	learner, err := c.CohortService.CohortRepo.GetLearner(id)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, learner)
}

// @Summary 题库列表
// @Tags 群体
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/items [get]
func (c *CohortController) ListItems(ctx *gin.Context) {
	items, err := c.CohortService.CohortRepo.ListItems()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
