package controller

import (
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
	ExplanationService    *service.ExplanationService
}

func NewRecommendationController(
	recommendationService *service.RecommendationService,
	explanationService *service.ExplanationService,
) *RecommendationController {
	return &RecommendationController{
		RecommendationService: recommendationService,
		ExplanationService:    explanationService,
	}
}

// @Summary 获取推荐
// @Description 每个领域按 |难度-能力估计| 最近匹配返回最多3条推荐
// @Tags 推荐
// @Produce json
// @Param id path int true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	recs, err := c.RecommendationService.Recommend(id)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, recs)
}

type explainRequest struct {
	Domain string `json:"domain" binding:"required"`
}

// @Summary 推荐解释
// @Description 调用聊天补全服务解释推荐理由；无凭证或调用失败时返回固定降级文本
// @Tags 推荐
// @Accept json
// @Produce json
// @Param id path int true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/recommendations/explain [post]
func (c *RecommendationController) ExplainRecommendations(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	var req explainRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "domain is required")
		return
	}

	recs, err := c.RecommendationService.Recommend(id)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	result := c.ExplanationService.ExplainRecommendations(ctx.Request.Context(), id, req.Domain, recs)
	util.Success(ctx, gin.H{
		"recommendations": recs,
		"explanation":     result,
	})
}
