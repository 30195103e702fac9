package controller

import (
	"adaptive_learning_backend/internal/service"
	"adaptive_learning_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type generateAssessmentRequest struct {
	Domain    string `json:"domain" binding:"required"`
	Questions int    `json:"questions"`
}

// @Summary 生成评估
// @Description 从学习者在该领域的推荐条目生成练习题
// @Tags 评估
// @Accept json
// @Produce json
// @Param id path int true "学习者ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learners/{id}/assessments [post]
func (c *AssessmentController) Generate(ctx *gin.Context) {
	id := util.MustParseInt(ctx.Param("id"))

	var req generateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "domain is required")
		return
	}

	questions, err := c.AssessmentService.Generate(id, req.Domain, req.Questions)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

type scoreRequest struct {
	Answers []*int `json:"answers"`
}

// @Summary 评估打分
// @Description 对提交的作答计算正确率；未作答的题目跳过
// @Tags 评估
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/assessments/score [post]
func (c *AssessmentController) Score(ctx *gin.Context) {
	var req scoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "answers payload is invalid")
		return
	}

	result := c.AssessmentService.Score(req.Answers)
	util.Success(ctx, result)
}
