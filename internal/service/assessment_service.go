package service

import (
	"adaptive_learning_backend/internal/model"
	"fmt"
)

type AssessmentService struct {
	RecommendationService *RecommendationService
}

func NewAssessmentService(recommendationService *RecommendationService) *AssessmentService {
	return &AssessmentService{RecommendationService: recommendationService}
}

// Generate 从学习者在该领域的推荐条目生成最多 n 道练习题。
// n 越界时收敛到 [1,10]
func (s *AssessmentService) Generate(learnerID int, domain string, n int) ([]model.AssessmentQuestion, error) {
	if n < 1 {
		n = 3
	}
	if n > 10 {
		n = 10
	}

	recs, err := s.RecommendationService.Recommend(learnerID)
	if err != nil {
		return nil, err
	}

	questions := make([]model.AssessmentQuestion, 0, n)
	for _, rec := range recs {
		if rec.Domain != domain {
			continue
		}
		if len(questions) == n {
			break
		}
		questions = append(questions, model.AssessmentQuestion{
			Index:  len(questions),
			ItemID: rec.ItemID,
			Domain: rec.Domain,
			Prompt: fmt.Sprintf("Q%d: Practice item %d (%s) – expected difficulty b=%.2f",
				len(questions)+1, rec.ItemID, rec.Domain, rec.Difficulty),
			Difficulty: rec.Difficulty,
		})
	}

	return questions, nil
}

// Score 对提交的作答评分。nil 表示未作答，跳过；全部未作答时
// Answered 为 0，由调用方提示补答，不视为错误
func (s *AssessmentService) Score(answers []*int) model.AssessmentResult {
	result := model.AssessmentResult{Total: len(answers)}

	var correct int
	for _, a := range answers {
		if a == nil {
			continue
		}
		result.Answered++
		if *a != 0 {
			correct++
		}
	}

	if result.Answered > 0 {
		result.Accuracy = float64(correct) / float64(result.Answered)
	}
	return result
}
