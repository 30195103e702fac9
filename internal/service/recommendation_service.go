package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/pkg/monitoring"
	"math"
	"sort"
)

// thetaBound 能力估计的截断界
const thetaBound = 2.5

type RecommendationService struct {
	CohortRepo     *repository.CohortRepository
	TrajectoryRepo *repository.TrajectoryRepository
	Engine         config.EngineConfig
}

func NewRecommendationService(
	cohortRepo *repository.CohortRepository,
	trajectoryRepo *repository.TrajectoryRepository,
	engine config.EngineConfig,
) *RecommendationService {
	return &RecommendationService{
		CohortRepo:     cohortRepo,
		TrajectoryRepo: trajectoryRepo,
		Engine:         engine,
	}
}

// Recommend 对每个领域估计能力 theta_d，按 |b-theta_d| 升序取前3条。
// 有历史记录的领域用微分均值折算，否则用全局能力与亲和度的加权组合。
// 结果按领域枚举顺序再按gap升序排列；题库中无题的领域产出0条
func (s *RecommendationService) Recommend(learnerID int) ([]model.Recommendation, error) {
	learner, err := s.CohortRepo.GetLearner(learnerID)
	if err != nil {
		return nil, err
	}

	history, err := s.TrajectoryRepo.ScoreHistoryByDomain(learnerID)
	if err != nil {
		return nil, err
	}

	var recs []model.Recommendation
	for _, d := range s.Engine.Domains {
		theta := s.estimateTheta(learner, d, history)

		items, err := s.CohortRepo.ListItemsByDomain(d)
		if err != nil {
			return nil, err
		}

		// 稳定排序保证 gap 并列时保持题目原始顺序
		sort.SliceStable(items, func(i, j int) bool {
			return math.Abs(items[i].Difficulty-theta) < math.Abs(items[j].Difficulty-theta)
		})

		top := 3
		if len(items) < top {
			top = len(items)
		}
		for _, item := range items[:top] {
			recs = append(recs, model.Recommendation{
				Domain:          d,
				ItemID:          item.ID,
				Discrimination:  item.Discrimination,
				Difficulty:      item.Difficulty,
				ThetaD:          theta,
				Gap:             math.Abs(item.Difficulty - theta),
				PSuccess:        PSuccess(item.Discrimination, item.Difficulty, theta),
				ExpectedMinutes: item.ExpectedMinutes,
			})
		}
	}

	monitoring.EngineOpCounter.WithLabelValues("recommend").Inc()
	return recs, nil
}

// ThetaFor 单个领域的能力估计（评估生成与解释提示共用）
func (s *RecommendationService) ThetaFor(learnerID int, domain string) (float64, error) {
	learner, err := s.CohortRepo.GetLearner(learnerID)
	if err != nil {
		return 0, err
	}
	history, err := s.TrajectoryRepo.ScoreHistoryByDomain(learnerID)
	if err != nil {
		return 0, err
	}
	return s.estimateTheta(learner, domain, history), nil
}

func (s *RecommendationService) estimateTheta(learner *model.Learner, domain string, history map[string]float64) float64 {
	if mean, ok := history[domain]; ok {
		return clamp((mean-0.5)/0.2, -thetaBound, thetaBound)
	}
	return clamp(0.7*learner.Ability+0.3*learner.Affinity(domain), -thetaBound, thetaBound)
}
