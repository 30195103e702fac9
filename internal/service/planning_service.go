package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/monitoring"
	"time"
)

// dayShape 工作日权重略高于周末，乘以投入度因子后按领域归一化
var dayShape = []float64{1.1, 1.1, 1.1, 1.0, 1.0, 0.8, 0.9}

type PlanningService struct {
	CohortRepo     *repository.CohortRepository
	TrajectoryRepo *repository.TrajectoryRepository
	Engine         config.EngineConfig
}

func NewPlanningService(
	cohortRepo *repository.CohortRepository,
	trajectoryRepo *repository.TrajectoryRepository,
	engine config.EngineConfig,
) *PlanningService {
	return &PlanningService{
		CohortRepo:     cohortRepo,
		TrajectoryRepo: trajectoryRepo,
		Engine:         engine,
	}
}

// BuildPlan 按优先策略把周目标小时数分配到(领域, 星期几)。
// weak 侧重薄弱领域，strong 巩固强项，balanced 在近期活跃领域间均分；
// 完全无近期活动时在全部领域间均分。所有单元格之和等于目标（浮点误差内）
func (s *PlanningService) BuildPlan(learnerID int, priority model.PriorityPolicy, goalHours float64, asOf time.Time) (*model.WeeklyPlan, error) {
	if len(s.Engine.Domains) == 0 {
		return nil, util.ErrEmptyDomainSet
	}

	learner, err := s.CohortRepo.GetLearner(learnerID)
	if err != nil {
		return nil, err
	}

	if goalHours <= 0 {
		goalHours = learner.GoalHoursPerWeek
	}

	aggregates, err := s.TrajectoryRepo.RecentAggregatesFor(learnerID, asOf, s.Engine.LookbackDays)
	if err != nil {
		return nil, err
	}

	weights := s.domainWeights(priority, aggregates)

	var total float64
	for _, w := range weights {
		total += w.Weight
	}

	plan := &model.WeeklyPlan{
		LearnerID: learnerID,
		Priority:  priority,
		GoalHours: goalHours,
	}

	engagementFactor := 0.8 + 0.4*learner.Engagement
	for i := range weights {
		weights[i].Weight /= total
		weights[i].Hours = weights[i].Weight * goalHours

		shaped := make([]float64, len(dayShape))
		var shapedSum float64
		for j, w := range dayShape {
			shaped[j] = w * engagementFactor
			shapedSum += shaped[j]
		}

		for j, day := range model.PlanDays {
			plan.Cells = append(plan.Cells, model.PlanCell{
				Domain: weights[i].Domain,
				Day:    day,
				Hours:  weights[i].Hours * shaped[j] / shapedSum,
			})
		}
	}
	plan.DomainHours = weights

	monitoring.EngineOpCounter.WithLabelValues("plan").Inc()
	return plan, nil
}

func (s *PlanningService) domainWeights(priority model.PriorityPolicy, aggregates []model.DomainAggregate) []model.DomainHours {
	if len(aggregates) == 0 {
		weights := make([]model.DomainHours, 0, len(s.Engine.Domains))
		for _, d := range s.Engine.Domains {
			weights = append(weights, model.DomainHours{Domain: d, Weight: 1.0})
		}
		return weights
	}

	weights := make([]model.DomainHours, 0, len(aggregates))
	for _, agg := range aggregates {
		var w float64
		switch priority {
		case model.PriorityWeak:
			w = 1 - agg.MicroMean
		case model.PriorityStrong:
			w = agg.MicroMean
		default:
			w = 1.0
		}
		weights = append(weights, model.DomainHours{Domain: agg.Domain, Weight: w})
	}
	return weights
}
